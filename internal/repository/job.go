package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/autohub/automation-hub/gen/ent"
	"github.com/autohub/automation-hub/gen/ent/job"
)

// CreateJobRequest wraps parameters for creating a scheduled job record.
// Recurrence fields are pointers; only those matching the job type and
// recurrence kind are set.
type CreateJobRequest struct {
	Name                string
	Script              string
	JobType             string
	RunDate             *time.Time
	RecurrenceKind      *string
	IntervalSeconds     *int
	RecurrenceTime      *string
	DaysOfWeek          *string
	DayOfMonth          *int
	MisfireGraceSeconds int
}

type JobRepository interface {
	Create(ctx context.Context, req *CreateJobRequest) (*ent.Job, error)
	Get(ctx context.Context, id uuid.UUID) (*ent.Job, error)
	List(ctx context.Context) ([]*ent.Job, error)
	ListEnabled(ctx context.Context) ([]*ent.Job, error)
	SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) (*ent.Job, error)
	SetNextRun(ctx context.Context, id uuid.UUID, next time.Time) error
	RecordRun(ctx context.Context, id uuid.UUID, ranAt time.Time, exitCode int, execErr string, disable bool) (*ent.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type jobRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewJobRepository(client *ent.Client, logger *slog.Logger) JobRepository {
	return &jobRepository{
		client: client,
		logger: logger,
	}
}

func (r *jobRepository) Create(ctx context.Context, req *CreateJobRequest) (*ent.Job, error) {
	j, err := r.client.Job.Create().
		SetName(req.Name).
		SetScript(req.Script).
		SetJobType(req.JobType).
		SetNillableRunDate(req.RunDate).
		SetNillableRecurrenceKind(req.RecurrenceKind).
		SetNillableIntervalSeconds(req.IntervalSeconds).
		SetNillableRecurrenceTime(req.RecurrenceTime).
		SetNillableDaysOfWeek(req.DaysOfWeek).
		SetNillableDayOfMonth(req.DayOfMonth).
		SetMisfireGraceSeconds(req.MisfireGraceSeconds).
		Save(ctx)
	if err != nil {
		r.logger.Error("job create failed", "name", req.Name, "error", err)
		return nil, err
	}
	r.logger.Info("job created", "job_id", j.ID, "name", j.Name, "type", j.JobType)
	return j, nil
}

func (r *jobRepository) Get(ctx context.Context, id uuid.UUID) (*ent.Job, error) {
	return r.client.Job.Get(ctx, id)
}

func (r *jobRepository) List(ctx context.Context) ([]*ent.Job, error) {
	jobs, err := r.client.Job.Query().
		Order(job.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list jobs", "error", err)
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) ListEnabled(ctx context.Context) ([]*ent.Job, error) {
	jobs, err := r.client.Job.Query().
		Where(job.EnabledEQ(true)).
		Order(job.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list enabled jobs", "error", err)
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) (*ent.Job, error) {
	j, err := r.client.Job.UpdateOneID(id).
		SetEnabled(enabled).
		Save(ctx)
	if err != nil {
		r.logger.Error("job enable update failed", "job_id", id, "error", err)
		return nil, err
	}
	r.logger.Info("job toggled", "job_id", id, "enabled", enabled)
	return j, nil
}

// SetNextRun refreshes the durable cache of the live trigger's next fire
// time.
func (r *jobRepository) SetNextRun(ctx context.Context, id uuid.UUID, next time.Time) error {
	err := r.client.Job.UpdateOneID(id).
		SetNextRun(next).
		Exec(ctx)
	if err != nil {
		r.logger.Error("job next_run update failed", "job_id", id, "error", err)
	}
	return err
}

// RecordRun persists the outcome of one execution. disable additionally
// flips enabled=false (one-time jobs after their single fire).
func (r *jobRepository) RecordRun(ctx context.Context, id uuid.UUID, ranAt time.Time, exitCode int, execErr string, disable bool) (*ent.Job, error) {
	upd := r.client.Job.UpdateOneID(id).
		SetLastRun(ranAt).
		SetLastExitCode(exitCode)
	if execErr != "" {
		upd = upd.SetLastError(execErr)
	} else {
		upd = upd.ClearLastError()
	}
	if disable {
		upd = upd.SetEnabled(false).ClearNextRun()
	}
	j, err := upd.Save(ctx)
	if err != nil {
		r.logger.Error("job run record failed", "job_id", id, "error", err)
		return nil, err
	}
	return j, nil
}

func (r *jobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Job.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("job delete failed", "job_id", id, "error", err)
		return err
	}
	r.logger.Info("job deleted", "job_id", id)
	return nil
}
