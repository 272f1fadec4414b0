package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/autohub/automation-hub/constants"
	"github.com/autohub/automation-hub/gen/ent"
	"github.com/autohub/automation-hub/internal/common"
	"github.com/autohub/automation-hub/internal/repository"
)

// entryRec pairs a live cron entry with the schedule it was built from,
// so next-run refreshes never depend on the runner's internal state.
type entryRec struct {
	id       cron.EntryID
	schedule cron.Schedule
}

// Scheduler reconciles persisted job records with live cron entries.
// The store is the source of truth; everything registered here can be
// rebuilt from it alone.
type Scheduler struct {
	cron     *cron.Cron
	parser   cron.Parser
	jobs     repository.JobRepository
	launcher Launcher
	logger   *slog.Logger

	mu      sync.Mutex
	entries map[uuid.UUID]entryRec

	// OnChange, when set, is invoked after an execution outcome is
	// persisted so a listening UI can refresh its job table.
	OnChange func()

	now      func() time.Time
	stopped  chan struct{}
	stopOnce sync.Once
}

func New(jobs repository.JobRepository, launcher Launcher, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	parser := newParser()
	c := cron.New(
		cron.WithParser(parser),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	return &Scheduler{
		cron:     c,
		parser:   parser,
		jobs:     jobs,
		launcher: launcher,
		logger:   logger,
		entries:  make(map[uuid.UUID]entryRec),
		now:      time.Now,
		stopped:  make(chan struct{}),
	}
}

// Start begins dispatching registered triggers on the cron worker pool.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts dispatch and waits for in-flight executions to finish.
// Safe to call multiple times.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Info("scheduler stopping")
		stopCtx := s.cron.Stop()
		<-stopCtx.Done()
		close(s.stopped)
		s.logger.Info("scheduler stopped")
	})
}

// Done returns a channel closed once the scheduler has fully stopped.
func (s *Scheduler) Done() <-chan struct{} {
	return s.stopped
}

// Schedule builds a trigger from the record's type and recurrence
// fields and registers it under the job's id. Re-registration removes
// the prior entry first, so calling twice is safe. The schedule's
// computed next fire time is persisted back onto the record.
func (s *Scheduler) Schedule(ctx context.Context, j *ent.Job) error {
	schedule, err := buildSchedule(j, s.parser)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if old, ok := s.entries[j.ID]; ok {
		s.cron.Remove(old.id)
		delete(s.entries, j.ID)
	}
	jobID := j.ID
	entryID := s.cron.Schedule(schedule, cron.FuncJob(func() {
		s.fire(jobID)
	}))
	s.entries[j.ID] = entryRec{id: entryID, schedule: schedule}
	s.mu.Unlock()

	next := schedule.Next(s.now())
	if !next.IsZero() {
		if err := s.jobs.SetNextRun(ctx, j.ID, next); err == nil {
			s.logger.Info("job scheduled", "job_id", j.ID, "name", j.Name, "next_run", next)
		}
	} else {
		s.logger.Info("job scheduled with no upcoming fire", "job_id", j.ID, "name", j.Name)
	}
	return nil
}

// Unschedule removes the job's live trigger. No further fires occur
// after it returns; an already-dispatched run is not interrupted.
func (s *Scheduler) Unschedule(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.entries[id]; ok {
		s.cron.Remove(rec.id)
		delete(s.entries, id)
		s.logger.Info("job unscheduled", "job_id", id)
	}
}

// HasEntry reports whether the job currently has a live trigger.
func (s *Scheduler) HasEntry(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[id]
	return ok
}

// EntryCount returns the number of live triggers.
func (s *Scheduler) EntryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// fire runs on the cron worker pool when a trigger fires. The record is
// re-read so a disable racing the fire is honored.
func (s *Scheduler) fire(id uuid.UUID) {
	select {
	case <-s.stopped:
		return
	default:
	}

	ctx := context.Background()
	j, err := s.jobs.Get(ctx, id)
	if err != nil {
		s.logger.Warn("fired job no longer in store", "job_id", id, "error", err)
		s.Unschedule(id)
		return
	}
	if !j.Enabled {
		return
	}
	s.ExecuteNow(ctx, j)
}

// ExecuteNow runs the job's script synchronously on the calling
// goroutine, records the outcome, and disables one-time jobs after
// their single fire. Execution failures are recorded on the job row and
// never propagated.
func (s *Scheduler) ExecuteNow(ctx context.Context, j *ent.Job) {
	start := s.now()
	runID := uuid.NewString()
	ctx = common.WithJobID(common.WithRunID(ctx, runID), j.ID.String())
	s.logger.Info("executing job", "job_id", j.ID, "run_id", runID, "name", j.Name, "script", j.Script)

	exitCode, output, err := s.launcher.Run(ctx, j.Script)
	var execErr string
	switch {
	case err != nil:
		execErr = fmt.Sprintf("launch failed: %v", err)
		s.logger.Warn("job launch failed", "job_id", j.ID, "name", j.Name, "error", err)
	case exitCode != 0:
		execErr = fmt.Sprintf("exit status %d", exitCode)
		s.logger.Warn("job exited non-zero", "job_id", j.ID, "name", j.Name, "exit_code", exitCode)
	default:
		s.logger.Info("job finished", "job_id", j.ID, "name", j.Name, "output_bytes", len(output))
	}

	oneTime := j.JobType == string(constants.JobTypeOneTime)
	if oneTime {
		s.Unschedule(j.ID)
	}

	if _, err := s.jobs.RecordRun(ctx, j.ID, start, exitCode, execErr, oneTime); err != nil {
		s.logger.Error("failed to record job run", "job_id", j.ID, "error", err)
	}

	if !oneTime {
		s.refreshNextRun(ctx, j.ID)
	}

	if s.OnChange != nil {
		s.OnChange()
	}
}

// refreshNextRun re-syncs the durable next_run cache with the live
// schedule after a recurring fire.
func (s *Scheduler) refreshNextRun(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	rec, ok := s.entries[id]
	s.mu.Unlock()
	if !ok {
		return
	}
	next := rec.schedule.Next(s.now())
	if next.IsZero() {
		return
	}
	_ = s.jobs.SetNextRun(ctx, id, next)
}

// ReconcileOnStartup rebuilds live triggers from the store and runs
// exactly one catch-up execution for each enabled job whose persisted
// next_run was missed within its grace window. Older misses are skipped
// and simply rescheduled forward. Calling it twice produces the same
// set of triggers and no double fire.
func (s *Scheduler) ReconcileOnStartup(ctx context.Context) error {
	jobs, err := s.jobs.ListEnabled(ctx)
	if err != nil {
		return err
	}

	now := s.now()
	for _, j := range jobs {
		// Capture the persisted next_run before Schedule rewrites it.
		var missedAt *time.Time
		if j.NextRun != nil && j.NextRun.Before(now) {
			t := *j.NextRun
			missedAt = &t
		}

		if err := s.Schedule(ctx, j); err != nil {
			s.logger.Warn("skipping job with invalid schedule", "job_id", j.ID, "name", j.Name, "error", err)
			continue
		}

		if missedAt == nil {
			continue
		}
		grace := time.Duration(j.MisfireGraceSeconds) * time.Second
		late := now.Sub(*missedAt)
		if late <= grace {
			s.logger.Info("running missed job within grace window",
				"job_id", j.ID, "name", j.Name, "late", late, "grace", grace)
			s.ExecuteNow(ctx, j)
		} else {
			s.logger.Info("missed fire outside grace window, skipping",
				"job_id", j.ID, "name", j.Name, "late", late, "grace", grace)
		}
	}
	s.logger.Info("startup reconciliation complete", "jobs", len(jobs), "triggers", s.EntryCount())
	return nil
}
