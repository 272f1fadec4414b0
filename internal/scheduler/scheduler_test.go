package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autohub/automation-hub/constants"
	"github.com/autohub/automation-hub/gen/ent"
	"github.com/autohub/automation-hub/internal/repository"
)

// memJobs is an in-memory JobRepository for exercising the scheduler
// without a database.
type memJobs struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*ent.Job
}

func newMemJobs(jobs ...*ent.Job) *memJobs {
	m := &memJobs{jobs: make(map[uuid.UUID]*ent.Job)}
	for _, j := range jobs {
		m.jobs[j.ID] = j
	}
	return m
}

func (m *memJobs) Create(ctx context.Context, req *repository.CreateJobRequest) (*ent.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j := &ent.Job{
		ID:                  uuid.New(),
		Name:                req.Name,
		Script:              req.Script,
		JobType:             req.JobType,
		RunDate:             req.RunDate,
		RecurrenceKind:      req.RecurrenceKind,
		IntervalSeconds:     req.IntervalSeconds,
		RecurrenceTime:      req.RecurrenceTime,
		DaysOfWeek:          req.DaysOfWeek,
		DayOfMonth:          req.DayOfMonth,
		Enabled:             true,
		MisfireGraceSeconds: req.MisfireGraceSeconds,
	}
	m.jobs[j.ID] = j
	return j, nil
}

func (m *memJobs) Get(ctx context.Context, id uuid.UUID) (*ent.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	cp := *j
	return &cp, nil
}

func (m *memJobs) List(ctx context.Context) ([]*ent.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*ent.Job, 0, len(m.jobs))
	for _, j := range m.jobs {
		cp := *j
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memJobs) ListEnabled(ctx context.Context) ([]*ent.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*ent.Job
	for _, j := range m.jobs {
		if j.Enabled {
			cp := *j
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memJobs) SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) (*ent.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	j.Enabled = enabled
	cp := *j
	return &cp, nil
}

func (m *memJobs) SetNextRun(ctx context.Context, id uuid.UUID, next time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if j, ok := m.jobs[id]; ok {
		t := next
		j.NextRun = &t
	}
	return nil
}

func (m *memJobs) RecordRun(ctx context.Context, id uuid.UUID, ranAt time.Time, exitCode int, execErr string, disable bool) (*ent.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	t := ranAt
	c := exitCode
	j.LastRun = &t
	j.LastExitCode = &c
	if execErr != "" {
		e := execErr
		j.LastError = &e
	} else {
		j.LastError = nil
	}
	if disable {
		j.Enabled = false
		j.NextRun = nil
	}
	cp := *j
	return &cp, nil
}

func (m *memJobs) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.jobs, id)
	return nil
}

// spyLauncher records executed commands and returns a canned outcome.
type spyLauncher struct {
	mu       sync.Mutex
	commands []string
	exitCode int
	err      error
}

func (l *spyLauncher) Run(ctx context.Context, command string) (int, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.commands = append(l.commands, command)
	return l.exitCode, "output", l.err
}

func (l *spyLauncher) calls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.commands)
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestScheduler(repo *memJobs, launcher *spyLauncher, now time.Time) *Scheduler {
	s := New(repo, launcher, testLogger())
	s.now = func() time.Time { return now }
	return s
}

func intervalJob(name string, seconds int, grace int) *ent.Job {
	kind := string(constants.RecurrenceInterval)
	return &ent.Job{
		ID:                  uuid.New(),
		Name:                name,
		Script:              "/bin/true",
		JobType:             string(constants.JobTypeRecurring),
		RecurrenceKind:      &kind,
		IntervalSeconds:     &seconds,
		Enabled:             true,
		MisfireGraceSeconds: grace,
	}
}

func oneTimeJob(name string, at time.Time, grace int) *ent.Job {
	return &ent.Job{
		ID:                  uuid.New(),
		Name:                name,
		Script:              "/bin/true",
		JobType:             string(constants.JobTypeOneTime),
		RunDate:             &at,
		Enabled:             true,
		MisfireGraceSeconds: grace,
	}
}

func TestScheduleIsIdempotent(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	j := intervalJob("poll", 60, 300)
	repo := newMemJobs(j)
	s := newTestScheduler(repo, &spyLauncher{}, now)

	require.NoError(t, s.Schedule(context.Background(), j))
	require.NoError(t, s.Schedule(context.Background(), j))

	assert.Equal(t, 1, s.EntryCount())
	assert.True(t, s.HasEntry(j.ID))
}

func TestSchedulePersistsNextRun(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	j := intervalJob("poll", 60, 300)
	repo := newMemJobs(j)
	s := newTestScheduler(repo, &spyLauncher{}, now)

	require.NoError(t, s.Schedule(context.Background(), j))

	stored, err := repo.Get(context.Background(), j.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.NextRun)
	assert.Equal(t, now.Add(60*time.Second), *stored.NextRun)
}

func TestScheduleRejectsMalformedJob(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	j := &ent.Job{ID: uuid.New(), Name: "broken", JobType: "mystery"}
	s := newTestScheduler(newMemJobs(j), &spyLauncher{}, now)

	assert.Error(t, s.Schedule(context.Background(), j))
	assert.Equal(t, 0, s.EntryCount())
}

func TestUnschedule(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	j := intervalJob("poll", 60, 300)
	s := newTestScheduler(newMemJobs(j), &spyLauncher{}, now)

	require.NoError(t, s.Schedule(context.Background(), j))
	s.Unschedule(j.ID)
	s.Unschedule(j.ID) // second removal is a no-op

	assert.False(t, s.HasEntry(j.ID))
	assert.Equal(t, 0, s.EntryCount())
}

func TestExecuteNowRecordsOutcome(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	j := intervalJob("poll", 60, 300)
	repo := newMemJobs(j)
	launcher := &spyLauncher{exitCode: 3}
	s := newTestScheduler(repo, launcher, now)

	s.ExecuteNow(context.Background(), j)

	stored, err := repo.Get(context.Background(), j.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.LastRun)
	assert.Equal(t, now, *stored.LastRun)
	require.NotNil(t, stored.LastExitCode)
	assert.Equal(t, 3, *stored.LastExitCode)
	require.NotNil(t, stored.LastError)
	assert.Equal(t, "exit status 3", *stored.LastError)
	assert.True(t, stored.Enabled, "recurring jobs stay enabled after a failed run")
}

func TestExecuteNowClearsErrorOnSuccess(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	j := intervalJob("poll", 60, 300)
	prev := "exit status 1"
	j.LastError = &prev
	repo := newMemJobs(j)
	s := newTestScheduler(repo, &spyLauncher{}, now)

	s.ExecuteNow(context.Background(), j)

	stored, _ := repo.Get(context.Background(), j.ID)
	require.NotNil(t, stored.LastExitCode)
	assert.Equal(t, 0, *stored.LastExitCode)
	assert.Nil(t, stored.LastError)
}

func TestExecuteNowDisablesOneTimeJob(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	j := oneTimeJob("once", now.Add(time.Hour), 300)
	repo := newMemJobs(j)
	launcher := &spyLauncher{}
	s := newTestScheduler(repo, launcher, now)

	require.NoError(t, s.Schedule(context.Background(), j))
	s.ExecuteNow(context.Background(), j)

	assert.Equal(t, 1, launcher.calls())
	assert.False(t, s.HasEntry(j.ID))

	stored, _ := repo.Get(context.Background(), j.ID)
	assert.False(t, stored.Enabled)
	assert.Nil(t, stored.NextRun)
}

func TestExecuteNowNotifiesChangeListener(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	j := intervalJob("poll", 60, 300)
	s := newTestScheduler(newMemJobs(j), &spyLauncher{}, now)

	notified := 0
	s.OnChange = func() { notified++ }
	s.ExecuteNow(context.Background(), j)

	assert.Equal(t, 1, notified)
}

func TestFireSkipsDisabledJob(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	j := intervalJob("poll", 60, 300)
	j.Enabled = false
	repo := newMemJobs(j)
	launcher := &spyLauncher{}
	s := newTestScheduler(repo, launcher, now)

	s.fire(j.ID)

	assert.Equal(t, 0, launcher.calls())
}

func TestFireDropsDeletedJob(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	j := intervalJob("poll", 60, 300)
	repo := newMemJobs(j)
	launcher := &spyLauncher{}
	s := newTestScheduler(repo, launcher, now)

	require.NoError(t, s.Schedule(context.Background(), j))
	require.NoError(t, repo.Delete(context.Background(), j.ID))

	s.fire(j.ID)

	assert.Equal(t, 0, launcher.calls())
	assert.False(t, s.HasEntry(j.ID), "trigger of a deleted job is removed")
}

func TestReconcileRunsMissedJobWithinGrace(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	j := intervalJob("poll", 3600, 300)
	missed := now.Add(-2 * time.Minute)
	j.NextRun = &missed
	repo := newMemJobs(j)
	launcher := &spyLauncher{}
	s := newTestScheduler(repo, launcher, now)

	require.NoError(t, s.ReconcileOnStartup(context.Background()))

	assert.Equal(t, 1, launcher.calls(), "2 minutes late is within the 300s grace")
	assert.True(t, s.HasEntry(j.ID))
}

func TestReconcileSkipsMissedJobOutsideGrace(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	j := intervalJob("poll", 3600, 300)
	missed := now.Add(-10 * time.Minute)
	j.NextRun = &missed
	repo := newMemJobs(j)
	launcher := &spyLauncher{}
	s := newTestScheduler(repo, launcher, now)

	require.NoError(t, s.ReconcileOnStartup(context.Background()))

	assert.Equal(t, 0, launcher.calls(), "10 minutes late is outside the 300s grace")
	assert.True(t, s.HasEntry(j.ID), "the job is rescheduled forward anyway")

	stored, _ := repo.Get(context.Background(), j.ID)
	require.NotNil(t, stored.NextRun)
	assert.True(t, stored.NextRun.After(now))
}

func TestReconcileIsIdempotent(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	j := intervalJob("poll", 3600, 300)
	missed := now.Add(-2 * time.Minute)
	j.NextRun = &missed
	repo := newMemJobs(j)
	launcher := &spyLauncher{}
	s := newTestScheduler(repo, launcher, now)

	require.NoError(t, s.ReconcileOnStartup(context.Background()))
	require.NoError(t, s.ReconcileOnStartup(context.Background()))

	assert.Equal(t, 1, launcher.calls(), "the catch-up run happens exactly once")
	assert.Equal(t, 1, s.EntryCount())
}

func TestReconcileMissedOneTimeRunsOnceAndDisables(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	at := now.Add(-90 * time.Second)
	j := oneTimeJob("once", at, 300)
	j.NextRun = &at
	repo := newMemJobs(j)
	launcher := &spyLauncher{}
	s := newTestScheduler(repo, launcher, now)

	require.NoError(t, s.ReconcileOnStartup(context.Background()))

	assert.Equal(t, 1, launcher.calls())
	assert.False(t, s.HasEntry(j.ID))

	stored, _ := repo.Get(context.Background(), j.ID)
	assert.False(t, stored.Enabled)

	// A restart after the catch-up sees a disabled job and does nothing.
	require.NoError(t, s.ReconcileOnStartup(context.Background()))
	assert.Equal(t, 1, launcher.calls())
}

func TestReconcileMissedOneTimeOutsideGraceNeverRuns(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	at := now.Add(-time.Hour)
	j := oneTimeJob("once", at, 300)
	j.NextRun = &at
	repo := newMemJobs(j)
	launcher := &spyLauncher{}
	s := newTestScheduler(repo, launcher, now)

	require.NoError(t, s.ReconcileOnStartup(context.Background()))

	assert.Equal(t, 0, launcher.calls())

	// The record stays enabled and visible; its one-shot trigger has no
	// future fire, so it sits inert until the user re-dates or deletes it.
	stored, _ := repo.Get(context.Background(), j.ID)
	assert.True(t, stored.Enabled)
	assert.True(t, s.HasEntry(j.ID))
}

func TestReconcileSkipsInvalidJobs(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	broken := &ent.Job{ID: uuid.New(), Name: "broken", JobType: "mystery", Enabled: true}
	ok := intervalJob("poll", 60, 300)
	repo := newMemJobs(broken, ok)
	s := newTestScheduler(repo, &spyLauncher{}, now)

	require.NoError(t, s.ReconcileOnStartup(context.Background()))

	assert.Equal(t, 1, s.EntryCount())
	assert.True(t, s.HasEntry(ok.ID))
	assert.False(t, s.HasEntry(broken.ID))
}

func TestStopIsIdempotent(t *testing.T) {
	s := newTestScheduler(newMemJobs(), &spyLauncher{}, time.Now())
	s.Start()
	s.Stop()
	s.Stop()

	select {
	case <-s.Done():
	default:
		t.Fatal("Done channel not closed after Stop")
	}
}
