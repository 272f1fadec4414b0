package hub

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autohub/automation-hub/constants"
	"github.com/autohub/automation-hub/gen/ent"
	"github.com/autohub/automation-hub/internal/common"
	"github.com/autohub/automation-hub/internal/export"
	"github.com/autohub/automation-hub/internal/extraction"
	"github.com/autohub/automation-hub/internal/repository"
	"github.com/autohub/automation-hub/internal/scheduler"
)

type fakeTemplates struct {
	saved     *repository.SaveTemplateRequest
	saveErr   error
	templates map[uuid.UUID]*ent.Template
	fields    map[uuid.UUID][]*ent.Field
}

func newFakeTemplates() *fakeTemplates {
	return &fakeTemplates{
		templates: map[uuid.UUID]*ent.Template{},
		fields:    map[uuid.UUID][]*ent.Field{},
	}
}

func (f *fakeTemplates) Save(ctx context.Context, req *repository.SaveTemplateRequest) (*ent.Template, error) {
	f.saved = req
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	return &ent.Template{ID: uuid.New(), Name: req.Name, BaseWidth: req.BaseWidth, BaseHeight: req.BaseHeight}, nil
}

func (f *fakeTemplates) GetWithFields(ctx context.Context, id uuid.UUID) (*ent.Template, []*ent.Field, error) {
	tpl, ok := f.templates[id]
	if !ok {
		return nil, nil, &ent.NotFoundError{}
	}
	return tpl, f.fields[id], nil
}

func (f *fakeTemplates) List(ctx context.Context) ([]*ent.Template, error) {
	out := make([]*ent.Template, 0, len(f.templates))
	for _, tpl := range f.templates {
		out = append(out, tpl)
	}
	return out, nil
}

type fakeJobs struct {
	jobs map[uuid.UUID]*ent.Job
}

func newFakeJobs() *fakeJobs {
	return &fakeJobs{jobs: map[uuid.UUID]*ent.Job{}}
}

func (f *fakeJobs) Create(ctx context.Context, req *repository.CreateJobRequest) (*ent.Job, error) {
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
	f.jobs[j.ID] = j
	return j, nil
}

func (f *fakeJobs) Get(ctx context.Context, id uuid.UUID) (*ent.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	return j, nil
}

func (f *fakeJobs) List(ctx context.Context) ([]*ent.Job, error) {
	out := make([]*ent.Job, 0, len(f.jobs))
	for _, j := range f.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (f *fakeJobs) ListEnabled(ctx context.Context) ([]*ent.Job, error) {
	var out []*ent.Job
	for _, j := range f.jobs {
		if j.Enabled {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJobs) SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) (*ent.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	j.Enabled = enabled
	return j, nil
}

func (f *fakeJobs) SetNextRun(ctx context.Context, id uuid.UUID, next time.Time) error {
	if j, ok := f.jobs[id]; ok {
		t := next
		j.NextRun = &t
	}
	return nil
}

func (f *fakeJobs) RecordRun(ctx context.Context, id uuid.UUID, ranAt time.Time, exitCode int, execErr string, disable bool) (*ent.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	t := ranAt
	j.LastRun = &t
	if disable {
		j.Enabled = false
		j.NextRun = nil
	}
	return j, nil
}

func (f *fakeJobs) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.jobs[id]; !ok {
		return &ent.NotFoundError{}
	}
	delete(f.jobs, id)
	return nil
}

type nopLauncher struct{}

func (nopLauncher) Run(ctx context.Context, command string) (int, string, error) {
	return 0, "", nil
}

type stubDocument struct {
	w, h float64
	text string
}

func (d stubDocument) PageCount() int                         { return 1 }
func (d stubDocument) PageSize(int) (float64, float64, error) { return d.w, d.h, nil }
func (d stubDocument) TextInRect(int, extraction.Rect) (string, error) {
	return d.text, nil
}
func (d stubDocument) TextBoxInRect(int, extraction.Rect) (string, error) {
	return d.text, nil
}
func (d stubDocument) Close() error { return nil }

type fixture struct {
	svc       *Service
	templates *fakeTemplates
	jobs      *fakeJobs
	sched     *scheduler.Scheduler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	templates := newFakeTemplates()
	jobs := newFakeJobs()
	sched := scheduler.New(jobs, nopLauncher{}, logger)
	svc := NewService(templates, jobs, extraction.NewEngine(logger), export.NewService(logger), sched, 300, logger)
	return &fixture{svc: svc, templates: templates, jobs: jobs, sched: sched}
}

func validTemplateReq() *SaveTemplateRequest {
	return &SaveTemplateRequest{
		Name:       "invoice",
		BaseWidth:  612,
		BaseHeight: 792,
		Zoom:       1,
		Fields: []FieldRect{
			{Name: "total", Rect: extraction.Rect{X: 400, Y: 700, Width: 100, Height: 20}},
		},
	}
}

func TestSaveTemplateValidation(t *testing.T) {
	fx := newFixture(t)

	tests := []struct {
		name   string
		mutate func(*SaveTemplateRequest)
	}{
		{"empty name", func(r *SaveTemplateRequest) { r.Name = "" }},
		{"no fields", func(r *SaveTemplateRequest) { r.Fields = nil }},
		{"zero width", func(r *SaveTemplateRequest) { r.BaseWidth = 0 }},
		{"unnamed field", func(r *SaveTemplateRequest) { r.Fields[0].Name = "" }},
		{"duplicate field names", func(r *SaveTemplateRequest) {
			r.Fields = append(r.Fields, r.Fields[0])
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validTemplateReq()
			tt.mutate(req)
			_, err := fx.svc.SaveTemplate(context.Background(), req)
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
	assert.Nil(t, fx.templates.saved, "nothing reaches the store on validation failure")
}

func TestSaveTemplateDescalesZoom(t *testing.T) {
	fx := newFixture(t)
	req := validTemplateReq()
	req.Zoom = 2
	req.Fields[0].Rect = extraction.Rect{X: 800, Y: 1400, Width: 200, Height: 40}

	_, err := fx.svc.SaveTemplate(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, fx.templates.saved)
	got := fx.templates.saved.Fields[0]
	assert.InDelta(t, 400.0, got.X, 1e-9)
	assert.InDelta(t, 700.0, got.Y, 1e-9)
	assert.InDelta(t, 100.0, got.Width, 1e-9)
	assert.InDelta(t, 20.0, got.Height, 1e-9)
	// Page dimensions are already unscaled; they pass through untouched.
	assert.Equal(t, 612.0, fx.templates.saved.BaseWidth)
}

func TestSaveTemplatePropagatesNameConflict(t *testing.T) {
	fx := newFixture(t)
	fx.templates.saveErr = repository.ErrTemplateExists

	_, err := fx.svc.SaveTemplate(context.Background(), validTemplateReq())
	assert.ErrorIs(t, err, repository.ErrTemplateExists)
}

func TestExtract(t *testing.T) {
	fx := newFixture(t)
	id := uuid.New()
	fx.templates.templates[id] = &ent.Template{ID: id, Name: "invoice", BaseWidth: 612, BaseHeight: 792}
	fx.templates.fields[id] = []*ent.Field{
		{Name: "total", X: 400, Y: 700, Width: 100, Height: 20, Position: 0},
	}
	fx.svc.openDoc = func(path string) (extraction.Document, error) {
		return stubDocument{w: 612, h: 792, text: "Total: 19.99"}, nil
	}

	rows, err := fx.svc.Extract(context.Background(), id, "doc.pdf")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "total", rows[0].Field)
	assert.Equal(t, "19.99", rows[0].Value, "the field label is stripped from the value")
}

func TestExtractUnknownTemplate(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.svc.Extract(context.Background(), uuid.New(), "doc.pdf")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestExportXLSX(t *testing.T) {
	fx := newFixture(t)
	out := filepath.Join(t.TempDir(), "rows.xlsx")

	err := fx.svc.ExportXLSX("invoice", []extraction.Row{{Field: "total", Value: "19.99"}}, out)
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestExportXLSXNothingToExport(t *testing.T) {
	fx := newFixture(t)

	err := fx.svc.ExportXLSX("invoice", nil, filepath.Join(t.TempDir(), "rows.xlsx"))
	assert.ErrorIs(t, err, common.ErrValidation)
}

func validJobReq() *repository.CreateJobRequest {
	kind := string(constants.RecurrenceDaily)
	at := "09:00"
	return &repository.CreateJobRequest{
		Name:           "backup",
		Script:         "/usr/local/bin/backup.sh",
		JobType:        string(constants.JobTypeRecurring),
		RecurrenceKind: &kind,
		RecurrenceTime: &at,
	}
}

func TestAddJobValidation(t *testing.T) {
	fx := newFixture(t)

	tests := []struct {
		name   string
		mutate func(*repository.CreateJobRequest)
	}{
		{"empty name", func(r *repository.CreateJobRequest) { r.Name = "" }},
		{"empty script", func(r *repository.CreateJobRequest) { r.Script = "" }},
		{"unknown type", func(r *repository.CreateJobRequest) { r.JobType = "cron" }},
		{"one-time without run date", func(r *repository.CreateJobRequest) {
			r.JobType = string(constants.JobTypeOneTime)
			r.RecurrenceKind = nil
		}},
		{"recurring without kind", func(r *repository.CreateJobRequest) { r.RecurrenceKind = nil }},
		{"daily without time", func(r *repository.CreateJobRequest) { r.RecurrenceTime = nil }},
		{"monthly day out of range", func(r *repository.CreateJobRequest) {
			kind := string(constants.RecurrenceMonthly)
			day := 32
			r.RecurrenceKind = &kind
			r.DayOfMonth = &day
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validJobReq()
			tt.mutate(req)
			_, err := fx.svc.AddJob(context.Background(), req)
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
	assert.Empty(t, fx.jobs.jobs, "invalid jobs are never persisted")
}

func TestAddJobSchedulesTrigger(t *testing.T) {
	fx := newFixture(t)

	j, err := fx.svc.AddJob(context.Background(), validJobReq())
	require.NoError(t, err)

	assert.True(t, fx.sched.HasEntry(j.ID))
	assert.Equal(t, 300, j.MisfireGraceSeconds, "default grace is applied")
}

func TestToggleJob(t *testing.T) {
	fx := newFixture(t)
	j, err := fx.svc.AddJob(context.Background(), validJobReq())
	require.NoError(t, err)

	_, err = fx.svc.ToggleJob(context.Background(), j.ID, false)
	require.NoError(t, err)
	assert.False(t, fx.sched.HasEntry(j.ID))

	// Re-enable rebuilds the trigger from the stored record alone.
	_, err = fx.svc.ToggleJob(context.Background(), j.ID, true)
	require.NoError(t, err)
	assert.True(t, fx.sched.HasEntry(j.ID))
}

func TestToggleJobUnknown(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.svc.ToggleJob(context.Background(), uuid.New(), true)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteJob(t *testing.T) {
	fx := newFixture(t)
	j, err := fx.svc.AddJob(context.Background(), validJobReq())
	require.NoError(t, err)

	require.NoError(t, fx.svc.DeleteJob(context.Background(), j.ID))
	assert.False(t, fx.sched.HasEntry(j.ID))
	assert.Empty(t, fx.jobs.jobs)

	assert.ErrorIs(t, fx.svc.DeleteJob(context.Background(), j.ID), common.ErrNotFound)
}

func TestRunJobNowUnknown(t *testing.T) {
	fx := newFixture(t)

	err := fx.svc.RunJobNow(context.Background(), uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}
