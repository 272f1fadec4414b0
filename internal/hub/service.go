package hub

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/autohub/automation-hub/constants"
	"github.com/autohub/automation-hub/gen/ent"
	"github.com/autohub/automation-hub/internal/common"
	"github.com/autohub/automation-hub/internal/export"
	"github.com/autohub/automation-hub/internal/extraction"
	"github.com/autohub/automation-hub/internal/repository"
	"github.com/autohub/automation-hub/internal/scheduler"
)

// Service is the application façade. Frontends call it for everything:
// template management, extraction, exports and job scheduling. It owns
// no state beyond its collaborators.
type Service struct {
	templates repository.TemplateRepository
	jobs      repository.JobRepository
	engine    *extraction.Engine
	exporter  *export.Service
	sched     *scheduler.Scheduler
	logger    *slog.Logger

	// openDoc is swapped out in tests.
	openDoc func(path string) (extraction.Document, error)

	graceSeconds int
}

func NewService(
	templates repository.TemplateRepository,
	jobs repository.JobRepository,
	engine *extraction.Engine,
	exporter *export.Service,
	sched *scheduler.Scheduler,
	graceSeconds int,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if graceSeconds <= 0 {
		graceSeconds = constants.DefaultMisfireGraceSeconds
	}
	return &Service{
		templates:    templates,
		jobs:         jobs,
		engine:       engine,
		exporter:     exporter,
		sched:        sched,
		logger:       logger,
		openDoc:      extraction.OpenDocument,
		graceSeconds: graceSeconds,
	}
}

// FieldRect is one captured field rectangle in view coordinates.
type FieldRect struct {
	Name string
	Rect extraction.Rect
}

// SaveTemplateRequest captures a template as drawn on a rendered page.
// Field rectangles are in view coordinates at the given zoom; base
// dimensions are the unscaled page size.
type SaveTemplateRequest struct {
	Name       string
	BaseWidth  float64
	BaseHeight float64
	Zoom       float64
	Fields     []FieldRect
	Overwrite  bool
}

// SaveTemplate de-scales the captured rectangles to reference space and
// persists the template. A name collision without Overwrite returns
// repository.ErrTemplateExists so the caller can confirm.
func (s *Service) SaveTemplate(ctx context.Context, req *SaveTemplateRequest) (*ent.Template, error) {
	if req.Name == "" {
		return nil, common.ValidationErrorf("template name is required")
	}
	if req.BaseWidth <= 0 || req.BaseHeight <= 0 {
		return nil, common.ValidationErrorf("template page dimensions must be positive, got %.2fx%.2f", req.BaseWidth, req.BaseHeight)
	}
	if len(req.Fields) == 0 {
		return nil, common.ValidationErrorf("template needs at least one field")
	}
	zoom := req.Zoom
	if zoom <= 0 {
		zoom = 1
	}

	seen := make(map[string]bool, len(req.Fields))
	specs := make([]repository.FieldSpec, len(req.Fields))
	for i, f := range req.Fields {
		if f.Name == "" {
			return nil, common.ValidationErrorf("field %d has no name", i+1)
		}
		if seen[f.Name] {
			return nil, common.ValidationErrorf("duplicate field name %q", f.Name)
		}
		seen[f.Name] = true
		r := extraction.DescaleZoom(f.Rect, zoom)
		specs[i] = repository.FieldSpec{
			Name:   f.Name,
			X:      r.X,
			Y:      r.Y,
			Width:  r.Width,
			Height: r.Height,
		}
	}

	return s.templates.Save(ctx, &repository.SaveTemplateRequest{
		Name:       req.Name,
		BaseWidth:  req.BaseWidth,
		BaseHeight: req.BaseHeight,
		Fields:     specs,
		Overwrite:  req.Overwrite,
	})
}

func (s *Service) ListTemplates(ctx context.Context) ([]*ent.Template, error) {
	return s.templates.List(ctx)
}

// Extract applies the stored template to the document at path and
// returns one row per field, in definition order.
func (s *Service) Extract(ctx context.Context, templateID uuid.UUID, path string) ([]extraction.Row, error) {
	tpl, fields, err := s.templates.GetWithFields(ctx, templateID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: template %s", common.ErrNotFound, templateID)
		}
		return nil, err
	}

	spec := extraction.TemplateSpec{
		Name:       tpl.Name,
		BaseWidth:  tpl.BaseWidth,
		BaseHeight: tpl.BaseHeight,
		Fields:     make([]extraction.FieldRegion, len(fields)),
	}
	for i, f := range fields {
		spec.Fields[i] = extraction.FieldRegion{
			Name: f.Name,
			Rect: extraction.Rect{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height},
		}
	}

	doc, err := s.openDoc(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	rows, err := s.engine.Extract(spec, doc)
	if err != nil {
		return nil, err
	}
	s.logger.Info("extraction done", "template", tpl.Name, "document", path, "rows", len(rows))
	return rows, nil
}

// ExportRows renders the extraction rows as an xlsx workbook.
func (s *Service) ExportRows(templateName string, rows []extraction.Row) ([]byte, error) {
	if len(rows) == 0 {
		return nil, common.ValidationErrorf("nothing to export")
	}
	return s.exporter.RowsXLSX(templateName, rows)
}

// ExportXLSX writes the extraction rows to an xlsx workbook at outPath.
func (s *Service) ExportXLSX(templateName string, rows []extraction.Row, outPath string) error {
	data, err := s.ExportRows(templateName, rows)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return common.WrapError(err, "write export file")
	}
	return nil
}

// AddJob validates the request, persists the job and registers its
// trigger. The record survives even when the trigger cannot be built;
// the caller gets both the record and the scheduling error.
func (s *Service) AddJob(ctx context.Context, req *repository.CreateJobRequest) (*ent.Job, error) {
	if err := validateJob(req); err != nil {
		return nil, err
	}
	if req.MisfireGraceSeconds <= 0 {
		req.MisfireGraceSeconds = s.graceSeconds
	}

	j, err := s.jobs.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.sched.Schedule(ctx, j); err != nil {
		s.logger.Error("job saved but not scheduled", "job_id", j.ID, "error", err)
		return j, err
	}
	return j, nil
}

func (s *Service) ListJobs(ctx context.Context) ([]*ent.Job, error) {
	return s.jobs.List(ctx)
}

// ToggleJob enables or disables a job. Disabling removes the live
// trigger; enabling rebuilds it from the stored record alone.
func (s *Service) ToggleJob(ctx context.Context, id uuid.UUID, enabled bool) (*ent.Job, error) {
	j, err := s.jobs.SetEnabled(ctx, id, enabled)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: job %s", common.ErrNotFound, id)
		}
		return nil, err
	}
	if !enabled {
		s.sched.Unschedule(id)
		return j, nil
	}
	if err := s.sched.Schedule(ctx, j); err != nil {
		return j, err
	}
	return j, nil
}

// DeleteJob removes the trigger and the record. Deleting an unknown id
// is an error.
func (s *Service) DeleteJob(ctx context.Context, id uuid.UUID) error {
	s.sched.Unschedule(id)
	if err := s.jobs.Delete(ctx, id); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: job %s", common.ErrNotFound, id)
		}
		return err
	}
	return nil
}

// RunJobNow fires the job immediately, off the caller's goroutine. The
// ad-hoc run records its outcome like a scheduled one but leaves the
// trigger alone.
func (s *Service) RunJobNow(ctx context.Context, id uuid.UUID) error {
	j, err := s.jobs.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: job %s", common.ErrNotFound, id)
		}
		return err
	}
	go s.sched.ExecuteNow(context.WithoutCancel(ctx), j)
	return nil
}

// ReconcileOnStartup rebuilds triggers for enabled jobs and applies the
// misfire policy. Call once, before StartScheduler.
func (s *Service) ReconcileOnStartup(ctx context.Context) error {
	return s.sched.ReconcileOnStartup(ctx)
}

func (s *Service) StartScheduler() { s.sched.Start() }
func (s *Service) StopScheduler()  { s.sched.Stop() }

func validateJob(req *repository.CreateJobRequest) error {
	if req.Name == "" {
		return common.ValidationErrorf("job name is required")
	}
	if req.Script == "" {
		return common.ValidationErrorf("job script is required")
	}
	switch constants.JobType(req.JobType) {
	case constants.JobTypeOneTime:
		if req.RunDate == nil {
			return common.ValidationErrorf("one-time job needs a run date")
		}
	case constants.JobTypeRecurring:
		if req.RecurrenceKind == nil {
			return common.ValidationErrorf("recurring job needs a recurrence kind")
		}
		switch constants.RecurrenceKind(*req.RecurrenceKind) {
		case constants.RecurrenceInterval:
			if req.IntervalSeconds == nil || *req.IntervalSeconds <= 0 {
				return common.ValidationErrorf("interval job needs a positive interval")
			}
		case constants.RecurrenceDaily:
			if req.RecurrenceTime == nil {
				return common.ValidationErrorf("daily job needs a time of day")
			}
		case constants.RecurrenceWeekly:
			if req.RecurrenceTime == nil || req.DaysOfWeek == nil || *req.DaysOfWeek == "" {
				return common.ValidationErrorf("weekly job needs a time of day and weekdays")
			}
		case constants.RecurrenceMonthly:
			if req.RecurrenceTime == nil || req.DayOfMonth == nil {
				return common.ValidationErrorf("monthly job needs a time of day and a day of month")
			}
			if *req.DayOfMonth < 1 || *req.DayOfMonth > 31 {
				return common.ValidationErrorf("day of month must be 1..31, got %d", *req.DayOfMonth)
			}
		default:
			return common.ValidationErrorf("unknown recurrence kind %q", *req.RecurrenceKind)
		}
	default:
		return common.ValidationErrorf("unknown job type %q", req.JobType)
	}
	return nil
}
