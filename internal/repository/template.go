package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/autohub/automation-hub/gen/ent"
	entfield "github.com/autohub/automation-hub/gen/ent/field"
	"github.com/autohub/automation-hub/gen/ent/template"
)

// ErrTemplateExists is returned by Save when the name is taken and the
// caller did not confirm the overwrite.
var ErrTemplateExists = errors.New("template name already exists")

// FieldSpec is one named rectangle, already de-scaled to the reference
// coordinate space.
type FieldSpec struct {
	Name   string
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// SaveTemplateRequest wraps parameters for creating a template.
type SaveTemplateRequest struct {
	Name       string
	BaseWidth  float64
	BaseHeight float64
	Fields     []FieldSpec
	// Overwrite deletes an existing template of the same name (cascading
	// to its fields) before recreating it.
	Overwrite bool
}

type TemplateRepository interface {
	Save(ctx context.Context, req *SaveTemplateRequest) (*ent.Template, error)
	GetWithFields(ctx context.Context, id uuid.UUID) (*ent.Template, []*ent.Field, error)
	List(ctx context.Context) ([]*ent.Template, error)
}

type templateRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTemplateRepository(client *ent.Client, logger *slog.Logger) TemplateRepository {
	return &templateRepository{
		client: client,
		logger: logger,
	}
}

// Save persists a template and its fields in one transaction. A name
// collision is resolved by delete+recreate only when req.Overwrite is set.
func (r *templateRepository) Save(ctx context.Context, req *SaveTemplateRequest) (*ent.Template, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}
	rollback := func(err error) (*ent.Template, error) {
		_ = tx.Rollback()
		return nil, err
	}

	existing, err := tx.Template.Query().
		Where(template.NameEQ(req.Name)).
		Only(ctx)
	switch {
	case err == nil:
		if !req.Overwrite {
			return rollback(ErrTemplateExists)
		}
		// FK cascade removes the fields with the template row.
		if err := tx.Template.DeleteOneID(existing.ID).Exec(ctx); err != nil {
			r.logger.Error("failed to delete template for overwrite", "name", req.Name, "error", err)
			return rollback(err)
		}
	case !ent.IsNotFound(err):
		return rollback(err)
	}

	tpl, err := tx.Template.Create().
		SetName(req.Name).
		SetBaseWidth(req.BaseWidth).
		SetBaseHeight(req.BaseHeight).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create template", "name", req.Name, "error", err)
		return rollback(err)
	}

	builders := make([]*ent.FieldCreate, len(req.Fields))
	for i, f := range req.Fields {
		builders[i] = tx.Field.Create().
			SetTemplateID(tpl.ID).
			SetName(f.Name).
			SetX(f.X).
			SetY(f.Y).
			SetWidth(f.Width).
			SetHeight(f.Height).
			SetPosition(i)
	}
	if _, err := tx.Field.CreateBulk(builders...).Save(ctx); err != nil {
		r.logger.Error("failed to create fields", "template", req.Name, "error", err)
		return rollback(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	r.logger.Info("template saved", "template_id", tpl.ID, "name", req.Name, "fields", len(req.Fields))
	return tpl, nil
}

// GetWithFields returns the template and its fields in definition order.
func (r *templateRepository) GetWithFields(ctx context.Context, id uuid.UUID) (*ent.Template, []*ent.Field, error) {
	tpl, err := r.client.Template.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	fields, err := r.client.Field.Query().
		Where(entfield.TemplateID(id)).
		Order(entfield.ByPosition()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to query fields", "template_id", id, "error", err)
		return nil, nil, err
	}
	return tpl, fields, nil
}

func (r *templateRepository) List(ctx context.Context) ([]*ent.Template, error) {
	tpls, err := r.client.Template.Query().
		Order(template.ByName()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list templates", "error", err)
		return nil, err
	}
	return tpls, nil
}
