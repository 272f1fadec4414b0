// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	entfield "github.com/autohub/automation-hub/gen/ent/field"
	"github.com/autohub/automation-hub/gen/ent/predicate"
	"github.com/autohub/automation-hub/gen/ent/template"
	"github.com/google/uuid"
)

// TemplateUpdate is the builder for updating Template entities.
type TemplateUpdate struct {
	config
	hooks    []Hook
	mutation *TemplateMutation
}

// Where appends a list predicates to the TemplateUpdate builder.
func (_u *TemplateUpdate) Where(ps ...predicate.Template) *TemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *TemplateUpdate) SetName(v string) *TemplateUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillableName(v *string) *TemplateUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetBaseWidth sets the "base_width" field.
func (_u *TemplateUpdate) SetBaseWidth(v float64) *TemplateUpdate {
	_u.mutation.ResetBaseWidth()
	_u.mutation.SetBaseWidth(v)
	return _u
}

// SetNillableBaseWidth sets the "base_width" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillableBaseWidth(v *float64) *TemplateUpdate {
	if v != nil {
		_u.SetBaseWidth(*v)
	}
	return _u
}

// AddBaseWidth adds value to the "base_width" field.
func (_u *TemplateUpdate) AddBaseWidth(v float64) *TemplateUpdate {
	_u.mutation.AddBaseWidth(v)
	return _u
}

// SetBaseHeight sets the "base_height" field.
func (_u *TemplateUpdate) SetBaseHeight(v float64) *TemplateUpdate {
	_u.mutation.ResetBaseHeight()
	_u.mutation.SetBaseHeight(v)
	return _u
}

// SetNillableBaseHeight sets the "base_height" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillableBaseHeight(v *float64) *TemplateUpdate {
	if v != nil {
		_u.SetBaseHeight(*v)
	}
	return _u
}

// AddBaseHeight adds value to the "base_height" field.
func (_u *TemplateUpdate) AddBaseHeight(v float64) *TemplateUpdate {
	_u.mutation.AddBaseHeight(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TemplateUpdate) SetCreatedAt(v time.Time) *TemplateUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillableCreatedAt(v *time.Time) *TemplateUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddFieldIDs adds the "fields" edge to the Field entity by IDs.
func (_u *TemplateUpdate) AddFieldIDs(ids ...uuid.UUID) *TemplateUpdate {
	_u.mutation.AddFieldIDs(ids...)
	return _u
}

// AddFields adds the "fields" edges to the Field entity.
func (_u *TemplateUpdate) AddFields(v ...*Field) *TemplateUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFieldIDs(ids...)
}

// Mutation returns the TemplateMutation object of the builder.
func (_u *TemplateUpdate) Mutation() *TemplateMutation {
	return _u.mutation
}

// ClearFields clears all "fields" edges to the Field entity.
func (_u *TemplateUpdate) ClearFields() *TemplateUpdate {
	_u.mutation.ClearFields()
	return _u
}

// RemoveFieldIDs removes the "fields" edge to Field entities by IDs.
func (_u *TemplateUpdate) RemoveFieldIDs(ids ...uuid.UUID) *TemplateUpdate {
	_u.mutation.RemoveFieldIDs(ids...)
	return _u
}

// RemoveFields removes "fields" edges to Field entities.
func (_u *TemplateUpdate) RemoveFields(v ...*Field) *TemplateUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFieldIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TemplateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TemplateUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := template.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Template.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BaseWidth(); ok {
		if err := template.BaseWidthValidator(v); err != nil {
			return &ValidationError{Name: "base_width", err: fmt.Errorf(`ent: validator failed for field "Template.base_width": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BaseHeight(); ok {
		if err := template.BaseHeightValidator(v); err != nil {
			return &ValidationError{Name: "base_height", err: fmt.Errorf(`ent: validator failed for field "Template.base_height": %w`, err)}
		}
	}
	return nil
}

func (_u *TemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(template.Table, template.Columns, sqlgraph.NewFieldSpec(template.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(template.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaseWidth(); ok {
		_spec.SetField(template.FieldBaseWidth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBaseWidth(); ok {
		_spec.AddField(template.FieldBaseWidth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BaseHeight(); ok {
		_spec.SetField(template.FieldBaseHeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBaseHeight(); ok {
		_spec.AddField(template.FieldBaseHeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(template.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   template.FieldsTable,
			Columns: []string{template.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entfield.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFieldsIDs(); len(nodes) > 0 && !_u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   template.FieldsTable,
			Columns: []string{template.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entfield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   template.FieldsTable,
			Columns: []string{template.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entfield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{template.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TemplateUpdateOne is the builder for updating a single Template entity.
type TemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TemplateMutation
}

// SetName sets the "name" field.
func (_u *TemplateUpdateOne) SetName(v string) *TemplateUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillableName(v *string) *TemplateUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetBaseWidth sets the "base_width" field.
func (_u *TemplateUpdateOne) SetBaseWidth(v float64) *TemplateUpdateOne {
	_u.mutation.ResetBaseWidth()
	_u.mutation.SetBaseWidth(v)
	return _u
}

// SetNillableBaseWidth sets the "base_width" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillableBaseWidth(v *float64) *TemplateUpdateOne {
	if v != nil {
		_u.SetBaseWidth(*v)
	}
	return _u
}

// AddBaseWidth adds value to the "base_width" field.
func (_u *TemplateUpdateOne) AddBaseWidth(v float64) *TemplateUpdateOne {
	_u.mutation.AddBaseWidth(v)
	return _u
}

// SetBaseHeight sets the "base_height" field.
func (_u *TemplateUpdateOne) SetBaseHeight(v float64) *TemplateUpdateOne {
	_u.mutation.ResetBaseHeight()
	_u.mutation.SetBaseHeight(v)
	return _u
}

// SetNillableBaseHeight sets the "base_height" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillableBaseHeight(v *float64) *TemplateUpdateOne {
	if v != nil {
		_u.SetBaseHeight(*v)
	}
	return _u
}

// AddBaseHeight adds value to the "base_height" field.
func (_u *TemplateUpdateOne) AddBaseHeight(v float64) *TemplateUpdateOne {
	_u.mutation.AddBaseHeight(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TemplateUpdateOne) SetCreatedAt(v time.Time) *TemplateUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillableCreatedAt(v *time.Time) *TemplateUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddFieldIDs adds the "fields" edge to the Field entity by IDs.
func (_u *TemplateUpdateOne) AddFieldIDs(ids ...uuid.UUID) *TemplateUpdateOne {
	_u.mutation.AddFieldIDs(ids...)
	return _u
}

// AddFields adds the "fields" edges to the Field entity.
func (_u *TemplateUpdateOne) AddFields(v ...*Field) *TemplateUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFieldIDs(ids...)
}

// Mutation returns the TemplateMutation object of the builder.
func (_u *TemplateUpdateOne) Mutation() *TemplateMutation {
	return _u.mutation
}

// ClearFields clears all "fields" edges to the Field entity.
func (_u *TemplateUpdateOne) ClearFields() *TemplateUpdateOne {
	_u.mutation.ClearFields()
	return _u
}

// RemoveFieldIDs removes the "fields" edge to Field entities by IDs.
func (_u *TemplateUpdateOne) RemoveFieldIDs(ids ...uuid.UUID) *TemplateUpdateOne {
	_u.mutation.RemoveFieldIDs(ids...)
	return _u
}

// RemoveFields removes "fields" edges to Field entities.
func (_u *TemplateUpdateOne) RemoveFields(v ...*Field) *TemplateUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFieldIDs(ids...)
}

// Where appends a list predicates to the TemplateUpdate builder.
func (_u *TemplateUpdateOne) Where(ps ...predicate.Template) *TemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TemplateUpdateOne) Select(field string, fields ...string) *TemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Template entity.
func (_u *TemplateUpdateOne) Save(ctx context.Context) (*Template, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TemplateUpdateOne) SaveX(ctx context.Context) *Template {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TemplateUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := template.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Template.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BaseWidth(); ok {
		if err := template.BaseWidthValidator(v); err != nil {
			return &ValidationError{Name: "base_width", err: fmt.Errorf(`ent: validator failed for field "Template.base_width": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BaseHeight(); ok {
		if err := template.BaseHeightValidator(v); err != nil {
			return &ValidationError{Name: "base_height", err: fmt.Errorf(`ent: validator failed for field "Template.base_height": %w`, err)}
		}
	}
	return nil
}

func (_u *TemplateUpdateOne) sqlSave(ctx context.Context) (_node *Template, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(template.Table, template.Columns, sqlgraph.NewFieldSpec(template.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Template.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, template.FieldID)
		for _, f := range fields {
			if !template.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != template.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(template.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaseWidth(); ok {
		_spec.SetField(template.FieldBaseWidth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBaseWidth(); ok {
		_spec.AddField(template.FieldBaseWidth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BaseHeight(); ok {
		_spec.SetField(template.FieldBaseHeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBaseHeight(); ok {
		_spec.AddField(template.FieldBaseHeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(template.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   template.FieldsTable,
			Columns: []string{template.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entfield.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFieldsIDs(); len(nodes) > 0 && !_u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   template.FieldsTable,
			Columns: []string{template.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entfield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   template.FieldsTable,
			Columns: []string{template.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entfield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Template{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{template.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
