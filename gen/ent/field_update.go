// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	entfield "github.com/autohub/automation-hub/gen/ent/field"
	"github.com/autohub/automation-hub/gen/ent/predicate"
	"github.com/autohub/automation-hub/gen/ent/template"
	"github.com/google/uuid"
)

// FieldUpdate is the builder for updating Field entities.
type FieldUpdate struct {
	config
	hooks    []Hook
	mutation *FieldMutation
}

// Where appends a list predicates to the FieldUpdate builder.
func (_u *FieldUpdate) Where(ps ...predicate.Field) *FieldUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *FieldUpdate) SetTemplateID(v uuid.UUID) *FieldUpdate {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *FieldUpdate) SetNillableTemplateID(v *uuid.UUID) *FieldUpdate {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *FieldUpdate) SetName(v string) *FieldUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FieldUpdate) SetNillableName(v *string) *FieldUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetX sets the "x" field.
func (_u *FieldUpdate) SetX(v float64) *FieldUpdate {
	_u.mutation.ResetX()
	_u.mutation.SetX(v)
	return _u
}

// SetNillableX sets the "x" field if the given value is not nil.
func (_u *FieldUpdate) SetNillableX(v *float64) *FieldUpdate {
	if v != nil {
		_u.SetX(*v)
	}
	return _u
}

// AddX adds value to the "x" field.
func (_u *FieldUpdate) AddX(v float64) *FieldUpdate {
	_u.mutation.AddX(v)
	return _u
}

// SetY sets the "y" field.
func (_u *FieldUpdate) SetY(v float64) *FieldUpdate {
	_u.mutation.ResetY()
	_u.mutation.SetY(v)
	return _u
}

// SetNillableY sets the "y" field if the given value is not nil.
func (_u *FieldUpdate) SetNillableY(v *float64) *FieldUpdate {
	if v != nil {
		_u.SetY(*v)
	}
	return _u
}

// AddY adds value to the "y" field.
func (_u *FieldUpdate) AddY(v float64) *FieldUpdate {
	_u.mutation.AddY(v)
	return _u
}

// SetWidth sets the "width" field.
func (_u *FieldUpdate) SetWidth(v float64) *FieldUpdate {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *FieldUpdate) SetNillableWidth(v *float64) *FieldUpdate {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *FieldUpdate) AddWidth(v float64) *FieldUpdate {
	_u.mutation.AddWidth(v)
	return _u
}

// SetHeight sets the "height" field.
func (_u *FieldUpdate) SetHeight(v float64) *FieldUpdate {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *FieldUpdate) SetNillableHeight(v *float64) *FieldUpdate {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *FieldUpdate) AddHeight(v float64) *FieldUpdate {
	_u.mutation.AddHeight(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *FieldUpdate) SetPosition(v int) *FieldUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *FieldUpdate) SetNillablePosition(v *int) *FieldUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *FieldUpdate) AddPosition(v int) *FieldUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetTemplate sets the "template" edge to the Template entity.
func (_u *FieldUpdate) SetTemplate(v *Template) *FieldUpdate {
	return _u.SetTemplateID(v.ID)
}

// Mutation returns the FieldMutation object of the builder.
func (_u *FieldUpdate) Mutation() *FieldMutation {
	return _u.mutation
}

// ClearTemplate clears the "template" edge to the Template entity.
func (_u *FieldUpdate) ClearTemplate() *FieldUpdate {
	_u.mutation.ClearTemplate()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FieldUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FieldUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FieldUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := entfield.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Field.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Width(); ok {
		if err := entfield.WidthValidator(v); err != nil {
			return &ValidationError{Name: "width", err: fmt.Errorf(`ent: validator failed for field "Field.width": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Height(); ok {
		if err := entfield.HeightValidator(v); err != nil {
			return &ValidationError{Name: "height", err: fmt.Errorf(`ent: validator failed for field "Field.height": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := entfield.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Field.position": %w`, err)}
		}
	}
	if _u.mutation.TemplateCleared() && len(_u.mutation.TemplateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Field.template"`)
	}
	return nil
}

func (_u *FieldUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entfield.Table, entfield.Columns, sqlgraph.NewFieldSpec(entfield.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(entfield.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.X(); ok {
		_spec.SetField(entfield.FieldX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedX(); ok {
		_spec.AddField(entfield.FieldX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Y(); ok {
		_spec.SetField(entfield.FieldY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedY(); ok {
		_spec.AddField(entfield.FieldY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(entfield.FieldWidth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(entfield.FieldWidth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(entfield.FieldHeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(entfield.FieldHeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(entfield.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(entfield.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.TemplateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entfield.TemplateTable,
			Columns: []string{entfield.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(template.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entfield.TemplateTable,
			Columns: []string{entfield.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(template.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FieldUpdateOne is the builder for updating a single Field entity.
type FieldUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FieldMutation
}

// SetTemplateID sets the "template_id" field.
func (_u *FieldUpdateOne) SetTemplateID(v uuid.UUID) *FieldUpdateOne {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *FieldUpdateOne) SetNillableTemplateID(v *uuid.UUID) *FieldUpdateOne {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *FieldUpdateOne) SetName(v string) *FieldUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FieldUpdateOne) SetNillableName(v *string) *FieldUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetX sets the "x" field.
func (_u *FieldUpdateOne) SetX(v float64) *FieldUpdateOne {
	_u.mutation.ResetX()
	_u.mutation.SetX(v)
	return _u
}

// SetNillableX sets the "x" field if the given value is not nil.
func (_u *FieldUpdateOne) SetNillableX(v *float64) *FieldUpdateOne {
	if v != nil {
		_u.SetX(*v)
	}
	return _u
}

// AddX adds value to the "x" field.
func (_u *FieldUpdateOne) AddX(v float64) *FieldUpdateOne {
	_u.mutation.AddX(v)
	return _u
}

// SetY sets the "y" field.
func (_u *FieldUpdateOne) SetY(v float64) *FieldUpdateOne {
	_u.mutation.ResetY()
	_u.mutation.SetY(v)
	return _u
}

// SetNillableY sets the "y" field if the given value is not nil.
func (_u *FieldUpdateOne) SetNillableY(v *float64) *FieldUpdateOne {
	if v != nil {
		_u.SetY(*v)
	}
	return _u
}

// AddY adds value to the "y" field.
func (_u *FieldUpdateOne) AddY(v float64) *FieldUpdateOne {
	_u.mutation.AddY(v)
	return _u
}

// SetWidth sets the "width" field.
func (_u *FieldUpdateOne) SetWidth(v float64) *FieldUpdateOne {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *FieldUpdateOne) SetNillableWidth(v *float64) *FieldUpdateOne {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *FieldUpdateOne) AddWidth(v float64) *FieldUpdateOne {
	_u.mutation.AddWidth(v)
	return _u
}

// SetHeight sets the "height" field.
func (_u *FieldUpdateOne) SetHeight(v float64) *FieldUpdateOne {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *FieldUpdateOne) SetNillableHeight(v *float64) *FieldUpdateOne {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *FieldUpdateOne) AddHeight(v float64) *FieldUpdateOne {
	_u.mutation.AddHeight(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *FieldUpdateOne) SetPosition(v int) *FieldUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *FieldUpdateOne) SetNillablePosition(v *int) *FieldUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *FieldUpdateOne) AddPosition(v int) *FieldUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetTemplate sets the "template" edge to the Template entity.
func (_u *FieldUpdateOne) SetTemplate(v *Template) *FieldUpdateOne {
	return _u.SetTemplateID(v.ID)
}

// Mutation returns the FieldMutation object of the builder.
func (_u *FieldUpdateOne) Mutation() *FieldMutation {
	return _u.mutation
}

// ClearTemplate clears the "template" edge to the Template entity.
func (_u *FieldUpdateOne) ClearTemplate() *FieldUpdateOne {
	_u.mutation.ClearTemplate()
	return _u
}

// Where appends a list predicates to the FieldUpdate builder.
func (_u *FieldUpdateOne) Where(ps ...predicate.Field) *FieldUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FieldUpdateOne) Select(field string, fields ...string) *FieldUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Field entity.
func (_u *FieldUpdateOne) Save(ctx context.Context) (*Field, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldUpdateOne) SaveX(ctx context.Context) *Field {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FieldUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FieldUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := entfield.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Field.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Width(); ok {
		if err := entfield.WidthValidator(v); err != nil {
			return &ValidationError{Name: "width", err: fmt.Errorf(`ent: validator failed for field "Field.width": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Height(); ok {
		if err := entfield.HeightValidator(v); err != nil {
			return &ValidationError{Name: "height", err: fmt.Errorf(`ent: validator failed for field "Field.height": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := entfield.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Field.position": %w`, err)}
		}
	}
	if _u.mutation.TemplateCleared() && len(_u.mutation.TemplateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Field.template"`)
	}
	return nil
}

func (_u *FieldUpdateOne) sqlSave(ctx context.Context) (_node *Field, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entfield.Table, entfield.Columns, sqlgraph.NewFieldSpec(entfield.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Field.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entfield.FieldID)
		for _, f := range fields {
			if !entfield.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entfield.FieldID {
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
		_spec.SetField(entfield.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.X(); ok {
		_spec.SetField(entfield.FieldX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedX(); ok {
		_spec.AddField(entfield.FieldX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Y(); ok {
		_spec.SetField(entfield.FieldY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedY(); ok {
		_spec.AddField(entfield.FieldY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(entfield.FieldWidth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(entfield.FieldWidth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(entfield.FieldHeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(entfield.FieldHeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(entfield.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(entfield.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.TemplateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entfield.TemplateTable,
			Columns: []string{entfield.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(template.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entfield.TemplateTable,
			Columns: []string{entfield.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(template.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Field{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
