// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	entfield "github.com/autohub/automation-hub/gen/ent/field"
	"github.com/autohub/automation-hub/gen/ent/template"
	"github.com/google/uuid"
)

// FieldCreate is the builder for creating a Field entity.
type FieldCreate struct {
	config
	mutation *FieldMutation
	hooks    []Hook
}

// SetTemplateID sets the "template_id" field.
func (_c *FieldCreate) SetTemplateID(v uuid.UUID) *FieldCreate {
	_c.mutation.SetTemplateID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *FieldCreate) SetName(v string) *FieldCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetX sets the "x" field.
func (_c *FieldCreate) SetX(v float64) *FieldCreate {
	_c.mutation.SetX(v)
	return _c
}

// SetY sets the "y" field.
func (_c *FieldCreate) SetY(v float64) *FieldCreate {
	_c.mutation.SetY(v)
	return _c
}

// SetWidth sets the "width" field.
func (_c *FieldCreate) SetWidth(v float64) *FieldCreate {
	_c.mutation.SetWidth(v)
	return _c
}

// SetHeight sets the "height" field.
func (_c *FieldCreate) SetHeight(v float64) *FieldCreate {
	_c.mutation.SetHeight(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *FieldCreate) SetPosition(v int) *FieldCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetID sets the "id" field.
func (_c *FieldCreate) SetID(v uuid.UUID) *FieldCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FieldCreate) SetNillableID(v *uuid.UUID) *FieldCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTemplate sets the "template" edge to the Template entity.
func (_c *FieldCreate) SetTemplate(v *Template) *FieldCreate {
	return _c.SetTemplateID(v.ID)
}

// Mutation returns the FieldMutation object of the builder.
func (_c *FieldCreate) Mutation() *FieldMutation {
	return _c.mutation
}

// Save creates the Field in the database.
func (_c *FieldCreate) Save(ctx context.Context) (*Field, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FieldCreate) SaveX(ctx context.Context) *Field {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FieldCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FieldCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FieldCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := entfield.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FieldCreate) check() error {
	if _, ok := _c.mutation.TemplateID(); !ok {
		return &ValidationError{Name: "template_id", err: errors.New(`ent: missing required field "Field.template_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Field.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := entfield.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Field.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.X(); !ok {
		return &ValidationError{Name: "x", err: errors.New(`ent: missing required field "Field.x"`)}
	}
	if _, ok := _c.mutation.Y(); !ok {
		return &ValidationError{Name: "y", err: errors.New(`ent: missing required field "Field.y"`)}
	}
	if _, ok := _c.mutation.Width(); !ok {
		return &ValidationError{Name: "width", err: errors.New(`ent: missing required field "Field.width"`)}
	}
	if v, ok := _c.mutation.Width(); ok {
		if err := entfield.WidthValidator(v); err != nil {
			return &ValidationError{Name: "width", err: fmt.Errorf(`ent: validator failed for field "Field.width": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Height(); !ok {
		return &ValidationError{Name: "height", err: errors.New(`ent: missing required field "Field.height"`)}
	}
	if v, ok := _c.mutation.Height(); ok {
		if err := entfield.HeightValidator(v); err != nil {
			return &ValidationError{Name: "height", err: fmt.Errorf(`ent: validator failed for field "Field.height": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Field.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := entfield.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Field.position": %w`, err)}
		}
	}
	if len(_c.mutation.TemplateIDs()) == 0 {
		return &ValidationError{Name: "template", err: errors.New(`ent: missing required edge "Field.template"`)}
	}
	return nil
}

func (_c *FieldCreate) sqlSave(ctx context.Context) (*Field, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FieldCreate) createSpec() (*Field, *sqlgraph.CreateSpec) {
	var (
		_node = &Field{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entfield.Table, sqlgraph.NewFieldSpec(entfield.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(entfield.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.X(); ok {
		_spec.SetField(entfield.FieldX, field.TypeFloat64, value)
		_node.X = value
	}
	if value, ok := _c.mutation.Y(); ok {
		_spec.SetField(entfield.FieldY, field.TypeFloat64, value)
		_node.Y = value
	}
	if value, ok := _c.mutation.Width(); ok {
		_spec.SetField(entfield.FieldWidth, field.TypeFloat64, value)
		_node.Width = value
	}
	if value, ok := _c.mutation.Height(); ok {
		_spec.SetField(entfield.FieldHeight, field.TypeFloat64, value)
		_node.Height = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(entfield.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if nodes := _c.mutation.TemplateIDs(); len(nodes) > 0 {
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
		_node.TemplateID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FieldCreateBulk is the builder for creating many Field entities in bulk.
type FieldCreateBulk struct {
	config
	err      error
	builders []*FieldCreate
}

// Save creates the Field entities in the database.
func (_c *FieldCreateBulk) Save(ctx context.Context) ([]*Field, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Field, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FieldMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *FieldCreateBulk) SaveX(ctx context.Context) []*Field {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FieldCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FieldCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
