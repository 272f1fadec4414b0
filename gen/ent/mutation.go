// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	entfield "github.com/autohub/automation-hub/gen/ent/field"
	"github.com/autohub/automation-hub/gen/ent/job"
	"github.com/autohub/automation-hub/gen/ent/predicate"
	"github.com/autohub/automation-hub/gen/ent/template"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeField    = "Field"
	TypeJob      = "Job"
	TypeTemplate = "Template"
)

// FieldMutation represents an operation that mutates the Field nodes in the graph.
type FieldMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	name            *string
	x               *float64
	addx            *float64
	y               *float64
	addy            *float64
	width           *float64
	addwidth        *float64
	height          *float64
	addheight       *float64
	position        *int
	addposition     *int
	clearedFields   map[string]struct{}
	template        *uuid.UUID
	clearedtemplate bool
	done            bool
	oldValue        func(context.Context) (*Field, error)
	predicates      []predicate.Field
}

var _ ent.Mutation = (*FieldMutation)(nil)

// fieldOption allows management of the mutation configuration using functional options.
type fieldOption func(*FieldMutation)

// newFieldMutation creates new mutation for the Field entity.
func newFieldMutation(c config, op Op, opts ...fieldOption) *FieldMutation {
	m := &FieldMutation{
		config:        c,
		op:            op,
		typ:           TypeField,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFieldID sets the ID field of the mutation.
func withFieldID(id uuid.UUID) fieldOption {
	return func(m *FieldMutation) {
		var (
			err   error
			once  sync.Once
			value *Field
		)
		m.oldValue = func(ctx context.Context) (*Field, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Field.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withField sets the old Field of the mutation.
func withField(node *Field) fieldOption {
	return func(m *FieldMutation) {
		m.oldValue = func(context.Context) (*Field, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FieldMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FieldMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Field entities.
func (m *FieldMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FieldMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FieldMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Field.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTemplateID sets the "template_id" field.
func (m *FieldMutation) SetTemplateID(u uuid.UUID) {
	m.template = &u
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *FieldMutation) TemplateID() (r uuid.UUID, exists bool) {
	v := m.template
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the Field entity.
// If the Field object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMutation) OldTemplateID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *FieldMutation) ResetTemplateID() {
	m.template = nil
}

// SetName sets the "name" field.
func (m *FieldMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *FieldMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Field entity.
// If the Field object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *FieldMutation) ResetName() {
	m.name = nil
}

// SetX sets the "x" field.
func (m *FieldMutation) SetX(f float64) {
	m.x = &f
	m.addx = nil
}

// X returns the value of the "x" field in the mutation.
func (m *FieldMutation) X() (r float64, exists bool) {
	v := m.x
	if v == nil {
		return
	}
	return *v, true
}

// OldX returns the old "x" field's value of the Field entity.
// If the Field object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMutation) OldX(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldX is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldX requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldX: %w", err)
	}
	return oldValue.X, nil
}

// AddX adds f to the "x" field.
func (m *FieldMutation) AddX(f float64) {
	if m.addx != nil {
		*m.addx += f
	} else {
		m.addx = &f
	}
}

// AddedX returns the value that was added to the "x" field in this mutation.
func (m *FieldMutation) AddedX() (r float64, exists bool) {
	v := m.addx
	if v == nil {
		return
	}
	return *v, true
}

// ResetX resets all changes to the "x" field.
func (m *FieldMutation) ResetX() {
	m.x = nil
	m.addx = nil
}

// SetY sets the "y" field.
func (m *FieldMutation) SetY(f float64) {
	m.y = &f
	m.addy = nil
}

// Y returns the value of the "y" field in the mutation.
func (m *FieldMutation) Y() (r float64, exists bool) {
	v := m.y
	if v == nil {
		return
	}
	return *v, true
}

// OldY returns the old "y" field's value of the Field entity.
// If the Field object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMutation) OldY(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldY is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldY requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldY: %w", err)
	}
	return oldValue.Y, nil
}

// AddY adds f to the "y" field.
func (m *FieldMutation) AddY(f float64) {
	if m.addy != nil {
		*m.addy += f
	} else {
		m.addy = &f
	}
}

// AddedY returns the value that was added to the "y" field in this mutation.
func (m *FieldMutation) AddedY() (r float64, exists bool) {
	v := m.addy
	if v == nil {
		return
	}
	return *v, true
}

// ResetY resets all changes to the "y" field.
func (m *FieldMutation) ResetY() {
	m.y = nil
	m.addy = nil
}

// SetWidth sets the "width" field.
func (m *FieldMutation) SetWidth(f float64) {
	m.width = &f
	m.addwidth = nil
}

// Width returns the value of the "width" field in the mutation.
func (m *FieldMutation) Width() (r float64, exists bool) {
	v := m.width
	if v == nil {
		return
	}
	return *v, true
}

// OldWidth returns the old "width" field's value of the Field entity.
// If the Field object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMutation) OldWidth(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWidth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWidth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWidth: %w", err)
	}
	return oldValue.Width, nil
}

// AddWidth adds f to the "width" field.
func (m *FieldMutation) AddWidth(f float64) {
	if m.addwidth != nil {
		*m.addwidth += f
	} else {
		m.addwidth = &f
	}
}

// AddedWidth returns the value that was added to the "width" field in this mutation.
func (m *FieldMutation) AddedWidth() (r float64, exists bool) {
	v := m.addwidth
	if v == nil {
		return
	}
	return *v, true
}

// ResetWidth resets all changes to the "width" field.
func (m *FieldMutation) ResetWidth() {
	m.width = nil
	m.addwidth = nil
}

// SetHeight sets the "height" field.
func (m *FieldMutation) SetHeight(f float64) {
	m.height = &f
	m.addheight = nil
}

// Height returns the value of the "height" field in the mutation.
func (m *FieldMutation) Height() (r float64, exists bool) {
	v := m.height
	if v == nil {
		return
	}
	return *v, true
}

// OldHeight returns the old "height" field's value of the Field entity.
// If the Field object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMutation) OldHeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeight: %w", err)
	}
	return oldValue.Height, nil
}

// AddHeight adds f to the "height" field.
func (m *FieldMutation) AddHeight(f float64) {
	if m.addheight != nil {
		*m.addheight += f
	} else {
		m.addheight = &f
	}
}

// AddedHeight returns the value that was added to the "height" field in this mutation.
func (m *FieldMutation) AddedHeight() (r float64, exists bool) {
	v := m.addheight
	if v == nil {
		return
	}
	return *v, true
}

// ResetHeight resets all changes to the "height" field.
func (m *FieldMutation) ResetHeight() {
	m.height = nil
	m.addheight = nil
}

// SetPosition sets the "position" field.
func (m *FieldMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *FieldMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Field entity.
// If the Field object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *FieldMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *FieldMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *FieldMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// ClearTemplate clears the "template" edge to the Template entity.
func (m *FieldMutation) ClearTemplate() {
	m.clearedtemplate = true
	m.clearedFields[entfield.FieldTemplateID] = struct{}{}
}

// TemplateCleared reports if the "template" edge to the Template entity was cleared.
func (m *FieldMutation) TemplateCleared() bool {
	return m.clearedtemplate
}

// TemplateIDs returns the "template" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TemplateID instead. It exists only for internal usage by the builders.
func (m *FieldMutation) TemplateIDs() (ids []uuid.UUID) {
	if id := m.template; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTemplate resets all changes to the "template" edge.
func (m *FieldMutation) ResetTemplate() {
	m.template = nil
	m.clearedtemplate = false
}

// Where appends a list predicates to the FieldMutation builder.
func (m *FieldMutation) Where(ps ...predicate.Field) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FieldMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FieldMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Field, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FieldMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FieldMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Field).
func (m *FieldMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FieldMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.template != nil {
		fields = append(fields, entfield.FieldTemplateID)
	}
	if m.name != nil {
		fields = append(fields, entfield.FieldName)
	}
	if m.x != nil {
		fields = append(fields, entfield.FieldX)
	}
	if m.y != nil {
		fields = append(fields, entfield.FieldY)
	}
	if m.width != nil {
		fields = append(fields, entfield.FieldWidth)
	}
	if m.height != nil {
		fields = append(fields, entfield.FieldHeight)
	}
	if m.position != nil {
		fields = append(fields, entfield.FieldPosition)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FieldMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entfield.FieldTemplateID:
		return m.TemplateID()
	case entfield.FieldName:
		return m.Name()
	case entfield.FieldX:
		return m.X()
	case entfield.FieldY:
		return m.Y()
	case entfield.FieldWidth:
		return m.Width()
	case entfield.FieldHeight:
		return m.Height()
	case entfield.FieldPosition:
		return m.Position()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FieldMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entfield.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case entfield.FieldName:
		return m.OldName(ctx)
	case entfield.FieldX:
		return m.OldX(ctx)
	case entfield.FieldY:
		return m.OldY(ctx)
	case entfield.FieldWidth:
		return m.OldWidth(ctx)
	case entfield.FieldHeight:
		return m.OldHeight(ctx)
	case entfield.FieldPosition:
		return m.OldPosition(ctx)
	}
	return nil, fmt.Errorf("unknown Field field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FieldMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entfield.FieldTemplateID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case entfield.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case entfield.FieldX:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetX(v)
		return nil
	case entfield.FieldY:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetY(v)
		return nil
	case entfield.FieldWidth:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWidth(v)
		return nil
	case entfield.FieldHeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeight(v)
		return nil
	case entfield.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Field field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FieldMutation) AddedFields() []string {
	var fields []string
	if m.addx != nil {
		fields = append(fields, entfield.FieldX)
	}
	if m.addy != nil {
		fields = append(fields, entfield.FieldY)
	}
	if m.addwidth != nil {
		fields = append(fields, entfield.FieldWidth)
	}
	if m.addheight != nil {
		fields = append(fields, entfield.FieldHeight)
	}
	if m.addposition != nil {
		fields = append(fields, entfield.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FieldMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entfield.FieldX:
		return m.AddedX()
	case entfield.FieldY:
		return m.AddedY()
	case entfield.FieldWidth:
		return m.AddedWidth()
	case entfield.FieldHeight:
		return m.AddedHeight()
	case entfield.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FieldMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entfield.FieldX:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddX(v)
		return nil
	case entfield.FieldY:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddY(v)
		return nil
	case entfield.FieldWidth:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWidth(v)
		return nil
	case entfield.FieldHeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeight(v)
		return nil
	case entfield.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Field numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FieldMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FieldMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FieldMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Field nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FieldMutation) ResetField(name string) error {
	switch name {
	case entfield.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case entfield.FieldName:
		m.ResetName()
		return nil
	case entfield.FieldX:
		m.ResetX()
		return nil
	case entfield.FieldY:
		m.ResetY()
		return nil
	case entfield.FieldWidth:
		m.ResetWidth()
		return nil
	case entfield.FieldHeight:
		m.ResetHeight()
		return nil
	case entfield.FieldPosition:
		m.ResetPosition()
		return nil
	}
	return fmt.Errorf("unknown Field field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FieldMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.template != nil {
		edges = append(edges, entfield.EdgeTemplate)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FieldMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case entfield.EdgeTemplate:
		if id := m.template; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FieldMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FieldMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FieldMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtemplate {
		edges = append(edges, entfield.EdgeTemplate)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FieldMutation) EdgeCleared(name string) bool {
	switch name {
	case entfield.EdgeTemplate:
		return m.clearedtemplate
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FieldMutation) ClearEdge(name string) error {
	switch name {
	case entfield.EdgeTemplate:
		m.ClearTemplate()
		return nil
	}
	return fmt.Errorf("unknown Field unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FieldMutation) ResetEdge(name string) error {
	switch name {
	case entfield.EdgeTemplate:
		m.ResetTemplate()
		return nil
	}
	return fmt.Errorf("unknown Field edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	name                     *string
	script                   *string
	job_type                 *string
	run_date                 *time.Time
	recurrence_kind          *string
	interval_seconds         *int
	addinterval_seconds      *int
	recurrence_time          *string
	days_of_week             *string
	day_of_month             *int
	addday_of_month          *int
	enabled                  *bool
	last_run                 *time.Time
	next_run                 *time.Time
	misfire_grace_seconds    *int
	addmisfire_grace_seconds *int
	last_exit_code           *int
	addlast_exit_code        *int
	last_error               *string
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*Job, error)
	predicates               []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id uuid.UUID) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *JobMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *JobMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *JobMutation) ResetName() {
	m.name = nil
}

// SetScript sets the "script" field.
func (m *JobMutation) SetScript(s string) {
	m.script = &s
}

// Script returns the value of the "script" field in the mutation.
func (m *JobMutation) Script() (r string, exists bool) {
	v := m.script
	if v == nil {
		return
	}
	return *v, true
}

// OldScript returns the old "script" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldScript(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScript is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScript requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScript: %w", err)
	}
	return oldValue.Script, nil
}

// ResetScript resets all changes to the "script" field.
func (m *JobMutation) ResetScript() {
	m.script = nil
}

// SetJobType sets the "job_type" field.
func (m *JobMutation) SetJobType(s string) {
	m.job_type = &s
}

// JobType returns the value of the "job_type" field in the mutation.
func (m *JobMutation) JobType() (r string, exists bool) {
	v := m.job_type
	if v == nil {
		return
	}
	return *v, true
}

// OldJobType returns the old "job_type" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldJobType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobType: %w", err)
	}
	return oldValue.JobType, nil
}

// ResetJobType resets all changes to the "job_type" field.
func (m *JobMutation) ResetJobType() {
	m.job_type = nil
}

// SetRunDate sets the "run_date" field.
func (m *JobMutation) SetRunDate(t time.Time) {
	m.run_date = &t
}

// RunDate returns the value of the "run_date" field in the mutation.
func (m *JobMutation) RunDate() (r time.Time, exists bool) {
	v := m.run_date
	if v == nil {
		return
	}
	return *v, true
}

// OldRunDate returns the old "run_date" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRunDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunDate: %w", err)
	}
	return oldValue.RunDate, nil
}

// ClearRunDate clears the value of the "run_date" field.
func (m *JobMutation) ClearRunDate() {
	m.run_date = nil
	m.clearedFields[job.FieldRunDate] = struct{}{}
}

// RunDateCleared returns if the "run_date" field was cleared in this mutation.
func (m *JobMutation) RunDateCleared() bool {
	_, ok := m.clearedFields[job.FieldRunDate]
	return ok
}

// ResetRunDate resets all changes to the "run_date" field.
func (m *JobMutation) ResetRunDate() {
	m.run_date = nil
	delete(m.clearedFields, job.FieldRunDate)
}

// SetRecurrenceKind sets the "recurrence_kind" field.
func (m *JobMutation) SetRecurrenceKind(s string) {
	m.recurrence_kind = &s
}

// RecurrenceKind returns the value of the "recurrence_kind" field in the mutation.
func (m *JobMutation) RecurrenceKind() (r string, exists bool) {
	v := m.recurrence_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldRecurrenceKind returns the old "recurrence_kind" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRecurrenceKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecurrenceKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecurrenceKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecurrenceKind: %w", err)
	}
	return oldValue.RecurrenceKind, nil
}

// ClearRecurrenceKind clears the value of the "recurrence_kind" field.
func (m *JobMutation) ClearRecurrenceKind() {
	m.recurrence_kind = nil
	m.clearedFields[job.FieldRecurrenceKind] = struct{}{}
}

// RecurrenceKindCleared returns if the "recurrence_kind" field was cleared in this mutation.
func (m *JobMutation) RecurrenceKindCleared() bool {
	_, ok := m.clearedFields[job.FieldRecurrenceKind]
	return ok
}

// ResetRecurrenceKind resets all changes to the "recurrence_kind" field.
func (m *JobMutation) ResetRecurrenceKind() {
	m.recurrence_kind = nil
	delete(m.clearedFields, job.FieldRecurrenceKind)
}

// SetIntervalSeconds sets the "interval_seconds" field.
func (m *JobMutation) SetIntervalSeconds(i int) {
	m.interval_seconds = &i
	m.addinterval_seconds = nil
}

// IntervalSeconds returns the value of the "interval_seconds" field in the mutation.
func (m *JobMutation) IntervalSeconds() (r int, exists bool) {
	v := m.interval_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalSeconds returns the old "interval_seconds" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldIntervalSeconds(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalSeconds: %w", err)
	}
	return oldValue.IntervalSeconds, nil
}

// AddIntervalSeconds adds i to the "interval_seconds" field.
func (m *JobMutation) AddIntervalSeconds(i int) {
	if m.addinterval_seconds != nil {
		*m.addinterval_seconds += i
	} else {
		m.addinterval_seconds = &i
	}
}

// AddedIntervalSeconds returns the value that was added to the "interval_seconds" field in this mutation.
func (m *JobMutation) AddedIntervalSeconds() (r int, exists bool) {
	v := m.addinterval_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearIntervalSeconds clears the value of the "interval_seconds" field.
func (m *JobMutation) ClearIntervalSeconds() {
	m.interval_seconds = nil
	m.addinterval_seconds = nil
	m.clearedFields[job.FieldIntervalSeconds] = struct{}{}
}

// IntervalSecondsCleared returns if the "interval_seconds" field was cleared in this mutation.
func (m *JobMutation) IntervalSecondsCleared() bool {
	_, ok := m.clearedFields[job.FieldIntervalSeconds]
	return ok
}

// ResetIntervalSeconds resets all changes to the "interval_seconds" field.
func (m *JobMutation) ResetIntervalSeconds() {
	m.interval_seconds = nil
	m.addinterval_seconds = nil
	delete(m.clearedFields, job.FieldIntervalSeconds)
}

// SetRecurrenceTime sets the "recurrence_time" field.
func (m *JobMutation) SetRecurrenceTime(s string) {
	m.recurrence_time = &s
}

// RecurrenceTime returns the value of the "recurrence_time" field in the mutation.
func (m *JobMutation) RecurrenceTime() (r string, exists bool) {
	v := m.recurrence_time
	if v == nil {
		return
	}
	return *v, true
}

// OldRecurrenceTime returns the old "recurrence_time" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRecurrenceTime(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecurrenceTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecurrenceTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecurrenceTime: %w", err)
	}
	return oldValue.RecurrenceTime, nil
}

// ClearRecurrenceTime clears the value of the "recurrence_time" field.
func (m *JobMutation) ClearRecurrenceTime() {
	m.recurrence_time = nil
	m.clearedFields[job.FieldRecurrenceTime] = struct{}{}
}

// RecurrenceTimeCleared returns if the "recurrence_time" field was cleared in this mutation.
func (m *JobMutation) RecurrenceTimeCleared() bool {
	_, ok := m.clearedFields[job.FieldRecurrenceTime]
	return ok
}

// ResetRecurrenceTime resets all changes to the "recurrence_time" field.
func (m *JobMutation) ResetRecurrenceTime() {
	m.recurrence_time = nil
	delete(m.clearedFields, job.FieldRecurrenceTime)
}

// SetDaysOfWeek sets the "days_of_week" field.
func (m *JobMutation) SetDaysOfWeek(s string) {
	m.days_of_week = &s
}

// DaysOfWeek returns the value of the "days_of_week" field in the mutation.
func (m *JobMutation) DaysOfWeek() (r string, exists bool) {
	v := m.days_of_week
	if v == nil {
		return
	}
	return *v, true
}

// OldDaysOfWeek returns the old "days_of_week" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldDaysOfWeek(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDaysOfWeek is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDaysOfWeek requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDaysOfWeek: %w", err)
	}
	return oldValue.DaysOfWeek, nil
}

// ClearDaysOfWeek clears the value of the "days_of_week" field.
func (m *JobMutation) ClearDaysOfWeek() {
	m.days_of_week = nil
	m.clearedFields[job.FieldDaysOfWeek] = struct{}{}
}

// DaysOfWeekCleared returns if the "days_of_week" field was cleared in this mutation.
func (m *JobMutation) DaysOfWeekCleared() bool {
	_, ok := m.clearedFields[job.FieldDaysOfWeek]
	return ok
}

// ResetDaysOfWeek resets all changes to the "days_of_week" field.
func (m *JobMutation) ResetDaysOfWeek() {
	m.days_of_week = nil
	delete(m.clearedFields, job.FieldDaysOfWeek)
}

// SetDayOfMonth sets the "day_of_month" field.
func (m *JobMutation) SetDayOfMonth(i int) {
	m.day_of_month = &i
	m.addday_of_month = nil
}

// DayOfMonth returns the value of the "day_of_month" field in the mutation.
func (m *JobMutation) DayOfMonth() (r int, exists bool) {
	v := m.day_of_month
	if v == nil {
		return
	}
	return *v, true
}

// OldDayOfMonth returns the old "day_of_month" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldDayOfMonth(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDayOfMonth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDayOfMonth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDayOfMonth: %w", err)
	}
	return oldValue.DayOfMonth, nil
}

// AddDayOfMonth adds i to the "day_of_month" field.
func (m *JobMutation) AddDayOfMonth(i int) {
	if m.addday_of_month != nil {
		*m.addday_of_month += i
	} else {
		m.addday_of_month = &i
	}
}

// AddedDayOfMonth returns the value that was added to the "day_of_month" field in this mutation.
func (m *JobMutation) AddedDayOfMonth() (r int, exists bool) {
	v := m.addday_of_month
	if v == nil {
		return
	}
	return *v, true
}

// ClearDayOfMonth clears the value of the "day_of_month" field.
func (m *JobMutation) ClearDayOfMonth() {
	m.day_of_month = nil
	m.addday_of_month = nil
	m.clearedFields[job.FieldDayOfMonth] = struct{}{}
}

// DayOfMonthCleared returns if the "day_of_month" field was cleared in this mutation.
func (m *JobMutation) DayOfMonthCleared() bool {
	_, ok := m.clearedFields[job.FieldDayOfMonth]
	return ok
}

// ResetDayOfMonth resets all changes to the "day_of_month" field.
func (m *JobMutation) ResetDayOfMonth() {
	m.day_of_month = nil
	m.addday_of_month = nil
	delete(m.clearedFields, job.FieldDayOfMonth)
}

// SetEnabled sets the "enabled" field.
func (m *JobMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *JobMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *JobMutation) ResetEnabled() {
	m.enabled = nil
}

// SetLastRun sets the "last_run" field.
func (m *JobMutation) SetLastRun(t time.Time) {
	m.last_run = &t
}

// LastRun returns the value of the "last_run" field in the mutation.
func (m *JobMutation) LastRun() (r time.Time, exists bool) {
	v := m.last_run
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRun returns the old "last_run" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastRun(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRun is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRun requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRun: %w", err)
	}
	return oldValue.LastRun, nil
}

// ClearLastRun clears the value of the "last_run" field.
func (m *JobMutation) ClearLastRun() {
	m.last_run = nil
	m.clearedFields[job.FieldLastRun] = struct{}{}
}

// LastRunCleared returns if the "last_run" field was cleared in this mutation.
func (m *JobMutation) LastRunCleared() bool {
	_, ok := m.clearedFields[job.FieldLastRun]
	return ok
}

// ResetLastRun resets all changes to the "last_run" field.
func (m *JobMutation) ResetLastRun() {
	m.last_run = nil
	delete(m.clearedFields, job.FieldLastRun)
}

// SetNextRun sets the "next_run" field.
func (m *JobMutation) SetNextRun(t time.Time) {
	m.next_run = &t
}

// NextRun returns the value of the "next_run" field in the mutation.
func (m *JobMutation) NextRun() (r time.Time, exists bool) {
	v := m.next_run
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRun returns the old "next_run" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldNextRun(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRun is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRun requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRun: %w", err)
	}
	return oldValue.NextRun, nil
}

// ClearNextRun clears the value of the "next_run" field.
func (m *JobMutation) ClearNextRun() {
	m.next_run = nil
	m.clearedFields[job.FieldNextRun] = struct{}{}
}

// NextRunCleared returns if the "next_run" field was cleared in this mutation.
func (m *JobMutation) NextRunCleared() bool {
	_, ok := m.clearedFields[job.FieldNextRun]
	return ok
}

// ResetNextRun resets all changes to the "next_run" field.
func (m *JobMutation) ResetNextRun() {
	m.next_run = nil
	delete(m.clearedFields, job.FieldNextRun)
}

// SetMisfireGraceSeconds sets the "misfire_grace_seconds" field.
func (m *JobMutation) SetMisfireGraceSeconds(i int) {
	m.misfire_grace_seconds = &i
	m.addmisfire_grace_seconds = nil
}

// MisfireGraceSeconds returns the value of the "misfire_grace_seconds" field in the mutation.
func (m *JobMutation) MisfireGraceSeconds() (r int, exists bool) {
	v := m.misfire_grace_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldMisfireGraceSeconds returns the old "misfire_grace_seconds" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMisfireGraceSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMisfireGraceSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMisfireGraceSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMisfireGraceSeconds: %w", err)
	}
	return oldValue.MisfireGraceSeconds, nil
}

// AddMisfireGraceSeconds adds i to the "misfire_grace_seconds" field.
func (m *JobMutation) AddMisfireGraceSeconds(i int) {
	if m.addmisfire_grace_seconds != nil {
		*m.addmisfire_grace_seconds += i
	} else {
		m.addmisfire_grace_seconds = &i
	}
}

// AddedMisfireGraceSeconds returns the value that was added to the "misfire_grace_seconds" field in this mutation.
func (m *JobMutation) AddedMisfireGraceSeconds() (r int, exists bool) {
	v := m.addmisfire_grace_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetMisfireGraceSeconds resets all changes to the "misfire_grace_seconds" field.
func (m *JobMutation) ResetMisfireGraceSeconds() {
	m.misfire_grace_seconds = nil
	m.addmisfire_grace_seconds = nil
}

// SetLastExitCode sets the "last_exit_code" field.
func (m *JobMutation) SetLastExitCode(i int) {
	m.last_exit_code = &i
	m.addlast_exit_code = nil
}

// LastExitCode returns the value of the "last_exit_code" field in the mutation.
func (m *JobMutation) LastExitCode() (r int, exists bool) {
	v := m.last_exit_code
	if v == nil {
		return
	}
	return *v, true
}

// OldLastExitCode returns the old "last_exit_code" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastExitCode(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastExitCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastExitCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastExitCode: %w", err)
	}
	return oldValue.LastExitCode, nil
}

// AddLastExitCode adds i to the "last_exit_code" field.
func (m *JobMutation) AddLastExitCode(i int) {
	if m.addlast_exit_code != nil {
		*m.addlast_exit_code += i
	} else {
		m.addlast_exit_code = &i
	}
}

// AddedLastExitCode returns the value that was added to the "last_exit_code" field in this mutation.
func (m *JobMutation) AddedLastExitCode() (r int, exists bool) {
	v := m.addlast_exit_code
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastExitCode clears the value of the "last_exit_code" field.
func (m *JobMutation) ClearLastExitCode() {
	m.last_exit_code = nil
	m.addlast_exit_code = nil
	m.clearedFields[job.FieldLastExitCode] = struct{}{}
}

// LastExitCodeCleared returns if the "last_exit_code" field was cleared in this mutation.
func (m *JobMutation) LastExitCodeCleared() bool {
	_, ok := m.clearedFields[job.FieldLastExitCode]
	return ok
}

// ResetLastExitCode resets all changes to the "last_exit_code" field.
func (m *JobMutation) ResetLastExitCode() {
	m.last_exit_code = nil
	m.addlast_exit_code = nil
	delete(m.clearedFields, job.FieldLastExitCode)
}

// SetLastError sets the "last_error" field.
func (m *JobMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *JobMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *JobMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[job.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *JobMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[job.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *JobMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, job.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.name != nil {
		fields = append(fields, job.FieldName)
	}
	if m.script != nil {
		fields = append(fields, job.FieldScript)
	}
	if m.job_type != nil {
		fields = append(fields, job.FieldJobType)
	}
	if m.run_date != nil {
		fields = append(fields, job.FieldRunDate)
	}
	if m.recurrence_kind != nil {
		fields = append(fields, job.FieldRecurrenceKind)
	}
	if m.interval_seconds != nil {
		fields = append(fields, job.FieldIntervalSeconds)
	}
	if m.recurrence_time != nil {
		fields = append(fields, job.FieldRecurrenceTime)
	}
	if m.days_of_week != nil {
		fields = append(fields, job.FieldDaysOfWeek)
	}
	if m.day_of_month != nil {
		fields = append(fields, job.FieldDayOfMonth)
	}
	if m.enabled != nil {
		fields = append(fields, job.FieldEnabled)
	}
	if m.last_run != nil {
		fields = append(fields, job.FieldLastRun)
	}
	if m.next_run != nil {
		fields = append(fields, job.FieldNextRun)
	}
	if m.misfire_grace_seconds != nil {
		fields = append(fields, job.FieldMisfireGraceSeconds)
	}
	if m.last_exit_code != nil {
		fields = append(fields, job.FieldLastExitCode)
	}
	if m.last_error != nil {
		fields = append(fields, job.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldName:
		return m.Name()
	case job.FieldScript:
		return m.Script()
	case job.FieldJobType:
		return m.JobType()
	case job.FieldRunDate:
		return m.RunDate()
	case job.FieldRecurrenceKind:
		return m.RecurrenceKind()
	case job.FieldIntervalSeconds:
		return m.IntervalSeconds()
	case job.FieldRecurrenceTime:
		return m.RecurrenceTime()
	case job.FieldDaysOfWeek:
		return m.DaysOfWeek()
	case job.FieldDayOfMonth:
		return m.DayOfMonth()
	case job.FieldEnabled:
		return m.Enabled()
	case job.FieldLastRun:
		return m.LastRun()
	case job.FieldNextRun:
		return m.NextRun()
	case job.FieldMisfireGraceSeconds:
		return m.MisfireGraceSeconds()
	case job.FieldLastExitCode:
		return m.LastExitCode()
	case job.FieldLastError:
		return m.LastError()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldName:
		return m.OldName(ctx)
	case job.FieldScript:
		return m.OldScript(ctx)
	case job.FieldJobType:
		return m.OldJobType(ctx)
	case job.FieldRunDate:
		return m.OldRunDate(ctx)
	case job.FieldRecurrenceKind:
		return m.OldRecurrenceKind(ctx)
	case job.FieldIntervalSeconds:
		return m.OldIntervalSeconds(ctx)
	case job.FieldRecurrenceTime:
		return m.OldRecurrenceTime(ctx)
	case job.FieldDaysOfWeek:
		return m.OldDaysOfWeek(ctx)
	case job.FieldDayOfMonth:
		return m.OldDayOfMonth(ctx)
	case job.FieldEnabled:
		return m.OldEnabled(ctx)
	case job.FieldLastRun:
		return m.OldLastRun(ctx)
	case job.FieldNextRun:
		return m.OldNextRun(ctx)
	case job.FieldMisfireGraceSeconds:
		return m.OldMisfireGraceSeconds(ctx)
	case job.FieldLastExitCode:
		return m.OldLastExitCode(ctx)
	case job.FieldLastError:
		return m.OldLastError(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case job.FieldScript:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScript(v)
		return nil
	case job.FieldJobType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobType(v)
		return nil
	case job.FieldRunDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunDate(v)
		return nil
	case job.FieldRecurrenceKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecurrenceKind(v)
		return nil
	case job.FieldIntervalSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalSeconds(v)
		return nil
	case job.FieldRecurrenceTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecurrenceTime(v)
		return nil
	case job.FieldDaysOfWeek:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDaysOfWeek(v)
		return nil
	case job.FieldDayOfMonth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDayOfMonth(v)
		return nil
	case job.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case job.FieldLastRun:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRun(v)
		return nil
	case job.FieldNextRun:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRun(v)
		return nil
	case job.FieldMisfireGraceSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMisfireGraceSeconds(v)
		return nil
	case job.FieldLastExitCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastExitCode(v)
		return nil
	case job.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addinterval_seconds != nil {
		fields = append(fields, job.FieldIntervalSeconds)
	}
	if m.addday_of_month != nil {
		fields = append(fields, job.FieldDayOfMonth)
	}
	if m.addmisfire_grace_seconds != nil {
		fields = append(fields, job.FieldMisfireGraceSeconds)
	}
	if m.addlast_exit_code != nil {
		fields = append(fields, job.FieldLastExitCode)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldIntervalSeconds:
		return m.AddedIntervalSeconds()
	case job.FieldDayOfMonth:
		return m.AddedDayOfMonth()
	case job.FieldMisfireGraceSeconds:
		return m.AddedMisfireGraceSeconds()
	case job.FieldLastExitCode:
		return m.AddedLastExitCode()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldIntervalSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalSeconds(v)
		return nil
	case job.FieldDayOfMonth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDayOfMonth(v)
		return nil
	case job.FieldMisfireGraceSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMisfireGraceSeconds(v)
		return nil
	case job.FieldLastExitCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastExitCode(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldRunDate) {
		fields = append(fields, job.FieldRunDate)
	}
	if m.FieldCleared(job.FieldRecurrenceKind) {
		fields = append(fields, job.FieldRecurrenceKind)
	}
	if m.FieldCleared(job.FieldIntervalSeconds) {
		fields = append(fields, job.FieldIntervalSeconds)
	}
	if m.FieldCleared(job.FieldRecurrenceTime) {
		fields = append(fields, job.FieldRecurrenceTime)
	}
	if m.FieldCleared(job.FieldDaysOfWeek) {
		fields = append(fields, job.FieldDaysOfWeek)
	}
	if m.FieldCleared(job.FieldDayOfMonth) {
		fields = append(fields, job.FieldDayOfMonth)
	}
	if m.FieldCleared(job.FieldLastRun) {
		fields = append(fields, job.FieldLastRun)
	}
	if m.FieldCleared(job.FieldNextRun) {
		fields = append(fields, job.FieldNextRun)
	}
	if m.FieldCleared(job.FieldLastExitCode) {
		fields = append(fields, job.FieldLastExitCode)
	}
	if m.FieldCleared(job.FieldLastError) {
		fields = append(fields, job.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldRunDate:
		m.ClearRunDate()
		return nil
	case job.FieldRecurrenceKind:
		m.ClearRecurrenceKind()
		return nil
	case job.FieldIntervalSeconds:
		m.ClearIntervalSeconds()
		return nil
	case job.FieldRecurrenceTime:
		m.ClearRecurrenceTime()
		return nil
	case job.FieldDaysOfWeek:
		m.ClearDaysOfWeek()
		return nil
	case job.FieldDayOfMonth:
		m.ClearDayOfMonth()
		return nil
	case job.FieldLastRun:
		m.ClearLastRun()
		return nil
	case job.FieldNextRun:
		m.ClearNextRun()
		return nil
	case job.FieldLastExitCode:
		m.ClearLastExitCode()
		return nil
	case job.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldName:
		m.ResetName()
		return nil
	case job.FieldScript:
		m.ResetScript()
		return nil
	case job.FieldJobType:
		m.ResetJobType()
		return nil
	case job.FieldRunDate:
		m.ResetRunDate()
		return nil
	case job.FieldRecurrenceKind:
		m.ResetRecurrenceKind()
		return nil
	case job.FieldIntervalSeconds:
		m.ResetIntervalSeconds()
		return nil
	case job.FieldRecurrenceTime:
		m.ResetRecurrenceTime()
		return nil
	case job.FieldDaysOfWeek:
		m.ResetDaysOfWeek()
		return nil
	case job.FieldDayOfMonth:
		m.ResetDayOfMonth()
		return nil
	case job.FieldEnabled:
		m.ResetEnabled()
		return nil
	case job.FieldLastRun:
		m.ResetLastRun()
		return nil
	case job.FieldNextRun:
		m.ResetNextRun()
		return nil
	case job.FieldMisfireGraceSeconds:
		m.ResetMisfireGraceSeconds()
		return nil
	case job.FieldLastExitCode:
		m.ResetLastExitCode()
		return nil
	case job.FieldLastError:
		m.ResetLastError()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Job edge %s", name)
}

// TemplateMutation represents an operation that mutates the Template nodes in the graph.
type TemplateMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	name           *string
	base_width     *float64
	addbase_width  *float64
	base_height    *float64
	addbase_height *float64
	created_at     *time.Time
	clearedFields  map[string]struct{}
	fields         map[uuid.UUID]struct{}
	removedfields  map[uuid.UUID]struct{}
	clearedfields  bool
	done           bool
	oldValue       func(context.Context) (*Template, error)
	predicates     []predicate.Template
}

var _ ent.Mutation = (*TemplateMutation)(nil)

// templateOption allows management of the mutation configuration using functional options.
type templateOption func(*TemplateMutation)

// newTemplateMutation creates new mutation for the Template entity.
func newTemplateMutation(c config, op Op, opts ...templateOption) *TemplateMutation {
	m := &TemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTemplateID sets the ID field of the mutation.
func withTemplateID(id uuid.UUID) templateOption {
	return func(m *TemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *Template
		)
		m.oldValue = func(ctx context.Context) (*Template, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Template.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTemplate sets the old Template of the mutation.
func withTemplate(node *Template) templateOption {
	return func(m *TemplateMutation) {
		m.oldValue = func(context.Context) (*Template, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Template entities.
func (m *TemplateMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TemplateMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TemplateMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Template.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TemplateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TemplateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TemplateMutation) ResetName() {
	m.name = nil
}

// SetBaseWidth sets the "base_width" field.
func (m *TemplateMutation) SetBaseWidth(f float64) {
	m.base_width = &f
	m.addbase_width = nil
}

// BaseWidth returns the value of the "base_width" field in the mutation.
func (m *TemplateMutation) BaseWidth() (r float64, exists bool) {
	v := m.base_width
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseWidth returns the old "base_width" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldBaseWidth(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseWidth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseWidth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseWidth: %w", err)
	}
	return oldValue.BaseWidth, nil
}

// AddBaseWidth adds f to the "base_width" field.
func (m *TemplateMutation) AddBaseWidth(f float64) {
	if m.addbase_width != nil {
		*m.addbase_width += f
	} else {
		m.addbase_width = &f
	}
}

// AddedBaseWidth returns the value that was added to the "base_width" field in this mutation.
func (m *TemplateMutation) AddedBaseWidth() (r float64, exists bool) {
	v := m.addbase_width
	if v == nil {
		return
	}
	return *v, true
}

// ResetBaseWidth resets all changes to the "base_width" field.
func (m *TemplateMutation) ResetBaseWidth() {
	m.base_width = nil
	m.addbase_width = nil
}

// SetBaseHeight sets the "base_height" field.
func (m *TemplateMutation) SetBaseHeight(f float64) {
	m.base_height = &f
	m.addbase_height = nil
}

// BaseHeight returns the value of the "base_height" field in the mutation.
func (m *TemplateMutation) BaseHeight() (r float64, exists bool) {
	v := m.base_height
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseHeight returns the old "base_height" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldBaseHeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseHeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseHeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseHeight: %w", err)
	}
	return oldValue.BaseHeight, nil
}

// AddBaseHeight adds f to the "base_height" field.
func (m *TemplateMutation) AddBaseHeight(f float64) {
	if m.addbase_height != nil {
		*m.addbase_height += f
	} else {
		m.addbase_height = &f
	}
}

// AddedBaseHeight returns the value that was added to the "base_height" field in this mutation.
func (m *TemplateMutation) AddedBaseHeight() (r float64, exists bool) {
	v := m.addbase_height
	if v == nil {
		return
	}
	return *v, true
}

// ResetBaseHeight resets all changes to the "base_height" field.
func (m *TemplateMutation) ResetBaseHeight() {
	m.base_height = nil
	m.addbase_height = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddFieldIDs adds the "fields" edge to the Field entity by ids.
func (m *TemplateMutation) AddFieldIDs(ids ...uuid.UUID) {
	if m.fields == nil {
		m.fields = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.fields[ids[i]] = struct{}{}
	}
}

// ClearFields clears the "fields" edge to the Field entity.
func (m *TemplateMutation) ClearFields() {
	m.clearedfields = true
}

// FieldsCleared reports if the "fields" edge to the Field entity was cleared.
func (m *TemplateMutation) FieldsCleared() bool {
	return m.clearedfields
}

// RemoveFieldIDs removes the "fields" edge to the Field entity by IDs.
func (m *TemplateMutation) RemoveFieldIDs(ids ...uuid.UUID) {
	if m.removedfields == nil {
		m.removedfields = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.fields, ids[i])
		m.removedfields[ids[i]] = struct{}{}
	}
}

// RemovedFields returns the removed IDs of the "fields" edge to the Field entity.
func (m *TemplateMutation) RemovedFieldsIDs() (ids []uuid.UUID) {
	for id := range m.removedfields {
		ids = append(ids, id)
	}
	return
}

// FieldsIDs returns the "fields" edge IDs in the mutation.
func (m *TemplateMutation) FieldsIDs() (ids []uuid.UUID) {
	for id := range m.fields {
		ids = append(ids, id)
	}
	return
}

// ResetFields resets all changes to the "fields" edge.
func (m *TemplateMutation) ResetFields() {
	m.fields = nil
	m.clearedfields = false
	m.removedfields = nil
}

// Where appends a list predicates to the TemplateMutation builder.
func (m *TemplateMutation) Where(ps ...predicate.Template) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Template, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Template).
func (m *TemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TemplateMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, template.FieldName)
	}
	if m.base_width != nil {
		fields = append(fields, template.FieldBaseWidth)
	}
	if m.base_height != nil {
		fields = append(fields, template.FieldBaseHeight)
	}
	if m.created_at != nil {
		fields = append(fields, template.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case template.FieldName:
		return m.Name()
	case template.FieldBaseWidth:
		return m.BaseWidth()
	case template.FieldBaseHeight:
		return m.BaseHeight()
	case template.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case template.FieldName:
		return m.OldName(ctx)
	case template.FieldBaseWidth:
		return m.OldBaseWidth(ctx)
	case template.FieldBaseHeight:
		return m.OldBaseHeight(ctx)
	case template.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Template field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case template.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case template.FieldBaseWidth:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseWidth(v)
		return nil
	case template.FieldBaseHeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseHeight(v)
		return nil
	case template.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Template field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TemplateMutation) AddedFields() []string {
	var fields []string
	if m.addbase_width != nil {
		fields = append(fields, template.FieldBaseWidth)
	}
	if m.addbase_height != nil {
		fields = append(fields, template.FieldBaseHeight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TemplateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case template.FieldBaseWidth:
		return m.AddedBaseWidth()
	case template.FieldBaseHeight:
		return m.AddedBaseHeight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case template.FieldBaseWidth:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBaseWidth(v)
		return nil
	case template.FieldBaseHeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBaseHeight(v)
		return nil
	}
	return fmt.Errorf("unknown Template numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TemplateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TemplateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Template nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TemplateMutation) ResetField(name string) error {
	switch name {
	case template.FieldName:
		m.ResetName()
		return nil
	case template.FieldBaseWidth:
		m.ResetBaseWidth()
		return nil
	case template.FieldBaseHeight:
		m.ResetBaseHeight()
		return nil
	case template.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Template field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.fields != nil {
		edges = append(edges, template.EdgeFields)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TemplateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case template.EdgeFields:
		ids := make([]ent.Value, 0, len(m.fields))
		for id := range m.fields {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedfields != nil {
		edges = append(edges, template.EdgeFields)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TemplateMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case template.EdgeFields:
		ids := make([]ent.Value, 0, len(m.removedfields))
		for id := range m.removedfields {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfields {
		edges = append(edges, template.EdgeFields)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TemplateMutation) EdgeCleared(name string) bool {
	switch name {
	case template.EdgeFields:
		return m.clearedfields
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TemplateMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Template unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TemplateMutation) ResetEdge(name string) error {
	switch name {
	case template.EdgeFields:
		m.ResetFields()
		return nil
	}
	return fmt.Errorf("unknown Template edge %s", name)
}
