// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autohub/automation-hub/gen/ent/job"
	"github.com/google/uuid"
)

// JobCreate is the builder for creating a Job entity.
type JobCreate struct {
	config
	mutation *JobMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *JobCreate) SetName(v string) *JobCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetScript sets the "script" field.
func (_c *JobCreate) SetScript(v string) *JobCreate {
	_c.mutation.SetScript(v)
	return _c
}

// SetJobType sets the "job_type" field.
func (_c *JobCreate) SetJobType(v string) *JobCreate {
	_c.mutation.SetJobType(v)
	return _c
}

// SetRunDate sets the "run_date" field.
func (_c *JobCreate) SetRunDate(v time.Time) *JobCreate {
	_c.mutation.SetRunDate(v)
	return _c
}

// SetNillableRunDate sets the "run_date" field if the given value is not nil.
func (_c *JobCreate) SetNillableRunDate(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetRunDate(*v)
	}
	return _c
}

// SetRecurrenceKind sets the "recurrence_kind" field.
func (_c *JobCreate) SetRecurrenceKind(v string) *JobCreate {
	_c.mutation.SetRecurrenceKind(v)
	return _c
}

// SetNillableRecurrenceKind sets the "recurrence_kind" field if the given value is not nil.
func (_c *JobCreate) SetNillableRecurrenceKind(v *string) *JobCreate {
	if v != nil {
		_c.SetRecurrenceKind(*v)
	}
	return _c
}

// SetIntervalSeconds sets the "interval_seconds" field.
func (_c *JobCreate) SetIntervalSeconds(v int) *JobCreate {
	_c.mutation.SetIntervalSeconds(v)
	return _c
}

// SetNillableIntervalSeconds sets the "interval_seconds" field if the given value is not nil.
func (_c *JobCreate) SetNillableIntervalSeconds(v *int) *JobCreate {
	if v != nil {
		_c.SetIntervalSeconds(*v)
	}
	return _c
}

// SetRecurrenceTime sets the "recurrence_time" field.
func (_c *JobCreate) SetRecurrenceTime(v string) *JobCreate {
	_c.mutation.SetRecurrenceTime(v)
	return _c
}

// SetNillableRecurrenceTime sets the "recurrence_time" field if the given value is not nil.
func (_c *JobCreate) SetNillableRecurrenceTime(v *string) *JobCreate {
	if v != nil {
		_c.SetRecurrenceTime(*v)
	}
	return _c
}

// SetDaysOfWeek sets the "days_of_week" field.
func (_c *JobCreate) SetDaysOfWeek(v string) *JobCreate {
	_c.mutation.SetDaysOfWeek(v)
	return _c
}

// SetNillableDaysOfWeek sets the "days_of_week" field if the given value is not nil.
func (_c *JobCreate) SetNillableDaysOfWeek(v *string) *JobCreate {
	if v != nil {
		_c.SetDaysOfWeek(*v)
	}
	return _c
}

// SetDayOfMonth sets the "day_of_month" field.
func (_c *JobCreate) SetDayOfMonth(v int) *JobCreate {
	_c.mutation.SetDayOfMonth(v)
	return _c
}

// SetNillableDayOfMonth sets the "day_of_month" field if the given value is not nil.
func (_c *JobCreate) SetNillableDayOfMonth(v *int) *JobCreate {
	if v != nil {
		_c.SetDayOfMonth(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *JobCreate) SetEnabled(v bool) *JobCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *JobCreate) SetNillableEnabled(v *bool) *JobCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetLastRun sets the "last_run" field.
func (_c *JobCreate) SetLastRun(v time.Time) *JobCreate {
	_c.mutation.SetLastRun(v)
	return _c
}

// SetNillableLastRun sets the "last_run" field if the given value is not nil.
func (_c *JobCreate) SetNillableLastRun(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetLastRun(*v)
	}
	return _c
}

// SetNextRun sets the "next_run" field.
func (_c *JobCreate) SetNextRun(v time.Time) *JobCreate {
	_c.mutation.SetNextRun(v)
	return _c
}

// SetNillableNextRun sets the "next_run" field if the given value is not nil.
func (_c *JobCreate) SetNillableNextRun(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetNextRun(*v)
	}
	return _c
}

// SetMisfireGraceSeconds sets the "misfire_grace_seconds" field.
func (_c *JobCreate) SetMisfireGraceSeconds(v int) *JobCreate {
	_c.mutation.SetMisfireGraceSeconds(v)
	return _c
}

// SetNillableMisfireGraceSeconds sets the "misfire_grace_seconds" field if the given value is not nil.
func (_c *JobCreate) SetNillableMisfireGraceSeconds(v *int) *JobCreate {
	if v != nil {
		_c.SetMisfireGraceSeconds(*v)
	}
	return _c
}

// SetLastExitCode sets the "last_exit_code" field.
func (_c *JobCreate) SetLastExitCode(v int) *JobCreate {
	_c.mutation.SetLastExitCode(v)
	return _c
}

// SetNillableLastExitCode sets the "last_exit_code" field if the given value is not nil.
func (_c *JobCreate) SetNillableLastExitCode(v *int) *JobCreate {
	if v != nil {
		_c.SetLastExitCode(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *JobCreate) SetLastError(v string) *JobCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *JobCreate) SetNillableLastError(v *string) *JobCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobCreate) SetCreatedAt(v time.Time) *JobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCreatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *JobCreate) SetUpdatedAt(v time.Time) *JobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableUpdatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobCreate) SetID(v uuid.UUID) *JobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *JobCreate) SetNillableID(v *uuid.UUID) *JobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the JobMutation object of the builder.
func (_c *JobCreate) Mutation() *JobMutation {
	return _c.mutation
}

// Save creates the Job in the database.
func (_c *JobCreate) Save(ctx context.Context) (*Job, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobCreate) SaveX(ctx context.Context) *Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := job.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.MisfireGraceSeconds(); !ok {
		v := job.DefaultMisfireGraceSeconds
		_c.mutation.SetMisfireGraceSeconds(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := job.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := job.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := job.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Job.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := job.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Job.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Script(); !ok {
		return &ValidationError{Name: "script", err: errors.New(`ent: missing required field "Job.script"`)}
	}
	if v, ok := _c.mutation.Script(); ok {
		if err := job.ScriptValidator(v); err != nil {
			return &ValidationError{Name: "script", err: fmt.Errorf(`ent: validator failed for field "Job.script": %w`, err)}
		}
	}
	if _, ok := _c.mutation.JobType(); !ok {
		return &ValidationError{Name: "job_type", err: errors.New(`ent: missing required field "Job.job_type"`)}
	}
	if v, ok := _c.mutation.JobType(); ok {
		if err := job.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "Job.job_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.RecurrenceKind(); ok {
		if err := job.RecurrenceKindValidator(v); err != nil {
			return &ValidationError{Name: "recurrence_kind", err: fmt.Errorf(`ent: validator failed for field "Job.recurrence_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "Job.enabled"`)}
	}
	if _, ok := _c.mutation.MisfireGraceSeconds(); !ok {
		return &ValidationError{Name: "misfire_grace_seconds", err: errors.New(`ent: missing required field "Job.misfire_grace_seconds"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Job.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Job.updated_at"`)}
	}
	return nil
}

func (_c *JobCreate) sqlSave(ctx context.Context) (*Job, error) {
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

func (_c *JobCreate) createSpec() (*Job, *sqlgraph.CreateSpec) {
	var (
		_node = &Job{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(job.Table, sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(job.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Script(); ok {
		_spec.SetField(job.FieldScript, field.TypeString, value)
		_node.Script = value
	}
	if value, ok := _c.mutation.JobType(); ok {
		_spec.SetField(job.FieldJobType, field.TypeString, value)
		_node.JobType = value
	}
	if value, ok := _c.mutation.RunDate(); ok {
		_spec.SetField(job.FieldRunDate, field.TypeTime, value)
		_node.RunDate = &value
	}
	if value, ok := _c.mutation.RecurrenceKind(); ok {
		_spec.SetField(job.FieldRecurrenceKind, field.TypeString, value)
		_node.RecurrenceKind = &value
	}
	if value, ok := _c.mutation.IntervalSeconds(); ok {
		_spec.SetField(job.FieldIntervalSeconds, field.TypeInt, value)
		_node.IntervalSeconds = &value
	}
	if value, ok := _c.mutation.RecurrenceTime(); ok {
		_spec.SetField(job.FieldRecurrenceTime, field.TypeString, value)
		_node.RecurrenceTime = &value
	}
	if value, ok := _c.mutation.DaysOfWeek(); ok {
		_spec.SetField(job.FieldDaysOfWeek, field.TypeString, value)
		_node.DaysOfWeek = &value
	}
	if value, ok := _c.mutation.DayOfMonth(); ok {
		_spec.SetField(job.FieldDayOfMonth, field.TypeInt, value)
		_node.DayOfMonth = &value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(job.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.LastRun(); ok {
		_spec.SetField(job.FieldLastRun, field.TypeTime, value)
		_node.LastRun = &value
	}
	if value, ok := _c.mutation.NextRun(); ok {
		_spec.SetField(job.FieldNextRun, field.TypeTime, value)
		_node.NextRun = &value
	}
	if value, ok := _c.mutation.MisfireGraceSeconds(); ok {
		_spec.SetField(job.FieldMisfireGraceSeconds, field.TypeInt, value)
		_node.MisfireGraceSeconds = value
	}
	if value, ok := _c.mutation.LastExitCode(); ok {
		_spec.SetField(job.FieldLastExitCode, field.TypeInt, value)
		_node.LastExitCode = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(job.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// JobCreateBulk is the builder for creating many Job entities in bulk.
type JobCreateBulk struct {
	config
	err      error
	builders []*JobCreate
}

// Save creates the Job entities in the database.
func (_c *JobCreateBulk) Save(ctx context.Context) ([]*Job, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Job, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMutation)
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
func (_c *JobCreateBulk) SaveX(ctx context.Context) []*Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
