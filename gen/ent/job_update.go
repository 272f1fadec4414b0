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
	"github.com/autohub/automation-hub/gen/ent/job"
	"github.com/autohub/automation-hub/gen/ent/predicate"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *JobUpdate) SetName(v string) *JobUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *JobUpdate) SetNillableName(v *string) *JobUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetScript sets the "script" field.
func (_u *JobUpdate) SetScript(v string) *JobUpdate {
	_u.mutation.SetScript(v)
	return _u
}

// SetNillableScript sets the "script" field if the given value is not nil.
func (_u *JobUpdate) SetNillableScript(v *string) *JobUpdate {
	if v != nil {
		_u.SetScript(*v)
	}
	return _u
}

// SetJobType sets the "job_type" field.
func (_u *JobUpdate) SetJobType(v string) *JobUpdate {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *JobUpdate) SetNillableJobType(v *string) *JobUpdate {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// SetRunDate sets the "run_date" field.
func (_u *JobUpdate) SetRunDate(v time.Time) *JobUpdate {
	_u.mutation.SetRunDate(v)
	return _u
}

// SetNillableRunDate sets the "run_date" field if the given value is not nil.
func (_u *JobUpdate) SetNillableRunDate(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetRunDate(*v)
	}
	return _u
}

// ClearRunDate clears the value of the "run_date" field.
func (_u *JobUpdate) ClearRunDate() *JobUpdate {
	_u.mutation.ClearRunDate()
	return _u
}

// SetRecurrenceKind sets the "recurrence_kind" field.
func (_u *JobUpdate) SetRecurrenceKind(v string) *JobUpdate {
	_u.mutation.SetRecurrenceKind(v)
	return _u
}

// SetNillableRecurrenceKind sets the "recurrence_kind" field if the given value is not nil.
func (_u *JobUpdate) SetNillableRecurrenceKind(v *string) *JobUpdate {
	if v != nil {
		_u.SetRecurrenceKind(*v)
	}
	return _u
}

// ClearRecurrenceKind clears the value of the "recurrence_kind" field.
func (_u *JobUpdate) ClearRecurrenceKind() *JobUpdate {
	_u.mutation.ClearRecurrenceKind()
	return _u
}

// SetIntervalSeconds sets the "interval_seconds" field.
func (_u *JobUpdate) SetIntervalSeconds(v int) *JobUpdate {
	_u.mutation.ResetIntervalSeconds()
	_u.mutation.SetIntervalSeconds(v)
	return _u
}

// SetNillableIntervalSeconds sets the "interval_seconds" field if the given value is not nil.
func (_u *JobUpdate) SetNillableIntervalSeconds(v *int) *JobUpdate {
	if v != nil {
		_u.SetIntervalSeconds(*v)
	}
	return _u
}

// AddIntervalSeconds adds value to the "interval_seconds" field.
func (_u *JobUpdate) AddIntervalSeconds(v int) *JobUpdate {
	_u.mutation.AddIntervalSeconds(v)
	return _u
}

// ClearIntervalSeconds clears the value of the "interval_seconds" field.
func (_u *JobUpdate) ClearIntervalSeconds() *JobUpdate {
	_u.mutation.ClearIntervalSeconds()
	return _u
}

// SetRecurrenceTime sets the "recurrence_time" field.
func (_u *JobUpdate) SetRecurrenceTime(v string) *JobUpdate {
	_u.mutation.SetRecurrenceTime(v)
	return _u
}

// SetNillableRecurrenceTime sets the "recurrence_time" field if the given value is not nil.
func (_u *JobUpdate) SetNillableRecurrenceTime(v *string) *JobUpdate {
	if v != nil {
		_u.SetRecurrenceTime(*v)
	}
	return _u
}

// ClearRecurrenceTime clears the value of the "recurrence_time" field.
func (_u *JobUpdate) ClearRecurrenceTime() *JobUpdate {
	_u.mutation.ClearRecurrenceTime()
	return _u
}

// SetDaysOfWeek sets the "days_of_week" field.
func (_u *JobUpdate) SetDaysOfWeek(v string) *JobUpdate {
	_u.mutation.SetDaysOfWeek(v)
	return _u
}

// SetNillableDaysOfWeek sets the "days_of_week" field if the given value is not nil.
func (_u *JobUpdate) SetNillableDaysOfWeek(v *string) *JobUpdate {
	if v != nil {
		_u.SetDaysOfWeek(*v)
	}
	return _u
}

// ClearDaysOfWeek clears the value of the "days_of_week" field.
func (_u *JobUpdate) ClearDaysOfWeek() *JobUpdate {
	_u.mutation.ClearDaysOfWeek()
	return _u
}

// SetDayOfMonth sets the "day_of_month" field.
func (_u *JobUpdate) SetDayOfMonth(v int) *JobUpdate {
	_u.mutation.ResetDayOfMonth()
	_u.mutation.SetDayOfMonth(v)
	return _u
}

// SetNillableDayOfMonth sets the "day_of_month" field if the given value is not nil.
func (_u *JobUpdate) SetNillableDayOfMonth(v *int) *JobUpdate {
	if v != nil {
		_u.SetDayOfMonth(*v)
	}
	return _u
}

// AddDayOfMonth adds value to the "day_of_month" field.
func (_u *JobUpdate) AddDayOfMonth(v int) *JobUpdate {
	_u.mutation.AddDayOfMonth(v)
	return _u
}

// ClearDayOfMonth clears the value of the "day_of_month" field.
func (_u *JobUpdate) ClearDayOfMonth() *JobUpdate {
	_u.mutation.ClearDayOfMonth()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *JobUpdate) SetEnabled(v bool) *JobUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *JobUpdate) SetNillableEnabled(v *bool) *JobUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetLastRun sets the "last_run" field.
func (_u *JobUpdate) SetLastRun(v time.Time) *JobUpdate {
	_u.mutation.SetLastRun(v)
	return _u
}

// SetNillableLastRun sets the "last_run" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLastRun(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetLastRun(*v)
	}
	return _u
}

// ClearLastRun clears the value of the "last_run" field.
func (_u *JobUpdate) ClearLastRun() *JobUpdate {
	_u.mutation.ClearLastRun()
	return _u
}

// SetNextRun sets the "next_run" field.
func (_u *JobUpdate) SetNextRun(v time.Time) *JobUpdate {
	_u.mutation.SetNextRun(v)
	return _u
}

// SetNillableNextRun sets the "next_run" field if the given value is not nil.
func (_u *JobUpdate) SetNillableNextRun(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetNextRun(*v)
	}
	return _u
}

// ClearNextRun clears the value of the "next_run" field.
func (_u *JobUpdate) ClearNextRun() *JobUpdate {
	_u.mutation.ClearNextRun()
	return _u
}

// SetMisfireGraceSeconds sets the "misfire_grace_seconds" field.
func (_u *JobUpdate) SetMisfireGraceSeconds(v int) *JobUpdate {
	_u.mutation.ResetMisfireGraceSeconds()
	_u.mutation.SetMisfireGraceSeconds(v)
	return _u
}

// SetNillableMisfireGraceSeconds sets the "misfire_grace_seconds" field if the given value is not nil.
func (_u *JobUpdate) SetNillableMisfireGraceSeconds(v *int) *JobUpdate {
	if v != nil {
		_u.SetMisfireGraceSeconds(*v)
	}
	return _u
}

// AddMisfireGraceSeconds adds value to the "misfire_grace_seconds" field.
func (_u *JobUpdate) AddMisfireGraceSeconds(v int) *JobUpdate {
	_u.mutation.AddMisfireGraceSeconds(v)
	return _u
}

// SetLastExitCode sets the "last_exit_code" field.
func (_u *JobUpdate) SetLastExitCode(v int) *JobUpdate {
	_u.mutation.ResetLastExitCode()
	_u.mutation.SetLastExitCode(v)
	return _u
}

// SetNillableLastExitCode sets the "last_exit_code" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLastExitCode(v *int) *JobUpdate {
	if v != nil {
		_u.SetLastExitCode(*v)
	}
	return _u
}

// AddLastExitCode adds value to the "last_exit_code" field.
func (_u *JobUpdate) AddLastExitCode(v int) *JobUpdate {
	_u.mutation.AddLastExitCode(v)
	return _u
}

// ClearLastExitCode clears the value of the "last_exit_code" field.
func (_u *JobUpdate) ClearLastExitCode() *JobUpdate {
	_u.mutation.ClearLastExitCode()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *JobUpdate) SetLastError(v string) *JobUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLastError(v *string) *JobUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *JobUpdate) ClearLastError() *JobUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *JobUpdate) SetCreatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCreatedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdate) SetUpdatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := job.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Job.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Script(); ok {
		if err := job.ScriptValidator(v); err != nil {
			return &ValidationError{Name: "script", err: fmt.Errorf(`ent: validator failed for field "Job.script": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JobType(); ok {
		if err := job.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "Job.job_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecurrenceKind(); ok {
		if err := job.RecurrenceKindValidator(v); err != nil {
			return &ValidationError{Name: "recurrence_kind", err: fmt.Errorf(`ent: validator failed for field "Job.recurrence_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(job.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Script(); ok {
		_spec.SetField(job.FieldScript, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(job.FieldJobType, field.TypeString, value)
	}
	if value, ok := _u.mutation.RunDate(); ok {
		_spec.SetField(job.FieldRunDate, field.TypeTime, value)
	}
	if _u.mutation.RunDateCleared() {
		_spec.ClearField(job.FieldRunDate, field.TypeTime)
	}
	if value, ok := _u.mutation.RecurrenceKind(); ok {
		_spec.SetField(job.FieldRecurrenceKind, field.TypeString, value)
	}
	if _u.mutation.RecurrenceKindCleared() {
		_spec.ClearField(job.FieldRecurrenceKind, field.TypeString)
	}
	if value, ok := _u.mutation.IntervalSeconds(); ok {
		_spec.SetField(job.FieldIntervalSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalSeconds(); ok {
		_spec.AddField(job.FieldIntervalSeconds, field.TypeInt, value)
	}
	if _u.mutation.IntervalSecondsCleared() {
		_spec.ClearField(job.FieldIntervalSeconds, field.TypeInt)
	}
	if value, ok := _u.mutation.RecurrenceTime(); ok {
		_spec.SetField(job.FieldRecurrenceTime, field.TypeString, value)
	}
	if _u.mutation.RecurrenceTimeCleared() {
		_spec.ClearField(job.FieldRecurrenceTime, field.TypeString)
	}
	if value, ok := _u.mutation.DaysOfWeek(); ok {
		_spec.SetField(job.FieldDaysOfWeek, field.TypeString, value)
	}
	if _u.mutation.DaysOfWeekCleared() {
		_spec.ClearField(job.FieldDaysOfWeek, field.TypeString)
	}
	if value, ok := _u.mutation.DayOfMonth(); ok {
		_spec.SetField(job.FieldDayOfMonth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayOfMonth(); ok {
		_spec.AddField(job.FieldDayOfMonth, field.TypeInt, value)
	}
	if _u.mutation.DayOfMonthCleared() {
		_spec.ClearField(job.FieldDayOfMonth, field.TypeInt)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(job.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastRun(); ok {
		_spec.SetField(job.FieldLastRun, field.TypeTime, value)
	}
	if _u.mutation.LastRunCleared() {
		_spec.ClearField(job.FieldLastRun, field.TypeTime)
	}
	if value, ok := _u.mutation.NextRun(); ok {
		_spec.SetField(job.FieldNextRun, field.TypeTime, value)
	}
	if _u.mutation.NextRunCleared() {
		_spec.ClearField(job.FieldNextRun, field.TypeTime)
	}
	if value, ok := _u.mutation.MisfireGraceSeconds(); ok {
		_spec.SetField(job.FieldMisfireGraceSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMisfireGraceSeconds(); ok {
		_spec.AddField(job.FieldMisfireGraceSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastExitCode(); ok {
		_spec.SetField(job.FieldLastExitCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastExitCode(); ok {
		_spec.AddField(job.FieldLastExitCode, field.TypeInt, value)
	}
	if _u.mutation.LastExitCodeCleared() {
		_spec.ClearField(job.FieldLastExitCode, field.TypeInt)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(job.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(job.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetName sets the "name" field.
func (_u *JobUpdateOne) SetName(v string) *JobUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableName(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetScript sets the "script" field.
func (_u *JobUpdateOne) SetScript(v string) *JobUpdateOne {
	_u.mutation.SetScript(v)
	return _u
}

// SetNillableScript sets the "script" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableScript(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetScript(*v)
	}
	return _u
}

// SetJobType sets the "job_type" field.
func (_u *JobUpdateOne) SetJobType(v string) *JobUpdateOne {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableJobType(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// SetRunDate sets the "run_date" field.
func (_u *JobUpdateOne) SetRunDate(v time.Time) *JobUpdateOne {
	_u.mutation.SetRunDate(v)
	return _u
}

// SetNillableRunDate sets the "run_date" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableRunDate(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetRunDate(*v)
	}
	return _u
}

// ClearRunDate clears the value of the "run_date" field.
func (_u *JobUpdateOne) ClearRunDate() *JobUpdateOne {
	_u.mutation.ClearRunDate()
	return _u
}

// SetRecurrenceKind sets the "recurrence_kind" field.
func (_u *JobUpdateOne) SetRecurrenceKind(v string) *JobUpdateOne {
	_u.mutation.SetRecurrenceKind(v)
	return _u
}

// SetNillableRecurrenceKind sets the "recurrence_kind" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableRecurrenceKind(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetRecurrenceKind(*v)
	}
	return _u
}

// ClearRecurrenceKind clears the value of the "recurrence_kind" field.
func (_u *JobUpdateOne) ClearRecurrenceKind() *JobUpdateOne {
	_u.mutation.ClearRecurrenceKind()
	return _u
}

// SetIntervalSeconds sets the "interval_seconds" field.
func (_u *JobUpdateOne) SetIntervalSeconds(v int) *JobUpdateOne {
	_u.mutation.ResetIntervalSeconds()
	_u.mutation.SetIntervalSeconds(v)
	return _u
}

// SetNillableIntervalSeconds sets the "interval_seconds" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableIntervalSeconds(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetIntervalSeconds(*v)
	}
	return _u
}

// AddIntervalSeconds adds value to the "interval_seconds" field.
func (_u *JobUpdateOne) AddIntervalSeconds(v int) *JobUpdateOne {
	_u.mutation.AddIntervalSeconds(v)
	return _u
}

// ClearIntervalSeconds clears the value of the "interval_seconds" field.
func (_u *JobUpdateOne) ClearIntervalSeconds() *JobUpdateOne {
	_u.mutation.ClearIntervalSeconds()
	return _u
}

// SetRecurrenceTime sets the "recurrence_time" field.
func (_u *JobUpdateOne) SetRecurrenceTime(v string) *JobUpdateOne {
	_u.mutation.SetRecurrenceTime(v)
	return _u
}

// SetNillableRecurrenceTime sets the "recurrence_time" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableRecurrenceTime(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetRecurrenceTime(*v)
	}
	return _u
}

// ClearRecurrenceTime clears the value of the "recurrence_time" field.
func (_u *JobUpdateOne) ClearRecurrenceTime() *JobUpdateOne {
	_u.mutation.ClearRecurrenceTime()
	return _u
}

// SetDaysOfWeek sets the "days_of_week" field.
func (_u *JobUpdateOne) SetDaysOfWeek(v string) *JobUpdateOne {
	_u.mutation.SetDaysOfWeek(v)
	return _u
}

// SetNillableDaysOfWeek sets the "days_of_week" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableDaysOfWeek(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetDaysOfWeek(*v)
	}
	return _u
}

// ClearDaysOfWeek clears the value of the "days_of_week" field.
func (_u *JobUpdateOne) ClearDaysOfWeek() *JobUpdateOne {
	_u.mutation.ClearDaysOfWeek()
	return _u
}

// SetDayOfMonth sets the "day_of_month" field.
func (_u *JobUpdateOne) SetDayOfMonth(v int) *JobUpdateOne {
	_u.mutation.ResetDayOfMonth()
	_u.mutation.SetDayOfMonth(v)
	return _u
}

// SetNillableDayOfMonth sets the "day_of_month" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableDayOfMonth(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetDayOfMonth(*v)
	}
	return _u
}

// AddDayOfMonth adds value to the "day_of_month" field.
func (_u *JobUpdateOne) AddDayOfMonth(v int) *JobUpdateOne {
	_u.mutation.AddDayOfMonth(v)
	return _u
}

// ClearDayOfMonth clears the value of the "day_of_month" field.
func (_u *JobUpdateOne) ClearDayOfMonth() *JobUpdateOne {
	_u.mutation.ClearDayOfMonth()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *JobUpdateOne) SetEnabled(v bool) *JobUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableEnabled(v *bool) *JobUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetLastRun sets the "last_run" field.
func (_u *JobUpdateOne) SetLastRun(v time.Time) *JobUpdateOne {
	_u.mutation.SetLastRun(v)
	return _u
}

// SetNillableLastRun sets the "last_run" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLastRun(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetLastRun(*v)
	}
	return _u
}

// ClearLastRun clears the value of the "last_run" field.
func (_u *JobUpdateOne) ClearLastRun() *JobUpdateOne {
	_u.mutation.ClearLastRun()
	return _u
}

// SetNextRun sets the "next_run" field.
func (_u *JobUpdateOne) SetNextRun(v time.Time) *JobUpdateOne {
	_u.mutation.SetNextRun(v)
	return _u
}

// SetNillableNextRun sets the "next_run" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableNextRun(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetNextRun(*v)
	}
	return _u
}

// ClearNextRun clears the value of the "next_run" field.
func (_u *JobUpdateOne) ClearNextRun() *JobUpdateOne {
	_u.mutation.ClearNextRun()
	return _u
}

// SetMisfireGraceSeconds sets the "misfire_grace_seconds" field.
func (_u *JobUpdateOne) SetMisfireGraceSeconds(v int) *JobUpdateOne {
	_u.mutation.ResetMisfireGraceSeconds()
	_u.mutation.SetMisfireGraceSeconds(v)
	return _u
}

// SetNillableMisfireGraceSeconds sets the "misfire_grace_seconds" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableMisfireGraceSeconds(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetMisfireGraceSeconds(*v)
	}
	return _u
}

// AddMisfireGraceSeconds adds value to the "misfire_grace_seconds" field.
func (_u *JobUpdateOne) AddMisfireGraceSeconds(v int) *JobUpdateOne {
	_u.mutation.AddMisfireGraceSeconds(v)
	return _u
}

// SetLastExitCode sets the "last_exit_code" field.
func (_u *JobUpdateOne) SetLastExitCode(v int) *JobUpdateOne {
	_u.mutation.ResetLastExitCode()
	_u.mutation.SetLastExitCode(v)
	return _u
}

// SetNillableLastExitCode sets the "last_exit_code" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLastExitCode(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetLastExitCode(*v)
	}
	return _u
}

// AddLastExitCode adds value to the "last_exit_code" field.
func (_u *JobUpdateOne) AddLastExitCode(v int) *JobUpdateOne {
	_u.mutation.AddLastExitCode(v)
	return _u
}

// ClearLastExitCode clears the value of the "last_exit_code" field.
func (_u *JobUpdateOne) ClearLastExitCode() *JobUpdateOne {
	_u.mutation.ClearLastExitCode()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *JobUpdateOne) SetLastError(v string) *JobUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLastError(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *JobUpdateOne) ClearLastError() *JobUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *JobUpdateOne) SetCreatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCreatedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdateOne) SetUpdatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := job.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Job.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Script(); ok {
		if err := job.ScriptValidator(v); err != nil {
			return &ValidationError{Name: "script", err: fmt.Errorf(`ent: validator failed for field "Job.script": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JobType(); ok {
		if err := job.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "Job.job_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecurrenceKind(); ok {
		if err := job.RecurrenceKindValidator(v); err != nil {
			return &ValidationError{Name: "recurrence_kind", err: fmt.Errorf(`ent: validator failed for field "Job.recurrence_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
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
		_spec.SetField(job.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Script(); ok {
		_spec.SetField(job.FieldScript, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(job.FieldJobType, field.TypeString, value)
	}
	if value, ok := _u.mutation.RunDate(); ok {
		_spec.SetField(job.FieldRunDate, field.TypeTime, value)
	}
	if _u.mutation.RunDateCleared() {
		_spec.ClearField(job.FieldRunDate, field.TypeTime)
	}
	if value, ok := _u.mutation.RecurrenceKind(); ok {
		_spec.SetField(job.FieldRecurrenceKind, field.TypeString, value)
	}
	if _u.mutation.RecurrenceKindCleared() {
		_spec.ClearField(job.FieldRecurrenceKind, field.TypeString)
	}
	if value, ok := _u.mutation.IntervalSeconds(); ok {
		_spec.SetField(job.FieldIntervalSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalSeconds(); ok {
		_spec.AddField(job.FieldIntervalSeconds, field.TypeInt, value)
	}
	if _u.mutation.IntervalSecondsCleared() {
		_spec.ClearField(job.FieldIntervalSeconds, field.TypeInt)
	}
	if value, ok := _u.mutation.RecurrenceTime(); ok {
		_spec.SetField(job.FieldRecurrenceTime, field.TypeString, value)
	}
	if _u.mutation.RecurrenceTimeCleared() {
		_spec.ClearField(job.FieldRecurrenceTime, field.TypeString)
	}
	if value, ok := _u.mutation.DaysOfWeek(); ok {
		_spec.SetField(job.FieldDaysOfWeek, field.TypeString, value)
	}
	if _u.mutation.DaysOfWeekCleared() {
		_spec.ClearField(job.FieldDaysOfWeek, field.TypeString)
	}
	if value, ok := _u.mutation.DayOfMonth(); ok {
		_spec.SetField(job.FieldDayOfMonth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayOfMonth(); ok {
		_spec.AddField(job.FieldDayOfMonth, field.TypeInt, value)
	}
	if _u.mutation.DayOfMonthCleared() {
		_spec.ClearField(job.FieldDayOfMonth, field.TypeInt)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(job.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastRun(); ok {
		_spec.SetField(job.FieldLastRun, field.TypeTime, value)
	}
	if _u.mutation.LastRunCleared() {
		_spec.ClearField(job.FieldLastRun, field.TypeTime)
	}
	if value, ok := _u.mutation.NextRun(); ok {
		_spec.SetField(job.FieldNextRun, field.TypeTime, value)
	}
	if _u.mutation.NextRunCleared() {
		_spec.ClearField(job.FieldNextRun, field.TypeTime)
	}
	if value, ok := _u.mutation.MisfireGraceSeconds(); ok {
		_spec.SetField(job.FieldMisfireGraceSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMisfireGraceSeconds(); ok {
		_spec.AddField(job.FieldMisfireGraceSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastExitCode(); ok {
		_spec.SetField(job.FieldLastExitCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastExitCode(); ok {
		_spec.AddField(job.FieldLastExitCode, field.TypeInt, value)
	}
	if _u.mutation.LastExitCodeCleared() {
		_spec.ClearField(job.FieldLastExitCode, field.TypeInt)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(job.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(job.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
