// Code generated by ent, DO NOT EDIT.

package job

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/autohub/automation-hub/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldName, v))
}

// Script applies equality check predicate on the "script" field. It's identical to ScriptEQ.
func Script(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldScript, v))
}

// JobType applies equality check predicate on the "job_type" field. It's identical to JobTypeEQ.
func JobType(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldJobType, v))
}

// RunDate applies equality check predicate on the "run_date" field. It's identical to RunDateEQ.
func RunDate(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldRunDate, v))
}

// RecurrenceKind applies equality check predicate on the "recurrence_kind" field. It's identical to RecurrenceKindEQ.
func RecurrenceKind(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldRecurrenceKind, v))
}

// IntervalSeconds applies equality check predicate on the "interval_seconds" field. It's identical to IntervalSecondsEQ.
func IntervalSeconds(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldIntervalSeconds, v))
}

// RecurrenceTime applies equality check predicate on the "recurrence_time" field. It's identical to RecurrenceTimeEQ.
func RecurrenceTime(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldRecurrenceTime, v))
}

// DaysOfWeek applies equality check predicate on the "days_of_week" field. It's identical to DaysOfWeekEQ.
func DaysOfWeek(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDaysOfWeek, v))
}

// DayOfMonth applies equality check predicate on the "day_of_month" field. It's identical to DayOfMonthEQ.
func DayOfMonth(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDayOfMonth, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldEnabled, v))
}

// LastRun applies equality check predicate on the "last_run" field. It's identical to LastRunEQ.
func LastRun(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastRun, v))
}

// NextRun applies equality check predicate on the "next_run" field. It's identical to NextRunEQ.
func NextRun(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldNextRun, v))
}

// MisfireGraceSeconds applies equality check predicate on the "misfire_grace_seconds" field. It's identical to MisfireGraceSecondsEQ.
func MisfireGraceSeconds(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldMisfireGraceSeconds, v))
}

// LastExitCode applies equality check predicate on the "last_exit_code" field. It's identical to LastExitCodeEQ.
func LastExitCode(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastExitCode, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldName, v))
}

// ScriptEQ applies the EQ predicate on the "script" field.
func ScriptEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldScript, v))
}

// ScriptNEQ applies the NEQ predicate on the "script" field.
func ScriptNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldScript, v))
}

// ScriptIn applies the In predicate on the "script" field.
func ScriptIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldScript, vs...))
}

// ScriptNotIn applies the NotIn predicate on the "script" field.
func ScriptNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldScript, vs...))
}

// ScriptGT applies the GT predicate on the "script" field.
func ScriptGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldScript, v))
}

// ScriptGTE applies the GTE predicate on the "script" field.
func ScriptGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldScript, v))
}

// ScriptLT applies the LT predicate on the "script" field.
func ScriptLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldScript, v))
}

// ScriptLTE applies the LTE predicate on the "script" field.
func ScriptLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldScript, v))
}

// ScriptContains applies the Contains predicate on the "script" field.
func ScriptContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldScript, v))
}

// ScriptHasPrefix applies the HasPrefix predicate on the "script" field.
func ScriptHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldScript, v))
}

// ScriptHasSuffix applies the HasSuffix predicate on the "script" field.
func ScriptHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldScript, v))
}

// ScriptEqualFold applies the EqualFold predicate on the "script" field.
func ScriptEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldScript, v))
}

// ScriptContainsFold applies the ContainsFold predicate on the "script" field.
func ScriptContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldScript, v))
}

// JobTypeEQ applies the EQ predicate on the "job_type" field.
func JobTypeEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldJobType, v))
}

// JobTypeNEQ applies the NEQ predicate on the "job_type" field.
func JobTypeNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldJobType, v))
}

// JobTypeIn applies the In predicate on the "job_type" field.
func JobTypeIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldJobType, vs...))
}

// JobTypeNotIn applies the NotIn predicate on the "job_type" field.
func JobTypeNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldJobType, vs...))
}

// JobTypeGT applies the GT predicate on the "job_type" field.
func JobTypeGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldJobType, v))
}

// JobTypeGTE applies the GTE predicate on the "job_type" field.
func JobTypeGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldJobType, v))
}

// JobTypeLT applies the LT predicate on the "job_type" field.
func JobTypeLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldJobType, v))
}

// JobTypeLTE applies the LTE predicate on the "job_type" field.
func JobTypeLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldJobType, v))
}

// JobTypeContains applies the Contains predicate on the "job_type" field.
func JobTypeContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldJobType, v))
}

// JobTypeHasPrefix applies the HasPrefix predicate on the "job_type" field.
func JobTypeHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldJobType, v))
}

// JobTypeHasSuffix applies the HasSuffix predicate on the "job_type" field.
func JobTypeHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldJobType, v))
}

// JobTypeEqualFold applies the EqualFold predicate on the "job_type" field.
func JobTypeEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldJobType, v))
}

// JobTypeContainsFold applies the ContainsFold predicate on the "job_type" field.
func JobTypeContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldJobType, v))
}

// RunDateEQ applies the EQ predicate on the "run_date" field.
func RunDateEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldRunDate, v))
}

// RunDateNEQ applies the NEQ predicate on the "run_date" field.
func RunDateNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldRunDate, v))
}

// RunDateIn applies the In predicate on the "run_date" field.
func RunDateIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldRunDate, vs...))
}

// RunDateNotIn applies the NotIn predicate on the "run_date" field.
func RunDateNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldRunDate, vs...))
}

// RunDateGT applies the GT predicate on the "run_date" field.
func RunDateGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldRunDate, v))
}

// RunDateGTE applies the GTE predicate on the "run_date" field.
func RunDateGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldRunDate, v))
}

// RunDateLT applies the LT predicate on the "run_date" field.
func RunDateLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldRunDate, v))
}

// RunDateLTE applies the LTE predicate on the "run_date" field.
func RunDateLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldRunDate, v))
}

// RunDateIsNil applies the IsNil predicate on the "run_date" field.
func RunDateIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldRunDate))
}

// RunDateNotNil applies the NotNil predicate on the "run_date" field.
func RunDateNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldRunDate))
}

// RecurrenceKindEQ applies the EQ predicate on the "recurrence_kind" field.
func RecurrenceKindEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldRecurrenceKind, v))
}

// RecurrenceKindNEQ applies the NEQ predicate on the "recurrence_kind" field.
func RecurrenceKindNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldRecurrenceKind, v))
}

// RecurrenceKindIn applies the In predicate on the "recurrence_kind" field.
func RecurrenceKindIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldRecurrenceKind, vs...))
}

// RecurrenceKindNotIn applies the NotIn predicate on the "recurrence_kind" field.
func RecurrenceKindNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldRecurrenceKind, vs...))
}

// RecurrenceKindGT applies the GT predicate on the "recurrence_kind" field.
func RecurrenceKindGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldRecurrenceKind, v))
}

// RecurrenceKindGTE applies the GTE predicate on the "recurrence_kind" field.
func RecurrenceKindGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldRecurrenceKind, v))
}

// RecurrenceKindLT applies the LT predicate on the "recurrence_kind" field.
func RecurrenceKindLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldRecurrenceKind, v))
}

// RecurrenceKindLTE applies the LTE predicate on the "recurrence_kind" field.
func RecurrenceKindLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldRecurrenceKind, v))
}

// RecurrenceKindContains applies the Contains predicate on the "recurrence_kind" field.
func RecurrenceKindContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldRecurrenceKind, v))
}

// RecurrenceKindHasPrefix applies the HasPrefix predicate on the "recurrence_kind" field.
func RecurrenceKindHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldRecurrenceKind, v))
}

// RecurrenceKindHasSuffix applies the HasSuffix predicate on the "recurrence_kind" field.
func RecurrenceKindHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldRecurrenceKind, v))
}

// RecurrenceKindIsNil applies the IsNil predicate on the "recurrence_kind" field.
func RecurrenceKindIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldRecurrenceKind))
}

// RecurrenceKindNotNil applies the NotNil predicate on the "recurrence_kind" field.
func RecurrenceKindNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldRecurrenceKind))
}

// RecurrenceKindEqualFold applies the EqualFold predicate on the "recurrence_kind" field.
func RecurrenceKindEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldRecurrenceKind, v))
}

// RecurrenceKindContainsFold applies the ContainsFold predicate on the "recurrence_kind" field.
func RecurrenceKindContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldRecurrenceKind, v))
}

// IntervalSecondsEQ applies the EQ predicate on the "interval_seconds" field.
func IntervalSecondsEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldIntervalSeconds, v))
}

// IntervalSecondsNEQ applies the NEQ predicate on the "interval_seconds" field.
func IntervalSecondsNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldIntervalSeconds, v))
}

// IntervalSecondsIn applies the In predicate on the "interval_seconds" field.
func IntervalSecondsIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldIntervalSeconds, vs...))
}

// IntervalSecondsNotIn applies the NotIn predicate on the "interval_seconds" field.
func IntervalSecondsNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldIntervalSeconds, vs...))
}

// IntervalSecondsGT applies the GT predicate on the "interval_seconds" field.
func IntervalSecondsGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldIntervalSeconds, v))
}

// IntervalSecondsGTE applies the GTE predicate on the "interval_seconds" field.
func IntervalSecondsGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldIntervalSeconds, v))
}

// IntervalSecondsLT applies the LT predicate on the "interval_seconds" field.
func IntervalSecondsLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldIntervalSeconds, v))
}

// IntervalSecondsLTE applies the LTE predicate on the "interval_seconds" field.
func IntervalSecondsLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldIntervalSeconds, v))
}

// IntervalSecondsIsNil applies the IsNil predicate on the "interval_seconds" field.
func IntervalSecondsIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldIntervalSeconds))
}

// IntervalSecondsNotNil applies the NotNil predicate on the "interval_seconds" field.
func IntervalSecondsNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldIntervalSeconds))
}

// RecurrenceTimeEQ applies the EQ predicate on the "recurrence_time" field.
func RecurrenceTimeEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldRecurrenceTime, v))
}

// RecurrenceTimeNEQ applies the NEQ predicate on the "recurrence_time" field.
func RecurrenceTimeNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldRecurrenceTime, v))
}

// RecurrenceTimeIn applies the In predicate on the "recurrence_time" field.
func RecurrenceTimeIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldRecurrenceTime, vs...))
}

// RecurrenceTimeNotIn applies the NotIn predicate on the "recurrence_time" field.
func RecurrenceTimeNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldRecurrenceTime, vs...))
}

// RecurrenceTimeGT applies the GT predicate on the "recurrence_time" field.
func RecurrenceTimeGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldRecurrenceTime, v))
}

// RecurrenceTimeGTE applies the GTE predicate on the "recurrence_time" field.
func RecurrenceTimeGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldRecurrenceTime, v))
}

// RecurrenceTimeLT applies the LT predicate on the "recurrence_time" field.
func RecurrenceTimeLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldRecurrenceTime, v))
}

// RecurrenceTimeLTE applies the LTE predicate on the "recurrence_time" field.
func RecurrenceTimeLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldRecurrenceTime, v))
}

// RecurrenceTimeContains applies the Contains predicate on the "recurrence_time" field.
func RecurrenceTimeContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldRecurrenceTime, v))
}

// RecurrenceTimeHasPrefix applies the HasPrefix predicate on the "recurrence_time" field.
func RecurrenceTimeHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldRecurrenceTime, v))
}

// RecurrenceTimeHasSuffix applies the HasSuffix predicate on the "recurrence_time" field.
func RecurrenceTimeHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldRecurrenceTime, v))
}

// RecurrenceTimeIsNil applies the IsNil predicate on the "recurrence_time" field.
func RecurrenceTimeIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldRecurrenceTime))
}

// RecurrenceTimeNotNil applies the NotNil predicate on the "recurrence_time" field.
func RecurrenceTimeNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldRecurrenceTime))
}

// RecurrenceTimeEqualFold applies the EqualFold predicate on the "recurrence_time" field.
func RecurrenceTimeEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldRecurrenceTime, v))
}

// RecurrenceTimeContainsFold applies the ContainsFold predicate on the "recurrence_time" field.
func RecurrenceTimeContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldRecurrenceTime, v))
}

// DaysOfWeekEQ applies the EQ predicate on the "days_of_week" field.
func DaysOfWeekEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDaysOfWeek, v))
}

// DaysOfWeekNEQ applies the NEQ predicate on the "days_of_week" field.
func DaysOfWeekNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldDaysOfWeek, v))
}

// DaysOfWeekIn applies the In predicate on the "days_of_week" field.
func DaysOfWeekIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldDaysOfWeek, vs...))
}

// DaysOfWeekNotIn applies the NotIn predicate on the "days_of_week" field.
func DaysOfWeekNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldDaysOfWeek, vs...))
}

// DaysOfWeekGT applies the GT predicate on the "days_of_week" field.
func DaysOfWeekGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldDaysOfWeek, v))
}

// DaysOfWeekGTE applies the GTE predicate on the "days_of_week" field.
func DaysOfWeekGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldDaysOfWeek, v))
}

// DaysOfWeekLT applies the LT predicate on the "days_of_week" field.
func DaysOfWeekLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldDaysOfWeek, v))
}

// DaysOfWeekLTE applies the LTE predicate on the "days_of_week" field.
func DaysOfWeekLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldDaysOfWeek, v))
}

// DaysOfWeekContains applies the Contains predicate on the "days_of_week" field.
func DaysOfWeekContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldDaysOfWeek, v))
}

// DaysOfWeekHasPrefix applies the HasPrefix predicate on the "days_of_week" field.
func DaysOfWeekHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldDaysOfWeek, v))
}

// DaysOfWeekHasSuffix applies the HasSuffix predicate on the "days_of_week" field.
func DaysOfWeekHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldDaysOfWeek, v))
}

// DaysOfWeekIsNil applies the IsNil predicate on the "days_of_week" field.
func DaysOfWeekIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldDaysOfWeek))
}

// DaysOfWeekNotNil applies the NotNil predicate on the "days_of_week" field.
func DaysOfWeekNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldDaysOfWeek))
}

// DaysOfWeekEqualFold applies the EqualFold predicate on the "days_of_week" field.
func DaysOfWeekEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldDaysOfWeek, v))
}

// DaysOfWeekContainsFold applies the ContainsFold predicate on the "days_of_week" field.
func DaysOfWeekContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldDaysOfWeek, v))
}

// DayOfMonthEQ applies the EQ predicate on the "day_of_month" field.
func DayOfMonthEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDayOfMonth, v))
}

// DayOfMonthNEQ applies the NEQ predicate on the "day_of_month" field.
func DayOfMonthNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldDayOfMonth, v))
}

// DayOfMonthIn applies the In predicate on the "day_of_month" field.
func DayOfMonthIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldDayOfMonth, vs...))
}

// DayOfMonthNotIn applies the NotIn predicate on the "day_of_month" field.
func DayOfMonthNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldDayOfMonth, vs...))
}

// DayOfMonthGT applies the GT predicate on the "day_of_month" field.
func DayOfMonthGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldDayOfMonth, v))
}

// DayOfMonthGTE applies the GTE predicate on the "day_of_month" field.
func DayOfMonthGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldDayOfMonth, v))
}

// DayOfMonthLT applies the LT predicate on the "day_of_month" field.
func DayOfMonthLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldDayOfMonth, v))
}

// DayOfMonthLTE applies the LTE predicate on the "day_of_month" field.
func DayOfMonthLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldDayOfMonth, v))
}

// DayOfMonthIsNil applies the IsNil predicate on the "day_of_month" field.
func DayOfMonthIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldDayOfMonth))
}

// DayOfMonthNotNil applies the NotNil predicate on the "day_of_month" field.
func DayOfMonthNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldDayOfMonth))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldEnabled, v))
}

// LastRunEQ applies the EQ predicate on the "last_run" field.
func LastRunEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastRun, v))
}

// LastRunNEQ applies the NEQ predicate on the "last_run" field.
func LastRunNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldLastRun, v))
}

// LastRunIn applies the In predicate on the "last_run" field.
func LastRunIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldLastRun, vs...))
}

// LastRunNotIn applies the NotIn predicate on the "last_run" field.
func LastRunNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldLastRun, vs...))
}

// LastRunGT applies the GT predicate on the "last_run" field.
func LastRunGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldLastRun, v))
}

// LastRunGTE applies the GTE predicate on the "last_run" field.
func LastRunGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldLastRun, v))
}

// LastRunLT applies the LT predicate on the "last_run" field.
func LastRunLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldLastRun, v))
}

// LastRunLTE applies the LTE predicate on the "last_run" field.
func LastRunLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldLastRun, v))
}

// LastRunIsNil applies the IsNil predicate on the "last_run" field.
func LastRunIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldLastRun))
}

// LastRunNotNil applies the NotNil predicate on the "last_run" field.
func LastRunNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldLastRun))
}

// NextRunEQ applies the EQ predicate on the "next_run" field.
func NextRunEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldNextRun, v))
}

// NextRunNEQ applies the NEQ predicate on the "next_run" field.
func NextRunNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldNextRun, v))
}

// NextRunIn applies the In predicate on the "next_run" field.
func NextRunIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldNextRun, vs...))
}

// NextRunNotIn applies the NotIn predicate on the "next_run" field.
func NextRunNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldNextRun, vs...))
}

// NextRunGT applies the GT predicate on the "next_run" field.
func NextRunGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldNextRun, v))
}

// NextRunGTE applies the GTE predicate on the "next_run" field.
func NextRunGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldNextRun, v))
}

// NextRunLT applies the LT predicate on the "next_run" field.
func NextRunLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldNextRun, v))
}

// NextRunLTE applies the LTE predicate on the "next_run" field.
func NextRunLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldNextRun, v))
}

// NextRunIsNil applies the IsNil predicate on the "next_run" field.
func NextRunIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldNextRun))
}

// NextRunNotNil applies the NotNil predicate on the "next_run" field.
func NextRunNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldNextRun))
}

// MisfireGraceSecondsEQ applies the EQ predicate on the "misfire_grace_seconds" field.
func MisfireGraceSecondsEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldMisfireGraceSeconds, v))
}

// MisfireGraceSecondsNEQ applies the NEQ predicate on the "misfire_grace_seconds" field.
func MisfireGraceSecondsNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldMisfireGraceSeconds, v))
}

// MisfireGraceSecondsIn applies the In predicate on the "misfire_grace_seconds" field.
func MisfireGraceSecondsIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldMisfireGraceSeconds, vs...))
}

// MisfireGraceSecondsNotIn applies the NotIn predicate on the "misfire_grace_seconds" field.
func MisfireGraceSecondsNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldMisfireGraceSeconds, vs...))
}

// MisfireGraceSecondsGT applies the GT predicate on the "misfire_grace_seconds" field.
func MisfireGraceSecondsGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldMisfireGraceSeconds, v))
}

// MisfireGraceSecondsGTE applies the GTE predicate on the "misfire_grace_seconds" field.
func MisfireGraceSecondsGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldMisfireGraceSeconds, v))
}

// MisfireGraceSecondsLT applies the LT predicate on the "misfire_grace_seconds" field.
func MisfireGraceSecondsLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldMisfireGraceSeconds, v))
}

// MisfireGraceSecondsLTE applies the LTE predicate on the "misfire_grace_seconds" field.
func MisfireGraceSecondsLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldMisfireGraceSeconds, v))
}

// LastExitCodeEQ applies the EQ predicate on the "last_exit_code" field.
func LastExitCodeEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastExitCode, v))
}

// LastExitCodeNEQ applies the NEQ predicate on the "last_exit_code" field.
func LastExitCodeNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldLastExitCode, v))
}

// LastExitCodeIn applies the In predicate on the "last_exit_code" field.
func LastExitCodeIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldLastExitCode, vs...))
}

// LastExitCodeNotIn applies the NotIn predicate on the "last_exit_code" field.
func LastExitCodeNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldLastExitCode, vs...))
}

// LastExitCodeGT applies the GT predicate on the "last_exit_code" field.
func LastExitCodeGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldLastExitCode, v))
}

// LastExitCodeGTE applies the GTE predicate on the "last_exit_code" field.
func LastExitCodeGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldLastExitCode, v))
}

// LastExitCodeLT applies the LT predicate on the "last_exit_code" field.
func LastExitCodeLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldLastExitCode, v))
}

// LastExitCodeLTE applies the LTE predicate on the "last_exit_code" field.
func LastExitCodeLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldLastExitCode, v))
}

// LastExitCodeIsNil applies the IsNil predicate on the "last_exit_code" field.
func LastExitCodeIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldLastExitCode))
}

// LastExitCodeNotNil applies the NotNil predicate on the "last_exit_code" field.
func LastExitCodeNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldLastExitCode))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldLastError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Job) predicate.Job {
	return predicate.Job(sql.NotPredicates(p))
}
