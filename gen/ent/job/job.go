// Code generated by ent, DO NOT EDIT.

package job

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the job type in the database.
	Label = "job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldScript holds the string denoting the script field in the database.
	FieldScript = "script"
	// FieldJobType holds the string denoting the job_type field in the database.
	FieldJobType = "job_type"
	// FieldRunDate holds the string denoting the run_date field in the database.
	FieldRunDate = "run_date"
	// FieldRecurrenceKind holds the string denoting the recurrence_kind field in the database.
	FieldRecurrenceKind = "recurrence_kind"
	// FieldIntervalSeconds holds the string denoting the interval_seconds field in the database.
	FieldIntervalSeconds = "interval_seconds"
	// FieldRecurrenceTime holds the string denoting the recurrence_time field in the database.
	FieldRecurrenceTime = "recurrence_time"
	// FieldDaysOfWeek holds the string denoting the days_of_week field in the database.
	FieldDaysOfWeek = "days_of_week"
	// FieldDayOfMonth holds the string denoting the day_of_month field in the database.
	FieldDayOfMonth = "day_of_month"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldLastRun holds the string denoting the last_run field in the database.
	FieldLastRun = "last_run"
	// FieldNextRun holds the string denoting the next_run field in the database.
	FieldNextRun = "next_run"
	// FieldMisfireGraceSeconds holds the string denoting the misfire_grace_seconds field in the database.
	FieldMisfireGraceSeconds = "misfire_grace_seconds"
	// FieldLastExitCode holds the string denoting the last_exit_code field in the database.
	FieldLastExitCode = "last_exit_code"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the job in the database.
	Table = "jobs"
)

// Columns holds all SQL columns for job fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldScript,
	FieldJobType,
	FieldRunDate,
	FieldRecurrenceKind,
	FieldIntervalSeconds,
	FieldRecurrenceTime,
	FieldDaysOfWeek,
	FieldDayOfMonth,
	FieldEnabled,
	FieldLastRun,
	FieldNextRun,
	FieldMisfireGraceSeconds,
	FieldLastExitCode,
	FieldLastError,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// ScriptValidator is a validator for the "script" field. It is called by the builders before save.
	ScriptValidator func(string) error
	// JobTypeValidator is a validator for the "job_type" field. It is called by the builders before save.
	JobTypeValidator func(string) error
	// RecurrenceKindValidator is a validator for the "recurrence_kind" field. It is called by the builders before save.
	RecurrenceKindValidator func(string) error
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultMisfireGraceSeconds holds the default value on creation for the "misfire_grace_seconds" field.
	DefaultMisfireGraceSeconds int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Job queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByScript orders the results by the script field.
func ByScript(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScript, opts...).ToFunc()
}

// ByJobType orders the results by the job_type field.
func ByJobType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobType, opts...).ToFunc()
}

// ByRunDate orders the results by the run_date field.
func ByRunDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunDate, opts...).ToFunc()
}

// ByRecurrenceKind orders the results by the recurrence_kind field.
func ByRecurrenceKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecurrenceKind, opts...).ToFunc()
}

// ByIntervalSeconds orders the results by the interval_seconds field.
func ByIntervalSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalSeconds, opts...).ToFunc()
}

// ByRecurrenceTime orders the results by the recurrence_time field.
func ByRecurrenceTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecurrenceTime, opts...).ToFunc()
}

// ByDaysOfWeek orders the results by the days_of_week field.
func ByDaysOfWeek(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDaysOfWeek, opts...).ToFunc()
}

// ByDayOfMonth orders the results by the day_of_month field.
func ByDayOfMonth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDayOfMonth, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByLastRun orders the results by the last_run field.
func ByLastRun(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRun, opts...).ToFunc()
}

// ByNextRun orders the results by the next_run field.
func ByNextRun(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextRun, opts...).ToFunc()
}

// ByMisfireGraceSeconds orders the results by the misfire_grace_seconds field.
func ByMisfireGraceSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMisfireGraceSeconds, opts...).ToFunc()
}

// ByLastExitCode orders the results by the last_exit_code field.
func ByLastExitCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastExitCode, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
