// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autohub/automation-hub/gen/ent/job"
	"github.com/google/uuid"
)

// Job is the model entity for the Job schema.
type Job struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Script holds the value of the "script" field.
	Script string `json:"script,omitempty"`
	// JobType holds the value of the "job_type" field.
	JobType string `json:"job_type,omitempty"`
	// RunDate holds the value of the "run_date" field.
	RunDate *time.Time `json:"run_date,omitempty"`
	// RecurrenceKind holds the value of the "recurrence_kind" field.
	RecurrenceKind *string `json:"recurrence_kind,omitempty"`
	// IntervalSeconds holds the value of the "interval_seconds" field.
	IntervalSeconds *int `json:"interval_seconds,omitempty"`
	// RecurrenceTime holds the value of the "recurrence_time" field.
	RecurrenceTime *string `json:"recurrence_time,omitempty"`
	// DaysOfWeek holds the value of the "days_of_week" field.
	DaysOfWeek *string `json:"days_of_week,omitempty"`
	// DayOfMonth holds the value of the "day_of_month" field.
	DayOfMonth *int `json:"day_of_month,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// LastRun holds the value of the "last_run" field.
	LastRun *time.Time `json:"last_run,omitempty"`
	// NextRun holds the value of the "next_run" field.
	NextRun *time.Time `json:"next_run,omitempty"`
	// MisfireGraceSeconds holds the value of the "misfire_grace_seconds" field.
	MisfireGraceSeconds int `json:"misfire_grace_seconds,omitempty"`
	// LastExitCode holds the value of the "last_exit_code" field.
	LastExitCode *int `json:"last_exit_code,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Job) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case job.FieldEnabled:
			values[i] = new(sql.NullBool)
		case job.FieldIntervalSeconds, job.FieldDayOfMonth, job.FieldMisfireGraceSeconds, job.FieldLastExitCode:
			values[i] = new(sql.NullInt64)
		case job.FieldName, job.FieldScript, job.FieldJobType, job.FieldRecurrenceKind, job.FieldRecurrenceTime, job.FieldDaysOfWeek, job.FieldLastError:
			values[i] = new(sql.NullString)
		case job.FieldRunDate, job.FieldLastRun, job.FieldNextRun, job.FieldCreatedAt, job.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case job.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Job fields.
func (_m *Job) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case job.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case job.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case job.FieldScript:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field script", values[i])
			} else if value.Valid {
				_m.Script = value.String
			}
		case job.FieldJobType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_type", values[i])
			} else if value.Valid {
				_m.JobType = value.String
			}
		case job.FieldRunDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field run_date", values[i])
			} else if value.Valid {
				_m.RunDate = new(time.Time)
				*_m.RunDate = value.Time
			}
		case job.FieldRecurrenceKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recurrence_kind", values[i])
			} else if value.Valid {
				_m.RecurrenceKind = new(string)
				*_m.RecurrenceKind = value.String
			}
		case job.FieldIntervalSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_seconds", values[i])
			} else if value.Valid {
				_m.IntervalSeconds = new(int)
				*_m.IntervalSeconds = int(value.Int64)
			}
		case job.FieldRecurrenceTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recurrence_time", values[i])
			} else if value.Valid {
				_m.RecurrenceTime = new(string)
				*_m.RecurrenceTime = value.String
			}
		case job.FieldDaysOfWeek:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field days_of_week", values[i])
			} else if value.Valid {
				_m.DaysOfWeek = new(string)
				*_m.DaysOfWeek = value.String
			}
		case job.FieldDayOfMonth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field day_of_month", values[i])
			} else if value.Valid {
				_m.DayOfMonth = new(int)
				*_m.DayOfMonth = int(value.Int64)
			}
		case job.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case job.FieldLastRun:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_run", values[i])
			} else if value.Valid {
				_m.LastRun = new(time.Time)
				*_m.LastRun = value.Time
			}
		case job.FieldNextRun:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_run", values[i])
			} else if value.Valid {
				_m.NextRun = new(time.Time)
				*_m.NextRun = value.Time
			}
		case job.FieldMisfireGraceSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field misfire_grace_seconds", values[i])
			} else if value.Valid {
				_m.MisfireGraceSeconds = int(value.Int64)
			}
		case job.FieldLastExitCode:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_exit_code", values[i])
			} else if value.Valid {
				_m.LastExitCode = new(int)
				*_m.LastExitCode = int(value.Int64)
			}
		case job.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		case job.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case job.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Job.
// This includes values selected through modifiers, order, etc.
func (_m *Job) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Job.
// Note that you need to call Job.Unwrap() before calling this method if this Job
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Job) Update() *JobUpdateOne {
	return NewJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Job entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Job) Unwrap() *Job {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Job is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Job) String() string {
	var builder strings.Builder
	builder.WriteString("Job(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("script=")
	builder.WriteString(_m.Script)
	builder.WriteString(", ")
	builder.WriteString("job_type=")
	builder.WriteString(_m.JobType)
	builder.WriteString(", ")
	if v := _m.RunDate; v != nil {
		builder.WriteString("run_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.RecurrenceKind; v != nil {
		builder.WriteString("recurrence_kind=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.IntervalSeconds; v != nil {
		builder.WriteString("interval_seconds=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RecurrenceTime; v != nil {
		builder.WriteString("recurrence_time=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DaysOfWeek; v != nil {
		builder.WriteString("days_of_week=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DayOfMonth; v != nil {
		builder.WriteString("day_of_month=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	if v := _m.LastRun; v != nil {
		builder.WriteString("last_run=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.NextRun; v != nil {
		builder.WriteString("next_run=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("misfire_grace_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.MisfireGraceSeconds))
	builder.WriteString(", ")
	if v := _m.LastExitCode; v != nil {
		builder.WriteString("last_exit_code=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Jobs is a parsable slice of Job.
type Jobs []*Job
