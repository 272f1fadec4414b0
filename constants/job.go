package constants

// JobType distinguishes one-shot jobs from recurring ones.
type JobType string

// Stable values (store these exact strings in DB).
const (
	JobTypeOneTime   JobType = "one_time"
	JobTypeRecurring JobType = "recurring"
)

// JobTypes holds the allowed values for the job_type field.
var JobTypes = []string{string(JobTypeOneTime), string(JobTypeRecurring)}

// RecurrenceKind selects how a recurring job computes its fire times.
type RecurrenceKind string

const (
	RecurrenceInterval RecurrenceKind = "interval"
	RecurrenceDaily    RecurrenceKind = "daily"
	RecurrenceWeekly   RecurrenceKind = "weekly"
	RecurrenceMonthly  RecurrenceKind = "monthly"
)

// RecurrenceKinds holds the allowed values for the recurrence_kind field.
var RecurrenceKinds = []string{
	string(RecurrenceInterval),
	string(RecurrenceDaily),
	string(RecurrenceWeekly),
	string(RecurrenceMonthly),
}

// DefaultMisfireGraceSeconds is applied when a job spec does not set its own
// grace window.
const DefaultMisfireGraceSeconds = 300
