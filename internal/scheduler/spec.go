package scheduler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/autohub/automation-hub/constants"
	"github.com/autohub/automation-hub/gen/ent"
	"github.com/autohub/automation-hub/internal/common"
)

// newParser builds the cron parser shared by trigger construction and
// next-run computation. Descriptor support covers the @every interval
// form.
func newParser() cron.Parser {
	return cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

// oneShot fires exactly once at its run date, then never again. A zero
// Next tells the cron runner there are no further fires.
type oneShot struct {
	at time.Time
}

func (o oneShot) Next(t time.Time) time.Time {
	if t.Before(o.at) {
		return o.at
	}
	return time.Time{}
}

// buildSchedule translates a persisted job record into a live cron
// schedule. A malformed recurrence specification is reported as
// ErrScheduling; the caller leaves the job unscheduled.
func buildSchedule(j *ent.Job, parser cron.Parser) (cron.Schedule, error) {
	switch j.JobType {
	case string(constants.JobTypeOneTime):
		if j.RunDate == nil {
			return nil, fmt.Errorf("%w: one-time job %q has no run date", common.ErrScheduling, j.Name)
		}
		return oneShot{at: *j.RunDate}, nil
	case string(constants.JobTypeRecurring):
		expr, err := cronExpr(j)
		if err != nil {
			return nil, err
		}
		schedule, err := parser.Parse(expr)
		if err != nil {
			return nil, fmt.Errorf("%w: job %q spec %q: %v", common.ErrScheduling, j.Name, expr, err)
		}
		return schedule, nil
	default:
		return nil, fmt.Errorf("%w: job %q has unknown type %q", common.ErrScheduling, j.Name, j.JobType)
	}
}

// cronExpr renders a recurring job's recurrence fields as a cron
// expression. Day-of-month values beyond a month's length follow cron
// field matching: the month is skipped, not clamped.
func cronExpr(j *ent.Job) (string, error) {
	if j.RecurrenceKind == nil {
		return "", fmt.Errorf("%w: recurring job %q has no recurrence kind", common.ErrScheduling, j.Name)
	}

	switch constants.RecurrenceKind(*j.RecurrenceKind) {
	case constants.RecurrenceInterval:
		if j.IntervalSeconds == nil || *j.IntervalSeconds <= 0 {
			return "", fmt.Errorf("%w: job %q interval must be positive", common.ErrScheduling, j.Name)
		}
		return fmt.Sprintf("@every %ds", *j.IntervalSeconds), nil

	case constants.RecurrenceDaily:
		hour, minute, err := parseClock(j)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d %d * * *", minute, hour), nil

	case constants.RecurrenceWeekly:
		hour, minute, err := parseClock(j)
		if err != nil {
			return "", err
		}
		days, err := parseWeekdays(j)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d %d * * %s", minute, hour, days), nil

	case constants.RecurrenceMonthly:
		hour, minute, err := parseClock(j)
		if err != nil {
			return "", err
		}
		if j.DayOfMonth == nil || *j.DayOfMonth < 1 || *j.DayOfMonth > 31 {
			return "", fmt.Errorf("%w: job %q day of month must be 1-31", common.ErrScheduling, j.Name)
		}
		return fmt.Sprintf("%d %d %d * *", minute, hour, *j.DayOfMonth), nil

	default:
		return "", fmt.Errorf("%w: job %q has unknown recurrence kind %q", common.ErrScheduling, j.Name, *j.RecurrenceKind)
	}
}

// parseClock reads the job's "HH:MM" recurrence time.
func parseClock(j *ent.Job) (hour, minute int, err error) {
	if j.RecurrenceTime == nil {
		return 0, 0, fmt.Errorf("%w: job %q has no recurrence time", common.ErrScheduling, j.Name)
	}
	t, err := time.Parse("15:04", *j.RecurrenceTime)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: job %q time %q: %v", common.ErrScheduling, j.Name, *j.RecurrenceTime, err)
	}
	return t.Hour(), t.Minute(), nil
}

// parseWeekdays validates the comma-separated cron weekday numbers
// (0=Sunday) of a weekly job.
func parseWeekdays(j *ent.Job) (string, error) {
	if j.DaysOfWeek == nil || strings.TrimSpace(*j.DaysOfWeek) == "" {
		return "", fmt.Errorf("%w: weekly job %q has no weekdays", common.ErrScheduling, j.Name)
	}
	parts := strings.Split(*j.DaysOfWeek, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 6 {
			return "", fmt.Errorf("%w: weekly job %q has invalid weekday %q", common.ErrScheduling, j.Name, p)
		}
		out = append(out, strconv.Itoa(n))
	}
	return strings.Join(out, ","), nil
}
