package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autohub/automation-hub/constants"
	"github.com/autohub/automation-hub/gen/ent"
	"github.com/autohub/automation-hub/internal/common"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func recurringJob(kind string, mutate func(*ent.Job)) *ent.Job {
	j := &ent.Job{
		Name:           "backup",
		Script:         "/usr/local/bin/backup.sh",
		JobType:        string(constants.JobTypeRecurring),
		RecurrenceKind: strPtr(kind),
	}
	if mutate != nil {
		mutate(j)
	}
	return j
}

func TestCronExpr(t *testing.T) {
	tests := []struct {
		name string
		job  *ent.Job
		want string
	}{
		{
			name: "interval",
			job: recurringJob("interval", func(j *ent.Job) {
				j.IntervalSeconds = intPtr(90)
			}),
			want: "@every 90s",
		},
		{
			name: "daily",
			job: recurringJob("daily", func(j *ent.Job) {
				j.RecurrenceTime = strPtr("09:30")
			}),
			want: "30 9 * * *",
		},
		{
			name: "weekly",
			job: recurringJob("weekly", func(j *ent.Job) {
				j.RecurrenceTime = strPtr("09:00")
				j.DaysOfWeek = strPtr("1,3")
			}),
			want: "0 9 * * 1,3",
		},
		{
			name: "monthly",
			job: recurringJob("monthly", func(j *ent.Job) {
				j.RecurrenceTime = strPtr("00:15")
				j.DayOfMonth = intPtr(31)
			}),
			want: "15 0 31 * *",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cronExpr(tt.job)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCronExprRejectsMalformedSpecs(t *testing.T) {
	tests := []struct {
		name string
		job  *ent.Job
	}{
		{"missing kind", recurringJob("", func(j *ent.Job) { j.RecurrenceKind = nil })},
		{"unknown kind", recurringJob("hourly", nil)},
		{"zero interval", recurringJob("interval", func(j *ent.Job) { j.IntervalSeconds = intPtr(0) })},
		{"missing time", recurringJob("daily", nil)},
		{"bad clock", recurringJob("daily", func(j *ent.Job) { j.RecurrenceTime = strPtr("25:00") })},
		{"weekly without days", recurringJob("weekly", func(j *ent.Job) { j.RecurrenceTime = strPtr("09:00") })},
		{"weekday out of range", recurringJob("weekly", func(j *ent.Job) {
			j.RecurrenceTime = strPtr("09:00")
			j.DaysOfWeek = strPtr("1,7")
		})},
		{"day of month out of range", recurringJob("monthly", func(j *ent.Job) {
			j.RecurrenceTime = strPtr("09:00")
			j.DayOfMonth = intPtr(32)
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cronExpr(tt.job)
			assert.ErrorIs(t, err, common.ErrScheduling)
		})
	}
}

func TestBuildScheduleOneShot(t *testing.T) {
	at := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	j := &ent.Job{
		Name:    "once",
		JobType: string(constants.JobTypeOneTime),
		RunDate: &at,
	}

	s, err := buildSchedule(j, newParser())
	require.NoError(t, err)

	before := at.Add(-time.Hour)
	assert.Equal(t, at, s.Next(before))
	assert.True(t, s.Next(at).IsZero(), "no fire after the run date")
	assert.True(t, s.Next(at.Add(time.Minute)).IsZero())
}

func TestBuildScheduleOneShotWithoutRunDate(t *testing.T) {
	j := &ent.Job{Name: "once", JobType: string(constants.JobTypeOneTime)}

	_, err := buildSchedule(j, newParser())
	assert.ErrorIs(t, err, common.ErrScheduling)
}

func TestBuildScheduleUnknownType(t *testing.T) {
	j := &ent.Job{Name: "odd", JobType: "cron"}

	_, err := buildSchedule(j, newParser())
	assert.ErrorIs(t, err, common.ErrScheduling)
}

func TestWeeklyScheduleNextFire(t *testing.T) {
	j := recurringJob("weekly", func(j *ent.Job) {
		j.RecurrenceTime = strPtr("09:00")
		j.DaysOfWeek = strPtr("1,3") // Monday and Wednesday
	})

	s, err := buildSchedule(j, newParser())
	require.NoError(t, err)

	// Tuesday 10:00 rolls forward to Wednesday 09:00.
	tue := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	require.Equal(t, time.Tuesday, tue.Weekday())
	next := s.Next(tue)
	assert.Equal(t, time.Wednesday, next.Weekday())
	assert.Equal(t, 9, next.Hour())
	assert.Equal(t, 0, next.Minute())

	// Wednesday 09:30 rolls to the following Monday.
	following := s.Next(next.Add(30 * time.Minute))
	assert.Equal(t, time.Monday, following.Weekday())
}

func TestMonthlyScheduleSkipsShortMonths(t *testing.T) {
	j := recurringJob("monthly", func(j *ent.Job) {
		j.RecurrenceTime = strPtr("08:00")
		j.DayOfMonth = intPtr(31)
	})

	s, err := buildSchedule(j, newParser())
	require.NoError(t, err)

	// From mid-September (30 days) the next day 31 is October 31.
	from := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	next := s.Next(from)
	assert.Equal(t, time.Month(10), next.Month())
	assert.Equal(t, 31, next.Day())
	assert.Equal(t, 8, next.Hour())
}

func TestIntervalScheduleSpacing(t *testing.T) {
	j := recurringJob("interval", func(j *ent.Job) {
		j.IntervalSeconds = intPtr(45)
	})

	s, err := buildSchedule(j, newParser())
	require.NoError(t, err)

	from := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	first := s.Next(from)
	second := s.Next(first)
	assert.Equal(t, 45*time.Second, first.Sub(from))
	assert.Equal(t, 45*time.Second, second.Sub(first))
}
