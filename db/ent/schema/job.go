package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/autohub/automation-hub/constants"
	"github.com/autohub/automation-hub/db/ent/schema/utils"
)

type Job struct{ ent.Schema }

func (Job) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "jobs"},
	}
}

func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		// Command line executed when the job fires.
		field.String("script").NotEmpty(),
		field.String("job_type").NotEmpty().
			Validate(utils.EnumValidator(constants.JobTypes...)),
		// one_time only: the single fire time (naive local timestamp).
		field.Time("run_date").Optional().Nillable(),
		// recurring only.
		field.String("recurrence_kind").Optional().Nillable().
			Validate(utils.EnumValidator(constants.RecurrenceKinds...)),
		field.Int("interval_seconds").Optional().Nillable(),
		// "HH:MM", 24-hour clock.
		field.String("recurrence_time").Optional().Nillable(),
		// Comma-separated cron weekday numbers, 0=Sunday.
		field.String("days_of_week").Optional().Nillable(),
		field.Int("day_of_month").Optional().Nillable(),

		field.Bool("enabled").Default(true),
		field.Time("last_run").Optional().Nillable(),
		// Denormalized cache of the live trigger's next fire time.
		field.Time("next_run").Optional().Nillable(),
		field.Int("misfire_grace_seconds").Default(constants.DefaultMisfireGraceSeconds),
		field.Int("last_exit_code").Optional().Nillable(),
		field.String("last_error").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enabled", "next_run"),
	}
}
