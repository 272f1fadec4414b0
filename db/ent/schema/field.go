package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Field struct{ ent.Schema }

func (Field) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "fields"},
	}
}

func (Field) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("template_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		// Rectangle in the template's reference coordinate space
		// (base_width x base_height, top-left origin).
		field.Float("x"),
		field.Float("y"),
		field.Float("width").Positive(),
		field.Float("height").Positive(),
		// Definition order; extraction rows preserve it.
		field.Int("position").NonNegative(),
	}
}

func (Field) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("template", Template.Type).
			Ref("fields").
			Field("template_id").
			Unique().
			Required(),
	}
}

func (Field) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("template_id", "position"),
	}
}
