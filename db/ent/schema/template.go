package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Template struct{ ent.Schema }

func (Template) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "templates"},
	}
}

func (Template) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty().Unique(),
		// Reference page dimensions the field rectangles were authored
		// against, in PDF points. Never the zoomed display size.
		field.Float("base_width").Positive(),
		field.Float("base_height").Positive(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Template) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("fields", Field.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
