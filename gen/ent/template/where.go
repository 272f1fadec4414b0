// Code generated by ent, DO NOT EDIT.

package template

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/autohub/automation-hub/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Template {
	return predicate.Template(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Template {
	return predicate.Template(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Template {
	return predicate.Template(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Template {
	return predicate.Template(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Template {
	return predicate.Template(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Template {
	return predicate.Template(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Template {
	return predicate.Template(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldName, v))
}

// BaseWidth applies equality check predicate on the "base_width" field. It's identical to BaseWidthEQ.
func BaseWidth(v float64) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldBaseWidth, v))
}

// BaseHeight applies equality check predicate on the "base_height" field. It's identical to BaseHeightEQ.
func BaseHeight(v float64) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldBaseHeight, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Template {
	return predicate.Template(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Template {
	return predicate.Template(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Template {
	return predicate.Template(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Template {
	return predicate.Template(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Template {
	return predicate.Template(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Template {
	return predicate.Template(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Template {
	return predicate.Template(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Template {
	return predicate.Template(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Template {
	return predicate.Template(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Template {
	return predicate.Template(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Template {
	return predicate.Template(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Template {
	return predicate.Template(sql.FieldContainsFold(FieldName, v))
}

// BaseWidthEQ applies the EQ predicate on the "base_width" field.
func BaseWidthEQ(v float64) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldBaseWidth, v))
}

// BaseWidthNEQ applies the NEQ predicate on the "base_width" field.
func BaseWidthNEQ(v float64) predicate.Template {
	return predicate.Template(sql.FieldNEQ(FieldBaseWidth, v))
}

// BaseWidthIn applies the In predicate on the "base_width" field.
func BaseWidthIn(vs ...float64) predicate.Template {
	return predicate.Template(sql.FieldIn(FieldBaseWidth, vs...))
}

// BaseWidthNotIn applies the NotIn predicate on the "base_width" field.
func BaseWidthNotIn(vs ...float64) predicate.Template {
	return predicate.Template(sql.FieldNotIn(FieldBaseWidth, vs...))
}

// BaseWidthGT applies the GT predicate on the "base_width" field.
func BaseWidthGT(v float64) predicate.Template {
	return predicate.Template(sql.FieldGT(FieldBaseWidth, v))
}

// BaseWidthGTE applies the GTE predicate on the "base_width" field.
func BaseWidthGTE(v float64) predicate.Template {
	return predicate.Template(sql.FieldGTE(FieldBaseWidth, v))
}

// BaseWidthLT applies the LT predicate on the "base_width" field.
func BaseWidthLT(v float64) predicate.Template {
	return predicate.Template(sql.FieldLT(FieldBaseWidth, v))
}

// BaseWidthLTE applies the LTE predicate on the "base_width" field.
func BaseWidthLTE(v float64) predicate.Template {
	return predicate.Template(sql.FieldLTE(FieldBaseWidth, v))
}

// BaseHeightEQ applies the EQ predicate on the "base_height" field.
func BaseHeightEQ(v float64) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldBaseHeight, v))
}

// BaseHeightNEQ applies the NEQ predicate on the "base_height" field.
func BaseHeightNEQ(v float64) predicate.Template {
	return predicate.Template(sql.FieldNEQ(FieldBaseHeight, v))
}

// BaseHeightIn applies the In predicate on the "base_height" field.
func BaseHeightIn(vs ...float64) predicate.Template {
	return predicate.Template(sql.FieldIn(FieldBaseHeight, vs...))
}

// BaseHeightNotIn applies the NotIn predicate on the "base_height" field.
func BaseHeightNotIn(vs ...float64) predicate.Template {
	return predicate.Template(sql.FieldNotIn(FieldBaseHeight, vs...))
}

// BaseHeightGT applies the GT predicate on the "base_height" field.
func BaseHeightGT(v float64) predicate.Template {
	return predicate.Template(sql.FieldGT(FieldBaseHeight, v))
}

// BaseHeightGTE applies the GTE predicate on the "base_height" field.
func BaseHeightGTE(v float64) predicate.Template {
	return predicate.Template(sql.FieldGTE(FieldBaseHeight, v))
}

// BaseHeightLT applies the LT predicate on the "base_height" field.
func BaseHeightLT(v float64) predicate.Template {
	return predicate.Template(sql.FieldLT(FieldBaseHeight, v))
}

// BaseHeightLTE applies the LTE predicate on the "base_height" field.
func BaseHeightLTE(v float64) predicate.Template {
	return predicate.Template(sql.FieldLTE(FieldBaseHeight, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Template {
	return predicate.Template(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Template {
	return predicate.Template(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Template {
	return predicate.Template(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Template {
	return predicate.Template(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Template {
	return predicate.Template(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Template {
	return predicate.Template(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Template {
	return predicate.Template(sql.FieldLTE(FieldCreatedAt, v))
}

// HasFields applies the HasEdge predicate on the "fields" edge.
func HasFields() predicate.Template {
	return predicate.Template(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FieldsTable, FieldsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFieldsWith applies the HasEdge predicate on the "fields" edge with a given conditions (other predicates).
func HasFieldsWith(preds ...predicate.Field) predicate.Template {
	return predicate.Template(func(s *sql.Selector) {
		step := newFieldsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Template) predicate.Template {
	return predicate.Template(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Template) predicate.Template {
	return predicate.Template(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Template) predicate.Template {
	return predicate.Template(sql.NotPredicates(p))
}
