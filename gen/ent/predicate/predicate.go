// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Field is the predicate function for entfield builders.
type Field func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// Template is the predicate function for template builders.
type Template func(*sql.Selector)
