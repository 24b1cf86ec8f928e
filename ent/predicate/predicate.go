// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// GenerationEvent is the predicate function for generationevent builders.
type GenerationEvent func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// Topic is the predicate function for topic builders.
type Topic func(*sql.Selector)
