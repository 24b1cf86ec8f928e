package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Topic is a named subject area a learner can practice.
// Created by an administrator action; never mutated by the generation
// pipeline, which only reads it.
type Topic struct {
	ent.Schema
}

func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			Comment("Display name, e.g. \"Animals\""),
		field.String("emoji").
			NotEmpty().
			Comment("Single emoji shown next to the name"),
		field.String("policy").
			Default("general").
			Comment("Generation policy: general or vocabulary"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Topic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
	}
}
