package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Question is a single quiz item belonging to one topic's batch.
// Batches are replaced wholesale on regeneration; rows are never
// updated in place.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("topic_id").
			NotEmpty().
			Comment("Owning topic"),
		field.String("text").
			NotEmpty().
			Comment("The question shown to the learner"),
		field.String("question_type").
			NotEmpty().
			Comment("multiple_choice, true_false, yes_no, fill_blank, or voice_input"),
		field.JSON("options", []string{}).
			Optional().
			Comment("Selectable answers; empty for fill_blank and voice_input"),
		field.String("correct_answer").
			NotEmpty(),
		field.String("fun_fact").
			Comment("Short educational fact revealed after answering"),
		field.Int("difficulty").
			Default(1),
		field.Int("position").
			Default(0).
			Comment("Zero-based order within the topic's batch"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id"),
	}
}
