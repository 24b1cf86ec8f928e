package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GenerationEvent records one attempt to generate a question batch,
// whether it came from the model or the fallback bank. Append-only.
type GenerationEvent struct {
	ent.Schema
}

func (GenerationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.String("topic_id").
			Optional().
			Default("").
			Comment("Empty when the request was not tied to a topic"),
		field.String("provider").
			Comment("LLM provider/model that served the request; empty for fallback-only events"),
		field.String("source").
			NotEmpty().
			Comment("llm_request, generated or fallback"),
		field.Int("questions").
			Comment("Batch size persisted"),
		field.Bool("success"),
		field.String("error_message").
			Optional().
			Default(""),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0),
	}
}

func (GenerationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id"),
		index.Fields("timestamp"),
	}
}
