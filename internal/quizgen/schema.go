package quizgen

import "github.com/abhisek/quizzy/internal/llm"

// BatchSchema builds the JSON schema for a generated question batch
// under the given policy: an array of exactly BatchSize items, each
// carrying the five required fields. Options are nullable because the
// free-input types carry none.
func BatchSchema(p Policy) *llm.Schema {
	typeEnum := make([]any, len(p.Types))
	for i, t := range p.Types {
		typeEnum[i] = string(t)
	}

	return &llm.Schema{
		Name:        "question-batch-" + p.Name,
		Description: "A batch of child-safe quiz questions for one topic",
		Definition: map[string]any{
			"type":     "array",
			"minItems": p.BatchSize,
			"maxItems": p.BatchSize,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"text": map[string]any{
						"type":        "string",
						"description": "The question shown to the learner",
					},
					"type": map[string]any{
						"type":        "string",
						"enum":        typeEnum,
						"description": "How the learner answers",
					},
					"options": map[string]any{
						"type":        []any{"array", "null"},
						"items":       map[string]any{"type": "string"},
						"description": "Selectable answers; null for fill_blank and voice_input",
					},
					"correct_answer": map[string]any{
						"type":        "string",
						"description": "The correct answer; for selectable types, one of the options verbatim",
					},
					"fun_fact": map[string]any{
						"type":        "string",
						"description": "A short, fun educational fact",
					},
				},
				"required":             []any{"text", "type", "options", "correct_answer", "fun_fact"},
				"additionalProperties": false,
			},
		},
	}
}
