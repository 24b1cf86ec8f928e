package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// questionSchema mirrors one item of the generated question batch.
func questionSchema() *Schema {
	return &Schema{
		Name:        "quiz-question",
		Description: "A single quiz question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{"type": "string"},
				"type": map[string]any{
					"type": "string",
					"enum": []any{"multiple_choice", "true_false", "yes_no", "fill_blank"},
				},
				"correct_answer": map[string]any{"type": "string"},
				"difficulty":     map[string]any{"type": "integer", "minimum": 1},
			},
			"required": []any{"text", "type", "correct_answer"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"text":"What color is the sky?","type":"multiple_choice","correct_answer":"Blue","difficulty":1}`)
	err := validateResponse(questionSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"text":"A baby cat is called a kitten.","type":"true_false","correct_answer":"True"}`)
	err := validateResponse(questionSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"text":"What color is the sky?"}`)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"text":"What is 2+2?","type":"fill_blank","correct_answer":"4","difficulty":"easy"}`)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"text":"Draw a cat.","type":"essay","correct_answer":"n/a"}`)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for question type outside the enum")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	err := validateResponse(nil, raw)
	if err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_BatchArray(t *testing.T) {
	schema := &Schema{
		Name:        "test-question-batch",
		Description: "A batch of quiz questions",
		Definition: map[string]any{
			"type":     "array",
			"minItems": 2,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"text":           map[string]any{"type": "string"},
					"correct_answer": map[string]any{"type": "string"},
					"options": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required": []any{"text", "correct_answer"},
			},
		},
	}

	valid := json.RawMessage(`[
		{"text":"What sound does a cow make?","correct_answer":"Moo","options":["Moo","Woof"]},
		{"text":"A baby dog is called a _____.","correct_answer":"puppy"}
	]`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	tooShort := json.RawMessage(`[{"text":"What sound does a cow make?","correct_answer":"Moo"}]`)
	if err := validateResponse(schema, tooShort); err == nil {
		t.Fatal("expected error for batch below minItems")
	}

	badOptions := json.RawMessage(`[
		{"text":"What sound does a cow make?","correct_answer":"Moo","options":[1,2]},
		{"text":"A baby dog is called a _____.","correct_answer":"puppy"}
	]`)
	if err := validateResponse(schema, badOptions); err == nil {
		t.Fatal("expected error for non-string options")
	}
}
