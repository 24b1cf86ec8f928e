package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/quizzy/internal/llm"
	"github.com/abhisek/quizzy/internal/quiz"
)

func marshalBatch(t *testing.T, batch []quiz.Draft) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(batch)
	if err != nil {
		t.Fatalf("marshal batch: %v", err)
	}
	return b
}

func TestLLMGeneratorGenerate(t *testing.T) {
	topic := quiz.Topic{ID: "topic-1", Name: "Animals", Emoji: "🦁", Policy: PolicyGeneral}

	t.Run("valid response produces drafts", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{
			Content: marshalBatch(t, validGeneralBatch()),
		})
		g := New(mock, DefaultConfig())

		batch, err := g.Generate(context.Background(), topic, GeneralPolicy())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(batch) != 10 {
			t.Fatalf("batch = %d, want 10", len(batch))
		}
		for i, d := range batch {
			if d.Difficulty != 1 {
				t.Errorf("batch[%d].Difficulty = %d, want 1", i, d.Difficulty)
			}
		}
	})

	t.Run("request carries schema and prompt", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{
			Content: marshalBatch(t, validGeneralBatch()),
		})
		g := New(mock, DefaultConfig())

		if _, err := g.Generate(context.Background(), topic, GeneralPolicy()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(mock.Calls) != 1 {
			t.Fatalf("calls = %d, want 1", len(mock.Calls))
		}
		req := mock.Calls[0]
		if req.Schema == nil {
			t.Fatal("expected schema on request")
		}
		if req.System == "" {
			t.Error("expected system prompt")
		}
		if len(req.Messages) != 1 {
			t.Fatalf("messages = %d, want 1", len(req.Messages))
		}
	})

	t.Run("provider error surfaces", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{
			Err: &llm.ErrRateLimit{Err: errors.New("429")},
		})
		g := New(mock, DefaultConfig())

		_, err := g.Generate(context.Background(), topic, GeneralPolicy())
		if err == nil {
			t.Fatal("expected error")
		}
		var rateErr *llm.ErrRateLimit
		if !errors.As(err, &rateErr) {
			t.Errorf("err = %v, want wrapped ErrRateLimit", err)
		}
	})

	t.Run("non-array response rejected", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{
			Content: json.RawMessage(`{"questions": []}`),
		})
		g := New(mock, DefaultConfig())

		_, err := g.Generate(context.Background(), topic, GeneralPolicy())
		var formatErr *ErrInvalidGenerationFormat
		if !errors.As(err, &formatErr) {
			t.Fatalf("err = %T, want *ErrInvalidGenerationFormat", err)
		}
	})

	t.Run("undersized batch rejected", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{
			Content: marshalBatch(t, validGeneralBatch()[:3]),
		})
		g := New(mock, DefaultConfig())

		_, err := g.Generate(context.Background(), topic, GeneralPolicy())
		var formatErr *ErrInvalidGenerationFormat
		if !errors.As(err, &formatErr) {
			t.Fatalf("err = %T, want *ErrInvalidGenerationFormat", err)
		}
	})

	t.Run("unsafe batch rejected", func(t *testing.T) {
		unsafe := validGeneralBatch()
		unsafe[0].FunFact = "This spider's poison is deadly."
		mock := llm.NewMockProvider(llm.MockResponse{
			Content: marshalBatch(t, unsafe),
		})
		g := New(mock, DefaultConfig())

		_, err := g.Generate(context.Background(), topic, GeneralPolicy())
		var unsafeErr *ErrUnsafeContent
		if !errors.As(err, &unsafeErr) {
			t.Fatalf("err = %T, want *ErrUnsafeContent", err)
		}
	})
}

func TestBatchSchemaSizes(t *testing.T) {
	for _, p := range []Policy{GeneralPolicy(), VocabularyPolicy()} {
		s := BatchSchema(p)
		if s == nil {
			t.Fatalf("%s: nil schema", p.Name)
		}
		if s.Definition["minItems"] != p.BatchSize || s.Definition["maxItems"] != p.BatchSize {
			t.Errorf("%s: schema bounds = %v/%v, want %d",
				p.Name, s.Definition["minItems"], s.Definition["maxItems"], p.BatchSize)
		}
	}
}
