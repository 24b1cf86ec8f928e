package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/quizzy/internal/store"
)

type recordingGenLog struct {
	events []store.GenerationEventData
	err    error
}

func (r *recordingGenLog) AppendGeneration(_ context.Context, data store.GenerationEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func (r *recordingGenLog) Recent(_ context.Context, _ int) ([]store.GenerationEvent, error) {
	return nil, nil
}

func TestWithLogging(t *testing.T) {
	t.Run("records successful request", func(t *testing.T) {
		mock := NewMockProvider(MockResponse{
			Content: json.RawMessage(`{"ok":true}`),
			Usage:   Usage{InputTokens: 120, OutputTokens: 45},
		})
		log := &recordingGenLog{}
		p := WithLogging(mock, log)

		ctx := WithTopic(context.Background(), "topic-1")
		resp, err := p.Generate(ctx, Request{MaxTokens: 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp == nil {
			t.Fatal("expected non-nil response")
		}

		if len(log.events) != 1 {
			t.Fatalf("events = %d, want 1", len(log.events))
		}
		ev := log.events[0]
		if ev.TopicID != "topic-1" {
			t.Errorf("topic = %q, want %q", ev.TopicID, "topic-1")
		}
		if ev.Source != "llm_request" {
			t.Errorf("source = %q, want %q", ev.Source, "llm_request")
		}
		if !ev.Success {
			t.Error("expected success event")
		}
		if ev.InputTokens != 120 || ev.OutputTokens != 45 {
			t.Errorf("tokens = %d/%d, want 120/45", ev.InputTokens, ev.OutputTokens)
		}
	})

	t.Run("records failed request", func(t *testing.T) {
		mock := NewMockProvider(MockResponse{
			Err: &ErrRateLimit{Err: errors.New("too many requests")},
		})
		log := &recordingGenLog{}
		p := WithLogging(mock, log)

		_, err := p.Generate(context.Background(), Request{})
		if err == nil {
			t.Fatal("expected error")
		}

		if len(log.events) != 1 {
			t.Fatalf("events = %d, want 1", len(log.events))
		}
		ev := log.events[0]
		if ev.Success {
			t.Error("expected failure event")
		}
		if ev.ErrorMessage == "" {
			t.Error("expected error message to be recorded")
		}
	})

	t.Run("logging failure does not fail request", func(t *testing.T) {
		mock := NewMockProvider(MockResponse{
			Content: json.RawMessage(`{}`),
		})
		log := &recordingGenLog{err: errors.New("disk full")}
		p := WithLogging(mock, log)

		resp, err := p.Generate(context.Background(), Request{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp == nil {
			t.Fatal("expected non-nil response")
		}
	})

	t.Run("nil repo disables logging", func(t *testing.T) {
		mock := NewMockProvider(MockResponse{
			Content: json.RawMessage(`{}`),
		})
		p := WithLogging(mock, nil)

		if _, err := p.Generate(context.Background(), Request{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delegates ModelID", func(t *testing.T) {
		p := WithLogging(NewMockProvider(), &recordingGenLog{})
		if p.ModelID() != "mock" {
			t.Errorf("model = %q, want %q", p.ModelID(), "mock")
		}
	})
}
