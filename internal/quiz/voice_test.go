package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/quizzy/internal/speech"
)

func TestVoiceGraderTranscript(t *testing.T) {
	ctx := context.Background()

	t.Run("transcript feeds evaluation", func(t *testing.T) {
		g := NewVoiceGrader(speech.NewMockTranscriber("అమ్మ"))

		text, err := g.Transcript(ctx, "audio", "te-IN")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		q := &Question{Type: TypeVoiceInput, CorrectAnswer: "అమ్మ"}
		if !Evaluate(q, text) {
			t.Error("expected transcript to grade correct")
		}
	})

	t.Run("silence is retriable, never graded", func(t *testing.T) {
		g := NewVoiceGrader(speech.NewMockTranscriber())

		text, err := g.Transcript(ctx, "audio", "te-IN")
		if !errors.Is(err, speech.ErrNoSpeech) {
			t.Fatalf("err = %v, want ErrNoSpeech", err)
		}
		if text != "" {
			t.Errorf("transcript = %q, want empty", text)
		}
	})

	t.Run("transport failure surfaces", func(t *testing.T) {
		m := speech.NewMockTranscriber("unused")
		m.FailWith(errors.New("network down"))
		g := NewVoiceGrader(m)

		if _, err := g.Transcript(ctx, "audio", "en-US"); err == nil {
			t.Fatal("expected error")
		}
	})
}
