package speech

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"cloud.google.com/go/speech/apiv1/speechpb"
)

func TestDecodeAudio(t *testing.T) {
	raw := []byte("fake audio bytes")
	encoded := base64.StdEncoding.EncodeToString(raw)

	t.Run("bare payload", func(t *testing.T) {
		got, err := decodeAudio(encoded)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got) != string(raw) {
			t.Errorf("decoded = %q, want %q", got, raw)
		}
	})

	t.Run("data URI payload", func(t *testing.T) {
		got, err := decodeAudio("data:audio/webm;base64," + encoded)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got) != string(raw) {
			t.Errorf("decoded = %q, want %q", got, raw)
		}
	})

	t.Run("surrounding whitespace", func(t *testing.T) {
		got, err := decodeAudio("  " + encoded + "\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got) != string(raw) {
			t.Errorf("decoded = %q, want %q", got, raw)
		}
	})

	t.Run("invalid base64", func(t *testing.T) {
		if _, err := decodeAudio("not%%%base64"); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestPrimaryTranscript(t *testing.T) {
	t.Run("nil response", func(t *testing.T) {
		if got := primaryTranscript(nil); got != "" {
			t.Errorf("got %q, want empty", got)
		}
	})

	t.Run("empty results", func(t *testing.T) {
		if got := primaryTranscript(&speechpb.RecognizeResponse{}); got != "" {
			t.Errorf("got %q, want empty", got)
		}
	})

	t.Run("joins top alternatives", func(t *testing.T) {
		resp := &speechpb.RecognizeResponse{
			Results: []*speechpb.SpeechRecognitionResult{
				{Alternatives: []*speechpb.SpeechRecognitionAlternative{
					{Transcript: " అమ్మ "},
					{Transcript: "ignored second alternative"},
				}},
				{Alternatives: []*speechpb.SpeechRecognitionAlternative{
					{Transcript: "నాన్న"},
				}},
			},
		}
		if got := primaryTranscript(resp); got != "అమ్మ నాన్న" {
			t.Errorf("got %q, want %q", got, "అమ్మ నాన్న")
		}
	})

	t.Run("skips blank results", func(t *testing.T) {
		resp := &speechpb.RecognizeResponse{
			Results: []*speechpb.SpeechRecognitionResult{
				{Alternatives: []*speechpb.SpeechRecognitionAlternative{{Transcript: "   "}}},
				{Alternatives: []*speechpb.SpeechRecognitionAlternative{{Transcript: "water"}}},
			},
		}
		if got := primaryTranscript(resp); got != "water" {
			t.Errorf("got %q, want %q", got, "water")
		}
	})
}

func TestMockTranscriber(t *testing.T) {
	ctx := context.Background()

	t.Run("FIFO transcripts and recorded calls", func(t *testing.T) {
		m := NewMockTranscriber("నీరు", "milk")

		got, err := m.Transcribe(ctx, "audio-1", "te-IN")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "నీరు" {
			t.Errorf("got %q, want %q", got, "నీరు")
		}

		got, err = m.Transcribe(ctx, "audio-2", "en-US")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "milk" {
			t.Errorf("got %q, want %q", got, "milk")
		}

		if len(m.Calls) != 2 {
			t.Fatalf("calls = %d, want 2", len(m.Calls))
		}
		if m.Calls[0].LanguageCode != "te-IN" {
			t.Errorf("first call language = %q, want te-IN", m.Calls[0].LanguageCode)
		}
	})

	t.Run("empty queue yields ErrNoSpeech", func(t *testing.T) {
		m := NewMockTranscriber()
		_, err := m.Transcribe(ctx, "audio", "en-US")
		if !errors.Is(err, ErrNoSpeech) {
			t.Fatalf("err = %v, want ErrNoSpeech", err)
		}
	})

	t.Run("forced failure", func(t *testing.T) {
		m := NewMockTranscriber("unused")
		want := errors.New("mic broke")
		m.FailWith(want)
		_, err := m.Transcribe(ctx, "audio", "en-US")
		if !errors.Is(err, want) {
			t.Fatalf("err = %v, want %v", err, want)
		}
	})
}
