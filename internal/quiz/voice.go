package quiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/quizzy/internal/speech"
)

// VoiceGrader turns a recorded voice answer into text for grading.
type VoiceGrader struct {
	transcriber speech.Transcriber
}

// NewVoiceGrader creates a grader over the given transcriber.
func NewVoiceGrader(t speech.Transcriber) *VoiceGrader {
	return &VoiceGrader{transcriber: t}
}

// Transcript converts the base64 clip into the text to grade.
// speech.ErrNoSpeech passes through unchanged: a silent clip is
// retriable and must never be graded, so the caller checks for it and
// leaves the question open.
func (g *VoiceGrader) Transcript(ctx context.Context, audioB64, languageCode string) (string, error) {
	text, err := g.transcriber.Transcribe(ctx, audioB64, languageCode)
	if err != nil {
		if errors.Is(err, speech.ErrNoSpeech) {
			return "", err
		}
		return "", fmt.Errorf("transcribe voice answer: %w", err)
	}
	return text, nil
}
