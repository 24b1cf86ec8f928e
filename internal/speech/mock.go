package speech

import (
	"context"
	"sync"
)

// MockCall records one Transcribe invocation.
type MockCall struct {
	AudioB64     string
	LanguageCode string
}

// MockTranscriber is a deterministic Transcriber for testing. It
// returns canned transcripts in FIFO order and records all calls.
type MockTranscriber struct {
	mu          sync.Mutex
	transcripts []string
	err         error
	Calls       []MockCall
}

// NewMockTranscriber creates a MockTranscriber with the given canned
// transcripts.
func NewMockTranscriber(transcripts ...string) *MockTranscriber {
	return &MockTranscriber{transcripts: transcripts}
}

// FailWith makes every subsequent call return err.
func (m *MockTranscriber) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Transcribe returns the next canned transcript or ErrNoSpeech if the
// queue is empty.
func (m *MockTranscriber) Transcribe(_ context.Context, audioB64, languageCode string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{AudioB64: audioB64, LanguageCode: languageCode})

	if m.err != nil {
		return "", m.err
	}
	if len(m.transcripts) == 0 {
		return "", ErrNoSpeech
	}

	text := m.transcripts[0]
	m.transcripts = m.transcripts[1:]
	return text, nil
}
