package quiz

import (
	"errors"

	"github.com/google/uuid"
)

// Session errors surfaced to the caller-facing layer.
var (
	// ErrNoQuestions means the topic has no stored questions. The caller
	// should offer regeneration; the session never triggers it itself.
	ErrNoQuestions = errors.New("topic has no questions")

	// ErrQuestionLocked means the current question was already answered
	// and revealed; further submissions are rejected.
	ErrQuestionLocked = errors.New("question already answered")

	// ErrSessionComplete means the session reached its terminal state.
	ErrSessionComplete = errors.New("session is complete")

	// ErrNotRevealed means Advance was called before the current
	// question was answered.
	ErrNotRevealed = errors.New("current question not yet answered")
)

// State is the session lifecycle phase.
type State string

const (
	StateInProgress State = "in_progress"
	StateRevealed   State = "revealed"
	StateCompleted  State = "completed"
)

// Session is one learner's single pass through a topic's question batch.
// In-memory only; starting over means creating a new session. Not safe
// for concurrent use — one learner, one flow.
type Session struct {
	ID        string
	TopicID   string
	questions []*Question
	index     int
	score     int
	state     State
}

// Verdict is the feedback returned for one graded submission.
type Verdict struct {
	IsCorrect     bool
	CorrectAnswer string
	FunFact       string
}

// Start creates a session over an ordered question batch.
// Returns ErrNoQuestions for an empty batch.
func Start(topicID string, questions []*Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Session{
		ID:        uuid.NewString(),
		TopicID:   topicID,
		questions: questions,
		state:     StateInProgress,
	}, nil
}

// State returns the current lifecycle phase.
func (s *Session) State() State { return s.state }

// Score returns the number of correct answers so far.
func (s *Session) Score() int { return s.score }

// Total returns the number of questions in the batch.
func (s *Session) Total() int { return len(s.questions) }

// Position returns the 1-based index of the current question.
// After completion it returns the total.
func (s *Session) Position() int {
	if s.state == StateCompleted {
		return len(s.questions)
	}
	return s.index + 1
}

// Current returns the question awaiting or holding an answer,
// or nil once the session is complete.
func (s *Session) Current() *Question {
	if s.state == StateCompleted {
		return nil
	}
	return s.questions[s.index]
}

// Submit grades exactly one answer for the current question and moves
// the session to the revealed state. A second submission for the same
// question is rejected: the verdict never changes and the score is
// never double-counted.
func (s *Session) Submit(rawInput string) (*Verdict, error) {
	switch s.state {
	case StateCompleted:
		return nil, ErrSessionComplete
	case StateRevealed:
		return nil, ErrQuestionLocked
	}

	q := s.questions[s.index]
	correct := Evaluate(q, rawInput)
	if correct {
		s.score++
	}
	s.state = StateRevealed

	return &Verdict{
		IsCorrect:     correct,
		CorrectAnswer: q.CorrectAnswer,
		FunFact:       q.FunFact,
	}, nil
}

// Advance moves past a revealed question. It returns the next question,
// or nil when the session just completed. Per-question transient state
// does not carry over.
func (s *Session) Advance() (*Question, error) {
	switch s.state {
	case StateCompleted:
		return nil, ErrSessionComplete
	case StateInProgress:
		return nil, ErrNotRevealed
	}

	if s.index == len(s.questions)-1 {
		s.state = StateCompleted
		return nil, nil
	}

	s.index++
	s.state = StateInProgress
	return s.questions[s.index], nil
}

// Summary describes a completed (or in-flight) session for display.
type Summary struct {
	Score   int
	Total   int
	Message string
}

// Summarize returns the final score with an encouragement band.
func (s *Session) Summarize() Summary {
	msg := "Good try! Practice makes perfect! 💪"
	switch {
	case s.score == len(s.questions):
		msg = "Perfect! You're amazing! 🌟"
	case float64(s.score) >= float64(len(s.questions))*0.7:
		msg = "Great job! Keep it up! 🎉"
	}
	return Summary{Score: s.score, Total: len(s.questions), Message: msg}
}
