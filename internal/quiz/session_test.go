package quiz

import (
	"errors"
	"testing"
)

func threeQuestions() []*Question {
	return []*Question{
		{
			ID:            "q1",
			Text:          "What color is the sun?",
			Type:          TypeMultipleChoice,
			Options:       []string{"Blue", "Yellow", "Green", "Purple"},
			CorrectAnswer: "Yellow",
			FunFact:       "The sun gives us light and warmth!",
		},
		{
			ID:            "q2",
			Text:          "The sun is a star.",
			Type:          TypeTrueFalse,
			Options:       []string{"True", "False"},
			CorrectAnswer: "True",
		},
		{
			ID:            "q3",
			Text:          "A group of lions is called a ____.",
			Type:          TypeFillBlank,
			CorrectAnswer: "pride",
		},
	}
}

func TestStart_EmptyBatch(t *testing.T) {
	_, err := Start("t1", nil)
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

func TestSession_FullPass(t *testing.T) {
	s, err := Start("t1", threeQuestions())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.State() != StateInProgress {
		t.Fatalf("expected in_progress, got %s", s.State())
	}
	if s.Position() != 1 || s.Total() != 3 {
		t.Fatalf("position %d/%d, want 1/3", s.Position(), s.Total())
	}

	// One correct, two incorrect, in order.
	v, err := s.Submit("Yellow")
	if err != nil {
		t.Fatalf("submit q1: %v", err)
	}
	if !v.IsCorrect {
		t.Fatal("q1 should be correct")
	}
	if v.FunFact == "" {
		t.Fatal("verdict should carry the fun fact")
	}
	if _, err := s.Advance(); err != nil {
		t.Fatalf("advance to q2: %v", err)
	}

	v, err = s.Submit("False")
	if err != nil {
		t.Fatalf("submit q2: %v", err)
	}
	if v.IsCorrect {
		t.Fatal("q2 should be incorrect")
	}
	if v.CorrectAnswer != "True" {
		t.Fatalf("correct answer %q, want True", v.CorrectAnswer)
	}
	if _, err := s.Advance(); err != nil {
		t.Fatalf("advance to q3: %v", err)
	}

	v, err = s.Submit("herd")
	if err != nil {
		t.Fatalf("submit q3: %v", err)
	}
	if v.IsCorrect {
		t.Fatal("q3 should be incorrect")
	}

	next, err := s.Advance()
	if err != nil {
		t.Fatalf("final advance: %v", err)
	}
	if next != nil {
		t.Fatal("expected nil question after last reveal")
	}

	if s.State() != StateCompleted {
		t.Fatalf("expected completed, got %s", s.State())
	}
	if s.Score() != 1 {
		t.Fatalf("score %d, want 1", s.Score())
	}
	if s.Current() != nil {
		t.Fatal("completed session exposes no question state")
	}

	// Terminal state accepts no more submissions.
	if _, err := s.Submit("Yellow"); !errors.Is(err, ErrSessionComplete) {
		t.Fatalf("expected ErrSessionComplete, got %v", err)
	}
	if _, err := s.Advance(); !errors.Is(err, ErrSessionComplete) {
		t.Fatalf("expected ErrSessionComplete, got %v", err)
	}
}

func TestSession_RevealLocksQuestion(t *testing.T) {
	s, err := Start("t1", threeQuestions())
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if _, err := s.Submit("Yellow"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if s.State() != StateRevealed {
		t.Fatalf("expected revealed, got %s", s.State())
	}

	// Second submission rejected; score unchanged.
	if _, err := s.Submit("Yellow"); !errors.Is(err, ErrQuestionLocked) {
		t.Fatalf("expected ErrQuestionLocked, got %v", err)
	}
	if s.Score() != 1 {
		t.Fatalf("score %d, want 1 (no double counting)", s.Score())
	}
}

func TestSession_AdvanceRequiresReveal(t *testing.T) {
	s, err := Start("t1", threeQuestions())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := s.Advance(); !errors.Is(err, ErrNotRevealed) {
		t.Fatalf("expected ErrNotRevealed, got %v", err)
	}
}

func TestSession_Summarize(t *testing.T) {
	// n fill-blank questions with answer "a"; answer k of them correctly.
	run := func(t *testing.T, n, k int) Summary {
		t.Helper()
		qs := make([]*Question, n)
		for i := range qs {
			qs[i] = &Question{ID: "q", Type: TypeFillBlank, CorrectAnswer: "a"}
		}
		s, err := Start("t1", qs)
		if err != nil {
			t.Fatalf("start: %v", err)
		}
		for i := range n {
			answer := "wrong"
			if i < k {
				answer = "a"
			}
			if _, err := s.Submit(answer); err != nil {
				t.Fatalf("submit: %v", err)
			}
			if _, err := s.Advance(); err != nil {
				t.Fatalf("advance: %v", err)
			}
		}
		return s.Summarize()
	}

	tests := []struct {
		name string
		n, k int
		want string
	}{
		{"perfect", 3, 3, "Perfect! You're amazing! 🌟"},
		{"great", 10, 8, "Great job! Keep it up! 🎉"},
		{"try", 3, 1, "Good try! Practice makes perfect! 💪"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := run(t, tt.n, tt.k)
			if sum.Score != tt.k || sum.Total != tt.n {
				t.Fatalf("summary %d/%d, want %d/%d", sum.Score, sum.Total, tt.k, tt.n)
			}
			if sum.Message != tt.want {
				t.Fatalf("message %q, want %q", sum.Message, tt.want)
			}
		})
	}
}
