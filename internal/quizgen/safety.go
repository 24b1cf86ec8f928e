package quizgen

import (
	"github.com/abhisek/quizzy/internal/quiz"
	"github.com/abhisek/quizzy/internal/safety"
)

// SafetyValidator runs the content safety filter over every text field
// of every item. One hit rejects the whole batch. Policies can opt out
// via ValidateSafety; deterministic fallback content bypasses this
// validator entirely because it never reaches the generated path.
type SafetyValidator struct{}

func (v *SafetyValidator) Name() string { return "safety" }

func (v *SafetyValidator) Validate(batch []quiz.Draft, p Policy) error {
	if !p.ValidateSafety {
		return nil
	}

	for _, d := range batch {
		if term := safety.FirstViolation(d.Text); term != "" {
			return &ErrUnsafeContent{Field: "text", Term: term}
		}
		if term := safety.FirstViolation(d.FunFact); term != "" {
			return &ErrUnsafeContent{Field: "fun_fact", Term: term}
		}
		for _, opt := range d.Options {
			if term := safety.FirstViolation(opt); term != "" {
				return &ErrUnsafeContent{Field: "option", Term: term}
			}
		}
	}

	return nil
}
