package quizgen

import (
	"fmt"

	"github.com/abhisek/quizzy/internal/quiz"
)

// StructuralValidator enforces the batch contract: exact policy size,
// all required fields present, options present iff the type takes them,
// and the correct answer appearing among the options byte-for-byte.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(batch []quiz.Draft, p Policy) error {
	if len(batch) != p.BatchSize {
		return &ErrInvalidGenerationFormat{
			Reason: fmt.Sprintf("expected %d questions, got %d", p.BatchSize, len(batch)),
		}
	}

	for i, d := range batch {
		if d.Text == "" {
			return &ErrInvalidGenerationFormat{Reason: fmt.Sprintf("question %d: empty text", i+1)}
		}
		if !d.Type.Valid() {
			return &ErrInvalidGenerationFormat{Reason: fmt.Sprintf("question %d: unknown type %q", i+1, d.Type)}
		}
		if !p.Allows(d.Type) {
			return &ErrInvalidGenerationFormat{
				Reason: fmt.Sprintf("question %d: type %q not allowed by %s policy", i+1, d.Type, p.Name),
			}
		}
		if d.CorrectAnswer == "" {
			return &ErrInvalidGenerationFormat{Reason: fmt.Sprintf("question %d: empty correct_answer", i+1)}
		}
		if d.FunFact == "" {
			return &ErrInvalidGenerationFormat{Reason: fmt.Sprintf("question %d: empty fun_fact", i+1)}
		}

		if d.Type.HasOptions() {
			if len(d.Options) == 0 {
				return &ErrInvalidGenerationFormat{
					Reason: fmt.Sprintf("question %d: type %q requires options", i+1, d.Type),
				}
			}
			if err := checkAnswerListed(i, d); err != nil {
				return err
			}
		} else if len(d.Options) != 0 {
			return &ErrInvalidGenerationFormat{
				Reason: fmt.Sprintf("question %d: type %q must not carry options", i+1, d.Type),
			}
		}
	}

	return nil
}

// checkAnswerListed requires a byte-exact match between correct_answer
// and one option. Evaluation for selectable types is case-sensitive, so
// anything looser here would create unanswerable questions.
func checkAnswerListed(i int, d quiz.Draft) error {
	for _, opt := range d.Options {
		if opt == d.CorrectAnswer {
			return nil
		}
	}
	return &ErrInvalidGenerationFormat{
		Reason: fmt.Sprintf("question %d: correct_answer %q not among options", i+1, d.CorrectAnswer),
	}
}
