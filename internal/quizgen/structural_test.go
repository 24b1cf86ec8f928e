package quizgen

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/quizzy/internal/quiz"
)

// validGeneralBatch builds a well-formed 10-question batch for the
// general policy.
func validGeneralBatch() []quiz.Draft {
	batch := make([]quiz.Draft, 10)
	for i := range batch {
		switch i % 4 {
		case 0:
			batch[i] = quiz.Draft{
				Text:          "What color is the sky on a clear day?",
				Type:          quiz.TypeMultipleChoice,
				Options:       []string{"Blue", "Green", "Red", "Yellow"},
				CorrectAnswer: "Blue",
				FunFact:       "The sky looks blue because air scatters blue light.",
				Difficulty:    1,
			}
		case 1:
			batch[i] = quiz.Draft{
				Text:          "Fish can breathe underwater.",
				Type:          quiz.TypeTrueFalse,
				Options:       []string{"true", "false"},
				CorrectAnswer: "true",
				FunFact:       "Fish breathe through gills.",
				Difficulty:    1,
			}
		case 2:
			batch[i] = quiz.Draft{
				Text:          "A baby cat is called a _____.",
				Type:          quiz.TypeFillBlank,
				CorrectAnswer: "kitten",
				FunFact:       "Kittens are born with closed eyes.",
				Difficulty:    1,
			}
		default:
			batch[i] = quiz.Draft{
				Text:          "Do plants need sunlight to grow?",
				Type:          quiz.TypeYesNo,
				Options:       []string{"yes", "no"},
				CorrectAnswer: "yes",
				FunFact:       "Plants turn sunlight into food.",
				Difficulty:    1,
			}
		}
	}
	return batch
}

func assertFormatError(t *testing.T, err error, wantSubstring string) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error")
	}
	var formatErr *ErrInvalidGenerationFormat
	if !errors.As(err, &formatErr) {
		t.Fatalf("err = %T, want *ErrInvalidGenerationFormat", err)
	}
	if !strings.Contains(formatErr.Reason, wantSubstring) {
		t.Errorf("reason = %q, want substring %q", formatErr.Reason, wantSubstring)
	}
}

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}
	p := GeneralPolicy()

	t.Run("valid batch passes", func(t *testing.T) {
		if err := v.Validate(validGeneralBatch(), p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("wrong batch size", func(t *testing.T) {
		batch := validGeneralBatch()[:7]
		assertFormatError(t, v.Validate(batch, p), "expected 10 questions, got 7")
	})

	t.Run("empty text", func(t *testing.T) {
		batch := validGeneralBatch()
		batch[3].Text = ""
		assertFormatError(t, v.Validate(batch, p), "empty text")
	})

	t.Run("unknown type", func(t *testing.T) {
		batch := validGeneralBatch()
		batch[0].Type = "essay"
		assertFormatError(t, v.Validate(batch, p), "unknown type")
	})

	t.Run("type not allowed by policy", func(t *testing.T) {
		batch := validGeneralBatch()
		batch[2] = quiz.Draft{
			Text:          "Say the word for water.",
			Type:          quiz.TypeVoiceInput,
			CorrectAnswer: "water",
			FunFact:       "Water covers most of Earth.",
			Difficulty:    1,
		}
		assertFormatError(t, v.Validate(batch, p), "not allowed")
	})

	t.Run("empty correct answer", func(t *testing.T) {
		batch := validGeneralBatch()
		batch[5].CorrectAnswer = ""
		assertFormatError(t, v.Validate(batch, p), "empty correct_answer")
	})

	t.Run("empty fun fact", func(t *testing.T) {
		batch := validGeneralBatch()
		batch[1].FunFact = ""
		assertFormatError(t, v.Validate(batch, p), "empty fun_fact")
	})

	t.Run("selectable type missing options", func(t *testing.T) {
		batch := validGeneralBatch()
		batch[0].Options = nil
		assertFormatError(t, v.Validate(batch, p), "requires options")
	})

	t.Run("free-form type carrying options", func(t *testing.T) {
		batch := validGeneralBatch()
		batch[2].Options = []string{"kitten", "puppy"}
		assertFormatError(t, v.Validate(batch, p), "must not carry options")
	})

	t.Run("answer not among options", func(t *testing.T) {
		batch := validGeneralBatch()
		batch[0].CorrectAnswer = "Purple"
		assertFormatError(t, v.Validate(batch, p), "not among options")
	})

	t.Run("answer match is case sensitive", func(t *testing.T) {
		batch := validGeneralBatch()
		batch[0].CorrectAnswer = "blue" // options carry "Blue"
		assertFormatError(t, v.Validate(batch, p), "not among options")
	})
}

func TestStructuralValidatorVocabulary(t *testing.T) {
	v := &StructuralValidator{}
	p := VocabularyPolicy()

	batch := make([]quiz.Draft, 5)
	for i := range batch {
		batch[i] = quiz.Draft{
			Text:          "How do you say 'mother' in Telugu?",
			Type:          quiz.TypeVoiceInput,
			CorrectAnswer: "అమ్మ",
			FunFact:       "అమ్మ is often a child's first word.",
			Difficulty:    1,
		}
	}

	if err := v.Validate(batch, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("non-voice type rejected", func(t *testing.T) {
		bad := make([]quiz.Draft, 5)
		copy(bad, batch)
		bad[2] = quiz.Draft{
			Text:          "A baby cat is a _____.",
			Type:          quiz.TypeFillBlank,
			CorrectAnswer: "kitten",
			FunFact:       "Kittens sleep a lot.",
			Difficulty:    1,
		}
		assertFormatError(t, v.Validate(bad, p), "not allowed")
	})
}
