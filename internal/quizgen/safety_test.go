package quizgen

import (
	"errors"
	"testing"
)

func TestSafetyValidator(t *testing.T) {
	v := &SafetyValidator{}
	p := GeneralPolicy()

	t.Run("clean batch passes", func(t *testing.T) {
		if err := v.Validate(validGeneralBatch(), p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unsafe question text", func(t *testing.T) {
		batch := validGeneralBatch()
		batch[4].Text = "Which animal is the most dangerous?"

		err := v.Validate(batch, p)
		var unsafe *ErrUnsafeContent
		if !errors.As(err, &unsafe) {
			t.Fatalf("err = %T, want *ErrUnsafeContent", err)
		}
		if unsafe.Field != "text" {
			t.Errorf("field = %q, want %q", unsafe.Field, "text")
		}
		if unsafe.Term != "dangerous" {
			t.Errorf("term = %q, want %q", unsafe.Term, "dangerous")
		}
	})

	t.Run("unsafe fun fact", func(t *testing.T) {
		batch := validGeneralBatch()
		batch[0].FunFact = "Some snakes kill their prey with venom."

		err := v.Validate(batch, p)
		var unsafe *ErrUnsafeContent
		if !errors.As(err, &unsafe) {
			t.Fatalf("err = %T, want *ErrUnsafeContent", err)
		}
		if unsafe.Field != "fun_fact" {
			t.Errorf("field = %q, want %q", unsafe.Field, "fun_fact")
		}
	})

	t.Run("unsafe option", func(t *testing.T) {
		batch := validGeneralBatch()
		batch[0].Options[1] = "a gun"

		err := v.Validate(batch, p)
		var unsafe *ErrUnsafeContent
		if !errors.As(err, &unsafe) {
			t.Fatalf("err = %T, want *ErrUnsafeContent", err)
		}
		if unsafe.Field != "option" {
			t.Errorf("field = %q, want %q", unsafe.Field, "option")
		}
	})

	t.Run("policy opt-out skips filter", func(t *testing.T) {
		batch := validGeneralBatch()
		batch[4].Text = "Which animal is the most dangerous?"

		optOut := p
		optOut.ValidateSafety = false
		if err := v.Validate(batch, optOut); err != nil {
			t.Fatalf("unexpected error with safety disabled: %v", err)
		}
	})
}
