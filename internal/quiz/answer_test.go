package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fillBlank(answer string) *Question {
	return &Question{
		ID:            "q1",
		Text:          "A group of lions is called a ____.",
		Type:          TypeFillBlank,
		CorrectAnswer: answer,
	}
}

func TestEvaluate_FillBlankNormalization(t *testing.T) {
	q := fillBlank("pride")

	tests := []struct {
		input string
		want  bool
	}{
		{"pride", true},
		{"Pride", true},
		{" pride ", true},
		{"PRIDE", true},
		{"prides", false},
		{"", false},
		{"   ", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Evaluate(q, tt.input), "input %q", tt.input)
	}
}

func TestEvaluate_SelectableIsCaseSensitive(t *testing.T) {
	q := &Question{
		Type:          TypeTrueFalse,
		Options:       []string{"True", "False"},
		CorrectAnswer: "True",
	}

	assert.True(t, Evaluate(q, "True"))
	assert.True(t, Evaluate(q, " True "))
	assert.False(t, Evaluate(q, "true"), "selectable types match button labels verbatim")
	assert.False(t, Evaluate(q, "False"))
}

func TestEvaluate_MultipleChoice(t *testing.T) {
	q := &Question{
		Type:          TypeMultipleChoice,
		Options:       []string{"Purple", "Orange", "Green", "Blue"},
		CorrectAnswer: "Orange",
	}

	assert.True(t, Evaluate(q, "Orange"))
	assert.False(t, Evaluate(q, "orange"))
	assert.False(t, Evaluate(q, "Blue"))
}

func TestEvaluate_VoiceInputTranscript(t *testing.T) {
	q := &Question{
		Type:          TypeVoiceInput,
		CorrectAnswer: "నీరు",
	}

	assert.True(t, Evaluate(q, "నీరు"))
	assert.True(t, Evaluate(q, " నీరు "))
	assert.False(t, Evaluate(q, "నీళ్ళు"))
}

func TestEvaluate_Idempotent(t *testing.T) {
	q := fillBlank("pride")
	first := Evaluate(q, "Pride")
	second := Evaluate(q, "Pride")
	assert.Equal(t, first, second)
	assert.True(t, first)
}
