package quizgen

import (
	"strings"
	"testing"

	"github.com/abhisek/quizzy/internal/quiz"
)

func TestBuildUserMessageGeneral(t *testing.T) {
	topic := quiz.Topic{Name: "Animals", Policy: PolicyGeneral}
	msg := buildUserMessage(topic, GeneralPolicy())

	if !strings.Contains(msg, `exactly 10 quiz questions`) {
		t.Error("expected batch size in prompt")
	}
	if !strings.Contains(msg, `"Animals"`) {
		t.Error("expected topic name in prompt")
	}
	if strings.Contains(msg, "voice_input") {
		t.Error("general prompt must not ask for voice questions")
	}
	for _, want := range []string{"Multiple choice", "True/False", "Yes/No", "Fill in the blank"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected type description %q", want)
		}
	}
}

func TestBuildUserMessageVocabulary(t *testing.T) {
	topic := quiz.Topic{Name: "Telugu Words", Policy: PolicyVocabulary}
	msg := buildUserMessage(topic, VocabularyPolicy())

	if !strings.Contains(msg, `exactly 5 quiz questions`) {
		t.Error("expected batch size in prompt")
	}
	if !strings.Contains(msg, "voice_input") {
		t.Error("vocabulary prompt must ask for voice questions")
	}
	if !strings.Contains(msg, "Telugu script") {
		t.Error("vocabulary prompt must require Telugu script answers")
	}
	if !strings.Contains(msg, "నీరు") {
		t.Error("vocabulary prompt should carry a Telugu example")
	}
}
