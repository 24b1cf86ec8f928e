package quizgen

import (
	"testing"

	"github.com/abhisek/quizzy/internal/quiz"
)

func TestPolicyFor(t *testing.T) {
	tests := []struct {
		name      string
		topic     quiz.Topic
		wantName  string
		wantBatch int
	}{
		{
			name:      "general topic",
			topic:     quiz.Topic{Name: "Animals", Policy: PolicyGeneral},
			wantName:  PolicyGeneral,
			wantBatch: 10,
		},
		{
			name:      "vocabulary topic",
			topic:     quiz.Topic{Name: "Telugu Words", Policy: PolicyVocabulary},
			wantName:  PolicyVocabulary,
			wantBatch: 5,
		},
		{
			name:      "unknown policy falls back to general",
			topic:     quiz.Topic{Name: "Space", Policy: "experimental"},
			wantName:  PolicyGeneral,
			wantBatch: 10,
		},
		{
			name:      "empty policy falls back to general",
			topic:     quiz.Topic{Name: "Space"},
			wantName:  PolicyGeneral,
			wantBatch: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PolicyFor(tt.topic)
			if p.Name != tt.wantName {
				t.Errorf("name = %q, want %q", p.Name, tt.wantName)
			}
			if p.BatchSize != tt.wantBatch {
				t.Errorf("batch size = %d, want %d", p.BatchSize, tt.wantBatch)
			}
		})
	}
}

func TestVocabularyPolicyShape(t *testing.T) {
	p := VocabularyPolicy()

	if len(p.Types) != 1 || p.Types[0] != quiz.TypeVoiceInput {
		t.Errorf("types = %v, want [voice_input]", p.Types)
	}
	if p.AnswerLanguage != "te-IN" {
		t.Errorf("answer language = %q, want %q", p.AnswerLanguage, "te-IN")
	}
	if !p.ValidateSafety {
		t.Error("expected safety validation enabled")
	}
}

func TestGeneralPolicyExcludesVoice(t *testing.T) {
	p := GeneralPolicy()

	if p.Allows(quiz.TypeVoiceInput) {
		t.Error("general policy must not allow voice_input")
	}
	for _, qt := range []quiz.QuestionType{
		quiz.TypeMultipleChoice, quiz.TypeTrueFalse, quiz.TypeYesNo, quiz.TypeFillBlank,
	} {
		if !p.Allows(qt) {
			t.Errorf("general policy should allow %q", qt)
		}
	}
}

func TestDetectPolicyName(t *testing.T) {
	tests := []struct {
		topicName string
		want      string
	}{
		{"Telugu Words", PolicyVocabulary},
		{"telugu basics", PolicyVocabulary},
		{"Learn TELUGU", PolicyVocabulary},
		{"Animals", PolicyGeneral},
		{"Math Fun", PolicyGeneral},
		{"", PolicyGeneral},
	}

	for _, tt := range tests {
		if got := DetectPolicyName(tt.topicName); got != tt.want {
			t.Errorf("DetectPolicyName(%q) = %q, want %q", tt.topicName, got, tt.want)
		}
	}
}
