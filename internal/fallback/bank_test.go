package fallback

import (
	"strings"
	"testing"

	"github.com/abhisek/quizzy/internal/quiz"
)

func checkInvariants(t *testing.T, batch []quiz.Draft) {
	t.Helper()
	for i, d := range batch {
		if d.Text == "" || d.CorrectAnswer == "" || d.FunFact == "" {
			t.Errorf("question %d: missing required field: %+v", i, d)
		}
		if d.Type.HasOptions() {
			if len(d.Options) == 0 {
				t.Errorf("question %d: type %s requires options", i, d.Type)
				continue
			}
			found := false
			for _, opt := range d.Options {
				if opt == d.CorrectAnswer {
					found = true
				}
			}
			if !found {
				t.Errorf("question %d: answer %q not among options %v", i, d.CorrectAnswer, d.Options)
			}
		} else if len(d.Options) != 0 {
			t.Errorf("question %d: type %s must not carry options", i, d.Type)
		}
	}
}

func TestBuild_CuratedCategories(t *testing.T) {
	tests := []struct {
		topicName string
	}{
		{"Animals"}, {"Math"}, {"Colors"}, {"Earth Science"}, {"Geography"}, {"World Countries"},
	}

	for _, tt := range tests {
		t.Run(tt.topicName, func(t *testing.T) {
			batch := Build(quiz.Topic{Name: tt.topicName}, 10, "general")
			if len(batch) != 10 {
				t.Fatalf("batch size %d, want 10", len(batch))
			}
			checkInvariants(t, batch)
		})
	}
}

func TestBuild_VocabularyPolicy(t *testing.T) {
	batch := Build(quiz.Topic{Name: "Telugu Words"}, 5, "vocabulary")
	if len(batch) != 5 {
		t.Fatalf("batch size %d, want 5", len(batch))
	}
	for i, d := range batch {
		if d.Type != quiz.TypeVoiceInput {
			t.Errorf("question %d: type %s, want voice_input", i, d.Type)
		}
		if len(d.Options) != 0 {
			t.Errorf("question %d: voice_input must not carry options", i)
		}
	}
}

func TestBuild_VocabularyNameUnderGeneralPolicy(t *testing.T) {
	// A general-policy topic whose name matches vocabulary keywords must
	// not pull voice questions into a mixed-type batch.
	for _, name := range []string{"Word Games", "Telugu Vocabulary"} {
		t.Run(name, func(t *testing.T) {
			batch := Build(quiz.Topic{Name: name}, 10, "general")
			if len(batch) != 10 {
				t.Fatalf("batch size %d, want 10", len(batch))
			}
			checkInvariants(t, batch)
			for i, d := range batch {
				if d.Type == quiz.TypeVoiceInput {
					t.Errorf("question %d: voice_input in a general-policy batch", i)
				}
			}
		})
	}
}

func TestBuild_GenericTopic(t *testing.T) {
	batch := Build(quiz.Topic{Name: "Dinosaur Trivia Night"}, 10, "general")
	if len(batch) != 10 {
		t.Fatalf("batch size %d, want 10", len(batch))
	}
	checkInvariants(t, batch)

	// Parameterized by the topic's own name.
	found := false
	for _, d := range batch {
		if strings.Contains(d.Text, "Dinosaur Trivia Night") {
			found = true
		}
	}
	if !found {
		t.Error("generic fallback should mention the topic name")
	}
}

func TestBuild_Deterministic(t *testing.T) {
	a := Build(quiz.Topic{Name: "Animals"}, 10, "general")
	b := Build(quiz.Topic{Name: "Animals"}, 10, "general")
	for i := range a {
		if a[i].Text != b[i].Text || a[i].CorrectAnswer != b[i].CorrectAnswer {
			t.Fatalf("question %d differs between identical builds", i)
		}
	}
}

func TestBuild_RespectsBatchSize(t *testing.T) {
	batch := Build(quiz.Topic{Name: "Animals"}, 5, "general")
	if len(batch) != 5 {
		t.Fatalf("batch size %d, want 5", len(batch))
	}
}
