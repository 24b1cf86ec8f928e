package results

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzy/internal/quiz"
	"github.com/abhisek/quizzy/internal/router"
)

func testScreen() *ResultsScreen {
	topic := quiz.Topic{ID: "t1", Name: "Animals", Emoji: "🦁"}
	summary := quiz.Summary{Score: 8, Total: 10, Message: "Great job! Keep it up! 🎉"}
	return New(topic, summary)
}

func TestResultsScreen_Title(t *testing.T) {
	r := testScreen()
	if r.Title() != "Results" {
		t.Errorf("Title = %q, want %q", r.Title(), "Results")
	}
}

func TestResultsScreen_Display(t *testing.T) {
	r := testScreen()
	view := r.View(80, 24)
	if !strings.Contains(view, "8 out of 10") {
		t.Errorf("view missing score, got:\n%s", view)
	}
	if !strings.Contains(view, "Great job!") {
		t.Error("view missing encouragement message")
	}
	if !strings.Contains(view, "Animals") {
		t.Error("view missing topic name")
	}
}

func TestResultsScreen_EnterPops(t *testing.T) {
	r := testScreen()
	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on Enter")
	}
}

func TestResultsScreen_IgnoresOtherKeys(t *testing.T) {
	r := testScreen()
	_, cmd := r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd != nil {
		t.Error("expected no command for unrelated keys")
	}
}

func TestResultsScreen_KeyHints(t *testing.T) {
	r := testScreen()
	if len(r.KeyHints()) == 0 {
		t.Error("expected key hints")
	}
}
