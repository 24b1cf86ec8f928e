package topics

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzy/internal/quiz"
	"github.com/abhisek/quizzy/internal/router"
)

type fakeTopicRepo struct {
	list []*quiz.Topic
	err  error
}

func (f *fakeTopicRepo) Get(_ context.Context, id string) (*quiz.Topic, error) {
	for _, t := range f.list {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, f.err
}

func (f *fakeTopicRepo) List(_ context.Context) ([]*quiz.Topic, error) {
	return f.list, f.err
}

func (f *fakeTopicRepo) Create(_ context.Context, name, emoji, policy string) (*quiz.Topic, error) {
	t := &quiz.Topic{ID: name, Name: name, Emoji: emoji, Policy: policy}
	f.list = append(f.list, t)
	return t, nil
}

func loadedScreen(list []*quiz.Topic) *TopicsScreen {
	s := New(&fakeTopicRepo{list: list}, nil, nil, nil)
	s.Update(topicsLoadedMsg{Topics: list})
	return s
}

func testTopics() []*quiz.Topic {
	return []*quiz.Topic{
		{ID: "t1", Name: "Animals", Emoji: "🦁", Policy: "general"},
		{ID: "t2", Name: "Space", Emoji: "🚀", Policy: "general"},
	}
}

func TestTopicsScreen_InitLoads(t *testing.T) {
	s := New(&fakeTopicRepo{list: testTopics()}, nil, nil, nil)
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected load command from Init")
	}
	msg, ok := cmd().(topicsLoadedMsg)
	if !ok {
		t.Fatalf("expected topicsLoadedMsg, got %T", cmd())
	}
	if len(msg.Topics) != 2 {
		t.Errorf("loaded %d topics, want 2", len(msg.Topics))
	}
}

func TestTopicsScreen_Navigation(t *testing.T) {
	s := loadedScreen(testTopics())

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected = %d after down, want 1", s.selected)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected = %d at bottom, want 1", s.selected)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.selected != 0 {
		t.Errorf("selected = %d after up, want 0", s.selected)
	}
}

func TestTopicsScreen_EnterPushesPlay(t *testing.T) {
	s := loadedScreen(testTopics())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg on Enter")
	}
}

func TestTopicsScreen_RegenerateUnavailableWithoutService(t *testing.T) {
	s := loadedScreen(testTopics())
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'g', Text: "g"})
	if cmd != nil {
		t.Error("expected no regeneration command when service is nil")
	}
	for _, h := range s.KeyHints() {
		if h.Key == "G" {
			t.Error("regeneration hint shown without a generation service")
		}
	}
}

func TestTopicsScreen_EmptyListHint(t *testing.T) {
	s := loadedScreen(nil)
	view := s.View(80, 24)
	if !strings.Contains(view, "quizzy topics add") {
		t.Errorf("empty view missing add hint, got:\n%s", view)
	}
}

func TestTopicsScreen_ViewListsTopics(t *testing.T) {
	s := loadedScreen(testTopics())
	view := s.View(80, 24)
	if !strings.Contains(view, "Animals") || !strings.Contains(view, "Space") {
		t.Errorf("view missing topics, got:\n%s", view)
	}
}
