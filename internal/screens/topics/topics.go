// Package topics is the home screen: the list of subjects a learner
// can play, plus the admin shortcut to refresh a topic's questions.
package topics

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzy/internal/quiz"
	"github.com/abhisek/quizzy/internal/quizgen"
	"github.com/abhisek/quizzy/internal/router"
	"github.com/abhisek/quizzy/internal/screen"
	"github.com/abhisek/quizzy/internal/screens/quizplay"
	"github.com/abhisek/quizzy/internal/store"
	"github.com/abhisek/quizzy/internal/ui/layout"
	"github.com/abhisek/quizzy/internal/ui/theme"
)

// topicsLoadedMsg carries the topic list from the store.
type topicsLoadedMsg struct {
	Topics []*quiz.Topic
	Err    error
}

// regenDoneMsg reports a background regeneration outcome.
type regenDoneMsg struct {
	Result *quizgen.Result
	Err    error
}

// TopicsScreen lists playable topics.
type TopicsScreen struct {
	topics    store.TopicRepo
	questions store.QuestionRepo
	genSvc    *quizgen.Service
	grader    *quiz.VoiceGrader

	list         []*quiz.Topic
	selected     int
	statusLine   string
	regenRunning bool
	errMsg       string
}

var _ screen.Screen = (*TopicsScreen)(nil)
var _ screen.KeyHintProvider = (*TopicsScreen)(nil)

// New creates the topics screen. genSvc may be nil when no LLM provider
// is configured; regeneration is then unavailable but play still works.
func New(topics store.TopicRepo, questions store.QuestionRepo, genSvc *quizgen.Service, grader *quiz.VoiceGrader) *TopicsScreen {
	return &TopicsScreen{
		topics:    topics,
		questions: questions,
		genSvc:    genSvc,
		grader:    grader,
	}
}

func (t *TopicsScreen) Init() tea.Cmd {
	return t.loadTopics()
}

func (t *TopicsScreen) Title() string {
	return "Pick a Topic"
}

func (t *TopicsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
	}
	if t.genSvc != nil {
		hints = append(hints, layout.KeyHint{Key: "G", Description: "New questions"})
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	return hints
}

func (t *TopicsScreen) loadTopics() tea.Cmd {
	return func() tea.Msg {
		list, err := t.topics.List(context.Background())
		return topicsLoadedMsg{Topics: list, Err: err}
	}
}

func (t *TopicsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case topicsLoadedMsg:
		if msg.Err != nil {
			t.errMsg = msg.Err.Error()
			return t, nil
		}
		t.list = msg.Topics
		if t.selected >= len(t.list) {
			t.selected = 0
		}
		return t, nil

	case regenDoneMsg:
		t.regenRunning = false
		if msg.Err != nil {
			t.statusLine = "Couldn't make new questions: " + msg.Err.Error()
			return t, nil
		}
		t.statusLine = fmt.Sprintf("Made %d new questions for %s!",
			msg.Result.QuestionsGenerated, msg.Result.TopicName)
		return t, nil

	case tea.KeyMsg:
		return t.handleKey(msg)
	}

	return t, nil
}

func (t *TopicsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if t.selected > 0 {
			t.selected--
		}
	case "down", "j":
		if t.selected < len(t.list)-1 {
			t.selected++
		}
	case "enter":
		if topic := t.current(); topic != nil {
			playScreen := quizplay.New(*topic, t.questions, t.grader)
			return t, func() tea.Msg {
				return router.PushScreenMsg{Screen: playScreen}
			}
		}
	case "g", "G":
		if t.genSvc == nil || t.regenRunning {
			return t, nil
		}
		if topic := t.current(); topic != nil {
			t.regenRunning = true
			t.statusLine = "Making fresh questions for " + topic.Name + "..."
			id := topic.ID
			return t, func() tea.Msg {
				res, err := t.genSvc.Regenerate(context.Background(), id)
				return regenDoneMsg{Result: res, Err: err}
			}
		}
	}
	return t, nil
}

func (t *TopicsScreen) current() *quiz.Topic {
	if t.selected < 0 || t.selected >= len(t.list) {
		return nil
	}
	return t.list[t.selected]
}

func (t *TopicsScreen) View(width, height int) string {
	if t.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  Error: " + t.errMsg)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("What do you want to learn today?"))
	b.WriteString("\n\n")

	if len(t.list) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No topics yet. Add one with: quizzy topics add"))
		return b.String()
	}

	var rows strings.Builder
	for i, topic := range t.list {
		line := fmt.Sprintf("  %s  %s", topic.Emoji, topic.Name)
		if i == t.selected {
			line = fmt.Sprintf("▸ %s  %s", topic.Emoji, topic.Name)
			rows.WriteString(theme.Selected.Render(line))
		} else {
			rows.WriteString(theme.Unselected.Render(line))
		}
		rows.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rows.String()))

	if t.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render(t.statusLine))
	}

	return b.String()
}
