// Package quizplay runs one pass through a topic's question batch:
// ask, grade, reveal the fun fact, advance, repeat.
package quizplay

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzy/internal/quiz"
	"github.com/abhisek/quizzy/internal/quizgen"
	"github.com/abhisek/quizzy/internal/router"
	"github.com/abhisek/quizzy/internal/screen"
	"github.com/abhisek/quizzy/internal/screens/results"
	"github.com/abhisek/quizzy/internal/speech"
	"github.com/abhisek/quizzy/internal/store"
	"github.com/abhisek/quizzy/internal/ui/components"
	"github.com/abhisek/quizzy/internal/ui/layout"
)

// PlayScreen implements screen.Screen for an active quiz run.
type PlayScreen struct {
	topic     quiz.Topic
	questions store.QuestionRepo
	grader    *quiz.VoiceGrader
	language  string

	session      *quiz.Session
	verdict      *quiz.Verdict
	input        components.TextInput
	optActive    bool
	optSelected  int
	transcribing bool
	notice       string
	errMsg       string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates a play screen for one topic. grader may be nil; voice
// questions then accept typed answers only.
func New(topic quiz.Topic, questions store.QuestionRepo, grader *quiz.VoiceGrader) *PlayScreen {
	return &PlayScreen{
		topic:     topic,
		questions: questions,
		grader:    grader,
		language:  quizgen.PolicyFor(topic).AnswerLanguage,
		input:     components.NewTextInput("Type your answer...", 40),
	}
}

func (p *PlayScreen) Init() tea.Cmd {
	return tea.Batch(p.loadSession(), p.input.Init())
}

func (p *PlayScreen) Title() string {
	return p.topic.Emoji + " " + p.topic.Name
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	if p.verdict != nil {
		return []layout.KeyHint{{Key: "any key", Description: "Next question"}}
	}
	if p.optActive {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

// loadSession fetches the batch and starts the session.
func (p *PlayScreen) loadSession() tea.Cmd {
	return func() tea.Msg {
		batch := quizgen.PolicyFor(p.topic).BatchSize
		questions, err := p.questions.Select(context.Background(), p.topic.ID, batch)
		if err != nil {
			return sessionReadyMsg{Err: err}
		}
		s, err := quiz.Start(p.topic.ID, questions)
		if err != nil {
			return sessionReadyMsg{Err: err}
		}
		return sessionReadyMsg{Session: s}
	}
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		if msg.Err != nil {
			p.errMsg = friendlyError(msg.Err)
			return p, nil
		}
		p.session = msg.Session
		p.setupQuestion()
		return p, p.input.Init()

	case transcriptReadyMsg:
		p.transcribing = false
		if msg.Err != nil {
			if errors.Is(msg.Err, speech.ErrNoSpeech) {
				// Retriable: the question stays open and the
				// submission is not consumed.
				p.notice = "I didn't hear anything. Try recording again!"
				p.setupInput()
				return p, p.input.Init()
			}
			p.errMsg = friendlyError(msg.Err)
			return p, nil
		}
		return p.submit(msg.Text)

	case quizDoneMsg:
		// The score card takes this screen's place, so one pop from
		// there returns to the topic list.
		summary := p.session.Summarize()
		topic := p.topic
		return p, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: results.New(topic, summary)}
		}

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	if p.session != nil && p.verdict == nil && !p.optActive && !p.transcribing {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

// setupQuestion resets per-question input state.
func (p *PlayScreen) setupQuestion() {
	p.verdict = nil
	p.notice = ""
	q := p.session.Current()
	if q == nil {
		return
	}
	if q.Type.HasOptions() {
		p.optActive = true
		p.optSelected = 0
	} else {
		p.optActive = false
		p.setupInput()
	}
}

// setupInput creates a fresh answer field for the current question.
func (p *PlayScreen) setupInput() {
	placeholder := "Type your answer..."
	if q := p.session.Current(); q != nil && q.Type == quiz.TypeVoiceInput && p.grader != nil {
		placeholder = "Type, or @clip.webm for a recording..."
	}
	p.input = components.NewTextInput(placeholder, 40)
}

func (p *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if p.errMsg != "" {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if p.session == nil || p.transcribing {
		return p, nil
	}

	// Reveal overlay: any key advances.
	if p.verdict != nil {
		if _, err := p.session.Advance(); err != nil {
			p.errMsg = friendlyError(err)
			return p, nil
		}
		if p.session.State() == quiz.StateCompleted {
			return p, func() tea.Msg { return quizDoneMsg{} }
		}
		p.setupQuestion()
		return p, p.input.Init()
	}

	q := p.session.Current()
	if q == nil {
		return p, nil
	}

	if p.optActive {
		switch key {
		case "up", "k":
			if p.optSelected > 0 {
				p.optSelected--
			}
		case "down", "j":
			if p.optSelected < len(q.Options)-1 {
				p.optSelected++
			}
		case "enter":
			return p.submit(q.Options[p.optSelected])
		case "1", "2", "3", "4":
			i := int(key[0] - '1')
			if i < len(q.Options) {
				p.optSelected = i
				return p.submit(q.Options[i])
			}
		}
		return p, nil
	}

	if key == "enter" {
		value := p.input.Value()
		if strings.TrimSpace(value) == "" {
			return p, nil
		}
		if q.Type == quiz.TypeVoiceInput && p.grader != nil && strings.HasPrefix(value, "@") {
			return p.transcribeClip(strings.TrimPrefix(value, "@"))
		}
		return p.submit(value)
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// transcribeClip reads a recorded clip from disk and transcribes it in
// the background.
func (p *PlayScreen) transcribeClip(path string) (screen.Screen, tea.Cmd) {
	p.transcribing = true
	p.notice = ""
	grader := p.grader
	language := p.language
	return p, func() tea.Msg {
		audio, err := os.ReadFile(strings.TrimSpace(path))
		if err != nil {
			return transcriptReadyMsg{Err: fmt.Errorf("read clip: %w", err)}
		}
		text, err := grader.Transcript(context.Background(),
			base64.StdEncoding.EncodeToString(audio), language)
		return transcriptReadyMsg{Text: text, Err: err}
	}
}

func (p *PlayScreen) submit(answer string) (screen.Screen, tea.Cmd) {
	verdict, err := p.session.Submit(answer)
	if err != nil {
		p.errMsg = friendlyError(err)
		return p, nil
	}
	p.verdict = verdict
	return p, nil
}

// friendlyError keeps error text kid-readable.
func friendlyError(err error) string {
	if err == quiz.ErrNoQuestions {
		return "This topic has no questions yet. Ask a grown-up to run: quizzy generate"
	}
	return err.Error()
}
