package quizplay

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzy/internal/quiz"
	"github.com/abhisek/quizzy/internal/router"
	"github.com/abhisek/quizzy/internal/screen"
	"github.com/abhisek/quizzy/internal/speech"
)

// mockQuestionRepo implements store.QuestionRepo for testing.
type mockQuestionRepo struct {
	questions []*quiz.Question
	err       error
}

func (m *mockQuestionRepo) Select(_ context.Context, _ string, limit int) ([]*quiz.Question, error) {
	if m.err != nil {
		return nil, m.err
	}
	qs := m.questions
	if limit > 0 && len(qs) > limit {
		qs = qs[:limit]
	}
	return qs, nil
}

func (m *mockQuestionRepo) DeleteByTopic(_ context.Context, _ string) error { return nil }

func (m *mockQuestionRepo) InsertBatch(_ context.Context, _ string, _ []quiz.Draft) ([]*quiz.Question, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestions() []*quiz.Question {
	return []*quiz.Question{
		{
			ID:            "q1",
			Text:          "What sound does a cow make?",
			Type:          quiz.TypeMultipleChoice,
			Options:       []string{"Moo", "Woof", "Meow", "Quack"},
			CorrectAnswer: "Moo",
			FunFact:       "Cows have best friends!",
		},
		{
			ID:            "q2",
			Text:          "A baby dog is called a _____.",
			Type:          quiz.TypeFillBlank,
			CorrectAnswer: "puppy",
			FunFact:       "Puppies are born blind.",
		},
	}
}

func testPlayScreen(questions []*quiz.Question) *PlayScreen {
	topic := quiz.Topic{ID: "animals", Name: "Animals", Emoji: "🦁", Policy: "general"}
	p := New(topic, &mockQuestionRepo{questions: questions}, nil)

	s, err := quiz.Start(topic.ID, questions)
	if err != nil {
		panic(err)
	}
	p.session = s
	p.setupQuestion()
	return p
}

func TestPlayScreen_Title(t *testing.T) {
	p := testPlayScreen(testQuestions())
	if p.Title() != "🦁 Animals" {
		t.Errorf("Title = %q, want %q", p.Title(), "🦁 Animals")
	}
}

func TestPlayScreen_View_Loading(t *testing.T) {
	topic := quiz.Topic{ID: "animals", Name: "Animals", Emoji: "🦁"}
	p := New(topic, &mockQuestionRepo{}, nil)
	if p.View(80, 24) == "" {
		t.Error("expected non-empty loading view")
	}
}

func TestPlayScreen_SessionReady_EmptyBatch(t *testing.T) {
	topic := quiz.Topic{ID: "animals", Name: "Animals", Emoji: "🦁"}
	p := New(topic, &mockQuestionRepo{}, nil)

	var scr screen.Screen = p
	scr, _ = scr.Update(sessionReadyMsg{Err: quiz.ErrNoQuestions})
	pp := scr.(*PlayScreen)
	if pp.errMsg == "" {
		t.Error("expected friendly error for empty batch")
	}
}

func TestPlayScreen_OptionSubmit(t *testing.T) {
	p := testPlayScreen(testQuestions())
	if !p.optActive {
		t.Fatal("expected option input for multiple choice question")
	}

	// Press 1 to pick "Moo".
	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress('1'))
	pp := scr.(*PlayScreen)

	if pp.verdict == nil {
		t.Fatal("expected verdict after submission")
	}
	if !pp.verdict.IsCorrect {
		t.Error("expected correct verdict for option 1")
	}
	if pp.session.Score() != 1 {
		t.Errorf("score = %d, want 1", pp.session.Score())
	}
}

func TestPlayScreen_OptionArrowsAndEnter(t *testing.T) {
	p := testPlayScreen(testQuestions())

	var scr screen.Screen = p
	scr, _ = scr.Update(specialKey(tea.KeyDown))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	pp := scr.(*PlayScreen)

	if pp.verdict == nil {
		t.Fatal("expected verdict after submission")
	}
	if pp.verdict.IsCorrect {
		t.Error("expected wrong verdict for option 2")
	}
	if pp.verdict.CorrectAnswer != "Moo" {
		t.Errorf("revealed answer = %q, want %q", pp.verdict.CorrectAnswer, "Moo")
	}
}

func TestPlayScreen_RevealAdvances(t *testing.T) {
	p := testPlayScreen(testQuestions())

	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress('1'))

	// Any key advances past the reveal.
	scr, _ = scr.Update(keyPress(' '))
	pp := scr.(*PlayScreen)

	if pp.verdict != nil {
		t.Error("expected verdict cleared after advance")
	}
	if pp.session.Position() != 2 {
		t.Errorf("position = %d, want 2", pp.session.Position())
	}
	if pp.optActive {
		t.Error("expected text input for fill_blank question")
	}
}

func TestPlayScreen_FillBlankSubmit(t *testing.T) {
	p := testPlayScreen(testQuestions())

	// Answer the first question and advance to the fill_blank.
	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress('1'))
	scr, _ = scr.Update(keyPress(' '))
	pp := scr.(*PlayScreen)

	pp.input.Model.SetValue("  PUPPY ")
	scr, _ = pp.Update(specialKey(tea.KeyEnter))
	pp = scr.(*PlayScreen)

	if pp.verdict == nil {
		t.Fatal("expected verdict after submission")
	}
	if !pp.verdict.IsCorrect {
		t.Error("expected case-insensitive match for fill_blank")
	}
}

func TestPlayScreen_EmptySubmitIgnored(t *testing.T) {
	p := testPlayScreen(testQuestions())

	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress('1'))
	scr, _ = scr.Update(keyPress(' '))
	pp := scr.(*PlayScreen)

	scr, _ = pp.Update(specialKey(tea.KeyEnter))
	pp = scr.(*PlayScreen)
	if pp.verdict != nil {
		t.Error("empty answer must not submit")
	}
}

func TestPlayScreen_LastQuestionCompletes(t *testing.T) {
	p := testPlayScreen(testQuestions())

	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress('1'))
	scr, _ = scr.Update(keyPress(' '))
	pp := scr.(*PlayScreen)

	pp.input.Model.SetValue("puppy")
	scr, _ = pp.Update(specialKey(tea.KeyEnter))
	pp = scr.(*PlayScreen)

	// Advance past the final reveal; expect the done command.
	_, cmd := pp.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected command after final advance")
	}
	if _, ok := cmd().(quizDoneMsg); !ok {
		t.Error("expected quizDoneMsg after last question")
	}

	// The done message swaps in the score card so a single pop from
	// there lands back on the topic list.
	_, cmd = pp.Update(quizDoneMsg{})
	if cmd == nil {
		t.Fatal("expected command from quizDoneMsg")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg carrying the score card")
	}
	if replace.Screen == nil {
		t.Fatal("expected a screen in the replace message")
	}
}

func TestPlayScreen_SilentClipLeavesQuestionOpen(t *testing.T) {
	questions := []*quiz.Question{
		{
			ID:            "v1",
			Text:          "Say the Telugu word for mother",
			Type:          quiz.TypeVoiceInput,
			CorrectAnswer: "అమ్మ",
		},
	}
	topic := quiz.Topic{ID: "telugu", Name: "Telugu Words", Emoji: "🗣️", Policy: "vocabulary"}
	grader := quiz.NewVoiceGrader(speech.NewMockTranscriber())
	p := New(topic, &mockQuestionRepo{questions: questions}, grader)

	s, err := quiz.Start(topic.ID, questions)
	if err != nil {
		t.Fatal(err)
	}
	p.session = s
	p.setupQuestion()

	// A clip with no recognizable speech must not consume the answer.
	var scr screen.Screen = p
	scr, _ = scr.Update(transcriptReadyMsg{Err: speech.ErrNoSpeech})
	pp := scr.(*PlayScreen)

	if pp.verdict != nil {
		t.Fatal("silent clip must not be graded")
	}
	if pp.session.State() != quiz.StateInProgress {
		t.Fatalf("state = %q, want in_progress", pp.session.State())
	}
	if pp.notice == "" {
		t.Error("expected a try-again notice")
	}
	if !strings.Contains(pp.View(80, 24), pp.notice) {
		t.Error("expected notice rendered in question view")
	}

	// The learner can still answer the same question.
	pp.input.Model.SetValue("అమ్మ")
	scr, _ = pp.Update(specialKey(tea.KeyEnter))
	pp = scr.(*PlayScreen)

	if pp.verdict == nil {
		t.Fatal("expected verdict for the retried answer")
	}
	if !pp.verdict.IsCorrect {
		t.Error("expected retried answer to grade correct")
	}
}

func TestPlayScreen_KeyHints(t *testing.T) {
	p := testPlayScreen(testQuestions())
	if len(p.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}
