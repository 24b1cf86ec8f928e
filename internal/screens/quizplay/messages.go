package quizplay

import "github.com/abhisek/quizzy/internal/quiz"

// sessionReadyMsg is sent when the question batch has loaded and the
// session started.
type sessionReadyMsg struct {
	Session *quiz.Session
	Err     error
}

// transcriptReadyMsg carries the text recognized from a voice clip.
type transcriptReadyMsg struct {
	Text string
	Err  error
}

// quizDoneMsg is sent after the last question is revealed and advanced.
type quizDoneMsg struct{}
