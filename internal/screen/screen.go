// Package screen defines the contract every quiz screen implements.
// It lives apart from the router so screens and the router can import
// it without a cycle.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzy/internal/ui/layout"
)

// Screen is one full-window view: the topic list, a running quiz, or a
// score card. The app shell draws the header and footer around it.
type Screen interface {
	// Init returns the command to run when the screen becomes active.
	Init() tea.Cmd

	// Update handles a message. Returning a different Screen replaces
	// this one in place on the navigation stack.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area between header and footer.
	View(width, height int) string

	// Title is shown in the header bar.
	Title() string
}

// KeyHintProvider lets a screen put its own key hints in the footer.
// Screens without it get the default back/quit hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
