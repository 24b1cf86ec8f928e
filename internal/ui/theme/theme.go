// Package theme holds the shared palette and text styles. Colors aim
// for a bright, kid-friendly look that still reads on a dark terminal.
package theme

import (
	"charm.land/lipgloss/v2"
)

var (
	Primary   = lipgloss.Color("#8B5CF6") // vivid purple
	Secondary = lipgloss.Color("#14B8A6") // teal
	Accent    = lipgloss.Color("#F97316") // orange
	Success   = lipgloss.Color("#22C55E") // green
	Error     = lipgloss.Color("#F43F5E") // rose
	Text      = lipgloss.Color("#F8FAFC") // near white
	TextDim   = lipgloss.Color("#94A3B8") // slate
	BgCard    = lipgloss.Color("#1E293B") // dark slate
	Border    = lipgloss.Color("#334155") // slate
)

// List selection states, shared by the topic list and answer options.
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)
