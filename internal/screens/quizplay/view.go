package quizplay

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzy/internal/quiz"
	"github.com/abhisek/quizzy/internal/ui/components"
	"github.com/abhisek/quizzy/internal/ui/theme"
)

func (p *PlayScreen) View(width, height int) string {
	if p.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n\n  " + p.errMsg + "\n\n  Press any key to go back.")
	}
	if p.session == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Getting your questions ready...")
	}
	if p.verdict != nil {
		return p.renderReveal(width)
	}
	return p.renderQuestion(width)
}

func (p *PlayScreen) renderQuestion(width int) string {
	q := p.session.Current()
	if q == nil {
		return ""
	}

	var b strings.Builder

	// Progress line.
	progress := components.NewProgressBar(
		fmt.Sprintf("  Question %d of %d", p.session.Position(), p.session.Total()),
		float64(p.session.Position()-1)/float64(p.session.Total()),
		false,
		min(width-8, 60),
	)
	b.WriteString(progress.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	if p.optActive {
		b.WriteString(p.renderOptions(width, q))
	} else {
		if p.transcribing {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render("Listening to your recording..."))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Render("Answer: " + p.input.View()))
		}
	}

	if p.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(p.notice))
	}

	return b.String()
}

func (p *PlayScreen) renderOptions(width int, q *quiz.Question) string {
	var b strings.Builder
	for i, opt := range q.Options {
		prefix := "  "
		if i == p.optSelected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)
		if i == p.optSelected {
			b.WriteString(theme.Selected.Render(line))
		} else {
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\nPick (1-%d) or use arrows + Enter", len(q.Options))))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (p *PlayScreen) renderReveal(width int) string {
	v := p.verdict

	var b strings.Builder
	b.WriteString("\n\n")

	if v.IsCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("🎉 Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite!"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("The answer is: " + v.CorrectAnswer))
	}

	b.WriteString("\n\n")

	if v.FunFact != "" {
		fact := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Secondary).
			Render("💡 " + v.FunFact)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, fact))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key for the next question..."))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
