// Package summary displays the end-of-examination results.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ptrdojo/internal/exam"
	"github.com/abhisek/ptrdojo/internal/router"
	"github.com/abhisek/ptrdojo/internal/screen"
	"github.com/abhisek/ptrdojo/internal/ui/layout"
	"github.com/abhisek/ptrdojo/internal/ui/theme"
)

// SummaryScreen displays the final examination summary.
type SummaryScreen struct {
	engine *exam.Engine
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen over a finished (or abandoned) exam.
func New(eng *exam.Engine) *SummaryScreen {
	return &SummaryScreen{engine: eng}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Examination Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.engine.Summary()

	var b strings.Builder
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	title := "Examination over."
	if sum.Done() {
		title = "Examination complete!"
	}
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render(title))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Completed: %d        Mastered: %d        Points: %.1f",
		sum.Completed, sum.Mastered, sum.Points)
	b.WriteString(center.Foreground(theme.Text).Render(statsLine))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("Expertise tier: %s", sum.Tier.Label())))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Challenges")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, st := range s.engine.States() {
		earned := ""
		switch st.Status {
		case exam.StatusMastered:
			earned = fmt.Sprintf("%.1f pts", float64(st.Challenge.Points)*exam.MasteryBonus)
		case exam.StatusCompleted:
			earned = fmt.Sprintf("%.1f pts", float64(st.Challenge.Points))
		}

		line := fmt.Sprintf("  %s %-28s %-12s %s",
			st.Status.Icon(), st.Challenge.Title, st.Status.Label(), earned)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch st.Status {
		case exam.StatusMastered:
			style = style.Foreground(theme.Accent)
		case exam.StatusCompleted:
			style = style.Foreground(theme.Success)
		case exam.StatusLocked:
			style = style.Foreground(theme.TextDim)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if sum.Done() && sum.Tier == exam.TierLegend {
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.Accent).Bold(true).
			Render("🏆 A flawless run. The pointers bow to you."))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
