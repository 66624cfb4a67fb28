// Package progress displays the current examination standing.
package progress

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ptrdojo/internal/exam"
	"github.com/abhisek/ptrdojo/internal/screen"
	"github.com/abhisek/ptrdojo/internal/ui/components"
	"github.com/abhisek/ptrdojo/internal/ui/layout"
	"github.com/abhisek/ptrdojo/internal/ui/theme"
)

// ProgressScreen shows per-challenge statuses, cumulative points and the
// derived expertise tier.
type ProgressScreen struct {
	engine *exam.Engine
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New creates a new ProgressScreen over a shared engine.
func New(eng *exam.Engine) *ProgressScreen {
	return &ProgressScreen{engine: eng}
}

func (p *ProgressScreen) Init() tea.Cmd {
	return nil
}

func (p *ProgressScreen) Title() string {
	return "Progress"
}

func (p *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (p *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *ProgressScreen) View(width, height int) string {
	sum := p.engine.Summary()

	var b strings.Builder
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString(center.Foreground(theme.Primary).Bold(true).
		Render("Examination Standing"))
	b.WriteString("\n\n")

	barWidth := min(width-20, 50)

	resolved := sum.Completed + sum.Mastered
	resolvedBar := components.NewProgressBar(
		"Resolved", ratio(resolved, sum.Total), true, barWidth)
	masteredBar := components.NewProgressBar(
		"Mastered", ratio(sum.Mastered, sum.Total), true, barWidth)

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, resolvedBar.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, masteredBar.View()))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.Text).
		Render(fmt.Sprintf("Points: %.1f", sum.Points)))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("Tier: %s", sum.Tier.Label())))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, st := range p.engine.States() {
		line := fmt.Sprintf("  %s %-28s %s",
			st.Status.Icon(), st.Challenge.Title, st.Status.Label())

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch st.Status {
		case exam.StatusLocked:
			style = style.Foreground(theme.TextDim)
		case exam.StatusMastered:
			style = style.Foreground(theme.Accent)
		case exam.StatusCompleted:
			style = style.Foreground(theme.Success)
		case exam.StatusInProgress:
			style = style.Foreground(theme.Primary)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func ratio(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
