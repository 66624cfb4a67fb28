package exam

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	engine "github.com/abhisek/ptrdojo/internal/exam"
	"github.com/abhisek/ptrdojo/internal/ui/theme"
)

func (e *ExamScreen) View(width, height int) string {
	switch e.mode {
	case modeQuestion:
		return e.renderQuestion(width)
	case modeFeedback:
		return e.renderFeedback(width)
	case modeTimeout:
		return renderTimeout(width, e.timedOutTitle)
	default:
		return e.renderList(width)
	}
}

// renderList renders the challenge cards with status and points.
func (e *ExamScreen) renderList(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("THE MASTER'S FINAL EXAMINATION"))
	b.WriteString("\n")

	sum := e.engine.Summary()
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d of %d resolved   %.1f pts   %s",
			sum.Completed+sum.Mastered, sum.Total, sum.Points, sum.Tier.Label())))
	b.WriteString("\n\n")

	for i, st := range e.engine.States() {
		b.WriteString(e.renderCard(i, st, width))
		b.WriteString("\n")
	}

	if e.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(e.notice))
	}

	return b.String()
}

// renderCard renders a single challenge row.
func (e *ExamScreen) renderCard(i int, st engine.ChallengeState, width int) string {
	ch := st.Challenge

	prefix := "   "
	if i == e.cursor {
		prefix = " ▸ "
	}

	line := fmt.Sprintf("%s%s  %-28s %-8s %4d pts  %3ds  %s",
		prefix, st.Status.Icon(), ch.Title, ch.Difficulty.Label(),
		ch.Points, ch.TimeLimitSecs, st.Status.Label())

	style := lipgloss.NewStyle().Foreground(theme.Text)
	switch {
	case st.Status == engine.StatusLocked:
		style = lipgloss.NewStyle().Foreground(theme.TextDim)
	case st.Status == engine.StatusMastered:
		style = lipgloss.NewStyle().Foreground(theme.Accent)
	case st.Status == engine.StatusCompleted:
		style = lipgloss.NewStyle().Foreground(theme.Success)
	}
	if i == e.cursor {
		style = style.Bold(true)
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line))
}

// renderQuestion renders the active challenge with its countdown.
func (e *ExamScreen) renderQuestion(width int) string {
	active := e.engine.ActiveIndex()
	ch, err := e.engine.Catalog().At(active)
	if err != nil {
		return ""
	}

	var b strings.Builder

	timerStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	if e.remaining <= 10 {
		timerStyle = theme.Urgent
	}

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s (%s, %d pts)", ch.Title, ch.Difficulty.Label(), ch.Points))
	infoRight := timerStyle.Render(fmt.Sprintf("⏱ %d:%02d", e.remaining/60, e.remaining%60))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(ch.Brief))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, e.mc.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answer fast: beat half the clock to earn the mastery bonus."))

	return b.String()
}

// renderFeedback renders the grading result for the last answer.
func (e *ExamScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	switch {
	case e.lastOutcome != nil && e.lastOutcome.To == engine.StatusMastered:
		b.WriteString(center.Foreground(theme.Accent).Bold(true).
			Render("🏆 MASTERED!"))
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.Text).
			Render("Swift and correct — mastery bonus earned."))
	case e.lastOutcome != nil && e.lastOutcome.To == engine.StatusCompleted:
		b.WriteString(center.Foreground(theme.Success).Bold(true).
			Render("✅ Completed"))
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.Text).
			Render("Correct, but the clock ate the bonus."))
	default:
		b.WriteString(center.Foreground(theme.Error).Bold(true).
			Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).
			Render("The challenge stays open — and so does the clock."))
	}
	b.WriteString("\n\n")

	if e.lastQuestion.Explanation != "" && (e.lastOutcome != nil || !e.lastCorrect) {
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(e.lastQuestion.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	if e.lastOutcome != nil && e.lastOutcome.Unlocked != "" {
		b.WriteString(center.Foreground(theme.Secondary).
			Render(fmt.Sprintf("🔓 Unlocked: %s", e.lastOutcome.Unlocked)))
		b.WriteString("\n\n")
	}

	b.WriteString(center.Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderTimeout renders the timer-expiry overlay.
func renderTimeout(width int, title string) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString(center.Foreground(theme.Error).Bold(true).
		Render("⏱ TIME'S UP"))
	b.WriteString("\n\n")
	if title != "" {
		b.WriteString(center.Foreground(theme.Text).
			Render(fmt.Sprintf("\"%s\" got away this time.", title)))
		b.WriteString("\n")
	}
	b.WriteString(center.Foreground(theme.TextDim).
		Render("Press any key to return to the challenge board."))

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
