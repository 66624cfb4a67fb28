package lessons

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ptrdojo/internal/curriculum"
	"github.com/abhisek/ptrdojo/internal/router"
	"github.com/abhisek/ptrdojo/internal/screen"
	"github.com/abhisek/ptrdojo/internal/screens/quiz"
	"github.com/abhisek/ptrdojo/internal/ui/components"
	"github.com/abhisek/ptrdojo/internal/ui/layout"
	"github.com/abhisek/ptrdojo/internal/ui/theme"
)

// ViewerScreen pages through a lesson's sections, one per screen, and
// hands off to the quiz after the last page.
type ViewerScreen struct {
	lesson  curriculum.Lesson
	section int
}

var _ screen.Screen = (*ViewerScreen)(nil)
var _ screen.KeyHintProvider = (*ViewerScreen)(nil)

// NewViewer creates a reader for the given lesson.
func NewViewer(lesson curriculum.Lesson) *ViewerScreen {
	return &ViewerScreen{lesson: lesson}
}

func (v *ViewerScreen) Init() tea.Cmd {
	return nil
}

func (v *ViewerScreen) Title() string {
	return v.lesson.Title
}

func (v *ViewerScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Page"},
	}
	if v.section == len(v.lesson.Sections)-1 {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Quiz"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Next"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (v *ViewerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if v.section > 0 {
			v.section--
		}
	case "right", "l":
		if v.section < len(v.lesson.Sections)-1 {
			v.section++
		}
	case "enter", " ":
		if v.section < len(v.lesson.Sections)-1 {
			v.section++
			return v, nil
		}
		// Last page: swap the reader for the quiz so Esc from the quiz
		// lands back on the lesson list.
		lesson := v.lesson
		return v, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: quiz.New(lesson)}
		}
	}

	return v, nil
}

func (v *ViewerScreen) View(width, height int) string {
	sec := v.lesson.Sections[v.section]

	var b strings.Builder
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render(sec.Heading))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s — page %d of %d",
			curriculum.TopicDisplayName(v.lesson.Topic), v.section+1, len(v.lesson.Sections))))
	b.WriteString("\n\n")

	bodyWidth := min(width-8, 72)
	body := lipgloss.NewStyle().
		Width(bodyWidth).
		Foreground(theme.Text).
		Render(sec.Body)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))
	b.WriteString("\n")

	if sec.Code != "" {
		b.WriteString("\n")
		code := components.NewCodeView(sec.Code)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, code.View()))
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
