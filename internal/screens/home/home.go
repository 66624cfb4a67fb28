// Package home implements the main menu screen.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ptrdojo/internal/curriculum"
	"github.com/abhisek/ptrdojo/internal/exam"
	"github.com/abhisek/ptrdojo/internal/router"
	"github.com/abhisek/ptrdojo/internal/screen"
	examscreen "github.com/abhisek/ptrdojo/internal/screens/exam"
	"github.com/abhisek/ptrdojo/internal/screens/lessons"
	"github.com/abhisek/ptrdojo/internal/screens/progress"
	"github.com/abhisek/ptrdojo/internal/ui/components"
	"github.com/abhisek/ptrdojo/internal/ui/theme"
)

const banner = `╔═══════════════════════════════════╗
║    p t r d o j o      int* →      ║
╚═══════════════════════════════════╝`

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	engine *exam.Engine
	menu   components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen over the shared exam engine.
func New(eng *exam.Engine) *HomeScreen {
	items := []components.MenuItem{
		{Label: "LESSONS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: lessons.New()}
			}
		}},
		{Label: "FINAL EXAMINATION", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: examscreen.New(eng)}
			}
		}},
		{Label: "PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progress.New(eng)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		engine: eng,
		menu:   components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	sum := h.engine.Summary()

	var sections []string

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(banner))

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Align(lipgloss.Center).
		Render("pointers, memory, and the Master's Final Examination"))

	stats := fmt.Sprintf("Lessons: %d    Resolved: %d/%d    Points: %.1f    Tier: %s",
		curriculum.Count(), sum.Completed+sum.Mastered, sum.Total, sum.Points, sum.Tier.Label())
	sections = append(sections, theme.Card.Render(
		lipgloss.NewStyle().Foreground(theme.Text).Render(stats)))

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
