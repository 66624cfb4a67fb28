// Package lessons implements the lesson browser and reader.
package lessons

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ptrdojo/internal/curriculum"
	"github.com/abhisek/ptrdojo/internal/router"
	"github.com/abhisek/ptrdojo/internal/screen"
	"github.com/abhisek/ptrdojo/internal/ui/layout"
	"github.com/abhisek/ptrdojo/internal/ui/theme"
)

// entry is one selectable row: either a topic header or a lesson.
type entry struct {
	header string
	lesson *curriculum.Lesson
}

// LessonsScreen lists all lessons grouped by topic.
type LessonsScreen struct {
	entries []entry
	cursor  int
}

var _ screen.Screen = (*LessonsScreen)(nil)
var _ screen.KeyHintProvider = (*LessonsScreen)(nil)

// New creates the lesson browser.
func New() *LessonsScreen {
	var entries []entry
	for _, topic := range curriculum.AllTopics() {
		lessons := curriculum.ByTopic(topic)
		if len(lessons) == 0 {
			continue
		}
		entries = append(entries, entry{header: curriculum.TopicDisplayName(topic)})
		for i := range lessons {
			l := lessons[i]
			entries = append(entries, entry{lesson: &l})
		}
	}

	s := &LessonsScreen{entries: entries}
	s.cursor = s.nextSelectable(-1)
	return s
}

func (s *LessonsScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonsScreen) Title() string {
	return "Lessons"
}

func (s *LessonsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Read"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *LessonsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if prev := s.prevSelectable(s.cursor); prev >= 0 {
			s.cursor = prev
		}
	case "down", "j":
		if next := s.nextSelectable(s.cursor); next >= 0 {
			s.cursor = next
		}
	case "enter":
		if s.cursor >= 0 && s.cursor < len(s.entries) {
			if l := s.entries[s.cursor].lesson; l != nil {
				lesson := *l
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: NewViewer(lesson)}
				}
			}
		}
	}

	return s, nil
}

func (s *LessonsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Choose a lesson"))
	b.WriteString("\n\n")

	for i, e := range s.entries {
		if e.header != "" {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
					Render(" "+e.header)))
			b.WriteString("\n")
			continue
		}

		prefix := "    "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.cursor {
			prefix = "  ▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		line := fmt.Sprintf("%s%-26s %s", prefix, e.lesson.Title,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(e.lesson.Summary))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

// nextSelectable returns the next lesson row after i, or -1.
func (s *LessonsScreen) nextSelectable(i int) int {
	for j := i + 1; j < len(s.entries); j++ {
		if s.entries[j].lesson != nil {
			return j
		}
	}
	return -1
}

// prevSelectable returns the previous lesson row before i, or -1.
func (s *LessonsScreen) prevSelectable(i int) int {
	for j := i - 1; j >= 0; j-- {
		if s.entries[j].lesson != nil {
			return j
		}
	}
	return -1
}
