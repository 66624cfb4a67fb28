// Package quiz runs a lesson's end-of-lesson quiz.
package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ptrdojo/internal/curriculum"
	"github.com/abhisek/ptrdojo/internal/router"
	"github.com/abhisek/ptrdojo/internal/screen"
	"github.com/abhisek/ptrdojo/internal/ui/components"
	"github.com/abhisek/ptrdojo/internal/ui/layout"
	"github.com/abhisek/ptrdojo/internal/ui/theme"
)

// QuizScreen asks a lesson's quiz questions one at a time, multiple
// choice or typed, with feedback between questions.
type QuizScreen struct {
	lesson   curriculum.Lesson
	index    int
	correct  int
	feedback bool
	lastOK   bool
	done     bool

	mc    components.MultiChoice
	input components.TextInput
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz over the given lesson's questions.
func New(lesson curriculum.Lesson) *QuizScreen {
	q := &QuizScreen{lesson: lesson}
	q.setup()
	return q
}

// setup prepares the input component for the current question.
func (q *QuizScreen) setup() {
	question := q.current()
	if question.MultipleChoice() {
		q.mc = components.NewMultiChoice(question.Prompt, question.Options, question.Answer)
	} else {
		q.input = components.NewTextInput("Type your answer...", 40)
	}
}

func (q *QuizScreen) current() curriculum.QuizQuestion {
	return q.lesson.Quiz[q.index]
}

func (q *QuizScreen) Init() tea.Cmd {
	if !q.current().MultipleChoice() {
		return q.input.Init()
	}
	return nil
}

func (q *QuizScreen) Title() string {
	return q.lesson.Title + " — Quiz"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.done || q.feedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	if q.current().MultipleChoice() {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Back"},
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	if q.done {
		if isKey {
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return q, nil
	}

	if q.feedback {
		if isKey {
			q.advance()
		}
		return q, nil
	}

	question := q.current()
	if question.MultipleChoice() {
		if !isKey {
			return q, nil
		}
		var cmd tea.Cmd
		q.mc, cmd = q.mc.Update(msg)
		if q.mc.Submitted {
			q.grade(q.mc.IsCorrect())
		}
		return q, cmd
	}

	if isKey && kmsg.String() == "enter" {
		answer := q.input.Value()
		if strings.TrimSpace(answer) == "" {
			return q, nil
		}
		ok := question.CheckAnswer(answer)
		q.input.Submit(ok)
		q.grade(ok)
		return q, nil
	}

	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)
	return q, cmd
}

// grade records the result and switches to feedback.
func (q *QuizScreen) grade(ok bool) {
	q.lastOK = ok
	if ok {
		q.correct++
	}
	q.feedback = true
}

// advance moves to the next question or the score page.
func (q *QuizScreen) advance() {
	q.feedback = false
	if q.index+1 >= len(q.lesson.Quiz) {
		q.done = true
		return
	}
	q.index++
	q.setup()
}

func (q *QuizScreen) View(width, height int) string {
	if q.done {
		return q.renderScore(width)
	}
	if q.feedback {
		return q.renderFeedback(width)
	}
	return q.renderQuestion(width)
}

func (q *QuizScreen) renderQuestion(width int) string {
	question := q.current()

	var b strings.Builder
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString(center.Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", q.index+1, len(q.lesson.Quiz))))
	b.WriteString("\n\n")

	if question.MultipleChoice() {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, q.mc.View()))
	} else {
		prompt := lipgloss.NewStyle().
			Width(min(width-8, 72)).
			Foreground(theme.Text).
			Bold(true).
			Render(question.Prompt)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
		b.WriteString("\n\n")
		b.WriteString(center.Render("Answer: " + q.input.View()))
	}

	return b.String()
}

func (q *QuizScreen) renderFeedback(width int) string {
	question := q.current()

	var b strings.Builder
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	b.WriteString("\n\n")

	if q.lastOK {
		b.WriteString(center.Foreground(theme.Success).Bold(true).Render("Correct!"))
	} else {
		b.WriteString(center.Foreground(theme.Error).Bold(true).Render("Not quite"))
		if !question.MultipleChoice() {
			b.WriteString("\n")
			b.WriteString(center.Foreground(theme.TextDim).
				Render(fmt.Sprintf("Expected: %s", question.Expected)))
		}
	}
	b.WriteString("\n\n")

	exp := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text).
		Render(question.Explanation)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.TextDim).Render("Press any key to continue..."))

	return b.String()
}

func (q *QuizScreen) renderScore(width int) string {
	var b strings.Builder
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Quiz complete!"))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Text).
		Render(fmt.Sprintf("Score: %d / %d", q.correct, len(q.lesson.Quiz))))
	b.WriteString("\n\n")

	if q.correct == len(q.lesson.Quiz) {
		b.WriteString(center.Foreground(theme.Accent).
			Render("Perfect. The Final Examination awaits."))
	} else {
		b.WriteString(center.Foreground(theme.TextDim).
			Render("Reread the lesson any time — the exam rewards speed."))
	}
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Press any key to go back."))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
