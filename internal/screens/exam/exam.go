// Package exam implements the Final Examination screen: the challenge
// card list, the timed question flow and the end-of-exam handoff.
package exam

import (
	"time"

	tea "charm.land/bubbletea/v2"

	engine "github.com/abhisek/ptrdojo/internal/exam"
	"github.com/abhisek/ptrdojo/internal/router"
	"github.com/abhisek/ptrdojo/internal/screen"
	"github.com/abhisek/ptrdojo/internal/screens/summary"
	"github.com/abhisek/ptrdojo/internal/ui/components"
	"github.com/abhisek/ptrdojo/internal/ui/layout"
)

// mode is the screen's internal display state.
type mode int

const (
	modeList mode = iota
	modeQuestion
	modeFeedback
	modeTimeout
)

// ExamScreen implements screen.Screen for the Final Examination.
type ExamScreen struct {
	engine *engine.Engine
	mode   mode
	cursor int

	mc        components.MultiChoice
	remaining int

	// Feedback state for the last graded answer.
	lastCorrect  bool
	lastOutcome  *engine.Transition
	lastQuestion engine.Question

	// Timeout overlay state.
	timedOutTitle string

	notice string
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)
var _ screen.EscHandler = (*ExamScreen)(nil)

// New creates the exam screen over a shared engine.
func New(eng *engine.Engine) *ExamScreen {
	return &ExamScreen{
		engine:    eng,
		remaining: eng.Remaining(),
	}
}

func (e *ExamScreen) Init() tea.Cmd {
	return tickCmd()
}

func (e *ExamScreen) Title() string {
	return "Final Examination"
}

func (e *ExamScreen) KeyHints() []layout.KeyHint {
	switch e.mode {
	case modeQuestion:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Step away"},
		}
	case modeFeedback, modeTimeout:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Open"},
			{Key: "Esc", Description: "Home"},
		}
	}
}

// HandleEsc suspends a running challenge instead of popping the screen,
// so no timer is left armed against a challenge nobody is looking at.
func (e *ExamScreen) HandleEsc() tea.Cmd {
	if e.mode == modeQuestion {
		e.engine.Suspend()
		e.mode = modeList
		e.notice = ""
		return nil
	}
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (e *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return e.handleTimerTick()

	case feedbackDoneMsg:
		return e.handleFeedbackDone()

	case tea.KeyMsg:
		return e.handleKey(msg)
	}
	return e, nil
}

func (e *ExamScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	res := e.engine.Tick()
	e.remaining = res.Remaining

	if res.TimedOut {
		ch, err := e.engine.Catalog().At(res.Index)
		if err == nil {
			e.timedOutTitle = ch.Title
		}
		e.mode = modeTimeout
	}

	return e, tickCmd()
}

func (e *ExamScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	if e.lastOutcome != nil {
		// Resolution landed; back to the list or on to the results.
		e.lastOutcome = nil
		e.mode = modeList
		if e.engine.Summary().Done() {
			return e, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: summary.New(e.engine)}
			}
		}
		return e, nil
	}

	// Wrong answer: the challenge stays in progress, ask again.
	active := e.engine.ActiveIndex()
	if active < 0 {
		e.mode = modeList
		return e, nil
	}
	ch, err := e.engine.Catalog().At(active)
	if err != nil {
		e.mode = modeList
		return e, nil
	}
	e.mc = components.NewMultiChoice(ch.Question.Prompt, ch.Question.Options, ch.Question.Answer)
	e.mode = modeQuestion
	return e, nil
}

func (e *ExamScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch e.mode {
	case modeFeedback:
		return e, func() tea.Msg { return feedbackDoneMsg{} }

	case modeTimeout:
		e.mode = modeList
		e.timedOutTitle = ""
		return e, nil

	case modeQuestion:
		var cmd tea.Cmd
		e.mc, cmd = e.mc.Update(msg)
		if e.mc.Submitted {
			return e.gradeAnswer()
		}
		return e, cmd

	default: // modeList
		states := e.engine.States()
		switch key {
		case "up", "k":
			if e.cursor > 0 {
				e.cursor--
			}
		case "down", "j":
			if e.cursor < len(states)-1 {
				e.cursor++
			}
		case "enter":
			return e.openChallenge(e.cursor)
		}
		return e, nil
	}
}

// openChallenge asks the engine to arm the challenge under the cursor and
// switches to the question flow when it succeeds.
func (e *ExamScreen) openChallenge(ordinal int) (screen.Screen, tea.Cmd) {
	e.notice = ""

	before := e.engine.Status(ordinal)
	status := e.engine.Select(ordinal)

	if status != engine.StatusInProgress || e.engine.ActiveIndex() != ordinal {
		switch before {
		case engine.StatusLocked:
			e.notice = "That challenge is still locked."
		case engine.StatusCompleted, engine.StatusMastered:
			e.notice = "Already resolved."
		default:
			e.notice = "Finish the open challenge first."
		}
		return e, nil
	}

	ch, err := e.engine.Catalog().At(ordinal)
	if err != nil {
		return e, nil
	}
	e.mc = components.NewMultiChoice(ch.Question.Prompt, ch.Question.Options, ch.Question.Answer)
	e.remaining = e.engine.Remaining()
	e.mode = modeQuestion
	return e, nil
}

// gradeAnswer grades the submitted choice. A correct answer with more
// than half the time limit left counts as mastered; correct but slower is
// merely completed; wrong keeps the challenge open on the clock.
func (e *ExamScreen) gradeAnswer() (screen.Screen, tea.Cmd) {
	active := e.engine.ActiveIndex()
	ch, err := e.engine.Catalog().At(active)
	if err != nil {
		e.mode = modeList
		return e, nil
	}

	e.lastQuestion = ch.Question
	e.lastCorrect = e.mc.IsCorrect()
	e.lastOutcome = nil

	if e.lastCorrect {
		mastered := e.engine.Remaining()*2 > ch.TimeLimitSecs
		e.lastOutcome = e.engine.Resolve(mastered)
	}

	e.mode = modeFeedback
	return e, nil
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
