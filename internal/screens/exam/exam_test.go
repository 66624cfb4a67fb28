package exam

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	engine "github.com/abhisek/ptrdojo/internal/exam"
	"github.com/abhisek/ptrdojo/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testExamScreen(t *testing.T) (*ExamScreen, *engine.Engine) {
	t.Helper()
	catalog, err := engine.NewCatalog(engine.FinalExamChallenges())
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	eng := engine.NewEngine(catalog, engine.PolicyFreeze, nil)
	return New(eng), eng
}

// moveTo presses down until the cursor sits on the given option index.
func moveTo(s screen.Screen, target int) screen.Screen {
	for i := 0; i < target; i++ {
		s, _ = s.Update(specialKey(tea.KeyDown))
	}
	return s
}

func TestExamScreen_Title(t *testing.T) {
	e, _ := testExamScreen(t)
	if e.Title() != "Final Examination" {
		t.Errorf("Title = %q, want %q", e.Title(), "Final Examination")
	}
}

func TestExamScreen_OpenFirstChallenge(t *testing.T) {
	e, eng := testExamScreen(t)

	var scr screen.Screen = e
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	es := scr.(*ExamScreen)

	if es.mode != modeQuestion {
		t.Errorf("mode = %v, want question", es.mode)
	}
	if eng.ActiveIndex() != 0 {
		t.Errorf("ActiveIndex = %d, want 0", eng.ActiveIndex())
	}
	if eng.Status(0) != engine.StatusInProgress {
		t.Errorf("Status(0) = %v, want in-progress", eng.Status(0))
	}
}

func TestExamScreen_LockedChallengeRejected(t *testing.T) {
	e, eng := testExamScreen(t)

	// Move the cursor to the second, still-locked challenge.
	var scr screen.Screen = e
	scr, _ = scr.Update(specialKey(tea.KeyDown))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	es := scr.(*ExamScreen)

	if es.mode != modeList {
		t.Error("locked challenge should not open")
	}
	if es.notice == "" {
		t.Error("expected a notice for the rejected selection")
	}
	if eng.Status(1) != engine.StatusLocked {
		t.Errorf("Status(1) = %v, want locked", eng.Status(1))
	}
}

func TestExamScreen_FastCorrectAnswerMasters(t *testing.T) {
	e, eng := testExamScreen(t)

	var scr screen.Screen = e
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	// Answer immediately: full time remaining, so mastery.
	correct := eng.Catalog().Challenges()[0].Question.Answer
	scr = moveTo(scr, correct)
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	es := scr.(*ExamScreen)

	if es.mode != modeFeedback {
		t.Fatalf("mode = %v, want feedback", es.mode)
	}
	if eng.Status(0) != engine.StatusMastered {
		t.Errorf("Status(0) = %v, want mastered", eng.Status(0))
	}
	if eng.Status(1) != engine.StatusAvailable {
		t.Errorf("Status(1) = %v, want available after unlock", eng.Status(1))
	}
	if es.lastOutcome == nil || es.lastOutcome.Unlocked == "" {
		t.Error("expected an unlock in the resolution transition")
	}
}

func TestExamScreen_SlowCorrectAnswerCompletes(t *testing.T) {
	e, eng := testExamScreen(t)

	var scr screen.Screen = e
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	// Burn past half the 90s limit.
	for i := 0; i < 50; i++ {
		scr, _ = scr.Update(timerTickMsg{})
	}

	correct := eng.Catalog().Challenges()[0].Question.Answer
	scr = moveTo(scr, correct)
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	if eng.Status(0) != engine.StatusCompleted {
		t.Errorf("Status(0) = %v, want completed", eng.Status(0))
	}
}

func TestExamScreen_WrongAnswerKeepsChallengeOpen(t *testing.T) {
	e, eng := testExamScreen(t)

	var scr screen.Screen = e
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	correct := eng.Catalog().Challenges()[0].Question.Answer
	wrong := (correct + 1) % len(eng.Catalog().Challenges()[0].Question.Options)
	scr = moveTo(scr, wrong)
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	es := scr.(*ExamScreen)

	if es.mode != modeFeedback {
		t.Fatalf("mode = %v, want feedback", es.mode)
	}
	if eng.Status(0) != engine.StatusInProgress {
		t.Errorf("Status(0) = %v, want still in-progress", eng.Status(0))
	}

	// Dismissing feedback returns to the question, not the list.
	scr, cmd := scr.Update(keyPress(' '))
	if cmd != nil {
		scr, _ = scr.Update(cmd())
	}
	es = scr.(*ExamScreen)
	if es.mode != modeQuestion {
		t.Errorf("mode = %v, want question after wrong answer", es.mode)
	}
}

func TestExamScreen_TimeoutShowsOverlay(t *testing.T) {
	e, eng := testExamScreen(t)

	var scr screen.Screen = e
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	limit := eng.Catalog().Challenges()[0].TimeLimitSecs
	for i := 0; i < limit; i++ {
		scr, _ = scr.Update(timerTickMsg{})
	}
	es := scr.(*ExamScreen)

	if es.mode != modeTimeout {
		t.Fatalf("mode = %v, want timeout", es.mode)
	}
	if eng.ActiveIndex() != -1 {
		t.Errorf("ActiveIndex = %d, want -1 after expiry", eng.ActiveIndex())
	}

	// Any key dismisses the overlay back to the list.
	scr, _ = scr.Update(keyPress(' '))
	es = scr.(*ExamScreen)
	if es.mode != modeList {
		t.Errorf("mode = %v, want list after dismiss", es.mode)
	}
}

func TestExamScreen_EscSuspendsRunningChallenge(t *testing.T) {
	e, eng := testExamScreen(t)

	var scr screen.Screen = e
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	es := scr.(*ExamScreen)

	cmd := es.HandleEsc()
	if cmd != nil {
		t.Error("suspending esc should not produce a navigation command")
	}
	if es.mode != modeList {
		t.Errorf("mode = %v, want list after suspend", es.mode)
	}
	if eng.ActiveIndex() != -1 {
		t.Errorf("ActiveIndex = %d, want -1 after suspend", eng.ActiveIndex())
	}
	if eng.Status(0) != engine.StatusInProgress {
		t.Errorf("Status(0) = %v, want in-progress (frozen)", eng.Status(0))
	}

	// A second esc from the list pops the screen.
	if es.HandleEsc() == nil {
		t.Error("esc from the list should pop the screen")
	}
}

func TestExamScreen_TickNoopWhenIdle(t *testing.T) {
	e, eng := testExamScreen(t)

	var scr screen.Screen = e
	for i := 0; i < 100; i++ {
		scr, _ = scr.Update(timerTickMsg{})
	}
	es := scr.(*ExamScreen)

	if es.mode != modeList {
		t.Errorf("mode = %v, want list (no spurious timeout)", es.mode)
	}
	if eng.Status(0) != engine.StatusAvailable {
		t.Errorf("Status(0) = %v, want available", eng.Status(0))
	}
}

func TestExamScreen_ViewModes(t *testing.T) {
	e, _ := testExamScreen(t)

	if e.View(80, 24) == "" {
		t.Error("expected non-empty list view")
	}

	var scr screen.Screen = e
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	es := scr.(*ExamScreen)
	if es.View(80, 24) == "" {
		t.Error("expected non-empty question view")
	}
}
