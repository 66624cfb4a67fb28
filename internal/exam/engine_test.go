package exam

import "testing"

// testCatalog builds a five-challenge catalog with the given point values
// and a 10-second time limit each.
func testCatalog(t *testing.T, points ...int) *Catalog {
	t.Helper()
	challenges := make([]Challenge, len(points))
	for i, p := range points {
		challenges[i] = Challenge{
			ID:            string(rune('a' + i)),
			Title:         "Challenge",
			Difficulty:    DifficultyMaster,
			Points:        p,
			TimeLimitSecs: 10,
			Ordinal:       i,
		}
	}
	cat, err := NewCatalog(challenges)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return cat
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(testCatalog(t, 150, 200, 175, 160, 250), PolicyFreeze, nil)
}

func TestNewEngine_InitialStates(t *testing.T) {
	e := newTestEngine(t)

	if got := e.Status(0); got != StatusAvailable {
		t.Errorf("challenge 0 status = %s, want available", got)
	}
	for i := 1; i < 5; i++ {
		if got := e.Status(i); got != StatusLocked {
			t.Errorf("challenge %d status = %s, want locked", i, got)
		}
	}
	if e.ActiveIndex() != -1 {
		t.Errorf("ActiveIndex = %d, want -1", e.ActiveIndex())
	}
}

func TestSelect_AvailableToInProgress(t *testing.T) {
	e := newTestEngine(t)

	if got := e.Select(0); got != StatusInProgress {
		t.Fatalf("Select(0) = %s, want in-progress", got)
	}
	if e.ActiveIndex() != 0 {
		t.Errorf("ActiveIndex = %d, want 0", e.ActiveIndex())
	}
	if e.Remaining() != 10 {
		t.Errorf("Remaining = %d, want 10", e.Remaining())
	}
}

func TestSelect_LockedRejectedSilently(t *testing.T) {
	e := newTestEngine(t)

	// Selecting a locked challenge leaves all state unchanged.
	if got := e.Select(4); got != StatusLocked {
		t.Errorf("Select(4) = %s, want locked", got)
	}
	if e.ActiveIndex() != -1 {
		t.Errorf("ActiveIndex = %d, want -1", e.ActiveIndex())
	}
	for i, st := range e.States() {
		want := StatusLocked
		if i == 0 {
			want = StatusAvailable
		}
		if st.Status != want {
			t.Errorf("challenge %d status = %s, want %s", i, st.Status, want)
		}
	}
}

func TestSelect_OutOfRange(t *testing.T) {
	e := newTestEngine(t)

	if got := e.Select(-1); got != StatusLocked {
		t.Errorf("Select(-1) = %s, want locked", got)
	}
	if got := e.Select(99); got != StatusLocked {
		t.Errorf("Select(99) = %s, want locked", got)
	}
}

func TestSelect_ReselectDoesNotRestartTimer(t *testing.T) {
	e := newTestEngine(t)

	e.Select(0)
	e.Tick()
	e.Tick()
	if e.Remaining() != 8 {
		t.Fatalf("Remaining after 2 ticks = %d, want 8", e.Remaining())
	}

	// Idempotence: re-selecting the active challenge is a no-op.
	if got := e.Select(0); got != StatusInProgress {
		t.Errorf("re-Select(0) = %s, want in-progress", got)
	}
	if e.Remaining() != 8 {
		t.Errorf("Remaining after re-select = %d, want 8 (timer not restarted)", e.Remaining())
	}
}

func TestSelect_SecondChallengeWhileActive(t *testing.T) {
	cat := testCatalog(t, 100, 100)
	e := NewEngine(cat, PolicyFreeze, nil)

	e.Select(0)
	e.Resolve(true) // unlock 1
	e.Select(1)

	// At most one in-progress at a time: 0 is resolved, only 1 runs.
	inProgress := 0
	for _, st := range e.States() {
		if st.Status == StatusInProgress {
			inProgress++
		}
	}
	if inProgress != 1 {
		t.Errorf("in-progress count = %d, want 1", inProgress)
	}
}

func TestResolve_MasteredAppliesBonusAndUnlocks(t *testing.T) {
	e := newTestEngine(t)

	e.Select(0)
	tr := e.Resolve(true)

	if tr == nil {
		t.Fatal("expected a transition")
	}
	if tr.To != StatusMastered {
		t.Errorf("To = %s, want mastered", tr.To)
	}
	if tr.Trigger != "mastered" {
		t.Errorf("Trigger = %s, want mastered", tr.Trigger)
	}
	if e.Status(0) != StatusMastered {
		t.Errorf("challenge 0 status = %s, want mastered", e.Status(0))
	}
	if e.Status(1) != StatusAvailable {
		t.Errorf("challenge 1 status = %s, want available", e.Status(1))
	}

	sum := e.Summary()
	if sum.Points != 225 { // 150 * 1.5
		t.Errorf("Points = %v, want 225", sum.Points)
	}
	if sum.Tier != TierNovice { // 225 < 300
		t.Errorf("Tier = %s, want Novice", sum.Tier.Label())
	}
}

func TestResolve_MixedOutcomesAccumulate(t *testing.T) {
	e := newTestEngine(t)

	e.Select(0)
	e.Resolve(true)
	e.Select(1)
	tr := e.Resolve(false)

	if tr == nil {
		t.Fatal("expected a transition")
	}
	if tr.To != StatusCompleted {
		t.Errorf("To = %s, want completed", tr.To)
	}

	sum := e.Summary()
	if sum.Points != 425 { // 225 + 200
		t.Errorf("Points = %v, want 425", sum.Points)
	}
	if sum.Mastered != 1 {
		t.Errorf("Mastered = %d, want 1", sum.Mastered)
	}
	if sum.Tier != TierAdvanced { // 425 >= 300 and mastered >= 1
		t.Errorf("Tier = %s, want Advanced", sum.Tier.Label())
	}
}

func TestResolve_NoActiveIsNoop(t *testing.T) {
	e := newTestEngine(t)

	if tr := e.Resolve(true); tr != nil {
		t.Errorf("Resolve with nothing active = %+v, want nil", tr)
	}
	if e.Status(0) != StatusAvailable {
		t.Errorf("challenge 0 status = %s, want available", e.Status(0))
	}
}

func TestResolve_MasteryOutscoresCompletion(t *testing.T) {
	mastered := newTestEngine(t)
	mastered.Select(0)
	mastered.Resolve(true)

	completed := newTestEngine(t)
	completed.Select(0)
	completed.Resolve(false)

	if mastered.Summary().Points < completed.Summary().Points {
		t.Errorf("mastered points %v < completed points %v",
			mastered.Summary().Points, completed.Summary().Points)
	}
}

func TestResolve_DoesNotRelockUnlockedSuccessor(t *testing.T) {
	cat := testCatalog(t, 100, 100, 100)
	e := NewEngine(cat, PolicyRelock, nil)

	e.Select(0)
	e.Resolve(false)
	e.Select(1)
	tr := e.Resolve(false)

	// Challenge 2 was locked, so the resolve unlocks it.
	if tr.Unlocked != "c" {
		t.Errorf("Unlocked = %q, want %q", tr.Unlocked, "c")
	}
	if e.Status(2) != StatusAvailable {
		t.Errorf("challenge 2 status = %s, want available", e.Status(2))
	}
}

func TestTick_TimeoutFiresOnce(t *testing.T) {
	e := newTestEngine(t)

	e.Select(0)
	e.Resolve(true)
	e.Select(1)
	e.Resolve(true)
	e.Select(2) // time limit 10

	var timeouts int
	for i := 0; i < 15; i++ {
		res := e.Tick()
		if res.TimedOut {
			timeouts++
			if res.Index != 2 {
				t.Errorf("timeout Index = %d, want 2", res.Index)
			}
		}
	}

	if timeouts != 1 {
		t.Errorf("timeout fired %d times, want exactly 1", timeouts)
	}
	if e.Status(2) != StatusInProgress {
		t.Errorf("challenge 2 status = %s, want in-progress (frozen)", e.Status(2))
	}
	if e.ActiveIndex() != -1 {
		t.Errorf("ActiveIndex after timeout = %d, want -1", e.ActiveIndex())
	}
	if e.Remaining() != 0 {
		t.Errorf("Remaining after timeout = %d, want 0", e.Remaining())
	}
}

func TestTick_RelockPolicy(t *testing.T) {
	cat := testCatalog(t, 100)
	e := NewEngine(cat, PolicyRelock, nil)

	e.Select(0)
	for i := 0; i < 10; i++ {
		e.Tick()
	}

	if e.Status(0) != StatusAvailable {
		t.Errorf("challenge 0 status = %s, want available (relocked)", e.Status(0))
	}

	// The challenge can be retried from scratch.
	if got := e.Select(0); got != StatusInProgress {
		t.Errorf("Select after relock = %s, want in-progress", got)
	}
	if e.Remaining() != 10 {
		t.Errorf("Remaining after retry = %d, want 10", e.Remaining())
	}
}

func TestSelect_ReArmsFrozenChallenge(t *testing.T) {
	e := newTestEngine(t)

	e.Select(0)
	for i := 0; i < 10; i++ {
		e.Tick()
	}
	if e.Status(0) != StatusInProgress || e.ActiveIndex() != -1 {
		t.Fatal("expected frozen in-progress challenge")
	}

	// Re-selecting the frozen challenge re-arms the countdown so the
	// operator can resolve it.
	if got := e.Select(0); got != StatusInProgress {
		t.Fatalf("Select on frozen = %s, want in-progress", got)
	}
	if e.ActiveIndex() != 0 {
		t.Errorf("ActiveIndex = %d, want 0", e.ActiveIndex())
	}
	if e.Remaining() != 10 {
		t.Errorf("Remaining = %d, want 10", e.Remaining())
	}
	if tr := e.Resolve(false); tr == nil {
		t.Error("expected resolve to succeed after re-arm")
	}
}

func TestSuspend_StopsTimerWithoutResolving(t *testing.T) {
	e := newTestEngine(t)

	e.Select(0)
	e.Tick()
	tr := e.Suspend()

	if tr == nil || tr.Trigger != "suspend" {
		t.Fatalf("Suspend transition = %+v, want suspend trigger", tr)
	}
	if e.Status(0) != StatusInProgress {
		t.Errorf("status after suspend = %s, want in-progress", e.Status(0))
	}
	if e.ActiveIndex() != -1 {
		t.Errorf("ActiveIndex after suspend = %d, want -1", e.ActiveIndex())
	}

	// A stale expiry must not fire against the suspended challenge.
	for i := 0; i < 20; i++ {
		if res := e.Tick(); res.TimedOut {
			t.Fatal("tick fired a timeout after suspend")
		}
	}
}

func TestSequentialUnlockInvariant(t *testing.T) {
	e := newTestEngine(t)

	// Challenge i+1 stays locked until challenge i is resolved.
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			if got := e.Status(j); got != StatusLocked {
				t.Fatalf("challenge %d status = %s before %d resolved, want locked", j, got, i)
			}
		}
		e.Select(i)
		e.Resolve(i%2 == 0)
	}

	sum := e.Summary()
	if !sum.Done() {
		t.Errorf("Done = false after resolving all, summary %+v", sum)
	}
}

func TestSummary_FullMasteryReachesLegend(t *testing.T) {
	e := newTestEngine(t)

	for i := 0; i < 5; i++ {
		e.Select(i)
		e.Resolve(true)
	}

	sum := e.Summary()
	if sum.Points != 1402.5 { // (150+200+175+160+250) * 1.5
		t.Errorf("Points = %v, want 1402.5", sum.Points)
	}
	if sum.Mastered != 5 {
		t.Errorf("Mastered = %d, want 5", sum.Mastered)
	}
	if sum.Tier != TierLegend {
		t.Errorf("Tier = %s, want Legend", sum.Tier.Label())
	}
}
