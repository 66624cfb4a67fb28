package exam

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// TimeoutPolicy decides what happens to the active challenge when its
// countdown expires without a resolution.
type TimeoutPolicy string

const (
	// PolicyFreeze leaves the challenge in-progress with the timer stopped
	// and the active marker cleared; re-selecting it re-arms the countdown.
	PolicyFreeze TimeoutPolicy = "freeze"

	// PolicyRelock drops the challenge back to available so it can be
	// retried from scratch.
	PolicyRelock TimeoutPolicy = "relock"
)

// ParsePolicy maps a config string to a TimeoutPolicy.
func ParsePolicy(s string) (TimeoutPolicy, bool) {
	switch TimeoutPolicy(s) {
	case PolicyFreeze:
		return PolicyFreeze, true
	case PolicyRelock:
		return PolicyRelock, true
	}
	return PolicyFreeze, false
}

// noActive marks the engine as having no in-progress challenge armed.
const noActive = -1

// Engine is the single source of truth for challenge statuses and the
// derived progression summary. All mutations go through Select, Resolve,
// Suspend and Tick; everything else is a read-only snapshot.
type Engine struct {
	catalog   *Catalog
	statuses  []Status
	active    int
	countdown Countdown
	policy    TimeoutPolicy
	attemptID string
	logger    *log.Logger
}

// TickResult reports the outcome of one countdown tick.
type TickResult struct {
	Remaining int
	TimedOut  bool
	Index     int // ordinal the tick applied to; noActive when idle
}

// NewEngine creates an engine over the given catalog. The first challenge
// starts available, all others locked.
func NewEngine(catalog *Catalog, policy TimeoutPolicy, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	statuses := make([]Status, catalog.Len())
	for i := range statuses {
		statuses[i] = StatusLocked
	}
	statuses[0] = StatusAvailable

	attemptID := uuid.New().String()
	return &Engine{
		catalog:   catalog,
		statuses:  statuses,
		active:    noActive,
		policy:    policy,
		attemptID: attemptID,
		logger:    logger.With("attempt", attemptID[:8]),
	}
}

// AttemptID returns the UUID of this examination attempt.
func (e *Engine) AttemptID() string {
	return e.attemptID
}

// Select transitions the challenge at the given ordinal to in-progress and
// starts its countdown. Selecting a locked or resolved challenge is
// rejected without mutating state; re-selecting the active challenge is a
// no-op that does not restart the timer. Returns the (possibly updated)
// status of the target.
func (e *Engine) Select(ordinal int) Status {
	ch, err := e.catalog.At(ordinal)
	if err != nil {
		e.logger.Warn("select rejected: out of range", "ordinal", ordinal)
		return StatusLocked
	}

	switch e.statuses[ordinal] {
	case StatusAvailable:
		if e.active != noActive {
			// At most one challenge may be on the clock.
			e.logger.Warn("select rejected: another challenge is active",
				"challenge", ch.ID, "active", e.active)
			return e.statuses[ordinal]
		}
		e.statuses[ordinal] = StatusInProgress
		e.active = ordinal
		e.countdown.Start(ch.TimeLimitSecs)
		e.logger.Info("challenge started", "challenge", ch.ID, "limit", ch.TimeLimitSecs)
		return StatusInProgress

	case StatusInProgress:
		if ordinal == e.active {
			// Already running; do not restart the timer.
			return StatusInProgress
		}
		// Frozen after a timeout or suspend: re-arm with a fresh countdown.
		if e.active != noActive {
			e.logger.Warn("resume rejected: another challenge is active",
				"challenge", ch.ID, "active", e.active)
			return StatusInProgress
		}
		e.active = ordinal
		e.countdown.Start(ch.TimeLimitSecs)
		e.logger.Info("challenge resumed", "challenge", ch.ID)
		return StatusInProgress

	default:
		e.logger.Debug("select rejected: illegal transition",
			"challenge", ch.ID, "status", e.statuses[ordinal])
		return e.statuses[ordinal]
	}
}

// Resolve finishes the currently in-progress challenge as mastered or
// merely completed, stops the countdown and unlocks the next challenge in
// catalog order. Returns nil without mutating state when no challenge is
// active.
func (e *Engine) Resolve(mastered bool) *Transition {
	if e.active == noActive {
		e.logger.Debug("resolve rejected: no active challenge")
		return nil
	}

	ordinal := e.active
	ch := e.catalog.challenges[ordinal]

	to := StatusCompleted
	trigger := "completed"
	if mastered {
		to = StatusMastered
		trigger = "mastered"
	}

	tr := &Transition{
		ChallengeID: ch.ID,
		From:        e.statuses[ordinal],
		To:          to,
		Trigger:     trigger,
	}

	e.statuses[ordinal] = to
	e.active = noActive
	e.countdown.Stop()

	if next := ordinal + 1; next < e.catalog.Len() && e.statuses[next] == StatusLocked {
		e.statuses[next] = StatusAvailable
		tr.Unlocked = e.catalog.challenges[next].ID
	}

	e.logger.Info("challenge resolved",
		"challenge", ch.ID, "outcome", trigger, "unlocked", tr.Unlocked)
	return tr
}

// Suspend stops the countdown and clears the active marker without
// resolving, leaving the challenge in-progress. Used when the operator
// navigates away so a stale expiry cannot fire against it. No-op when
// nothing is active.
func (e *Engine) Suspend() *Transition {
	if e.active == noActive {
		return nil
	}
	ch := e.catalog.challenges[e.active]
	e.countdown.Stop()
	e.active = noActive
	e.logger.Info("challenge suspended", "challenge", ch.ID)
	return &Transition{
		ChallengeID: ch.ID,
		From:        StatusInProgress,
		To:          StatusInProgress,
		Trigger:     "suspend",
	}
}

// Tick advances the active countdown by one second. On expiry the timeout
// is handled exactly once: the countdown stops, the active marker clears
// and, depending on policy, the challenge either stays frozen in-progress
// or drops back to available. The result surfaces the expiry to the
// presentation layer.
func (e *Engine) Tick() TickResult {
	if !e.countdown.Running() {
		return TickResult{Remaining: e.countdown.Remaining(), Index: e.active}
	}

	remaining, expired := e.countdown.Tick()
	if !expired {
		return TickResult{Remaining: remaining, Index: e.active}
	}

	ordinal := e.active
	ch := e.catalog.challenges[ordinal]
	e.active = noActive

	switch e.policy {
	case PolicyRelock:
		e.statuses[ordinal] = StatusAvailable
		e.logger.Warn("challenge timed out, relocked", "challenge", ch.ID)
	default:
		// Freeze: status stays in-progress; resolution is left to the
		// operator (re-select to re-arm, then resolve).
		e.logger.Warn("challenge timed out, frozen", "challenge", ch.ID)
	}

	return TickResult{Remaining: 0, TimedOut: true, Index: ordinal}
}

// Status returns the runtime status at the given ordinal.
func (e *Engine) Status(ordinal int) Status {
	if ordinal < 0 || ordinal >= len(e.statuses) {
		return StatusLocked
	}
	return e.statuses[ordinal]
}

// ActiveIndex returns the ordinal of the armed in-progress challenge, or
// -1 when none is armed.
func (e *Engine) ActiveIndex() int {
	return e.active
}

// Remaining returns the seconds left on the active countdown.
func (e *Engine) Remaining() int {
	return e.countdown.Remaining()
}

// States returns a snapshot of every challenge paired with its status, in
// ordinal order.
func (e *Engine) States() []ChallengeState {
	out := make([]ChallengeState, e.catalog.Len())
	for i, ch := range e.catalog.challenges {
		out[i] = ChallengeState{Challenge: ch, Status: e.statuses[i]}
	}
	return out
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}
