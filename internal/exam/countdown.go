package exam

// Countdown is an explicit, cancellable one-second countdown. It holds no
// goroutines or wall-clock state: the owner delivers ticks cooperatively
// (the TUI forwards its once-per-second tick), so at most one countdown can
// ever be live and expiry cannot race a state mutation.
type Countdown struct {
	remaining int
	running   bool
}

// Start begins a countdown from the given number of seconds, replacing any
// countdown already running.
func (c *Countdown) Start(seconds int) {
	c.remaining = seconds
	c.running = seconds > 0
}

// Stop cancels the countdown. Idempotent if already stopped.
func (c *Countdown) Stop() {
	c.running = false
}

// Running reports whether the countdown is live.
func (c *Countdown) Running() bool {
	return c.running
}

// Remaining returns the seconds left on the countdown.
func (c *Countdown) Remaining() int {
	return c.remaining
}

// Tick advances the countdown by one second. When it reaches zero the
// countdown stops itself and reports expiry exactly once; further ticks
// are no-ops.
func (c *Countdown) Tick() (remaining int, expired bool) {
	if !c.running {
		return c.remaining, false
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.running = false
		return 0, true
	}
	return c.remaining, false
}
