package exam

import "testing"

func TestCountdown_TicksDown(t *testing.T) {
	var c Countdown
	c.Start(3)

	if !c.Running() {
		t.Fatal("expected running after Start")
	}

	r, expired := c.Tick()
	if r != 2 || expired {
		t.Errorf("Tick = (%d, %v), want (2, false)", r, expired)
	}
	c.Tick()
	r, expired = c.Tick()
	if r != 0 || !expired {
		t.Errorf("final Tick = (%d, %v), want (0, true)", r, expired)
	}
	if c.Running() {
		t.Error("expected stopped after expiry")
	}
}

func TestCountdown_ExpiresOnce(t *testing.T) {
	var c Countdown
	c.Start(1)

	_, expired := c.Tick()
	if !expired {
		t.Fatal("expected expiry on first tick")
	}
	for i := 0; i < 5; i++ {
		if _, expired := c.Tick(); expired {
			t.Fatal("expiry fired more than once")
		}
	}
}

func TestCountdown_StopIdempotent(t *testing.T) {
	var c Countdown
	c.Start(5)
	c.Stop()
	c.Stop()

	if c.Running() {
		t.Error("expected stopped")
	}
	if r, expired := c.Tick(); r != 5 || expired {
		t.Errorf("Tick after Stop = (%d, %v), want (5, false)", r, expired)
	}
}

func TestCountdown_StartReplacesPrior(t *testing.T) {
	var c Countdown
	c.Start(5)
	c.Tick()
	c.Start(30)

	if c.Remaining() != 30 {
		t.Errorf("Remaining = %d, want 30", c.Remaining())
	}
	if !c.Running() {
		t.Error("expected running after restart")
	}
}

func TestCountdown_StartZeroNeverRuns(t *testing.T) {
	var c Countdown
	c.Start(0)

	if c.Running() {
		t.Error("expected not running for zero-second countdown")
	}
	if _, expired := c.Tick(); expired {
		t.Error("zero-second countdown must not expire")
	}
}
