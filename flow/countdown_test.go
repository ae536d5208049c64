package flow

import "testing"

func TestCountdownStartsAtFiftySevenSeconds(t *testing.T) {
	c := newIdleCountdown()
	defer c.Stop()

	if got := c.Remaining(); got != 57 {
		t.Fatalf("Remaining() = %d, want 57", got)
	}
	if c.Expired() {
		t.Error("countdown should not start expired")
	}
	if got := c.FormatRemaining(); got != "0:57" {
		t.Errorf("FormatRemaining() = %q, want %q", got, "0:57")
	}
}

func TestCountdownExpiresAfterFiftySevenTicks(t *testing.T) {
	c := newIdleCountdown()
	defer c.Stop()

	for i := 0; i < 56; i++ {
		c.tick()
	}
	if c.Expired() {
		t.Fatal("expired one tick early")
	}
	if got := c.FormatRemaining(); got != "0:01" {
		t.Errorf("FormatRemaining() = %q, want %q", got, "0:01")
	}

	c.tick()
	if !c.Expired() {
		t.Fatal("should be expired after 57 ticks")
	}
	if got := c.FormatRemaining(); got != "0:00" {
		t.Errorf("FormatRemaining() = %q, want %q", got, "0:00")
	}

	// Extra ticks must not go negative.
	c.tick()
	if got := c.Remaining(); got != 0 {
		t.Errorf("Remaining() after extra tick = %d, want 0", got)
	}
}

func TestCountdownReset(t *testing.T) {
	c := newIdleCountdown()
	defer c.Stop()

	for i := 0; i < 57; i++ {
		c.tick()
	}
	if !c.Expired() {
		t.Fatal("should be expired")
	}

	c.reset()
	if got := c.Remaining(); got != 57 {
		t.Errorf("Remaining() after reset = %d, want 57", got)
	}
	if c.Expired() {
		t.Error("reset countdown should not be expired")
	}
}

func TestCountdownStopIsIdempotent(t *testing.T) {
	c := newIdleCountdown()
	c.Stop()
	c.Stop() // must not panic on the second call
}
