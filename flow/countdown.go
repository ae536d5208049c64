package flow

import (
	"fmt"
	"sync"
	"time"
)

// resendDelaySeconds is how long the resend action stays disabled after a
// code is sent.
const resendDelaySeconds = 57

// Countdown gates the resend-code action. It is a scoped resource: acquired
// when the sequencer enters the code-confirmation state and released when it
// leaves, so no ticker ever outlives its state (the dangling-interval bug the
// previous app shipped with).
type Countdown struct {
	mu        sync.Mutex
	remaining int
	ticker    *time.Ticker
	done      chan struct{}
	stopOnce  sync.Once
}

// startCountdown begins ticking once per second.
func startCountdown() *Countdown {
	c := &Countdown{
		remaining: resendDelaySeconds,
		done:      make(chan struct{}),
		ticker:    time.NewTicker(time.Second),
	}
	go c.loop()
	return c
}

// newIdleCountdown builds a countdown that only moves when tick is called.
// Tests drive it by hand.
func newIdleCountdown() *Countdown {
	return &Countdown{
		remaining: resendDelaySeconds,
		done:      make(chan struct{}),
	}
}

func (c *Countdown) loop() {
	for {
		select {
		case <-c.done:
			return
		case <-c.ticker.C:
			c.tick()
		}
	}
}

func (c *Countdown) tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.remaining > 0 {
		c.remaining--
	}
}

// Remaining returns the seconds left before resend becomes available.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Expired reports whether the resend action is enabled.
func (c *Countdown) Expired() bool {
	return c.Remaining() == 0
}

// reset re-arms the countdown after a successful resend.
func (c *Countdown) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remaining = resendDelaySeconds
}

// Stop releases the ticker. Safe to call more than once.
func (c *Countdown) Stop() {
	c.stopOnce.Do(func() {
		if c.ticker != nil {
			c.ticker.Stop()
		}
		close(c.done)
	})
}

// FormatRemaining renders the time left as m:ss, e.g. "0:57".
func (c *Countdown) FormatRemaining() string {
	remaining := c.Remaining()
	return fmt.Sprintf("%d:%02d", remaining/60, remaining%60)
}
