package core

import "time"

// Ticker reports when a fixed delay has elapsed between simulation steps. The
// caller supplies the clock so presentation loops of any frame rate can share it.
type Ticker struct {
	interval time.Duration
	last     time.Time
}

// NewTicker constructs a Ticker firing once per interval.
func NewTicker(interval time.Duration) *Ticker {
	t := &Ticker{}
	t.SetInterval(interval)
	return t
}

// SetInterval changes the delay between ticks. Non-positive values fall back
// to one second.
func (t *Ticker) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}
	t.interval = interval
}

// Interval returns the active delay.
func (t *Ticker) Interval() time.Duration { return t.interval }

// Restart makes the next Due call fire immediately.
func (t *Ticker) Restart() { t.last = time.Time{} }

// Due reports whether a step should run at now. The first call after a
// Restart always fires.
func (t *Ticker) Due(now time.Time) bool {
	if t.last.IsZero() || now.Sub(t.last) >= t.interval {
		t.last = now
		return true
	}
	return false
}
