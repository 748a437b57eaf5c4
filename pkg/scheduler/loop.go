package scheduler

import "time"

// DefaultInterval approximates a 60Hz display refresh.
const DefaultInterval = time.Second / 60

// Loop is a FrameSource that delivers frames on a timer, for hosts without
// a native vsync signal. Callbacks run on the timer goroutine; hosts that
// require single-threaded dispatch must route delivery onto their event
// loop.
type Loop struct {
	interval time.Duration
}

// NewLoop creates a timer-backed frame source. A non-positive interval
// falls back to DefaultInterval.
func NewLoop(interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{interval: interval}
}

// RequestFrame schedules fn after one frame interval.
func (l *Loop) RequestFrame(fn func()) (cancel func()) {
	timer := time.AfterFunc(l.interval, fn)
	return func() { timer.Stop() }
}
