// Package scheduler coalesces render requests into single frame callbacks.
//
// Every component instance owns exactly one Scheduler. Multiple synchronous
// property writes within the same turn must produce exactly one patch, not
// one per write: the first request registers a frame callback, later
// requests are no-ops until that callback has run. Cancel revokes a pending
// callback so it never fires against a torn-down rendering context.
package scheduler

import "sync"

// FrameSource delivers frame callbacks. RequestFrame registers fn to run at
// the next frame opportunity and returns a cancel function that prevents fn
// from running if invoked before the frame fires.
type FrameSource interface {
	RequestFrame(fn func()) (cancel func())
}

// Scheduler holds at most one pending task. It cannot fail; it only
// coalesces.
type Scheduler struct {
	source FrameSource

	mu      sync.Mutex
	pending bool
	cancel  func()
}

// New creates a Scheduler backed by the given frame source.
func New(source FrameSource) *Scheduler {
	return &Scheduler{source: source}
}

// Schedule registers task to run on the next frame. If a task is already
// pending the call is a no-op: later callers do not replace or queue
// additional invocations.
//
// The pending flag is cleared before the task runs, so a render request
// made from inside the task schedules a fresh frame rather than being
// swallowed.
func (s *Scheduler) Schedule(task func()) {
	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return
	}
	s.pending = true
	s.mu.Unlock()

	cancel := s.source.RequestFrame(func() {
		s.mu.Lock()
		if !s.pending {
			// Cancelled between frame delivery and execution.
			s.mu.Unlock()
			return
		}
		s.pending = false
		s.cancel = nil
		s.mu.Unlock()
		task()
	})

	s.mu.Lock()
	if s.pending {
		s.cancel = cancel
	}
	s.mu.Unlock()
}

// Cancel revokes the pending task, if any, so it never runs.
// Idempotent if nothing is pending.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	if !s.pending {
		s.mu.Unlock()
		return
	}
	s.pending = false
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Pending reports whether a task is waiting for its frame.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}
