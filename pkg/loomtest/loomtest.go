// Package loomtest provides a deterministic harness for component tests:
// a manual frame source that stands in for the platform's animation frame,
// and a Harness bundling it with an in-memory document.
//
// Create a harness, mount a component, and pump frames explicitly:
//
//	h := loomtest.NewHarness()
//	defer h.Close()
//	inst := h.Mount("x-counter", &counter{})
//	h.Pump() // run the first render
package loomtest

import (
	"sync"

	"github.com/loom-ui/loom/pkg/component"
	"github.com/loom-ui/loom/pkg/direction"
	"github.com/loom-ui/loom/pkg/host"
)

// ManualFrames is a scheduler.FrameSource whose frames fire only when
// Flush is called. Safe for concurrent use.
type ManualFrames struct {
	mu    sync.Mutex
	queue []*manualFrame
}

type manualFrame struct {
	fn        func()
	cancelled bool
}

// NewManualFrames creates an empty manual frame source.
func NewManualFrames() *ManualFrames {
	return &ManualFrames{}
}

// RequestFrame queues fn for the next Flush and returns its cancel
// function.
func (m *ManualFrames) RequestFrame(fn func()) (cancel func()) {
	frame := &manualFrame{fn: fn}
	m.mu.Lock()
	m.queue = append(m.queue, frame)
	m.mu.Unlock()
	return func() {
		m.mu.Lock()
		frame.cancelled = true
		m.mu.Unlock()
	}
}

// Pending returns the number of live queued callbacks.
func (m *ManualFrames) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, f := range m.queue {
		if !f.cancelled {
			n++
		}
	}
	return n
}

// Flush fires one frame: every callback queued before the call runs;
// callbacks registered during the flush wait for the next one. Returns the
// number of callbacks run.
func (m *ManualFrames) Flush() int {
	m.mu.Lock()
	frames := m.queue
	m.queue = nil
	m.mu.Unlock()

	ran := 0
	for _, f := range frames {
		m.mu.Lock()
		cancelled := f.cancelled
		m.mu.Unlock()
		if cancelled {
			continue
		}
		f.fn()
		ran++
	}
	return ran
}

// Harness bundles an in-memory document with a manual frame source.
type Harness struct {
	Doc    *host.Document
	Frames *ManualFrames
}

// NewHarness creates a fresh document and frame source.
func NewHarness() *Harness {
	return &Harness{
		Doc:    host.NewDocument(),
		Frames: NewManualFrames(),
	}
}

// Mount constructs an instance for comp on a new element, wired to the
// harness frame source, and connects it to the document.
func (h *Harness) Mount(tag string, comp component.Component, opts ...component.Option) *component.Instance {
	el := host.NewElement(tag)
	opts = append([]component.Option{component.WithFrameSource(h.Frames)}, opts...)
	inst := component.New(el, comp, opts...)
	h.Doc.Append(el)
	return inst
}

// Unmount disconnects the instance's host element.
func (h *Harness) Unmount(inst *component.Instance) {
	h.Doc.Remove(inst.Host())
}

// Remount reconnects a previously unmounted instance.
func (h *Harness) Remount(inst *component.Instance) {
	h.Doc.Append(inst.Host())
}

// Pump fires one frame and returns the number of callbacks run.
func (h *Harness) Pump() int {
	return h.Frames.Flush()
}

// Close releases the document's direction broadcaster so harnesses do not
// accumulate in the process-wide registry.
func (h *Harness) Close() {
	direction.For(h.Doc).Close()
}
