package errors

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// captureHandler records everything reported to it.
type captureHandler struct {
	errors   []*Error
	warnings []*Warning
	panics   []*PanicError
}

func (h *captureHandler) HandleError(err *Error)      { h.errors = append(h.errors, err) }
func (h *captureHandler) HandleWarning(w *Warning)    { h.warnings = append(h.warnings, w) }
func (h *captureHandler) HandlePanic(err *PanicError) { h.panics = append(h.panics, err) }

func TestError_Format(t *testing.T) {
	err := &Error{
		Op:        "component.Mount",
		Kind:      KindLifecycle,
		Err:       errors.New("boom"),
		Component: "Counter",
	}
	got := err.Error()
	want := "component.Mount [lifecycle] component=Counter: boom"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err.Component = ""
	if got := err.Error(); got != "component.Mount [lifecycle]: boom" {
		t.Errorf("Error() without component = %q", got)
	}
}

func TestKind_String(t *testing.T) {
	kinds := map[Kind]string{
		KindUnknown:   "unknown",
		KindProperty:  "property",
		KindLifecycle: "lifecycle",
		KindRender:    "render",
		KindConfig:    "config",
		KindPanic:     "panic",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestReport_SetsTimestamp(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(&Error{Op: "test", Err: errors.New("x")})

	if len(h.errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(h.errors))
	}
	if h.errors[0].Timestamp.IsZero() {
		t.Error("expected Report to set Timestamp")
	}
}

func TestWarn_RoutesToHandler(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Warn("props.Validate", "Counter", "Property 'count' is invalid type of 'boolean'. Expected 'number'. Check Counter.")

	if len(h.warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(h.warnings))
	}
	w := h.warnings[0]
	if w.Component != "Counter" {
		t.Errorf("expected component Counter, got %q", w.Component)
	}
	if !strings.Contains(w.Message, "invalid type of 'boolean'") {
		t.Errorf("unexpected message %q", w.Message)
	}
}

func TestRecover_ReportsPanic(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	func() {
		defer Recover("test.op")
		panic("deliberate")
	}()

	if len(h.panics) != 1 {
		t.Fatalf("expected 1 panic, got %d", len(h.panics))
	}
	p := h.panics[0]
	if p.Value != "deliberate" {
		t.Errorf("expected panic value 'deliberate', got %v", p.Value)
	}
	if p.StackTrace == "" {
		t.Error("expected StackTrace to be captured")
	}
}

func TestSetHandler_NilRestoresDefault(t *testing.T) {
	SetHandler(&captureHandler{})
	SetHandler(nil)

	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("expected default LogHandler, got %T", DefaultHandler)
	}
}

func TestZapHandler_Warning(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	h := NewZapHandler(zap.New(core))

	h.HandleWarning(&Warning{
		Op:        "props.Validate",
		Message:   "Property 'x' is invalid type of 'string'. Expected 'number'. Check Demo.",
		Component: "Demo",
	})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Level != zap.WarnLevel {
		t.Errorf("expected warn level, got %v", entries[0].Level)
	}
	fields := entries[0].ContextMap()
	if fields["component"] != "Demo" {
		t.Errorf("expected component field Demo, got %v", fields["component"])
	}
}

func TestZapHandler_NilLogger(t *testing.T) {
	h := NewZapHandler(nil)
	// Must not panic.
	h.HandleError(&Error{Op: "x", Err: errors.New("y")})
	h.HandlePanic(&PanicError{Op: "x", Value: "v"})
	h.HandleWarning(nil)
}
