// Package errors provides structured error reporting for the Loom component
// runtime. Core-detected issues are never raised as blocking faults to
// component authors; they are absorbed or routed through a swappable global
// handler as errors, warnings, or recovered panics.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindProperty indicates a property upgrade or validation issue.
	KindProperty
	// KindLifecycle indicates a lifecycle dispatch issue.
	KindLifecycle
	// KindRender indicates a render or patch issue.
	KindRender
	// KindConfig indicates a configuration loading issue.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindProperty:
		return "property"
	case KindLifecycle:
		return "lifecycle"
	case KindRender:
		return "render"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the Loom runtime.
type Error struct {
	// Op is the operation that failed (e.g., "component.Mount").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// Component is the component class name, if applicable.
	Component string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("%s [%s] component=%s: %v", e.Op, e.Kind, e.Component, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "scheduler.frame").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Warning represents a non-fatal diagnostic. Property type mismatches are
// reported this way: logged, never thrown, and the offending write proceeds.
type Warning struct {
	// Op is the operation that produced the warning (e.g., "props.Validate").
	Op string
	// Message is the complete diagnostic text.
	Message string
	// Component is the component class name, if applicable.
	Component string
	// Timestamp is when the warning was produced.
	Timestamp time.Time
}

func (w *Warning) String() string {
	return w.Message
}

// Handler receives errors, warnings, and panics reported by the runtime.
type Handler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandleWarning is called for non-fatal diagnostics.
	HandleWarning(w *Warning)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
