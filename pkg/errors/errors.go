// Package errors provides structured error reporting for the controller.
//
// The animation core has no recoverable errors: drawing and arithmetic
// always succeed. What remains is configuration and bring-up failures, and
// panics escaping an animation routine, which the control loop recovers
// and reports here instead of halting the panel.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid or unreadable configuration.
	KindConfig
	// KindInit indicates a display or platform bring-up failure.
	KindInit
	// KindRender indicates a failure while running an animation.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindInput indicates a malformed simulated input event.
	KindInput
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindInit:
		return "init"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindInput:
		return "input"
	default:
		return "unknown"
	}
}

// ControllerError represents a structured error in the controller.
type ControllerError struct {
	// Op is the operation that failed (e.g., "config.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Animation names the routine that was running, if any.
	Animation string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ControllerError) Error() string {
	if e.Animation != "" {
		return fmt.Sprintf("%s [%s] animation=%s: %v", e.Op, e.Kind, e.Animation, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ControllerError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "controller.Step").
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

// New wraps err as a ControllerError of the given kind.
func New(op string, kind ErrorKind, err error) *ControllerError {
	return &ControllerError{Op: op, Kind: kind, Err: err}
}

// Errorf builds a ControllerError from a format string.
func Errorf(op string, kind ErrorKind, format string, args ...any) *ControllerError {
	return &ControllerError{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// ErrorHandler receives errors reported by the controller.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ControllerError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
