// Package errors provides structured error handling for felt.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInit indicates an initialization error.
	KindInit
	// KindRender indicates a rendering error not tied to a GPU resource.
	KindRender
	// KindSurface indicates the presentation surface was lost or outdated.
	KindSurface
	// KindDevice indicates the GPU device was lost.
	KindDevice
	// KindMemory indicates the render target ran out of memory.
	KindMemory
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindConfig indicates invalid configuration.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindInit:
		return "init"
	case KindRender:
		return "render"
	case KindSurface:
		return "surface"
	case KindDevice:
		return "device"
	case KindMemory:
		return "memory"
	case KindPanic:
		return "panic"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// FeltError is a structured error carrying the failed operation and its
// category.
type FeltError struct {
	// Op is the operation that failed (e.g., "render.Submit").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FeltError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FeltError) Unwrap() error {
	return e.Err
}

// New returns a FeltError for op with the current time.
func New(op string, kind ErrorKind, err error) *FeltError {
	return &FeltError{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// KindOf returns the kind of the first FeltError in err's chain, or
// KindUnknown.
func KindOf(err error) ErrorKind {
	var fe *FeltError
	if stderrors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "render.Render").
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

// ErrorHandler receives errors reported by felt.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *FeltError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
