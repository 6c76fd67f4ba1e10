package lang

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Predefined errors (sentinel values).
//
// Errors returned by this package are derived from these values with
// [Error.Wrap], [Error.Wrapf] and [Error.With], and still match them with
// [errors.Is].
var (
	// Syntax errors, detected before any statement executes.
	ErrSyntax      = NewError("syntax error")
	ErrNumberRange = NewError("number literal out of range")

	// Runtime errors, fatal to the running program.
	ErrUndefinedVariable  = NewError("undefined variable")
	ErrUndefinedFunction  = NewError("undefined function")
	ErrNotCallable        = NewError("not callable")
	ErrTypeMismatch       = NewError("type mismatch")
	ErrDivisionByZero     = NewError("division by zero")
	ErrArithmeticOverflow = NewError("arithmetic overflow")
	ErrMaxDepthExceeded   = NewError("maximum call depth exceeded")

	// ErrInvalidValue is returned by [ValueOf] for unsupported host values.
	ErrInvalidValue = NewError("invalid value")
)

var (
	syntaxErrors  = []error{ErrSyntax, ErrNumberRange}
	runtimeErrors = []error{
		ErrUndefinedVariable,
		ErrUndefinedFunction,
		ErrNotCallable,
		ErrTypeMismatch,
		ErrDivisionByZero,
		ErrArithmeticOverflow,
		ErrMaxDepthExceeded,
	}
)

// IsSyntaxError reports whether err was produced while tokenizing or parsing.
func IsSyntaxError(err error) bool { return isAny(err, syntaxErrors) }

// IsRuntimeError reports whether err was produced while executing a program.
func IsRuntimeError(err error) bool { return isAny(err, runtimeErrors) }

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
	root  *Error      // Sentinel this error derives from
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	e := &Error{msg: msg}
	e.root = e

	return e
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && e.root != nil && t.root == e.root
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
		root:  e.root,
	}
}

// Wrapf creates a new Error wrapping a formatted message.
func (e *Error) Wrapf(format string, args ...any) *Error {
	return e.Wrap(fmt.Errorf(format, args...))
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
		root:  e.root,
	}
}

// Attrs returns a copy of the structured attributes attached to e.
func (e *Error) Attrs() []slog.Attr {
	return append([]slog.Attr(nil), e.attrs...)
}
