// Package errors defines the kind-typed errors shared by every finchart
// package. Each public operation in the library returns either a result or
// one of the kinds declared here; callers branch on the kind, never on the
// message text.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Kind classifies an error returned by the library.
type Kind string

const (
	// KindMissingColumn means a required semantic role could not be
	// resolved against the input table.
	KindMissingColumn Kind = "MISSING_COLUMN"
	// KindInvalidInput means the input data violates an operation's
	// preconditions (empty series, non-positive equity, length mismatch).
	KindInvalidInput Kind = "INVALID_INPUT"
	// KindInvalidWindow means a rolling window size is non-positive or
	// exceeds the series length.
	KindInvalidWindow Kind = "INVALID_WINDOW"
	// KindUnsupportedOption means an enumerated option carries a value the
	// library does not recognize.
	KindUnsupportedOption Kind = "UNSUPPORTED_OPTION"
)

// Error is the concrete error type returned by all finchart operations.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap allows errors.Is and errors.As to reach the cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an error of the given kind.
func New(kind Kind, message string, cause error) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

// NewMissingColumn reports that none of the candidate columns for a semantic
// role are present in the input table.
func NewMissingColumn(role string, candidates []string) *Error {
	return New(KindMissingColumn,
		fmt.Sprintf("no column for role %q; tried: %s", role, strings.Join(candidates, ", ")),
		nil)
}

// NewInvalidInput reports input data that violates an operation's
// preconditions.
func NewInvalidInput(message string) *Error {
	return New(KindInvalidInput, message, nil)
}

// NewInvalidWindow reports an unusable rolling window size.
func NewInvalidWindow(window, length int) *Error {
	return New(KindInvalidWindow,
		fmt.Sprintf("window %d is not in [1, %d]", window, length),
		nil)
}

// NewUnsupportedOption reports an enumerated option value the library does
// not recognize.
func NewUnsupportedOption(option, value string) *Error {
	return New(KindUnsupportedOption,
		fmt.Sprintf("unsupported %s: %q", option, value),
		nil)
}

// KindOf returns the kind carried by err, or the empty kind when err is not
// a library error.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind anywhere in its chain.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
