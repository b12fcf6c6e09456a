package errors

import (
	"errors"
	"fmt"
)

// Error is the structured error returned across the engine boundary. It
// carries the taxonomy Kind so the caller can map it to a transport response.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches two engine errors by kind, so errors.Is(err, E(KindX)) works
// without comparing messages.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// E builds an engine error with the kind's default message.
func E(kind Kind) *Error {
	return &Error{Kind: kind, Message: Message(kind)}
}

// Ef builds an engine error with a formatted message.
func Ef(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an engine error around a cause.
func Wrap(kind Kind, err error) *Error {
	return &Error{Kind: kind, Message: Message(kind), Err: err}
}

// KindOf extracts the Kind from an error chain, or empty string if the error
// is not an engine error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
