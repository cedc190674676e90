package menu

import (
	"errors"
	"fmt"
)

// Kind classifies a grid menu error.
type Kind string

const (
	KindInvalidMoveBoundary Kind = "INVALID_MOVE_BOUNDARY"
	KindNoItemInDirection   Kind = "NO_ITEM_IN_DIRECTION"
	KindPageOutOfRange      Kind = "PAGE_OUT_OF_RANGE"
	KindSelectionEmpty      Kind = "SELECTION_EMPTY"
	KindAlreadyFinalized    Kind = "ALREADY_FINALIZED"
	KindUnknownEntry        Kind = "UNKNOWN_ENTRY"
	KindInvalidViewport     Kind = "INVALID_VIEWPORT"
	KindTerminated          Kind = "TERMINATED"
)

// Error is the structured error returned by registry and navigation
// operations. Errors compare equal under errors.Is when their kinds match.
type Error struct {
	Kind    Kind
	Op      string
	Message string
}

// Sentinels for errors.Is.
var (
	ErrInvalidMoveBoundary = &Error{Kind: KindInvalidMoveBoundary}
	ErrNoItemInDirection   = &Error{Kind: KindNoItemInDirection}
	ErrPageOutOfRange      = &Error{Kind: KindPageOutOfRange}
	ErrSelectionEmpty      = &Error{Kind: KindSelectionEmpty}
	ErrAlreadyFinalized    = &Error{Kind: KindAlreadyFinalized}
	ErrUnknownEntry        = &Error{Kind: KindUnknownEntry}
	ErrInvalidViewport     = &Error{Kind: KindInvalidViewport}
	ErrTerminated          = &Error{Kind: KindTerminated}
)

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Message != "":
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Message)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return string(e.Kind)
}

// Is reports whether target carries the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// NewError builds an error of the given kind for op.
func NewError(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

// KindOf extracts the kind from err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsNavigation reports whether err is a recoverable move or selection
// rejection that belongs on the notification line.
func IsNavigation(err error) bool {
	switch KindOf(err) {
	case KindInvalidMoveBoundary, KindNoItemInDirection, KindPageOutOfRange, KindSelectionEmpty:
		return true
	}
	return false
}
