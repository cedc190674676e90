package ui

import (
	"github.com/atomicstack/gridselect/internal/menu"
	"github.com/atomicstack/gridselect/internal/ui/state"
)

// Cell is one drawing instruction. X and Y are absolute screen coordinates;
// Row and Column are the page-local grid position, or -1 for text drawn
// outside the grid such as the instructions banner.
type Cell struct {
	X, Y        int
	Row, Column int
	Text        string
	Style       menu.Style
	Highlighted bool
}

// Renderer draws cells onto a screen region.
type Renderer interface {
	DrawCell(c Cell)
	ClearRegion(top, bottom int)
}

// NoticeKind classifies a notification.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeWarning
)

func (k NoticeKind) String() string {
	if k == NoticeWarning {
		return "warning"
	}
	return "info"
}

// NotificationSink shows a transient message to the user. Rejected moves
// arrive as warnings.
type NotificationSink interface {
	Notify(message string, kind NoticeKind)
}

// InputSource produces the next signal, blocking until one is available.
type InputSource interface {
	Next() (state.Signal, error)
}

// InputFunc adapts a function to InputSource.
type InputFunc func() (state.Signal, error)

func (f InputFunc) Next() (state.Signal, error) {
	return f()
}
