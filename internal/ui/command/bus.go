package command

import (
	"github.com/atomicstack/gridselect/internal/logging"
	"github.com/atomicstack/gridselect/internal/logging/events"
)

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler func()
}

// Bus runs select and cancel actions on behalf of a session.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Run invokes the request's handler on the caller's goroutine while emitting
// trace logs. A panicking handler is logged and reported as false.
func (b *Bus) Run(req Request) (ok bool) {
	events.Command.Queue(req.ID, req.Label)
	if req.Handler == nil {
		events.Command.Skip(req.ID, req.Label)
		return true
	}
	defer func() {
		if r := recover(); r != nil {
			logging.Error(&panicError{id: req.ID, value: r})
			ok = false
		}
	}()
	req.Handler()
	events.Command.Done(req.ID, req.Label)
	return true
}
