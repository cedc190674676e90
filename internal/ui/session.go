package ui

import (
	"fmt"
	"sync/atomic"

	"github.com/atomicstack/gridselect/internal/logging/events"
	"github.com/atomicstack/gridselect/internal/menu"
	"github.com/atomicstack/gridselect/internal/ui/command"
	"github.com/atomicstack/gridselect/internal/ui/state"
)

// DefaultInstructions is the banner shown below the grid when instructions
// are enabled without custom text.
const DefaultInstructions = "↑/↓/←/→ move  F7/F8 page  ENTER select  ESC cancel"

const emptyNotice = "nothing to select"

type options[T any] struct {
	banner   string
	onSelect func(T)
	onCancel func()
	bus      *command.Bus
}

// Option configures a Session.
type Option[T any] func(*options[T])

// WithInstructions toggles the instructions banner.
func WithInstructions[T any](enabled bool) Option[T] {
	return func(o *options[T]) {
		if enabled {
			if o.banner == "" {
				o.banner = DefaultInstructions
			}
			return
		}
		o.banner = ""
	}
}

// WithInstructionText enables the banner with custom text.
func WithInstructionText[T any](text string) Option[T] {
	return func(o *options[T]) {
		o.banner = text
	}
}

// WithSelectAction runs fn with the value of every selected entry.
func WithSelectAction[T any](fn func(T)) Option[T] {
	return func(o *options[T]) {
		o.onSelect = fn
	}
}

// WithCancelAction runs fn once when the session is cancelled.
func WithCancelAction[T any](fn func()) Option[T] {
	return func(o *options[T]) {
		o.onCancel = fn
	}
}

// WithCommandBus routes actions through bus instead of a private one.
func WithCommandBus[T any](bus *command.Bus) Option[T] {
	return func(o *options[T]) {
		o.bus = bus
	}
}

// Session ties a registry to its renderer, notification sink and input
// source, and runs the interactive loop. A Session is driven from a single
// goroutine; only Break may be called concurrently.
type Session[T any] struct {
	reg      *menu.Registry[T]
	renderer Renderer
	sink     NotificationSink
	input    InputSource
	opts     options[T]

	nav     *state.Navigator[T]
	driver  *Driver[T]
	started bool
	broken  atomic.Bool

	selected    menu.Entry[T]
	hasSelected bool
}

// NewSession prepares a session. The registry is finalized on Start.
func NewSession[T any](reg *menu.Registry[T], renderer Renderer, sink NotificationSink, input InputSource, opts ...Option[T]) *Session[T] {
	s := &Session[T]{reg: reg, renderer: renderer, sink: sink, input: input}
	for _, opt := range opts {
		if opt != nil {
			opt(&s.opts)
		}
	}
	if s.opts.bus == nil {
		s.opts.bus = command.New()
	}
	return s
}

func (s *Session[T]) prepare() {
	if s.nav != nil {
		return
	}
	s.nav = state.NewNavigator(s.reg)
	s.driver = NewDriver(s.reg, s.renderer, s.sink, s.opts.banner)
}

// Start finalizes the registry and draws the first page. An empty registry
// produces an informational notice instead. Calling Start twice is a no-op.
func (s *Session[T]) Start() {
	s.prepare()
	if s.started {
		return
	}
	s.started = true
	layout := s.nav.Layout()
	events.Session.Start(s.reg.Len(), layout.PageCount)
	cursor, ok := s.nav.Cursor()
	if !ok {
		s.driver.Inform(emptyNotice)
		return
	}
	s.driver.DrawPage(cursor.Page, cursor, true)
}

// Run starts the session and feeds signals from the input source until the
// session is cancelled, broken, or the input fails. An empty registry returns
// immediately without reading input.
func (s *Session[T]) Run() error {
	s.Start()
	if _, ok := s.nav.Cursor(); !ok {
		s.nav.Terminate()
		events.Session.End(events.SessionReasonEmpty, nil)
		return nil
	}
	for {
		if s.broken.Load() {
			s.nav.Terminate()
			events.Session.End(events.SessionReasonBreak, nil)
			return nil
		}
		if s.nav.Terminated() {
			return nil
		}
		sig, err := s.input.Next()
		if err != nil {
			s.nav.Terminate()
			events.Session.End(events.SessionReasonInput, err)
			return fmt.Errorf("read input: %w", err)
		}
		s.Step(sig)
	}
}

// Step processes one signal and reports whether the session has ended.
// Rejected signals produce one warning and leave the display untouched. A
// signal read before Break was observed is still applied; the break ends the
// loop on its next iteration.
func (s *Session[T]) Step(sig state.Signal) bool {
	s.Start()
	if s.nav.Terminated() {
		return true
	}
	if sig == state.SignalNone {
		if s.broken.Load() {
			s.nav.Terminate()
			return true
		}
		return false
	}
	events.Session.Signal(sig.String())
	change, err := s.nav.Apply(sig)
	if err != nil {
		s.driver.Report(err)
		return s.Terminated()
	}
	switch change.Kind {
	case state.ChangeCell, state.ChangePage:
		s.driver.Apply(change)
	case state.ChangeSelect:
		s.selected, s.hasSelected = change.Entry, true
		entry := change.Entry
		var handler func()
		if s.opts.onSelect != nil {
			handler = func() { s.opts.onSelect(entry.Value) }
		}
		s.opts.bus.Run(command.Request{ID: "select", Label: entry.Caption, Handler: handler})
	case state.ChangeCancel:
		s.opts.bus.Run(command.Request{ID: "cancel", Handler: s.opts.onCancel})
		events.Session.End(events.SessionReasonCancel, nil)
	}
	return s.Terminated()
}

// Break asks the loop to stop at its next iteration. Safe for concurrent use.
func (s *Session[T]) Break() {
	s.broken.Store(true)
}

// Terminated reports whether the session has ended.
func (s *Session[T]) Terminated() bool {
	if s.broken.Load() {
		return true
	}
	return s.nav != nil && s.nav.Terminated()
}

// SelectedValue returns the most recently selected value.
func (s *Session[T]) SelectedValue() (T, bool) {
	return s.selected.Value, s.hasSelected
}

// Selected returns the most recently selected entry.
func (s *Session[T]) Selected() (menu.Entry[T], bool) {
	return s.selected, s.hasSelected
}

// Cursor returns the cursor address.
func (s *Session[T]) Cursor() (menu.Address, bool) {
	s.prepare()
	return s.nav.Cursor()
}

// Current returns the entry under the cursor.
func (s *Session[T]) Current() (menu.Entry[T], bool) {
	s.prepare()
	return s.nav.Current()
}

// Layout returns the frozen layout.
func (s *Session[T]) Layout() menu.Layout {
	s.prepare()
	return s.nav.Layout()
}

// Registry returns the session's registry.
func (s *Session[T]) Registry() *menu.Registry[T] {
	return s.reg
}

// SelectByID moves the cursor onto the entry with id, redrawing when the
// session has started.
func (s *Session[T]) SelectByID(id menu.EntryID) error {
	s.prepare()
	e, ok := s.reg.ByID(id)
	if !ok {
		return menu.NewError(menu.KindUnknownEntry, "select-by-id", fmt.Sprintf("no entry with id %d", id))
	}
	return s.JumpTo(e.Address)
}

// JumpTo moves the cursor onto the entry at addr.
func (s *Session[T]) JumpTo(addr menu.Address) error {
	s.prepare()
	change, err := s.nav.JumpTo(addr)
	if err != nil {
		return err
	}
	if s.started {
		s.driver.Apply(change)
	}
	return nil
}

// Notify forwards message to the session's sink.
func (s *Session[T]) Notify(message string, kind NoticeKind) {
	if s.sink != nil {
		s.sink.Notify(message, kind)
	}
}
