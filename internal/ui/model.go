package ui

import (
	"reflect"

	tea "github.com/charmbracelet/bubbletea"
)

type msgHandler func(tea.Msg) tea.Cmd

// BreakMsg stops the program from outside, the Bubble Tea counterpart of
// Session.Break.
type BreakMsg struct{}

// Model implements the Bubble Tea model over a Session drawing onto a Canvas.
type Model[T any] struct {
	session  *Session[T]
	canvas   *Canvas
	keys     KeyMap
	query    string
	width    int
	height   int
	quitting bool

	handlers map[reflect.Type]msgHandler
}

// NewModel starts session on canvas and wires the key map.
func NewModel[T any](session *Session[T], canvas *Canvas, keys KeyMap) *Model[T] {
	m := &Model[T]{session: session, canvas: canvas, keys: keys}
	m.width, m.height = canvas.Size()
	session.Start()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface. An empty menu quits at once.
func (m *Model[T]) Init() tea.Cmd {
	if _, ok := m.session.Cursor(); !ok {
		m.quitting = true
		return tea.Quit
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model[T]) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(BreakMsg{}):          m.handleBreakMsg,
	}
}

func (m *Model[T]) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model[T]) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width, m.height = size.Width, size.Height
	return nil
}

func (m *Model[T]) handleBreakMsg(tea.Msg) tea.Cmd {
	m.session.Break()
	m.quitting = true
	return tea.Quit
}

// Session exposes the underlying session.
func (m *Model[T]) Session() *Session[T] {
	return m.session
}

// Query returns the pending typeahead text.
func (m *Model[T]) Query() string {
	return m.query
}
