package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the UI model programmatically for integration tests.
type Harness[T any] struct {
	model *Model[T]
	quit  bool
}

// NewHarness creates a harness for the provided model and runs its Init
// command.
func NewHarness[T any](model *Model[T]) *Harness[T] {
	h := &Harness[T]{model: model}
	if model != nil {
		h.processCmd(model.Init())
	}
	return h
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness[T]) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model[T]); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

// Keys sends one key message per key type.
func (h *Harness[T]) Keys(types ...tea.KeyType) {
	for _, t := range types {
		h.Send(tea.KeyMsg{Type: t})
	}
}

// Type sends text as a single runes key message.
func (h *Harness[T]) Type(text string) {
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func (h *Harness[T]) processCmd(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			h.quit = true
			return
		}
		mdl, next := h.model.Update(msg)
		if updated, ok := mdl.(*Model[T]); ok {
			h.model = updated
		}
		cmd = next
	}
}

// Quit reports whether the model asked the program to exit.
func (h *Harness[T]) Quit() bool {
	return h.quit
}

// View returns the current view string.
func (h *Harness[T]) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness[T]) Model() *Model[T] {
	return h.model
}
