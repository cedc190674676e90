package ui

import (
	"github.com/atomicstack/gridselect/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model[T]) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if sig := m.keys.Match(keyMsg); sig != state.SignalNone {
		return m.handleSignal(sig)
	}
	m.handleTextInput(keyMsg)
	return nil
}

// handleSignal feeds one signal to the session. Cancel first clears a
// pending typeahead query.
func (m *Model[T]) handleSignal(sig state.Signal) tea.Cmd {
	if sig == state.Cancel && m.query != "" {
		m.clearQuery()
		return nil
	}
	m.query = ""
	m.canvas.ClearNotice()
	if m.session.Step(sig) {
		m.quitting = true
		return tea.Quit
	}
	return nil
}
