package ui

import (
	"fmt"
	"unicode"

	"github.com/atomicstack/gridselect/internal/logging/events"
	"github.com/atomicstack/gridselect/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// handleTextInput grows or shrinks the typeahead query and jumps the cursor
// to the best matching caption.
func (m *Model[T]) handleTextInput(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if m.query == "" {
			return false
		}
		runes := []rune(m.query)
		m.query = string(runes[:len(runes)-1])
		m.applyQuery()
		return true
	case tea.KeyCtrlU:
		if m.query == "" {
			return false
		}
		m.clearQuery()
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		m.query += string(msg.Runes)
		m.applyQuery()
		return true
	case tea.KeySpace:
		if m.query == "" {
			return false
		}
		m.query += " "
		m.applyQuery()
		return true
	}
	return false
}

func (m *Model[T]) applyQuery() {
	if m.query == "" {
		m.clearQuery()
		return
	}
	e, ok := state.Locate(m.session.Registry().Entries(), m.query)
	if !ok {
		events.Filter.Miss(m.query)
		m.session.Notify(fmt.Sprintf("find: %s (no match)", m.query), NoticeInfo)
		return
	}
	if err := m.session.JumpTo(e.Address); err != nil {
		m.session.Notify(err.Error(), NoticeWarning)
		return
	}
	events.Filter.Jump(m.query, e.Address.Row, e.Address.Column, e.Address.Page)
	m.session.Notify("find: "+m.query, NoticeInfo)
}

func (m *Model[T]) clearQuery() {
	m.query = ""
	m.canvas.ClearNotice()
	events.Filter.Cleared()
}
