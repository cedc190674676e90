package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/atomicstack/gridselect/internal/format/table"
	"github.com/atomicstack/gridselect/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap binds key names to signals. Key names follow Bubble Tea's
// tea.KeyMsg.String() spelling ("up", "pgdown", "ctrl+c", "a").
type KeyMap struct {
	bindings map[state.Signal]key.Binding
}

var signalHelp = map[state.Signal]string{
	state.MoveUp:      "move up",
	state.MoveDown:    "move down",
	state.MoveLeft:    "move left",
	state.MoveRight:   "move right",
	state.PageForward: "next page",
	state.PageBack:    "previous page",
	state.Select:      "select entry",
	state.Cancel:      "cancel",
}

// DefaultKeyMap uses the arrow keys, F7/F8 or PgUp/PgDn for paging, Enter to
// select and Esc to cancel. Letters are left free for typeahead.
func DefaultKeyMap() KeyMap {
	return KeyMap{bindings: map[state.Signal]key.Binding{
		state.MoveUp:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", signalHelp[state.MoveUp])),
		state.MoveDown:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", signalHelp[state.MoveDown])),
		state.MoveLeft:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", signalHelp[state.MoveLeft])),
		state.MoveRight:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", signalHelp[state.MoveRight])),
		state.PageForward: key.NewBinding(key.WithKeys("f8", "pgdown"), key.WithHelp("f8", signalHelp[state.PageForward])),
		state.PageBack:    key.NewBinding(key.WithKeys("f7", "pgup"), key.WithHelp("f7", signalHelp[state.PageBack])),
		state.Select:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", signalHelp[state.Select])),
		state.Cancel:      key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", signalHelp[state.Cancel])),
	}}
}

// Override replaces the keys of the named signals. An empty key list
// disables the signal.
func (k KeyMap) Override(overrides map[string][]string) (KeyMap, error) {
	out := KeyMap{bindings: make(map[state.Signal]key.Binding, len(k.bindings))}
	for sig, b := range k.bindings {
		out.bindings[sig] = b
	}
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		sig, ok := state.ParseSignal(name)
		if !ok {
			return k, fmt.Errorf("unknown key binding %q", name)
		}
		keys := overrides[name]
		b := out.bindings[sig]
		if len(keys) == 0 {
			b.SetEnabled(false)
			out.bindings[sig] = b
			continue
		}
		b.SetKeys(keys...)
		b.SetHelp(keys[0], signalHelp[sig])
		b.SetEnabled(true)
		out.bindings[sig] = b
	}
	return out, nil
}

// Match returns the signal bound to msg, or state.SignalNone.
func (k KeyMap) Match(msg tea.KeyMsg) state.Signal {
	for _, sig := range state.Signals() {
		if b, ok := k.bindings[sig]; ok && key.Matches(msg, b) {
			return sig
		}
	}
	return state.SignalNone
}

// SignalFor resolves a key name for frontends that do not produce tea.KeyMsg
// values.
func (k KeyMap) SignalFor(name string) state.Signal {
	for _, sig := range state.Signals() {
		b, ok := k.bindings[sig]
		if !ok || !b.Enabled() {
			continue
		}
		if slices.Contains(b.Keys(), name) {
			return sig
		}
	}
	return state.SignalNone
}

// Instructions renders the banner text for the current bindings.
func (k KeyMap) Instructions() string {
	groups := []struct {
		label   string
		signals []state.Signal
	}{
		{"move", []state.Signal{state.MoveUp, state.MoveDown, state.MoveLeft, state.MoveRight}},
		{"page", []state.Signal{state.PageBack, state.PageForward}},
		{"select", []state.Signal{state.Select}},
		{"cancel", []state.Signal{state.Cancel}},
	}
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		var keys []string
		for _, sig := range g.signals {
			if b, ok := k.bindings[sig]; ok && b.Enabled() {
				keys = append(keys, b.Help().Key)
			}
		}
		if len(keys) == 0 {
			continue
		}
		parts = append(parts, strings.ToUpper(strings.Join(keys, "/"))+" "+g.label)
	}
	return strings.Join(parts, "  ")
}

// Describe lists every binding as aligned "signal  keys  help" rows.
func (k KeyMap) Describe() []string {
	rows := make([][]string, 0, len(k.bindings))
	for _, sig := range state.Signals() {
		b, ok := k.bindings[sig]
		if !ok {
			continue
		}
		keys := strings.Join(b.Keys(), ", ")
		if !b.Enabled() {
			keys = "(disabled)"
		}
		rows = append(rows, []string{sig.String(), keys, signalHelp[sig]})
	}
	lines := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignLeft})
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}
