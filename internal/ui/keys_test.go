package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/gridselect/internal/testutil"
	"github.com/atomicstack/gridselect/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func TestDefaultKeyMapMatchesKeys(t *testing.T) {
	keys := DefaultKeyMap()
	cases := []struct {
		msg  tea.KeyMsg
		want state.Signal
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, state.MoveUp},
		{tea.KeyMsg{Type: tea.KeyDown}, state.MoveDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, state.MoveLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, state.MoveRight},
		{tea.KeyMsg{Type: tea.KeyF8}, state.PageForward},
		{tea.KeyMsg{Type: tea.KeyPgDown}, state.PageForward},
		{tea.KeyMsg{Type: tea.KeyF7}, state.PageBack},
		{tea.KeyMsg{Type: tea.KeyEnter}, state.Select},
		{tea.KeyMsg{Type: tea.KeyEsc}, state.Cancel},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, state.Cancel},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, state.SignalNone},
	}
	for _, tc := range cases {
		if got := keys.Match(tc.msg); got != tc.want {
			t.Fatalf("key %q: expected %v, got %v", tc.msg.String(), tc.want, got)
		}
	}
}

func TestKeyMapOverride(t *testing.T) {
	keys, err := DefaultKeyMap().Override(map[string][]string{
		"move_down": {"j", "down"},
		"cancel":    {"q"},
		"page-back": {},
	})
	if err != nil {
		t.Fatalf("override: %v", err)
	}
	if got := keys.SignalFor("j"); got != state.MoveDown {
		t.Fatalf("expected j to move down, got %v", got)
	}
	if got := keys.SignalFor("esc"); got != state.SignalNone {
		t.Fatalf("expected esc to be unbound, got %v", got)
	}
	if got := keys.SignalFor("f7"); got != state.SignalNone {
		t.Fatalf("expected disabled page-back, got %v", got)
	}
	if got := keys.Instructions(); got != "↑/J/←/→ move  F8 page  ENTER select  Q cancel" {
		t.Fatalf("unexpected instructions %q", got)
	}
	if got := DefaultKeyMap().SignalFor("esc"); got != state.Cancel {
		t.Fatalf("override must not mutate the default map, got %v", got)
	}
	if _, err := DefaultKeyMap().Override(map[string][]string{"jump": {"x"}}); err == nil {
		t.Fatalf("expected unknown binding error")
	}
}

func TestDefaultInstructionsMatchKeyMap(t *testing.T) {
	if got := DefaultKeyMap().Instructions(); got != DefaultInstructions {
		t.Fatalf("expected %q, got %q", DefaultInstructions, got)
	}
}

func TestDescribeGolden(t *testing.T) {
	testutil.AssertGolden(t, "keymap_default.txt", strings.Join(DefaultKeyMap().Describe(), "\n")+"\n")
}
