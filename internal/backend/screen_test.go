package backend

import (
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/gridselect/internal/menu"
	"github.com/atomicstack/gridselect/internal/ui"
	"github.com/atomicstack/gridselect/internal/ui/state"
	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, width, height int) (tcell.SimulationScreen, *Screen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	sim.SetSize(width, height)
	t.Cleanup(sim.Fini)
	return sim, New(sim, ui.DefaultKeyMap())
}

func rowText(sim tcell.SimulationScreen, y int) string {
	width, _ := sim.Size()
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := sim.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestDrawCellWritesHighlightedText(t *testing.T) {
	sim, screen := newSimScreen(t, 20, 4)
	screen.DrawCell(ui.Cell{X: 3, Y: 1, Text: "  abc  ", Style: menu.DefaultStyle(), Highlighted: true})

	if got := rowText(sim, 1); got != "     abc" {
		t.Fatalf("unexpected row %q", got)
	}
	_, _, style, _ := sim.GetContent(5, 1)
	fg, bg, _ := style.Decompose()
	if fg != tcell.PaletteColor(0) || bg != tcell.PaletteColor(6) {
		t.Fatalf("expected highlight colours, got fg=%v bg=%v", fg, bg)
	}

	screen.ClearRegion(1, 1)
	if got := rowText(sim, 1); got != "" {
		t.Fatalf("expected cleared row, got %q", got)
	}
}

func TestNotifyWarningUsesBottomRows(t *testing.T) {
	sim, screen := newSimScreen(t, 24, 5)
	screen.Notify("cannot move left", ui.NoticeWarning)
	if got := rowText(sim, 3); got != "--[ INVALID MOVE ]------" {
		t.Fatalf("unexpected separator %q", got)
	}
	if got := rowText(sim, 4); got != "CANNOT MOVE LEFT" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestNextMapsBoundKeys(t *testing.T) {
	sim, screen := newSimScreen(t, 20, 4)
	sim.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, '\r', tcell.ModNone)

	sig, err := screen.Next()
	if err != nil || sig != state.MoveDown {
		t.Fatalf("expected move down, got %v / %v", sig, err)
	}
	sig, err = screen.Next()
	if err != nil || sig != state.Select {
		t.Fatalf("expected unbound rune to be skipped then select, got %v / %v", sig, err)
	}
}

func TestInterruptWakesNext(t *testing.T) {
	_, screen := newSimScreen(t, 20, 4)
	screen.Interrupt()
	sig, err := screen.Next()
	if err != nil || sig != state.SignalNone {
		t.Fatalf("expected interrupt to yield no signal, got %v / %v", sig, err)
	}
}

func TestSessionRunsOnScreen(t *testing.T) {
	sim, screen := newSimScreen(t, 30, 6)
	reg, err := menu.NewRegistry[string](menu.Viewport{Top: 0, Bottom: 2, Width: 30})
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"alpha", "beta", "gamma", "delta"} {
		reg.Add(name, name, menu.Style{})
	}
	var picked string
	s := ui.NewSession[string](reg, screen, screen, screen,
		ui.WithSelectAction(func(v string) {
			picked = v
		}),
	)
	sim.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, '\r', tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	if err := s.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if picked != "delta" {
		t.Fatalf("expected delta, got %q", picked)
	}
	if got := rowText(sim, 0); got != "  alpha    delta" {
		t.Fatalf("unexpected first row %q", got)
	}
}

func TestKeyName(t *testing.T) {
	cases := []struct {
		key  tcell.Key
		r    rune
		mod  tcell.ModMask
		want string
	}{
		{tcell.KeyUp, 0, tcell.ModNone, "up"},
		{tcell.KeyPgDn, 0, tcell.ModNone, "pgdown"},
		{tcell.KeyF8, 0, tcell.ModNone, "f8"},
		{tcell.KeyEscape, 0, tcell.ModNone, "esc"},
		{tcell.KeyRune, 'j', tcell.ModNone, "j"},
		{tcell.KeyRune, 'b', tcell.ModAlt, "alt+b"},
		{tcell.KeyF12, 0, tcell.ModNone, ""},
	}
	for _, tc := range cases {
		if got := keyName(tc.key, tc.r, tc.mod); got != tc.want {
			t.Fatalf("keyName(%v, %q) = %q, want %q", tc.key, tc.r, got, tc.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	if parseColor("") != tcell.ColorDefault {
		t.Fatalf("expected default colour for empty string")
	}
	if parseColor("6") != tcell.PaletteColor(6) {
		t.Fatalf("expected palette colour 6")
	}
	if parseColor("#ff0000") != tcell.NewRGBColor(255, 0, 0) {
		t.Fatalf("expected rgb colour")
	}
}

func TestOpenPropagatesScreenErrors(t *testing.T) {
	orig := newScreen
	t.Cleanup(func() { newScreen = orig })
	boom := errors.New("no tty")
	newScreen = func() (tcell.Screen, error) { return nil, boom }
	if _, err := Open(ui.DefaultKeyMap()); !errors.Is(err, boom) {
		t.Fatalf("expected %v, got %v", boom, err)
	}
}
