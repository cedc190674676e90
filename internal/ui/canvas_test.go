package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/gridselect/internal/menu"
	"github.com/atomicstack/gridselect/internal/testutil"
	"github.com/atomicstack/gridselect/internal/theme"
	"github.com/atomicstack/gridselect/internal/ui/state"
)

func TestCanvasDrawsSessionGrid(t *testing.T) {
	reg, err := menu.NewRegistry[string](menu.Viewport{Top: 0, Bottom: 1, Width: 20})
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"one", "two", "three"} {
		reg.Add(name, name, menu.Style{})
	}
	c := NewCanvas(20, 5)
	s := NewSession[string](reg, c, c, nil)
	s.Start()

	want := []string{
		"  one      three",
		"  two",
		"",
		"",
		"",
	}
	if got := c.Lines(); strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("unexpected canvas:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestCanvasWarningNotice(t *testing.T) {
	c := NewCanvas(24, 4)
	c.Notify("cannot move left", NoticeWarning)

	lines := c.Lines()
	if lines[2] != "--[ INVALID MOVE ]------" {
		t.Fatalf("unexpected separator %q", lines[2])
	}
	if lines[3] != "CANNOT MOVE LEFT" {
		t.Fatalf("unexpected message %q", lines[3])
	}
	msg, kind, ok := c.Notice()
	if !ok || kind != NoticeWarning || msg != "cannot move left" {
		t.Fatalf("unexpected notice state %q %v %v", msg, kind, ok)
	}

	c.Notify("find: ab", NoticeInfo)
	lines = c.Lines()
	if lines[2] != strings.Repeat("-", 24) || lines[3] != "find: ab" {
		t.Fatalf("unexpected info notice %q / %q", lines[2], lines[3])
	}

	c.ClearNotice()
	if c.String() != "\n\n\n" {
		t.Fatalf("expected blank canvas, got %q", c.String())
	}
}

func TestCanvasClipsAndHandlesWideRunes(t *testing.T) {
	c := NewCanvas(6, 1)
	c.DrawCell(Cell{X: 0, Y: 0, Text: "日本語abc"})
	if got := c.Lines()[0]; got != "日本語" {
		t.Fatalf("expected wide runes clipped to width, got %q", got)
	}
	c.DrawCell(Cell{X: 0, Y: 3, Text: "offscreen"})
	c.ClearRegion(-5, 10)
	if got := c.Lines()[0]; got != "" {
		t.Fatalf("expected cleared row, got %q", got)
	}
}

func TestCanvasHighlightMoves(t *testing.T) {
	reg, _ := menu.NewRegistry[int](menu.Viewport{Top: 0, Bottom: 2, Width: 10})
	reg.Add(1, "a", menu.Style{})
	reg.Add(2, "b", menu.Style{})
	c := NewCanvas(10, 3)
	s := NewSession[int](reg, c, c, nil)
	s.Start()
	if c.rows[0][0].paint != (paint{fg: "0", bg: "6"}) {
		t.Fatalf("expected origin highlighted, got %#v", c.rows[0][0].paint)
	}
	s.Step(state.MoveDown)
	if c.rows[0][0].paint.bg != "" || c.rows[1][0].paint.bg != "6" {
		t.Fatalf("expected highlight on second row, got %#v / %#v", c.rows[0][0].paint, c.rows[1][0].paint)
	}
}

func TestCanvasNoticeAndBannerUseThemeStyles(t *testing.T) {
	styles := theme.Default()
	c := NewCanvas(30, 4)
	c.DrawCell(Cell{X: 0, Y: 0, Row: -1, Column: -1, Text: "keys"})
	if c.rows[0][0].paint.style != styles.Banner {
		t.Fatalf("expected banner style, got %#v", c.rows[0][0].paint)
	}

	c.Notify("cannot move left", NoticeWarning)
	if c.rows[2][0].paint.style != styles.Separator {
		t.Fatalf("expected separator style, got %#v", c.rows[2][0].paint)
	}
	if c.rows[2][2].paint.style != styles.WarningTag {
		t.Fatalf("expected warning tag style, got %#v", c.rows[2][2].paint)
	}
	if c.rows[3][0].paint.style != styles.Warning {
		t.Fatalf("expected warning style, got %#v", c.rows[3][0].paint)
	}

	c.Notify("find: a", NoticeInfo)
	if c.rows[3][0].paint.style != styles.Info {
		t.Fatalf("expected info style, got %#v", c.rows[3][0].paint)
	}
	if c.rows[2][2].paint.style != styles.Separator {
		t.Fatalf("expected plain separator for info notice, got %#v", c.rows[2][2].paint)
	}
}

func TestCanvasRejectedMoveGolden(t *testing.T) {
	reg, err := menu.NewRegistry[string](menu.Viewport{Top: 0, Bottom: 2, Width: 30})
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta"} {
		reg.Add(name, name, menu.Style{})
	}
	c := NewCanvas(30, 6)
	s := NewSession[string](reg, c, c, nil, WithInstructionText[string]("keys"))
	s.Start()
	s.Step(state.MoveLeft)
	testutil.AssertGolden(t, "canvas_warning.txt", c.String())
}
