package ui

import (
	"strings"

	"github.com/atomicstack/gridselect/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// WarningTag labels the separator above a warning notice.
const WarningTag = "[ INVALID MOVE ]"

// paint is either raw cell colours or one of the shared theme styles.
type paint struct {
	fg, bg string
	bold   bool
	style  *lipgloss.Style
}

type glyph struct {
	r     rune
	paint paint
	// cont marks the trailing column of a double-width rune.
	cont bool
}

var blank = glyph{r: ' '}

// Canvas is an in-memory screen. It implements Renderer and NotificationSink
// and keeps the last two rows for notices.
type Canvas struct {
	width, height int
	rows          [][]glyph
	styles        *theme.Styles

	notice     string
	noticeKind NoticeKind
	hasNotice  bool
}

// NewCanvas allocates a blank canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c := &Canvas{width: width, height: height, styles: theme.Default()}
	c.rows = make([][]glyph, height)
	for y := range c.rows {
		c.rows[y] = blankRow(width)
	}
	return c
}

func blankRow(width int) []glyph {
	row := make([]glyph, width)
	for x := range row {
		row[x] = blank
	}
	return row
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// DrawCell implements Renderer. Cells outside the grid, such as the
// instructions banner, use the theme's banner style.
func (c *Canvas) DrawCell(cell Cell) {
	p := paint{fg: cell.Style.Normal}
	switch {
	case cell.Row < 0:
		p = paint{style: c.styles.Banner}
	case cell.Highlighted:
		p = paint{fg: cell.Style.SelectedForeground, bg: cell.Style.SelectedBackground}
	}
	c.write(cell.X, cell.Y, cell.Text, p)
}

// ClearRegion implements Renderer.
func (c *Canvas) ClearRegion(top, bottom int) {
	if top < 0 {
		top = 0
	}
	if bottom > c.height-1 {
		bottom = c.height - 1
	}
	for y := top; y <= bottom; y++ {
		c.rows[y] = blankRow(c.width)
	}
}

// Notify implements NotificationSink. Warnings get a tagged separator line
// above the message.
func (c *Canvas) Notify(message string, kind NoticeKind) {
	c.ClearNotice()
	c.notice, c.noticeKind, c.hasNotice = message, kind, true
	msgY := c.height - 1
	sepY := c.height - 2
	if sepY >= 0 {
		c.write(0, sepY, strings.Repeat("-", c.width), paint{style: c.styles.Separator})
		if kind == NoticeWarning {
			c.write(2, sepY, WarningTag, paint{style: c.styles.WarningTag})
		}
	}
	if kind == NoticeWarning {
		c.write(0, msgY, strings.ToUpper(message), paint{style: c.styles.Warning})
		return
	}
	c.write(0, msgY, message, paint{style: c.styles.Info})
}

// ClearNotice blanks the notice rows.
func (c *Canvas) ClearNotice() {
	c.hasNotice = false
	c.notice = ""
	top := c.height - 2
	if top < 0 {
		top = 0
	}
	c.ClearRegion(top, c.height-1)
}

// Notice returns the last notice shown, if it is still on screen.
func (c *Canvas) Notice() (string, NoticeKind, bool) {
	return c.notice, c.noticeKind, c.hasNotice
}

func (c *Canvas) write(x, y int, text string, p paint) {
	if y < 0 || y >= c.height || x < 0 {
		return
	}
	row := c.rows[y]
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > c.width {
			break
		}
		row[x] = glyph{r: r, paint: p}
		if w == 2 {
			row[x+1] = glyph{paint: p, cont: true}
		}
		x += w
	}
}

// Lines returns the plain text of every row with trailing spaces removed.
func (c *Canvas) Lines() []string {
	out := make([]string, c.height)
	for y, row := range c.rows {
		var b strings.Builder
		for _, g := range row {
			if g.cont {
				continue
			}
			b.WriteRune(g.r)
		}
		out[y] = strings.TrimRight(b.String(), " ")
	}
	return out
}

// String joins Lines with newlines.
func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

// Render returns the canvas with colours applied through Lip Gloss.
func (c *Canvas) Render() string {
	lines := make([]string, c.height)
	for y, row := range c.rows {
		end := len(row)
		for end > 0 && row[end-1] == blank {
			end--
		}
		var b strings.Builder
		var run strings.Builder
		current := paint{}
		flush := func() {
			if run.Len() == 0 {
				return
			}
			switch {
			case current.style != nil:
				b.WriteString(current.style.Render(run.String()))
			case current == (paint{}):
				b.WriteString(run.String())
			default:
				b.WriteString(theme.Paint(current.fg, current.bg, current.bold).Render(run.String()))
			}
			run.Reset()
		}
		for _, g := range row[:end] {
			if g.cont {
				continue
			}
			if g.paint != current {
				flush()
				current = g.paint
			}
			run.WriteRune(g.r)
		}
		flush()
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
