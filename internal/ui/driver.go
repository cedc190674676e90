package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/gridselect/internal/menu"
	"github.com/atomicstack/gridselect/internal/theme"
	"github.com/atomicstack/gridselect/internal/ui/state"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const truncationTail = "…"

// Driver turns navigator changes into renderer calls. It never holds cursor
// state of its own.
type Driver[T any] struct {
	reg      *menu.Registry[T]
	layout   menu.Layout
	renderer Renderer
	sink     NotificationSink
	banner   string
}

// NewDriver binds a finalized registry to its renderer and sink. An empty
// banner disables the instructions row.
func NewDriver[T any](reg *menu.Registry[T], renderer Renderer, sink NotificationSink, banner string) *Driver[T] {
	return &Driver[T]{
		reg:      reg,
		layout:   reg.Layout(),
		renderer: renderer,
		sink:     sink,
		banner:   banner,
	}
}

// DrawPage clears the viewport and draws every entry on page, highlighting
// the one at cursor.
func (d *Driver[T]) DrawPage(page int, cursor menu.Address, hasCursor bool) {
	v := d.layout.Viewport
	d.renderer.ClearRegion(v.Top, v.Bottom)
	for _, e := range d.reg.Page(page) {
		d.DrawEntry(e, hasCursor && e.Address == cursor)
	}
	d.drawBanner(page)
}

// DrawEntry draws a single cell.
func (d *Driver[T]) DrawEntry(e menu.Entry[T], highlighted bool) {
	x, y := d.layout.ScreenPosition(e.Address)
	d.renderer.DrawCell(Cell{
		X:           x,
		Y:           y,
		Row:         e.Address.Row,
		Column:      e.Address.Column,
		Text:        d.cellText(e.Caption),
		Style:       e.Style,
		Highlighted: highlighted,
	})
}

// Apply redraws what change touched: two cells for a cell move, the whole
// page for a page turn. Select and cancel draw nothing.
func (d *Driver[T]) Apply(change state.Change[T]) {
	switch change.Kind {
	case state.ChangeCell:
		if prev, ok := d.reg.ByAddress(change.From); ok && change.From != change.To {
			d.DrawEntry(prev, false)
		}
		d.DrawEntry(change.Entry, true)
	case state.ChangePage:
		d.DrawPage(change.To.Page, change.To, true)
	}
}

// Report surfaces a rejected signal as exactly one warning.
func (d *Driver[T]) Report(err error) {
	if err == nil || d.sink == nil {
		return
	}
	var menuErr *menu.Error
	if errors.As(err, &menuErr) && menuErr.Message != "" {
		d.sink.Notify(menuErr.Message, NoticeWarning)
		return
	}
	d.sink.Notify(err.Error(), NoticeWarning)
}

// Inform shows an informational notice.
func (d *Driver[T]) Inform(message string) {
	if d.sink != nil {
		d.sink.Notify(message, NoticeInfo)
	}
}

func (d *Driver[T]) cellText(caption string) string {
	width := d.layout.CellWidth()
	text := strings.Repeat(" ", menu.CaptionPadding/2) + caption
	if runewidth.StringWidth(text) > width {
		text = truncate.StringWithTail(text, uint(width), truncationTail)
	}
	return runewidth.FillRight(text, width)
}

func (d *Driver[T]) drawBanner(page int) {
	if d.banner == "" {
		return
	}
	v := d.layout.Viewport
	y := v.Bottom + 1
	d.renderer.ClearRegion(y, y)
	text := d.banner
	if d.layout.PageCount > 1 {
		text = fmt.Sprintf("%s  page %d/%d", text, page+1, d.layout.PageCount)
	}
	if runewidth.StringWidth(text) > v.Width {
		text = truncate.StringWithTail(text, uint(v.Width), truncationTail)
	}
	x := (v.Width - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	d.renderer.DrawCell(Cell{
		X:      x,
		Y:      y,
		Row:    -1,
		Column: -1,
		Text:   text,
		Style:  menu.Style{Normal: theme.DefaultPalette().Banner},
	})
}
