package menu

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// EntryID identifies an entry within its registry. IDs are never reused.
type EntryID uint64

// Address locates an entry on the grid.
type Address struct {
	Row    int
	Column int
	Page   int
}

// Origin is the first cell of the first page.
var Origin = Address{}

// Less orders addresses by page, then column, then row, which is the order
// addresses are handed out in.
func (a Address) Less(b Address) bool {
	if a.Page != b.Page {
		return a.Page < b.Page
	}
	if a.Column != b.Column {
		return a.Column < b.Column
	}
	return a.Row < b.Row
}

func (a Address) String() string {
	return fmt.Sprintf("(%d,%d,%d)", a.Row, a.Column, a.Page)
}

// Style carries the colours used to draw an entry. Colours are ANSI palette
// indexes ("0"-"255") or hex strings ("#rrggbb"); empty means terminal default.
type Style struct {
	Normal             string
	SelectedForeground string
	SelectedBackground string
}

// DefaultStyle is white text, highlighted as black on dark cyan.
func DefaultStyle() Style {
	return Style{
		Normal:             "15",
		SelectedForeground: "0",
		SelectedBackground: "6",
	}
}

// withDefaults fills empty colours from DefaultStyle.
func (s Style) withDefaults() Style {
	def := DefaultStyle()
	if s.Normal == "" {
		s.Normal = def.Normal
	}
	if s.SelectedForeground == "" {
		s.SelectedForeground = def.SelectedForeground
	}
	if s.SelectedBackground == "" {
		s.SelectedBackground = def.SelectedBackground
	}
	return s
}

// Entry is one selectable item on the grid.
type Entry[T any] struct {
	ID      EntryID
	Value   T
	Caption string
	Address Address
	Style   Style

	ordinal int
}

// CaptionWidth returns the caption's display width in cells.
func (e Entry[T]) CaptionWidth() int {
	return runewidth.StringWidth(e.Caption)
}

// Item describes an entry to add in bulk.
type Item[T any] struct {
	Value   T
	Caption string
	Style   Style
}
