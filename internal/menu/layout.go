package menu

import "fmt"

// CaptionPadding is the space reserved around each caption for the
// selection highlight: two cells either side.
const CaptionPadding = 4

// Viewport is the block of screen rows and columns available to the grid.
// Top and Bottom are inclusive absolute screen rows.
type Viewport struct {
	Top    int
	Bottom int
	Width  int
}

// Rows returns the number of rows between Top and Bottom inclusive.
func (v Viewport) Rows() int {
	return v.Bottom - v.Top + 1
}

// Validate reports whether the viewport can hold at least one cell.
func (v Viewport) Validate() error {
	if v.Top < 0 {
		return NewError(KindInvalidViewport, "viewport", fmt.Sprintf("top must be >= 0 (got %d)", v.Top))
	}
	if v.Bottom < v.Top {
		return NewError(KindInvalidViewport, "viewport", fmt.Sprintf("bottom %d is above top %d", v.Bottom, v.Top))
	}
	if v.Width <= 0 {
		return NewError(KindInvalidViewport, "viewport", fmt.Sprintf("width must be > 0 (got %d)", v.Width))
	}
	return nil
}

// Layout holds the derived grid geometry.
type Layout struct {
	Viewport    Viewport
	ColumnWidth int
	Columns     int
	RowsPerPage int
	PageCount   int
}

// ComputeLayout derives the grid geometry for a viewport, the widest caption
// (in cells) and the number of occupied insertion slots.
func ComputeLayout(v Viewport, maxCaption, slots int) Layout {
	l := Layout{Viewport: v, RowsPerPage: v.Rows()}
	if l.RowsPerPage < 1 {
		l.RowsPerPage = 1
	}
	if slots > 0 {
		l.ColumnWidth = maxCaption + CaptionPadding
		l.Columns = v.Width / l.ColumnWidth
	}
	if l.Columns < 1 {
		l.Columns = 1
	}
	perPage := l.ItemsPerPage()
	if slots <= perPage {
		l.PageCount = 1
	} else {
		l.PageCount = (slots + perPage - 1) / perPage
	}
	return l
}

// ItemsPerPage returns the number of cells on one page.
func (l Layout) ItemsPerPage() int {
	return l.Columns * l.RowsPerPage
}

// AddressOf maps an insertion slot to its grid address, filling rows first,
// then columns, then pages.
func (l Layout) AddressOf(ordinal int) Address {
	perPage := l.ItemsPerPage()
	if perPage <= 0 || ordinal < 0 {
		return Origin
	}
	rest := ordinal % perPage
	return Address{
		Row:    rest % l.RowsPerPage,
		Column: rest / l.RowsPerPage,
		Page:   ordinal / perPage,
	}
}

// Contains reports whether addr lies inside the grid.
func (l Layout) Contains(addr Address) bool {
	return addr.Row >= 0 && addr.Row < l.RowsPerPage &&
		addr.Column >= 0 && addr.Column < l.Columns &&
		addr.Page >= 0 && addr.Page < l.PageCount
}

// ScreenPosition converts a page-local address into absolute screen
// coordinates.
func (l Layout) ScreenPosition(addr Address) (x, y int) {
	return addr.Column * l.ColumnWidth, l.Viewport.Top + addr.Row
}

// CellWidth returns the width available to one drawn cell, clamped to the
// viewport.
func (l Layout) CellWidth() int {
	if l.ColumnWidth > l.Viewport.Width || l.ColumnWidth == 0 {
		return l.Viewport.Width
	}
	return l.ColumnWidth
}
