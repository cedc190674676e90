package state

import (
	"fmt"

	"github.com/atomicstack/gridselect/internal/logging/events"
	"github.com/atomicstack/gridselect/internal/menu"
)

// Phase is the navigator's lifecycle state.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseTerminated
)

// ChangeKind describes what an accepted signal did to the display.
type ChangeKind int

const (
	ChangeNone ChangeKind = iota
	ChangeCell
	ChangePage
	ChangeSelect
	ChangeCancel
)

// Change is the outcome of an accepted signal. For ChangeCell only the From
// and To cells need redrawing; ChangePage needs the whole page at To.Page.
type Change[T any] struct {
	Kind  ChangeKind
	From  menu.Address
	To    menu.Address
	Entry menu.Entry[T]
}

// Navigator owns the cursor over a finalized registry.
type Navigator[T any] struct {
	reg       *menu.Registry[T]
	layout    menu.Layout
	cursor    menu.Address
	hasCursor bool
	phase     Phase
}

// NewNavigator finalizes reg and places the cursor on the origin cell, or on
// the lowest occupied address when the origin is empty.
func NewNavigator[T any](reg *menu.Registry[T]) *Navigator[T] {
	n := &Navigator[T]{reg: reg, layout: reg.Finalize()}
	if e, ok := reg.ByAddress(menu.Origin); ok {
		n.cursor, n.hasCursor = e.Address, true
	} else if entries := reg.Entries(); len(entries) > 0 {
		n.cursor, n.hasCursor = entries[0].Address, true
	}
	return n
}

// Layout returns the frozen layout.
func (n *Navigator[T]) Layout() menu.Layout {
	return n.layout
}

// Cursor returns the cursor address; ok is false for an empty registry.
func (n *Navigator[T]) Cursor() (addr menu.Address, ok bool) {
	return n.cursor, n.hasCursor
}

// Page returns the page the cursor is on.
func (n *Navigator[T]) Page() int {
	return n.cursor.Page
}

// Current returns the entry under the cursor.
func (n *Navigator[T]) Current() (menu.Entry[T], bool) {
	if !n.hasCursor {
		return menu.Entry[T]{}, false
	}
	return n.reg.ByAddress(n.cursor)
}

// Phase returns the lifecycle state.
func (n *Navigator[T]) Phase() Phase {
	return n.phase
}

// Terminated reports whether Cancel or Terminate has been processed.
func (n *Navigator[T]) Terminated() bool {
	return n.phase == PhaseTerminated
}

// Terminate ends navigation without a Cancel signal.
func (n *Navigator[T]) Terminate() {
	n.phase = PhaseTerminated
}

// Apply processes one signal. Rejected signals return a *menu.Error and
// leave the cursor where it was.
func (n *Navigator[T]) Apply(sig Signal) (Change[T], error) {
	if n.phase == PhaseTerminated {
		return Change[T]{}, menu.NewError(menu.KindTerminated, sig.String(), "menu is closed")
	}
	var (
		change Change[T]
		err    error
	)
	switch sig {
	case MoveUp:
		change, err = n.move(sig, -1, 0)
	case MoveDown:
		change, err = n.move(sig, 1, 0)
	case MoveLeft:
		change, err = n.move(sig, 0, -1)
	case MoveRight:
		change, err = n.move(sig, 0, 1)
	case PageForward:
		change, err = n.turn(sig, 1)
	case PageBack:
		change, err = n.turn(sig, -1)
	case Select:
		e, ok := n.Current()
		if !ok {
			err = menu.NewError(menu.KindSelectionEmpty, sig.String(), "nothing to select")
			break
		}
		change = Change[T]{Kind: ChangeSelect, From: n.cursor, To: n.cursor, Entry: e}
	case Cancel:
		n.phase = PhaseTerminated
		change = Change[T]{Kind: ChangeCancel, From: n.cursor, To: n.cursor}
	}
	if err != nil {
		events.Nav.Rejected(sig.String(), string(menu.KindOf(err)))
	}
	return change, err
}

// JumpTo moves the cursor straight to addr. The change is a page change when
// addr is on another page.
func (n *Navigator[T]) JumpTo(addr menu.Address) (Change[T], error) {
	if n.phase == PhaseTerminated {
		return Change[T]{}, menu.NewError(menu.KindTerminated, "jump", "menu is closed")
	}
	e, ok := n.reg.ByAddress(addr)
	if !ok {
		return Change[T]{}, menu.NewError(menu.KindNoItemInDirection, "jump", fmt.Sprintf("no entry at %v", addr))
	}
	kind := ChangeCell
	if !n.hasCursor || addr.Page != n.cursor.Page {
		kind = ChangePage
	}
	return n.land(kind, e), nil
}

func (n *Navigator[T]) move(sig Signal, dr, dc int) (Change[T], error) {
	if !n.hasCursor {
		return Change[T]{}, menu.NewError(menu.KindNoItemInDirection, sig.String(), "no entries")
	}
	target := n.cursor
	target.Row += dr
	target.Column += dc
	if target.Row < 0 || target.Row > n.layout.RowsPerPage-1 ||
		target.Column < 0 || target.Column > n.layout.Columns-1 {
		return Change[T]{}, menu.NewError(menu.KindInvalidMoveBoundary, sig.String(), "cannot move "+direction(sig))
	}
	e, ok := n.reg.ByAddress(target)
	if !ok {
		return Change[T]{}, menu.NewError(menu.KindNoItemInDirection, sig.String(), "nothing "+neighbour(sig))
	}
	return n.land(ChangeCell, e), nil
}

func (n *Navigator[T]) turn(sig Signal, delta int) (Change[T], error) {
	target := n.cursor.Page + delta
	if target < 0 {
		return Change[T]{}, menu.NewError(menu.KindPageOutOfRange, sig.String(), "beginning of list")
	}
	if target > n.layout.PageCount-1 {
		return Change[T]{}, menu.NewError(menu.KindPageOutOfRange, sig.String(), "no more pages")
	}
	e, ok := n.reg.First(target)
	if !ok {
		return Change[T]{}, menu.NewError(menu.KindNoItemInDirection, sig.String(), fmt.Sprintf("page %d is empty", target+1))
	}
	return n.land(ChangePage, e), nil
}

func (n *Navigator[T]) land(kind ChangeKind, e menu.Entry[T]) Change[T] {
	from := n.cursor
	n.cursor, n.hasCursor = e.Address, true
	if kind == ChangePage {
		events.Nav.Page(e.Address.Page, n.layout.PageCount)
	}
	events.Nav.Cursor(e.Address.Row, e.Address.Column, e.Address.Page)
	return Change[T]{Kind: kind, From: from, To: e.Address, Entry: e}
}

func direction(sig Signal) string {
	switch sig {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	}
	return sig.String()
}

func neighbour(sig Signal) string {
	switch sig {
	case MoveUp:
		return "above"
	case MoveDown:
		return "below"
	case MoveLeft:
		return "to the left"
	case MoveRight:
		return "to the right"
	}
	return "there"
}
