package menu

import (
	"fmt"
	"slices"

	"github.com/atomicstack/gridselect/internal/logging/events"
	"github.com/mattn/go-runewidth"
)

// Registry holds the ordered entries of one grid menu together with their
// addresses. It is not safe for concurrent use.
type Registry[T any] struct {
	viewport Viewport
	entries  []*Entry[T]
	byID     map[EntryID]*Entry[T]
	byAddr   map[Address]*Entry[T]

	nextID     EntryID
	nextSlot   int
	maxCaption int
	// stampWidth only grows, so the column count used for stamping never
	// increases and a new slot cannot land on an occupied cell.
	stampWidth int

	finalized bool
	frozen    Layout
}

// NewRegistry creates an empty registry for the viewport.
func NewRegistry[T any](v Viewport) (*Registry[T], error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &Registry[T]{
		viewport: v,
		byID:     make(map[EntryID]*Entry[T]),
		byAddr:   make(map[Address]*Entry[T]),
	}, nil
}

// Viewport returns the viewport the registry lays out against.
func (r *Registry[T]) Viewport() Viewport {
	return r.viewport
}

// Add appends an entry and stamps it with the next free address.
func (r *Registry[T]) Add(value T, caption string, style Style) (EntryID, error) {
	if r.finalized {
		return 0, NewError(KindAlreadyFinalized, "add", fmt.Sprintf("cannot add %q", caption))
	}
	r.nextID++
	e := &Entry[T]{
		ID:      r.nextID,
		Value:   value,
		Caption: caption,
		Style:   style.withDefaults(),
		ordinal: r.nextSlot,
	}
	r.nextSlot++
	if w := runewidth.StringWidth(caption); w > r.maxCaption {
		r.maxCaption = w
	}
	if r.maxCaption > r.stampWidth {
		r.stampWidth = r.maxCaption
	}
	r.entries = append(r.entries, e)
	r.byID[e.ID] = e
	e.Address = ComputeLayout(r.viewport, r.stampWidth, r.slots()).AddressOf(e.ordinal)
	r.byAddr[e.Address] = e
	events.Registry.Add(uint64(e.ID), caption, e.Address.Row, e.Address.Column, e.Address.Page)
	return e.ID, nil
}

// AddRange adds every item or none of them.
func (r *Registry[T]) AddRange(items ...Item[T]) ([]EntryID, error) {
	if r.finalized {
		return nil, NewError(KindAlreadyFinalized, "add", fmt.Sprintf("cannot add %d items", len(items)))
	}
	ids := make([]EntryID, 0, len(items))
	for _, item := range items {
		id, err := r.Add(item.Value, item.Caption, item.Style)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Remove deletes an entry. Later entries keep their addresses, leaving a gap.
// Removing the widest caption narrows Layout but not the stamping width of
// later adds; Finalize reflows onto the narrower grid.
func (r *Registry[T]) Remove(id EntryID) error {
	if r.finalized {
		return NewError(KindAlreadyFinalized, "remove", fmt.Sprintf("cannot remove entry %d", id))
	}
	e, ok := r.byID[id]
	if !ok {
		return NewError(KindUnknownEntry, "remove", fmt.Sprintf("no entry with id %d", id))
	}
	delete(r.byID, id)
	if r.byAddr[e.Address] == e {
		delete(r.byAddr, e.Address)
	}
	r.entries = slices.DeleteFunc(r.entries, func(other *Entry[T]) bool { return other == e })
	r.maxCaption = 0
	for _, other := range r.entries {
		if w := other.CaptionWidth(); w > r.maxCaption {
			r.maxCaption = w
		}
	}
	events.Registry.Remove(uint64(id), e.Caption)
	return nil
}

// Finalize freezes the registry and its layout. Entries stamped while a
// narrower caption set was in force are moved to the address their slot has
// under the frozen layout. Calling Finalize again returns the same layout.
func (r *Registry[T]) Finalize() Layout {
	if r.finalized {
		return r.frozen
	}
	r.frozen = r.liveLayout()
	r.byAddr = make(map[Address]*Entry[T], len(r.entries))
	moved := 0
	for _, e := range r.entries {
		addr := r.frozen.AddressOf(e.ordinal)
		if addr != e.Address {
			e.Address = addr
			moved++
		}
		r.byAddr[addr] = e
	}
	r.finalized = true
	events.Registry.Finalize(len(r.entries), r.frozen.ColumnWidth, r.frozen.Columns, r.frozen.RowsPerPage, r.frozen.PageCount, moved)
	return r.frozen
}

// Finalized reports whether Finalize has been called.
func (r *Registry[T]) Finalized() bool {
	return r.finalized
}

// Layout returns the frozen layout once finalized, otherwise the layout the
// current entries would produce.
func (r *Registry[T]) Layout() Layout {
	if r.finalized {
		return r.frozen
	}
	return r.liveLayout()
}

func (r *Registry[T]) liveLayout() Layout {
	return ComputeLayout(r.viewport, r.maxCaption, r.slots())
}

// slots is one past the highest occupied insertion slot.
func (r *Registry[T]) slots() int {
	if len(r.entries) == 0 {
		return 0
	}
	return r.entries[len(r.entries)-1].ordinal + 1
}

// Len returns the number of entries.
func (r *Registry[T]) Len() int {
	return len(r.entries)
}

// ByAddress returns the entry occupying addr.
func (r *Registry[T]) ByAddress(addr Address) (Entry[T], bool) {
	e, ok := r.byAddr[addr]
	if !ok {
		return Entry[T]{}, false
	}
	return *e, true
}

// ByID returns the entry with the given id.
func (r *Registry[T]) ByID(id EntryID) (Entry[T], bool) {
	e, ok := r.byID[id]
	if !ok {
		return Entry[T]{}, false
	}
	return *e, true
}

// Entries returns a copy of all entries in insertion order.
func (r *Registry[T]) Entries() []Entry[T] {
	out := make([]Entry[T], len(r.entries))
	for i, e := range r.entries {
		out[i] = *e
	}
	return out
}

// Page returns the entries on page p in address order.
func (r *Registry[T]) Page(p int) []Entry[T] {
	out := make([]Entry[T], 0)
	for _, e := range r.entries {
		if e.Address.Page == p {
			out = append(out, *e)
		}
	}
	slices.SortFunc(out, func(a, b Entry[T]) int {
		switch {
		case a.Address.Less(b.Address):
			return -1
		case b.Address.Less(a.Address):
			return 1
		}
		return 0
	})
	return out
}

// First returns the entry with the lowest address on page p.
func (r *Registry[T]) First(p int) (Entry[T], bool) {
	if e, ok := r.ByAddress(Address{Page: p}); ok {
		return e, true
	}
	entries := r.Page(p)
	if len(entries) == 0 {
		return Entry[T]{}, false
	}
	return entries[0], true
}
