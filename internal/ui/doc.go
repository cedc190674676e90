// Package ui drives the paginated grid menu. It sits between the registry in
// internal/menu and whatever draws to the screen.
//
// Session flow:
//   - NewSession binds a registry to a Renderer, a NotificationSink and an
//     InputSource. Start finalizes the registry, builds the navigator from
//     internal/ui/state and draws the first page.
//   - Run reads signals from the InputSource and hands each one to Step until
//     the user cancels, Break is called, or input fails. Step applies the
//     signal to the navigator and lets the Driver redraw only what changed:
//     two cells for a move, the whole viewport for a page turn.
//   - Rejected moves never touch the grid. The Driver turns the navigator's
//     *menu.Error into exactly one warning on the sink.
//   - Select and cancel actions run through internal/ui/command so every
//     invocation is traced.
//
// Frontends:
//   - Canvas is an in-memory Renderer and NotificationSink. The Bubble Tea
//     Model renders it as its View and maps tea.KeyMsg values to signals via
//     KeyMap. Keys that map to no signal feed a typeahead query that jumps
//     the cursor to the best matching caption.
//   - internal/backend wraps a tcell screen as Renderer, NotificationSink and
//     InputSource for the blocking Run loop.
package ui
