package events

import "github.com/atomicstack/gridselect/internal/logging"

type RegistryTracer struct{}

var Registry = RegistryTracer{}

func (RegistryTracer) Add(id uint64, caption string, row, column, page int) {
	logging.Trace("registry.add", map[string]interface{}{
		"id":      id,
		"caption": caption,
		"row":     row,
		"column":  column,
		"page":    page,
	})
}

func (RegistryTracer) Remove(id uint64, caption string) {
	logging.Trace("registry.remove", map[string]interface{}{"id": id, "caption": caption})
}

// Finalize records the frozen layout; moved counts entries restamped because
// a wider caption arrived after they were added.
func (RegistryTracer) Finalize(entries, columnWidth, columns, rows, pages, moved int) {
	logging.Trace("registry.finalize", map[string]interface{}{
		"entries":     entries,
		"columnWidth": columnWidth,
		"columns":     columns,
		"rows":        rows,
		"pages":       pages,
		"moved":       moved,
	})
}
