package events

import "github.com/atomicstack/gridselect/internal/logging"

type NavTracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

var (
	Nav     = NavTracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
)

func (NavTracer) Cursor(row, column, page int) {
	logging.Trace("nav.cursor", map[string]interface{}{"row": row, "column": column, "page": page})
}

func (NavTracer) Page(page, pages int) {
	logging.Trace("nav.page", map[string]interface{}{"page": page, "pages": pages})
}

func (NavTracer) Rejected(signal, kind string) {
	logging.Trace("nav.rejected", map[string]interface{}{"signal": signal, "kind": kind})
}

func (FilterTracer) Jump(query string, row, column, page int) {
	logging.Trace("filter.jump", map[string]interface{}{
		"query":  query,
		"row":    row,
		"column": column,
		"page":   page,
	})
}

func (FilterTracer) Miss(query string) {
	logging.Trace("filter.miss", map[string]interface{}{"query": query})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Done(id, label string) {
	logging.Trace("command.done", map[string]interface{}{"id": id, "label": label})
}
