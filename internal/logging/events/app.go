package events

import "github.com/atomicstack/gridselect/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Items(source string, count int) {
	logging.Trace("app.items", map[string]interface{}{"source": source, "count": count})
}

func (AppTracer) Exit(selected bool, caption string) {
	logging.Trace("app.exit", map[string]interface{}{"selected": selected, "caption": caption})
}
