package events

import "github.com/atomicstack/gridselect/internal/logging"

type SessionTracer struct{}

type sessionReason string

const (
	SessionReasonCancel sessionReason = "cancel"
	SessionReasonBreak  sessionReason = "break"
	SessionReasonEmpty  sessionReason = "empty"
	SessionReasonInput  sessionReason = "input"
)

var Session = SessionTracer{}

func (SessionTracer) Start(entries, pages int) {
	logging.Trace("session.start", map[string]interface{}{"entries": entries, "pages": pages})
}

func (SessionTracer) Signal(signal string) {
	logging.Trace("session.signal", map[string]interface{}{"signal": signal})
}

func (SessionTracer) End(reason sessionReason, err error) {
	payload := map[string]interface{}{"reason": string(reason)}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("session.end", payload)
}
