package state

import "strings"

// Signal is one discrete input event understood by the navigator.
type Signal int

const (
	SignalNone Signal = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	PageForward
	PageBack
	Select
	Cancel
)

var signalNames = map[Signal]string{
	SignalNone:  "none",
	MoveUp:      "move-up",
	MoveDown:    "move-down",
	MoveLeft:    "move-left",
	MoveRight:   "move-right",
	PageForward: "page-forward",
	PageBack:    "page-back",
	Select:      "select",
	Cancel:      "cancel",
}

func (s Signal) String() string {
	if name, ok := signalNames[s]; ok {
		return name
	}
	return "unknown"
}

// Signals lists every actionable signal in display order.
func Signals() []Signal {
	return []Signal{MoveUp, MoveDown, MoveLeft, MoveRight, PageForward, PageBack, Select, Cancel}
}

// ParseSignal resolves a signal from its name. Underscores and case are
// ignored so "page_forward" and "PAGE-FORWARD" both match.
func ParseSignal(name string) (Signal, bool) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", "-"))
	for sig, n := range signalNames {
		if sig != SignalNone && n == normalized {
			return sig, true
		}
	}
	return SignalNone, false
}
