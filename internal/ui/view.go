package ui

import (
	"strings"

	"github.com/muesli/reflow/truncate"
)

// View renders the canvas clipped to the last reported window size. Nothing
// is drawn once the program is quitting so the alternate screen is left
// clean.
func (m *Model[T]) View() string {
	if m.quitting {
		return ""
	}
	out := m.canvas.Render()
	cw, ch := m.canvas.Size()
	if m.width >= cw && m.height >= ch {
		return out
	}
	lines := strings.Split(out, "\n")
	if m.height > 0 && len(lines) > m.height {
		lines = lines[:m.height]
	}
	if m.width > 0 && m.width < cw {
		for i, line := range lines {
			lines[i] = truncate.String(line, uint(m.width))
		}
	}
	return strings.Join(lines, "\n")
}
