package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestViewShowsCurrentPage(t *testing.T) {
	h := newTestHarness(t, 20, WithInstructionText[int]("keys"))
	view := h.View()
	if !strings.Contains(view, "entry-0000") || !strings.Contains(view, "entry-0008") {
		t.Fatalf("expected first page in view, got:\n%s", view)
	}
	if strings.Contains(view, "entry-0009") {
		t.Fatalf("second page leaked into view:\n%s", view)
	}

	h.Keys(tea.KeyPgDown)
	view = h.View()
	if !strings.Contains(view, "entry-0009") || strings.Contains(view, "entry-0000") {
		t.Fatalf("expected second page in view, got:\n%s", view)
	}
	if !strings.Contains(view, "page 2/3") {
		t.Fatalf("expected page indicator, got:\n%s", view)
	}
}
