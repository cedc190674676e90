package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	got := Format([][]string{
		{"select", "enter", "1"},
		{"page-forward", "f8", "12"},
	}, []Alignment{AlignLeft, AlignLeft, AlignRight})
	want := []string{
		"select        enter   1",
		"page-forward  f8     12",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatMeasuresWideRunes(t *testing.T) {
	got := Format([][]string{{"日本", "x"}, {"abcd", "y"}}, nil)
	if got[0] != "日本  x" || got[1] != "abcd  y" {
		t.Fatalf("unexpected rows %q", got)
	}
}

func TestFormatRaggedRows(t *testing.T) {
	got := Format([][]string{{"a"}, {"b", "c"}}, nil)
	if got[0] != "a" || got[1] != "b  c" {
		t.Fatalf("unexpected rows %q", got)
	}
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}
