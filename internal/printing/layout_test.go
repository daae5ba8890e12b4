package printing

import (
	"strings"
	"testing"

	"coresheet/internal/sheet"
)

func TestValueColumnWidthClamps(t *testing.T) {
	r := sheet.NewRecord()
	if got := valueColumnWidth(r); got != 40 {
		t.Fatalf("empty record width = %v, want 40", got)
	}

	r.Episodes[0].Text = strings.Repeat("x", 60)
	if got := valueColumnWidth(r); got != 62 {
		t.Fatalf("width = %v, want 62", got)
	}

	// Fullwidth runes count double.
	r.Episodes[0].Text = strings.Repeat("あ", 40)
	if got := valueColumnWidth(r); got != 82 {
		t.Fatalf("fullwidth width = %v, want 82", got)
	}

	r.Episodes[0].Text = strings.Repeat("あ", 80)
	if got := valueColumnWidth(r); got != 96 {
		t.Fatalf("clamped width = %v, want 96", got)
	}
}
