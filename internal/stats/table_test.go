package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Dimension", "Avg", "Best"}
	rows := [][]string{
		{"Vocabulary", "45.5", "70"},
		{"Grammar", "8.0", "100"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if lines[0] != "Dimension   Avg Best" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "---------- ---- ----" {
		t.Fatalf("unexpected rule line: %q", lines[1])
	}
	if lines[2] != "Vocabulary 45.5   70" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
	if lines[3] != "Grammar     8.0  100" {
		t.Fatalf("unexpected row line: %q", lines[3])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable([]string{"Topic", "N"}, [][]string{{"日本", "1"}, {"ab", "2"}}, nil)
	if lines[2] != "日本  1" {
		t.Fatalf("expected wide runes to count as two columns, got %q", lines[2])
	}
	if lines[3] != "ab    2" {
		t.Fatalf("unexpected row line: %q", lines[3])
	}
}
