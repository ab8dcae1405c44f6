package lexicon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLists(t *testing.T) {
	lex := Default()
	if len(lex.advanced) != 25 {
		t.Fatalf("expected 25 advanced words, got %d", len(lex.advanced))
	}
	if !lex.IsAdvanced("furthermore") || lex.IsAdvanced("cat") {
		t.Fatalf("unexpected advanced membership")
	}
	if !lex.IsConjunction("because") {
		t.Fatalf("expected because to be a conjunction")
	}
	if len(lex.Transitions()) != 22 {
		t.Fatalf("expected 22 transitions, got %d", len(lex.Transitions()))
	}
	if !lex.HasIntroductionSignal("nowadays, technology matters") {
		t.Fatalf("expected introduction signal")
	}
	if !lex.HasConclusionSignal("to sum up, it works") {
		t.Fatalf("expected conclusion signal")
	}
}

func TestTransitionsAreCopies(t *testing.T) {
	lex := Default()
	tr := lex.Transitions()
	tr[0][0] = "mutated"
	if lex.Transitions()[0][0] == "mutated" {
		t.Fatalf("expected Transitions to return a copy")
	}
}

func TestLoadOverridesSingleList(t *testing.T) {
	dir := t.TempDir()
	content := "# custom\nZephyr\n\n  Quixotic  \nzephyr\n"
	if err := os.WriteFile(filepath.Join(dir, "advanced.txt"), []byte(content), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	lex, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(lex.advanced) != 2 {
		t.Fatalf("expected 2 deduplicated advanced words, got %d", len(lex.advanced))
	}
	if !lex.IsAdvanced("zephyr") || !lex.IsAdvanced("quixotic") {
		t.Fatalf("expected override words to be present")
	}
	if lex.IsAdvanced("furthermore") {
		t.Fatalf("expected built-in advanced list to be replaced")
	}
	if !lex.IsConjunction("and") {
		t.Fatalf("expected other lists to fall back to built-in")
	}
}

func TestLoadRejectsEmptyList(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "conjunctions.txt"), []byte("# nothing\n"), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected error for empty list")
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  On   The Other\tHand "); got != "on the other hand" {
		t.Fatalf("unexpected normalization: %q", got)
	}
}
