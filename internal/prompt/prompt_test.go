package prompt

import "testing"

func TestPickIsDeterministicForSeed(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 20; i++ {
		if x, y := a.Pick(""), b.Pick(""); x != y {
			t.Fatalf("pick %d differs: %q vs %q", i, x, y)
		}
	}
}

func TestPickReturnsBuiltinTopic(t *testing.T) {
	known := make(map[string]bool)
	for _, topic := range Topics() {
		known[topic] = true
	}
	p := New(7)
	for i := 0; i < 50; i++ {
		if got := p.Pick("   "); !known[got] {
			t.Fatalf("unexpected topic %q", got)
		}
	}
}

func TestPickCustomTopic(t *testing.T) {
	if got := New(1).Pick("  My own topic "); got != "My own topic" {
		t.Fatalf("expected trimmed custom topic, got %q", got)
	}
}

func TestTopicsReturnsCopy(t *testing.T) {
	topics := Topics()
	if len(topics) != 8 {
		t.Fatalf("expected 8 topics, got %d", len(topics))
	}
	topics[0] = "changed"
	if Topics()[0] == "changed" {
		t.Fatalf("built-in topics modified through copy")
	}
}

func TestMinutes(t *testing.T) {
	if !IsPreset(DefaultMinutes) {
		t.Fatalf("default minutes should be a preset")
	}
	if IsPreset(17) {
		t.Fatalf("17 is not a preset")
	}
	if err := ValidateMinutes(0); err == nil {
		t.Fatalf("expected error for 0 minutes")
	}
	if err := ValidateMinutes(17); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
