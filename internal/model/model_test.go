package model

import "testing"

func TestParseGrade(t *testing.T) {
	if g, ok := ParseGrade(" b "); !ok || g != GradeB {
		t.Fatalf("expected B, got %q %v", g, ok)
	}
	if _, ok := ParseGrade("E"); ok {
		t.Fatalf("E is not a grade")
	}
}

func TestEventTypeValid(t *testing.T) {
	for _, et := range []EventType{EventTyping, EventDelete, EventPaste, EventCut} {
		if !et.Valid() {
			t.Fatalf("expected %q to be valid", et)
		}
	}
	if EventType("scroll").Valid() {
		t.Fatalf("expected unknown type to be invalid")
	}
}
