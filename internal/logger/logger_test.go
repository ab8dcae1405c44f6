package logger

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestInitWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(&buf, "info"); err != nil {
		t.Fatalf("init: %v", err)
	}
	ctx := context.Background()
	Named("store").Info(ctx, "saved submission", String("id", "abc"), Int("overall", 66))
	out := buf.String()
	for _, want := range []string{"level=INFO", `msg="saved submission"`, "component=store", "id=abc", "overall=66"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(&buf, "warn"); err != nil {
		t.Fatalf("init: %v", err)
	}
	ctx := context.Background()
	Get().Debug(ctx, "hidden debug")
	Get().Info(ctx, "hidden info")
	Get().Error(ctx, "visible", Error(errors.New("boom")))
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected debug/info to be filtered: %q", out)
	}
	if !strings.Contains(out, "error=boom") {
		t.Fatalf("expected error field: %q", out)
	}

	if err := SetLevelString("DEBUG"); err != nil {
		t.Fatalf("set level: %v", err)
	}
	Get().Debug(ctx, "now shown", Float64("ttr", 0.5))
	if !strings.Contains(buf.String(), "now shown") {
		t.Fatalf("expected debug output after level change")
	}
}

func TestSetLevelStringRejectsUnknown(t *testing.T) {
	if err := SetLevelString("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if err := Init(nil, "loud"); err == nil {
		t.Fatalf("expected Init to reject unknown level")
	}
}

func TestRedirectAffectsDerivedLoggers(t *testing.T) {
	var buf, side bytes.Buffer
	if err := Init(&buf, "info"); err != nil {
		t.Fatalf("init: %v", err)
	}
	ctx := context.Background()
	named := Named("tui")

	restore := Redirect(&side)
	named.Error(ctx, "while redirected")
	restore()
	named.Info(ctx, "after restore")

	if strings.Contains(buf.String(), "while redirected") {
		t.Fatalf("redirected line leaked to original writer: %q", buf.String())
	}
	if !strings.Contains(side.String(), "while redirected") {
		t.Fatalf("expected redirected line in side writer: %q", side.String())
	}
	if !strings.Contains(buf.String(), "after restore") {
		t.Fatalf("expected output back on original writer: %q", buf.String())
	}
}
