package assess

import (
	"reflect"
	"strings"
	"testing"

	"github.com/verte-zerg/writescore/internal/model"
)

func typingEvents(timestamps ...int64) []model.KeystrokeEvent {
	events := make([]model.KeystrokeEvent, len(timestamps))
	for i, ts := range timestamps {
		events[i] = model.KeystrokeEvent{Type: model.EventTyping, Timestamp: ts}
	}
	return events
}

func TestScoreEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   \n\t  "} {
		ws := Score(text, nil, 0)
		if ws.Vocabulary != (model.VocabularyScore{}) {
			t.Fatalf("expected zero vocabulary, got %+v", ws.Vocabulary)
		}
		if ws.Fluency != (model.FluencyScore{}) {
			t.Fatalf("expected zero fluency, got %+v", ws.Fluency)
		}
		if ws.Structure != (model.StructureScore{}) {
			t.Fatalf("expected zero structure, got %+v", ws.Structure)
		}
		if ws.Grammar.Score != 0 || ws.Grammar.SentenceCount != 0 || ws.Grammar.Errors == nil || len(ws.Grammar.Errors) != 0 {
			t.Fatalf("expected zero grammar with empty error list, got %+v", ws.Grammar)
		}
		if ws.OverallScore != 0 || ws.Grade != model.GradeF {
			t.Fatalf("expected 0/F, got %d/%s", ws.OverallScore, ws.Grade)
		}
		if !reflect.DeepEqual(ws.Suggestions, []string{ClosingFail}) {
			t.Fatalf("expected only the closing remark, got %v", ws.Suggestions)
		}
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	text := essay()
	events := scenarioEvents()
	a := Score(text, events, 600)
	b := Score(text, events, 600)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical results:\n%+v\n%+v", a, b)
	}
}

func TestScoreBounds(t *testing.T) {
	texts := []string{
		"x",
		"Short.",
		strings.Repeat("Moreover, we demonstrate and evaluate results. ", 200),
		strings.Repeat("word ", 1000),
		essay(),
		"!!! ??? ...",
	}
	events := typingEvents(0, 10_000, 10_001, 50_000)
	for _, text := range texts {
		for _, secs := range []int{0, 1, 60, 3600} {
			ws := Score(text, events, secs)
			for name, s := range map[string]int{
				"vocabulary": ws.Vocabulary.Score,
				"fluency":    ws.Fluency.Score,
				"grammar":    ws.Grammar.Score,
				"structure":  ws.Structure.Score,
				"overall":    ws.OverallScore,
			} {
				if s < 0 || s > 100 {
					t.Fatalf("%s score out of range for %q: %d", name, text, s)
				}
			}
			for name, r := range map[string]float64{
				"ttr":          ws.Vocabulary.TTR,
				"coherence":    ws.Structure.Coherence,
				"revisionRate": ws.Fluency.RevisionRate,
			} {
				if r < 0 || r > 1 {
					t.Fatalf("%s out of range: %v", name, r)
				}
			}
			if len(ws.Grammar.Errors) > maxReportedErrors {
				t.Fatalf("expected at most %d errors, got %d", maxReportedErrors, len(ws.Grammar.Errors))
			}
		}
	}
}

// essay returns 250 words in 3 paragraphs with no introduction or conclusion
// signal phrases.
func essay() string {
	const sentence = "Workers share ideas and plans with colleagues during long meetings."
	sentences := make([]string, 25)
	for i := range sentences {
		sentences[i] = sentence
	}
	return strings.Join(sentences[:9], " ") + "\n\n" +
		strings.Join(sentences[9:17], " ") + "\n\n" +
		strings.Join(sentences[17:], " ")
}

// scenarioEvents returns 50 events with 5 gaps of 4s and 8 deletions.
func scenarioEvents() []model.KeystrokeEvent {
	events := make([]model.KeystrokeEvent, 50)
	ts := int64(1_700_000_000_000)
	for i := range events {
		if i > 0 {
			if i%10 == 0 {
				ts += 4000
			} else {
				ts += 200
			}
		}
		typ := model.EventTyping
		if i%6 == 5 && i < 48 {
			typ = model.EventDelete
		}
		events[i] = model.KeystrokeEvent{Type: typ, Timestamp: ts}
	}
	// Index 0 is never a pause; add the fifth gap at the end.
	events[49].Timestamp = events[48].Timestamp + 4000
	return events
}

func TestEndToEndScenario(t *testing.T) {
	text := essay()
	events := scenarioEvents()

	ws := Score(text, events, 600)

	if ws.Vocabulary.TotalWords != 250 {
		t.Fatalf("expected 250 words, got %d", ws.Vocabulary.TotalWords)
	}
	if ws.Fluency.WPM != 25 {
		t.Fatalf("expected 25 wpm, got %d", ws.Fluency.WPM)
	}
	if ws.Fluency.PauseCount != 5 || ws.Fluency.AveragePauseTime != 4 {
		t.Fatalf("expected 5 pauses of 4s, got %d/%d", ws.Fluency.PauseCount, ws.Fluency.AveragePauseTime)
	}
	if ws.Fluency.RevisionRate != 0.16 {
		t.Fatalf("expected revision rate 0.16, got %v", ws.Fluency.RevisionRate)
	}
	if !ws.Structure.HasIntroduction || !ws.Structure.HasConclusion || ws.Structure.ParagraphCount != 3 {
		t.Fatalf("unexpected structure: %+v", ws.Structure)
	}

	want := OverallScore(ws.Vocabulary.Score, ws.Fluency.Score, ws.Grammar.Score, ws.Structure.Score)
	if ws.OverallScore != want {
		t.Fatalf("overall %d does not follow the weights (%d)", ws.OverallScore, want)
	}
	if ws.Vocabulary.Score != 45 || ws.Fluency.Score != 85 || ws.Grammar.Score != 60 || ws.Structure.Score != 80 {
		t.Fatalf("unexpected sub-scores: %d %d %d %d",
			ws.Vocabulary.Score, ws.Fluency.Score, ws.Grammar.Score, ws.Structure.Score)
	}
	if ws.OverallScore != 66 || ws.Grade != model.GradeD {
		t.Fatalf("expected 66/D, got %d/%s", ws.OverallScore, ws.Grade)
	}
	wantSuggestions := []string{SuggestDiversify, SuggestAdvancedWords, SuggestSentenceLen, ClosingPass}
	if !reflect.DeepEqual(ws.Suggestions, wantSuggestions) {
		t.Fatalf("unexpected suggestions: %v", ws.Suggestions)
	}
}

func TestNewDefaultsToBuiltinLexicon(t *testing.T) {
	e := New(nil)
	if e.lex == nil {
		t.Fatalf("expected default lexicon")
	}
	a := e.Score("Moreover, we demonstrate results.", nil, 30)
	b := Score("Moreover, we demonstrate results.", nil, 30)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected package Score to match a default engine")
	}
}
