package tui

import (
	"testing"

	"github.com/verte-zerg/writescore/internal/lexicon"
)

func TestHighlightAdvancedWords(t *testing.T) {
	runes := highlightAdvanced("We collaborate, then rest.", lexicon.Default())
	if len(runes) != len([]rune("We collaborate, then rest.")) {
		t.Fatalf("expected one styled rune per input rune, got %d", len(runes))
	}
	if runes[3].s != advancedWord.Render("c") {
		t.Fatalf("expected advanced style inside an advanced word")
	}
	if runes[14].s != plainStyle.Render(",") {
		t.Fatalf("expected plain style for punctuation")
	}
	if runes[0].s != plainStyle.Render("W") {
		t.Fatalf("expected plain style for ordinary words")
	}
}

func TestHighlightIsCaseInsensitive(t *testing.T) {
	runes := highlightAdvanced("Moreover", lexicon.Default())
	if runes[0].s != advancedWord.Render("M") {
		t.Fatalf("expected capitalised advanced word to be highlighted")
	}
}

func TestFindWords(t *testing.T) {
	words := findWords([]rune("don't stop, well-known"))
	if len(words) != 3 {
		t.Fatalf("expected 3 words, got %v", words)
	}
	if words[0] != (wordRange{start: 0, end: 5}) || words[2] != (wordRange{start: 12, end: 22}) {
		t.Fatalf("unexpected ranges: %v", words)
	}
}

func TestWrapStyledRunesBreaksAtSpaces(t *testing.T) {
	got := wrapStyledRunes(styleRunes("aaa bbb ccc", plainStyle), 7)
	want := renderStyledRunes(styleRunes("aaa bbb", plainStyle)) + "\n" + renderStyledRunes(styleRunes("ccc", plainStyle))
	if got != want {
		t.Fatalf("unexpected wrap:\n%q\n%q", got, want)
	}
}

func TestWrapStyledRunesKeepsNewlines(t *testing.T) {
	got := wrapStyledRunes(styleRunes("ab\ncd", plainStyle), 10)
	want := renderStyledRunes(styleRunes("ab", plainStyle)) + "\n" + renderStyledRunes(styleRunes("cd", plainStyle))
	if got != want {
		t.Fatalf("unexpected wrap:\n%q\n%q", got, want)
	}
}

func TestWrapStyledRunesSplitsLongWord(t *testing.T) {
	got := wrapStyledRunes(styleRunes("abcdef", plainStyle), 4)
	want := renderStyledRunes(styleRunes("abcd", plainStyle)) + "\n" + renderStyledRunes(styleRunes("ef", plainStyle))
	if got != want {
		t.Fatalf("unexpected wrap:\n%q\n%q", got, want)
	}
}
