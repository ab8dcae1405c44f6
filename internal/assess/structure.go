package assess

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/verte-zerg/writescore/internal/model"
	"github.com/verte-zerg/writescore/internal/textseg"
)

// Paragraphs longer than this many characters count as an introduction or
// conclusion even without a signal phrase.
const substantialParagraphChars = 50

var (
	paragraphCountBands = []band{
		{closed(3, 5), 25},
		{either(equals(2), equals(6)), 20},
		{either(equals(1), equals(7)), 10},
		{always, 5},
	}
	coherenceBands = []band{
		{atLeast(0.8), 25},
		{atLeast(0.6), 20},
		{atLeast(0.4), 15},
		{atLeast(0.2), 10},
		{always, 5},
	}
)

// Structure measures paragraph organisation and transition use.
func (e *Engine) Structure(text string) model.StructureScore {
	if strings.TrimSpace(text) == "" {
		return model.StructureScore{}
	}

	paragraphs := textseg.Paragraphs(text)
	count := len(paragraphs)

	first, last := "", ""
	if count > 0 {
		first = paragraphs[0]
		last = paragraphs[count-1]
	}
	hasIntro := e.lex.HasIntroductionSignal(strings.ToLower(first)) ||
		utf8.RuneCountInString(first) > substantialParagraphChars
	hasConclusion := e.lex.HasConclusionSignal(strings.ToLower(last)) ||
		(count > 2 && utf8.RuneCountInString(last) > substantialParagraphChars)

	folded := textseg.Fold(textseg.Words(text))
	transitions := 0
	for _, phrase := range e.lex.Transitions() {
		transitions += textseg.CountPhrase(folded, phrase)
	}
	coherence := math.Min(1, float64(transitions)/float64(max(1, count*2)))

	score := award(float64(count), paragraphCountBands) +
		sectionPoints(hasIntro) +
		sectionPoints(hasConclusion) +
		award(coherence, coherenceBands)

	return model.StructureScore{
		ParagraphCount:  count,
		HasIntroduction: hasIntro,
		HasConclusion:   hasConclusion,
		Coherence:       round2(coherence),
		Score:           clampScore(score),
	}
}

func sectionPoints(present bool) int {
	if present {
		return 25
	}
	return 10
}
