package assess

import (
	"strings"

	"github.com/verte-zerg/writescore/internal/model"
	"github.com/verte-zerg/writescore/internal/textseg"
)

var (
	ttrBands = []band{
		{atLeast(0.6), 40},
		{atLeast(0.5), 35},
		{atLeast(0.4), 25},
		{always, 15},
	}
	totalWordBands = []band{
		{atLeast(300), 30},
		{atLeast(200), 25},
		{atLeast(100), 15},
		{always, 5},
	}
	advancedWordBands = []band{
		{atLeast(10), 30},
		{atLeast(5), 25},
		{atLeast(2), 15},
		{always, 5},
	}
)

// Vocabulary measures lexical diversity and advanced word usage.
func (e *Engine) Vocabulary(text string) model.VocabularyScore {
	if strings.TrimSpace(text) == "" {
		return model.VocabularyScore{}
	}
	folded := textseg.Fold(textseg.Words(text))
	total := len(folded)

	unique := make(map[string]struct{}, total)
	advanced := 0
	for _, w := range folded {
		if w == "" {
			continue
		}
		unique[w] = struct{}{}
		if e.lex.IsAdvanced(w) {
			advanced++
		}
	}

	ttr := 0.0
	if total > 0 {
		ttr = float64(len(unique)) / float64(total)
	}

	score := award(ttr, ttrBands) +
		award(float64(total), totalWordBands) +
		award(float64(advanced), advancedWordBands)

	return model.VocabularyScore{
		TotalWords:    total,
		UniqueWords:   len(unique),
		TTR:           round2(ttr),
		AdvancedWords: advanced,
		Score:         clampScore(score),
	}
}
