package assess

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/writescore/internal/model"
	"github.com/verte-zerg/writescore/internal/textseg"
)

const (
	maxReportedErrors  = 10
	longSentenceWords  = 40
	shortSentenceWords = 5
)

var (
	sentenceCountBands = []band{
		{closed(10, 20), 20},
		{either(rightOpen(8, 10), leftOpen(20, 25)), 15},
		{either(rightOpen(5, 8), leftOpen(25, 30)), 10},
		{always, 5},
	}
	sentenceLengthBands = []band{
		{closed(15, 25), 30},
		{either(rightOpen(12, 15), leftOpen(25, 30)), 25},
		{either(rightOpen(10, 12), leftOpen(30, 35)), 15},
		{always, 10},
	}
	complexRatioBands = []band{
		{closed(0.4, 0.6), 30},
		{either(rightOpen(0.3, 0.4), leftOpen(0.6, 0.7)), 25},
		{either(rightOpen(0.2, 0.3), leftOpen(0.7, 0.8)), 15},
		{always, 10},
	}
	errorCountBands = []band{
		{equals(0), 20},
		{atMost(2), 15},
		{atMost(5), 10},
		{always, 5},
	}
)

// Grammar measures sentence counts and lengths, conjunction use, and simple
// lexical issues.
func (e *Engine) Grammar(text string) model.GrammarScore {
	if strings.TrimSpace(text) == "" {
		return model.GrammarScore{Errors: []string{}}
	}

	sentences := textseg.Sentences(text)
	words := textseg.Words(text)

	avgLen := 0
	if len(sentences) > 0 {
		avgLen = roundInt(float64(len(words)) / float64(len(sentences)))
	}

	sentenceWords := make([][]string, len(sentences))
	complexCount := 0
	for i, s := range sentences {
		sentenceWords[i] = textseg.Fold(textseg.Words(s))
		if e.hasConjunction(sentenceWords[i]) {
			complexCount++
		}
	}

	errs := repeatedWordErrors(words)
	for i, sw := range sentenceWords {
		if len(sw) > longSentenceWords {
			errs = append(errs, fmt.Sprintf("Sentence %d is too long (%d words)", i+1, len(sw)))
		}
	}
	for i, sw := range sentenceWords {
		if len(sw) < shortSentenceWords {
			errs = append(errs, fmt.Sprintf("Sentence %d is too short (%d words)", i+1, len(sw)))
		}
	}

	complexRatio := 0.0
	if len(sentences) > 0 {
		complexRatio = float64(complexCount) / float64(len(sentences))
	}

	// The error band sees every detected issue; only the report is truncated.
	score := award(float64(len(sentences)), sentenceCountBands) +
		award(float64(avgLen), sentenceLengthBands) +
		award(complexRatio, complexRatioBands) +
		award(float64(len(errs)), errorCountBands)

	if len(errs) > maxReportedErrors {
		errs = errs[:maxReportedErrors]
	}

	return model.GrammarScore{
		SentenceCount:         len(sentences),
		AverageSentenceLength: avgLen,
		ComplexSentences:      complexCount,
		Errors:                errs,
		Score:                 clampScore(score),
	}
}

func (e *Engine) hasConjunction(folded []string) bool {
	for _, w := range folded {
		if e.lex.IsConjunction(w) {
			return true
		}
	}
	return false
}

func repeatedWordErrors(words []string) []string {
	errs := []string{}
	for i := 0; i+1 < len(words); i++ {
		if strings.EqualFold(words[i], words[i+1]) {
			errs = append(errs, fmt.Sprintf("Repeated word: %q", words[i]))
		}
	}
	return errs
}
