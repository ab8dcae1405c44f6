package assess

import (
	"strings"

	"github.com/verte-zerg/writescore/internal/lexicon"
	"github.com/verte-zerg/writescore/internal/model"
)

// Dimension weights of the overall score.
const (
	VocabularyWeight = 0.30
	FluencyWeight    = 0.25
	GrammarWeight    = 0.25
	StructureWeight  = 0.20
)

// Engine scores writing samples against a fixed lexicon.
type Engine struct {
	lex *lexicon.Lexicon
}

// New returns an Engine using lex, or the built-in lexicon when lex is nil.
func New(lex *lexicon.Lexicon) *Engine {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Engine{lex: lex}
}

var defaultEngine = New(nil)

// Score runs every analyzer with the built-in lexicon.
func Score(text string, events []model.KeystrokeEvent, timeUsedSeconds int) model.WritingScore {
	return defaultEngine.Score(text, events, timeUsedSeconds)
}

// Score runs the four analyzers and combines their results. Blank text gets
// zero sub-scores and only the closing remark as a suggestion.
func (e *Engine) Score(text string, events []model.KeystrokeEvent, timeUsedSeconds int) model.WritingScore {
	ws := Aggregate(
		e.Vocabulary(text),
		e.Fluency(text, events, timeUsedSeconds),
		e.Grammar(text),
		e.Structure(text),
	)
	if strings.TrimSpace(text) == "" {
		ws.Suggestions = []string{closingRemark(ws.OverallScore)}
	}
	return ws
}

// Aggregate combines the sub-scores into the final report.
func Aggregate(v model.VocabularyScore, f model.FluencyScore, g model.GrammarScore, s model.StructureScore) model.WritingScore {
	if g.Errors == nil {
		g.Errors = []string{}
	}
	overall := OverallScore(v.Score, f.Score, g.Score, s.Score)
	ws := model.WritingScore{
		Vocabulary:   v,
		Fluency:      f,
		Grammar:      g,
		Structure:    s,
		OverallScore: overall,
		Grade:        GradeFor(overall),
	}
	ws.Suggestions = Suggestions(ws)
	return ws
}

// OverallScore is the weighted, rounded composite of the four dimension
// scores.
func OverallScore(vocabulary, fluency, grammar, structure int) int {
	// Explicit conversions keep each product separate so the compiler cannot
	// fuse multiply-add.
	sum := float64(float64(vocabulary)*VocabularyWeight) +
		float64(float64(fluency)*FluencyWeight) +
		float64(float64(grammar)*GrammarWeight) +
		float64(float64(structure)*StructureWeight)
	return clampScore(roundInt(sum))
}

// GradeFor maps an overall score to a letter grade.
func GradeFor(overall int) model.Grade {
	switch {
	case overall >= 90:
		return model.GradeA
	case overall >= 80:
		return model.GradeB
	case overall >= 70:
		return model.GradeC
	case overall >= 60:
		return model.GradeD
	default:
		return model.GradeF
	}
}
