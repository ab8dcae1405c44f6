package assess

import "github.com/verte-zerg/writescore/internal/model"

// Dimensions scoring below this threshold receive targeted suggestions.
const suggestionThreshold = 70

// Suggestion texts, in the order they can appear.
const (
	SuggestDiversify     = "Use a more varied vocabulary and avoid repeating the same words."
	SuggestAdvancedWords = "Use more advanced vocabulary, such as academic connectors and precise verbs."
	SuggestLength        = "Write more: aim for at least 200 words to develop your ideas fully."
	SuggestSpeed         = "Increase your writing speed by practising organising and expressing ideas quickly."
	SuggestPauses        = "Pause less while writing by planning the structure of the essay before you start."
	SuggestRevisions     = "Revise less as you go: finish a first draft, then edit."
	SuggestGrammarErrors = "Check for grammar issues, especially repeated words and overly long or short sentences."
	SuggestSentenceLen   = "Make sentences richer by combining related ideas into longer sentences."
	SuggestComplex       = "Use more complex sentences, joining clauses with conjunctions."
	SuggestParagraphs    = "Split the essay into more paragraphs, one main idea per paragraph."
	SuggestIntroduction  = "Add a clear introduction that presents the topic."
	SuggestConclusion    = "Add a conclusion that summarises the main points."
	SuggestTransitions   = "Use more transition words to connect sentences and paragraphs."

	ClosingExcellent = "Excellent writing! Keep up these strong habits."
	ClosingGood      = "Good writing. Keep refining vocabulary and grammar accuracy."
	ClosingFair      = "Solid foundation. Work on fluency and structure to improve further."
	ClosingPass      = "Writing needs improvement. Read more English articles and practise regularly."
	ClosingFail      = "Build core English writing skills systematically, for example through a writing course."
)

// Suggestions derives improvement advice from a scored report. Category rules
// are independent of each other; exactly one closing remark is appended.
func Suggestions(ws model.WritingScore) []string {
	out := []string{}
	add := func(cond bool, msg string) {
		if cond {
			out = append(out, msg)
		}
	}

	if v := ws.Vocabulary; v.Score < suggestionThreshold {
		add(v.TTR < 0.5, SuggestDiversify)
		add(v.AdvancedWords < 5, SuggestAdvancedWords)
		add(v.TotalWords < 200, SuggestLength)
	}
	if f := ws.Fluency; f.Score < suggestionThreshold {
		add(f.WPM < 30, SuggestSpeed)
		add(f.PauseCount > 30, SuggestPauses)
		add(f.RevisionRate > 0.3, SuggestRevisions)
	}
	if g := ws.Grammar; g.Score < suggestionThreshold {
		add(len(g.Errors) > 0, SuggestGrammarErrors)
		add(g.AverageSentenceLength < 12, SuggestSentenceLen)
		add(float64(g.ComplexSentences) < float64(g.SentenceCount)*0.3, SuggestComplex)
	}
	if s := ws.Structure; s.Score < suggestionThreshold {
		add(s.ParagraphCount < 3, SuggestParagraphs)
		add(!s.HasIntroduction, SuggestIntroduction)
		add(!s.HasConclusion, SuggestConclusion)
		add(s.Coherence < 0.5, SuggestTransitions)
	}

	return append(out, closingRemark(ws.OverallScore))
}

func closingRemark(overall int) string {
	switch {
	case overall >= 90:
		return ClosingExcellent
	case overall >= 80:
		return ClosingGood
	case overall >= 70:
		return ClosingFair
	case overall >= 60:
		return ClosingPass
	default:
		return ClosingFail
	}
}
