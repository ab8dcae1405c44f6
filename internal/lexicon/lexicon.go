package lexicon

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

//go:embed data/*.txt
var builtin embed.FS

// List names, also used as file names (<name>.txt) in override directories.
const (
	ListAdvanced     = "advanced"
	ListConjunctions = "conjunctions"
	ListIntroduction = "introduction"
	ListConclusion   = "conclusion"
	ListTransitions  = "transitions"
)

// ListNames returns every list name in a fixed order.
func ListNames() []string {
	return []string{ListAdvanced, ListConjunctions, ListIntroduction, ListConclusion, ListTransitions}
}

// Lexicon holds the curated word lists. It is immutable after construction
// and safe for concurrent use.
type Lexicon struct {
	advanced     map[string]struct{}
	conjunctions map[string]struct{}
	introduction []string
	conclusion   []string
	transitions  [][]string
}

var defaultLexicon = mustBuiltin()

// Default returns the built-in lexicon.
func Default() *Lexicon {
	return defaultLexicon
}

// Load builds a lexicon from the built-in lists, replacing any list for which
// dir contains a <name>.txt file. An empty dir yields the built-in lexicon.
func Load(dir string) (*Lexicon, error) {
	if dir == "" {
		return defaultLexicon, nil
	}
	lists := make(map[string][]string, len(ListNames()))
	for _, name := range ListNames() {
		path := filepath.Join(dir, name+".txt")
		words, err := LoadWords(path)
		switch {
		case err == nil:
			lists[name] = words
		case errors.Is(err, fs.ErrNotExist):
			words, err = builtinList(name)
			if err != nil {
				return nil, err
			}
			lists[name] = words
		default:
			return nil, fmt.Errorf("failed to load %s list: %w", name, err)
		}
	}
	return build(lists), nil
}

// IsAdvanced reports whether the folded word is in the advanced vocabulary.
func (l *Lexicon) IsAdvanced(word string) bool {
	_, ok := l.advanced[word]
	return ok
}

// IsConjunction reports whether the folded word is a listed conjunction.
func (l *Lexicon) IsConjunction(word string) bool {
	_, ok := l.conjunctions[word]
	return ok
}

// IntroductionSignals returns the lowercase introduction substrings.
func (l *Lexicon) IntroductionSignals() []string {
	return append([]string(nil), l.introduction...)
}

// ConclusionSignals returns the lowercase conclusion substrings.
func (l *Lexicon) ConclusionSignals() []string {
	return append([]string(nil), l.conclusion...)
}

// Transitions returns the transition phrases split into folded tokens.
func (l *Lexicon) Transitions() [][]string {
	out := make([][]string, len(l.transitions))
	for i, t := range l.transitions {
		out[i] = append([]string(nil), t...)
	}
	return out
}

// HasIntroductionSignal reports whether lowered contains any introduction signal.
func (l *Lexicon) HasIntroductionSignal(lowered string) bool {
	return containsAny(lowered, l.introduction)
}

// HasConclusionSignal reports whether lowered contains any conclusion signal.
func (l *Lexicon) HasConclusionSignal(lowered string) bool {
	return containsAny(lowered, l.conclusion)
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func mustBuiltin() *Lexicon {
	lists := make(map[string][]string, len(ListNames()))
	for _, name := range ListNames() {
		words, err := builtinList(name)
		if err != nil {
			panic(err)
		}
		lists[name] = words
	}
	return build(lists)
}

func builtinList(name string) ([]string, error) {
	f, err := builtin.Open("data/" + name + ".txt")
	if err != nil {
		return nil, fmt.Errorf("unknown built-in list %q: %w", name, err)
	}
	defer func() {
		_ = f.Close()
	}()
	return readWords(f)
}

func build(lists map[string][]string) *Lexicon {
	transitions := normalizeAll(lists[ListTransitions])
	phrases := make([][]string, 0, len(transitions))
	for _, t := range transitions {
		phrases = append(phrases, strings.Fields(t))
	}
	return &Lexicon{
		advanced:     toSet(normalizeAll(lists[ListAdvanced])),
		conjunctions: toSet(normalizeAll(lists[ListConjunctions])),
		introduction: normalizeAll(lists[ListIntroduction]),
		conclusion:   normalizeAll(lists[ListConclusion]),
		transitions:  phrases,
	}
}
