// Package textseg splits English text into words, sentences, and paragraphs.
package textseg

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
)

var paragraphBreak = regexp.MustCompile(`\n{2,}`)

// Words returns the word-like tokens of text in order. Tokens come from
// Unicode word segmentation, so contractions such as "don't" stay whole;
// whitespace and punctuation-only segments are dropped.
func Words(text string) []string {
	var out []string
	tokens := words.FromString(text)
	for tokens.Next() {
		tok := tokens.Value()
		if isWordLike(tok) {
			out = append(out, tok)
		}
	}
	return out
}

// Fold lowercases and trims every token.
func Fold(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = strings.ToLower(strings.TrimSpace(tok))
	}
	return out
}

// Sentences splits text at runs of '.', '!' or '?' that are followed by
// whitespace or the end of text. Closing quotes and brackets directly after
// the terminator stay with the sentence. A trailing fragment without a
// terminator counts as a sentence.
func Sentences(text string) []string {
	runes := []rune(text)
	var out []string
	start := 0
	for i := 0; i < len(runes); {
		if !isTerminator(runes[i]) {
			i++
			continue
		}
		end := i
		for end < len(runes) && isTerminator(runes[end]) {
			end++
		}
		for end < len(runes) && isCloser(runes[end]) {
			end++
		}
		if end == len(runes) || unicode.IsSpace(runes[end]) {
			out = appendSentence(out, string(runes[start:end]))
			start = end
		}
		i = end
	}
	if start < len(runes) {
		out = appendSentence(out, string(runes[start:]))
	}
	return out
}

// Paragraphs splits text on runs of two or more newlines, trimming each
// paragraph and dropping empty ones.
func Paragraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := paragraphBreak.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// CountPhrase counts whole-token occurrences of phrase in folded tokens.
// Overlapping matches are counted.
func CountPhrase(folded, phrase []string) int {
	if len(phrase) == 0 || len(phrase) > len(folded) {
		return 0
	}
	count := 0
	for i := 0; i+len(phrase) <= len(folded); i++ {
		match := true
		for j, p := range phrase {
			if folded[i+j] != p {
				match = false
				break
			}
		}
		if match {
			count++
		}
	}
	return count
}

func appendSentence(out []string, s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return out
	}
	return append(out, s)
}

func isWordLike(tok string) bool {
	for _, r := range tok {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '”', '’':
		return true
	}
	return false
}
