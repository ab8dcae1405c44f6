package lexicon

import "strings"

// Normalize lowercases an entry and collapses inner whitespace so that
// multi-word phrases compare consistently.
func Normalize(entry string) string {
	return strings.Join(strings.Fields(strings.ToLower(entry)), " ")
}

func normalizeAll(entries []string) []string {
	out := make([]string, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		n := Normalize(e)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

func toSet(entries []string) map[string]struct{} {
	set := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		set[e] = struct{}{}
	}
	return set
}
