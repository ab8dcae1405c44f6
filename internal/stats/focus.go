package stats

import (
	"sort"

	"github.com/verte-zerg/writescore/internal/model"
)

// FocusAreas returns up to top dimensions with the lowest average sub-score
// across subs, weakest first.
func FocusAreas(subs []model.SubmissionAggregate, top int) []Dimension {
	if len(subs) == 0 {
		return nil
	}
	candidates := make([]Dimension, len(Dimensions))
	copy(candidates, Dimensions)
	avg := make(map[Dimension]float64, len(Dimensions))
	for _, d := range Dimensions {
		avg[d] = mean(Series(subs, d.Of))
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return avg[candidates[i]] < avg[candidates[j]]
	})
	if top <= 0 || top > len(candidates) {
		top = len(candidates)
	}
	return candidates[:top]
}
