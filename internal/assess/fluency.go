package assess

import (
	"strings"

	"github.com/verte-zerg/writescore/internal/keylog"
	"github.com/verte-zerg/writescore/internal/model"
	"github.com/verte-zerg/writescore/internal/textseg"
)

var (
	wpmBands = []band{
		{atLeast(40), 40},
		{atLeast(30), 35},
		{atLeast(20), 25},
		{always, 15},
	}
	// 15 pauses matches the first row.
	pauseBands = []band{
		{closed(5, 15), 30},
		{closed(15, 25), 25},
		{closed(25, 40), 15},
		{always, 10},
	}
	revisionBands = []band{
		{closed(0.1, 0.2), 30},
		{leftOpen(0.2, 0.3), 25},
		{leftOpen(0.3, 0.4), 15},
		{always, 10},
	}
)

// Fluency measures writing speed, pauses, and revisions. Events are read in
// the order given, which callers keep chronological.
func (e *Engine) Fluency(text string, events []model.KeystrokeEvent, timeUsedSeconds int) model.FluencyScore {
	if strings.TrimSpace(text) == "" {
		return model.FluencyScore{}
	}

	wpm := 0
	if timeUsedSeconds > 0 {
		minutes := float64(timeUsedSeconds) / 60
		wpm = roundInt(float64(len(textseg.Words(text))) / minutes)
	}

	sum := keylog.Summarize(events)
	pauses := sum.Pauses
	avgPause := roundInt(sum.AveragePauseSec)
	revisionRate := round2(sum.RevisionRate)

	score := award(float64(wpm), wpmBands) +
		award(float64(pauses), pauseBands) +
		award(revisionRate, revisionBands)

	return model.FluencyScore{
		WPM:              wpm,
		PauseCount:       pauses,
		AveragePauseTime: avgPause,
		RevisionRate:     revisionRate,
		Score:            clampScore(score),
	}
}
