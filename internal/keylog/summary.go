package keylog

import "github.com/verte-zerg/writescore/internal/model"

// Summary aggregates a keystroke timeline.
type Summary struct {
	Total           int
	Typed           int
	Deleted         int
	Pasted          int
	Cut             int
	Pauses          int
	TotalPauseMs    int64
	AveragePauseSec float64
	RevisionRate    float64
	DurationMs      int64
}

// Summarize counts events per type and measures pauses. Values are not
// rounded.
func Summarize(events []model.KeystrokeEvent) Summary {
	s := Summary{Total: len(events)}
	for _, ev := range events {
		switch ev.Type {
		case model.EventTyping:
			s.Typed++
		case model.EventDelete:
			s.Deleted++
		case model.EventPaste:
			s.Pasted++
		case model.EventCut:
			s.Cut++
		}
	}
	s.Pauses, s.TotalPauseMs = Pauses(events)
	if s.Pauses > 0 {
		s.AveragePauseSec = float64(s.TotalPauseMs) / float64(s.Pauses) / 1000
	}
	if s.Total > 0 {
		s.RevisionRate = float64(s.Deleted) / float64(s.Total)
		s.DurationMs = events[len(events)-1].Timestamp - events[0].Timestamp
	}
	return s
}
