package stats

import (
	"context"

	"github.com/verte-zerg/writescore/internal/model"
	"github.com/verte-zerg/writescore/internal/store"
)

const (
	focusCount = 2
	topicCount = 5
)

// Report contains precomputed data for history rendering.
type Report struct {
	Submissions []model.SubmissionAggregate
	Window      []model.SubmissionAggregate
	Focus       []Dimension
	Topics      []TopicCount
}

// BuildReport loads and prepares data for history rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.HistoryConfig) (Report, error) {
	subs, err := st.ListSubmissions(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	window := lastN(subs, cfg.CurveWindow)
	return Report{
		Submissions: subs,
		Window:      window,
		Focus:       FocusAreas(window, focusCount),
		Topics:      TopTopics(subs, topicCount),
	}, nil
}

func lastN(subs []model.SubmissionAggregate, n int) []model.SubmissionAggregate {
	if n <= 0 || len(subs) <= n {
		return subs
	}
	return subs[len(subs)-n:]
}
