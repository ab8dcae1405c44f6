package stats

import (
	"sort"

	"github.com/verte-zerg/writescore/internal/model"
)

// TopicCount is the number of submissions and mean overall score per topic.
type TopicCount struct {
	Topic   string
	Count   int
	Average float64
}

// TopTopics returns the n most written topics, most frequent first.
func TopTopics(subs []model.SubmissionAggregate, n int) []TopicCount {
	if n <= 0 || len(subs) == 0 {
		return nil
	}
	byTopic := map[string]*TopicCount{}
	sums := map[string]int{}
	for _, s := range subs {
		tc, ok := byTopic[s.Topic]
		if !ok {
			tc = &TopicCount{Topic: s.Topic}
			byTopic[s.Topic] = tc
		}
		tc.Count++
		sums[s.Topic] += s.Overall
	}
	items := make([]TopicCount, 0, len(byTopic))
	for topic, tc := range byTopic {
		tc.Average = float64(sums[topic]) / float64(tc.Count)
		items = append(items, *tc)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Topic < items[j].Topic
		}
		return items[i].Count > items[j].Count
	})
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
