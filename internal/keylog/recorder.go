package keylog

import (
	"time"

	"github.com/verte-zerg/writescore/internal/model"
)

// Recorder timestamps editor actions as they happen. It is not safe for
// concurrent use.
type Recorder struct {
	now    func() time.Time
	events []model.KeystrokeEvent
}

// NewRecorder returns a Recorder using the wall clock.
func NewRecorder() *Recorder {
	return &Recorder{now: time.Now}
}

// NewRecorderWithClock returns a Recorder reading time from now.
func NewRecorderWithClock(now func() time.Time) *Recorder {
	return &Recorder{now: now}
}

// Record appends an event. Empty content is omitted; a negative position
// means the position is unknown.
func (r *Recorder) Record(t model.EventType, content string, position int) {
	ev := model.KeystrokeEvent{
		Type:      t,
		Timestamp: r.now().UnixMilli(),
	}
	if content != "" {
		c := content
		ev.Content = &c
	}
	if position >= 0 {
		p := position
		ev.Position = &p
	}
	r.events = append(r.events, ev)
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	return len(r.events)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []model.KeystrokeEvent {
	out := make([]model.KeystrokeEvent, len(r.events))
	copy(out, r.events)
	return out
}

// Reset discards all recorded events.
func (r *Recorder) Reset() {
	r.events = nil
}
