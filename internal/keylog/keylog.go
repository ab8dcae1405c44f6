// Package keylog reads, writes, records, and summarizes keystroke timelines.
package keylog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/verte-zerg/writescore/internal/model"
)

// PauseThresholdMs is the gap between consecutive events, in milliseconds,
// above which the writer is considered to have paused.
const PauseThresholdMs = 3000

var (
	// ErrUnknownEventType is returned for events whose type is not recognised.
	ErrUnknownEventType = errors.New("unknown keystroke event type")
	// ErrNotChronological is returned when timestamps decrease.
	ErrNotChronological = errors.New("keystroke events are not in chronological order")
)

// Decode reads a JSON array of keystroke events.
func Decode(r io.Reader) ([]model.KeystrokeEvent, error) {
	var events []model.KeystrokeEvent
	if err := json.NewDecoder(r).Decode(&events); err != nil {
		return nil, fmt.Errorf("failed to decode keystroke events: %w", err)
	}
	for i, ev := range events {
		if !ev.Type.Valid() {
			return nil, fmt.Errorf("event %d: %w: %q", i, ErrUnknownEventType, ev.Type)
		}
	}
	if events == nil {
		events = []model.KeystrokeEvent{}
	}
	return events, nil
}

// Load reads keystroke events from a JSON file.
func Load(path string) ([]model.KeystrokeEvent, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only input.
			_ = cerr
		}
	}()
	return Decode(file)
}

// Encode writes events as an indented JSON array.
func Encode(w io.Writer, events []model.KeystrokeEvent) error {
	if events == nil {
		events = []model.KeystrokeEvent{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(events)
}

// CheckOrder returns ErrNotChronological if any timestamp is smaller than
// the one before it.
func CheckOrder(events []model.KeystrokeEvent) error {
	for i := 1; i < len(events); i++ {
		if events[i].Timestamp < events[i-1].Timestamp {
			return fmt.Errorf("event %d: %w", i, ErrNotChronological)
		}
	}
	return nil
}

// Chronological returns a copy of events stably sorted by timestamp.
func Chronological(events []model.KeystrokeEvent) []model.KeystrokeEvent {
	out := make([]model.KeystrokeEvent, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp < out[j].Timestamp
	})
	return out
}

// Pauses scans consecutive events and returns how many gaps exceed
// PauseThresholdMs and their total length in milliseconds.
func Pauses(events []model.KeystrokeEvent) (count int, totalMs int64) {
	for i := 1; i < len(events); i++ {
		gap := events[i].Timestamp - events[i-1].Timestamp
		if gap > PauseThresholdMs {
			count++
			totalMs += gap
		}
	}
	return count, totalMs
}
