// Package prompt selects writing topics and session lengths.
package prompt

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// DefaultMinutes is the session length used when none is configured.
const DefaultMinutes = 20

// Durations lists the session lengths offered to writers, in minutes.
var Durations = []int{15, 20, 25, 30}

var builtinTopics = []string{
	"Describe your ideal workplace environment",
	"The importance of teamwork in modern business",
	"How technology has changed communication",
	"Your experience with remote work",
	"The role of leadership in organizations",
	"Challenges facing businesses today",
	"The impact of globalization",
	"Your career goals and aspirations",
}

// Topics returns a copy of the built-in topics.
func Topics() []string {
	out := make([]string, len(builtinTopics))
	copy(out, builtinTopics)
	return out
}

// Picker chooses topics at random.
type Picker struct {
	rnd *rand.Rand
}

// New returns a Picker. A zero seed uses the current time.
func New(seed int64) *Picker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Picker{rnd: rand.New(rand.NewSource(seed))}
}

// Pick returns custom when it is non-blank, otherwise a built-in topic.
func (p *Picker) Pick(custom string) string {
	if trimmed := strings.TrimSpace(custom); trimmed != "" {
		return trimmed
	}
	return builtinTopics[p.rnd.Intn(len(builtinTopics))]
}

// ValidateMinutes accepts any positive length up to two hours.
func ValidateMinutes(minutes int) error {
	if minutes <= 0 || minutes > 120 {
		return fmt.Errorf("minutes must be between 1 and 120, got %d", minutes)
	}
	return nil
}

// IsPreset reports whether minutes is one of Durations.
func IsPreset(minutes int) bool {
	for _, d := range Durations {
		if d == minutes {
			return true
		}
	}
	return false
}
