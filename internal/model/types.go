// Package model defines shared data structures.
package model

import (
	"strings"
	"time"
)

// EventType identifies the kind of editor action a keystroke event records.
type EventType string

// Keystroke event kinds.
const (
	EventTyping EventType = "type"
	EventDelete EventType = "delete"
	EventPaste  EventType = "paste"
	EventCut    EventType = "cut"
)

// Valid reports whether t is one of the known event kinds.
func (t EventType) Valid() bool {
	switch t {
	case EventTyping, EventDelete, EventPaste, EventCut:
		return true
	}
	return false
}

// KeystrokeEvent is a single editor action captured while writing.
// Timestamp is epoch milliseconds.
type KeystrokeEvent struct {
	Type      EventType `json:"type"`
	Timestamp int64     `json:"timestamp"`
	Content   *string   `json:"content,omitempty"`
	Position  *int      `json:"position,omitempty"`
}

// VocabularyScore captures lexical diversity metrics.
type VocabularyScore struct {
	TotalWords    int     `json:"totalWords"`
	UniqueWords   int     `json:"uniqueWords"`
	TTR           float64 `json:"ttr"`
	AdvancedWords int     `json:"advancedWords"`
	Score         int     `json:"score"`
}

// FluencyScore captures speed, pause, and revision metrics.
type FluencyScore struct {
	WPM              int     `json:"wpm"`
	PauseCount       int     `json:"pauseCount"`
	AveragePauseTime int     `json:"averagePauseTime"`
	RevisionRate     float64 `json:"revisionRate"`
	Score            int     `json:"score"`
}

// GrammarScore captures sentence-level metrics and detected issues.
type GrammarScore struct {
	SentenceCount         int      `json:"sentenceCount"`
	AverageSentenceLength int      `json:"averageSentenceLength"`
	ComplexSentences      int      `json:"complexSentences"`
	Errors                []string `json:"errors"`
	Score                 int      `json:"score"`
}

// StructureScore captures paragraph organisation metrics.
type StructureScore struct {
	ParagraphCount  int     `json:"paragraphCount"`
	HasIntroduction bool    `json:"hasIntroduction"`
	HasConclusion   bool    `json:"hasConclusion"`
	Coherence       float64 `json:"coherence"`
	Score           int     `json:"score"`
}

// Grade is the letter grade derived from the overall score.
type Grade string

// Letter grades, best first.
const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Grades lists every grade from best to worst.
var Grades = []Grade{GradeA, GradeB, GradeC, GradeD, GradeF}

// ParseGrade accepts a grade letter in either case.
func ParseGrade(s string) (Grade, bool) {
	g := Grade(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Grades {
		if g == known {
			return g, true
		}
	}
	return "", false
}

// WritingScore is the full assessment report for one writing sample.
type WritingScore struct {
	Vocabulary   VocabularyScore `json:"vocabulary"`
	Fluency      FluencyScore    `json:"fluency"`
	Grammar      GrammarScore    `json:"grammar"`
	Structure    StructureScore  `json:"structure"`
	OverallScore int             `json:"overallScore"`
	Grade        Grade           `json:"grade"`
	Suggestions  []string        `json:"suggestions"`
}

// WriteConfig defines timed writing session settings.
type WriteConfig struct {
	Minutes    int
	Topic      string
	Seed       int64
	Save       bool
	LexiconDir string
}

// HistoryConfig defines filters for history output.
type HistoryConfig struct {
	Since       *time.Time
	Last        int
	CurveWindow int
	Grade       Grade
}

// Submission is a scored writing sample as persisted.
type Submission struct {
	ID          string       `json:"id"`
	Topic       string       `json:"topic"`
	Text        string       `json:"text"`
	SubmittedAt time.Time    `json:"submittedAt"`
	TimeUsedSec int          `json:"timeUsedSeconds"`
	EventCount  int          `json:"eventCount"`
	Score       WritingScore `json:"score"`
}

// SubmissionAggregate summarizes a stored submission for reporting.
type SubmissionAggregate struct {
	ID          string
	Topic       string
	SubmittedAt time.Time
	Overall     int
	Grade       Grade
	Vocabulary  int
	Fluency     int
	Grammar     int
	Structure   int
	WPM         int
	TotalWords  int
}
