// Package stats contains history calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/writescore/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Dimension names one of the four scored dimensions.
type Dimension string

const (
	DimVocabulary Dimension = "Vocabulary"
	DimFluency    Dimension = "Fluency"
	DimGrammar    Dimension = "Grammar"
	DimStructure  Dimension = "Structure"
)

// Dimensions lists the scored dimensions in report order.
var Dimensions = []Dimension{DimVocabulary, DimFluency, DimGrammar, DimStructure}

// Of returns the dimension's sub-score for a submission.
func (d Dimension) Of(agg model.SubmissionAggregate) int {
	switch d {
	case DimVocabulary:
		return agg.Vocabulary
	case DimFluency:
		return agg.Fluency
	case DimGrammar:
		return agg.Grammar
	case DimStructure:
		return agg.Structure
	default:
		return 0
	}
}

// Series extracts one float per submission using value.
func Series(subs []model.SubmissionAggregate, value func(model.SubmissionAggregate) int) []float64 {
	out := make([]float64, len(subs))
	for i, s := range subs {
		out[i] = float64(value(s))
	}
	return out
}

// Overall returns the overall score of a submission.
func Overall(agg model.SubmissionAggregate) int {
	return agg.Overall
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 || len(values) == 0 {
		copy(out, values)
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		n := i + 1
		if i >= window {
			sum -= values[i-window]
			n = window
		}
		out[i] = sum / float64(n)
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := minMax(values)
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	last := len(sparkChars) - 1
	for _, v := range values {
		idx := int(math.Round((v - minVal) / (maxVal - minVal) * float64(last)))
		idx = max(0, min(idx, last))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

func minMax(values []float64) (float64, float64) {
	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	return minVal, maxVal
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// GradeDistribution counts submissions per grade. Every grade is present.
func GradeDistribution(subs []model.SubmissionAggregate) map[model.Grade]int {
	dist := make(map[model.Grade]int, len(model.Grades))
	for _, g := range model.Grades {
		dist[g] = 0
	}
	for _, s := range subs {
		dist[s.Grade]++
	}
	return dist
}

// RenderSummary prints headline numbers for submissions.
func RenderSummary(w io.Writer, subs []model.SubmissionAggregate) error {
	if len(subs) == 0 {
		_, err := fmt.Fprintln(w, "No submissions found.")
		return err
	}
	overall := Series(subs, Overall)
	_, best := minMax(overall)
	var words, wpm float64
	for _, s := range subs {
		words += float64(s.TotalWords)
		wpm += float64(s.WPM)
	}
	count := float64(len(subs))

	dist := GradeDistribution(subs)
	parts := make([]string, 0, len(model.Grades))
	for _, g := range model.Grades {
		parts = append(parts, fmt.Sprintf("%s:%d", g, dist[g]))
	}

	lines := []string{
		"Summary",
		fmt.Sprintf("Submissions: %d", len(subs)),
		fmt.Sprintf("Avg Overall: %.1f", mean(overall)),
		fmt.Sprintf("Best Overall: %.0f", best),
		fmt.Sprintf("Latest: %d (%s)", subs[len(subs)-1].Overall, subs[len(subs)-1].Grade),
		fmt.Sprintf("Avg Words: %.0f", words/count),
		fmt.Sprintf("Avg WPM: %.1f", wpm/count),
		"Grades: " + strings.Join(parts, " "),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderDimensionTable prints average, best, and latest sub-scores with a
// trend sparkline smoothed over window submissions.
func RenderDimensionTable(w io.Writer, subs []model.SubmissionAggregate, window int) error {
	if len(subs) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Per-Dimension"); err != nil {
		return err
	}
	headers := []string{"Dimension", "Avg", "Best", "Latest", "Trend"}
	rows := make([][]string, 0, len(Dimensions)+1)
	addRow := func(name string, values []float64) {
		_, best := minMax(values)
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%.1f", mean(values)),
			fmt.Sprintf("%.0f", best),
			fmt.Sprintf("%.0f", values[len(values)-1]),
			Sparkline(MovingAverage(values, window)),
		})
	}
	for _, d := range Dimensions {
		addRow(string(d), Series(subs, d.Of))
	}
	addRow("Overall", Series(subs, Overall))

	lines := formatTable(headers, rows, map[int]bool{1: true, 2: true, 3: true})
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderCurves charts the smoothed overall and per-dimension scores.
func RenderCurves(w io.Writer, subs []model.SubmissionAggregate, window, totalWidth, height int, useColor bool) error {
	if len(subs) < 2 {
		return nil
	}
	series := []ChartSeries{{Name: "Overall", Values: MovingAverage(Series(subs, Overall), window)}}
	for _, d := range Dimensions {
		series = append(series, ChartSeries{Name: string(d), Values: MovingAverage(Series(subs, d.Of), window)})
	}
	chart := Chart{
		Title:    "Score Curves",
		Width:    ChartWidthFor(totalWidth),
		Height:   height,
		UseColor: useColor,
	}
	return chart.Render(w, series)
}
