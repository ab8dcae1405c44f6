package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/writescore/internal/model"
)

// RenderOptions controls terminal-dependent layout.
type RenderOptions struct {
	Width       int
	ChartHeight int
	CurveWindow int
	UseColor    bool
}

// RenderReport prints the full history report.
func RenderReport(w io.Writer, report Report, opts RenderOptions) error {
	if err := RenderSummary(w, report.Submissions); err != nil {
		return err
	}
	if len(report.Submissions) == 0 {
		return nil
	}
	if err := RenderDimensionTable(w, report.Submissions, opts.CurveWindow); err != nil {
		return err
	}
	if len(report.Focus) > 0 {
		names := make([]string, len(report.Focus))
		for i, d := range report.Focus {
			names[i] = string(d)
		}
		if _, err := fmt.Fprintf(w, "Focus next on: %s\n\n", strings.Join(names, ", ")); err != nil {
			return err
		}
	}
	if err := renderTopics(w, report.Topics); err != nil {
		return err
	}
	return RenderCurves(w, report.Submissions, opts.CurveWindow, opts.Width, opts.ChartHeight, opts.UseColor)
}

func renderTopics(w io.Writer, topics []TopicCount) error {
	if len(topics) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Topics"); err != nil {
		return err
	}
	rows := make([][]string, 0, len(topics))
	for _, tc := range topics {
		rows = append(rows, []string{tc.Topic, fmt.Sprintf("%d", tc.Count), fmt.Sprintf("%.1f", tc.Average)})
	}
	for _, line := range formatTable([]string{"Topic", "Count", "Avg"}, rows, map[int]bool{1: true, 2: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderScore prints one writing report. Suggestions are wrapped to width
// columns when width is positive.
func RenderScore(w io.Writer, ws model.WritingScore, width int) error {
	v, f, g, s := ws.Vocabulary, ws.Fluency, ws.Grammar, ws.Structure
	rows := [][]string{
		{"Vocabulary", fmt.Sprintf("%d", v.Score),
			fmt.Sprintf("%d words, %d unique, ttr %.2f, %d advanced", v.TotalWords, v.UniqueWords, v.TTR, v.AdvancedWords)},
		{"Fluency", fmt.Sprintf("%d", f.Score),
			fmt.Sprintf("%d wpm, %d pauses (avg %ds), revision rate %.2f", f.WPM, f.PauseCount, f.AveragePauseTime, f.RevisionRate)},
		{"Grammar", fmt.Sprintf("%d", g.Score),
			fmt.Sprintf("%d sentences, avg %d words, %d complex, %d issues", g.SentenceCount, g.AverageSentenceLength, g.ComplexSentences, len(g.Errors))},
		{"Structure", fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d paragraphs, intro %s, conclusion %s, coherence %.2f", s.ParagraphCount, yesNo(s.HasIntroduction), yesNo(s.HasConclusion), s.Coherence)},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Overall: %d (%s)\n\n", ws.OverallScore, ws.Grade)
	for _, line := range formatTable([]string{"Dimension", "Score", "Details"}, rows, map[int]bool{1: true}) {
		b.WriteString(line + "\n")
	}
	if len(g.Errors) > 0 {
		b.WriteString("\nIssues\n")
		for _, e := range g.Errors {
			b.WriteString(bullet(e, width))
		}
	}
	if len(ws.Suggestions) > 0 {
		b.WriteString("\nSuggestions\n")
		for _, sug := range ws.Suggestions {
			b.WriteString(bullet(sug, width))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func bullet(text string, width int) string {
	lines := []string{text}
	if width > 14 {
		lines = wrapWords(text, width-4)
	}
	for i := range lines {
		prefix := "    "
		if i == 0 {
			prefix = "  - "
		}
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n") + "\n"
}

// wrapWords breaks text at spaces so no line exceeds width columns unless a
// single word is wider.
func wrapWords(text string, width int) []string {
	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, word := range strings.Fields(text) {
		ww := runewidth.StringWidth(word)
		if lineWidth > 0 && lineWidth+1+ww > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += ww
	}
	if lineWidth > 0 || len(lines) == 0 {
		lines = append(lines, line.String())
	}
	return lines
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
