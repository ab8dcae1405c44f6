// Package tui provides the Bubble Tea timed writing interface.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/writescore/internal/assess"
	"github.com/verte-zerg/writescore/internal/keylog"
	"github.com/verte-zerg/writescore/internal/lexicon"
	"github.com/verte-zerg/writescore/internal/logger"
	"github.com/verte-zerg/writescore/internal/model"
	"github.com/verte-zerg/writescore/internal/stats"
	"github.com/verte-zerg/writescore/internal/store"
	"github.com/verte-zerg/writescore/internal/textseg"
)

type phase int

const (
	phaseWriting phase = iota
	phaseResult
)

type tickMsg time.Time

// Model implements the Bubble Tea writing UI.
type Model struct {
	config model.WriteConfig
	topic  string
	lex    *lexicon.Lexicon
	engine *assess.Engine
	store  *store.Store
	now    func() time.Time
	log    logger.Logger

	width  int
	height int

	editor    textarea.Model
	recorder  *keylog.Recorder
	startedAt time.Time
	deadline  time.Time
	remaining time.Duration

	phase   phase
	score   model.WritingScore
	text    string
	savedID string
	saveErr error
}

var (
	topicStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	timerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	urgentStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	plainStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#D0D0D0"))
	advancedWord = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	gradeStyles  = map[model.Grade]lipgloss.Style{
		model.GradeA: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#52C41A")),
		model.GradeB: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A0D911")),
		model.GradeC: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FADB14")),
		model.GradeD: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FA8C16")),
		model.GradeF: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF4D4F")),
	}
)

const urgentThreshold = time.Minute

// NewModel constructs a writing TUI model. A nil store disables saving.
func NewModel(cfg model.WriteConfig, topic string, lex *lexicon.Lexicon, st *store.Store) *Model {
	return newModelWithClock(cfg, topic, lex, st, time.Now)
}

func newModelWithClock(cfg model.WriteConfig, topic string, lex *lexicon.Lexicon, st *store.Store, now func() time.Time) *Model {
	if lex == nil {
		lex = lexicon.Default()
	}
	editor := textarea.New()
	editor.Placeholder = "Start writing..."
	editor.ShowLineNumbers = false
	editor.CharLimit = 0
	editor.MaxHeight = 0
	editor.Focus()

	start := now()
	m := &Model{
		config:    cfg,
		topic:     topic,
		lex:       lex,
		engine:    assess.New(lex),
		store:     st,
		now:       now,
		log:       logger.Named("tui"),
		editor:    editor,
		recorder:  keylog.NewRecorderWithClock(now),
		startedAt: start,
		deadline:  start.Add(time.Duration(cfg.Minutes) * time.Minute),
		remaining: time.Duration(cfg.Minutes) * time.Minute,
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, tick())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor.SetWidth(m.contentWidth())
		m.editor.SetHeight(max(m.height-4, 3))
		return m, nil
	case tickMsg:
		if m.phase != phaseWriting {
			return m, nil
		}
		m.remaining = m.deadline.Sub(m.now())
		if m.remaining <= 0 {
			m.remaining = 0
			m.submit()
			return m, nil
		}
		return m, tick()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.phase == phaseResult {
			switch msg.String() {
			case "q", "esc", "enter":
				return m, tea.Quit
			}
			return m, nil
		}
		if msg.Type == tea.KeyCtrlS {
			m.submit()
			return m, nil
		}
		return m, m.handleEditorKey(msg)
	}
	if m.phase == phaseWriting {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleEditorKey forwards the key to the editor and records the change it
// made. Keys that leave the text unchanged are not recorded.
func (m *Model) handleEditorKey(msg tea.KeyMsg) tea.Cmd {
	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	after := m.editor.Value()
	if before == after {
		return cmd
	}
	pos, removed, inserted := diffText(before, after)
	switch {
	case msg.Paste:
		m.recorder.Record(model.EventPaste, inserted, pos)
	case isCutKey(msg):
		m.recorder.Record(model.EventCut, removed, pos)
	case removed != "" && inserted == "":
		m.recorder.Record(model.EventDelete, removed, pos)
	default:
		m.recorder.Record(model.EventTyping, inserted, pos)
	}
	return cmd
}

func isCutKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyCtrlK, tea.KeyCtrlU:
		return true
	default:
		return false
	}
}

// diffText returns the rune offset of the first change and the text removed
// and inserted there.
func diffText(before, after string) (int, string, string) {
	b, a := []rune(before), []rune(after)
	prefix := 0
	for prefix < len(b) && prefix < len(a) && b[prefix] == a[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(b)-prefix && suffix < len(a)-prefix && b[len(b)-1-suffix] == a[len(a)-1-suffix] {
		suffix++
	}
	return prefix, string(b[prefix : len(b)-suffix]), string(a[prefix : len(a)-suffix])
}

func (m *Model) submit() {
	if m.phase != phaseWriting {
		return
	}
	m.phase = phaseResult
	m.editor.Blur()
	m.text = m.editor.Value()

	limit := m.deadline.Sub(m.startedAt)
	used := min(m.now().Sub(m.startedAt), limit)
	seconds := int(used / time.Second)
	events := m.recorder.Events()
	m.score = m.engine.Score(m.text, events, seconds)

	ctx := context.Background()
	m.log.Debug(ctx, "scored submission",
		logger.Int("overall", m.score.OverallScore),
		logger.String("grade", string(m.score.Grade)),
		logger.Int("events", len(events)),
		logger.Int("seconds", seconds))

	if m.store == nil || !m.config.Save {
		return
	}
	id, err := m.store.InsertSubmission(ctx, model.Submission{
		Topic:       m.topic,
		Text:        m.text,
		SubmittedAt: m.now(),
		TimeUsedSec: seconds,
		EventCount:  len(events),
		Score:       m.score,
	})
	if err != nil {
		m.saveErr = err
		return
	}
	m.savedID = id
}

// Score returns the result once the session is submitted.
func (m *Model) Score() (model.WritingScore, bool) {
	return m.score, m.phase == phaseResult
}

// SaveErr returns the error from storing the submission, if any.
func (m *Model) SaveErr() error {
	return m.saveErr
}

// SavedID returns the stored submission ID, if any.
func (m *Model) SavedID() string {
	return m.savedID
}

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	if m.phase == phaseResult {
		body = m.resultView()
	} else {
		body = m.writingView()
	}
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, body)
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 80
	}
	return max(int(float64(m.width)*0.80), 20)
}

func (m *Model) writingView() string {
	width := m.contentWidth()
	header := wrapStyledRunes(styleRunes(m.topic, topicStyle), width)
	return strings.Join([]string{
		header,
		m.renderStatus(),
		m.editor.View(),
		footerStyle.Render("ctrl+s submit  ctrl+c quit"),
	}, "\n")
}

func (m *Model) renderStatus() string {
	words := len(textseg.Words(m.editor.Value()))
	secs := int(m.remaining.Round(time.Second) / time.Second)
	status := fmt.Sprintf("%02d:%02d left  %d words  %d keystrokes", secs/60, secs%60, words, m.recorder.Len())
	if m.remaining <= urgentThreshold {
		return urgentStyle.Render(status)
	}
	return timerStyle.Render(status)
}

func (m *Model) resultView() string {
	width := m.contentWidth()
	gradeStyle, ok := gradeStyles[m.score.Grade]
	if !ok {
		gradeStyle = plainStyle
	}
	var b strings.Builder
	b.WriteString(gradeStyle.Render(fmt.Sprintf("Grade %s  %d/100", m.score.Grade, m.score.OverallScore)))
	b.WriteString("\n\n")
	var report strings.Builder
	if err := stats.RenderScore(&report, m.score, width); err != nil {
		m.log.Warn(context.Background(), "failed to render score", logger.Error(err))
	}
	b.WriteString(report.String())
	if strings.TrimSpace(m.text) != "" {
		b.WriteString("\nYour text (advanced vocabulary highlighted)\n")
		b.WriteString(wrapStyledRunes(highlightAdvanced(m.text, m.lex), width))
		b.WriteString("\n")
	}
	switch {
	case m.savedID != "":
		b.WriteString(footerStyle.Render("\nSaved as " + m.savedID))
	case m.saveErr != nil:
		b.WriteString(urgentStyle.Render("\nNot saved: " + m.saveErr.Error()))
	}
	b.WriteString("\n" + footerStyle.Render("q quit"))
	return b.String()
}
