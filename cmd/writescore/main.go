// Package main provides the CLI entrypoint for writescore.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/writescore/internal/assess"
	"github.com/verte-zerg/writescore/internal/config"
	"github.com/verte-zerg/writescore/internal/keylog"
	"github.com/verte-zerg/writescore/internal/lexicon"
	"github.com/verte-zerg/writescore/internal/logger"
	"github.com/verte-zerg/writescore/internal/model"
	"github.com/verte-zerg/writescore/internal/prompt"
	"github.com/verte-zerg/writescore/internal/stats"
	"github.com/verte-zerg/writescore/internal/store"
	"github.com/verte-zerg/writescore/internal/tui"
)

const (
	defaultLogLevel    = "warn"
	defaultCurveWindow = 5
	defaultChartHeight = 8
	fallbackTermWidth  = 80
)

var (
	logLevel   string
	dbPath     string
	lexiconDir string

	writeMinutes int
	writeTopic   string
	writeSeed    int64
	writeNoSave  bool

	scoreTextPath   string
	scoreEventsPath string
	scoreTime       int
	scoreFormat     string
	scoreSave       bool
	scoreTopic      string

	historySince       string
	historyLast        int
	historyCurveWindow int
	historyGrade       string

	showFormat string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "writescore",
		Short:             "Timed writing practice with automatic scoring",
		SilenceUsage:      true,
		SilenceErrors:     false,
		PersistentPreRunE: setupLogging,
		RunE:              runWriteCmd,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&lexiconDir, "lexicon-dir", "", "directory with word list overrides (default: XDG config dir)")

	rootCmd.Flags().IntVar(&writeMinutes, "minutes", prompt.DefaultMinutes, "session length in minutes (presets: 15, 20, 25, 30)")
	rootCmd.Flags().StringVar(&writeTopic, "topic", "", "custom topic (default: random built-in topic)")
	rootCmd.Flags().Int64Var(&writeSeed, "seed", 0, "seed for topic selection (0 = time based)")
	rootCmd.Flags().BoolVar(&writeNoSave, "no-save", false, "do not store the result")

	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func loadFileConfig() (config.FileConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	return fileCfg, nil
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("log-level") && fileCfg.Log.Level != nil {
		logLevel = *fileCfg.Log.Level
	}
	if !cmd.Flags().Changed("lexicon-dir") && fileCfg.Scoring.LexiconDir != nil {
		lexiconDir = *fileCfg.Scoring.LexiconDir
	}
	if err := logger.Init(cmd.ErrOrStderr(), logLevel); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	return nil
}

func runWriteCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	applyIntConfig(cmd, "minutes", &writeMinutes, fileCfg.Write.Minutes)
	applyStringConfig(cmd, "topic", &writeTopic, fileCfg.Write.Topic)
	if fileCfg.Write.Save != nil && !cmd.Flags().Changed("no-save") {
		writeNoSave = !*fileCfg.Write.Save
	}

	cfg := model.WriteConfig{
		Minutes:    writeMinutes,
		Topic:      writeTopic,
		Seed:       writeSeed,
		Save:       !writeNoSave,
		LexiconDir: resolveLexiconDir(),
	}
	if err := prompt.ValidateMinutes(cfg.Minutes); err != nil {
		return fmt.Errorf("invalid --minutes: %w", err)
	}
	if !prompt.IsPreset(cfg.Minutes) {
		logger.Get().Info(cmd.Context(), "using a non-standard session length", logger.Int("minutes", cfg.Minutes))
	}

	lex, err := lexicon.Load(cfg.LexiconDir)
	if err != nil {
		return fmt.Errorf("failed to load lexicon: %w", err)
	}

	var st *store.Store
	if cfg.Save {
		st, err = openStore()
		if err != nil {
			return err
		}
		defer closeStore(cmd.Context(), st)
	}

	topic := prompt.New(cfg.Seed).Pick(cfg.Topic)
	m := tui.NewModel(cfg, topic, lex, st)
	program := tea.NewProgram(m, tea.WithAltScreen())
	// Log lines on stderr would draw over the alternate screen.
	restoreLog := logger.Redirect(io.Discard)
	_, err = program.Run()
	restoreLog()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if serr := m.SaveErr(); serr != nil {
		logger.Get().Error(cmd.Context(), "failed to save submission", logger.Error(serr))
	}
	if ws, done := m.Score(); done {
		out := cmd.OutOrStdout()
		if err := stats.RenderScore(out, ws, terminalWidth(out)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if id := m.SavedID(); id != "" {
			if _, err := fmt.Fprintf(out, "\nSaved as %s\n", id); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}
	return nil
}

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a text file without the editor",
		Args:  cobra.NoArgs,
		RunE:  runScoreCmd,
	}
	cmd.Flags().StringVar(&scoreTextPath, "text", "", "text file to score, or - for stdin")
	cmd.Flags().StringVar(&scoreEventsPath, "events", "", "JSON file with keystroke events")
	cmd.Flags().IntVar(&scoreTime, "time", -1, "seconds spent writing")
	cmd.Flags().StringVar(&scoreFormat, "format", "text", "output format: text or json")
	cmd.Flags().BoolVar(&scoreSave, "save", false, "store the result")
	cmd.Flags().StringVar(&scoreTopic, "topic", "", "topic recorded with a saved result")
	_ = cmd.MarkFlagRequired("text")
	_ = cmd.MarkFlagRequired("time")
	return cmd
}

func runScoreCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if scoreTime < 0 {
		return fmt.Errorf("--time must be >= 0")
	}
	if err := validateFormat(scoreFormat); err != nil {
		return err
	}
	text, err := readText(cmd.InOrStdin(), scoreTextPath)
	if err != nil {
		return err
	}

	events := []model.KeystrokeEvent{}
	if scoreEventsPath != "" {
		events, err = keylog.Load(scoreEventsPath)
		if err != nil {
			return fmt.Errorf("failed to load events: %w", err)
		}
		if err := keylog.CheckOrder(events); err != nil {
			logger.Get().Warn(ctx, "sorting keystroke events by timestamp", logger.Error(err))
			events = keylog.Chronological(events)
		}
	}

	lex, err := lexicon.Load(resolveLexiconDir())
	if err != nil {
		return fmt.Errorf("failed to load lexicon: %w", err)
	}
	ws := assess.New(lex).Score(text, events, scoreTime)
	summary := keylog.Summarize(events)
	logger.Get().Debug(ctx, "scored text",
		logger.Int("events", summary.Total),
		logger.Int("pauses", summary.Pauses),
		logger.Float64("avgPauseSec", summary.AveragePauseSec),
		logger.Int("overall", ws.OverallScore))

	savedID := ""
	if scoreSave {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore(ctx, st)
		savedID, err = st.InsertSubmission(ctx, model.Submission{
			Topic:       scoreTopic,
			Text:        text,
			SubmittedAt: time.Now(),
			TimeUsedSec: scoreTime,
			EventCount:  len(events),
			Score:       ws,
		})
		if err != nil {
			return fmt.Errorf("failed to save submission: %w", err)
		}
		logger.Get().Info(ctx, "saved submission", logger.String("id", savedID))
	}

	out := cmd.OutOrStdout()
	if scoreFormat == "json" {
		return writeJSON(out, ws)
	}
	if err := stats.RenderScore(out, ws, terminalWidth(out)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if savedID != "" {
		if _, err := fmt.Fprintf(out, "\nSaved as %s\n", savedID); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show stored results and progress",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N submissions")
	cmd.Flags().IntVar(&historyCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	cmd.Flags().StringVar(&historyGrade, "grade", "", "only submissions with this grade (A-F)")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	if historyCurveWindow < 0 {
		return fmt.Errorf("--curve-window must be >= 0")
	}
	var grade model.Grade
	if historyGrade != "" {
		g, ok := model.ParseGrade(historyGrade)
		if !ok {
			return fmt.Errorf("invalid --grade value %q (expected A, B, C, D or F)", historyGrade)
		}
		grade = g
	}

	cfg := model.HistoryConfig{
		Since:       sinceTime,
		Last:        historyLast,
		CurveWindow: historyCurveWindow,
		Grade:       grade,
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(cmd.Context(), st)

	report, err := stats.BuildReport(cmd.Context(), st, cfg)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	out := cmd.OutOrStdout()
	return stats.RenderReport(out, report, stats.RenderOptions{
		Width:       terminalWidth(out),
		ChartHeight: defaultChartHeight,
		CurveWindow: cfg.CurveWindow,
		UseColor:    useColor(out),
	})
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one stored result",
		Args:  cobra.ExactArgs(1),
		RunE:  runShowCmd,
	}
	cmd.Flags().StringVar(&showFormat, "format", "text", "output format: text or json")
	return cmd
}

func runShowCmd(cmd *cobra.Command, args []string) error {
	if err := validateFormat(showFormat); err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(cmd.Context(), st)

	sub, err := st.GetSubmission(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no submission with id %q", args[0])
		}
		return fmt.Errorf("failed to load submission: %w", err)
	}

	out := cmd.OutOrStdout()
	if showFormat == "json" {
		return writeJSON(out, sub)
	}
	topic := sub.Topic
	if topic == "" {
		topic = "(none)"
	}
	header := []string{
		"ID: " + sub.ID,
		"Topic: " + topic,
		"Submitted: " + sub.SubmittedAt.Local().Format("2006-01-02 15:04"),
		fmt.Sprintf("Time used: %dm%02ds  Keystrokes: %d", sub.TimeUsedSec/60, sub.TimeUsedSec%60, sub.EventCount),
		"",
	}
	if _, err := fmt.Fprintln(out, strings.Join(header, "\n")); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return stats.RenderScore(out, sub.Score, terminalWidth(out))
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one stored result",
		Args:  cobra.ExactArgs(1),
		RunE:  runDeleteCmd,
	}
}

func runDeleteCmd(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(cmd.Context(), st)

	sub, err := st.GetSubmission(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no submission with id %q", args[0])
		}
		return fmt.Errorf("failed to load submission: %w", err)
	}
	if err := st.DeleteSubmission(cmd.Context(), sub.ID); err != nil {
		return fmt.Errorf("failed to delete submission: %w", err)
	}
	logger.Get().Info(cmd.Context(), "submission deleted", logger.String("id", sub.ID))
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", sub.ID); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List built-in writing topics",
		Args:  cobra.NoArgs,
		RunE:  runTopicsCmd,
	}
}

func runTopicsCmd(cmd *cobra.Command, _ []string) error {
	for _, topic := range prompt.Topics() {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), topic); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# writescore configuration
# Uncomment a value to enable it. CLI flags override config values.

[write]
# minutes = %d            # Session length in minutes (presets: 15, 20, 25, 30)
# topic = ""              # Custom topic; empty picks a built-in topic
# save = true             # Store results in the history database

[scoring]
# lexicon-dir = %q        # Directory with advanced.txt, conjunctions.txt, ... overrides

[log]
# level = %q              # debug, info, warn, error
`,
		prompt.DefaultMinutes,
		config.DefaultLexiconDir(),
		defaultLogLevel,
	)
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func validateFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("--format must be text or json, got %q", format)
	}
}

func readText(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read text: %w", err)
	}
	return string(data), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func resolveLexiconDir() string {
	if lexiconDir != "" {
		return lexiconDir
	}
	return config.DefaultLexiconDir()
}

func openStore() (*store.Store, error) {
	path := dbPath
	if path == "" {
		path = config.DefaultDBPath()
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, nil
}

func closeStore(ctx context.Context, st *store.Store) {
	if cerr := st.Close(); cerr != nil {
		logger.Get().Warn(ctx, "failed to close db", logger.Error(cerr))
	}
}

func terminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok {
		return fallbackTermWidth
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return fallbackTermWidth
	}
	return width
}

func useColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
