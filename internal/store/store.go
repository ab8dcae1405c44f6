// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/writescore/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrNotFound is returned when a submission does not exist.
var ErrNotFound = errors.New("submission not found")

// Fixed-width UTC timestamps keep lexical and chronological order equal.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store wraps SQLite access for scored submissions.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS submissions (
			id TEXT PRIMARY KEY,
			topic TEXT NOT NULL,
			body TEXT NOT NULL,
			submitted_at TEXT NOT NULL,
			time_used_sec INTEGER NOT NULL,
			event_count INTEGER NOT NULL,
			overall INTEGER NOT NULL,
			grade TEXT NOT NULL,
			vocabulary INTEGER NOT NULL,
			fluency INTEGER NOT NULL,
			grammar INTEGER NOT NULL,
			structure INTEGER NOT NULL,
			wpm INTEGER NOT NULL,
			total_words INTEGER NOT NULL,
			score_json TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_submissions_submitted_at ON submissions(submitted_at);`,
		`CREATE INDEX IF NOT EXISTS idx_submissions_grade ON submissions(grade);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertSubmission stores a scored submission. A missing ID is generated and
// a zero SubmittedAt is set to the current time. The stored ID is returned.
func (s *Store) InsertSubmission(ctx context.Context, sub model.Submission) (string, error) {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if sub.SubmittedAt.IsZero() {
		sub.SubmittedAt = s.now()
	}
	scoreJSON, err := json.Marshal(sub.Score)
	if err != nil {
		return "", fmt.Errorf("failed to encode score: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	ws := sub.Score
	_, err = tx.ExecContext(ctx,
		`INSERT INTO submissions (id, topic, body, submitted_at, time_used_sec, event_count, overall, grade,
			vocabulary, fluency, grammar, structure, wpm, total_words, score_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.ID,
		sub.Topic,
		sub.Text,
		sub.SubmittedAt.UTC().Format(timeLayout),
		sub.TimeUsedSec,
		sub.EventCount,
		ws.OverallScore,
		string(ws.Grade),
		ws.Vocabulary.Score,
		ws.Fluency.Score,
		ws.Grammar.Score,
		ws.Structure.Score,
		ws.Fluency.WPM,
		ws.Vocabulary.TotalWords,
		string(scoreJSON),
	)
	if err != nil {
		return "", err
	}
	if err = tx.Commit(); err != nil {
		return "", err
	}
	return sub.ID, nil
}

// GetSubmission loads one submission by ID, or by a unique ID prefix.
func (s *Store) GetSubmission(ctx context.Context, id string) (model.Submission, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return model.Submission{}, ErrNotFound
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, topic, body, submitted_at, time_used_sec, event_count, score_json
		 FROM submissions
		 WHERE id = ? OR id LIKE ?
		 ORDER BY id = ? DESC
		 LIMIT 2`, id, stripWildcards(id)+"%", id)
	if err != nil {
		return model.Submission{}, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var found []model.Submission
	for rows.Next() {
		var sub model.Submission
		var submittedAt, scoreJSON string
		if err := rows.Scan(&sub.ID, &sub.Topic, &sub.Text, &submittedAt, &sub.TimeUsedSec, &sub.EventCount, &scoreJSON); err != nil {
			return model.Submission{}, err
		}
		parsed, err := time.Parse(timeLayout, submittedAt)
		if err != nil {
			return model.Submission{}, err
		}
		sub.SubmittedAt = parsed
		if err := json.Unmarshal([]byte(scoreJSON), &sub.Score); err != nil {
			return model.Submission{}, fmt.Errorf("failed to decode score for %s: %w", sub.ID, err)
		}
		found = append(found, sub)
	}
	if err := rows.Err(); err != nil {
		return model.Submission{}, err
	}
	switch {
	case len(found) == 0:
		return model.Submission{}, ErrNotFound
	case found[0].ID == id || len(found) == 1:
		return found[0], nil
	default:
		return model.Submission{}, fmt.Errorf("id prefix %q is ambiguous", id)
	}
}

// ListSubmissions returns submission aggregates filtered by history config,
// oldest first.
func (s *Store) ListSubmissions(ctx context.Context, cfg model.HistoryConfig) ([]model.SubmissionAggregate, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Since != nil {
		clauses = append(clauses, "submitted_at >= ?")
		args = append(args, cfg.Since.UTC().Format(timeLayout))
	}
	if cfg.Grade != "" {
		clauses = append(clauses, "grade = ?")
		args = append(args, string(cfg.Grade))
	}
	limit := -1
	if cfg.Last > 0 {
		limit = cfg.Last
	}
	args = append(args, limit)
	query := fmt.Sprintf(`SELECT id, topic, submitted_at, overall, grade, vocabulary, fluency, grammar, structure, wpm, total_words
		FROM (
			SELECT * FROM submissions
			WHERE %s
			ORDER BY submitted_at DESC, id DESC
			LIMIT ?
		)
		ORDER BY submitted_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.SubmissionAggregate
	for rows.Next() {
		var agg model.SubmissionAggregate
		var submittedAt, grade string
		if err := rows.Scan(&agg.ID, &agg.Topic, &submittedAt, &agg.Overall, &grade,
			&agg.Vocabulary, &agg.Fluency, &agg.Grammar, &agg.Structure, &agg.WPM, &agg.TotalWords); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(timeLayout, submittedAt)
		if err != nil {
			return nil, err
		}
		agg.SubmittedAt = parsed
		agg.Grade = model.Grade(grade)
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteSubmission removes a submission by exact ID.
func (s *Store) DeleteSubmission(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM submissions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func stripWildcards(s string) string {
	return strings.NewReplacer("%", "", "_", "").Replace(s)
}
