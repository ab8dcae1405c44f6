package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/writescore/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "writescore.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})
	return st
}

func sampleSubmission(at time.Time, overall int, grade model.Grade) model.Submission {
	return model.Submission{
		Topic:       "The impact of globalization",
		Text:        "Some essay text.",
		SubmittedAt: at,
		TimeUsedSec: 600,
		EventCount:  42,
		Score: model.WritingScore{
			Vocabulary:   model.VocabularyScore{TotalWords: 3, UniqueWords: 3, TTR: 1, Score: 45},
			Fluency:      model.FluencyScore{WPM: 25, RevisionRate: 0.16, Score: 85},
			Grammar:      model.GrammarScore{SentenceCount: 1, Errors: []string{"Sentence 1 is too short (3 words)"}, Score: 60},
			Structure:    model.StructureScore{ParagraphCount: 1, Score: 80},
			OverallScore: overall,
			Grade:        grade,
			Suggestions:  []string{"Keep practicing."},
		},
	}
}

func TestInsertAndGetSubmission(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	id, err := st.InsertSubmission(ctx, sampleSubmission(at, 66, model.GradeD))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if len(id) != 36 {
		t.Fatalf("expected generated uuid, got %q", id)
	}

	got, err := st.GetSubmission(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != id || !got.SubmittedAt.Equal(at) || got.EventCount != 42 {
		t.Fatalf("unexpected submission: %+v", got)
	}
	if got.Score.OverallScore != 66 || got.Score.Grade != model.GradeD {
		t.Fatalf("unexpected score: %+v", got.Score)
	}
	if got.Score.Fluency.RevisionRate != 0.16 || len(got.Score.Grammar.Errors) != 1 {
		t.Fatalf("score json not restored: %+v", got.Score)
	}

	byPrefix, err := st.GetSubmission(ctx, id[:8])
	if err != nil {
		t.Fatalf("get by prefix: %v", err)
	}
	if byPrefix.ID != id {
		t.Fatalf("expected prefix lookup to find %s, got %s", id, byPrefix.ID)
	}
}

func TestInsertKeepsExplicitID(t *testing.T) {
	st := openTestStore(t)
	sub := sampleSubmission(time.Now(), 90, model.GradeA)
	sub.ID = "fixed-id"
	id, err := st.InsertSubmission(context.Background(), sub)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if id != "fixed-id" {
		t.Fatalf("expected fixed-id, got %s", id)
	}
	if _, err := st.InsertSubmission(context.Background(), sub); err == nil {
		t.Fatalf("expected duplicate id to fail")
	}
}

func TestGetSubmissionNotFound(t *testing.T) {
	st := openTestStore(t)
	if _, err := st.GetSubmission(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := st.GetSubmission(context.Background(), ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty id, got %v", err)
	}
}

func TestListSubmissionsFilters(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	grades := []model.Grade{model.GradeF, model.GradeD, model.GradeC, model.GradeD, model.GradeB}
	for i, g := range grades {
		if _, err := st.InsertSubmission(ctx, sampleSubmission(base.Add(time.Duration(i)*24*time.Hour), 50+i*10, g)); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	all, err := st.ListSubmissions(ctx, model.HistoryConfig{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("expected 5 submissions, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].SubmittedAt.Before(all[i-1].SubmittedAt) {
			t.Fatalf("expected ascending order")
		}
	}
	if all[0].Overall != 50 || all[0].WPM != 25 || all[0].TotalWords != 3 || all[0].Fluency != 85 {
		t.Fatalf("unexpected first aggregate: %+v", all[0])
	}

	since := base.Add(48 * time.Hour)
	recent, err := st.ListSubmissions(ctx, model.HistoryConfig{Since: &since})
	if err != nil {
		t.Fatalf("list since: %v", err)
	}
	if len(recent) != 3 || recent[0].Overall != 70 {
		t.Fatalf("unexpected since filter result: %+v", recent)
	}

	last, err := st.ListSubmissions(ctx, model.HistoryConfig{Last: 2})
	if err != nil {
		t.Fatalf("list last: %v", err)
	}
	if len(last) != 2 || last[0].Overall != 80 || last[1].Overall != 90 {
		t.Fatalf("unexpected last filter result: %+v", last)
	}

	ds, err := st.ListSubmissions(ctx, model.HistoryConfig{Grade: model.GradeD})
	if err != nil {
		t.Fatalf("list grade: %v", err)
	}
	if len(ds) != 2 || ds[0].Grade != model.GradeD {
		t.Fatalf("unexpected grade filter result: %+v", ds)
	}
}

func TestDeleteSubmission(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	id, err := st.InsertSubmission(ctx, sampleSubmission(time.Now(), 70, model.GradeC))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := st.DeleteSubmission(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := st.DeleteSubmission(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
