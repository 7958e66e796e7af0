package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mymath/mymath/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
		{"busy_timeout", "5000"},
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twice.db")

	for i := 0; i < 2; i++ {
		s, err := Open(path)
		if err != nil {
			t.Fatalf("open #%d: %v", i+1, err)
		}
		s.Close()
	}
}

func sampleSession(id string, ended time.Time) SessionEventData {
	return SessionEventData{
		SessionID:      id,
		Mode:           "addition",
		StartedAt:      ended.Add(-time.Minute),
		EndedAt:        ended,
		Rounds:         3,
		Correct:        2,
		RewardEligible: false,
		Outcomes: []OutcomeEventData{
			{Round: 1, CorrectAnswer: 5, ChosenAnswer: 5, IsCorrect: true, OperandA: 2, OperandB: 3},
			{Round: 2, CorrectAnswer: 7, ChosenAnswer: 6, IsCorrect: false, OperandA: 4, OperandB: 3},
			{Round: 3, CorrectAnswer: 4, ChosenAnswer: 4, IsCorrect: true, OperandA: 1, OperandB: 3},
		},
	}
}

func TestAppendAndQuerySession(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	ended := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	if err := repo.AppendSessionEvent(ctx, sampleSession("s-1", ended)); err != nil {
		t.Fatalf("append session: %v", err)
	}

	recs, err := repo.QuerySessions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query sessions: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 session, got %d", len(recs))
	}
	rec := recs[0]
	if rec.SessionID != "s-1" || rec.Mode != "addition" || rec.Rounds != 3 || rec.Correct != 2 {
		t.Errorf("unexpected record: %+v", rec)
	}
	if !rec.EndedAt.Equal(ended) {
		t.Errorf("EndedAt = %v, want %v", rec.EndedAt, ended)
	}
	if rec.VideoPath != "" {
		t.Errorf("VideoPath = %q, want empty", rec.VideoPath)
	}

	outcomes, err := repo.QueryOutcomes(ctx, "s-1")
	if err != nil {
		t.Fatalf("query outcomes: %v", err)
	}
	if len(outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
	}
	if outcomes[1].ChosenAnswer != 6 || outcomes[1].IsCorrect {
		t.Errorf("unexpected outcome: %+v", outcomes[1])
	}
	if outcomes[0].OperandA != 2 || outcomes[0].OperandB != 3 {
		t.Errorf("operands not stored: %+v", outcomes[0])
	}
}

func TestDuplicateSessionRollsBack(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := sampleSession("dup", time.Now())
	if err := repo.AppendSessionEvent(ctx, data); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := repo.AppendSessionEvent(ctx, data); err == nil {
		t.Fatal("expected error on duplicate session id")
	}

	outcomes, err := repo.QueryOutcomes(ctx, "dup")
	if err != nil {
		t.Fatalf("query outcomes: %v", err)
	}
	if len(outcomes) != 3 {
		t.Errorf("expected 3 outcomes after rollback, got %d", len(outcomes))
	}
}

func TestQuerySessionsOrderLimitAndMode(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		data := sampleSession(id, base.Add(time.Duration(i)*time.Hour+time.Duration(i)*time.Millisecond))
		if id == "b" {
			data.Mode = "counting"
		}
		if err := repo.AppendSessionEvent(ctx, data); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	recs, err := repo.QuerySessions(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 2 || recs[0].SessionID != "c" || recs[1].SessionID != "b" {
		t.Errorf("unexpected order: %+v", recs)
	}

	recs, err = repo.QuerySessions(ctx, QueryOpts{Mode: "counting"})
	if err != nil {
		t.Fatalf("query by mode: %v", err)
	}
	if len(recs) != 1 || recs[0].SessionID != "b" {
		t.Errorf("unexpected mode filter result: %+v", recs)
	}
}

func TestRewardEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := sampleSession("r-1", time.Now())
	data.RewardEligible = true
	if err := repo.AppendSessionEvent(ctx, data); err != nil {
		t.Fatalf("append session: %v", err)
	}
	if err := repo.AppendRewardEvent(ctx, RewardEventData{
		SessionID: "r-1",
		VideoPath: "/videos/dance.mp4",
		AwardedAt: time.Now(),
	}); err != nil {
		t.Fatalf("append reward: %v", err)
	}

	n, err := repo.RewardCount(ctx)
	if err != nil {
		t.Fatalf("reward count: %v", err)
	}
	if n != 1 {
		t.Errorf("RewardCount = %d, want 1", n)
	}

	recs, err := repo.QuerySessions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if recs[0].VideoPath != "/videos/dance.mp4" || !recs[0].RewardEligible {
		t.Errorf("reward not joined: %+v", recs[0])
	}
}

func TestAccuracy(t *testing.T) {
	if got := (SessionRecord{Rounds: 4, Correct: 3}).Accuracy(); got != 0.75 {
		t.Errorf("Accuracy = %f, want 0.75", got)
	}
	if got := (SessionRecord{}).Accuracy(); got != 0 {
		t.Errorf("Accuracy of empty = %f, want 0", got)
	}
}

func TestOutcomeConversion(t *testing.T) {
	in := []session.Outcome{
		{Round: 1, Correct: 7, Chosen: 7, IsCorrect: true, OperandA: 3, OperandB: 4},
		{Round: 2, Correct: 5, Chosen: 4},
	}
	events := OutcomeEvents(in)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].CorrectAnswer != 7 || events[0].OperandB != 4 || !events[0].IsCorrect {
		t.Errorf("unexpected event: %+v", events[0])
	}
	for i, e := range events {
		if got := e.Outcome(); got != in[i] {
			t.Errorf("outcome %d: got %+v, want %+v", i, got, in[i])
		}
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Run("override", func(t *testing.T) {
		want := filepath.Join(dir, "custom", "my.db")
		got, err := DefaultDBPath(want)
		if err != nil {
			t.Fatalf("DefaultDBPath: %v", err)
		}
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
		if _, err := os.Stat(filepath.Dir(want)); err != nil {
			t.Errorf("parent dir not created: %v", err)
		}
	})

	t.Run("xdg", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", dir)
		got, err := DefaultDBPath("")
		if err != nil {
			t.Fatalf("DefaultDBPath: %v", err)
		}
		if want := filepath.Join(dir, "mymath", "mymath.db"); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})
}
