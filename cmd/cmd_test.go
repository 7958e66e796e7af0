package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/mymath/mymath/internal/assets"
	"github.com/mymath/mymath/internal/store"
)

type mockEventRepo struct {
	sessions []store.SessionRecord
	outcomes map[string][]store.OutcomeEventData
	lastOpts store.QueryOpts
}

func (m *mockEventRepo) AppendSessionEvent(ctx context.Context, data store.SessionEventData) error {
	return nil
}

func (m *mockEventRepo) AppendRewardEvent(ctx context.Context, data store.RewardEventData) error {
	return nil
}

func (m *mockEventRepo) QuerySessions(ctx context.Context, opts store.QueryOpts) ([]store.SessionRecord, error) {
	m.lastOpts = opts
	return m.sessions, nil
}

func (m *mockEventRepo) QueryOutcomes(ctx context.Context, sessionID string) ([]store.OutcomeEventData, error) {
	return m.outcomes[sessionID], nil
}

func (m *mockEventRepo) RewardCount(ctx context.Context) (int, error) { return 0, nil }

func testCommand() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&buf)
	c.SetContext(context.Background())
	return c, &buf
}

func TestPrintHistory(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 30, 0, 0, time.Local)
	repo := &mockEventRepo{
		sessions: []store.SessionRecord{{
			SessionID: "s1",
			Mode:      "addition",
			StartedAt: start,
			EndedAt:   start.Add(95 * time.Second),
			Rounds:    4,
			Correct:   3,
			VideoPath: "/videos/dance.mp4",
		}},
		outcomes: map[string][]store.OutcomeEventData{
			"s1": {{Round: 1, CorrectAnswer: 5, ChosenAnswer: 4, OperandA: 2, OperandB: 3}},
		},
	}

	c, out := testCommand()
	if err := printHistory(c, repo, store.QueryOpts{Limit: 5}, true); err != nil {
		t.Fatalf("printHistory: %v", err)
	}

	text := out.String()
	for _, want := range []string{"2026-03-01 09:30", "addition", "1:35", "3/4", "75%", "dance.mp4", "2 + 3 = 5, picked 4 ✗"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if repo.lastOpts.Limit != 5 {
		t.Errorf("limit = %d, want 5", repo.lastOpts.Limit)
	}
}

func TestPrintHistoryEmpty(t *testing.T) {
	c, out := testCommand()
	if err := printHistory(c, &mockEventRepo{}, store.QueryOpts{}, false); err != nil {
		t.Fatalf("printHistory: %v", err)
	}
	if !strings.Contains(out.String(), "No sessions played yet.") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestFormatDuration(t *testing.T) {
	cases := map[float64]string{0: "0:00", 59.9: "0:59", 61: "1:01", -3: "0:00", 600: "10:00"}
	for in, want := range cases {
		if got := formatDuration(in); got != want {
			t.Errorf("formatDuration(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestConfigSetAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv("MYMATH_CONFIG", "")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"config", "set", "game.rounds", "4", "--config", path})
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("config set: %v", err)
	}

	buf.Reset()
	rootCmd.SetArgs([]string{"config", "show", "--config", path})
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(buf.String(), "game.rounds") || !strings.Contains(buf.String(), " 4\n") {
		t.Errorf("show output missing new value:\n%s", buf.String())
	}
}

func TestConfigSetRejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"config", "set", "game.speed", "fast", "--config", path})
	if err := rootCmd.ExecuteContext(context.Background()); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestVersion(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("version: %v", err)
	}
	if got := buf.String(); got != "mymath (devel)\n" {
		t.Errorf("version output = %q", got)
	}
}

func TestPrintAssets(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"apple.png", "notes.txt", "duck.JPG"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	printAssets(&buf, "Pictures", dir, assets.ImageExts, true)

	text := buf.String()
	if !strings.Contains(text, "Pictures ("+dir+"): 2") {
		t.Errorf("missing count line:\n%s", text)
	}
	for _, want := range []string{"🍎 apple.png", "🦆 duck.JPG"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "notes.txt") {
		t.Errorf("non-image listed:\n%s", text)
	}
}
