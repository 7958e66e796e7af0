package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO sessions (id, mode, started_at, ended_at, rounds, correct, reward_eligible)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		data.SessionID,
		data.Mode,
		formatTime(data.StartedAt),
		formatTime(data.EndedAt),
		data.Rounds,
		data.Correct,
		boolToInt(data.RewardEligible),
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}

	if len(data.Outcomes) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO outcomes (session_id, round_index, correct_answer, chosen_answer, is_correct, operand_a, operand_b)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare outcome insert: %w", err)
		}
		defer stmt.Close()

		for _, o := range data.Outcomes {
			if _, err := stmt.ExecContext(ctx, data.SessionID, o.Round, o.CorrectAnswer, o.ChosenAnswer,
				boolToInt(o.IsCorrect), o.OperandA, o.OperandB); err != nil {
				return fmt.Errorf("save outcome %d: %w", o.Round, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error) {
	var (
		where []string
		args  []any
	)
	if opts.Mode != "" {
		where = append(where, "s.mode = ?")
		args = append(args, opts.Mode)
	}

	q := `SELECT s.id, s.mode, s.started_at, s.ended_at, s.rounds, s.correct, s.reward_eligible,
		COALESCE((SELECT video_path FROM rewards r WHERE r.session_id = s.id ORDER BY r.id DESC LIMIT 1), '')
		FROM sessions s`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY s.ended_at DESC"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var (
			rec            SessionRecord
			started, ended string
			eligible       int
		)
		if err := rows.Scan(&rec.SessionID, &rec.Mode, &started, &ended, &rec.Rounds, &rec.Correct,
			&eligible, &rec.VideoPath); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		if rec.StartedAt, err = parseTime(started); err != nil {
			return nil, err
		}
		if rec.EndedAt, err = parseTime(ended); err != nil {
			return nil, err
		}
		rec.RewardEligible = eligible != 0
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return out, nil
}

func (r *eventRepo) QueryOutcomes(ctx context.Context, sessionID string) ([]OutcomeEventData, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT round_index, correct_answer, chosen_answer, is_correct, operand_a, operand_b
		 FROM outcomes WHERE session_id = ? ORDER BY round_index`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query outcomes: %w", err)
	}
	defer rows.Close()

	var out []OutcomeEventData
	for rows.Next() {
		var (
			o         OutcomeEventData
			isCorrect int
		)
		if err := rows.Scan(&o.Round, &o.CorrectAnswer, &o.ChosenAnswer, &isCorrect, &o.OperandA, &o.OperandB); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		o.IsCorrect = isCorrect != 0
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outcomes: %w", err)
	}
	return out, nil
}

// timeLayout has fixed-width fractions so stored times sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
