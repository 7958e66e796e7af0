package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendRewardEvent(ctx context.Context, data RewardEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO rewards (session_id, video_path, awarded_at) VALUES (?, ?, ?)`,
		data.SessionID, data.VideoPath, formatTime(data.AwardedAt))
	if err != nil {
		return fmt.Errorf("save reward event: %w", err)
	}
	return nil
}

func (r *eventRepo) RewardCount(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rewards`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count rewards: %w", err)
	}
	return n, nil
}
