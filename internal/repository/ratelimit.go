package repository

import (
	"context"
	"fmt"
)

// CheckAndIncrementRateLimit bumps the per-chat counter for the current
// minute window and returns the new count. Rows for old windows are
// reset in place.
func (q *Queries) CheckAndIncrementRateLimit(ctx context.Context, chatID int64) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx,
		`INSERT INTO rate_limits (chat_id, window_start, count)
		 VALUES ($1, date_trunc('minute', now()), 1)
		 ON CONFLICT (chat_id) DO UPDATE SET
		   count = CASE
		     WHEN rate_limits.window_start = date_trunc('minute', now())
		     THEN rate_limits.count + 1
		     ELSE 1
		   END,
		   window_start = date_trunc('minute', now())
		 RETURNING count`, chatID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("rate limit: %w", err)
	}
	return count, nil
}
