package repository

import (
	"context"
	"fmt"
	"time"
)

// RequestLogEntry is one audit row per chat turn. Only metadata is
// recorded, never the conversation content itself.
type RequestLogEntry struct {
	UserID      int64
	RequestID   string
	LatencyMs   int64
	Succeeded   bool
	HadForecast bool
	HadRate     bool
	HadLead     bool
}

// UsageStats is the aggregate view served by the admin /stats command.
type UsageStats struct {
	TotalRequests  int64
	FailedRequests int64
	ForecastCards  int64
	RateCards      int64
	LeadCards      int64
	AvgLatencyMs   float64
}

func (q *Queries) LogRequest(ctx context.Context, e RequestLogEntry) error {
	_, err := q.db.Exec(ctx,
		`INSERT INTO request_log (user_id, request_id, latency_ms, succeeded, had_forecast, had_rate, had_lead)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.UserID, e.RequestID, e.LatencyMs, e.Succeeded, e.HadForecast, e.HadRate, e.HadLead)
	if err != nil {
		return fmt.Errorf("log request: %w", err)
	}
	return nil
}

func (q *Queries) GetUsageStats(ctx context.Context, since time.Time) (*UsageStats, error) {
	var s UsageStats
	err := q.db.QueryRow(ctx,
		`SELECT count(*),
		        count(*) FILTER (WHERE NOT succeeded),
		        count(*) FILTER (WHERE had_forecast),
		        count(*) FILTER (WHERE had_rate),
		        count(*) FILTER (WHERE had_lead),
		        coalesce(avg(latency_ms), 0)
		 FROM request_log WHERE created_at >= $1`, since).
		Scan(&s.TotalRequests, &s.FailedRequests, &s.ForecastCards,
			&s.RateCards, &s.LeadCards, &s.AvgLatencyMs)
	if err != nil {
		return nil, fmt.Errorf("usage stats: %w", err)
	}
	return &s, nil
}
