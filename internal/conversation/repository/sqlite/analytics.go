package sqlite

import (
	"context"
	"encoding/json"
	"time"

	"restaurant-ai-service/internal/conversation/repository"
	"restaurant-ai-service/internal/model"
)

// RecordEvent stores one analytics event.
func (r *implRepository) RecordEvent(ctx context.Context, event model.AnalyticsEvent) error {
	data := "{}"
	if event.Data != nil {
		if raw, err := json.Marshal(event.Data); err == nil {
			data = string(raw)
		}
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	const insert = `
		INSERT INTO analytics_events (id, restaurant_id, conversation_id, event_type, branch, data_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, insert,
		event.ID, event.RestaurantID, event.ConversationID, event.EventType, string(event.Branch), data, event.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("RecordEvent"), err)
		return repository.ErrFailedToInsert
	}
	return nil
}

// Summary aggregates analytics events for a restaurant since a point in time.
func (r *implRepository) Summary(ctx context.Context, restaurantID string, since time.Time) (repository.AnalyticsSummary, error) {
	const query = `
		SELECT branch, COUNT(*), COUNT(DISTINCT conversation_id)
		FROM analytics_events
		WHERE restaurant_id = ? AND created_at >= ?
		GROUP BY branch`

	rows, err := r.db.QueryContext(ctx, query, restaurantID, since)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Summary"), err)
		return repository.AnalyticsSummary{}, repository.ErrFailedToList
	}
	defer rows.Close()

	summary := repository.AnalyticsSummary{ByBranch: map[string]int{}}
	for rows.Next() {
		var (
			branch string
			count  int
			convs  int
		)
		if err := rows.Scan(&branch, &count, &convs); err != nil {
			return repository.AnalyticsSummary{}, repository.ErrFailedToList
		}
		summary.ByBranch[branch] = count
		summary.TotalEvents += count
	}
	if err := rows.Err(); err != nil {
		return repository.AnalyticsSummary{}, repository.ErrFailedToList
	}

	const distinct = `
		SELECT COUNT(DISTINCT conversation_id)
		FROM analytics_events
		WHERE restaurant_id = ? AND created_at >= ?`
	if err := r.db.QueryRowContext(ctx, distinct, restaurantID, since).Scan(&summary.Conversations); err != nil {
		r.l.Errorf(ctx, "%s: distinct: %v", r.dsn("Summary"), err)
		return repository.AnalyticsSummary{}, repository.ErrFailedToList
	}
	return summary, nil
}
