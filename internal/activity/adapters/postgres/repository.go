package postgres

import (
	"context"

	"gym-dashboard-service/internal/activity/core/domain"
	"gym-dashboard-service/internal/activity/core/ports"
)

type ActivityRepository struct {
	db DB
}

func NewActivityRepository(db DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

var _ ports.ActivityRepositoryPort = (*ActivityRepository)(nil)

const createActivityLogsSQL = `
CREATE TABLE IF NOT EXISTS activity_logs (
    id            SERIAL PRIMARY KEY,
    username      TEXT NOT NULL,
    activity      TEXT NOT NULL,
    activity_date TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// EnsureSchema creates the activity log table if it does not exist yet.
func (r *ActivityRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createActivityLogsSQL)
	return err
}

const insertActivitySQL = `
INSERT INTO activity_logs (username, activity, activity_date)
VALUES ($1, $2, $3);
`

func (r *ActivityRepository) Insert(ctx context.Context, e *domain.LogEntry) error {
	_, err := r.db.ExecContext(ctx, insertActivitySQL, e.Username, e.Activity, e.Date)
	return err
}

const recentActivitySQL = `
SELECT id, username, activity, activity_date
FROM activity_logs
ORDER BY activity_date DESC, id DESC
LIMIT $1;
`

func (r *ActivityRepository) Recent(ctx context.Context, limit int) ([]domain.LogEntry, error) {
	rows, err := r.db.QueryContext(ctx, recentActivitySQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LogEntry
	for rows.Next() {
		var e domain.LogEntry
		if err := rows.Scan(&e.ID, &e.Username, &e.Activity, &e.Date); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
