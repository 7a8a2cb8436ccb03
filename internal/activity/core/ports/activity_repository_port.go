package ports

import (
	"context"

	"gym-dashboard-service/internal/activity/core/domain"
)

type ActivityRepositoryPort interface {
	// Insert appends one entry to the durable log.
	Insert(ctx context.Context, e *domain.LogEntry) error
	// Recent returns at most limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]domain.LogEntry, error)
}
