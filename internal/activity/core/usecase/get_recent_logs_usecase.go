package usecase

import (
	"context"

	"gym-dashboard-service/internal/activity/core/domain"
	"gym-dashboard-service/internal/activity/core/ports"
)

// DefaultLogLimit matches the audit endpoint's page size.
const DefaultLogLimit = 50

type GetRecentLogsUseCase struct {
	repo ports.ActivityRepositoryPort
}

func NewGetRecentLogsUseCase(repo ports.ActivityRepositoryPort) *GetRecentLogsUseCase {
	return &GetRecentLogsUseCase{repo: repo}
}

// Execute returns the most recent entries, newest first.
func (uc *GetRecentLogsUseCase) Execute(ctx context.Context, limit int) ([]domain.LogEntry, error) {
	if limit <= 0 || limit > DefaultLogLimit {
		limit = DefaultLogLimit
	}
	return uc.repo.Recent(ctx, limit)
}
