package usecase

import (
	"context"
	"errors"

	"gym-dashboard-service/internal/dataset/core/domain"
	"gym-dashboard-service/internal/dataset/core/ports"
)

var ErrMemberNotFound = errors.New("member not found")

// HealthKeyPrefix names colliding health columns in a merged member
// profile; the gym value always wins the original key.
const HealthKeyPrefix = "health_"

// GetMemberProfileUseCase joins a member's gym row with their health
// row by shared id.
type GetMemberProfileUseCase struct {
	registry domain.Registry
	source   ports.DatasetSourcePort
}

func NewGetMemberProfileUseCase(registry domain.Registry, source ports.DatasetSourcePort) *GetMemberProfileUseCase {
	return &GetMemberProfileUseCase{registry: registry, source: source}
}

func (uc *GetMemberProfileUseCase) Execute(ctx context.Context, memberID string) (domain.Row, error) {
	gym, ok := uc.registry.Lookup(domain.DatasetGym)
	if !ok {
		return nil, ErrUnknownDataset
	}
	health, ok := uc.registry.Lookup(domain.DatasetHealth)
	if !ok {
		return nil, ErrUnknownDataset
	}

	gymRows, err := uc.source.FetchRows(ctx, gym)
	if err != nil {
		return nil, err
	}

	gymRow := findByID(gymRows, memberID)
	if gymRow == nil {
		return nil, ErrMemberNotFound
	}

	healthRows, err := uc.source.FetchRows(ctx, health)
	if err != nil {
		return nil, err
	}

	merged := domain.JoinByID([]domain.Row{gymRow}, healthRows, "id", HealthKeyPrefix)
	return merged[0], nil
}

func findByID(rows []domain.Row, id string) domain.Row {
	for _, row := range rows {
		if row.StringOf("id") == id || row.StringOf("ID") == id {
			return row
		}
	}
	return nil
}
