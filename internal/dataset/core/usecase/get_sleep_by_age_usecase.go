package usecase

import (
	"context"

	"gym-dashboard-service/internal/dataset/core/domain"
	"gym-dashboard-service/internal/dataset/core/ports"
)

// GetSleepByAgeUseCase buckets the health dataset by age range and
// reports per-bucket member count and average sleep hours.
type GetSleepByAgeUseCase struct {
	registry domain.Registry
	source   ports.DatasetSourcePort
}

func NewGetSleepByAgeUseCase(registry domain.Registry, source ports.DatasetSourcePort) *GetSleepByAgeUseCase {
	return &GetSleepByAgeUseCase{registry: registry, source: source}
}

func (uc *GetSleepByAgeUseCase) Execute(ctx context.Context) ([]domain.BucketCount, error) {
	ds, ok := uc.registry.Lookup(domain.DatasetHealth)
	if !ok {
		return nil, ErrUnknownDataset
	}

	rows, err := uc.source.FetchRows(ctx, ds)
	if err != nil {
		return nil, err
	}

	// The health CSV carries the age column capitalized.
	field := "Age"
	if len(rows) > 0 {
		if _, ok := rows[0]["Age"]; !ok {
			field = "age"
		}
	}

	return domain.BucketBy(rows, field, domain.AgeBuckets(), "hours_sleep"), nil
}
