package usecase

import (
	"context"

	"gym-dashboard-service/internal/dataset/core/domain"
	"gym-dashboard-service/internal/dataset/core/ports"
)

type GetFlagCountsInput struct {
	DatasetKey string
	Fields     []domain.FlagField
	Filters    map[string]string
	// CountSubscribers additionally counts rows whose drink_abo flag
	// equals "1" (drink subscription KPI).
	CountSubscribers bool
}

type FlagCountsResult struct {
	Dataset      domain.Dataset
	FilteredRows int
	Counts       []domain.FlagCount
	Subscribers  int
}

// GetFlagCountsUseCase backs the class and drink preference charts:
// multi-select boolean columns counted over the filtered subset.
type GetFlagCountsUseCase struct {
	registry domain.Registry
	source   ports.DatasetSourcePort
}

func NewGetFlagCountsUseCase(registry domain.Registry, source ports.DatasetSourcePort) *GetFlagCountsUseCase {
	return &GetFlagCountsUseCase{registry: registry, source: source}
}

func (uc *GetFlagCountsUseCase) Execute(ctx context.Context, in GetFlagCountsInput) (*FlagCountsResult, error) {
	ds, ok := uc.registry.Lookup(in.DatasetKey)
	if !ok {
		return nil, ErrUnknownDataset
	}

	rows, err := uc.source.FetchRows(ctx, ds)
	if err != nil {
		return nil, err
	}

	filtered := domain.FilterRows(rows, in.Filters)

	res := &FlagCountsResult{
		Dataset:      ds,
		FilteredRows: len(filtered),
		Counts:       domain.ComputeFlagCounts(filtered, in.Fields),
	}

	if in.CountSubscribers {
		for _, row := range filtered {
			if row.StringOf("drink_abo") == "1" {
				res.Subscribers++
			}
		}
	}

	return res, nil
}
