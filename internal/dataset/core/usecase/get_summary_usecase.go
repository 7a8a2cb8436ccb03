package usecase

import (
	"context"
	"errors"

	"gym-dashboard-service/internal/dataset/core/domain"
	"gym-dashboard-service/internal/dataset/core/ports"
)

var (
	ErrUnknownDataset = errors.New("unknown dataset")
	ErrUnknownField   = errors.New("field is not in the dataset's numeric field list")
)

type GetSummaryInput struct {
	DatasetKey string
	Field      string            // numeric field to summarize; "" skips statistics
	Filters    map[string]string // column -> accepted value; "" / "All" unconstrained
}

// DatasetSummary is the chart-ready output for one dataset view:
// the filtered subset's size, descriptive statistics for the selected
// field and a frequency table per declared filter field.
type DatasetSummary struct {
	Dataset      domain.Dataset
	TotalRows    int
	FilteredRows int
	Field        string
	Statistics   *domain.Statistics // nil means "no numeric data"
	Frequencies  map[string][]domain.FrequencyEntry
}

type GetSummaryUseCase struct {
	registry domain.Registry
	source   ports.DatasetSourcePort
}

func NewGetSummaryUseCase(registry domain.Registry, source ports.DatasetSourcePort) *GetSummaryUseCase {
	return &GetSummaryUseCase{registry: registry, source: source}
}

func (uc *GetSummaryUseCase) Execute(ctx context.Context, in GetSummaryInput) (*DatasetSummary, error) {
	ds, ok := uc.registry.Lookup(in.DatasetKey)
	if !ok {
		return nil, ErrUnknownDataset
	}

	if in.Field != "" && !ds.HasNumericField(in.Field) {
		return nil, ErrUnknownField
	}

	rows, err := uc.source.FetchRows(ctx, ds)
	if err != nil {
		return nil, err
	}

	filtered := domain.FilterRows(rows, in.Filters)

	summary := &DatasetSummary{
		Dataset:      ds,
		TotalRows:    len(rows),
		FilteredRows: len(filtered),
		Field:        in.Field,
		Frequencies:  make(map[string][]domain.FrequencyEntry, len(ds.FilterFields)),
	}

	if in.Field != "" {
		summary.Statistics = domain.ComputeStatistics(filtered, in.Field)
	}
	for _, f := range ds.FilterFields {
		summary.Frequencies[f] = domain.ComputeFrequency(filtered, f)
	}

	return summary, nil
}
