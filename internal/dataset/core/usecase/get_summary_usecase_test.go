package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gym-dashboard-service/internal/dataset/core/domain"
	"gym-dashboard-service/internal/dataset/core/ports"
	"gym-dashboard-service/internal/dataset/core/usecase"
)

// Fake source implementing DatasetSourcePort
type fakeSource struct {
	FetchFn     func(ctx context.Context, ds domain.Dataset) ([]domain.Row, error)
	lastDataset domain.Dataset
	calls       int
}

func (f *fakeSource) FetchRows(ctx context.Context, ds domain.Dataset) ([]domain.Row, error) {
	f.calls++
	f.lastDataset = ds
	if f.FetchFn != nil {
		return f.FetchFn(ctx, ds)
	}
	return nil, nil
}

func testRegistry() domain.Registry {
	return domain.NewRegistry("http://example.test/gym_membership.csv", "http://example.test/health_fitness_dataset.csv")
}

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestGetSummary_Success(t *testing.T) {
	source := &fakeSource{
		FetchFn: func(ctx context.Context, ds domain.Dataset) ([]domain.Row, error) {
			if ds.Key != domain.DatasetGym {
				t.Fatalf("expected gym dataset, got %s", ds.Key)
			}
			return []domain.Row{
				{"gender": "Male", "visit_per_week": float64(3)},
				{"gender": "Female", "visit_per_week": float64(5)},
				{"gender": "Male", "visit_per_week": float64(4)},
			}, nil
		},
	}

	uc := usecase.NewGetSummaryUseCase(testRegistry(), source)

	out, err := uc.Execute(context.Background(), usecase.GetSummaryInput{
		DatasetKey: domain.DatasetGym,
		Field:      "visit_per_week",
		Filters:    map[string]string{"gender": "Male"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.TotalRows != 3 || out.FilteredRows != 2 {
		t.Fatalf("expected 3 total / 2 filtered, got %d/%d", out.TotalRows, out.FilteredRows)
	}
	if out.Statistics == nil || out.Statistics.Count != 2 || out.Statistics.Mean != 3.5 {
		t.Fatalf("unexpected statistics: %+v", out.Statistics)
	}

	genderFreq := out.Frequencies["gender"]
	if len(genderFreq) != 1 || genderFreq[0].Label != "Male" || genderFreq[0].Count != 2 {
		t.Fatalf("unexpected gender frequency: %v", genderFreq)
	}
}

func TestGetSummary_NoNumericDataIsNilNotError(t *testing.T) {
	source := &fakeSource{
		FetchFn: func(ctx context.Context, ds domain.Dataset) ([]domain.Row, error) {
			return []domain.Row{{"gender": "Male", "visit_per_week": "n/a"}}, nil
		},
	}

	uc := usecase.NewGetSummaryUseCase(testRegistry(), source)

	out, err := uc.Execute(context.Background(), usecase.GetSummaryInput{
		DatasetKey: domain.DatasetGym,
		Field:      "visit_per_week",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Statistics != nil {
		t.Fatalf("expected nil statistics, got %+v", out.Statistics)
	}
}

// ------------------------------------------------------------
// VALIDATION
// ------------------------------------------------------------

func TestGetSummary_UnknownDataset(t *testing.T) {
	source := &fakeSource{}
	uc := usecase.NewGetSummaryUseCase(testRegistry(), source)

	_, err := uc.Execute(context.Background(), usecase.GetSummaryInput{DatasetKey: "trainers"})
	if !errors.Is(err, usecase.ErrUnknownDataset) {
		t.Fatalf("expected ErrUnknownDataset, got %v", err)
	}
	if source.calls != 0 {
		t.Fatalf("source must not be called for an unknown dataset")
	}
}

func TestGetSummary_FieldOutsideNumericList(t *testing.T) {
	source := &fakeSource{}
	uc := usecase.NewGetSummaryUseCase(testRegistry(), source)

	_, err := uc.Execute(context.Background(), usecase.GetSummaryInput{
		DatasetKey: domain.DatasetGym,
		Field:      "gender",
	})
	if !errors.Is(err, usecase.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

// ------------------------------------------------------------
// SOURCE FAILURE
// ------------------------------------------------------------

func TestGetSummary_FetchErrorPropagates(t *testing.T) {
	source := &fakeSource{
		FetchFn: func(ctx context.Context, ds domain.Dataset) ([]domain.Row, error) {
			return nil, fmt.Errorf("%w: connection refused", ports.ErrFetch)
		},
	}

	uc := usecase.NewGetSummaryUseCase(testRegistry(), source)

	_, err := uc.Execute(context.Background(), usecase.GetSummaryInput{DatasetKey: domain.DatasetHealth})
	if !errors.Is(err, ports.ErrFetch) {
		t.Fatalf("expected fetch error, got %v", err)
	}
}
