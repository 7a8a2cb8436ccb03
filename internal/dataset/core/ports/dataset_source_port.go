package ports

import (
	"context"
	"errors"

	"gym-dashboard-service/internal/dataset/core/domain"
)

var (
	// ErrFetch marks a network/HTTP failure reaching a CSV resource.
	ErrFetch = errors.New("dataset fetch failed")
	// ErrParse marks a structurally unreadable CSV. Callers treat it the
	// same as a fetch failure.
	ErrParse = errors.New("dataset parse failed")
)

// DatasetSourcePort fetches and parses one CSV resource.
//
// FetchRows returns a fully parsed row set or an error; a cancelled or
// failed fetch never exposes partial rows. Implementations cap the
// result at domain.MaxRowsPerDataset.
type DatasetSourcePort interface {
	FetchRows(ctx context.Context, ds domain.Dataset) ([]domain.Row, error)
}
