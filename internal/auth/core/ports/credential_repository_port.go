package ports

import (
	"context"

	"gym-dashboard-service/internal/auth/core/domain"
)

type CredentialRepositoryPort interface {
	// FindByUsername returns (nil, nil) when no record exists; the
	// lookup is exact and case-sensitive.
	FindByUsername(ctx context.Context, username string) (*domain.Credential, error)

	// Insert:
	//   created = true,  err = nil  -> new record
	//   created = false, err = nil  -> username already taken
	//   created = false, err != nil -> DB error
	Insert(ctx context.Context, c *domain.Credential) (created bool, err error)

	Count(ctx context.Context) (int64, error)
}
