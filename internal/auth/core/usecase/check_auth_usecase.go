package usecase

import (
	"context"

	"gym-dashboard-service/internal/auth/core/ports"
)

// CheckAuthUseCase answers whether a username belongs to a known
// credential. Session persistence lives client-side; the server only
// confirms the account exists.
type CheckAuthUseCase struct {
	repo ports.CredentialRepositoryPort
}

func NewCheckAuthUseCase(repo ports.CredentialRepositoryPort) *CheckAuthUseCase {
	return &CheckAuthUseCase{repo: repo}
}

func (uc *CheckAuthUseCase) Execute(ctx context.Context, username string) (bool, string, error) {
	if username == "" {
		return false, "", nil
	}

	cred, err := uc.repo.FindByUsername(ctx, username)
	if err != nil {
		return false, "", err
	}
	if cred == nil {
		return false, "", nil
	}

	return true, cred.Username, nil
}
