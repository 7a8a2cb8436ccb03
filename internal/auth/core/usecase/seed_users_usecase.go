package usecase

import (
	"context"
	"fmt"

	"gym-dashboard-service/internal/auth/core/domain"
	"gym-dashboard-service/internal/auth/core/ports"

	"golang.org/x/crypto/bcrypt"
)

// AdminPassword is the fixed demo administrator credential, kept for
// parity with the seeded dataset accounts (user_<id> / pass_<id>).
const (
	AdminUsername = "admin"
	AdminPassword = "admin456"
)

type SeedResult struct {
	Created int
	Skipped int
}

// SeedUsersUseCase populates the credential store from the membership
// roster: one user_<id>/pass_<id> account per member plus the fixed
// admin. It only runs against an empty store, so re-running it performs
// zero inserts.
type SeedUsersUseCase struct {
	repo   ports.CredentialRepositoryPort
	roster ports.RosterPort
}

func NewSeedUsersUseCase(repo ports.CredentialRepositoryPort, roster ports.RosterPort) *SeedUsersUseCase {
	return &SeedUsersUseCase{repo: repo, roster: roster}
}

func (uc *SeedUsersUseCase) Execute(ctx context.Context) (SeedResult, error) {
	var res SeedResult

	count, err := uc.repo.Count(ctx)
	if err != nil {
		return res, err
	}
	if count > 0 {
		return res, nil
	}

	ids, err := uc.roster.ListMemberIDs(ctx)
	if err != nil {
		return res, err
	}

	for _, id := range ids {
		memberID := id
		created, err := uc.insert(ctx, &domain.Credential{
			Username: fmt.Sprintf("user_%d", id),
			Role:     domain.RoleUser,
			MemberID: &memberID,
		}, fmt.Sprintf("pass_%d", id))
		if err != nil {
			return res, err
		}
		if created {
			res.Created++
		} else {
			res.Skipped++
		}
	}

	created, err := uc.insert(ctx, &domain.Credential{
		Username: AdminUsername,
		Role:     domain.RoleAdmin,
	}, AdminPassword)
	if err != nil {
		return res, err
	}
	if created {
		res.Created++
	} else {
		res.Skipped++
	}

	return res, nil
}

func (uc *SeedUsersUseCase) insert(ctx context.Context, cred *domain.Credential, password string) (bool, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	cred.PasswordHash = string(hash)

	return uc.repo.Insert(ctx, cred)
}
