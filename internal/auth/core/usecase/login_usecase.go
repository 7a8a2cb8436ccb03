package usecase

import (
	"context"
	"errors"
	"fmt"

	"gym-dashboard-service/internal/auth/core/domain"
	"gym-dashboard-service/internal/auth/core/ports"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingCredentials = errors.New("username and password are required")
	// ErrUserNotFound and ErrInvalidPassword stay distinct internally
	// (the audit log keeps the real reason) but callers must collapse
	// both into one generic message.
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)

type LoginInput struct {
	Username string
	Password string
}

type LoginUseCase struct {
	repo     ports.CredentialRepositoryPort
	recorder ports.ActivityRecorderPort
}

func NewLoginUseCase(repo ports.CredentialRepositoryPort, recorder ports.ActivityRecorderPort) *LoginUseCase {
	return &LoginUseCase{repo: repo, recorder: recorder}
}

// Execute verifies a username/password pair. Every attempt, success or
// failure, appends one activity entry.
func (uc *LoginUseCase) Execute(ctx context.Context, in LoginInput) (*domain.Credential, error) {
	if in.Username == "" || in.Password == "" {
		return nil, ErrMissingCredentials
	}

	cred, err := uc.repo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		uc.recorder.Record(ctx, in.Username, "Failed login attempt - user not found")
		return nil, ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(in.Password)); err != nil {
		uc.recorder.Record(ctx, in.Username, "Failed login attempt - invalid password")
		return nil, ErrInvalidPassword
	}

	uc.recorder.Record(ctx, in.Username, fmt.Sprintf("Logged in successfully (Role: %s)", cred.Role))
	return cred, nil
}
