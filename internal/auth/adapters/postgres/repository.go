package postgres

import (
	"context"

	"gym-dashboard-service/internal/auth/core/domain"
	"gym-dashboard-service/internal/auth/core/ports"
)

type CredentialRepository struct {
	db DB
}

func NewCredentialRepository(db DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

var _ ports.CredentialRepositoryPort = (*CredentialRepository)(nil)

const createUsersSQL = `
CREATE TABLE IF NOT EXISTS users (
    id            SERIAL PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL,
    member_id     BIGINT,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// EnsureSchema creates the users table if it does not exist yet.
func (r *CredentialRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createUsersSQL)
	return err
}

const insertUserSQL = `
INSERT INTO users (username, password_hash, role, member_id)
VALUES ($1, $2, $3, $4)
ON CONFLICT (username) DO NOTHING;
`

func (r *CredentialRepository) Insert(ctx context.Context, c *domain.Credential) (bool, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, c.Username, c.PasswordHash, c.Role, c.MemberID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

const findUserSQL = `
SELECT id, username, password_hash, role, member_id, created_at
FROM users
WHERE username = $1;
`

func (r *CredentialRepository) FindByUsername(ctx context.Context, username string) (*domain.Credential, error) {
	rows, err := r.db.QueryContext(ctx, findUserSQL, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	var cred domain.Credential
	if err := rows.Scan(&cred.ID, &cred.Username, &cred.PasswordHash, &cred.Role, &cred.MemberID, &cred.CreatedAt); err != nil {
		return nil, err
	}

	return &cred, nil
}

const countUsersSQL = `
SELECT COUNT(*) FROM users;
`

func (r *CredentialRepository) Count(ctx context.Context) (int64, error) {
	rows, err := r.db.QueryContext(ctx, countUsersSQL)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var count int64
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, err
		}
	}

	if err := rows.Err(); err != nil {
		return 0, err
	}

	return count, nil
}
