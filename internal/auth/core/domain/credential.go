package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Credential is one stored login: unique username, bcrypt password
// hash, role and an optional link to a gym member. Records are written
// once at seed time and never updated.
type Credential struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         string
	MemberID     *int64
	CreatedAt    time.Time
}
