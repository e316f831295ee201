package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// QuickNote is the single scratchpad owned by a user.
type QuickNote struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (n *QuickNote) OwnerIDs() []uuid.UUID { return []uuid.UUID{n.UserID} }
func (n *QuickNote) Resource() string      { return "quicknote" }
func (n *QuickNote) ResourceID() uuid.UUID  { return n.ID }

// RegacLog records whether the external attendance system was updated for
// a user on a given day.
type RegacLog struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	WorkDate   string
	Registered bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (l *RegacLog) OwnerIDs() []uuid.UUID { return []uuid.UUID{l.UserID} }
func (l *RegacLog) Resource() string      { return "regac" }
func (l *RegacLog) ResourceID() uuid.UUID  { return l.ID }

func (u *User) OwnerIDs() []uuid.UUID { return []uuid.UUID{u.ID} }
func (u *User) Resource() string      { return "user" }
func (u *User) ResourceID() uuid.UUID  { return u.ID }
