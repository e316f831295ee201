// Package token implements the refresh token repository using PostgreSQL.
package token

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/adapter/postgres"
	"github.com/wigac/wigac-backend/internal/domain"
)

const table = "refresh_tokens"

var columns = []string{"id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at"}

type row struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

func (r row) toDomain() *domain.RefreshToken {
	return &domain.RefreshToken{
		ID:        r.ID,
		UserID:    r.UserID,
		TokenHash: r.TokenHash,
		ExpiresAt: r.ExpiresAt,
		CreatedAt: r.CreatedAt,
		RevokedAt: r.RevokedAt,
	}
}

// Repo provides refresh token persistence.
type Repo struct {
	db postgres.DB
}

// New creates a new token repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create stores a new refresh token hash for userID.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error) {
	id := uuid.New()
	q := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "token_hash", "expires_at").
		Values(id, userID, tokenHash, expiresAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", id)
	}
	return got.toDomain(), nil
}

// GetByHash returns an active (not revoked, not expired) token by its hash.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"token_hash": tokenHash, "revoked_at": nil}).
		Where("expires_at > now()")

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return got.toDomain(), nil
}

// RevokeByID marks a token as revoked. Revoking twice is a no-op.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	q := postgres.Builder().
		Update(table).
		Set("revoked_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "revoked_at": nil})

	_, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	return postgres.MapError(err, "refresh_token", id)
}

// RevokeAllByUser revokes every active token of userID.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	q := postgres.Builder().
		Update(table).
		Set("revoked_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"user_id": userID, "revoked_at": nil})

	_, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	return postgres.MapError(err, "refresh_token", userID)
}

// DeleteExpired removes expired and revoked tokens and returns how many
// rows were deleted.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	q := postgres.Builder().
		Delete(table).
		Where(squirrel.Or{
			squirrel.Expr("expires_at <= now()"),
			squirrel.NotEq{"revoked_at": nil},
		})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return int(n), nil
}
