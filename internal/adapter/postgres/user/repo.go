// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/adapter/postgres"
	"github.com/wigac/wigac-backend/internal/domain"
)

const table = "users"

var columns = []string{"id", "email", "name", "password_hash", "role", "created_at", "updated_at"}

type row struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Email:        r.Email,
		Name:         r.Name,
		PasswordHash: r.PasswordHash,
		Role:         domain.UserRole(r.Role),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new user repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) selectUsers() squirrel.SelectBuilder {
	return postgres.Builder().Select(columns...).From(table)
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := r.selectUsers().Where(squirrel.Eq{"id": id})
	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return got.toDomain(), nil
}

// GetByEmail returns a user by email address, compared case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := r.selectUsers().Where(squirrel.Expr("lower(email) = ?", strings.ToLower(email)))
	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return got.toDomain(), nil
}

// List returns every user ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	rows, err := postgres.Select[row](ctx, postgres.QuerierFromCtx(ctx, r.db), r.selectUsers().OrderBy("name ASC"))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	out := make([]domain.User, 0, len(rows))
	for _, rw := range rows {
		out = append(out, *rw.toDomain())
	}
	return out, nil
}

// Create inserts u. The email is stored lower-cased.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.Builder().
		Insert(table).
		Columns("id", "email", "name", "password_hash", "role").
		Values(u.ID, strings.ToLower(u.Email), u.Name, u.PasswordHash, string(u.Role)).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return got.toDomain(), nil
}

// Update overwrites name, email and password hash of u.
func (r *Repo) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.Builder().
		Update(table).
		Set("name", u.Name).
		Set("email", strings.ToLower(u.Email)).
		Set("password_hash", u.PasswordHash).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": u.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return got.toDomain(), nil
}
