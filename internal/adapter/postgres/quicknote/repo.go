// Package quicknote implements the per-user QuickNote repository.
package quicknote

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/adapter/postgres"
	"github.com/wigac/wigac-backend/internal/domain"
)

const table = "quick_notes"

var columns = []string{"id", "user_id", "content", "created_at", "updated_at"}

type row struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.QuickNote {
	return &domain.QuickNote{
		ID:        r.ID,
		UserID:    r.UserID,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Repo provides quick note persistence.
type Repo struct {
	db postgres.DB
}

// New creates a new quick note repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetOrCreate returns the note of userID, creating an empty one on first
// access. Concurrent first reads converge on the same row.
func (r *Repo) GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.QuickNote, error) {
	q := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "content").
		Values(uuid.New(), userID, "").
		Suffix("ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id RETURNING " + strings.Join(columns, ", "))

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, "quicknote", userID)
	}
	return got.toDomain(), nil
}

// Save replaces the content of userID's note, creating it if needed.
func (r *Repo) Save(ctx context.Context, userID uuid.UUID, content string) (*domain.QuickNote, error) {
	q := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "content").
		Values(uuid.New(), userID, content).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET content = EXCLUDED.content, updated_at = now() RETURNING " +
			strings.Join(columns, ", "))

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, "quicknote", userID)
	}
	return got.toDomain(), nil
}
