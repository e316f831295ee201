// Package quicknote implements the per-user scratchpad.
package quicknote

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/access"
	"github.com/wigac/wigac-backend/internal/domain"
)

// MaxContentLength caps the size of a note.
const MaxContentLength = 100_000

type noteRepo interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.QuickNote, error)
	Save(ctx context.Context, userID uuid.UUID, content string) (*domain.QuickNote, error)
}

// Service implements quick note operations.
type Service struct {
	log   *slog.Logger
	notes noteRepo
}

// NewService creates a new quick note service.
func NewService(logger *slog.Logger, notes noteRepo) *Service {
	return &Service{log: logger.With("service", "quicknote"), notes: notes}
}

// Get returns the caller's note, creating an empty one on first access.
func (s *Service) Get(ctx context.Context) (*domain.QuickNote, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	scope := access.OwnScope(actor)
	n, err := s.notes.GetOrCreate(ctx, *scope.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("quicknote.Get: %w", err)
	}
	return s.authorize(ctx, actor, n)
}

// Save replaces the content of the caller's note.
func (s *Service) Save(ctx context.Context, content string) (*domain.QuickNote, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if len(content) > MaxContentLength {
		return nil, domain.NewValidationError("content", "too long")
	}
	scope := access.OwnScope(actor)
	n, err := s.notes.Save(ctx, *scope.OwnerID, content)
	if err != nil {
		return nil, fmt.Errorf("quicknote.Save: %w", err)
	}
	return s.authorize(ctx, actor, n)
}

// authorize rejects a note the repository returned for another user.
// Administrators get no bypass here: the scratchpad is personal.
func (s *Service) authorize(ctx context.Context, actor access.Actor, n *domain.QuickNote) (*domain.QuickNote, error) {
	if n == nil || !access.Authorize(actor, n) || n.UserID != actor.ID {
		s.log.ErrorContext(ctx, "quick note owner mismatch", slog.String("actor_id", actor.ID.String()))
		return nil, fmt.Errorf("quicknote: %w", domain.ErrNotFound)
	}
	return n, nil
}
