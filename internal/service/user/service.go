package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, u *domain.User) (*domain.User, error)
}

// Service implements user directory and profile operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	hashCost int
}

// NewService creates a new user service instance. hashCost is the bcrypt
// cost applied to changed passwords.
func NewService(logger *slog.Logger, users userRepo, hashCost int) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		hashCost: hashCost,
	}
}

// List returns every user. Any authenticated caller may list users so that
// tasks can be assigned.
func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.List: %w", err)
	}
	return users, nil
}

// Get returns one user by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.Get: %w", err)
	}
	return u, nil
}
