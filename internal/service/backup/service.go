// Package backup exposes database dumps to administrators.
package backup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wigac/wigac-backend/internal/access"
	"github.com/wigac/wigac-backend/internal/adapter/pgdump"
	"github.com/wigac/wigac-backend/internal/domain"
)

type dumper interface {
	Dump(ctx context.Context) (*pgdump.Backup, error)
}

// Service implements backup operations.
type Service struct {
	log    *slog.Logger
	dumper dumper
}

// NewService creates a new backup service.
func NewService(logger *slog.Logger, d dumper) *Service {
	return &Service{log: logger.With("service", "backup"), dumper: d}
}

// Dump produces a plain-SQL dump of the database. The caller must close the
// returned Backup, which removes its temp file.
func (s *Service) Dump(ctx context.Context) (*pgdump.Backup, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	s.log.InfoContext(ctx, "backup requested", slog.String("user_id", actor.ID.String()))
	b, err := s.dumper.Dump(ctx)
	if err != nil {
		return nil, fmt.Errorf("backup.Dump: %w", err)
	}
	return b, nil
}
