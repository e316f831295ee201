// Package wiki implements Markdown pages addressed by a unique slug. Any
// authenticated user may read pages; only the author or an administrator
// may change them.
package wiki

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/access"
	"github.com/wigac/wigac-backend/internal/domain"
)

// fallbackSlug is used when a title has no characters left after slugging.
const fallbackSlug = "page"

// maxSlugAttempts bounds the numeric-suffix search.
const maxSlugAttempts = 1000

type pageRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WikiPage, error)
	GetBySlug(ctx context.Context, slug string) (*domain.WikiPage, error)
	SlugExists(ctx context.Context, slug string, exceptID uuid.UUID) (bool, error)
	List(ctx context.Context, projectID *uuid.UUID) ([]domain.WikiPage, error)
	Create(ctx context.Context, p *domain.WikiPage) (*domain.WikiPage, error)
	Update(ctx context.Context, p *domain.WikiPage) (*domain.WikiPage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service implements wiki operations.
type Service struct {
	log   *slog.Logger
	pages pageRepo
	guard *access.Guard
}

// NewService creates a new wiki service.
func NewService(logger *slog.Logger, pages pageRepo, guard *access.Guard) *Service {
	return &Service{
		log:   logger.With("service", "wiki"),
		pages: pages,
		guard: guard,
	}
}

// List returns all pages, or the pages of one project.
func (s *Service) List(ctx context.Context, projectID *uuid.UUID) ([]domain.WikiPage, error) {
	if _, err := access.ActorFromCtx(ctx); err != nil {
		return nil, err
	}
	pages, err := s.pages.List(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("wiki.List: %w", err)
	}
	return pages, nil
}

// Get returns a page by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.WikiPage, error) {
	if _, err := access.ActorFromCtx(ctx); err != nil {
		return nil, err
	}
	p, err := s.pages.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("wiki.Get: %w", err)
	}
	return p, nil
}

// GetBySlug returns a page by slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.WikiPage, error) {
	if _, err := access.ActorFromCtx(ctx); err != nil {
		return nil, err
	}
	p, err := s.pages.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("wiki.GetBySlug: %w", err)
	}
	return p, nil
}

// Input holds the editable fields of a page.
type Input struct {
	Title     string
	Content   string
	ProjectID *uuid.UUID
	TaskID    *uuid.UUID
}

// Validate checks the input.
func (i Input) Validate() error {
	var errs []domain.FieldError
	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(title) > 255 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Create stores a page with a slug derived from its title. A concurrent
// writer taking the same slug makes Create move on to the next candidate.
func (s *Service) Create(ctx context.Context, input Input) (*domain.WikiPage, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p := &domain.WikiPage{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(input.Title),
		Content:     input.Content,
		ProjectID:   input.ProjectID,
		TaskID:      input.TaskID,
		CreatedByID: actor.ID,
	}
	base := baseSlug(p.Title)

	for n := 0; n < maxSlugAttempts; {
		slug, next, err := s.freeSlug(ctx, base, n, uuid.Nil)
		if err != nil {
			return nil, err
		}
		p.Slug = slug
		created, err := s.pages.Create(ctx, p)
		if errors.Is(err, domain.ErrAlreadyExists) {
			n = next + 1
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("wiki.Create: %w", err)
		}

		s.log.InfoContext(ctx, "wiki page created",
			slog.String("page_id", created.ID.String()),
			slog.String("slug", created.Slug))
		return created, nil
	}
	return nil, fmt.Errorf("wiki.Create: slug %q: %w", base, domain.ErrConflict)
}

// Update changes a page owned by the caller. The slug is regenerated when
// the title changes.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input Input) (*domain.WikiPage, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	p, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title != p.Title {
		slug, _, err := s.freeSlug(ctx, baseSlug(title), 0, p.ID)
		if err != nil {
			return nil, err
		}
		p.Slug = slug
	}
	p.Title = title
	p.Content = input.Content
	p.ProjectID = input.ProjectID
	p.TaskID = input.TaskID

	updated, err := s.pages.Update(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("wiki.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a page owned by the caller.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	if _, err := s.load(ctx, actor, id); err != nil {
		return err
	}
	if err := s.pages.Delete(ctx, id); err != nil {
		return fmt.Errorf("wiki.Delete: %w", err)
	}
	return nil
}

func (s *Service) load(ctx context.Context, actor access.Actor, id uuid.UUID) (*domain.WikiPage, error) {
	p, err := s.pages.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("wiki.Get: %w", err)
	}
	if err := s.guard.Check(ctx, actor, p); err != nil {
		return nil, err
	}
	return p, nil
}

// freeSlug returns the first candidate from the n-th onwards that no page
// other than exceptID uses, and the index it was found at.
func (s *Service) freeSlug(ctx context.Context, base string, n int, exceptID uuid.UUID) (string, int, error) {
	for ; n < maxSlugAttempts; n++ {
		candidate := domain.SlugCandidate(base, n)
		taken, err := s.pages.SlugExists(ctx, candidate, exceptID)
		if err != nil {
			return "", 0, fmt.Errorf("wiki slug: %w", err)
		}
		if !taken {
			return candidate, n, nil
		}
	}
	return "", 0, fmt.Errorf("wiki slug %q: %w", base, domain.ErrConflict)
}

func baseSlug(title string) string {
	if slug := domain.Slugify(title); slug != "" {
		return slug
	}
	return fallbackSlug
}
