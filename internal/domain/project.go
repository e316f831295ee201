package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project groups tasks and wiki pages. It is owned by its creator.
type Project struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Status      ProjectStatus
	Color       *string
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedByID uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p *Project) OwnerIDs() []uuid.UUID { return []uuid.UUID{p.CreatedByID} }
func (p *Project) Resource() string      { return "project" }
func (p *Project) ResourceID() uuid.UUID  { return p.ID }

// WikiPage is a Markdown document addressed by a globally unique slug.
type WikiPage struct {
	ID          uuid.UUID
	Title       string
	Slug        string
	Content     string
	ProjectID   *uuid.UUID
	TaskID      *uuid.UUID
	CreatedByID uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (w *WikiPage) OwnerIDs() []uuid.UUID { return []uuid.UUID{w.CreatedByID} }
func (w *WikiPage) Resource() string      { return "wiki_page" }
func (w *WikiPage) ResourceID() uuid.UUID  { return w.ID }
