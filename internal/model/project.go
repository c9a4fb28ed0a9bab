package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProjectStore defines persistence operations for portfolio projects.
type ProjectStore interface {
	Create(ctx context.Context, project Project) (Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]Project, error)
	Update(ctx context.Context, id uuid.UUID, update ProjectUpdate) (Project, error)
	Disable(ctx context.Context, id uuid.UUID) error
}

// Project is a portfolio entry owned by a user. Body holds the full text
// (markdown or HTML); ImageURL points at an already-uploaded object.
type Project struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	Body        string
	ImageURL    string
	Tags        []string
	Enabled     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectFilter narrows List results. Zero values mean no constraint.
type ProjectFilter struct {
	UserID uuid.UUID
	Tag    string
}

// ProjectUpdate carries partial updates; nil fields are left untouched.
type ProjectUpdate struct {
	Title       *string
	Description *string
	Body        *string
	ImageURL    *string
	Tags        []string
}
