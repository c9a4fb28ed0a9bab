package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LevelStore defines persistence operations for the levels reference table.
type LevelStore interface {
	Create(ctx context.Context, level Level) (Level, error)
	GetByID(ctx context.Context, id uuid.UUID) (Level, error)
	// List returns enabled levels ordered by tag then rank; a non-empty tag
	// filters to that tag regardless of enabled state.
	List(ctx context.Context, tag string) ([]Level, error)
	Update(ctx context.Context, id uuid.UUID, update LevelUpdate) (Level, error)
	Disable(ctx context.Context, id uuid.UUID) error
	// FindForXP returns the enabled level with the highest XPMin not above xp
	// whose XPMax (when set) is not below xp. ErrNotFound when no level fits.
	FindForXP(ctx context.Context, xp int) (Level, error)
}

// Level is a rank in the XP progression. XPMax nil means unbounded.
type Level struct {
	ID          uuid.UUID
	Title       string
	Tag         string
	Rank        int
	XPMin       int
	XPMax       *int
	Description string
	Enabled     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LevelUpdate carries partial updates; nil fields are left untouched.
type LevelUpdate struct {
	Title       *string
	Tag         *string
	Rank        *int
	XPMin       *int
	XPMax       *int
	Description *string
	Enabled     *bool
}
