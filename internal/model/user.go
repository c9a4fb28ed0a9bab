package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	EmailTakenByOther(ctx context.Context, email string, userID uuid.UUID) (bool, error)
	Update(ctx context.Context, user User) (User, error)
	TouchLastSigned(ctx context.Context, id uuid.UUID) error
	AddXP(ctx context.Context, id uuid.UUID, amount int) (int, error)
	SetCurrentLevel(ctx context.Context, id uuid.UUID, levelID *uuid.UUID) error
}

// User represents an account plus its e-portfolio profile. Registration step 1
// fills the first four fields; step 2 completes the rest and clears IsNew.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Contact      string
	PasswordHash string

	Course    string
	Period    string
	StartYear *int
	EndYear   *int
	BirthDate *time.Time
	ImageURL  string

	XPTotal        int
	CurrentLevelID *uuid.UUID

	IsNew        bool
	Enabled      bool
	Validated    bool
	LastSignedAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
