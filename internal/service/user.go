package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/univc/portfolio-server/internal/logger"
	"github.com/univc/portfolio-server/internal/model"
)

// User handles profile reads, registration step 2 and the XP progression.
type User struct {
	userStore  model.UserStore
	levelStore model.LevelStore
	logger     *logger.Logger
}

func NewUser(userStore model.UserStore, levelStore model.LevelStore, logger *logger.Logger) *User {
	return &User{
		userStore:  userStore,
		levelStore: levelStore,
		logger:     logger,
	}
}

func (s *User) Get(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

// CompleteProfileParams carries registration step 2. Nil fields keep the
// current value.
type CompleteProfileParams struct {
	Name      *string
	Email     *string
	Contact   *string
	Course    *string
	Period    *string
	StartYear *int
	EndYear   *int
	BirthDate *time.Time
	ImageURL  *string
}

// CompleteProfile fills in the profile and clears the new-account flag.
func (s *User) CompleteProfile(ctx context.Context, id uuid.UUID, params CompleteProfileParams) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if params.Email != nil && *params.Email != user.Email {
		taken, err := s.userStore.EmailTakenByOther(ctx, *params.Email, id)
		if err != nil {
			return model.User{}, fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			return model.User{}, model.ErrEmailTaken
		}
		user.Email = *params.Email
	}

	if params.Name != nil {
		user.Name = *params.Name
	}
	if params.Contact != nil {
		user.Contact = *params.Contact
	}
	if params.Course != nil {
		user.Course = *params.Course
	}
	if params.Period != nil {
		user.Period = *params.Period
	}
	if params.StartYear != nil {
		user.StartYear = params.StartYear
	}
	if params.EndYear != nil {
		user.EndYear = params.EndYear
	}
	if params.BirthDate != nil {
		user.BirthDate = params.BirthDate
	}
	if params.ImageURL != nil {
		user.ImageURL = *params.ImageURL
	}

	if user.StartYear != nil && user.EndYear != nil && *user.StartYear > *user.EndYear {
		return model.User{}, model.ErrInvalidYearRange
	}

	user.IsNew = false

	updated, err := s.userStore.Update(ctx, user)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("profile completed", "user_id", id)

	return updated, nil
}

// GrantXP adds XP to the user and recomputes the current level: the enabled
// level with the highest floor not above the new total wins, and when none
// fits the level is cleared.
func (s *User) GrantXP(ctx context.Context, id uuid.UUID, amount int) (int, *model.Level, error) {
	total, err := s.userStore.AddXP(ctx, id, amount)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to add xp: %w", err)
	}

	level, err := s.levelStore.FindForXP(ctx, total)
	if errors.Is(err, model.ErrNotFound) {
		if err := s.userStore.SetCurrentLevel(ctx, id, nil); err != nil {
			return 0, nil, fmt.Errorf("failed to clear current level: %w", err)
		}
		return total, nil, nil
	}
	if err != nil {
		return 0, nil, fmt.Errorf("failed to find level for xp: %w", err)
	}

	if err := s.userStore.SetCurrentLevel(ctx, id, &level.ID); err != nil {
		return 0, nil, fmt.Errorf("failed to set current level: %w", err)
	}

	s.logger.Debug("xp granted", "user_id", id, "amount", amount, "total", total, "level", level.Title)

	return total, &level, nil
}
