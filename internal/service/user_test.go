package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/univc/portfolio-server/internal/logger"
	servermocks "github.com/univc/portfolio-server/internal/mocks"
	"github.com/univc/portfolio-server/internal/model"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestUser_CompleteProfile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	userStore := &servermocks.UserStore{}
	levelStore := &servermocks.LevelStore{}

	userStore.On("GetByID", ctx, userID).Return(model.User{
		ID:      userID,
		Name:    "New User",
		Email:   "user@univc.edu.br",
		IsNew:   true,
		Enabled: true,
	}, nil).Once()
	userStore.On("Update", ctx, mock.MatchedBy(func(u model.User) bool {
		return !u.IsNew && u.Course == "Sistemas de Informação" && *u.StartYear == 2023
	})).Return(model.User{ID: userID, IsNew: false, Course: "Sistemas de Informação"}, nil).Once()

	svc := NewUser(userStore, levelStore, logger.New(0))

	updated, err := svc.CompleteProfile(ctx, userID, CompleteProfileParams{
		Course:    strPtr("Sistemas de Informação"),
		Period:    strPtr("3º Período"),
		StartYear: intPtr(2023),
		EndYear:   intPtr(2027),
	})
	require.NoError(t, err)
	assert.False(t, updated.IsNew)

	userStore.AssertExpectations(t)
}

func TestUser_CompleteProfile_InvalidYears(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	userStore := &servermocks.UserStore{}
	levelStore := &servermocks.LevelStore{}

	userStore.On("GetByID", ctx, userID).Return(model.User{ID: userID}, nil).Once()

	svc := NewUser(userStore, levelStore, logger.New(0))

	_, err := svc.CompleteProfile(ctx, userID, CompleteProfileParams{
		StartYear: intPtr(2027),
		EndYear:   intPtr(2023),
	})
	require.ErrorIs(t, err, model.ErrInvalidYearRange)
	userStore.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUser_CompleteProfile_EmailTaken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	userStore := &servermocks.UserStore{}
	levelStore := &servermocks.LevelStore{}

	userStore.On("GetByID", ctx, userID).Return(model.User{ID: userID, Email: "old@univc.edu.br"}, nil).Once()
	userStore.On("EmailTakenByOther", ctx, "new@univc.edu.br", userID).Return(true, nil).Once()

	svc := NewUser(userStore, levelStore, logger.New(0))

	_, err := svc.CompleteProfile(ctx, userID, CompleteProfileParams{Email: strPtr("new@univc.edu.br")})
	require.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestUser_GrantXP_LevelUp(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	levelID := uuid.New()

	userStore := &servermocks.UserStore{}
	levelStore := &servermocks.LevelStore{}

	userStore.On("AddXP", ctx, userID, 50).Return(150, nil).Once()
	levelStore.On("FindForXP", ctx, 150).Return(model.Level{ID: levelID, Title: "Veterano", XPMin: 100}, nil).Once()
	userStore.On("SetCurrentLevel", ctx, userID, &levelID).Return(nil).Once()

	svc := NewUser(userStore, levelStore, logger.New(0))

	total, level, err := svc.GrantXP(ctx, userID, 50)
	require.NoError(t, err)
	assert.Equal(t, 150, total)
	require.NotNil(t, level)
	assert.Equal(t, levelID, level.ID)

	userStore.AssertExpectations(t)
}

func TestUser_GrantXP_NoMatchingLevel(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	userStore := &servermocks.UserStore{}
	levelStore := &servermocks.LevelStore{}

	userStore.On("AddXP", ctx, userID, 10).Return(10, nil).Once()
	levelStore.On("FindForXP", ctx, 10).Return(model.Level{}, model.ErrNotFound).Once()
	userStore.On("SetCurrentLevel", ctx, userID, (*uuid.UUID)(nil)).Return(nil).Once()

	svc := NewUser(userStore, levelStore, logger.New(0))

	total, level, err := svc.GrantXP(ctx, userID, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, total)
	assert.Nil(t, level)

	userStore.AssertExpectations(t)
}
