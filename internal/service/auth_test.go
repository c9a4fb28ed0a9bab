package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/univc/portfolio-server/internal/logger"
	servermocks "github.com/univc/portfolio-server/internal/mocks"
	"github.com/univc/portfolio-server/internal/model"
)

func newStubTokens() (*Token, *servermocks.TokenCodec, *servermocks.TokenLedger) {
	codec := &servermocks.TokenCodec{}
	ledger := &servermocks.TokenLedger{}
	return newTestTokenService(codec, ledger), codec, ledger
}

func TestAuth_Register(t *testing.T) {
	ctx := context.Background()

	userStore := &servermocks.UserStore{}
	tokens, codec, ledger := newStubTokens()

	userID := uuid.New()
	userStore.On("GetByEmail", ctx, "new@univc.edu.br").Return(model.User{}, model.ErrNotFound).Once()
	userStore.On("Create", ctx, mock.MatchedBy(func(u model.User) bool {
		// plaintext never reaches the store
		return u.Email == "new@univc.edu.br" && u.PasswordHash != "" && u.PasswordHash != "secret123"
	})).Return(model.User{ID: userID, Email: "new@univc.edu.br", IsNew: true, Enabled: true}, nil).Once()

	codec.On("Encode", mock.Anything).Return("signed", nil)
	ledger.On("Create", ctx, mock.Anything).Return(nil)

	a := NewAuth(userStore, tokens, logger.New(0))

	user, pair, err := a.Register(ctx, RegisterParams{
		Name:     "New User",
		Email:    "new@univc.edu.br",
		Contact:  "11999990000",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.True(t, user.IsNew)
	assert.Equal(t, "signed", pair.AccessToken)
	assert.Equal(t, "Bearer", pair.TokenType)

	userStore.AssertExpectations(t)
}

func TestAuth_Register_EmailTaken(t *testing.T) {
	ctx := context.Background()

	userStore := &servermocks.UserStore{}
	tokens, _, _ := newStubTokens()

	userStore.On("GetByEmail", ctx, "taken@univc.edu.br").Return(model.User{ID: uuid.New()}, nil).Once()

	a := NewAuth(userStore, tokens, logger.New(0))

	_, _, err := a.Register(ctx, RegisterParams{Email: "taken@univc.edu.br", Password: "x"})
	require.ErrorIs(t, err, model.ErrEmailTaken)
	userStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuth_Register_EmailTakenRace(t *testing.T) {
	ctx := context.Background()

	userStore := &servermocks.UserStore{}
	tokens, _, _ := newStubTokens()

	// a concurrent registration slips in between the check and the insert
	userStore.On("GetByEmail", ctx, "raced@univc.edu.br").Return(model.User{}, model.ErrNotFound).Once()
	userStore.On("Create", ctx, mock.Anything).Return(model.User{}, model.ErrEmailTaken).Once()

	a := NewAuth(userStore, tokens, logger.New(0))

	_, _, err := a.Register(ctx, RegisterParams{Email: "raced@univc.edu.br", Password: "x"})
	require.ErrorIs(t, err, model.ErrEmailTaken)
	userStore.AssertExpectations(t)
}

func TestAuth_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	userID := uuid.New()
	stored := model.User{
		ID:           userID,
		Email:        "user@univc.edu.br",
		PasswordHash: string(hash),
		Enabled:      true,
	}

	userStore := &servermocks.UserStore{}
	tokens, codec, ledger := newStubTokens()

	userStore.On("GetByEmail", ctx, stored.Email).Return(stored, nil).Once()
	userStore.On("TouchLastSigned", ctx, userID).Return(nil).Once()
	codec.On("Encode", mock.Anything).Return("signed", nil)
	ledger.On("Create", ctx, mock.Anything).Return(nil)

	a := NewAuth(userStore, tokens, logger.New(0))

	user, pair, err := a.Login(ctx, LoginParams{Email: stored.Email, Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.NotEmpty(t, pair.RefreshToken)

	userStore.AssertExpectations(t)
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	userStore := &servermocks.UserStore{}
	tokens, _, _ := newStubTokens()

	userStore.On("GetByEmail", ctx, "user@univc.edu.br").Return(model.User{
		ID:           uuid.New(),
		Email:        "user@univc.edu.br",
		PasswordHash: string(hash),
		Enabled:      true,
	}, nil).Once()

	a := NewAuth(userStore, tokens, logger.New(0))

	_, _, err = a.Login(ctx, LoginParams{Email: "user@univc.edu.br", Password: "wrong"})
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
	userStore.AssertNotCalled(t, "TouchLastSigned", mock.Anything, mock.Anything)
}

func TestAuth_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()

	userStore := &servermocks.UserStore{}
	tokens, _, _ := newStubTokens()

	userStore.On("GetByEmail", ctx, "ghost@univc.edu.br").Return(model.User{}, model.ErrNotFound).Once()

	a := NewAuth(userStore, tokens, logger.New(0))

	// unknown email is indistinguishable from a wrong password
	_, _, err := a.Login(ctx, LoginParams{Email: "ghost@univc.edu.br", Password: "x"})
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuth_Login_Disabled(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	userStore := &servermocks.UserStore{}
	tokens, _, _ := newStubTokens()

	userStore.On("GetByEmail", ctx, "off@univc.edu.br").Return(model.User{
		ID:           uuid.New(),
		Email:        "off@univc.edu.br",
		PasswordHash: string(hash),
		Enabled:      false,
	}, nil).Once()

	a := NewAuth(userStore, tokens, logger.New(0))

	_, _, err = a.Login(ctx, LoginParams{Email: "off@univc.edu.br", Password: "secret123"})
	require.ErrorIs(t, err, model.ErrUserDisabled)
}
