package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/univc/portfolio-server/internal/logger"
	"github.com/univc/portfolio-server/internal/model"
)

// Auth handles registration step 1 and credential login. Both end in token
// issuance; profile completion lives in the User service.
type Auth struct {
	userStore model.UserStore
	tokens    *Token
	logger    *logger.Logger
}

func NewAuth(userStore model.UserStore, tokens *Token, logger *logger.Logger) *Auth {
	return &Auth{
		userStore: userStore,
		tokens:    tokens,
		logger:    logger,
	}
}

type RegisterParams struct {
	Name      string
	Email     string
	Contact   string
	Password  string
	IP        string
	UserAgent string
}

func (s *Auth) Register(ctx context.Context, params RegisterParams) (model.User, model.TokenPair, error) {
	_, err := s.userStore.GetByEmail(ctx, params.Email)
	if err == nil {
		return model.User{}, model.TokenPair{}, model.ErrEmailTaken
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.TokenPair{}, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, model.TokenPair{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userStore.Create(ctx, model.User{
		Name:         params.Name,
		Email:        params.Email,
		Contact:      params.Contact,
		PasswordHash: string(hash),
	})
	if err != nil {
		return model.User{}, model.TokenPair{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID, "email", user.Email)

	pair, err := s.tokens.Issue(ctx, IssueParams{
		UserID:    user.ID,
		Subject:   user.Email,
		IP:        params.IP,
		UserAgent: params.UserAgent,
	})
	if err != nil {
		return model.User{}, model.TokenPair{}, fmt.Errorf("failed to issue tokens: %w", err)
	}

	return user, pair, nil
}

type LoginParams struct {
	Email     string
	Password  string
	IP        string
	UserAgent string
}

func (s *Auth) Login(ctx context.Context, params LoginParams) (model.User, model.TokenPair, error) {
	user, err := s.userStore.GetByEmail(ctx, params.Email)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.TokenPair{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, model.TokenPair{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !user.Enabled {
		s.logger.Warn("disabled user attempted login", "user_id", user.ID)
		return model.User{}, model.TokenPair{}, model.ErrUserDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(params.Password)); err != nil {
		return model.User{}, model.TokenPair{}, model.ErrInvalidCredentials
	}

	if err := s.userStore.TouchLastSigned(ctx, user.ID); err != nil {
		return model.User{}, model.TokenPair{}, fmt.Errorf("failed to update last signed: %w", err)
	}

	pair, err := s.tokens.Issue(ctx, IssueParams{
		UserID:    user.ID,
		Subject:   user.Email,
		IP:        params.IP,
		UserAgent: params.UserAgent,
	})
	if err != nil {
		return model.User{}, model.TokenPair{}, fmt.Errorf("failed to issue tokens: %w", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)

	return user, pair, nil
}
