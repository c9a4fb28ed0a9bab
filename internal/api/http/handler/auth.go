package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/univc/portfolio-server/internal/logger"
	"github.com/univc/portfolio-server/internal/model"
	"github.com/univc/portfolio-server/internal/service"
)

// Auth serves registration, login and the token lifecycle endpoints.
type Auth struct {
	authService    *service.Auth
	userService    *service.User
	tokenService   *service.Token
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAuth(
	authService *service.Auth,
	userService *service.User,
	tokenService *service.Token,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		authService:    authService,
		userService:    userService,
		tokenService:   tokenService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type registerStep1Request struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
	Password string `json:"password"`
}

type authResponse struct {
	User   userResponse  `json:"user"`
	Tokens tokenResponse `json:"tokens"`
}

// RegisterStep1 creates the account and signs the new user in.
// POST /auth/register/step1
func (h *Auth) RegisterStep1(c echo.Context) error {
	var req registerStep1Request
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.Email == "" || req.Contact == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name, email, contact and password are required")
	}

	user, pair, err := h.authService.Register(c.Request().Context(), service.RegisterParams{
		Name:      req.Name,
		Email:     req.Email,
		Contact:   req.Contact,
		Password:  req.Password,
		IP:        c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{
		User:   newUserResponse(user),
		Tokens: newTokenResponse(pair),
	})
}

type registerStep2Request struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Contact   *string `json:"contact"`
	Course    *string `json:"course"`
	Period    *string `json:"period"`
	StartYear *int    `json:"start_year"`
	EndYear   *int    `json:"end_year"`
	BirthDate *string `json:"birth_date"`
	ImageURL  *string `json:"image_url"`
}

// RegisterStep2 completes the profile of the authenticated user.
// POST /auth/register/step2
func (h *Auth) RegisterStep2(c echo.Context) error {
	userID, err := userIDFrom(c, h.contextManager)
	if err != nil {
		return err
	}

	var req registerStep2Request
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	params := service.CompleteProfileParams{
		Name:      req.Name,
		Email:     req.Email,
		Contact:   req.Contact,
		Course:    req.Course,
		Period:    req.Period,
		StartYear: req.StartYear,
		EndYear:   req.EndYear,
		ImageURL:  req.ImageURL,
	}
	if req.BirthDate != nil {
		bd, err := time.Parse(time.DateOnly, *req.BirthDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "birth_date must be YYYY-MM-DD")
		}
		params.BirthDate = &bd
	}

	user, err := h.userService.CompleteProfile(c.Request().Context(), userID, params)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newUserResponse(user))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token pair.
// POST /auth/login
func (h *Auth) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, pair, err := h.authService.Login(c.Request().Context(), service.LoginParams{
		Email:     req.Email,
		Password:  req.Password,
		IP:        c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{
		User:   newUserResponse(user),
		Tokens: newTokenResponse(pair),
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Refresh rotates a refresh token into a fresh pair. The presented token is
// dead afterwards whether or not the caller receives the response.
// POST /auth/refresh
func (h *Auth) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.RefreshToken == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "refresh_token is required")
	}

	pair, err := h.tokenService.Rotate(c.Request().Context(), req.RefreshToken, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newTokenResponse(pair))
}

type logoutRequest struct {
	Token string `json:"token"`
}

type logoutResponse struct {
	Revoked bool `json:"revoked"`
}

// Logout revokes the presented token, access or refresh. The token comes from
// the body or, failing that, the Authorization header. Revoking twice is
// fine; only a structurally invalid token is an error.
// POST /auth/logout
func (h *Auth) Logout(c echo.Context) error {
	var req logoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	token := req.Token
	if token == "" {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token = strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if token == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "provide token in the body or the Authorization header")
	}

	if _, err := h.tokenService.Revoke(c.Request().Context(), token, service.ReasonLogout); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, logoutResponse{Revoked: true})
}

// LogoutAll revokes every outstanding token of the authenticated user.
// POST /auth/logout-all
func (h *Auth) LogoutAll(c echo.Context) error {
	userID, err := userIDFrom(c, h.contextManager)
	if err != nil {
		return err
	}

	n, err := h.tokenService.RevokeAllForUser(c.Request().Context(), userID, service.ReasonLogoutAll)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, logoutAllResponse{Revoked: n})
}

type logoutAllResponse struct {
	Revoked int64 `json:"revoked"`
}
