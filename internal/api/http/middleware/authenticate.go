package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/univc/portfolio-server/internal/logger"
	"github.com/univc/portfolio-server/internal/model"
)

// TokenService resolves the user id from bearer access tokens.
type TokenService interface {
	GetUserID(ctx context.Context, token string) (uuid.UUID, error)
}

// Authenticate validates bearer tokens and injects the user id into the
// request context. Every failure mode collapses into the same 401 so callers
// cannot probe why a token was rejected.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

func (m *Authenticate) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractBearer(c.Request().Header.Get(echo.HeaderAuthorization))
		if tokenString == "" {
			return echo.NewHTTPError(http.StatusUnauthorized)
		}

		userID, err := m.tokenService.GetUserID(c.Request().Context(), tokenString)
		if err != nil {
			if !model.IsUnauthorized(err) {
				m.logger.Error("token validation failed", "error", err)
			}
			return echo.NewHTTPError(http.StatusUnauthorized)
		}
		if userID == uuid.Nil {
			return echo.NewHTTPError(http.StatusUnauthorized)
		}

		ctx := m.contextManager.SetUserIDToContext(c.Request().Context(), userID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func extractBearer(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
