package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/univc/portfolio-server/internal/logger"
	"github.com/univc/portfolio-server/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

// genericUnauthorized is the one body every authentication failure gets,
// whatever the internal reason was.
const genericUnauthorized = "invalid or expired credentials"

// NewErrorHandler maps service errors to HTTP statuses. All token and
// credential failures share one 401 shape; internals only reach the log.
func NewErrorHandler(logger *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := mapError(err)

		if status == http.StatusInternalServerError {
			logger.Error("request failed",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, errorResponse{Error: message})
		}
		if writeErr != nil {
			logger.Error("failed to write error response", "error", writeErr)
		}
	}
}

func mapError(err error) (int, string) {
	if model.IsUnauthorized(err) || errors.Is(err, model.ErrInvalidCredentials) {
		return http.StatusUnauthorized, genericUnauthorized
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if httpErr.Code == http.StatusUnauthorized {
			message = genericUnauthorized
		} else if s, ok := httpErr.Message.(string); ok {
			message = s
		}
		return httpErr.Code, message
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, model.ErrEmailTaken):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, model.ErrUserDisabled):
		return http.StatusForbidden, "account disabled"
	case errors.Is(err, model.ErrNotOwner):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, model.ErrInvalidYearRange):
		return http.StatusBadRequest, "end year before start year"
	case errors.Is(err, model.ErrUnsupportedImage):
		return http.StatusBadRequest, "unsupported image type"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
