package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/univc/portfolio-server/internal/logger"
	"github.com/univc/portfolio-server/internal/model"
	"github.com/univc/portfolio-server/internal/service"
)

// User serves the authenticated profile endpoints.
type User struct {
	userService    *service.User
	mediaService   *service.Media
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewUser(
	userService *service.User,
	mediaService *service.Media,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *User {
	return &User{
		userService:    userService,
		mediaService:   mediaService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Me returns the authenticated user's profile.
// GET /users/me
func (h *User) Me(c echo.Context) error {
	userID, err := userIDFrom(c, h.contextManager)
	if err != nil {
		return err
	}

	user, err := h.userService.Get(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newUserResponse(user))
}

type avatarResponse struct {
	URL string `json:"url"`
}

// UploadAvatar stores the multipart "image" file and returns its public URL.
// The profile itself is not touched; clients save the URL via step 2.
// POST /users/me/avatar
func (h *User) UploadAvatar(c echo.Context) error {
	if _, err := userIDFrom(c, h.contextManager); err != nil {
		return err
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to open image file")
	}
	defer file.Close()

	url, err := h.mediaService.UploadImage(
		c.Request().Context(),
		fileHeader.Filename,
		fileHeader.Header.Get(echo.HeaderContentType),
		file,
		fileHeader.Size,
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, avatarResponse{URL: url})
}
