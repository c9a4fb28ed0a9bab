package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/univc/portfolio-server/internal/logger"
	"github.com/univc/portfolio-server/internal/model"
	"github.com/univc/portfolio-server/internal/service"
)

type Level struct {
	levelService *service.Level
	logger       *logger.Logger
}

func NewLevel(levelService *service.Level, logger *logger.Logger) *Level {
	return &Level{levelService: levelService, logger: logger}
}

type createLevelRequest struct {
	Title       string `json:"title"`
	Tag         string `json:"tag"`
	Rank        int    `json:"rank"`
	XPMin       int    `json:"xp_min"`
	XPMax       *int   `json:"xp_max"`
	Description string `json:"description"`
}

// POST /levels
func (h *Level) Create(c echo.Context) error {
	var req createLevelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if req.XPMax != nil && *req.XPMax < req.XPMin {
		return echo.NewHTTPError(http.StatusBadRequest, "xp_max must not be below xp_min")
	}

	level, err := h.levelService.Create(c.Request().Context(), model.Level{
		Title:       req.Title,
		Tag:         req.Tag,
		Rank:        req.Rank,
		XPMin:       req.XPMin,
		XPMax:       req.XPMax,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newLevelResponse(level))
}

// GET /levels?tag=...
func (h *Level) List(c echo.Context) error {
	levels, err := h.levelService.List(c.Request().Context(), c.QueryParam("tag"))
	if err != nil {
		return err
	}

	resp := make([]levelResponse, 0, len(levels))
	for _, level := range levels {
		resp = append(resp, newLevelResponse(level))
	}

	return c.JSON(http.StatusOK, resp)
}

// GET /levels/:id
func (h *Level) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid level id")
	}

	level, err := h.levelService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newLevelResponse(level))
}

type updateLevelRequest struct {
	Title       *string `json:"title"`
	Tag         *string `json:"tag"`
	Rank        *int    `json:"rank"`
	XPMin       *int    `json:"xp_min"`
	XPMax       *int    `json:"xp_max"`
	Description *string `json:"description"`
	Enabled     *bool   `json:"enabled"`
}

// PATCH /levels/:id
func (h *Level) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid level id")
	}

	var req updateLevelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	level, err := h.levelService.Update(c.Request().Context(), id, model.LevelUpdate{
		Title:       req.Title,
		Tag:         req.Tag,
		Rank:        req.Rank,
		XPMin:       req.XPMin,
		XPMax:       req.XPMax,
		Description: req.Description,
		Enabled:     req.Enabled,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newLevelResponse(level))
}

// DELETE /levels/:id
func (h *Level) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid level id")
	}

	if err := h.levelService.Disable(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
