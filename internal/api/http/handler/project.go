package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/univc/portfolio-server/internal/logger"
	"github.com/univc/portfolio-server/internal/model"
	"github.com/univc/portfolio-server/internal/service"
)

type Project struct {
	projectService *service.Project
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewProject(projectService *service.Project, contextManager model.ContextManager, logger *logger.Logger) *Project {
	return &Project{projectService: projectService, contextManager: contextManager, logger: logger}
}

type createProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	ImageURL    string   `json:"image_url"`
	Tags        []string `json:"tags"`
}

// POST /projects
func (h *Project) Create(c echo.Context) error {
	userID, err := userIDFrom(c, h.contextManager)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Title == "" || req.Body == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title and body are required")
	}

	project, err := h.projectService.Create(c.Request().Context(), model.Project{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		ImageURL:    req.ImageURL,
		Tags:        req.Tags,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newProjectResponse(project))
}

// GET /projects?user_id=...&tag=...
func (h *Project) List(c echo.Context) error {
	var filter model.ProjectFilter

	if raw := c.QueryParam("user_id"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid user_id filter")
		}
		filter.UserID = userID
	}
	filter.Tag = c.QueryParam("tag")

	projects, err := h.projectService.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	resp := make([]projectResponse, 0, len(projects))
	for _, project := range projects {
		resp = append(resp, newProjectResponse(project))
	}

	return c.JSON(http.StatusOK, resp)
}

// GET /projects/:id
func (h *Project) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid project id")
	}

	project, err := h.projectService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newProjectResponse(project))
}

type updateProjectRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Body        *string  `json:"body"`
	ImageURL    *string  `json:"image_url"`
	Tags        []string `json:"tags"`
}

// PATCH /projects/:id
func (h *Project) Update(c echo.Context) error {
	userID, err := userIDFrom(c, h.contextManager)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid project id")
	}

	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	project, err := h.projectService.Update(c.Request().Context(), userID, id, model.ProjectUpdate{
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		ImageURL:    req.ImageURL,
		Tags:        req.Tags,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newProjectResponse(project))
}

// DELETE /projects/:id
func (h *Project) Delete(c echo.Context) error {
	userID, err := userIDFrom(c, h.contextManager)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid project id")
	}

	if err := h.projectService.Disable(c.Request().Context(), userID, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
