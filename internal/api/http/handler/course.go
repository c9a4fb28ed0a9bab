package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/univc/portfolio-server/internal/logger"
	"github.com/univc/portfolio-server/internal/model"
	"github.com/univc/portfolio-server/internal/service"
)

type Course struct {
	courseService *service.Course
	logger        *logger.Logger
}

func NewCourse(courseService *service.Course, logger *logger.Logger) *Course {
	return &Course{courseService: courseService, logger: logger}
}

type createCourseRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Period      int    `json:"period"`
}

// POST /courses
func (h *Course) Create(c echo.Context) error {
	var req createCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if req.Period < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "period must not be negative")
	}

	course, err := h.courseService.Create(c.Request().Context(), model.Course{
		Name:        req.Name,
		Description: req.Description,
		Period:      req.Period,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newCourseResponse(course))
}

// GET /courses
func (h *Course) List(c echo.Context) error {
	courses, err := h.courseService.ListEnabled(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]courseResponse, 0, len(courses))
	for _, course := range courses {
		resp = append(resp, newCourseResponse(course))
	}

	return c.JSON(http.StatusOK, resp)
}

// GET /courses/:id
func (h *Course) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid course id")
	}

	course, err := h.courseService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newCourseResponse(course))
}

type updateCourseRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Period      *int    `json:"period"`
}

// PATCH /courses/:id
func (h *Course) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid course id")
	}

	var req updateCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Period != nil && *req.Period < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "period must not be negative")
	}

	course, err := h.courseService.Update(c.Request().Context(), id, model.CourseUpdate{
		Name:        req.Name,
		Description: req.Description,
		Period:      req.Period,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newCourseResponse(course))
}

type setCourseEnabledRequest struct {
	Enabled bool `json:"enabled"`
}

// PUT /courses/:id/enabled
func (h *Course) SetEnabled(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid course id")
	}

	var req setCourseEnabledRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	course, err := h.courseService.SetEnabled(c.Request().Context(), id, req.Enabled)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newCourseResponse(course))
}
