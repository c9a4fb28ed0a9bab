package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Health struct {
	environment string
}

func NewHealth(environment string) *Health {
	return &Health{environment: environment}
}

type healthResponse struct {
	Status      string    `json:"status"`
	Environment string    `json:"environment"`
	ServerTime  time.Time `json:"server_time"`
}

// GET /health
func (h *Health) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:      "ok",
		Environment: h.environment,
		ServerTime:  time.Now().UTC(),
	})
}
