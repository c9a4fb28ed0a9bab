package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/univc/portfolio-server/internal/testutil"
)

func TestLogging_Handle(t *testing.T) {
	mw := NewLogging(testutil.MakeNoopLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogging_Handle_Error(t *testing.T) {
	mw := NewLogging(testutil.MakeNoopLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/courses", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	wantErr := echo.NewHTTPError(http.StatusNotFound)
	err := mw.Handle(func(c echo.Context) error {
		return wantErr
	})(c)

	assert.Equal(t, wantErr, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
