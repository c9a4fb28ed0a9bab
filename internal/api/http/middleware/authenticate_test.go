package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/univc/portfolio-server/internal/api/http/appcontext"
	"github.com/univc/portfolio-server/internal/model"
	"github.com/univc/portfolio-server/internal/testutil"
)

type stubTokenService struct {
	userID uuid.UUID
	err    error
}

func (s *stubTokenService) GetUserID(_ context.Context, _ string) (uuid.UUID, error) {
	return s.userID, s.err
}

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthenticate_Handle(t *testing.T) {
	userID := uuid.New()
	cm := appcontext.NewManager()
	mw := NewAuthenticate(&stubTokenService{userID: userID}, cm, testutil.MakeNoopLogger())

	var gotID uuid.UUID
	var gotOK bool
	next := func(c echo.Context) error {
		gotID, gotOK = cm.GetUserIDFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	}

	c, _ := newAuthContext("Bearer some-access-token")
	err := mw.Handle(next)(c)

	require.NoError(t, err)
	assert.True(t, gotOK)
	assert.Equal(t, userID, gotID)
}

func TestAuthenticate_Handle_MissingHeader(t *testing.T) {
	mw := NewAuthenticate(&stubTokenService{userID: uuid.New()}, appcontext.NewManager(), testutil.MakeNoopLogger())

	next := func(c echo.Context) error {
		t.Fatal("next should not be called")
		return nil
	}

	c, _ := newAuthContext("")
	err := mw.Handle(next)(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthenticate_Handle_InvalidToken(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "unknown token", err: model.ErrTokenUnknown},
		{name: "revoked token", err: model.ErrTokenRevoked},
		{name: "expired token", err: model.ErrTokenExpired},
		{name: "malformed token", err: model.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := NewAuthenticate(&stubTokenService{err: tt.err}, appcontext.NewManager(), testutil.MakeNoopLogger())

			c, _ := newAuthContext("Bearer bad-token")
			err := mw.Handle(func(c echo.Context) error { return nil })(c)

			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
		})
	}
}

func TestAuthenticate_Handle_NilUserID(t *testing.T) {
	mw := NewAuthenticate(&stubTokenService{userID: uuid.Nil}, appcontext.NewManager(), testutil.MakeNoopLogger())

	c, _ := newAuthContext("Bearer some-access-token")
	err := mw.Handle(func(c echo.Context) error { return nil })(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestExtractBearer(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "trims whitespace", header: "Bearer  abc ", want: "abc"},
		{name: "empty header", header: "", want: ""},
		{name: "no prefix", header: "abc.def.ghi", want: ""},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", want: ""},
		{name: "lowercase scheme", header: "bearer abc", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractBearer(tt.header))
		})
	}
}
