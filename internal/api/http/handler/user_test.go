package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/univc/portfolio-server/internal/api/http/appcontext"
	servermocks "github.com/univc/portfolio-server/internal/mocks"
	"github.com/univc/portfolio-server/internal/model"
	"github.com/univc/portfolio-server/internal/service"
	"github.com/univc/portfolio-server/internal/testutil"
)

func TestUser_Me(t *testing.T) {
	userStore := &servermocks.UserStore{}
	userID := uuid.New()

	userStore.On("GetByID", mock.Anything, userID).
		Return(model.User{ID: userID, Name: "Ana", Email: "ana@univc.edu.br", XPTotal: 120}, nil).Once()

	h := NewUser(service.NewUser(userStore, nil, testutil.MakeNoopLogger()), nil,
		appcontext.NewManager(), testutil.MakeNoopLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setAuthenticatedUser(c, userID)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ID      uuid.UUID `json:"id"`
		Name    string    `json:"name"`
		XPTotal int       `json:"xp_total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, userID, resp.ID)
	assert.Equal(t, "Ana", resp.Name)
	assert.Equal(t, 120, resp.XPTotal)

	userStore.AssertExpectations(t)
}

func TestUser_Me_Unauthenticated(t *testing.T) {
	h := NewUser(nil, nil, appcontext.NewManager(), testutil.MakeNoopLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Me(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestUser_UploadAvatar(t *testing.T) {
	storage := &servermocks.Storage{}
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
		return len(key) > 0
	}), "image/png", mock.Anything, mock.Anything).
		Return("https://cdn.example.com/avatars/abc.png", nil).Once()

	media := service.NewMedia(storage, "UNIVC/e-Portfolio", testutil.MakeNoopLogger())
	h := NewUser(nil, media, appcontext.NewManager(), testutil.MakeNoopLogger())

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="image"; filename="avatar.png"`}
	header["Content-Type"] = []string{"image/png"}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\nfake image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/users/me/avatar", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setAuthenticatedUser(c, uuid.New())

	require.NoError(t, h.UploadAvatar(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp avatarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "https://cdn.example.com/avatars/abc.png", resp.URL)

	storage.AssertExpectations(t)
}

func TestUser_UploadAvatar_MissingFile(t *testing.T) {
	h := NewUser(nil, nil, appcontext.NewManager(), testutil.MakeNoopLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/users/me/avatar", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setAuthenticatedUser(c, uuid.New())

	err := h.UploadAvatar(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestUser_UploadAvatar_UnsupportedExtension(t *testing.T) {
	storage := &servermocks.Storage{}
	media := service.NewMedia(storage, "UNIVC/e-Portfolio", testutil.MakeNoopLogger())
	h := NewUser(nil, media, appcontext.NewManager(), testutil.MakeNoopLogger())

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", "resume.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/users/me/avatar", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setAuthenticatedUser(c, uuid.New())

	err = h.UploadAvatar(c)
	assert.ErrorIs(t, err, model.ErrUnsupportedImage)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
