package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/univc/portfolio-server/internal/api/http/appcontext"
	servermocks "github.com/univc/portfolio-server/internal/mocks"
	"github.com/univc/portfolio-server/internal/model"
	"github.com/univc/portfolio-server/internal/service"
	"github.com/univc/portfolio-server/internal/testutil"
)

func newTestTokens(codec *servermocks.TokenCodec, ledger *servermocks.TokenLedger) *service.Token {
	return service.NewToken(codec, ledger, "univc-auth", "univc-api", 15*time.Minute, 720*time.Hour, testutil.MakeNoopLogger())
}

func newJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuth_RegisterStep1(t *testing.T) {
	userStore := &servermocks.UserStore{}
	codec := &servermocks.TokenCodec{}
	ledger := &servermocks.TokenLedger{}

	userID := uuid.New()
	userStore.On("GetByEmail", mock.Anything, "ana@univc.edu.br").Return(model.User{}, model.ErrNotFound).Once()
	userStore.On("Create", mock.Anything, mock.Anything).
		Return(model.User{ID: userID, Name: "Ana", Email: "ana@univc.edu.br", IsNew: true, Enabled: true}, nil).Once()
	codec.On("Encode", mock.Anything).Return("signed-token", nil)
	ledger.On("Create", mock.Anything, mock.Anything).Return(nil)

	tokens := newTestTokens(codec, ledger)
	h := NewAuth(
		service.NewAuth(userStore, tokens, testutil.MakeNoopLogger()),
		nil,
		tokens,
		appcontext.NewManager(),
		testutil.MakeNoopLogger(),
	)

	c, rec := newJSONContext(http.MethodPost, "/auth/register/step1",
		`{"name":"Ana","email":"ana@univc.edu.br","contact":"11999990000","password":"secret123"}`)
	require.NoError(t, h.RegisterStep1(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		User struct {
			ID    uuid.UUID `json:"id"`
			Email string    `json:"email"`
			IsNew bool      `json:"is_new"`
		} `json:"user"`
		Tokens struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
			TokenType    string `json:"token_type"`
			ExpiresIn    int64  `json:"expires_in"`
		} `json:"tokens"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, userID, resp.User.ID)
	assert.True(t, resp.User.IsNew)
	assert.Equal(t, "signed-token", resp.Tokens.AccessToken)
	assert.Equal(t, "Bearer", resp.Tokens.TokenType)
	assert.Equal(t, int64(900), resp.Tokens.ExpiresIn)

	userStore.AssertExpectations(t)
}

func TestAuth_RegisterStep1_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing everything", body: `{"name":"Ana"}`},
		{name: "missing contact", body: `{"name":"Ana","email":"ana@univc.edu.br","password":"secret123"}`},
		{name: "missing password", body: `{"name":"Ana","email":"ana@univc.edu.br","contact":"11999990000"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuth(nil, nil, nil, appcontext.NewManager(), testutil.MakeNoopLogger())

			c, _ := newJSONContext(http.MethodPost, "/auth/register/step1", tt.body)
			err := h.RegisterStep1(c)

			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		})
	}
}

func TestAuth_RegisterStep2(t *testing.T) {
	userStore := &servermocks.UserStore{}
	userID := uuid.New()

	userStore.On("GetByID", mock.Anything, userID).
		Return(model.User{ID: userID, Name: "Ana", Email: "ana@univc.edu.br", IsNew: true}, nil).Once()
	userStore.On("Update", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Course == "Sistemas de Informação" && u.Period == "4" && !u.IsNew && u.BirthDate != nil
	})).Return(model.User{ID: userID, Course: "Sistemas de Informação", Period: "4"}, nil).Once()

	h := NewAuth(nil, service.NewUser(userStore, nil, testutil.MakeNoopLogger()), nil,
		appcontext.NewManager(), testutil.MakeNoopLogger())

	c, rec := newJSONContext(http.MethodPost, "/auth/register/step2",
		`{"course":"Sistemas de Informação","period":"4","birth_date":"2002-05-14"}`)
	setAuthenticatedUser(c, userID)

	require.NoError(t, h.RegisterStep2(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	userStore.AssertExpectations(t)
}

func TestAuth_RegisterStep2_BadBirthDate(t *testing.T) {
	h := NewAuth(nil, nil, nil, appcontext.NewManager(), testutil.MakeNoopLogger())

	c, _ := newJSONContext(http.MethodPost, "/auth/register/step2", `{"birth_date":"14/05/2002"}`)
	setAuthenticatedUser(c, uuid.New())

	err := h.RegisterStep2(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAuth_RegisterStep2_Unauthenticated(t *testing.T) {
	h := NewAuth(nil, nil, nil, appcontext.NewManager(), testutil.MakeNoopLogger())

	c, _ := newJSONContext(http.MethodPost, "/auth/register/step2", `{}`)
	err := h.RegisterStep2(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuth_Login(t *testing.T) {
	userStore := &servermocks.UserStore{}
	codec := &servermocks.TokenCodec{}
	ledger := &servermocks.TokenLedger{}

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	userID := uuid.New()
	userStore.On("GetByEmail", mock.Anything, "ana@univc.edu.br").
		Return(model.User{ID: userID, Email: "ana@univc.edu.br", PasswordHash: string(hash), Enabled: true}, nil).Once()
	userStore.On("TouchLastSigned", mock.Anything, userID).Return(nil).Once()
	codec.On("Encode", mock.Anything).Return("signed-token", nil)
	ledger.On("Create", mock.Anything, mock.Anything).Return(nil)

	tokens := newTestTokens(codec, ledger)
	h := NewAuth(
		service.NewAuth(userStore, tokens, testutil.MakeNoopLogger()),
		nil,
		tokens,
		appcontext.NewManager(),
		testutil.MakeNoopLogger(),
	)

	c, rec := newJSONContext(http.MethodPost, "/auth/login",
		`{"email":"ana@univc.edu.br","password":"secret123"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	userStore.AssertExpectations(t)
}

func TestAuth_Refresh(t *testing.T) {
	codec := &servermocks.TokenCodec{}
	ledger := &servermocks.TokenLedger{}

	userID := uuid.New()
	sessionID := uuid.NewString()
	claims := model.TokenClaims{
		JTI:       "refresh-jti",
		UserID:    userID,
		SessionID: sessionID,
		Subject:   "ana@univc.edu.br",
		TokenType: model.TokenTypeRefresh,
	}
	codec.On("Decode", "old-refresh").Return(claims, nil).Once()
	ledger.On("GetByJTI", mock.Anything, "refresh-jti").Return(model.TokenRecord{
		JTI:       "refresh-jti",
		UserID:    userID,
		TokenType: model.TokenTypeRefresh,
		SessionID: &sessionID,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil).Once()
	ledger.On("Revoke", mock.Anything, "refresh-jti", service.ReasonRotated).Return(true, nil).Once()
	codec.On("Encode", mock.Anything).Return("new-signed", nil).Twice()
	ledger.On("Create", mock.Anything, mock.Anything).Return(nil).Twice()

	h := NewAuth(nil, nil, newTestTokens(codec, ledger), appcontext.NewManager(), testutil.MakeNoopLogger())

	c, rec := newJSONContext(http.MethodPost, "/auth/refresh", `{"refresh_token":"old-refresh"}`)
	require.NoError(t, h.Refresh(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp tokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "new-signed", resp.AccessToken)
	assert.Equal(t, "new-signed", resp.RefreshToken)

	codec.AssertExpectations(t)
	ledger.AssertExpectations(t)
}

func TestAuth_Refresh_LostRace(t *testing.T) {
	codec := &servermocks.TokenCodec{}
	ledger := &servermocks.TokenLedger{}

	userID := uuid.New()
	codec.On("Decode", "old-refresh").Return(model.TokenClaims{
		JTI:       "refresh-jti",
		UserID:    userID,
		TokenType: model.TokenTypeRefresh,
	}, nil).Once()
	ledger.On("GetByJTI", mock.Anything, "refresh-jti").Return(model.TokenRecord{
		JTI:       "refresh-jti",
		UserID:    userID,
		TokenType: model.TokenTypeRefresh,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil).Once()
	ledger.On("Revoke", mock.Anything, "refresh-jti", service.ReasonRotated).Return(false, nil).Once()

	h := NewAuth(nil, nil, newTestTokens(codec, ledger), appcontext.NewManager(), testutil.MakeNoopLogger())

	c, _ := newJSONContext(http.MethodPost, "/auth/refresh", `{"refresh_token":"old-refresh"}`)
	err := h.Refresh(c)

	assert.ErrorIs(t, err, model.ErrTokenRevoked)
	codec.AssertNotCalled(t, "Encode", mock.Anything)
}

func TestAuth_Refresh_MissingToken(t *testing.T) {
	h := NewAuth(nil, nil, nil, appcontext.NewManager(), testutil.MakeNoopLogger())

	c, _ := newJSONContext(http.MethodPost, "/auth/refresh", `{}`)
	err := h.Refresh(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAuth_Logout(t *testing.T) {
	codec := &servermocks.TokenCodec{}
	ledger := &servermocks.TokenLedger{}

	codec.On("DecodeLenient", "old-refresh").Return(model.TokenClaims{
		JTI:       "refresh-jti",
		TokenType: model.TokenTypeRefresh,
	}, nil).Once()
	ledger.On("Revoke", mock.Anything, "refresh-jti", service.ReasonLogout).Return(true, nil).Once()

	h := NewAuth(nil, nil, newTestTokens(codec, ledger), appcontext.NewManager(), testutil.MakeNoopLogger())

	c, rec := newJSONContext(http.MethodPost, "/auth/logout", `{"token":"old-refresh"}`)
	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp logoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Revoked)

	ledger.AssertExpectations(t)
}

func TestAuth_Logout_BearerHeaderFallback(t *testing.T) {
	codec := &servermocks.TokenCodec{}
	ledger := &servermocks.TokenLedger{}

	codec.On("DecodeLenient", "header-token").Return(model.TokenClaims{
		JTI:       "access-jti",
		TokenType: model.TokenTypeAccess,
	}, nil).Once()
	ledger.On("Revoke", mock.Anything, "access-jti", service.ReasonLogout).Return(true, nil).Once()

	h := NewAuth(nil, nil, newTestTokens(codec, ledger), appcontext.NewManager(), testutil.MakeNoopLogger())

	c, rec := newJSONContext(http.MethodPost, "/auth/logout", `{}`)
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer header-token")
	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	ledger.AssertExpectations(t)
}

func TestAuth_Logout_AlreadyRevoked(t *testing.T) {
	codec := &servermocks.TokenCodec{}
	ledger := &servermocks.TokenLedger{}

	codec.On("DecodeLenient", "old-refresh").Return(model.TokenClaims{
		JTI:       "refresh-jti",
		TokenType: model.TokenTypeRefresh,
	}, nil).Twice()
	ledger.On("Revoke", mock.Anything, "refresh-jti", service.ReasonLogout).Return(true, nil).Once()
	ledger.On("Revoke", mock.Anything, "refresh-jti", service.ReasonLogout).Return(false, nil).Once()

	h := NewAuth(nil, nil, newTestTokens(codec, ledger), appcontext.NewManager(), testutil.MakeNoopLogger())

	// revoking twice reports revoked both times
	for i := 0; i < 2; i++ {
		c, rec := newJSONContext(http.MethodPost, "/auth/logout", `{"token":"old-refresh"}`)
		require.NoError(t, h.Logout(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp logoutResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Revoked)
	}
}

func TestAuth_Logout_MissingToken(t *testing.T) {
	h := NewAuth(nil, nil, nil, appcontext.NewManager(), testutil.MakeNoopLogger())

	c, _ := newJSONContext(http.MethodPost, "/auth/logout", `{}`)
	err := h.Logout(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAuth_LogoutAll(t *testing.T) {
	codec := &servermocks.TokenCodec{}
	ledger := &servermocks.TokenLedger{}

	userID := uuid.New()
	ledger.On("RevokeAllByUser", mock.Anything, userID, service.ReasonLogoutAll).Return(int64(3), nil).Once()

	h := NewAuth(nil, nil, newTestTokens(codec, ledger), appcontext.NewManager(), testutil.MakeNoopLogger())

	c, rec := newJSONContext(http.MethodPost, "/auth/logout-all", `{}`)
	setAuthenticatedUser(c, userID)
	require.NoError(t, h.LogoutAll(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp logoutAllResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Revoked)

	ledger.AssertExpectations(t)
}

func TestAuth_LogoutAll_Unauthenticated(t *testing.T) {
	h := NewAuth(nil, nil, nil, appcontext.NewManager(), testutil.MakeNoopLogger())

	c, _ := newJSONContext(http.MethodPost, "/auth/logout-all", `{}`)
	err := h.LogoutAll(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func setAuthenticatedUser(c echo.Context, userID uuid.UUID) {
	cm := appcontext.NewManager()
	ctx := cm.SetUserIDToContext(c.Request().Context(), userID)
	c.SetRequest(c.Request().WithContext(ctx))
}
