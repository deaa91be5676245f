package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"roost/config"
	"roost/internal/delivery/http/validator"
	"roost/internal/domain/constants"
	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	mockUC "roost/internal/mocks/usecase"
	"roost/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho mirrors the server setup the handlers run under: the
// request validator is installed, nothing else.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newAuthHandler(sessionUC usecase.SessionUsecase, cfg *config.Config) *AuthHandler {
	if cfg == nil {
		cfg = &config.Config{}
	}

	return &AuthHandler{
		sessionUC: sessionUC,
		cfg:       cfg,
		logger:    testLogger(),
	}
}

func postJSON(e *echo.Echo, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func getRequest(e *echo.Echo, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func withSessionCookie(c echo.Context, sessionID string) {
	c.Request().AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: sessionID})
}

// responseSessionCookie digs the session cookie out of the recorded
// response, or returns nil when none was set.
func responseSessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == constants.SessionCookieName {
			return cookie
		}
	}

	return nil
}

func testUser() *entity.User {
	return &entity.User{
		ID:    uuid.MustParse("5a41d6a5-1c42-4b43-9a2c-444444444444"),
		Email: "user@example.com",
		Role:  entity.RoleCustomer,
		Name:  "Pat",
	}
}

func TestAuthHandler_SignIn(t *testing.T) {
	sessionUC := mockUC.NewMockSessionUsecase(t)
	sessionUC.EXPECT().
		SignIn(mock.Anything, "user@example.com", "secret-pass").
		Return("sid-1", testUser(), nil)

	h := newAuthHandler(sessionUC, nil)
	c, rec := postJSON(newTestEcho(), "/auth/sign-in", `{"email":"user@example.com","password":"secret-pass"}`)

	require.NoError(t, h.SignIn(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user@example.com")

	cookie := responseSessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "sid-1", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
}

func TestAuthHandler_SignIn_SecureCookieOnHTTPS(t *testing.T) {
	sessionUC := mockUC.NewMockSessionUsecase(t)
	sessionUC.EXPECT().
		SignIn(mock.Anything, "user@example.com", "secret-pass").
		Return("sid-1", testUser(), nil)

	cfg := &config.Config{App: &config.AppConfig{BaseURL: "https://dash.example.com"}}
	h := newAuthHandler(sessionUC, cfg)
	c, rec := postJSON(newTestEcho(), "/auth/sign-in", `{"email":"user@example.com","password":"secret-pass"}`)

	require.NoError(t, h.SignIn(c))

	cookie := responseSessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.True(t, cookie.Secure)
}

func TestAuthHandler_SignIn_MalformedBody(t *testing.T) {
	h := newAuthHandler(mockUC.NewMockSessionUsecase(t), nil)
	c, rec := postJSON(newTestEcho(), "/auth/sign-in", `{"email":`)

	require.NoError(t, h.SignIn(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestAuthHandler_SignIn_ValidationFailure(t *testing.T) {
	h := newAuthHandler(mockUC.NewMockSessionUsecase(t), nil)
	c, _ := postJSON(newTestEcho(), "/auth/sign-in", `{"email":"not-an-address","password":"short"}`)

	err := h.SignIn(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestAuthHandler_SignIn_UsecaseError(t *testing.T) {
	sessionUC := mockUC.NewMockSessionUsecase(t)
	sessionUC.EXPECT().
		SignIn(mock.Anything, "user@example.com", "wrong-password").
		Return("", nil, domainerrors.ErrInvalidCredentials)

	h := newAuthHandler(sessionUC, nil)
	c, rec := postJSON(newTestEcho(), "/auth/sign-in", `{"email":"user@example.com","password":"wrong-password"}`)

	err := h.SignIn(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, responseSessionCookie(t, rec))
}

func TestAuthHandler_SignUp_ConfirmationPending(t *testing.T) {
	sessionUC := mockUC.NewMockSessionUsecase(t)
	sessionUC.EXPECT().
		SignUp(mock.Anything, "new@example.com", "secret-pass").
		Return("", nil, nil)

	h := newAuthHandler(sessionUC, nil)
	c, rec := postJSON(newTestEcho(), "/auth/sign-up", `{"email":"new@example.com","password":"secret-pass"}`)

	require.NoError(t, h.SignUp(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), "confirmation_pending")
	assert.Nil(t, responseSessionCookie(t, rec))
}

func TestAuthHandler_SignUp_ImmediateSession(t *testing.T) {
	sessionUC := mockUC.NewMockSessionUsecase(t)
	sessionUC.EXPECT().
		SignUp(mock.Anything, "new@example.com", "secret-pass").
		Return("sid-2", testUser(), nil)

	h := newAuthHandler(sessionUC, nil)
	c, rec := postJSON(newTestEcho(), "/auth/sign-up", `{"email":"new@example.com","password":"secret-pass"}`)

	require.NoError(t, h.SignUp(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	cookie := responseSessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "sid-2", cookie.Value)
}

func TestAuthHandler_SignOut(t *testing.T) {
	sessionUC := mockUC.NewMockSessionUsecase(t)
	sessionUC.EXPECT().
		SignOut(mock.Anything, "sid-1").
		Return(nil)

	h := newAuthHandler(sessionUC, nil)
	c, rec := postJSON(newTestEcho(), "/auth/sign-out", "")
	withSessionCookie(c, "sid-1")

	require.NoError(t, h.SignOut(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed_out")

	cookie := responseSessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestAuthHandler_SignOut_WithoutCookie(t *testing.T) {
	// No expectations registered: signing out without a cookie must not
	// touch the usecase.
	h := newAuthHandler(mockUC.NewMockSessionUsecase(t), nil)
	c, rec := postJSON(newTestEcho(), "/auth/sign-out", "")

	require.NoError(t, h.SignOut(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed_out")
}

func TestAuthHandler_Session_NoCookie(t *testing.T) {
	sessionUC := mockUC.NewMockSessionUsecase(t)
	sessionUC.EXPECT().
		Snapshot(mock.Anything, "").
		Return(&usecase.SessionSnapshot{State: usecase.StateNoSession}, nil)

	h := newAuthHandler(sessionUC, nil)
	c, rec := getRequest(newTestEcho(), "/auth/session")

	require.NoError(t, h.Session(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "no_session")
}

func TestAuthHandler_Session_Active(t *testing.T) {
	expiresAt := time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC)

	sessionUC := mockUC.NewMockSessionUsecase(t)
	sessionUC.EXPECT().
		Snapshot(mock.Anything, "sid-1").
		Return(&usecase.SessionSnapshot{
			State:         usecase.StateSessionActive,
			User:          testUser(),
			ExpiresAt:     expiresAt,
			NextRefreshAt: expiresAt.Add(-12 * time.Minute),
		}, nil)

	h := newAuthHandler(sessionUC, nil)
	c, rec := getRequest(newTestEcho(), "/auth/session")
	withSessionCookie(c, "sid-1")

	require.NoError(t, h.Session(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "session_active")
	assert.Contains(t, body, "user@example.com")
	assert.Contains(t, body, "2025-06-01T13:00:00Z")
	assert.Contains(t, body, "next_refresh_at")
}

func TestAuthHandler_Session_ErrorState(t *testing.T) {
	sessionUC := mockUC.NewMockSessionUsecase(t)
	sessionUC.EXPECT().
		Snapshot(mock.Anything, "sid-1").
		Return(&usecase.SessionSnapshot{
			State:     usecase.StateSessionError,
			LastError: "heartbeat refresh failed",
		}, nil)

	h := newAuthHandler(sessionUC, nil)
	c, rec := getRequest(newTestEcho(), "/auth/session")
	withSessionCookie(c, "sid-1")

	require.NoError(t, h.Session(c))

	body := rec.Body.String()
	assert.Contains(t, body, "session_error")
	assert.Contains(t, body, "heartbeat refresh failed")
}

func TestAuthHandler_Retry_WithoutCookie(t *testing.T) {
	h := newAuthHandler(mockUC.NewMockSessionUsecase(t), nil)
	c, _ := postJSON(newTestEcho(), "/auth/retry", "")

	err := h.Retry(c)
	assert.ErrorIs(t, err, domainerrors.ErrNoSession)
}

func TestAuthHandler_Retry(t *testing.T) {
	sessionUC := mockUC.NewMockSessionUsecase(t)
	sessionUC.EXPECT().
		Retry(mock.Anything, "sid-1").
		Return(nil)
	sessionUC.EXPECT().
		Snapshot(mock.Anything, "sid-1").
		Return(&usecase.SessionSnapshot{State: usecase.StateSessionActive, User: testUser()}, nil)

	h := newAuthHandler(sessionUC, nil)
	c, rec := postJSON(newTestEcho(), "/auth/retry", "")
	withSessionCookie(c, "sid-1")

	require.NoError(t, h.Retry(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "session_active")
}

func TestAuthHandler_ForceReset(t *testing.T) {
	sessionUC := mockUC.NewMockSessionUsecase(t)
	sessionUC.EXPECT().
		ForceReset(mock.Anything, "sid-1").
		Return(nil)

	h := newAuthHandler(sessionUC, nil)
	c, rec := postJSON(newTestEcho(), "/auth/force-reset", "")
	withSessionCookie(c, "sid-1")

	require.NoError(t, h.ForceReset(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "reset")

	cookie := responseSessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestAuthHandler_LoginPage(t *testing.T) {
	h := newAuthHandler(mockUC.NewMockSessionUsecase(t), nil)
	c, rec := getRequest(newTestEcho(), "/auth")

	require.NoError(t, h.LoginPage(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"page":"auth"`)
}
