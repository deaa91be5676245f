package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"roost/internal/domain/constants"
	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	mockUC "roost/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testUser() *entity.User {
	return &entity.User{
		ID:    uuid.MustParse("5a41d6a5-1c42-4b43-9a2c-444444444444"),
		Email: "user@example.com",
		Role:  entity.RoleCustomer,
	}
}

func newContext(target string, cookie string, accept string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: cookie})
	}
	if accept != "" {
		req.Header.Set(echo.HeaderAccept, accept)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func nextRecorder(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return c.NoContent(http.StatusOK)
	}
}

func TestAuthenticate_MissingCookie_API(t *testing.T) {
	m := NewAuthMiddleware(mockUC.NewMockSessionUsecase(t))
	c, rec := newContext("/dashboard", "", "")

	called := false
	require.NoError(t, m.Authenticate(nextRecorder(&called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "NO_SESSION")
}

func TestAuthenticate_MissingCookie_BrowserNavigation(t *testing.T) {
	m := NewAuthMiddleware(mockUC.NewMockSessionUsecase(t))
	c, rec := newContext("/dashboard", "", "text/html,application/xhtml+xml")

	called := false
	require.NoError(t, m.Authenticate(nextRecorder(&called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthenticate_ResolvesUserOntoContext(t *testing.T) {
	sessionUC := mockUC.NewMockSessionUsecase(t)
	sessionUC.EXPECT().
		Resolve(mock.Anything, "sid-1").
		Return(testUser(), nil)

	m := NewAuthMiddleware(sessionUC)
	c, rec := newContext("/dashboard", "sid-1", "")

	var gotSessionID string
	var gotUser *entity.User
	next := func(c echo.Context) error {
		gotSessionID, _ = c.Get(ContextKeySessionID).(string)
		gotUser, _ = c.Get(ContextKeyUser).(*entity.User)

		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sid-1", gotSessionID)
	require.NotNil(t, gotUser)
	assert.Equal(t, testUser().ID, gotUser.ID)
	assert.Equal(t, testUser().ID, c.Get(ContextKeyUserID))
}

func TestAuthenticate_ResolveFailure(t *testing.T) {
	sessionUC := mockUC.NewMockSessionUsecase(t)
	sessionUC.EXPECT().
		Resolve(mock.Anything, "sid-dead").
		Return(nil, domainerrors.ErrSessionExpired)

	m := NewAuthMiddleware(sessionUC)
	c, rec := newContext("/dashboard", "sid-dead", "")

	called := false
	require.NoError(t, m.Authenticate(nextRecorder(&called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole_DeniesCustomerOnAdminRoutes(t *testing.T) {
	m := NewAuthMiddleware(mockUC.NewMockSessionUsecase(t))
	c, rec := newContext("/admin", "sid-1", "")
	c.Set(ContextKeyUser, testUser())

	called := false
	require.NoError(t, m.RequireRole(entity.RoleAdmin)(nextRecorder(&called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
}

func TestRequireRole_AllowsAdmin(t *testing.T) {
	admin := testUser()
	admin.Role = entity.RoleAdmin

	m := NewAuthMiddleware(mockUC.NewMockSessionUsecase(t))
	c, rec := newContext("/admin", "sid-1", "")
	c.Set(ContextKeyUser, admin)

	called := false
	require.NoError(t, m.RequireRole(entity.RoleAdmin)(nextRecorder(&called))(c))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_WithoutResolvedUser(t *testing.T) {
	m := NewAuthMiddleware(mockUC.NewMockSessionUsecase(t))
	c, rec := newContext("/admin", "sid-1", "")

	called := false
	require.NoError(t, m.RequireRole(entity.RoleAdmin)(nextRecorder(&called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRedirectAuthenticated_SendsActiveSessionToDashboard(t *testing.T) {
	sessionUC := mockUC.NewMockSessionUsecase(t)
	sessionUC.EXPECT().
		Resolve(mock.Anything, "sid-1").
		Return(testUser(), nil)

	m := NewAuthMiddleware(sessionUC)
	c, rec := newContext("/auth", "sid-1", "text/html")

	called := false
	require.NoError(t, m.RedirectAuthenticated(nextRecorder(&called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))
}

func TestRedirectAuthenticated_FallsThroughWithoutSession(t *testing.T) {
	m := NewAuthMiddleware(mockUC.NewMockSessionUsecase(t))
	c, rec := newContext("/auth", "", "text/html")

	called := false
	require.NoError(t, m.RedirectAuthenticated(nextRecorder(&called))(c))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRedirectAuthenticated_FallsThroughOnDeadSession(t *testing.T) {
	sessionUC := mockUC.NewMockSessionUsecase(t)
	sessionUC.EXPECT().
		Resolve(mock.Anything, "sid-dead").
		Return(nil, domainerrors.ErrNoSession)

	m := NewAuthMiddleware(sessionUC)
	c, _ := newContext("/auth", "sid-dead", "text/html")

	called := false
	require.NoError(t, m.RedirectAuthenticated(nextRecorder(&called))(c))

	assert.True(t, called)
}
