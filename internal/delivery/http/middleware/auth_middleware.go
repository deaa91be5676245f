package middleware

import (
	"net/http"
	"strings"

	"roost/internal/delivery/http/response"
	"roost/internal/domain/constants"
	"roost/internal/domain/entity"
	"roost/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	// ContextKeySessionID holds the resolved session ID string.
	ContextKeySessionID = "sessionID"
	// ContextKeyUserID holds the resolved user's uuid.UUID.
	ContextKeyUserID = "userID"
	// ContextKeyUser holds the resolved *entity.User.
	ContextKeyUser = "user"
)

// AuthMiddleware guards routes behind an established session. The
// browser only ever holds the opaque session cookie; every request is
// resolved against the server-side session state.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionUC usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessionUC: sessionUC}
}

// Authenticate resolves the session cookie into a user and stores both
// on the context. Requests without a usable session are sent to the
// login page (HTML navigations) or receive a 401 (API calls).
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := sessionCookie(c)
		if sessionID == "" {
			return m.reject(c)
		}

		user, err := m.sessionUC.Resolve(c.Request().Context(), sessionID)
		if err != nil {
			return m.reject(c)
		}

		c.Set(ContextKeySessionID, sessionID)
		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyUser, user)

		return next(c)
	}
}

// RequireRole gates a route group on the resolved user's role. It must
// be used after Authenticate.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(ContextKeyUser).(*entity.User)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Access denied")
			}

			if user.Role != required {
				return response.Forbidden(c, "FORBIDDEN", "Access denied")
			}

			return next(c)
		}
	}
}

// RedirectAuthenticated sends an already-signed-in browser from the
// login page straight to the dashboard. Anything short of an active
// session falls through to the page.
func (m *AuthMiddleware) RedirectAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := sessionCookie(c)
		if sessionID == "" {
			return next(c)
		}

		if _, err := m.sessionUC.Resolve(c.Request().Context(), sessionID); err != nil {
			return next(c)
		}

		return c.Redirect(http.StatusFound, "/dashboard")
	}
}

func (m *AuthMiddleware) reject(c echo.Context) error {
	if wantsHTML(c) {
		return c.Redirect(http.StatusFound, "/auth")
	}

	return response.Unauthorized(c, "NO_SESSION", "You are not signed in")
}

// sessionCookie returns the session ID carried by the request, or an
// empty string when the cookie is absent.
func sessionCookie(c echo.Context) string {
	cookie, err := c.Cookie(constants.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}

	return cookie.Value
}

// wantsHTML reports whether the request is a browser navigation rather
// than an API call from page scripts.
func wantsHTML(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}
