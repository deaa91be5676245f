// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"roost/config"
	"roost/internal/delivery/http/response"
	"roost/internal/domain/constants"
	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Cfg       *config.Config
	Logger    *slog.Logger
}

// AuthHandler serves sign-in, sign-up, sign-out and the session status
// endpoints. The browser only ever holds the opaque session cookie;
// tokens stay server-side.
type AuthHandler struct {
	sessionUC usecase.SessionUsecase
	cfg       *config.Config
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		sessionUC: params.SessionUC,
		cfg:       params.Cfg,
		logger:    params.Logger,
	}
}

// CredentialsRequest represents the request body for sign-in and sign-up.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginPage serves the login view state. Browsers holding an active
// session never reach it; RedirectAuthenticated sends them to the
// dashboard first.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"page": "auth"})
}

// SignIn handles password sign-in and installs the session cookie.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid credentials input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	sessionID, user, err := h.sessionUC.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, sessionID)

	return response.Success(c, http.StatusOK, authView{User: newUserView(user)})
}

// SignUp handles account registration. Deployments that require email
// confirmation return no session; the caller shows the confirmation
// notice instead.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid credentials input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	sessionID, user, err := h.sessionUC.SignUp(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	if sessionID == "" {
		return response.Success(c, http.StatusAccepted, map[string]string{"status": "confirmation_pending"})
	}

	h.setSessionCookie(c, sessionID)

	return response.Success(c, http.StatusCreated, authView{User: newUserView(user)})
}

// SignOut ends the session and clears the cookie. It succeeds no matter
// what state the session was in.
func (h *AuthHandler) SignOut(c echo.Context) error {
	if sessionID := sessionCookie(c); sessionID != "" {
		if err := h.sessionUC.SignOut(c.Request().Context(), sessionID); err != nil {
			return errors.WithStack(err)
		}
	}

	h.clearSessionCookie(c)

	return response.Success(c, http.StatusOK, map[string]string{"status": "signed_out"})
}

// Session reports the lifecycle state of the caller's session. A
// missing cookie is not an error, it reads as "no session".
func (h *AuthHandler) Session(c echo.Context) error {
	snap, err := h.sessionUC.Snapshot(c.Request().Context(), sessionCookie(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSnapshotView(snap))
}

// Retry re-runs the session check after an error state and returns the
// resulting snapshot.
func (h *AuthHandler) Retry(c echo.Context) error {
	sessionID := sessionCookie(c)
	if sessionID == "" {
		return domainerrors.ErrNoSession
	}

	if err := h.sessionUC.Retry(c.Request().Context(), sessionID); err != nil {
		return errors.WithStack(err)
	}

	snap, err := h.sessionUC.Snapshot(c.Request().Context(), sessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSnapshotView(snap))
}

// ForceReset abandons the session unconditionally and clears the
// cookie.
func (h *AuthHandler) ForceReset(c echo.Context) error {
	if sessionID := sessionCookie(c); sessionID != "" {
		if err := h.sessionUC.ForceReset(c.Request().Context(), sessionID); err != nil {
			return errors.WithStack(err)
		}
	}

	h.clearSessionCookie(c)

	return response.Success(c, http.StatusOK, map[string]string{"status": "reset"})
}

// setSessionCookie installs the opaque session cookie.
func (h *AuthHandler) setSessionCookie(c echo.Context, sessionID string) {
	c.SetCookie(&http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secureCookies(),
	})
}

// clearSessionCookie expires the session cookie.
func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secureCookies(),
	})
}

func (h *AuthHandler) secureCookies() bool {
	return h.cfg.App != nil && strings.HasPrefix(h.cfg.App.BaseURL, "https://")
}

// sessionCookie returns the session ID carried by the request, or an
// empty string when the browser sent none.
func sessionCookie(c echo.Context) string {
	cookie, err := c.Cookie(constants.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}

	return cookie.Value
}

// authView is the payload returned after sign-in and sign-up.
type authView struct {
	User *userView `json:"user"`
}

// userView is the user payload exposed to the dashboard.
type userView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name,omitempty"`
}

func newUserView(user *entity.User) *userView {
	if user == nil {
		return nil
	}

	return &userView{
		ID:    user.ID.String(),
		Email: user.Email,
		Role:  user.Role.String(),
		Name:  user.Name,
	}
}

// snapshotView is the session lifecycle payload for the status widget.
type snapshotView struct {
	State         string    `json:"state"`
	User          *userView `json:"user,omitempty"`
	ExpiresAt     string    `json:"expires_at,omitempty"`
	NextRefreshAt string    `json:"next_refresh_at,omitempty"`
	LastError     string    `json:"last_error,omitempty"`
}

func newSnapshotView(snap *usecase.SessionSnapshot) *snapshotView {
	return &snapshotView{
		State:         string(snap.State),
		User:          newUserView(snap.User),
		ExpiresAt:     formatTime(snap.ExpiresAt),
		NextRefreshAt: formatTime(snap.NextRefreshAt),
		LastError:     snap.LastError,
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(time.RFC3339)
}
