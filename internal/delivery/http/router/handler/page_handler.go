package handler

import (
	"log/slog"
	"net/http"

	"roost/internal/delivery/http/middleware"
	"roost/internal/delivery/http/response"
	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PageHandlerParams holds dependencies for PageHandler, injected by Fx.
type PageHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// PageHandler serves the authenticated page views. The payloads stay
// minimal: the routes exist to gate access and feed the page shells,
// not to render UI.
type PageHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewPageHandler is the constructor for PageHandler.
func NewPageHandler(params PageHandlerParams) *PageHandler {
	return &PageHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// Dashboard serves the dashboard view: the resolved user plus the
// session lifecycle snapshot the status widget polls.
func (h *PageHandler) Dashboard(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	snap, err := h.sessionUC.Snapshot(c.Request().Context(), contextSessionID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dashboardView{
		Page:    "dashboard",
		User:    newUserView(user),
		Session: newSnapshotView(snap),
	})
}

// Messages serves the messages view shell.
func (h *PageHandler) Messages(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, messagesView{
		Page:    "messages",
		Threads: []messageThreadView{},
	})
}

// MessageThread serves a single thread view shell.
func (h *PageHandler) MessageThread(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, messageThreadView{
		Page:     "message_thread",
		ThreadID: c.Param("id"),
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// currentUser extracts the resolved user placed on the context by the
// auth middleware.
func currentUser(c echo.Context) (*entity.User, error) {
	user, ok := c.Get(middleware.ContextKeyUser).(*entity.User)
	if !ok {
		return nil, domainerrors.ErrNoSession
	}

	return user, nil
}

// dashboardView is the dashboard page payload.
type dashboardView struct {
	Page    string        `json:"page"`
	User    *userView     `json:"user"`
	Session *snapshotView `json:"session"`
}

// messagesView is the messages page payload.
type messagesView struct {
	Page    string              `json:"page"`
	Threads []messageThreadView `json:"threads"`
}

// messageThreadView is one thread of the messages page.
type messageThreadView struct {
	Page     string `json:"page,omitempty"`
	ThreadID string `json:"thread_id,omitempty"`
}
