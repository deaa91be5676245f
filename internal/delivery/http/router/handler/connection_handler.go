package handler

import (
	"context"
	"log/slog"
	"net/http"

	deliverycontext "roost/internal/delivery/context"
	"roost/internal/delivery/http/middleware"
	"roost/internal/delivery/http/response"
	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ConnectionHandlerParams holds dependencies for ConnectionHandler,
// injected by Fx.
type ConnectionHandlerParams struct {
	fx.In

	ConnectionUC usecase.ConnectionUsecase
	Logger       *slog.Logger
}

// ConnectionHandler serves the social-platform linking flow: the
// outbound redirect, the widget status report, the OAuth callbacks and
// the stored connection list.
type ConnectionHandler struct {
	connectionUC usecase.ConnectionUsecase
	logger       *slog.Logger
}

// NewConnectionHandler is the constructor for ConnectionHandler.
func NewConnectionHandler(params ConnectionHandlerParams) *ConnectionHandler {
	return &ConnectionHandler{
		connectionUC: params.ConnectionUC,
		logger:       params.Logger,
	}
}

// WidgetStatusRequest represents the status report posted by the
// embedded login widget. Statuses other than the known ones are passed
// through and treated as unknown.
type WidgetStatusRequest struct {
	Status      string `json:"status" validate:"required"`
	FacebookUID string `json:"facebook_uid"`
	AccessToken string `json:"access_token"`
}

// SelectPageRequest represents the page choice finishing a multi-page
// callback.
type SelectPageRequest struct {
	State  string `json:"state" validate:"required"`
	PageID string `json:"page_id" validate:"required"`
}

// BeginLink starts the linking flow for a platform. With ?redirect=true
// the browser is sent straight to the provider dialog; otherwise the
// dialog URL is returned for the frontend to navigate to.
func (h *ConnectionHandler) BeginLink(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	platform := entity.Platform(c.Param("platform"))
	if !platform.IsValid() {
		return response.BadRequest(c, "INVALID_PLATFORM", "Unknown platform")
	}

	dialogURL, err := h.connectionUC.BeginLink(c.Request().Context(), user.ID, contextSessionID(c), platform)
	if err != nil {
		return errors.WithStack(err)
	}

	if c.QueryParam("redirect") == "true" {
		return c.Redirect(http.StatusTemporaryRedirect, dialogURL)
	}

	return response.Success(c, http.StatusOK, map[string]string{"dialog_url": dialogURL})
}

// WidgetStatus processes a login-status change from the embedded
// widget. Every status converges on a persisted hand-off and the dialog
// URL the frontend redirects to.
func (h *ConnectionHandler) WidgetStatus(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req WidgetStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status change input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	change := entity.StatusChange{
		Status:      entity.LoginStatus(req.Status),
		FacebookUID: req.FacebookUID,
		AccessToken: req.AccessToken,
	}

	dialogURL, err := h.connectionUC.HandleWidgetStatus(c.Request().Context(), user.ID, contextSessionID(c), change)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"dialog_url": dialogURL})
}

// FacebookCallback handles the Facebook OAuth redirect.
func (h *ConnectionHandler) FacebookCallback(c echo.Context) error {
	return h.completeCallback(c, h.connectionUC.CompleteFacebookCallback)
}

// InstagramCallback handles the Instagram OAuth redirect.
func (h *ConnectionHandler) InstagramCallback(c echo.Context) error {
	return h.completeCallback(c, h.connectionUC.CompleteInstagramCallback)
}

// completeCallback runs one callback through the linking state machine
// and renders the outcome: a redirect when the flow settled on a
// destination, the page selection when several pages are available, and
// the step trail on terminal errors.
func (h *ConnectionHandler) completeCallback(c echo.Context, complete func(ctx context.Context, state, code string) (*usecase.CallbackResult, error)) error {
	state := c.QueryParam("state")
	code := c.QueryParam("code")

	result, err := complete(c.Request().Context(), state, code)
	if err != nil {
		if result != nil && result.RedirectTo != "" {
			return c.Redirect(http.StatusFound, result.RedirectTo)
		}

		return h.callbackError(c, result, err)
	}

	if result.NeedsSelection {
		return response.Success(c, http.StatusOK, selectionView{
			Page:    "select_page",
			State:   state,
			Pages:   newPageViews(result.Pages),
			Message: "Several pages are available, pick the one to connect",
		})
	}

	return c.Redirect(http.StatusFound, result.RedirectTo)
}

// SelectPage finishes a multi-page callback with the chosen page.
func (h *ConnectionHandler) SelectPage(c echo.Context) error {
	var req SelectPageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid page selection input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.connectionUC.SelectPage(c.Request().Context(), req.State, req.PageID)
	if err != nil {
		return h.callbackError(c, result, err)
	}

	return response.Success(c, http.StatusOK, callbackView{
		Steps:      stepStrings(result.Steps),
		Connection: newConnectionView(result.Connection),
		RedirectTo: result.RedirectTo,
	})
}

// Settings serves the settings view: the user's connections with token
// material redacted.
func (h *ConnectionHandler) Settings(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	connections, err := h.connectionUC.ListConnections(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*connectionView, 0, len(connections))
	for _, conn := range connections {
		views = append(views, newConnectionView(conn))
	}

	return response.Success(c, http.StatusOK, settingsView{
		Page:        "settings",
		Connections: views,
	})
}

// MessengerQR renders the m.me QR code PNG for an owned page
// connection.
func (h *ConnectionHandler) MessengerQR(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	connectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid connection ID")
	}

	png, err := h.connectionUC.MessengerQR(c.Request().Context(), user.ID, connectionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// callbackError renders a terminal linking failure. The step trail
// rides in the error details whatever the status code, so the callback
// page can show where the flow stopped.
func (h *ConnectionHandler) callbackError(c echo.Context, result *usecase.CallbackResult, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	var steps []string
	if result != nil {
		steps = stepStrings(result.Steps)
	}

	return c.JSON(appErr.HTTPCode(), domainerrors.ErrorResponse{
		Error: &domainerrors.ErrorInfo{
			Code:    appErr.ErrorCode(),
			Message: appErr.Message(),
			Details: callbackDetails{Steps: steps},
		},
		Meta: &domainerrors.MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// contextSessionID reads the session ID the auth middleware stored on
// the context.
func contextSessionID(c echo.Context) string {
	sessionID, _ := c.Get(middleware.ContextKeySessionID).(string)

	return sessionID
}

func stepStrings(steps []usecase.CallbackStep) []string {
	out := make([]string, 0, len(steps))
	for _, step := range steps {
		out = append(out, string(step))
	}

	return out
}

// callbackDetails is the details payload of a terminal linking failure.
type callbackDetails struct {
	Steps []string `json:"steps"`
}

// callbackView is the payload of a finished page selection.
type callbackView struct {
	Steps      []string        `json:"steps"`
	Connection *connectionView `json:"connection,omitempty"`
	RedirectTo string          `json:"redirect_to,omitempty"`
}

// selectionView asks the callback page to offer a page choice.
type selectionView struct {
	Page    string      `json:"page"`
	State   string      `json:"state"`
	Pages   []*pageView `json:"pages"`
	Message string      `json:"message"`
}

// pageView is one selectable page. Page tokens never leave the server.
type pageView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

func newPageViews(pages []entity.FacebookPage) []*pageView {
	views := make([]*pageView, 0, len(pages))
	for _, page := range pages {
		views = append(views, &pageView{
			ID:       page.ID,
			Name:     page.Name,
			Category: page.Category,
		})
	}

	return views
}

// settingsView is the settings page payload.
type settingsView struct {
	Page        string            `json:"page"`
	Connections []*connectionView `json:"connections"`
}

// connectionView is one stored connection with token material redacted.
type connectionView struct {
	ID            string `json:"id"`
	Platform      string `json:"platform"`
	PageID        string `json:"page_id,omitempty"`
	PageName      string `json:"page_name,omitempty"`
	MessengerLink string `json:"messenger_link,omitempty"`
	TokenExpiry   string `json:"token_expiry,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
	UpdatedAt     string `json:"updated_at,omitempty"`
}

func newConnectionView(conn *entity.SocialConnection) *connectionView {
	if conn == nil {
		return nil
	}

	return &connectionView{
		ID:            conn.ID.String(),
		Platform:      conn.Platform.String(),
		PageID:        conn.PageID,
		PageName:      conn.PageName,
		MessengerLink: conn.MessengerLink(),
		TokenExpiry:   formatTime(conn.TokenExpiry),
		CreatedAt:     formatTime(conn.CreatedAt),
		UpdatedAt:     formatTime(conn.UpdatedAt),
	}
}
