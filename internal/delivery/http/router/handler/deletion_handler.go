package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"roost/config"
	"roost/internal/delivery/http/response"
	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DeletionHandlerParams holds dependencies for DeletionHandler,
// injected by Fx.
type DeletionHandlerParams struct {
	fx.In

	ConnectionUC usecase.ConnectionUsecase
	Cfg          *config.Config
	Logger       *slog.Logger
}

// DeletionHandler serves the Facebook data-deletion callback and the
// public status page it points users at.
type DeletionHandler struct {
	connectionUC usecase.ConnectionUsecase
	cfg          *config.Config
	logger       *slog.Logger
}

// NewDeletionHandler is the constructor for DeletionHandler.
func NewDeletionHandler(params DeletionHandlerParams) *DeletionHandler {
	return &DeletionHandler{
		connectionUC: params.ConnectionUC,
		cfg:          params.Cfg,
		logger:       params.Logger,
	}
}

// DeletionCallback handles the signed data-deletion request Facebook
// posts when a user removes the app. The response shape is Facebook's
// contract, not the API envelope: a status URL plus the confirmation
// code.
func (h *DeletionHandler) DeletionCallback(c echo.Context) error {
	signedRequest := c.FormValue("signed_request")
	if signedRequest == "" {
		return domainerrors.ErrSignedRequestInvalid
	}

	request, err := h.connectionUC.HandleDeletionCallback(c.Request().Context(), signedRequest)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"url":               h.statusURL(request.Code),
		"confirmation_code": request.Code,
	})
}

// DeletionStatus reports a deletion request by its confirmation code.
func (h *DeletionHandler) DeletionStatus(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing deletion confirmation code")
	}

	request, err := h.connectionUC.DeletionStatus(c.Request().Context(), code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newDeletionView(request))
}

// statusURL builds the absolute deletion-status URL handed back to
// Facebook.
func (h *DeletionHandler) statusURL(code string) string {
	base := ""
	if h.cfg.App != nil {
		base = strings.TrimSuffix(h.cfg.App.BaseURL, "/")
	}

	return base + "/deletion-status?code=" + url.QueryEscape(code)
}

// deletionView is the public deletion request payload.
type deletionView struct {
	Code        string `json:"code"`
	Status      string `json:"status"`
	RequestedAt string `json:"requested_at"`
	CompletedAt string `json:"completed_at,omitempty"`
}

func newDeletionView(request *entity.DeletionRequest) *deletionView {
	view := &deletionView{
		Code:        request.Code,
		Status:      request.Status.String(),
		RequestedAt: formatTime(request.RequestedAt),
	}
	if request.CompletedAt != nil {
		view.CompletedAt = formatTime(*request.CompletedAt)
	}

	return view
}
