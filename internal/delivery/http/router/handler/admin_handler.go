package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"roost/internal/delivery/http/response"
	"roost/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultUserPageSize = 50
	maxUserPageSize     = 200
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the admin-only pages. Role gating happens in the
// router; by the time a request lands here it carries an admin user.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// Overview serves the admin landing page counters.
func (h *AdminHandler) Overview(c echo.Context) error {
	overview, err := h.adminUC.Overview(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, adminOverviewView{
		Page:             "admin",
		TotalUsers:       overview.TotalUsers,
		TotalConnections: overview.TotalConnections,
	})
}

// ListUsers serves a page of registered users.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	limit := queryInt(c, "limit", defaultUserPageSize)
	if limit < 1 || limit > maxUserPageSize {
		limit = defaultUserPageSize
	}

	offset := queryInt(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	users, err := h.adminUC.ListUsers(c.Request().Context(), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*userView, 0, len(users))
	for _, user := range users {
		views = append(views, newUserView(user))
	}

	return response.Success(c, http.StatusOK, adminUsersView{
		Users:  views,
		Limit:  limit,
		Offset: offset,
	})
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}

// adminOverviewView is the admin landing page payload.
type adminOverviewView struct {
	Page             string `json:"page"`
	TotalUsers       int64  `json:"total_users"`
	TotalConnections int64  `json:"total_connections"`
}

// adminUsersView is one page of the admin user list.
type adminUsersView struct {
	Users  []*userView `json:"users"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}
