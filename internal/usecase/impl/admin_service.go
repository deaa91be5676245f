package impl

import (
	"context"
	"log/slog"

	deliverycontext "roost/internal/delivery/context"
	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/repository"
	"roost/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultUserPageSize = 50
	maxUserPageSize     = 200
)

// adminService implements the AdminUsecase interface. Role enforcement
// happens in the middleware; by the time a call lands here the caller is
// an admin.
type adminService struct {
	fx.In

	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Overview returns the headline numbers for the admin landing page.
func (srv *adminService) Overview(ctx context.Context) (*usecase.AdminOverview, error) {
	overview := &usecase.AdminOverview{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error

		overview.TotalUsers, err = repoFactory.NewUserRepository().Count(ctx)
		if err != nil {
			return err
		}

		overview.TotalConnections, err = repoFactory.NewConnectionRepository().Count(ctx)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to build admin overview", slog.Any("error", err))
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to build admin overview")
	}

	return overview, nil
}

// ListUsers pages through the profile table, newest first.
func (srv *adminService) ListUsers(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	if limit <= 0 {
		limit = defaultUserPageSize
	}
	if limit > maxUserPageSize {
		limit = maxUserPageSize
	}
	if offset < 0 {
		offset = 0
	}

	var users []*entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		users, err = repoFactory.NewUserRepository().List(ctx, limit, offset)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	return users, nil
}
