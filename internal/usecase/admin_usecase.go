package usecase

import (
	"context"

	"roost/internal/domain/entity"
)

// AdminOverview aggregates the counters shown on the admin landing
// page.
type AdminOverview struct {
	TotalUsers       int64
	TotalConnections int64
}

// AdminUsecase serves the admin-only pages.
type AdminUsecase interface {
	Overview(ctx context.Context) (*AdminOverview, error)
	ListUsers(ctx context.Context, limit, offset int) ([]*entity.User, error)
}
