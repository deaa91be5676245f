package postgres

import (
	"context"
	"time"

	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/repository"
	"roost/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deletionRepository implements the domain.DeletionRequestRepository interface using GORM.
type deletionRepository struct {
	db *gorm.DB
}

// NewDeletionRequestRepository is the constructor for deletionRepository.
func NewDeletionRequestRepository(db *gorm.DB) repository.DeletionRequestRepository {
	return &deletionRepository{db: db}
}

// Create persists a new deletion request.
func (repo *deletionRepository) Create(ctx context.Context, request *entity.DeletionRequest) error {
	requestM := fromDeletionDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create deletion request")
	}

	return nil
}

// MarkCompleted flips a pending request to completed.
func (repo *deletionRepository) MarkCompleted(ctx context.Context, code string, completedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeletionRequestModel{}).
		Where("code = ?", code).
		Updates(map[string]any{
			"status":       entity.DeletionCompleted.String(),
			"completed_at": completedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark deletion request completed")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeletionRequestNotFound
	}

	return nil
}

// FindByCode retrieves a deletion request by its public status code.
func (repo *deletionRepository) FindByCode(ctx context.Context, code string) (*entity.DeletionRequest, error) {
	var requestM model.DeletionRequestModel
	err := repo.db.WithContext(ctx).
		Where("code = ?", code).
		First(&requestM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeletionRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find deletion request")
	}

	return toDeletionDomain(&requestM), nil
}

// --- Mapper Functions ---

// toDeletionDomain converts a GORM DeletionRequestModel to a domain entity.
func toDeletionDomain(data *model.DeletionRequestModel) *entity.DeletionRequest {
	if data == nil {
		return nil
	}

	return &entity.DeletionRequest{
		Code:        data.Code,
		UserID:      data.UserID,
		Status:      entity.DeletionStatus(data.Status),
		RequestedAt: data.RequestedAt,
		CompletedAt: data.CompletedAt,
	}
}

// fromDeletionDomain converts a domain entity to a GORM DeletionRequestModel.
func fromDeletionDomain(data *entity.DeletionRequest) *model.DeletionRequestModel {
	if data == nil {
		return nil
	}

	return &model.DeletionRequestModel{
		Code:        data.Code,
		UserID:      data.UserID,
		Status:      data.Status.String(),
		RequestedAt: data.RequestedAt,
		CompletedAt: data.CompletedAt,
	}
}
