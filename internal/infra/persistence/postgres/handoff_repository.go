package postgres

import (
	"context"
	"encoding/json"
	"time"

	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/repository"
	"roost/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// handoffRepository implements the domain.HandoffRepository interface using GORM.
type handoffRepository struct {
	db *gorm.DB
}

// NewHandoffRepository is the constructor for handoffRepository.
func NewHandoffRepository(db *gorm.DB) repository.HandoffRepository {
	return &handoffRepository{db: db}
}

// Save writes the envelope. Saving an existing state replaces the row,
// which is how the callback caches the fetched page list.
func (repo *handoffRepository) Save(ctx context.Context, handoff *entity.HandoffState) error {
	handoffM, err := fromHandoffDomain(handoff)
	if err != nil {
		return err
	}

	err = repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(handoffM).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save handoff")
	}

	return nil
}

// Find retrieves an envelope by its state value. Staleness is the
// caller's concern; an expired row is still returned until the janitor
// sweeps it.
func (repo *handoffRepository) Find(ctx context.Context, state string) (*entity.HandoffState, error) {
	var handoffM model.OAuthHandoffModel
	err := repo.db.WithContext(ctx).
		Where("state = ?", state).
		First(&handoffM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHandoffNotFound
		}

		return nil, errors.Wrap(err, "failed to find handoff")
	}

	return toHandoffDomain(&handoffM)
}

// Delete removes an envelope. A missing row is not an error since a
// concurrent callback may already have consumed it.
func (repo *handoffRepository) Delete(ctx context.Context, state string) error {
	err := repo.db.WithContext(ctx).
		Where("state = ?", state).
		Delete(&model.OAuthHandoffModel{}).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete handoff")
	}

	return nil
}

// DeleteExpired removes every envelope past its deadline and reports
// how many were swept.
func (repo *handoffRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&model.OAuthHandoffModel{})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired handoffs")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toHandoffDomain converts a GORM OAuthHandoffModel to a domain entity.
func toHandoffDomain(data *model.OAuthHandoffModel) (*entity.HandoffState, error) {
	if data == nil {
		return nil, nil
	}

	handoff := &entity.HandoffState{
		State:       data.State,
		Version:     data.Version,
		UserID:      data.UserID,
		SessionID:   data.SessionID,
		Platform:    entity.Platform(data.Platform),
		ExternalUID: data.ExternalUID,
		IssuedAt:    data.IssuedAt,
		ExpiresAt:   data.ExpiresAt,
	}

	if len(data.Pages) > 0 {
		if err := json.Unmarshal(data.Pages, &handoff.Pages); err != nil {
			return nil, errors.Wrap(err, "corrupt page cache in handoff")
		}
	}

	return handoff, nil
}

// fromHandoffDomain converts a domain entity to a GORM OAuthHandoffModel.
func fromHandoffDomain(data *entity.HandoffState) (*model.OAuthHandoffModel, error) {
	if data == nil {
		return nil, nil
	}

	handoffM := &model.OAuthHandoffModel{
		State:       data.State,
		Version:     data.Version,
		UserID:      data.UserID,
		SessionID:   data.SessionID,
		Platform:    data.Platform.String(),
		ExternalUID: data.ExternalUID,
		IssuedAt:    data.IssuedAt,
		ExpiresAt:   data.ExpiresAt,
	}

	if len(data.Pages) > 0 {
		raw, err := json.Marshal(data.Pages)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode page cache")
		}
		handoffM.Pages = raw
	}

	return handoffM, nil
}
