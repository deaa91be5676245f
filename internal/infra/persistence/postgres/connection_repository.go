package postgres

import (
	"context"

	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/repository"
	"roost/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// connectionRepository implements the domain.ConnectionRepository interface using GORM.
type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository is the constructor for connectionRepository.
func NewConnectionRepository(db *gorm.DB) repository.ConnectionRepository {
	return &connectionRepository{db: db}
}

// Upsert writes one row per (user, platform, page). Linking again
// replaces the token material in place instead of stacking rows.
func (repo *connectionRepository) Upsert(ctx context.Context, connection *entity.SocialConnection) error {
	connectionM := fromConnectionDomain(connection)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "platform"}, {Name: "fb_page_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"page_name", "external_uid", "access_token", "token_expiry", "updated_at",
			}),
		}).
		Create(connectionM).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert connection")
	}

	// Read back so the caller sees the row identity and timestamps of
	// whichever row the upsert landed on.
	var stored model.SocialConnectionModel
	err = repo.db.WithContext(ctx).
		Where("user_id = ? AND platform = ? AND fb_page_id = ?",
			connection.UserID, connection.Platform.String(), connection.PageID).
		First(&stored).Error
	if err != nil {
		return errors.Wrap(err, "failed to reload connection after upsert")
	}

	connection.ID = stored.ID
	connection.CreatedAt = stored.CreatedAt
	connection.UpdatedAt = stored.UpdatedAt

	return nil
}

// FindByID retrieves a single connection by its row ID.
func (repo *connectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SocialConnection, error) {
	var connectionM model.SocialConnectionModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&connectionM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConnectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find connection by id")
	}

	return toConnectionDomain(&connectionM), nil
}

// ListByUser returns every connection owned by a user, page-level rows
// after the user-level one.
func (repo *connectionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SocialConnection, error) {
	var connectionMs []model.SocialConnectionModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("platform, fb_page_id").
		Find(&connectionMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list connections")
	}

	connections := make([]*entity.SocialConnection, 0, len(connectionMs))
	for i := range connectionMs {
		connections = append(connections, toConnectionDomain(&connectionMs[i]))
	}

	return connections, nil
}

// FindOwnerByExternalUID maps a platform-side user ID back to the
// dashboard user, which is all a data-deletion callback carries.
func (repo *connectionRepository) FindOwnerByExternalUID(ctx context.Context, externalUID string) (uuid.UUID, error) {
	var connectionM model.SocialConnectionModel
	err := repo.db.WithContext(ctx).
		Where("external_uid = ?", externalUID).
		First(&connectionM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, repository.ErrConnectionNotFound
		}

		return uuid.Nil, errors.Wrap(err, "failed to find connection owner")
	}

	return connectionM.UserID, nil
}

// DeleteByUser removes every connection a user owns and reports how
// many rows went away.
func (repo *connectionRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.SocialConnectionModel{})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete connections")
	}

	return result.RowsAffected, nil
}

// Count returns the number of connections across all users.
func (repo *connectionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.SocialConnectionModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count connections")
	}

	return count, nil
}

// --- Mapper Functions ---

// toConnectionDomain converts a GORM SocialConnectionModel to a domain entity.
func toConnectionDomain(data *model.SocialConnectionModel) *entity.SocialConnection {
	if data == nil {
		return nil
	}

	connection := &entity.SocialConnection{
		ID:          data.ID,
		UserID:      data.UserID,
		Platform:    entity.Platform(data.Platform),
		PageID:      data.PageID,
		PageName:    data.PageName,
		ExternalUID: data.ExternalUID,
		AccessToken: data.AccessToken,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.TokenExpiry != nil {
		connection.TokenExpiry = *data.TokenExpiry
	}

	return connection
}

// fromConnectionDomain converts a domain entity to a GORM SocialConnectionModel.
func fromConnectionDomain(data *entity.SocialConnection) *model.SocialConnectionModel {
	if data == nil {
		return nil
	}

	connectionM := &model.SocialConnectionModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Platform:    data.Platform.String(),
		PageID:      data.PageID,
		PageName:    data.PageName,
		ExternalUID: data.ExternalUID,
		AccessToken: data.AccessToken,
	}
	if !data.TokenExpiry.IsZero() {
		expiry := data.TokenExpiry
		connectionM.TokenExpiry = &expiry
	}

	return connectionM
}
