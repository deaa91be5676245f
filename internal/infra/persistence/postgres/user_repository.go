// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single profile by the auth user ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", id).
		First(&profileM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&profileM), nil
}

// FindByEmail retrieves a single profile by email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&profileM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&profileM), nil
}

// Sync inserts the profile row on first sight of a user and refreshes
// email and name afterwards. The stored role is authoritative and is
// never overwritten, so a promotion done in the database survives what
// the auth service reports.
func (repo *userRepository) Sync(ctx context.Context, user *entity.User) error {
	profileM := fromUserDomain(user)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "name", "updated_at"}),
		}).
		Create(profileM).Error

	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("email already belongs to another profile")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to sync profile")
	}

	// Read back so the caller sees the authoritative role and timestamps.
	var stored model.ProfileModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", user.ID).First(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to reload profile after sync")
	}

	user.Role = entity.RoleFromString(stored.Role)
	user.CreatedAt = stored.CreatedAt
	user.UpdatedAt = stored.UpdatedAt

	return nil
}

// List returns profiles ordered by creation time, newest first.
func (repo *userRepository) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	var profileMs []model.ProfileModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&profileMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(profileMs))
	for i := range profileMs {
		users = append(users, toUserDomain(&profileMs[i]))
	}

	return users, nil
}

// Count returns the number of profiles.
func (repo *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ProfileModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM ProfileModel to a domain User entity.
func toUserDomain(data *model.ProfileModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.UserID,
		Email:     data.Email,
		Name:      data.Name,
		Role:      entity.RoleFromString(data.Role),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM ProfileModel for persistence.
func fromUserDomain(data *entity.User) *model.ProfileModel {
	if data == nil {
		return nil
	}

	role := data.Role
	if !role.IsValid() {
		role = entity.RoleCustomer
	}

	return &model.ProfileModel{
		UserID: data.ID,
		Email:  data.Email,
		Name:   data.Name,
		Role:   role.String(),
	}
}
