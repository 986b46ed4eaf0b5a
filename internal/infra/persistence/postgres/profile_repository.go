package postgres

import (
	"context"

	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/repository"
	"usersvc/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// profileRepository implements repository.ProfileRepository using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a ProfileRepository backed by db, which may be a transaction.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindByAccountID returns the oldest profile of the account; account_id is indexed but not unique.
func (repo *profileRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error) {
	var m model.ProfileModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Order("id ASC").
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find profile")
	}

	return toProfileDomain(&m), nil
}

func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	m := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.ID = m.ID
	profile.CreatedAt = m.CreatedAt
	profile.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *profileRepository) Update(ctx context.Context, accountID uuid.UUID, update entity.ProfileUpdate) (*entity.Profile, error) {
	if update.IsEmpty() {
		return repo.FindByAccountID(ctx, accountID)
	}

	columns := map[string]any{}
	if update.Email != nil {
		columns["email"] = *update.Email
	}
	if update.FullName != nil {
		columns["full_name"] = *update.FullName
	}
	if update.PhoneNumber != nil {
		columns["phone_number"] = *update.PhoneNumber
	}
	if update.UserLocation != nil {
		columns["user_location"] = *update.UserLocation
	}
	if update.ImageReference != nil {
		columns["image_reference"] = *update.ImageReference
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("account_id = ?", accountID).
		Updates(columns)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrProfileNotFound
	}

	return repo.FindByAccountID(ctx, accountID)
}

func (repo *profileRepository) DeleteByAccountID(ctx context.Context, accountID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&model.ProfileModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete profile")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toProfileDomain(m *model.ProfileModel) *entity.Profile {
	if m == nil {
		return nil
	}

	return &entity.Profile{
		ID:             m.ID,
		AccountID:      m.AccountID,
		Email:          m.Email,
		FullName:       m.FullName,
		PhoneNumber:    m.PhoneNumber,
		UserLocation:   m.UserLocation,
		ImageReference: m.ImageReference,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func fromProfileDomain(p *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		ID:             p.ID,
		AccountID:      p.AccountID,
		Email:          p.Email,
		FullName:       p.FullName,
		PhoneNumber:    p.PhoneNumber,
		UserLocation:   p.UserLocation,
		ImageReference: p.ImageReference,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
