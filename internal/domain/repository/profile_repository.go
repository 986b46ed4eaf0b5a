package repository

import (
	"context"
	"errors"

	"usersvc/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when an account has no profile.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the operations for profile persistence.
type ProfileRepository interface {
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error)
	Create(ctx context.Context, profile *entity.Profile) error
	// Update applies the supplied fields to the profile of accountID.
	Update(ctx context.Context, accountID uuid.UUID, update entity.ProfileUpdate) (*entity.Profile, error)
	// DeleteByAccountID removes any profile of the account. Absence is not an error.
	DeleteByAccountID(ctx context.Context, accountID uuid.UUID) (int64, error)
}
