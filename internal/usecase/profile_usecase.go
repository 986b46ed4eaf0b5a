package usecase

import (
	"context"

	"usersvc/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput carries a partial self-service update. Nil fields are left untouched.
type UpdateProfileInput struct {
	FullName       *string `json:"fullName,omitempty" form:"fullName" validate:"omitnil,min=1,max=255"`
	Email          *string `json:"email,omitempty" form:"email" validate:"omitnil,email,max=255"`
	PhoneNumber    *string `json:"phoneNumber,omitempty" form:"phoneNumber" validate:"omitnil,min=10,max=32"`
	UserLocation   *string `json:"userLocation,omitempty" form:"userLocation" validate:"omitnil,max=255"`
	ImageReference *string `json:"-" form:"-"`
}

// ProfileUsecase defines the self-service profile operations.
type ProfileUsecase interface {
	GetOwnProfile(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error)
	UpdateOwnProfile(ctx context.Context, accountID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)
}
