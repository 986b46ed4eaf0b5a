// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"usersvc/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email           string `json:"email" form:"email" validate:"required,email,max=255"`
	FullName        string `json:"fullName" form:"fullName" validate:"required,min=3,max=255"`
	Password        string `json:"password" form:"password" validate:"required,min=6,max=72"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"required,eqfield=Password"`
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string `json:"email" form:"email" validate:"required,email,max=255"`
	Password string `json:"password" form:"password" validate:"required,max=72"`
}

// --- Output DTOs ---

// LoginOutput returns the signed access token together with the account it was issued for.
type LoginOutput struct {
	Token   string          `json:"token"`
	Account *entity.Account `json:"account"`
}

// AccountUsecase defines the credential-related business operations.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.Account, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	// UpdateAccount updates the caller's own account and profile. Any target other than
	// the caller is forbidden, whatever the payload.
	UpdateAccount(ctx context.Context, caller entity.Identity, targetID string, input *UpdateProfileInput) (*entity.Profile, error)
}
