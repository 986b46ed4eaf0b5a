package usecase

import (
	"context"

	"usersvc/internal/domain/entity"
)

// Listing defaults and bounds.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// AdminCreateUserInput defines the data an administrator supplies to create an account.
type AdminCreateUserInput struct {
	Email        string  `json:"email" form:"email" validate:"required,email,max=255"`
	FullName     string  `json:"fullName" form:"fullName" validate:"required,min=1,max=255"`
	Password     string  `json:"password" form:"password" validate:"required,min=6,max=72"`
	Role         string  `json:"role,omitempty" form:"role" validate:"omitempty,oneof=user admin"`
	PhoneNumber  *string `json:"phoneNumber,omitempty" form:"phoneNumber" validate:"omitnil,min=10,max=32"`
	UserLocation *string `json:"userLocation,omitempty" form:"userLocation" validate:"omitnil,max=255"`
}

// AdminUpdateUserInput carries a partial administrative update. Nil fields are left untouched.
type AdminUpdateUserInput struct {
	Email        *string `json:"email,omitempty" form:"email" validate:"omitnil,email,max=255"`
	FullName     *string `json:"fullName,omitempty" form:"fullName" validate:"omitnil,min=1,max=255"`
	Password     *string `json:"password,omitempty" form:"password" validate:"omitnil,min=6,max=72"`
	Role         *string `json:"role,omitempty" form:"role" validate:"omitnil,oneof=user admin"`
	PhoneNumber  *string `json:"phoneNumber,omitempty" form:"phoneNumber" validate:"omitnil,min=10,max=32"`
	UserLocation *string `json:"userLocation,omitempty" form:"userLocation" validate:"omitnil,max=255"`
}

// ListUsersInput selects one page of accounts. Zero Page and Limit take the defaults.
type ListUsersInput struct {
	Page   int    `json:"page" query:"page" validate:"omitempty,min=1"`
	Limit  int    `json:"limit" query:"limit" validate:"omitempty,min=1,max=100"`
	Role   string `json:"role" query:"role" validate:"omitempty,oneof=user admin"`
	Search string `json:"search" query:"search"`
}

// ListUsersOutput is one page of accounts with its pagination metadata.
type ListUsersOutput struct {
	Users      []*entity.Account  `json:"users"`
	Pagination *entity.Pagination `json:"pagination"`
}

// DeleteUserOutput confirms a completed deletion.
type DeleteUserOutput struct {
	Message string `json:"message"`
}

// AdminUsecase defines the administrative account management operations.
type AdminUsecase interface {
	CreateUser(ctx context.Context, input *AdminCreateUserInput, imageRef *string) (*entity.Account, error)
	ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error)
	GetUser(ctx context.Context, id string) (*entity.AccountWithProfile, error)
	UpdateUser(ctx context.Context, id string, input *AdminUpdateUserInput, imageRef *string) (*entity.AccountWithProfile, error)
	DeleteUser(ctx context.Context, id string) (*DeleteUserOutput, error)
}
