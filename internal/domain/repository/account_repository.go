// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"usersvc/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its exact email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account and fills in its ID and timestamps.
	// A duplicate email is reported as a conflict.
	Create(ctx context.Context, account *entity.Account) error

	// Update applies the supplied fields and returns the resulting account.
	// An empty change set performs no write.
	Update(ctx context.Context, id uuid.UUID, update entity.AccountUpdate) (*entity.Account, error)

	// Delete removes the account. A missing account yields ErrAccountNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns one page of accounts matching the filter, newest first,
	// together with the total number of matching accounts.
	List(ctx context.Context, filter entity.AccountFilter) ([]*entity.Account, int64, error)
}
