// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the credential record of a person: who they are and how they log in.
type Account struct {
	ID           uuid.UUID `json:"id"`        // The Global Unique Identifier (GUID) for the account.
	Email        string    `json:"email"`     // Login identifier, unique across all accounts.
	FullName     string    `json:"fullName"`  // The account holder's display name.
	PasswordHash string    `json:"-"`         // bcrypt hash, never serialized.
	Role         Role      `json:"role"`      // Either "user" or "admin".
	CreatedAt    time.Time `json:"createdAt"` // Timestamp of when this account was created.
	UpdatedAt    time.Time `json:"updatedAt"` // Timestamp of the last modification to this account.
}

// Identity returns the claims that are embedded in an access token for this account.
func (a *Account) Identity() Identity {
	return Identity{
		ID:       a.ID,
		Email:    a.Email,
		FullName: a.FullName,
		Role:     a.Role,
	}
}

// AccountUpdate is a partial change set for an Account. Nil fields are left untouched.
type AccountUpdate struct {
	Email        *string
	FullName     *string
	PasswordHash *string
	Role         *Role
}

// IsEmpty reports whether the change set carries no field at all.
func (u AccountUpdate) IsEmpty() bool {
	return u.Email == nil && u.FullName == nil && u.PasswordHash == nil && u.Role == nil
}

// Apply copies the supplied fields onto the account.
func (u AccountUpdate) Apply(a *Account) {
	if u.Email != nil {
		a.Email = *u.Email
	}
	if u.FullName != nil {
		a.FullName = *u.FullName
	}
	if u.PasswordHash != nil {
		a.PasswordHash = *u.PasswordHash
	}
	if u.Role != nil {
		a.Role = *u.Role
	}
}

// AccountFilter narrows an account listing.
type AccountFilter struct {
	Role   *Role  // Exact role match when set.
	Search string // Case-insensitive substring over email or full name.
	Offset int
	Limit  int
}

// AccountWithProfile is the admin view of an account joined with its profile, if one exists.
type AccountWithProfile struct {
	*Account
	Profile *Profile `json:"profile"`
}
