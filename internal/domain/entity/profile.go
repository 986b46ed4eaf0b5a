package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the descriptive details of an account. Email and FullName are
// denormalized copies of the account fields at the time of the last write.
type Profile struct {
	ID             uuid.UUID `json:"id"`
	AccountID      uuid.UUID `json:"accountId"`
	Email          string    `json:"email"`
	FullName       string    `json:"fullName"`
	PhoneNumber    *string   `json:"phoneNumber"`
	UserLocation   *string   `json:"userLocation"`
	ImageReference *string   `json:"profileImage"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ProfileUpdate is a partial change set for a Profile. Nil fields are left untouched.
type ProfileUpdate struct {
	Email          *string
	FullName       *string
	PhoneNumber    *string
	UserLocation   *string
	ImageReference *string
}

// IsEmpty reports whether the change set carries no field at all.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Email == nil && u.FullName == nil && u.PhoneNumber == nil &&
		u.UserLocation == nil && u.ImageReference == nil
}

// Apply copies the supplied fields onto the profile.
func (u ProfileUpdate) Apply(p *Profile) {
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.FullName != nil {
		p.FullName = *u.FullName
	}
	if u.PhoneNumber != nil {
		p.PhoneNumber = u.PhoneNumber
	}
	if u.UserLocation != nil {
		p.UserLocation = u.UserLocation
	}
	if u.ImageReference != nil {
		p.ImageReference = u.ImageReference
	}
}
