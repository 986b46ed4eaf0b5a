package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountModel mirrors the 'accounts' table. IDs are UUIDv7 assigned by the application.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName     string    `gorm:"type:varchar(255);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(16);not null;default:user;index"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// BeforeCreate assigns a time-ordered ID when none was set.
func (m *AccountModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// ProfileModel mirrors the 'profiles' table. AccountID references accounts.id (UUID).
type ProfileModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Email          string    `gorm:"type:varchar(255)"`
	FullName       string    `gorm:"type:varchar(255)"`
	PhoneNumber    *string   `gorm:"type:varchar(32)"`
	UserLocation   *string   `gorm:"type:varchar(255)"`
	ImageReference *string   `gorm:"type:varchar(512)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// BeforeCreate assigns a time-ordered ID when none was set.
func (m *ProfileModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = generated

	return nil
}

// All lists every model owned by this service, in creation order.
func All() []any {
	return []any{&AccountModel{}, &ProfileModel{}}
}
