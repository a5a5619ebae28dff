package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email string    `gorm:"uniqueIndex;not null"`
	Name  string
	// Username is assigned after first sign-in; a user without one is
	// redirected to the account-setup-required page.
	Username *string `gorm:"uniqueIndex"`
	// HashedPassword is only set for the seeded test user; OAuth users
	// carry no password.
	HashedPassword string
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}
