package model

import (
	"time"

	"github.com/google/uuid"
)

// Workspace is a named collection of boards owned by one user. The name is
// unique per owner, not globally.
type Workspace struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"not null;uniqueIndex:idx_workspaces_owner_name"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_workspaces_owner_name"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Owner User `gorm:"foreignKey:OwnerID"`
}
