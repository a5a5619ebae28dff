package model

import (
	"time"

	"github.com/google/uuid"
)

// WorkspaceMember links a user to a workspace with a role. A membership row
// is required to create boards in the workspace.
type WorkspaceMember struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	WorkspaceID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_members_workspace_user"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_members_workspace_user;index"`
	Role        string    `gorm:"not null;check:role IN ('ADMIN', 'MEMBER')"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`

	Workspace Workspace `gorm:"foreignKey:WorkspaceID"`
	User      User      `gorm:"foreignKey:UserID"`
}

// Workspace roles.
const (
	RoleAdmin  = "ADMIN"  // workspace owner, added automatically on creation
	RoleMember = "MEMBER" // invited member
)
