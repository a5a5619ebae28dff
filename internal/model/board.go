package model

import (
	"time"

	"github.com/google/uuid"
)

// Board is a titled container scoped to a workspace. The title is unique
// within its workspace.
type Board struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Title       string    `gorm:"size:100;not null;uniqueIndex:idx_boards_workspace_title"`
	WorkspaceID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_boards_workspace_title;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`

	Workspace Workspace `gorm:"foreignKey:WorkspaceID"`
}
