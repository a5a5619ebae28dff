package repository

import (
	"context"
	"errors"

	"boardhub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

func (r *MembershipRepository) IsMember(ctx context.Context, workspaceID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.WorkspaceMember{}).
		Where("workspace_id = ? AND user_id = ?", workspaceID, userID).
		Count(&count).Error
	return count > 0, err
}

// GetRole returns the user's role in a workspace, or an empty string when
// there is no membership.
func (r *MembershipRepository) GetRole(ctx context.Context, workspaceID, userID uuid.UUID) (string, error) {
	var member model.WorkspaceMember
	err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND user_id = ?", workspaceID, userID).
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return member.Role, nil
}

func (r *MembershipRepository) Add(ctx context.Context, member *model.WorkspaceMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}
