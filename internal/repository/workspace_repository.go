package repository

import (
	"context"
	"errors"

	"boardhub/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type WorkspaceRepository struct {
	db *gorm.DB
}

func NewWorkspaceRepository(db *gorm.DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

// CreateWithOwner inserts the workspace and the owner's ADMIN membership in
// one transaction, so a workspace can never exist without its owner being a
// member.
func (r *WorkspaceRepository) CreateWithOwner(ctx context.Context, workspace *model.Workspace) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(workspace).Error; err != nil {
			return err
		}
		member := model.WorkspaceMember{
			ID:          uuid.New(),
			WorkspaceID: workspace.ID,
			UserID:      workspace.OwnerID,
			Role:        model.RoleAdmin,
		}
		return tx.Create(&member).Error
	})
	if isUniqueViolation(err) {
		return ErrDuplicateWorkspace
	}
	return err
}

func (r *WorkspaceRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Workspace, error) {
	var workspace model.Workspace
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&workspace).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &workspace, nil
}

func (r *WorkspaceRepository) FindByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (*model.Workspace, error) {
	var workspace model.Workspace
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND name = ?", ownerID, name).
		First(&workspace).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &workspace, nil
}

// ListForUser returns the workspaces the user is a member of, oldest first.
func (r *WorkspaceRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Workspace, error) {
	var workspaces []model.Workspace
	err := r.db.WithContext(ctx).
		Joins("JOIN workspace_members ON workspace_members.workspace_id = workspaces.id").
		Where("workspace_members.user_id = ?", userID).
		Order("workspaces.created_at ASC").
		Find(&workspaces).Error
	return workspaces, err
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// rejection (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
