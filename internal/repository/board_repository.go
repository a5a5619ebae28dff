package repository

import (
	"context"

	"boardhub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BoardRepository struct {
	db *gorm.DB
}

type BoardRepositoryInterface interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Board, error)
	CreateInWorkspace(ctx context.Context, board *model.Board, userID uuid.UUID) error
}

var _ BoardRepositoryInterface = (*BoardRepository)(nil)

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

// ListForUser gathers the boards of every workspace the user is a member of,
// newest first. Ties on created_at are broken by id so the order is stable.
func (r *BoardRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Board, error) {
	var boards []model.Board
	err := r.db.WithContext(ctx).
		Joins("JOIN workspace_members ON workspace_members.workspace_id = boards.workspace_id").
		Where("workspace_members.user_id = ?", userID).
		Order("boards.created_at DESC, boards.id ASC").
		Find(&boards).Error
	return boards, err
}

// CreateInWorkspace inserts the board after confirming the user holds a
// membership row for the target workspace. Both steps run in a single
// transaction; a membership revoked concurrently with the insert rolls the
// insert back rather than leaving an unauthorized board behind.
func (r *BoardRepository) CreateInWorkspace(ctx context.Context, board *model.Board, userID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.WorkspaceMember{}).
			Where("workspace_id = ? AND user_id = ?", board.WorkspaceID, userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotMember
		}
		return tx.Create(board).Error
	})
	if isUniqueViolation(err) {
		return ErrDuplicateBoard
	}
	return err
}
