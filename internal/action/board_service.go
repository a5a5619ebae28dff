// Package action implements the request-scoped operations behind the page
// and form handlers: list boards for a username, create a board, sign in.
// Operations return typed errors; handlers translate them into the
// success/failure envelope.
package action

import (
	"context"
	"errors"
	"fmt"

	"boardhub/internal/auth"
	"boardhub/internal/metrics"
	"boardhub/internal/model"
	"boardhub/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// UserFinder is the slice of the user repository the board service needs.
type UserFinder interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

// BoardStore is the slice of the board repository the board service needs.
type BoardStore interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Board, error)
	CreateInWorkspace(ctx context.Context, board *model.Board, userID uuid.UUID) error
}

// ListingCache caches board listings per username. The Redis implementation
// lives in internal/cache; tests substitute a fake.
type ListingCache interface {
	Get(ctx context.Context, username string) ([]model.Board, bool)
	Set(ctx context.Context, username string, boards []model.Board)
	Invalidate(ctx context.Context, username string)
}

type BoardService struct {
	users    UserFinder
	boards   BoardStore
	listings ListingCache
	validate *validator.Validate
}

func NewBoardService(users UserFinder, boards BoardStore, listings ListingCache) *BoardService {
	return &BoardService{
		users:    users,
		boards:   boards,
		listings: listings,
		validate: validator.New(),
	}
}

// ListBoards returns every board across all workspace memberships of the
// named user, newest first. An unknown username is a typed failure, not an
// internal error.
func (s *BoardService) ListBoards(ctx context.Context, username string) ([]model.Board, error) {
	if boards, ok := s.listings.Get(ctx, username); ok {
		metrics.BoardListCacheTotal.WithLabelValues("hit").Inc()
		return boards, nil
	}
	metrics.BoardListCacheTotal.WithLabelValues("miss").Inc()

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("find user %q: %w", username, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	boards, err := s.boards.ListForUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list boards for user %q: %w", username, err)
	}

	s.listings.Set(ctx, username, boards)
	return boards, nil
}

// CreateBoardInput is the untrusted form payload for board creation.
type CreateBoardInput struct {
	Title       string `form:"title" validate:"required,max=100"`
	WorkspaceID string `form:"workspace_id" validate:"required,uuid"`
}

// CreateBoard validates the input, requires an authenticated session,
// enforces workspace membership and inserts the board. On success the
// creator's cached listing is invalidated so their next read sees the new
// board.
func (s *BoardService) CreateBoard(ctx context.Context, session *auth.Session, input CreateBoardInput) (*model.Board, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, &ValidationError{Message: validationMessage(err)}
	}

	if session == nil {
		return nil, auth.ErrUnauthenticated
	}

	workspaceID, err := uuid.Parse(input.WorkspaceID)
	if err != nil {
		return nil, &ValidationError{Message: "Workspace ID is invalid"}
	}

	board := &model.Board{
		ID:          uuid.New(),
		Title:       input.Title,
		WorkspaceID: workspaceID,
	}

	if err := s.boards.CreateInWorkspace(ctx, board, session.UserID); err != nil {
		if errors.Is(err, repository.ErrNotMember) {
			return nil, ErrNotWorkspaceMember
		}
		return nil, err
	}

	metrics.BoardsCreatedTotal.Inc()
	if session.Username != "" {
		s.listings.Invalidate(ctx, session.Username)
	}
	return board, nil
}

// validationMessage maps the first failed rule to the message shown to the
// user.
func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Invalid input"
	}

	fe := fieldErrs[0]
	switch fe.Field() {
	case "Title":
		if fe.Tag() == "max" {
			return "Title is too long"
		}
		return "Title is required"
	case "WorkspaceID":
		if fe.Tag() == "uuid" {
			return "Workspace ID is invalid"
		}
		return "Workspace ID is required"
	}
	return "Invalid input"
}
