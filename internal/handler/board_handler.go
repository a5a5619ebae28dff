package handler

import (
	"errors"
	"net/http"
	"time"

	"boardhub/internal/action"
	"boardhub/internal/auth"
	"boardhub/internal/logger"
	"boardhub/internal/model"
	"boardhub/internal/repository"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	sessions *auth.Sessions
	boards   *action.BoardService
}

func NewBoardHandler(sessions *auth.Sessions, boards *action.BoardService) *BoardHandler {
	return &BoardHandler{sessions: sessions, boards: boards}
}

type BoardResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	WorkspaceID string `json:"workspace_id"`
	CreatedAt   string `json:"created_at"`
}

func toBoardResponse(board *model.Board) BoardResponse {
	return BoardResponse{
		ID:          board.ID.String(),
		Title:       board.Title,
		WorkspaceID: board.WorkspaceID.String(),
		CreatedAt:   board.CreatedAt.Format(time.RFC3339),
	}
}

// Create handles the create-board form submission. The payload is untrusted
// form data; every failure mode comes back as the envelope with a
// human-readable message.
func (h *BoardHandler) Create(c *gin.Context) {
	input := action.CreateBoardInput{
		Title:       c.PostForm("title"),
		WorkspaceID: c.PostForm("workspace_id"),
	}

	session := h.sessions.GetSession(c)

	board, err := h.boards.CreateBoard(c.Request.Context(), session, input)
	if err != nil {
		var validationErr *action.ValidationError
		switch {
		case errors.As(err, &validationErr):
			respondFailure(c, http.StatusBadRequest, validationErr.Message)
		case errors.Is(err, auth.ErrUnauthenticated):
			respondFailure(c, http.StatusUnauthorized, "Not authenticated")
		case errors.Is(err, action.ErrNotWorkspaceMember):
			respondFailure(c, http.StatusForbidden, err.Error())
		case errors.Is(err, repository.ErrDuplicateBoard):
			respondFailure(c, http.StatusConflict, err.Error())
		default:
			logger.Get().Error().Err(err).Msg("create board failed")
			respondFailure(c, http.StatusInternalServerError, "Failed to create board")
		}
		return
	}

	respondSuccess(c, http.StatusCreated, toBoardResponse(board))
}
