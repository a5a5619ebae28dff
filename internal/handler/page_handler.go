package handler

import (
	"context"
	"errors"
	"net/http"

	"boardhub/internal/action"
	"boardhub/internal/auth"
	"boardhub/internal/logger"
	"boardhub/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WorkspaceLister is the slice of the workspace repository the boards page
// needs for the create-board form's target selector.
type WorkspaceLister interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Workspace, error)
}

// PageHandler renders the server-side pages. It holds no business logic; it
// resolves the session, calls the action layer and branches on the results.
type PageHandler struct {
	sessions        *auth.Sessions
	boards          *action.BoardService
	workspaces      WorkspaceLister
	providers       []string
	enableTestLogin bool
}

func NewPageHandler(sessions *auth.Sessions, boards *action.BoardService, workspaces WorkspaceLister, providers []string, enableTestLogin bool) *PageHandler {
	return &PageHandler{
		sessions:        sessions,
		boards:          boards,
		workspaces:      workspaces,
		providers:       providers,
		enableTestLogin: enableTestLogin,
	}
}

// Home redirects per session state: no session → login, session without a
// username → account setup, otherwise the user's own board listing.
func (h *PageHandler) Home(c *gin.Context) {
	session := h.sessions.GetSession(c)
	if session == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	if session.Username == "" {
		c.Redirect(http.StatusFound, "/account-setup-required")
		return
	}
	c.Redirect(http.StatusFound, "/u/"+session.Username+"/boards")
}

// Login renders the login page. The access gate has already bounced
// authenticated sessions away from here.
func (h *PageHandler) Login(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Providers":       h.providers,
		"EnableTestLogin": h.enableTestLogin,
	})
}

// Boards renders the board listing for the username in the path. A session
// that has not completed account setup is sent to the terminal setup page.
func (h *PageHandler) Boards(c *gin.Context) {
	session := h.sessions.GetSession(c)
	if session != nil && session.Username == "" {
		c.Redirect(http.StatusFound, "/account-setup-required")
		return
	}

	username := c.Param("username")

	boards, err := h.boards.ListBoards(c.Request.Context(), username)
	if err != nil {
		message := "Failed to get boards"
		if errors.Is(err, action.ErrUserNotFound) {
			message = "User not found"
		} else {
			logger.Get().Error().Err(err).Str("username", username).Msg("list boards failed")
		}
		c.HTML(http.StatusOK, "boards.html", gin.H{"Error": message})
		return
	}

	// The create-board form only appears on the viewer's own page and
	// needs their workspaces for the target selector.
	var workspaces []model.Workspace
	ownPage := session != nil && session.Username == username
	if ownPage {
		workspaces, err = h.workspaces.ListForUser(c.Request.Context(), session.UserID)
		if err != nil {
			logger.Get().Error().Err(err).Str("username", username).Msg("list workspaces failed")
		}
	}

	c.HTML(http.StatusOK, "boards.html", gin.H{
		"Username":   username,
		"Boards":     boards,
		"OwnPage":    ownPage,
		"Workspaces": workspaces,
	})
}

// AccountSetupRequired is the terminal page for sessions missing a username.
func (h *PageHandler) AccountSetupRequired(c *gin.Context) {
	c.HTML(http.StatusOK, "account_setup_required.html", gin.H{
		"EnableTestLogin": h.enableTestLogin,
	})
}
