package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"boardhub/internal/action"
	"boardhub/internal/auth"
	"boardhub/internal/handler"
	"boardhub/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockWorkspaceLister struct {
	mock.Mock
}

func (m *MockWorkspaceLister) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Workspace, error) {
	args := m.Called(ctx, userID)
	workspaces := args.Get(0)
	if workspaces == nil {
		return nil, args.Error(1)
	}
	return workspaces.([]model.Workspace), args.Error(1)
}

type pageFixture struct {
	router     *gin.Engine
	sessions   *auth.Sessions
	users      *MockUserFinder
	boards     *MockBoardStore
	workspaces *MockWorkspaceLister
}

func setupPages(t *testing.T) *pageFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := new(MockUserFinder)
	boards := new(MockBoardStore)
	workspaces := new(MockWorkspaceLister)
	sessions := auth.NewSessions(testSecret, time.Hour, false)
	service := action.NewBoardService(users, boards, fakeCache{})
	pages := handler.NewPageHandler(sessions, service, workspaces, []string{"github"}, true)

	r := gin.New()
	r.LoadHTMLGlob("../../templates/*.html")
	r.GET("/", pages.Home)
	r.GET("/login", pages.Login)
	r.GET("/u/:username/boards", pages.Boards)
	r.GET("/account-setup-required", pages.AccountSetupRequired)

	return &pageFixture{router: r, sessions: sessions, users: users, boards: boards, workspaces: workspaces}
}

func getPage(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestHome_NoSession(t *testing.T) {
	f := setupPages(t)

	resp := getPage(f.router, "/", "")

	assert.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, "/login", resp.Header().Get("Location"))
}

func TestHome_SessionWithoutUsername(t *testing.T) {
	f := setupPages(t)
	token := sessionTokenFor(t, f.sessions, "")

	resp := getPage(f.router, "/", token)

	assert.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, "/account-setup-required", resp.Header().Get("Location"))
}

func TestHome_FullSession(t *testing.T) {
	f := setupPages(t)
	token := sessionTokenFor(t, f.sessions, "testuser")

	resp := getPage(f.router, "/", token)

	assert.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, "/u/testuser/boards", resp.Header().Get("Location"))
}

func TestBoardsPage_UserNotFound(t *testing.T) {
	f := setupPages(t)
	f.users.On("FindByUsername", mock.Anything, "ghost").Return(nil, nil)

	resp := getPage(f.router, "/u/ghost/boards", "")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "User not found")
}

func TestBoardsPage_SessionWithoutUsername(t *testing.T) {
	f := setupPages(t)
	token := sessionTokenFor(t, f.sessions, "")

	resp := getPage(f.router, "/u/testuser/boards", token)

	assert.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, "/account-setup-required", resp.Header().Get("Location"))
}

func TestBoardsPage_OwnPageShowsBoardsAndForm(t *testing.T) {
	f := setupPages(t)

	user := &model.User{ID: uuid.New(), Email: "test@example.com"}
	f.users.On("FindByUsername", mock.Anything, "testuser").Return(user, nil)
	f.boards.On("ListForUser", mock.Anything, user.ID).
		Return([]model.Board{{ID: uuid.New(), Title: "Roadmap"}}, nil)

	session := &model.User{ID: user.ID, Email: user.Email}
	username := "testuser"
	session.Username = &username
	token, err := f.sessions.GenerateToken(session)
	assert.NoError(t, err)

	f.workspaces.On("ListForUser", mock.Anything, user.ID).
		Return([]model.Workspace{{ID: uuid.New(), Name: "Personal"}}, nil)

	resp := getPage(f.router, "/u/testuser/boards", token)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Roadmap")
	assert.Contains(t, resp.Body.String(), "Create board")
	assert.Contains(t, resp.Body.String(), "Personal")
}

func TestBoardsPage_OtherUsersPageHidesForm(t *testing.T) {
	f := setupPages(t)

	other := &model.User{ID: uuid.New(), Email: "other@example.com"}
	f.users.On("FindByUsername", mock.Anything, "other").Return(other, nil)
	f.boards.On("ListForUser", mock.Anything, other.ID).Return([]model.Board{}, nil)

	token := sessionTokenFor(t, f.sessions, "testuser")

	resp := getPage(f.router, "/u/other/boards", token)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NotContains(t, resp.Body.String(), "Create board")
	f.workspaces.AssertNotCalled(t, "ListForUser", mock.Anything, mock.Anything)
}

func TestLoginPage_RendersProvidersAndTestForm(t *testing.T) {
	f := setupPages(t)

	resp := getPage(f.router, "/login", "")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "/auth/github")
	assert.Contains(t, resp.Body.String(), "Test login")
}
