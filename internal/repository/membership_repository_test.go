package repository_test

import (
	"context"
	"testing"
	"time"

	"boardhub/internal/model"
	"boardhub/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMembershipRepository_IsMember(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	memberRepo := repository.NewMembershipRepository(gormDB)

	workspaceID := uuid.New()
	userID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "workspace_members" WHERE workspace_id = .* AND user_id = .*`).
		WithArgs(workspaceID.String(), userID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	ok, err := memberRepo.IsMember(context.Background(), workspaceID, userID)

	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMembershipRepository_IsMember_NoRow(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	memberRepo := repository.NewMembershipRepository(gormDB)

	workspaceID := uuid.New()
	userID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "workspace_members"`).
		WithArgs(workspaceID.String(), userID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	ok, err := memberRepo.IsMember(context.Background(), workspaceID, userID)

	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMembershipRepository_GetRole(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	memberRepo := repository.NewMembershipRepository(gormDB)

	workspaceID := uuid.New()
	userID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "workspace_id", "user_id", "role", "created_at"}).
		AddRow(uuid.NewString(), workspaceID.String(), userID.String(), model.RoleAdmin, time.Now())

	mock.ExpectQuery(`SELECT .* FROM "workspace_members" WHERE workspace_id = .* AND user_id = .* LIMIT .*`).
		WithArgs(workspaceID.String(), userID.String()).
		WillReturnRows(rows)

	role, err := memberRepo.GetRole(context.Background(), workspaceID, userID)

	assert.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkspaceRepository_CreateWithOwner(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	workspaceRepo := repository.NewWorkspaceRepository(gormDB)

	workspace := &model.Workspace{
		ID:      uuid.New(),
		Name:    "Personal",
		OwnerID: uuid.New(),
	}

	// Workspace and owner membership land in the same transaction.
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "workspaces"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(workspace.ID.String()))
	mock.ExpectQuery(`INSERT INTO "workspace_members"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	err := workspaceRepo.CreateWithOwner(context.Background(), workspace)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
