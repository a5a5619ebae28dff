// Command seed provisions the test user, their personal workspace and the
// owner membership. It is idempotent: rerunning leaves existing rows alone.
package main

import (
	"context"
	"log"

	"boardhub/internal/config"
	"boardhub/internal/database"
	"boardhub/internal/logger"
	"boardhub/internal/model"
	"boardhub/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	testEmail     = "test@example.com"
	testName      = "Test User"
	testUsername  = "testuser"
	testPassword  = "password123"
	workspaceName = "Personal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.IsDevelopment()})

	if err := database.Init(cfg.DatabaseURL, cfg.IsDevelopment()); err != nil {
		logger.Get().Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.Migrate(); err != nil {
		logger.Get().Fatal().Err(err).Msg("migrations failed")
	}

	ctx := context.Background()
	db := database.Get()
	users := repository.NewUserRepository(db)
	workspaces := repository.NewWorkspaceRepository(db)

	user, err := users.UpsertByEmail(ctx, testEmail, testName)
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("upsert test user failed")
	}

	if user.Username == nil {
		if err := users.SetUsername(ctx, user.ID, testUsername); err != nil {
			logger.Get().Fatal().Err(err).Msg("set test username failed")
		}
	}

	if user.HashedPassword == "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.DefaultCost)
		if err != nil {
			logger.Get().Fatal().Err(err).Msg("hash test password failed")
		}
		if err := db.WithContext(ctx).Model(user).Update("hashed_password", string(hash)).Error; err != nil {
			logger.Get().Fatal().Err(err).Msg("store test password failed")
		}
	}

	// Workspace names are unique per owner, so look up before creating.
	existing, err := workspaces.FindByOwnerAndName(ctx, user.ID, workspaceName)
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("find workspace failed")
	}
	if existing == nil {
		workspace := &model.Workspace{
			ID:      uuid.New(),
			Name:    workspaceName,
			OwnerID: user.ID,
		}
		if err := workspaces.CreateWithOwner(ctx, workspace); err != nil {
			logger.Get().Fatal().Err(err).Msg("create workspace failed")
		}
	}

	logger.Get().Info().
		Str("email", testEmail).
		Str("username", testUsername).
		Msg("seed complete")
}
