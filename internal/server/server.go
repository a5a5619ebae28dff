package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"boardhub/internal/action"
	"boardhub/internal/auth"
	"boardhub/internal/cache"
	"boardhub/internal/config"
	"boardhub/internal/database"
	"boardhub/internal/handler"
	"boardhub/internal/logger"
	"boardhub/internal/middleware"
	"boardhub/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	Engine *gin.Engine
	Config *config.Config
}

// Init connects the persistence gateway and Redis, applies migrations and
// wires repositories, services, handlers and routes. Any error here is
// fatal for the process.
func Init(cfg *config.Config) (*Server, error) {
	if err := database.Init(cfg.DatabaseURL, cfg.IsDevelopment()); err != nil {
		return nil, err
	}
	logger.Get().Info().Msg("connected to database")

	if err := database.Migrate(); err != nil {
		return nil, err
	}

	redisClient, err := cache.Connect(context.Background(), cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	db := database.Get()
	userRepo := repository.NewUserRepository(db)
	workspaceRepo := repository.NewWorkspaceRepository(db)
	boardRepo := repository.NewBoardRepository(db)

	boardCache := cache.NewBoardCache(redisClient, cfg.Redis.CacheTTL)
	boardService := action.NewBoardService(userRepo, boardRepo, boardCache)
	authService := action.NewAuthService(userRepo)

	sessions := auth.NewSessions(
		cfg.AuthSecret,
		time.Duration(cfg.SessionTTLHours)*time.Hour,
		cfg.IsProduction(),
	)
	providers := auth.NewProviders(
		cfg.AuthURL,
		cfg.GitHubClientID, cfg.GitHubClientSecret,
		cfg.GoogleClientID, cfg.GoogleClientSecret,
	)
	providerNames := make([]string, 0, len(providers))
	for name := range providers {
		providerNames = append(providerNames, name)
	}
	sort.Strings(providerNames)

	pageHandler := handler.NewPageHandler(sessions, boardService, workspaceRepo, providerNames, cfg.EnableTestLogin)
	boardHandler := handler.NewBoardHandler(sessions, boardService)
	authHandler := handler.NewAuthHandler(sessions, authService, providers, cfg.EnableTestLogin, cfg.IsProduction())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())
	r.Use(middleware.AccessGate(sessions))
	r.LoadHTMLGlob("templates/*.html")

	r.GET("/", pageHandler.Home)
	r.GET("/login", pageHandler.Login)
	r.GET("/u/:username/boards", pageHandler.Boards)
	r.GET("/account-setup-required", pageHandler.AccountSetupRequired)

	r.POST("/boards", boardHandler.Create)

	r.GET("/auth/:provider", authHandler.OAuthRedirect)
	r.GET("/auth/:provider/callback", authHandler.OAuthCallback)
	r.POST("/logout", authHandler.Logout)
	if cfg.EnableTestLogin {
		r.POST("/login/test", authHandler.TestLogin)
	}

	r.GET("/healthz", handler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return &Server{Engine: r, Config: cfg}, nil
}

// Run serves until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		logger.Get().Info().Str("port", s.Config.ServerPort).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Get().Fatal().Err(err).Msg("failed to listen")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Get().Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Get().Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Get().Info().Msg("server exited")
}
