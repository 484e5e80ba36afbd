package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todolist-be/internal/config"
	"todolist-be/internal/controllers"
	"todolist-be/internal/database"
	"todolist-be/internal/jwt"
	"todolist-be/internal/logger"
	"todolist-be/internal/middleware"
	"todolist-be/internal/password"
	"todolist-be/internal/repository"
	"todolist-be/internal/routes"
	"todolist-be/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	indexTimeout    = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(gin.ReleaseMode)

	// Connect to database
	db, err := database.Connect(context.Background(), cfg.MongoURL, cfg.MongoDatabase)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := db.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}()

	// Indexes only speed up lookups, so the server still starts without them
	indexCtx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	if err := database.EnsureIndexes(indexCtx, db.Database()); err != nil {
		log.Warn().Err(err).Msg("Continuing without indexes")
	}
	cancel()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.Database())
	todoRepo := repository.NewTodoRepository(db.Database())

	// Initialize JWT service and password hasher
	jwtService := jwt.NewJWTService(
		cfg.SecretKey,
		time.Duration(cfg.AccessTokenTTLMin)*time.Minute,
	)
	hasher, err := password.NewHasher(cfg.PasswordHasher, cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid password hasher configuration")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, hasher, jwtService)
	todoService := service.NewTodoService(todoRepo)

	router := routes.NewRouter(routes.Dependencies{
		Auth:        controllers.NewAuthController(authService),
		Todos:       controllers.NewTodoController(todoService),
		RequireAuth: middleware.AuthMiddleware(jwtService, userRepo),
		DB:          db,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server stopped unexpectedly")
		}
	}()

	// Wait for termination signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server")

	ctx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shut down")
	}
}
