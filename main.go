package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/httplog/v2"
	"golang.org/x/sync/errgroup"

	"shorturl-be/internal/config"
	"shorturl-be/internal/database"
	"shorturl-be/internal/jwt"
	"shorturl-be/internal/repository"
	"shorturl-be/internal/server"
	"shorturl-be/internal/service"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		log.Fatalf("shorturl-be: %v", err)
	}
}

func run(ctx context.Context) error {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(cfg)
	gin.SetMode(gin.ReleaseMode)

	// Connect to database
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info("connected to database")

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		return err
	}
	logger.Info("database migrations completed")

	// Initialize repositories
	urlRepo := repository.NewURLRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWTSecret)

	// Initialize services
	urlService := service.NewURLService(urlRepo, cfg.BaseURL, logger.Logger)
	authService := service.NewAuthService(userRepo, jwtService, cfg.BcryptCost)

	handler, err := server.New(cfg, logger, db, jwtService, authService, urlService).Handler()
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	srv := &http.Server{
		Addr:           cfg.Addr(),
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting", slog.String("addr", srv.Addr), slog.String("base_url", cfg.BaseURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error occurred: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func newLogger(cfg *config.Config) *httplog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	return httplog.NewLogger("shorturl-be", httplog.Options{
		LogLevel: level,
		JSON:     cfg.LogJSON,
		Concise:  !cfg.LogJSON,
	})
}
