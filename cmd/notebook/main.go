package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/notebook/db"
	"github.com/monocle-dev/notebook/internal/auth"
	"github.com/monocle-dev/notebook/internal/config"
	"github.com/monocle-dev/notebook/internal/handlers"
	"github.com/monocle-dev/notebook/internal/logger"
	"github.com/monocle-dev/notebook/internal/metrics"
	"github.com/monocle-dev/notebook/internal/repository"
	"github.com/monocle-dev/notebook/internal/router"
	"github.com/monocle-dev/notebook/internal/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "notebook: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()

	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.LogLevel, cfg.IsProduction(), os.Stdout)

	if cfg.UsingDevSecret() {
		log.Warn("SESSION_SECRET not set, signing sessions with the development key")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	conn, err := db.Connect(cfg.DBDriver, cfg.DatabaseURL)

	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	defer func() {
		if err := db.Close(conn); err != nil {
			log.WithError(err).Warn("Failed to close database")
		}
	}()

	if err := db.MigrateDatabase(conn); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	log.WithField("driver", cfg.DBDriver).Info("Database ready")

	sessions, err := auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL)

	if err != nil {
		return err
	}

	cookies := auth.NewCookies(sessions, cfg.CookieDomain, cfg.CookieSecure)
	accounts := services.NewAccountService(repository.NewGormUserRepository(conn), auth.NewPasswordHasher(cfg.BcryptCost))
	notes := services.NewNoteService(repository.NewGormNoteRepository(conn))
	m := metrics.New()

	sqlDB, err := conn.DB()

	if err != nil {
		return err
	}

	h := handlers.NewHandler(handlers.Deps{
		Accounts: accounts,
		Notes:    notes,
		Cookies:  cookies,
		Metrics:  m,
		Log:      log,
		Ping:     sqlDB.PingContext,
	})

	r, err := router.NewRouter(router.Options{
		Handler:        h,
		Accounts:       accounts,
		Cookies:        cookies,
		Metrics:        m,
		Log:            log,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		log.Infof("HTTP server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("Server stopped")

	return nil
}
