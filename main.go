package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/msomdec/notekeep/internal/config"
	"github.com/msomdec/notekeep/internal/domain"
	"github.com/msomdec/notekeep/internal/handler"
	"github.com/msomdec/notekeep/internal/logger"
	"github.com/msomdec/notekeep/internal/repository/jsonfile"
	"github.com/msomdec/notekeep/internal/repository/sqlitestore"
	"github.com/msomdec/notekeep/internal/service"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log.Logger)

	if cfg.JWT.Secret == config.DefaultJWTSecret {
		log.Warn("JWT_SECRET is unset, using the insecure default; do not run like this in production")
	}

	var users domain.Collection
	var notes domain.Collection
	switch cfg.Storage.Backend {
	case "sqlite":
		db, err := sqlitestore.Open(cfg.Storage.SQLitePath)
		if err != nil {
			log.Fatal("open sqlite store", "error", err)
		}
		defer db.Close()
		users = db.Collection("users")
		notes = db.Collection("notes")
		log.Info("using sqlite store", "path", cfg.Storage.SQLitePath)
	default:
		if err := os.MkdirAll(cfg.Storage.DataDir, 0o755); err != nil {
			log.Fatal("create data dir", "error", err)
		}
		users = jsonfile.NewFileCollection(filepath.Join(cfg.Storage.DataDir, "users.json"))
		notes = jsonfile.NewFileCollection(filepath.Join(cfg.Storage.DataDir, "notes.json"))
		log.Info("using json file store", "dir", cfg.Storage.DataDir)
	}

	authService := service.NewAuthService(jsonfile.NewUserRepository(users), cfg.JWT.Secret, cfg.BcryptCost, cfg.JWT.TTL)
	noteService := service.NewNoteService(jsonfile.NewNoteRepository(notes))

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, authService, noteService)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.CORS(cfg.CORSOrigin)(mux),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server shutdown error", "error", err)
	}
	log.Info("server stopped")
}
