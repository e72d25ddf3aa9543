// Package server initializes and runs the dashboard server: it wires the
// database, object storage and HTTP layers together and handles graceful
// shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/luisf2211/kanban-project/internal/logging"
	"github.com/luisf2211/kanban-project/internal/server/blob"
	"github.com/luisf2211/kanban-project/internal/server/config"
	"github.com/luisf2211/kanban-project/internal/server/httpapi"
	"github.com/luisf2211/kanban-project/internal/server/repositories/repomanager"
	"github.com/luisf2211/kanban-project/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	router http.Handler
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewJSON(os.Stdout, slog.LevelInfo)

	repos, err := repomanager.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	store := blob.NewS3Store(blob.S3Config{
		Region:       cfg.S3Region,
		AccessKey:    cfg.S3AccessKey,
		SecretKey:    cfg.S3SecretKey,
		Bucket:       cfg.S3Bucket,
		BaseEndpoint: cfg.S3BaseEndpoint,
	})

	cs := services.NewClientService(repos.Clients())
	ps := services.NewProjectService(repos.Projects())
	fs := services.NewFileService(repos.Files(), store, services.RealClock{}, cfg.SignedURLTTL)

	h := httpapi.New(cs, ps, fs, logger)
	router := httpapi.NewRouter(h, logger, cfg.AllowOrigins)

	return &App{config: cfg, logger: logger, repos: repos, router: router}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting server", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	server := &http.Server{
		Addr:           app.config.EndpointAddr,
		Handler:        app.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.logger.Error(ctx, "server error", "err", err.Error())
			cancelFunc()
		}
	}()

	<-ctx.Done()

	app.logger.Info(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "graceful shutdown failed", "err", err.Error())
	}

	if err := app.repos.Close(); err != nil {
		app.logger.Error(shutdownCtx, "db close failed", "err", err.Error())
	}
}
