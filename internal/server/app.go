// Package server initializes and runs the blog API server.
// It validates configuration, opens the storage backend, applies migrations,
// wires the services into the HTTP transport and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/blogapi/internal/logging"
	"github.com/dmitrijs2005/blogapi/internal/server/config"
	"github.com/dmitrijs2005/blogapi/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/blogapi/internal/server/rest"
	"github.com/dmitrijs2005/blogapi/internal/server/services"
)

// openStore is a seam for tests.
var openStore = repomanager.Open

type App struct {
	config      *config.Config
	logger      logging.Logger
	repomanager repomanager.RepositoryManager
	server      *rest.Server
}

// NewApp validates c, connects to the store and applies migrations. Nothing
// is served until Run is called.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)
	return newApp(ctx, c, logger)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	rm, err := openStore(ctx, c.DatabaseDSN, c.DatabaseName)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx); err != nil {
		_ = rm.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	us := services.NewUserService(rm, c)
	bs := services.NewBlogService(rm)
	srv := rest.NewServer(c.EndpointAddrHTTP, logger, us, bs, c.AllowedOrigins, c.ShutdownTimeout)

	return &App{config: c, logger: logger, repomanager: rm, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves HTTP until ctx is cancelled or a termination signal arrives,
// then closes the store.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	runErr := app.server.Run(ctx)
	if runErr != nil {
		app.logger.Error(ctx, "http server error", "error", runErr)
	}

	if err := app.repomanager.Close(); err != nil {
		app.logger.Error(ctx, "closing store", "error", err)
	}

	app.logger.Info(ctx, "App stopped")
	return runErr
}
