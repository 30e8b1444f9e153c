package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/techlens/provider-lab/internal/config"
	"github.com/techlens/provider-lab/internal/database"
	"github.com/techlens/provider-lab/internal/facade"
	"github.com/techlens/provider-lab/internal/middleware"
	"github.com/techlens/provider-lab/internal/models"
	"github.com/techlens/provider-lab/internal/providers"
	"github.com/techlens/provider-lab/internal/templates"
	"github.com/techlens/provider-lab/internal/tester"
	"github.com/techlens/provider-lab/pkg/logging"
	"github.com/techlens/provider-lab/pkg/routes"
)

type Application struct {
	config *config.Config
	db     *sql.DB
	logger *slog.Logger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New(&cfg.Logging)

	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db, logger); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	app := &Application{
		config: cfg,
		db:     db,
		logger: logger,
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      app.routes(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
		IdleTimeout:  cfg.Server.IdleTimeoutDuration(),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		logger.Info("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeoutDuration())
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	logger.Info("starting server", "addr", srv.Addr)

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	err = <-shutdownError
	if err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func (app *Application) routes() http.Handler {
	catalog := templates.NewCatalog()

	providerSys := providers.New(app.db, catalog, app.logger, app.config.Pagination)
	modelSys := models.New(app.db, app.logger)
	testerSys := tester.New(app.config.Tester.TimeoutDuration(), app.logger)

	facadeSys := facade.New(catalog, providerSys, modelSys, testerSys, app.logger)
	facadeHandler := facade.NewHandler(facadeSys, app.config.Pagination, app.logger)
	templateHandler := templates.NewHandler(catalog, app.logger)

	router := routes.New(app.logger)
	router.RegisterGroup(routes.Group{
		Prefix:      "/api",
		Description: "Provider lab API",
		Children: []routes.Group{
			templateHandler.Routes(),
			facadeHandler.Routes(),
			facadeHandler.ModelRoutes(),
		},
	})
	router.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
		},
	})

	handler := router.Build()
	handler = middleware.MaxBody(app.config.Server.MaxBodyBytes())(handler)
	handler = middleware.Logger(app.logger)(handler)
	handler = middleware.CORS(&app.config.CORS)(handler)
	handler = middleware.TrimSlash()(handler)

	return handler
}
