package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"vivid-analytics/internal/analytics"
	"vivid-analytics/internal/datasets"
	internalhttp "vivid-analytics/internal/http"
	"vivid-analytics/internal/models"
	"vivid-analytics/internal/shared/configs"
	"vivid-analytics/internal/shared/filestorages"
	"vivid-analytics/internal/shared/loggers"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
}

// New creates and initializes a new App instance. Datasets are loaded once at
// startup: a load failure is a startup failure, never a degraded server.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "vivid-analytics").
		Logger()

	// Initialize blob store
	fileStorage, err := filestorages.NewFileStorage(config.Datasets.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Load datasets
	datasetStore := datasets.NewCSVDatasetStore(fileStorage, config.Datasets.UsersKey, config.Datasets.OrdersKey)
	loadLogger := appLogger.With().Str(loggers.FieldComponent, "datasets").Logger()
	dataset, err := datasetStore.Load(loadLogger.WithContext(context.Background()))
	if err != nil {
		return nil, fmt.Errorf("failed to load datasets: %w", err)
	}

	// Initialize analytics service
	frequency, err := models.NewFrequencyFromString(config.Analytics.Frequency)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize frequency: %w", err)
	}
	analyticsService := analytics.NewAnalyticsService(dataset, analytics.Defaults{
		ConversionWindowDays: config.Analytics.ConversionWindowDays,
		TopN:                 config.Analytics.TopN,
		Frequency:            frequency,
	})

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(analyticsService, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting vivid-analytics service on port %d (log_level=%s, datasets_root_dir=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Datasets.RootDir)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	return nil
}
