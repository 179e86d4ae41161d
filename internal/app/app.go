package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"request-metrics/internal/archivers"
	"request-metrics/internal/engines"
	"request-metrics/internal/events"
	"request-metrics/internal/evictors"
	internalhttp "request-metrics/internal/http"
	"request-metrics/internal/models"
	"request-metrics/internal/shared/clocks"
	"request-metrics/internal/shared/configs"
	"request-metrics/internal/shared/filestorages"
	"request-metrics/internal/shared/loggers"
	"request-metrics/internal/stores"
	"request-metrics/internal/streams"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
	engine    *engines.Engine

	archiveConsumer  streams.WindowArchiveConsumer
	archiveQueue     *streams.PartitionedQueue[events.WindowEvictedEvent]
	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger = appLogger.With().
		Str(loggers.FieldApp, "request-metrics").
		Logger()

	clock := clocks.NewSystemClock()

	var (
		listeners          []evictors.EvictionListener
		archiveConsumer    streams.WindowArchiveConsumer
		archiveService     archivers.ArchiveService
		windowEvictedQueue *streams.PartitionedQueue[events.WindowEvictedEvent]
	)
	if config.Archive.Enabled {
		span, err := models.NewBucketSpan(config.Aggregation.BucketDuration)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize bucket span: %w", err)
		}
		fileStorage, err := filestorages.NewFileStorage(config.Archive.RootDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}

		windowEvictedQueue = streams.NewPartitionedQueue[events.WindowEvictedEvent]()
		archiveService = archivers.NewArchiveService(stores.NewWindowArchiveStore(fileStorage, span), clock)
		consumerLogger := appLogger.With().Str(loggers.FieldComponent, "archive-consumer").Logger()
		archiveConsumer = streams.NewWindowArchiveConsumer(windowEvictedQueue, archiveService, consumerLogger)
		listeners = append(listeners, streams.NewWindowEvictedProducer(windowEvictedQueue, span, clock))
	}

	engineLogger := appLogger.With().Str(loggers.FieldComponent, "engine").Logger()
	engine, err := engines.New(engines.OptionsFromConfig(config), clock, engineLogger, listeners...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize engine: %w", err)
	}

	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(engine.Buffer, engine.Queries, httpLogger, internalhttp.RouterOptions{
		Archive:        archiveService,
		AllowedOrigins: config.Server.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	backgroundCtx, backgroundCancel := context.WithCancel(appLogger.WithContext(context.Background()))

	return &App{
		config:           config,
		appLogger:        appLogger,
		server:           server,
		engine:           engine,
		archiveConsumer:  archiveConsumer,
		archiveQueue:     windowEvictedQueue,
		backgroundCtx:    backgroundCtx,
		backgroundCancel: backgroundCancel,
	}, nil
}

// Start runs the background workers and then serves HTTP until Shutdown.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting request-metrics service on port %d (log_level=%s, bucket=%s, retention=%s, archive=%t)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Aggregation.BucketDuration,
			app.config.Aggregation.Retention,
			app.config.Archive.Enabled)

	app.engine.Evictor.Start(app.backgroundCtx)
	if app.archiveConsumer != nil {
		app.archiveConsumer.Start(app.backgroundCtx)
	}

	return app.server.ListenAndServe()
}

// Shutdown stops accepting requests, stops the janitor, archives what is already
// queued, closes the queue and then cancels the background context.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	app.engine.Evictor.Stop()
	if app.archiveConsumer != nil {
		app.archiveConsumer.Stop()
	}
	if app.archiveQueue != nil {
		app.archiveQueue.Close()
	}
	app.appLogger.Info().Msg("Background workers stopped")

	app.backgroundCancel()
	return nil
}
