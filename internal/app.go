package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	cache_adapter "estate-service/internal/adapters/cache"
	logger_adapter "estate-service/internal/adapters/logger"
	postgres_adapter "estate-service/internal/adapters/postgres"
	rabbitmq_adapter "estate-service/internal/adapters/rabbitmq"
	"estate-service/internal/adapters/rest"
	"estate-service/internal/configs"
	"estate-service/internal/contracts"
	"estate-service/internal/core/port"
	"estate-service/internal/core/usecase"

	fluentlogger "estate-service/pkg/fluent_logger"
	"estate-service/pkg/postgres"
	"estate-service/pkg/rabbitmq/rabbitmq_common"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	invalidationListener  port.EventListenerPort
	invalidationPublisher *rabbitmq_adapter.InvalidationPublisherAdapter
	connManager           *rabbitmq_common.ConnectionManager
}

// NewApp is the composition root: every dependency is created and wired
// here.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// Loggers first, everything downstream reports through them.
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// Low level infrastructure.
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	if err := postgres_adapter.ApplySchema(context.Background(), dbPool); err != nil {
		appLogger.Error("Failed to apply database schema", err, nil)
		dbPool.Close()
		return nil, err
	}

	storageAdapter, err := postgres_adapter.NewPropertyStorageAdapter(dbPool)
	if err != nil {
		appLogger.Error("Failed to create postgres storage adapter", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create postgres storage adapter: %w", err)
	}
	appLogger.Info("Postgres storage adapter initialized.", nil)

	connManagerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"})
	connManager, err := rabbitmq_common.NewManager(appConfig.RabbitMQ.URL, rabbitmq_adapter.NewLoggerBridge(connManagerLogger))
	if err != nil {
		appLogger.Error("Failed to create connection manager", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create connection manager: %w", err)
	}
	appLogger.Info("RabbitMQ Connection Manager initialized.", nil)

	producerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})
	invalidationPublisher, err := rabbitmq_adapter.NewInvalidationPublisherAdapter(
		connManager, appConfig.RabbitMQ.URL, rabbitmq_adapter.NewLoggerBridge(producerLogger))
	if err != nil {
		appLogger.Error("Failed to create invalidation publisher", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create invalidation publisher: %w", err)
	}
	appLogger.Info("RabbitMQ Invalidation Publisher initialized.", nil)

	listingCache := cache_adapter.NewListingCache()
	validator := contracts.NewPropertyValidator()

	// Use cases.
	createPropertyUseCase := usecase.NewCreatePropertyUseCase(storageAdapter, validator, invalidationPublisher)
	updatePropertyUseCase := usecase.NewUpdatePropertyUseCase(storageAdapter, validator, invalidationPublisher)
	updateImagesUseCase := usecase.NewUpdatePropertyImagesUseCase(storageAdapter, invalidationPublisher)
	deletePropertyUseCase := usecase.NewDeletePropertyUseCase(storageAdapter, invalidationPublisher)
	setStatusUseCase := usecase.NewSetPropertyStatusUseCase(storageAdapter, invalidationPublisher)
	getByIDUseCase := usecase.NewGetPropertyByIDUseCase(storageAdapter)
	getBySlugUseCase := usecase.NewGetPropertyBySlugUseCase(storageAdapter)
	getAllUseCase := usecase.NewGetAllPropertiesUseCase(storageAdapter)
	getListingPageUseCase := usecase.NewGetListingPageUseCase(storageAdapter, listingCache)
	appLogger.Info("All use cases initialized.", nil)

	// Incoming adapters.
	consumerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_consumer"})
	invalidationListener, err := rabbitmq_adapter.NewInvalidationConsumerAdapter(
		connManager, appConfig.RabbitMQ.URL, listingCache, consumerLogger)
	if err != nil {
		appLogger.Error("Failed to create invalidation listener", err, nil)
		dbPool.Close()
		return nil, err
	}
	appLogger.Info("Invalidation Events Listener initialized.", nil)

	propertyHandlers := rest.NewPropertyHandler(
		createPropertyUseCase, updatePropertyUseCase, updateImagesUseCase,
		deletePropertyUseCase, setStatusUseCase, getByIDUseCase, getAllUseCase)
	listingHandlers := rest.NewListingHandler(getListingPageUseCase, getBySlugUseCase)

	apiServer := rest.NewServer(appConfig.Rest.Port, appConfig.Rest.AllowedOrigins, propertyHandlers, listingHandlers, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:                appConfig,
		dbPool:                dbPool,
		apiServer:             apiServer,
		fluentClient:          fluentClient,
		logger:                appLogger,
		invalidationListener:  invalidationListener,
		invalidationPublisher: invalidationPublisher,
		connManager:           connManager,
	}, nil
}

// Run starts all components and blocks until a shutdown signal or a
// critical component failure.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	var wg sync.WaitGroup

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		a.logger.Info("Waiting for background processes to finish...", nil)
		wg.Wait()
		a.logger.Info("All background processes finished.", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.invalidationListener != nil {
			if err := a.invalidationListener.Close(); err != nil {
				a.logger.Error("Error closing invalidation listener", err, nil)
			}
		}

		if a.invalidationPublisher != nil {
			if err := a.invalidationPublisher.Close(); err != nil {
				a.logger.Error("Error closing invalidation publisher", err, nil)
			}
		}

		if a.connManager != nil {
			if err := a.connManager.Close(); err != nil {
				a.logger.Error("Error closing RabbitMQ connection", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// stdout directly, the fluent pipeline may already be gone
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	startListener := func(name string, listener port.EventListenerPort) {
		defer wg.Done()
		listenerLogger := a.logger.WithFields(port.Fields{"listener_name": name})
		listenerLogger.Info("Starting listener...", nil)

		if err := listener.Start(appCtx); err != nil && err != context.Canceled {
			listenerLogger.Error("Listener stopped with an unexpected error", err, nil)
			errorsCh <- fmt.Errorf("%s error: %w", name, err)
		} else {
			listenerLogger.Info("Listener stopped gracefully due to context cancellation.", nil)
		}
	}

	wg.Add(1)
	go startListener("Invalidation Events Listener", a.invalidationListener)

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.Port})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
