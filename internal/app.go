package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"

	"ndjimba/internal/adapters/backendapi"
	"ndjimba/internal/adapters/catalogfile"
	"ndjimba/internal/adapters/codegen"
	token_adapter "ndjimba/internal/adapters/jwt"
	logger_adapter "ndjimba/internal/adapters/logger"
	"ndjimba/internal/adapters/memory"
	postgres_adapter "ndjimba/internal/adapters/postgres"
	rabbitmq_adapter "ndjimba/internal/adapters/rabbitmq"
	"ndjimba/internal/adapters/rest"
	"ndjimba/internal/adapters/support"
	"ndjimba/internal/configs"
	"ndjimba/internal/constants"
	"ndjimba/internal/core/authflow"
	"ndjimba/internal/core/port"
	"ndjimba/internal/core/search"
	"ndjimba/internal/core/usecase"
	fluentlogger "ndjimba/pkg/fluent_logger"
	"ndjimba/pkg/postgres"
	"ndjimba/pkg/rabbitmq/rabbitmq_common"
	"ndjimba/pkg/rabbitmq/rabbitmq_producer"
)

const shutdownTimeout = 15 * time.Second

// App is the assembled service.
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	connManager    *rabbitmq_common.ConnectionManager
	eventsProducer *rabbitmq_producer.Publisher
}

// NewApp is the composition root: it reads the configuration and wires
// every adapter into the use cases.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	app := &App{config: appConfig}
	if err := app.init(); err != nil {
		app.close()
		return nil, err
	}
	return app, nil
}

func (a *App) init() error {
	cfg := a.config

	baseLogger, err := a.initLoggers()
	if err != nil {
		return err
	}
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	a.logger = appLogger

	ctx := context.Background()

	if cfg.UsesPostgres() {
		a.dbPool, err = postgres.NewClient(ctx, postgres.Config{
			DatabaseURL:     cfg.Database.URL,
			MaxConns:        int32(cfg.Database.MaxConns),
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
		})
		if err != nil {
			appLogger.Error("Failed to connect to PostgreSQL", err, nil)
			return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

		if cfg.Database.EnsureSchema {
			if err := postgres_adapter.EnsureSchema(ctx, a.dbPool); err != nil {
				appLogger.Error("Failed to apply database schema", err, nil)
				return err
			}
		}
	}

	catalog, err := a.initCatalog()
	if err != nil {
		appLogger.Error("Failed to initialize catalog", err, port.Fields{"source": cfg.Catalog.Source})
		return fmt.Errorf("failed to initialize catalog: %w", err)
	}
	appLogger.Info("Catalog initialized.", port.Fields{"source": cfg.Catalog.Source})

	backend, err := a.initBackend()
	if err != nil {
		appLogger.Error("Failed to initialize account backend", err, port.Fields{"driver": cfg.Backend.Driver})
		return fmt.Errorf("failed to initialize account backend: %w", err)
	}
	appLogger.Info("Account backend initialized.", port.Fields{"driver": cfg.Backend.Driver})

	events, err := a.initEvents(baseLogger)
	if err != nil {
		appLogger.Error("Failed to initialize event publisher", err, nil)
		return fmt.Errorf("failed to initialize event publisher: %w", err)
	}

	tokenService, err := token_adapter.NewTokenService(cfg.Auth.JWTSecretKey)
	if err != nil {
		return fmt.Errorf("failed to create token service: %w", err)
	}
	appLogger.Info("All outgoing adapters initialized.", nil)

	validation := authflow.ValidationAdvisory
	if cfg.Auth.EnforcePhoneValidation {
		validation = authflow.ValidationEnforced
	}
	signupDeps := authflow.Deps{
		Backend: backend,
		Codes:   codegen.NewGenerator(),
		Support: support.NewChannel(events),
		Events:  events,
	}
	signupOpts := authflow.Options{
		Validation:    validation,
		SupportNumber: cfg.Auth.SupportWhatsAppNumber,
	}

	findPropertiesUseCase := usecase.NewFindPropertiesUseCase(search.NewEngine(catalog))
	getPropertyDetailsUseCase := usecase.NewGetPropertyDetailsUseCase(catalog)
	getHomeFeedUseCase := usecase.NewGetHomeFeedUseCase(catalog)
	getFilterOptionsUseCase := usecase.NewGetFilterOptionsUseCase()
	reportListingUseCase := usecase.NewReportListingUseCase(catalog, events)

	validatePhoneUseCase := usecase.NewValidatePhoneUseCase()
	submitPhoneSignupUseCase := usecase.NewSubmitPhoneSignupUseCase(signupDeps, signupOpts)
	loginWithCodeUseCase := usecase.NewLoginWithCodeUseCase(backend, tokenService, cfg.Auth.TokenTTL, cfg.Auth.LoginDelay)
	appLogger.Info("All use cases initialized.", nil)

	propertyHandler := rest.NewPropertyHandler(
		findPropertiesUseCase,
		getPropertyDetailsUseCase,
		getHomeFeedUseCase,
		getFilterOptionsUseCase,
		reportListingUseCase,
	)
	authHandler := rest.NewAuthHandler(validatePhoneUseCase, submitPhoneSignupUseCase, loginWithCodeUseCase)

	a.apiServer = rest.NewServer(rest.ServerConfig{
		Port:               cfg.Rest.PORT,
		CORSAllowedOrigins: cfg.Rest.CORSAllowedOrigins,
		ReadTimeout:        15 * time.Second,
		WriteTimeout:       30 * time.Second,
	}, propertyHandler, authHandler, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return nil
}

func (a *App) initLoggers() (port.LoggerPort, error) {
	cfg := a.config
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(cfg.StdoutLogger.Level),
		IsJSON:   cfg.StdoutLogger.JSON,
		UseColor: !cfg.StdoutLogger.JSON,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	if cfg.FluentBit.Enabled {
		client, err := fluentlogger.NewClient(fluentlogger.Config{
			Host:      cfg.FluentBit.Host,
			Port:      cfg.FluentBit.Port,
			TagPrefix: cfg.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}
		a.fluentClient = client

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(client, parseLogLevel(cfg.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": cfg.AppName})
	baseLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": cfg.FluentBit.Enabled,
	})
	return baseLogger, nil
}

func (a *App) initCatalog() (port.CatalogPort, error) {
	switch a.config.Catalog.Source {
	case configs.CatalogSourceFile:
		return catalogfile.Load(a.config.Catalog.File)
	case configs.CatalogSourcePostgres:
		return postgres_adapter.NewCatalogRepository(a.dbPool)
	default:
		return memory.NewSampleCatalog(), nil
	}
}

func (a *App) initBackend() (port.AccountBackendPort, error) {
	switch a.config.Backend.Driver {
	case configs.BackendDriverHTTP:
		return backendapi.NewClient(backendapi.Config{
			BaseURL: a.config.Backend.URL,
			APIKey:  a.config.Backend.APIKey,
			Timeout: a.config.Backend.Timeout,
		}, nil)
	case configs.BackendDriverPostgres:
		return postgres_adapter.NewAccountRepository(a.dbPool)
	default:
		a.logger.Warn("Using the in-memory account backend, accounts are lost on restart", nil)
		return memory.NewAccountBackend(), nil
	}
}

func (a *App) initEvents(baseLogger port.LoggerPort) (port.EventPublisherPort, error) {
	if !a.config.RabbitMQ.Enabled {
		a.logger.Info("RabbitMQ disabled, domain events are kept in memory.", nil)
		return memory.NewEventLog(), nil
	}

	connManagerBridge := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"}))
	connManager, err := rabbitmq_common.NewManager(rabbitmq_common.Config{URL: a.config.RabbitMQ.URL}, connManagerBridge)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection manager: %w", err)
	}
	a.connManager = connManager
	a.logger.Info("RabbitMQ Connection Manager initialized.", nil)

	producer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
		Config:                   rabbitmq_common.Config{URL: a.config.RabbitMQ.URL},
		ExchangeName:             constants.EventsExchange,
		ExchangeType:             constants.EventsExchangeType,
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})),
	}, connManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create event producer: %w", err)
	}
	a.eventsProducer = producer
	a.logger.Info("RabbitMQ Event Producer initialized.", nil)

	return rabbitmq_adapter.NewEventPublisherAdapter(producer)
}

// Run serves HTTP until SIGINT/SIGTERM or a server failure, then shuts down.
func (a *App) Run() error {
	defer a.close()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	var runErr error
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case runErr = <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", runErr, nil)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.apiServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("Error during API server shutdown", err, nil)
	}

	return runErr
}

// close releases every resource that was opened, in reverse order.
func (a *App) close() {
	logger := a.logger
	if logger == nil {
		logger = logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{})
	}

	if a.eventsProducer != nil {
		if err := a.eventsProducer.Close(); err != nil {
			logger.Error("Error closing event producer", err, nil)
		}
	}
	if a.connManager != nil {
		if err := a.connManager.Close(); err != nil {
			logger.Error("Error closing RabbitMQ connection", err, nil)
		}
	}
	if a.dbPool != nil {
		a.dbPool.Close()
		logger.Info("PostgreSQL pool closed.", nil)
	}

	logger.Info("Application shut down gracefully.", nil)

	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			// fluent may already be gone, report on stdout
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
	}
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
