package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	token_adapter "github.com/MaryChris21/Estify/internal/adapters/jwt"
	logger_adapter "github.com/MaryChris21/Estify/internal/adapters/logger"
	"github.com/MaryChris21/Estify/internal/adapters/memory"
	mongo_adapter "github.com/MaryChris21/Estify/internal/adapters/mongo"
	postgres_adapter "github.com/MaryChris21/Estify/internal/adapters/postgres"
	rabbitmq_adapter "github.com/MaryChris21/Estify/internal/adapters/rabbitmq"
	"github.com/MaryChris21/Estify/internal/adapters/rest"
	"github.com/MaryChris21/Estify/internal/configs"
	"github.com/MaryChris21/Estify/internal/constants"
	"github.com/MaryChris21/Estify/internal/contracts"
	"github.com/MaryChris21/Estify/internal/core/port"
	"github.com/MaryChris21/Estify/internal/core/usecase"
	fluentlogger "github.com/MaryChris21/Estify/pkg/fluent_logger"
	"github.com/MaryChris21/Estify/pkg/mongodb"
	"github.com/MaryChris21/Estify/pkg/postgres"
	"github.com/MaryChris21/Estify/pkg/rabbitmq/rabbitmq_common"
	"github.com/MaryChris21/Estify/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 15 * time.Second
)

type App struct {
	config    *configs.AppConfig
	apiServer *rest.Server

	dbPool      *pgxpool.Pool
	mongoClient *mongo.Client

	rabbitManager  *rabbitmq_common.ConnectionManager
	eventsProducer *rabbitmq_producer.Publisher

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	app := &App{config: appConfig}

	// --- 1. loggers ---
	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Writer:   os.Stdout,
		Level:    logger_adapter.ParseLevel(appConfig.StdoutLogger.Level),
		IsJSON:   appConfig.StdoutLogger.IsJSON,
		UseColor: !appConfig.StdoutLogger.IsJSON,
	})

	var fluentSink port.LoggerPort
	if appConfig.FluentBit.Enabled {
		app.fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(app.fluentClient, logger_adapter.ParseLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			app.closeFluent()
			return nil, err
		}
		fluentSink = fluentAdapter
	}

	multiLogger, err := logger_adapter.NewMultiLoggerAdapter(stdoutLogger, fluentSink)
	if err != nil {
		app.closeFluent()
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": appConfig.AppName})
	app.logger = baseLogger.WithFields(port.Fields{"component": "app"})
	app.logger.Info("Logger system initialized", port.Fields{"fluent_enabled": appConfig.FluentBit.Enabled})

	// --- 2. store ---
	store, bookings, err := app.initStore()
	if err != nil {
		app.release()
		return nil, err
	}

	// --- 3. property events ---
	events, err := app.initEvents(baseLogger)
	if err != nil {
		app.release()
		return nil, err
	}

	// --- 4. validators ---
	fieldsValidator, err := contracts.NewFieldsValidator()
	if err != nil {
		app.logger.Error("Failed to load property fields schema", err, nil)
		app.release()
		return nil, fmt.Errorf("failed to create fields validator: %w", err)
	}
	tokenValidator, err := token_adapter.NewTokenValidator(appConfig.Auth.JWTSecret)
	if err != nil {
		app.release()
		return nil, fmt.Errorf("failed to create token validator: %w", err)
	}

	// --- 5. use cases ---
	clock := usecase.SystemClock
	useCases := rest.UseCases{
		SubmitAdd:     usecase.NewSubmitAddRequestUseCase(store, fieldsValidator, events, clock),
		SubmitUpdate:  usecase.NewSubmitUpdateRequestUseCase(store, fieldsValidator, events, clock),
		SubmitDelete:  usecase.NewSubmitDeleteRequestUseCase(store, events, clock),
		Approve:       usecase.NewApproveRequestUseCase(store, events, clock),
		Reject:        usecase.NewRejectRequestUseCase(store, events, clock),
		ListApproved:  usecase.NewListApprovedUseCase(store),
		GetApproved:   usecase.NewGetApprovedUseCase(store),
		ListPending:   usecase.NewListPendingUseCase(store),
		ListMine:      usecase.NewListMineUseCase(store),
		ListMyListing: usecase.NewListMyListingsUseCase(store),
		CreateListing: usecase.NewCreateListingUseCase(store, fieldsValidator, events, clock),
		UpdateListing: usecase.NewUpdateListingUseCase(store, fieldsValidator, events, clock),
		DeleteListing: usecase.NewDeleteListingUseCase(store, events, clock),
		Report:        usecase.NewPropertyReportUseCase(store),

		CreateBooking:        usecase.NewCreateBookingUseCase(bookings, store, clock),
		ListBookings:         usecase.NewListBookingsUseCase(bookings),
		ListPropertyBookings: usecase.NewListPropertyBookingsUseCase(bookings),
		GetBooking:           usecase.NewGetBookingUseCase(bookings),
		UpdateBooking:        usecase.NewUpdateBookingUseCase(bookings, clock),
		DeleteBooking:        usecase.NewDeleteBookingUseCase(bookings),
		ConfirmBooking:       usecase.NewConfirmBookingUseCase(bookings, clock),
		RejectBooking:        usecase.NewRejectBookingUseCase(bookings, clock),
	}

	// --- 6. REST ---
	app.apiServer = rest.NewServer(
		rest.ServerConfig{Port: appConfig.Rest.Port, AllowedOrigins: appConfig.Rest.CORSAllowedOrigins},
		rest.NewPropertyHandlers(useCases),
		rest.NewAuthMiddleware(tokenValidator),
		baseLogger,
	)
	app.logger.Info("REST API server configured.", port.Fields{"store_driver": appConfig.Store.Driver})

	return app, nil
}

// initStore connects the configured driver and returns the property and booking stores.
func (a *App) initStore() (port.PropertyStorePort, port.BookingStorePort, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	cfg := a.config.Store
	switch cfg.Driver {
	case configs.StoreDriverPostgres:
		pool, err := postgres.NewClient(ctx, postgres.Config{DatabaseURL: cfg.DatabaseURL})
		if err != nil {
			a.logger.Error("Failed to connect to PostgreSQL", err, nil)
			return nil, nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		a.dbPool = pool
		a.logger.Info("Successfully connected to PostgreSQL pool!", nil)

		if err := postgres_adapter.EnsureSchema(ctx, pool); err != nil {
			a.logger.Error("Failed to prepare properties and bookings tables", err, nil)
			return nil, nil, fmt.Errorf("failed to prepare postgres schema: %w", err)
		}
		store, err := postgres_adapter.NewPostgresPropertyStore(pool)
		if err != nil {
			return nil, nil, err
		}
		bookings, err := postgres_adapter.NewPostgresBookingStore(pool)
		if err != nil {
			return nil, nil, err
		}
		return store, bookings, nil

	case configs.StoreDriverMongo:
		client, err := mongodb.NewClient(ctx, mongodb.Config{URI: cfg.MongoURI})
		if err != nil {
			a.logger.Error("Failed to connect to MongoDB", err, nil)
			return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		a.mongoClient = client
		a.logger.Info("Successfully connected to MongoDB!", port.Fields{"database": cfg.MongoDatabase, "collection": cfg.MongoCollection})

		database := client.Database(cfg.MongoDatabase)
		store, err := mongo_adapter.NewMongoPropertyStore(database.Collection(cfg.MongoCollection))
		if err != nil {
			return nil, nil, err
		}
		if err := store.EnsureIndexes(ctx); err != nil {
			a.logger.Error("Failed to create MongoDB indexes", err, nil)
			return nil, nil, fmt.Errorf("failed to create mongo indexes: %w", err)
		}
		bookings, err := mongo_adapter.NewMongoBookingStore(database.Collection(cfg.MongoBookingsCollection))
		if err != nil {
			return nil, nil, err
		}
		if err := bookings.EnsureIndexes(ctx); err != nil {
			a.logger.Error("Failed to create MongoDB booking indexes", err, nil)
			return nil, nil, fmt.Errorf("failed to create mongo booking indexes: %w", err)
		}
		return store, bookings, nil

	default:
		a.logger.Warn("Using in-memory stores, data is lost on restart", nil)
		return memory.NewPropertyStore(), memory.NewBookingStore(), nil
	}
}

func (a *App) initEvents(baseLogger port.LoggerPort) (port.PropertyEventsPort, error) {
	cfg := a.config.RabbitMQ
	if !cfg.Enabled {
		a.logger.Info("RabbitMQ disabled, property events are not published", nil)
		return rabbitmq_adapter.NoopEventsPublisher{}, nil
	}

	bridge := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq"}))

	manager, err := rabbitmq_common.GetManager(cfg.URL, bridge)
	if err != nil {
		a.logger.Error("Failed to connect to RabbitMQ", err, nil)
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	a.rabbitManager = manager

	producer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
		Config:                   rabbitmq_common.Config{URL: cfg.URL},
		ExchangeName:             cfg.Exchange,
		ExchangeType:             constants.PropertyEventsExchangeType,
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   bridge,
	}, manager)
	if err != nil {
		a.logger.Error("Failed to create property events producer", err, nil)
		return nil, fmt.Errorf("failed to create rabbitmq producer: %w", err)
	}
	a.eventsProducer = producer

	publisher, err := rabbitmq_adapter.NewPropertyEventsPublisher(producer)
	if err != nil {
		return nil, err
	}
	a.logger.Info("Property events publisher initialized", port.Fields{"exchange": cfg.Exchange})
	return publisher, nil
}

// Run starts the HTTP server and blocks until a signal or a server failure.
func (a *App) Run() error {
	defer a.shutdown()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.Port})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
		return nil
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
		return err
	}
}

func (a *App) shutdown() {
	a.logger.Info("Shutdown sequence initiated...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if a.apiServer != nil {
		if err := a.apiServer.Stop(ctx); err != nil {
			a.logger.Error("Error during API server shutdown", err, nil)
		}
	}
	a.release()
	a.logger.Info("Application shut down gracefully.", nil)
	a.closeFluent()
}

// release closes the store and broker clients. Safe to call on a partially built App.
func (a *App) release() {
	if a.eventsProducer != nil {
		if err := a.eventsProducer.Close(); err != nil {
			a.logger.Error("Error closing property events producer", err, nil)
		}
		a.eventsProducer = nil
	}
	if a.rabbitManager != nil {
		if err := a.rabbitManager.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ connection", err, nil)
		}
		a.rabbitManager = nil
	}
	if a.dbPool != nil {
		a.dbPool.Close()
		a.dbPool = nil
		a.logger.Info("PostgreSQL pool closed.", nil)
	}
	if a.mongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.mongoClient.Disconnect(ctx); err != nil {
			a.logger.Error("Error disconnecting from MongoDB", err, nil)
		}
		a.mongoClient = nil
		a.logger.Info("MongoDB client disconnected.", nil)
	}
}

func (a *App) closeFluent() {
	if a.fluentClient == nil {
		return
	}
	if err := a.fluentClient.Close(); err != nil {
		// fluent may already be gone, so report on stdout
		fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
	}
	a.fluentClient = nil
}
