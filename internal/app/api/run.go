package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	cataloghttp "github.com/gostorefront/go-order-api/internal/domains/catalog/adapters/http"
	catalogmemory "github.com/gostorefront/go-order-api/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/gostorefront/go-order-api/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/gostorefront/go-order-api/internal/domains/catalog/application"
	catalogports "github.com/gostorefront/go-order-api/internal/domains/catalog/ports"

	customershttp "github.com/gostorefront/go-order-api/internal/domains/customers/adapters/http"
	customersmemory "github.com/gostorefront/go-order-api/internal/domains/customers/adapters/memory"
	customerspostgres "github.com/gostorefront/go-order-api/internal/domains/customers/adapters/persistence/postgres"
	customersapp "github.com/gostorefront/go-order-api/internal/domains/customers/application"
	customersports "github.com/gostorefront/go-order-api/internal/domains/customers/ports"

	ledgerhttp "github.com/gostorefront/go-order-api/internal/domains/ledger/adapters/http"
	ledgermemory "github.com/gostorefront/go-order-api/internal/domains/ledger/adapters/memory"
	ledgerapp "github.com/gostorefront/go-order-api/internal/domains/ledger/application"

	"github.com/gostorefront/go-order-api/internal/domains/orders/adapters/collaborators"
	ordershttp "github.com/gostorefront/go-order-api/internal/domains/orders/adapters/http"
	ordersmemory "github.com/gostorefront/go-order-api/internal/domains/orders/adapters/memory"
	ordersobs "github.com/gostorefront/go-order-api/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/gostorefront/go-order-api/internal/domains/orders/adapters/persistence/postgres"
	ordersrecording "github.com/gostorefront/go-order-api/internal/domains/orders/adapters/recording"
	ordersworkflows "github.com/gostorefront/go-order-api/internal/domains/orders/adapters/workflows"
	ordersapp "github.com/gostorefront/go-order-api/internal/domains/orders/application"
	ordersports "github.com/gostorefront/go-order-api/internal/domains/orders/ports"

	platformmigrations "github.com/gostorefront/go-order-api/internal/platform/migrations"
	platformobservability "github.com/gostorefront/go-order-api/internal/platform/observability"
	platformpostgres "github.com/gostorefront/go-order-api/internal/platform/postgres"
	"github.com/gostorefront/go-order-api/internal/shared/problem"
)

// Run boots the order HTTP API with observability, repositories, and workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "order-api"
	cfg := LoadConfig()
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanupDB()
	if db != nil {
		if err := platformmigrations.Run(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	customerService := customersapp.NewService(buildCustomerRepository(db, logger))
	catalogService := catalogapp.NewService(buildCatalogRepository(db, logger))
	ledgerService := ledgerapp.NewService(ledgermemory.NewRepository())

	coreOrderService := ordersapp.NewService(
		collaborators.NewCustomerDirectory(customerService),
		collaborators.NewProductCatalog(catalogService),
		buildOrderRepository(db, logger),
	)
	orderService := ordersobs.New(
		ordersrecording.New(coreOrderService, ledgerService, logger),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	var orderWorkflows ordersports.WorkflowOrchestrator = ordersworkflows.NewInlineOrderWorkflows(orderService)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, running order placement inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		orderWorkflows = ordersworkflows.NewTemporalOrderWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	responder := problem.NewResponder("", ordershttp.ErrorMapper())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(serviceName))
	v1 := router.Group("/api/v1")
	ordershttp.NewHandler(orderService, orderWorkflows, responder).Register(v1)
	customershttp.NewHandler(customerService, responder).Register(v1)
	cataloghttp.NewHandler(catalogService, responder).Register(v1)
	ledgerhttp.NewHandler(ledgerService, responder).Register(v1)

	addr := ":" + cfg.Port
	logger.Info("order API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("order API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func buildCustomerRepository(db *gorm.DB, logger *slog.Logger) customersports.Repository {
	if db == nil {
		return customersmemory.NewRepository()
	}
	logger.Info("customer repository configured with postgres")
	return customerspostgres.NewRepository(db)
}

func buildCatalogRepository(db *gorm.DB, logger *slog.Logger) catalogports.Repository {
	if db == nil {
		return catalogmemory.NewRepository()
	}
	logger.Info("catalog repository configured with postgres")
	return catalogpostgres.NewRepository(db)
}

func buildOrderRepository(db *gorm.DB, logger *slog.Logger) ordersports.Repository {
	if db == nil {
		return ordersmemory.NewRepository()
	}
	logger.Info("order repository configured with postgres")
	return orderspostgres.NewRepository(db)
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
