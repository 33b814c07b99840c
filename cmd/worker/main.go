package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"
	"gorm.io/gorm"

	catalogmemory "github.com/gostorefront/go-order-api/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/gostorefront/go-order-api/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/gostorefront/go-order-api/internal/domains/catalog/application"
	catalogports "github.com/gostorefront/go-order-api/internal/domains/catalog/ports"
	customersmemory "github.com/gostorefront/go-order-api/internal/domains/customers/adapters/memory"
	customerspostgres "github.com/gostorefront/go-order-api/internal/domains/customers/adapters/persistence/postgres"
	customersapp "github.com/gostorefront/go-order-api/internal/domains/customers/application"
	customersports "github.com/gostorefront/go-order-api/internal/domains/customers/ports"
	ledgermemory "github.com/gostorefront/go-order-api/internal/domains/ledger/adapters/memory"
	ledgerapp "github.com/gostorefront/go-order-api/internal/domains/ledger/application"
	"github.com/gostorefront/go-order-api/internal/domains/orders/adapters/collaborators"
	ordersmemory "github.com/gostorefront/go-order-api/internal/domains/orders/adapters/memory"
	ordersobs "github.com/gostorefront/go-order-api/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/gostorefront/go-order-api/internal/domains/orders/adapters/persistence/postgres"
	ordersrecording "github.com/gostorefront/go-order-api/internal/domains/orders/adapters/recording"
	ordersapp "github.com/gostorefront/go-order-api/internal/domains/orders/application"
	ordersports "github.com/gostorefront/go-order-api/internal/domains/orders/ports"
	platformmigrations "github.com/gostorefront/go-order-api/internal/platform/migrations"
	platformobservability "github.com/gostorefront/go-order-api/internal/platform/observability"
	platformpostgres "github.com/gostorefront/go-order-api/internal/platform/postgres"
	orderactivities "github.com/gostorefront/go-order-api/internal/platform/temporal/activities/orders"
	orderworkflows "github.com/gostorefront/go-order-api/internal/platform/temporal/workflows/orders"
)

func main() {
	ctx := context.Background()
	const serviceName = "order-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
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
			logger.Error("failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	customerService := customersapp.NewService(buildCustomerRepository(db))
	catalogService := catalogapp.NewService(buildCatalogRepository(db))
	ledgerService := ledgerapp.NewService(ledgermemory.NewRepository())

	coreOrderService := ordersapp.NewService(
		collaborators.NewCustomerDirectory(customerService),
		collaborators.NewProductCatalog(catalogService),
		buildOrderRepository(db),
	)
	orderService := ordersobs.New(
		ordersrecording.New(coreOrderService, ledgerService, logger),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	orderActivities := orderactivities.NewActivities(orderService)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, orderworkflows.OrderPlacementTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(orderworkflows.OrderPlacementWorkflow, workflow.RegisterOptions{Name: orderworkflows.OrderPlacementWorkflowName})
	w.RegisterActivityWithOptions(orderActivities.PlaceOrder, activity.RegisterOptions{Name: orderactivities.PlaceOrderActivityName})

	logger.Info("worker listening", slog.String("taskQueue", orderworkflows.OrderPlacementTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func buildCustomerRepository(db *gorm.DB) customersports.Repository {
	if db == nil {
		return customersmemory.NewRepository()
	}
	return customerspostgres.NewRepository(db)
}

func buildCatalogRepository(db *gorm.DB) catalogports.Repository {
	if db == nil {
		return catalogmemory.NewRepository()
	}
	return catalogpostgres.NewRepository(db)
}

func buildOrderRepository(db *gorm.DB) ordersports.Repository {
	if db == nil {
		return ordersmemory.NewRepository()
	}
	return orderspostgres.NewRepository(db)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
