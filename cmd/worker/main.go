package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"github.com/ghuser/rxledger/pkg/app"
	"github.com/ghuser/rxledger/pkg/cache"
	"github.com/ghuser/rxledger/pkg/config"
	"github.com/ghuser/rxledger/pkg/database"
	"github.com/ghuser/rxledger/pkg/events"
	"github.com/ghuser/rxledger/pkg/logger"
	"github.com/ghuser/rxledger/pkg/telemetry"
	"github.com/ghuser/rxledger/pkg/workflows"
	appsvcs "github.com/ghuser/rxledger/services/pharmacy/application/services"
	pharmacyWorkflows "github.com/ghuser/rxledger/services/pharmacy/application/workflows"
	saleEvents "github.com/ghuser/rxledger/services/pharmacy/domain/events"
	"github.com/ghuser/rxledger/services/pharmacy/infrastructure/persistence/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
	if err != nil {
		log.Error("failed to initialize temporal client", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer temporalClient.Close()

	appConfig := &app.Application{
		Db:             pool,
		Logger:         log,
		EventBus:       eventBus,
		Redis:          redisClient,
		TemporalClient: temporalClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	// The worker process never bills, so the repository needs no event bus
	// and the sweeper needs no notifier.
	medicineRepo := postgres.NewMedicineRepository(pool, nil)
	sweeper := appsvcs.NewExpirySweeper(medicineRepo, cfg.ExpirySweepChunkSize, log)

	w := worker.New(temporalClient.Client, pharmacyWorkflows.TaskQueue, worker.Options{})
	w.RegisterWorkflow(pharmacyWorkflows.ExpirySweepWorkflow)
	w.RegisterActivity(&pharmacyWorkflows.ExpirySweepActivities{Sweeper: sweeper})

	if err := w.Start(); err != nil {
		log.Error("failed to start temporal worker", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer w.Stop()

	if err := scheduleExpirySweep(ctx, appConfig, cfg.ExpirySweepCron); err != nil {
		log.Error("failed to schedule expiry sweep", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// scheduleExpirySweep starts the cron-driven sweep workflow. The fixed
// workflow ID makes this idempotent across worker restarts: an already
// running schedule is kept.
func scheduleExpirySweep(ctx context.Context, a *app.Application, cronSchedule string) error {
	_, err := a.TemporalClient.Client.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:           pharmacyWorkflows.ExpirySweepWorkflowID,
		TaskQueue:    pharmacyWorkflows.TaskQueue,
		CronSchedule: cronSchedule,
	}, pharmacyWorkflows.ExpirySweepWorkflow)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			a.Logger.Info("expiry sweep schedule already running")
			return nil
		}
		return err
	}

	a.Logger.Info("expiry sweep scheduled", "cron", cronSchedule)
	return nil
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	errCh, err := a.EventBus.Subscribe(ctx, saleEvents.TopicSaleRecorded, handleSaleRecorded(a))
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error",
				"topic", saleEvents.TopicSaleRecorded,
				"error", err,
			)
		}
	}()

	a.Logger.Info("event subscribers registered", "topics", []string{saleEvents.TopicSaleRecorded})
	return nil
}

// handleSaleRecorded returns a handler for sale.recorded events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Drops the medicine's cached read model so the next read sees the
// post-sale quantity (or the deletion).
func handleSaleRecorded(a *app.Application) func(context.Context, *message.Message) error {
	medicineCache := cache.NewMedicineCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt saleEvents.SaleRecordedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := medicineCache.Delete(ctx, evt.OrgID, evt.MedicineID); err != nil {
			// Invalidation is best-effort; a stale entry expires with the TTL.
			a.Logger.WarnContext(ctx, "cache invalidation failed for sale.recorded",
				"medicine_id", evt.MedicineID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache invalidated",
				"medicine_id", evt.MedicineID, "org_id", evt.OrgID,
				"medicine_deleted", evt.MedicineDeleted)
		}

		return nil
	}
}
