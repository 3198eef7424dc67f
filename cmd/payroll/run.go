package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/utxopayroll-backend/internal/metrics"
	"github.com/goodnatureofminers/utxopayroll-backend/internal/migrator"
	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/blockfrost"
	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/events"
	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/lock"
	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/repository/clickhouse"
	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/repository/sqlstore"
	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/seed"
	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/service"
	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/signer"
	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/txbuilder"
	"github.com/goodnatureofminers/utxopayroll-backend/internal/telemetry"
	"github.com/goodnatureofminers/utxopayroll-backend/internal/transport/httpapi"
	"github.com/goodnatureofminers/utxopayroll-backend/pkg/batcher"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

const serviceName = "utxopayroll"

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	logger = logger.With(zap.String("network", string(cfg.Network)))

	shutdownTracer, err := telemetry.InitTracer(ctx, serviceName, cfg.OTLPEndpoint)
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			logger.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("close sql store", zap.Error(err))
		}
	}()

	if cfg.SeedFile != "" {
		recipients, err := seed.Load(cfg.SeedFile, cfg.Network)
		if err != nil {
			return fmt.Errorf("load seed file: %w", err)
		}
		if _, err := seed.Apply(ctx, store, recipients, logger.Named("seed")); err != nil {
			return fmt.Errorf("apply seed: %w", err)
		}
	}

	provider, err := blockfrost.New(blockfrost.Config{
		BaseURL:   cfg.BlockfrostURL,
		ProjectID: cfg.BlockfrostProjectID,
		Timeout:   cfg.HTTPTimeout,
		RPS:       cfg.BlockfrostRPS,
	}, cfg.Network, metrics.NewProviderClient(cfg.Network))
	if err != nil {
		return fmt.Errorf("init blockfrost client: %w", err)
	}

	sign, err := signer.New(cfg.FundingSeed, cfg.FundingAddress)
	if err != nil {
		return fmt.Errorf("init signer: %w", err)
	}
	changeAddress := cfg.ChangeAddress
	if changeAddress == "" {
		changeAddress = sign.Address()
	}
	builder, err := txbuilder.New(cfg.Network, changeAddress, cfg.ValidityWindow)
	if err != nil {
		return fmt.Errorf("init builder: %w", err)
	}

	submitter, err := service.NewSubmitterService(
		provider,
		metrics.NewSubmitter(cfg.Network),
		service.SubmitterConfig{MaxAttempts: cfg.SubmitAttempts, Backoff: cfg.SubmitBackoff},
		logger.Named("submitter"),
	)
	if err != nil {
		return err
	}

	deps := service.RunnerDeps{
		Recipients: store,
		Provider:   provider,
		Builder:    builder,
		Signer:     sign,
		Submitter:  submitter,
		Log:        store,
		Metrics:    metrics.NewRunner(cfg.Network),
		Tracer:     otel.Tracer(serviceName + "/runner"),
	}

	var runs httpapi.RunHistory
	if cfg.ClickhouseDSN != "" {
		repo, journal, err := openJournal(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer func() {
			journal.Stop()
			if err := repo.Close(); err != nil {
				logger.Warn("close clickhouse", zap.Error(err))
			}
		}()
		deps.Journal = journal
		runs = repo
	}

	if len(cfg.KafkaBrokers) > 0 {
		publisher, err := events.NewPublisher(events.Config{Brokers: cfg.KafkaBrokers, Topic: cfg.KafkaTopic})
		if err != nil {
			return fmt.Errorf("init kafka publisher: %w", err)
		}
		defer func() {
			if err := publisher.Close(); err != nil {
				logger.Warn("close kafka publisher", zap.Error(err))
			}
		}()
		deps.Events = publisher
	}

	runner, err := service.NewRunnerService(deps, cfg.Network, logger.Named("runner"))
	if err != nil {
		return err
	}

	var runLock service.Lock
	if cfg.RedisAddr != "" {
		l, client, err := lock.Dial(ctx, lock.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.LockTTL,
		})
		if err != nil {
			return fmt.Errorf("init run lock: %w", err)
		}
		defer func() {
			_ = client.Close()
		}()
		runLock = l
	}

	schedule, err := service.ParseSchedule(cfg.schedule())
	if err != nil {
		return err
	}
	scheduler, err := service.NewSchedulerService(
		runner,
		schedule,
		runLock,
		metrics.NewScheduler(cfg.Network),
		cfg.RunTimeout,
		logger.Named("scheduler"),
	)
	if err != nil {
		return err
	}

	if cfg.RunOnce {
		result, err := scheduler.Trigger(ctx, model.TriggerManual)
		if err != nil {
			return fmt.Errorf("payroll run %s: %w", result.RunID, err)
		}
		logger.Info("payroll run finished",
			zap.String("run_id", result.RunID),
			zap.String("tx_hash", result.TxHash),
			zap.Uint64("fee", result.FeeUnits),
			zap.Int("recipients", result.RecipientCount),
		)
		return nil
	}

	api, err := httpapi.NewServer(httpapi.Deps{
		Store:     store,
		Payroll:   scheduler,
		Inspector: provider,
		Runs:      runs,
		Metrics:   metrics.NewHTTP(),
	}, cfg.Network, cfg.AllowedOrigins, logger.Named("http"))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 2)
	go func() {
		errCh <- api.ListenAndServe(ctx, cfg.HTTPAddr)
	}()
	go func() {
		errCh <- scheduler.Run(ctx)
	}()

	err = <-errCh
	cancel()
	if second := <-errCh; err == nil || errors.Is(err, context.Canceled) {
		err = second
	}
	// A manual run outlives the http shutdown grace period; the store,
	// journal and publisher stay open until it returns.
	if scheduler.Running() {
		logger.Info("waiting for the payroll run in flight")
	}
	scheduler.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func openStore(ctx context.Context, cfg config, logger *zap.Logger) (*sqlstore.Repository, error) {
	dialect, err := sqlstore.ParseDialect(cfg.SQLDialect)
	if err != nil {
		return nil, err
	}
	store, err := sqlstore.Open(ctx, dialect, cfg.SQLDSN, metrics.NewRepository(string(dialect)))
	if err != nil {
		return nil, fmt.Errorf("open sql store: %w", err)
	}
	if cfg.Migrate {
		backend, err := migrator.ParseBackend(string(dialect))
		if err != nil {
			_ = store.Close()
			return nil, err
		}
		if err := migrator.UpDB(store.DB(), backend, logger.Named("migrate")); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("migrate sql store: %w", err)
		}
	}
	return store, nil
}

func openJournal(ctx context.Context, cfg config, logger *zap.Logger) (*clickhouse.Repository, *clickhouse.Journal, error) {
	if cfg.Migrate {
		if err := migrator.Up(migrator.ClickHouse, cfg.ClickhouseDSN, logger.Named("migrate")); err != nil {
			return nil, nil, fmt.Errorf("migrate clickhouse: %w", err)
		}
	}
	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewRepository("clickhouse"))
	if err != nil {
		return nil, nil, fmt.Errorf("init clickhouse repository: %w", err)
	}
	journal, err := clickhouse.NewJournal(repo, batcher.Config{}, logger.Named("journal"))
	if err != nil {
		_ = repo.Close()
		return nil, nil, err
	}
	// stopped by the caller once the last run has written its record
	journal.Start(context.WithoutCancel(ctx))
	return repo, journal, nil
}
