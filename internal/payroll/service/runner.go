package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/utxopayroll-backend/internal/clock"
	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
	"github.com/goodnatureofminers/utxopayroll-backend/pkg/safe"
	"github.com/goodnatureofminers/utxopayroll-backend/pkg/workerpool"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// RunnerDeps groups the collaborators of a RunnerService. Events and Journal are optional.
type RunnerDeps struct {
	Recipients RecipientSource
	Provider   LedgerProvider
	Builder    TransactionBuilder
	Signer     TransactionSigner
	Submitter  TransactionSubmitter
	Log        TransactionLog
	Events     EventPublisher
	Journal    RunJournal
	Metrics    RunnerMetrics
	Tracer     trace.Tracer
}

// RunnerService executes one payroll run: snapshot, build, sign, submit, record.
type RunnerService struct {
	logger         *zap.Logger
	network        model.Network
	recipients     RecipientSource
	provider       LedgerProvider
	builder        TransactionBuilder
	signer         TransactionSigner
	submitter      TransactionSubmitter
	txLog          TransactionLog
	events         EventPublisher
	journal        RunJournal
	metrics        RunnerMetrics
	tracer         trace.Tracer
	sleep          func(context.Context, time.Duration) error
	now            func() time.Time
	newRunID       func() string
	recordAttempts int
	recordBackoff  time.Duration
	confirmTimeout time.Duration
}

// NewRunnerService builds a RunnerService with dependencies.
func NewRunnerService(deps RunnerDeps, network model.Network, logger *zap.Logger) (*RunnerService, error) {
	switch {
	case deps.Recipients == nil:
		return nil, errors.New("runner recipient source is required")
	case deps.Provider == nil:
		return nil, errors.New("runner ledger provider is required")
	case deps.Builder == nil:
		return nil, errors.New("runner builder is required")
	case deps.Signer == nil:
		return nil, errors.New("runner signer is required")
	case deps.Submitter == nil:
		return nil, errors.New("runner submitter is required")
	case deps.Log == nil:
		return nil, errors.New("runner transaction log is required")
	case deps.Metrics == nil:
		return nil, errors.New("runner metrics is required")
	case deps.Tracer == nil:
		return nil, errors.New("runner tracer is required")
	}
	return &RunnerService{
		logger:         logger.With(zap.String("network", string(network))),
		network:        network,
		recipients:     deps.Recipients,
		provider:       deps.Provider,
		builder:        deps.Builder,
		signer:         deps.Signer,
		submitter:      deps.Submitter,
		txLog:          deps.Log,
		events:         deps.Events,
		journal:        deps.Journal,
		metrics:        deps.Metrics,
		tracer:         deps.Tracer,
		sleep:          clock.SleepWithContext,
		now:            time.Now,
		newRunID:       func() string { return uuid.NewString() },
		recordAttempts: defaultRecordAttempts,
		recordBackoff:  defaultRecordBackoff,
		confirmTimeout: defaultConfirmTimeout,
	}, nil
}

type snapshot struct {
	utxos  []model.UnspentOutput
	params model.ProtocolParameters
	tip    uint64
}

// RunPayroll pays every active recipient in one transaction. A result with an
// empty TxHash means there was nobody to pay.
func (s *RunnerService) RunPayroll(ctx context.Context, trigger model.TriggerSource) (result model.RunResult, err error) {
	started := s.now()
	result.RunID = s.newRunID()
	logger := s.logger.With(zap.String("run_id", result.RunID), zap.String("trigger", string(trigger)))

	ctx, span := s.tracer.Start(ctx, "payroll.run", trace.WithAttributes(
		attribute.String("payroll.run_id", result.RunID),
		attribute.String("payroll.trigger", string(trigger)),
		attribute.String("payroll.network", string(s.network)),
	))
	defer func() {
		status := model.RunSucceeded
		switch {
		case err != nil:
			status = model.RunFailed
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			logger.Error("payroll run failed", zap.Error(err), zap.String("tx_hash", result.TxHash))
		case result.TxHash == "":
			status = model.RunSkipped
		default:
			span.SetAttributes(attribute.String("payroll.tx_hash", result.TxHash))
		}
		span.End()
		s.metrics.ObserveRun(status, started)
		s.writeJournal(ctx, logger, trigger, status, started, result, err)
	}()

	var recipients []model.Recipient
	err = s.step(ctx, recipientStep, func(ctx context.Context) error {
		var stepErr error
		recipients, stepErr = s.recipients.ActiveRecipients(ctx)
		return stepErr
	})
	if err != nil {
		return result, fmt.Errorf("load recipients: %w", err)
	}
	if len(recipients) == 0 {
		logger.Info("no active recipients, nothing to pay")
		return result, nil
	}
	result.RecipientCount = len(recipients)
	if result.TotalUnits, err = model.TotalAmount(recipients); err != nil {
		return result, err
	}

	var snap snapshot
	if err = s.step(ctx, snapshotStep, func(ctx context.Context) error {
		snap, err = s.snapshot(ctx)
		return err
	}); err != nil {
		return result, fmt.Errorf("fetch snapshot: %w", err)
	}
	logger.Info("snapshot fetched",
		zap.Int("utxos", len(snap.utxos)),
		zap.Uint64("tip", snap.tip),
		zap.Int("recipients", len(recipients)),
	)

	var draft *model.TransactionDraft
	if err = s.step(ctx, buildStep, func(context.Context) error {
		draft, err = s.builder.Build(snap.utxos, recipients, snap.params, snap.tip)
		return err
	}); err != nil {
		return result, fmt.Errorf("build transaction: %w", err)
	}
	result.FeeUnits = draft.Fee
	result.InputCount = len(draft.Inputs)
	result.TTL = draft.TTL

	var signed *model.SignedTransaction
	if err = s.step(ctx, signStep, func(context.Context) error {
		signed, err = s.signer.Sign(draft)
		return err
	}); err != nil {
		return result, fmt.Errorf("sign transaction: %w", err)
	}

	var hash string
	var unresolved error
	if err = s.step(ctx, submitStep, func(ctx context.Context) error {
		hash, err = s.submitter.Submit(ctx, signed)
		return err
	}); err != nil {
		if !errors.Is(err, model.ErrSubmissionUnknown) || hash == "" {
			return result, fmt.Errorf("submit transaction %s: %w", signed.Hash, err)
		}
		if !s.confirm(ctx, logger, hash) {
			unresolved = fmt.Errorf("submit transaction %s: %w", hash, err)
		}
		err = nil
	}
	result.TxHash = hash
	logger.Info("transaction submitted",
		zap.String("tx_hash", hash),
		zap.Uint64("fee", draft.Fee),
		zap.Uint64("total", result.TotalUnits),
		zap.Bool("change", draft.HasChange()),
		zap.Bool("outcome_known", unresolved == nil),
	)

	// The hash is recorded even when the caller has gone away: the
	// transaction may already be on chain.
	recordCtx := context.WithoutCancel(ctx)
	if err = s.step(recordCtx, recordStep, func(ctx context.Context) error {
		return s.record(ctx, logger, hash)
	}); err != nil {
		return result, errors.Join(fmt.Errorf("record transaction %s: %w", hash, err), unresolved)
	}
	if unresolved != nil {
		return result, unresolved
	}
	s.metrics.ObservePaid(result)
	s.publish(ctx, logger, result)

	return result, nil
}

// snapshot fetches UTXOs, parameters and tip concurrently.
func (s *RunnerService) snapshot(ctx context.Context) (snapshot, error) {
	var snap snapshot
	address := s.signer.Address()
	err := workerpool.Run(ctx,
		func(ctx context.Context) (err error) {
			snap.utxos, err = s.provider.UnspentOutputs(ctx, address)
			return err
		},
		func(ctx context.Context) (err error) {
			snap.params, err = s.provider.ProtocolParameters(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			snap.tip, err = s.provider.TipSlot(ctx)
			return err
		},
	)
	return snap, err
}

// confirm asks the ledger whether hash made it into a block after an
// ambiguous submission. A lookup error counts as unconfirmed.
func (s *RunnerService) confirm(ctx context.Context, logger *zap.Logger, hash string) bool {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.confirmTimeout)
	defer cancel()

	var info model.TransactionInfo
	err := s.step(ctx, confirmStep, func(ctx context.Context) (err error) {
		info, err = s.provider.Transaction(ctx, hash)
		return err
	})
	if err != nil {
		logger.Warn("submission outcome unknown, transaction not found on chain yet",
			zap.String("tx_hash", hash), zap.Error(err))
		return false
	}
	logger.Info("ambiguous submission confirmed on chain",
		zap.String("tx_hash", hash),
		zap.String("block", info.BlockHash),
		zap.Uint64("slot", info.Slot),
	)
	return true
}

// record writes the hash once. An existing row is the same transaction
// recorded by an earlier attempt and counts as success.
func (s *RunnerService) record(ctx context.Context, logger *zap.Logger, hash string) error {
	backoff := clock.Backoff{Initial: s.recordBackoff}
	for attempt := 1; ; attempt++ {
		status, err := s.txLog.RecordTransactionHash(ctx, hash)
		if err == nil {
			if status == model.RecordAlreadyExists {
				logger.Info("transaction hash already recorded", zap.String("tx_hash", hash), zap.Error(model.ErrPersistenceConflict))
			}
			return nil
		}
		if attempt >= s.recordAttempts {
			return err
		}
		logger.Warn("record transaction hash failed, retrying", zap.Error(err), zap.Int("attempt", attempt))
		if sleepErr := s.sleep(ctx, backoff.Next()); sleepErr != nil {
			return errors.Join(err, sleepErr)
		}
	}
}

func (s *RunnerService) publish(ctx context.Context, logger *zap.Logger, result model.RunResult) {
	if s.events == nil {
		return
	}
	event := model.TransactionSubmitted{
		RunID:          result.RunID,
		Network:        s.network,
		TxHash:         result.TxHash,
		FeeUnits:       result.FeeUnits,
		TotalUnits:     result.TotalUnits,
		RecipientCount: result.RecipientCount,
		TTL:            result.TTL,
		SubmittedAt:    s.now().UTC(),
	}
	if err := s.step(ctx, publishStep, func(ctx context.Context) error {
		return s.events.PublishSubmitted(ctx, event)
	}); err != nil {
		logger.Warn("publish submitted event failed", zap.Error(err))
	}
}

func (s *RunnerService) writeJournal(
	ctx context.Context,
	logger *zap.Logger,
	trigger model.TriggerSource,
	status model.RunStatus,
	started time.Time,
	result model.RunResult,
	runErr error,
) {
	if s.journal == nil {
		return
	}
	rec := model.RunRecord{
		RunID:      result.RunID,
		Network:    s.network,
		Trigger:    trigger,
		Status:     status,
		StartedAt:  started.UTC(),
		FinishedAt: s.now().UTC(),
		TxHash:     result.TxHash,
		FeeUnits:   result.FeeUnits,
		TotalUnits: result.TotalUnits,
	}
	var err error
	if rec.RecipientCount, err = safe.Uint32(result.RecipientCount); err != nil {
		logger.Warn("recipient count out of range", zap.Error(err))
	}
	if rec.InputCount, err = safe.Uint32(result.InputCount); err != nil {
		logger.Warn("input count out of range", zap.Error(err))
	}
	if runErr != nil {
		rec.Error = runErr.Error()
	}
	if err := s.journal.Record(context.WithoutCancel(ctx), rec); err != nil {
		logger.Warn("run journal write failed", zap.Error(err))
	}
}

// step runs fn inside a child span and records its duration.
func (s *RunnerService) step(ctx context.Context, name string, fn func(context.Context) error) error {
	started := s.now()
	ctx, span := s.tracer.Start(ctx, "payroll."+name)
	defer span.End()

	err := fn(ctx)
	s.metrics.ObserveStep(name, err, started)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
