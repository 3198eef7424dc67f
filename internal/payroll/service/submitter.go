package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/utxopayroll-backend/internal/clock"
	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
	"go.uber.org/zap"
)

// SubmitterConfig tunes submission retries. Zero values take defaults.
type SubmitterConfig struct {
	MaxAttempts    int
	Backoff        time.Duration
	MaxBackoff     time.Duration
	AttemptTimeout time.Duration
}

// SubmitterService sends signed transactions and classifies the outcome.
type SubmitterService struct {
	logger         *zap.Logger
	transport      Transport
	metrics        SubmitterMetrics
	sleep          func(context.Context, time.Duration) error
	maxAttempts    int
	backoff        time.Duration
	maxBackoff     time.Duration
	attemptTimeout time.Duration
}

// NewSubmitterService builds a SubmitterService with dependencies.
func NewSubmitterService(
	transport Transport,
	metrics SubmitterMetrics,
	cfg SubmitterConfig,
	logger *zap.Logger,
) (*SubmitterService, error) {
	if transport == nil {
		return nil, errors.New("submitter transport is required")
	}
	if metrics == nil {
		return nil, errors.New("submitter metrics is required")
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultSubmitAttempts
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = defaultSubmitBackoff
	}
	if cfg.MaxBackoff < cfg.Backoff {
		cfg.MaxBackoff = max(defaultSubmitMaxBackoff, cfg.Backoff)
	}
	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = defaultSubmitAttemptTimeout
	}
	return &SubmitterService{
		logger:         logger,
		transport:      transport,
		metrics:        metrics,
		sleep:          clock.SleepWithContext,
		maxAttempts:    cfg.MaxAttempts,
		backoff:        cfg.Backoff,
		maxBackoff:     cfg.MaxBackoff,
		attemptTimeout: cfg.AttemptTimeout,
	}, nil
}

// Submit sends tx and returns its hash. Transient failures resend the same
// bytes; a duplicate is success; a rejection on the first contact is returned
// immediately so the caller can rebuild from a fresh snapshot.
//
// Once any attempt has failed transiently the network may already hold the
// transaction, so a later rejection, exhausted retries or cancellation return
// the local hash together with model.ErrSubmissionUnknown.
func (s *SubmitterService) Submit(ctx context.Context, tx *model.SignedTransaction) (string, error) {
	if tx == nil || len(tx.Bytes) == 0 {
		return "", fmt.Errorf("%w: empty transaction", model.ErrInvalidInput)
	}
	logger := s.logger.With(zap.String("tx_hash", tx.Hash))

	backoff := clock.Backoff{Initial: s.backoff, Max: s.maxBackoff}
	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		hash, err := s.attempt(ctx, tx.Bytes)
		s.metrics.ObserveAttempt(err)

		switch {
		case err == nil:
			if hash == "" {
				return tx.Hash, nil
			}
			if !strings.EqualFold(hash, tx.Hash) {
				logger.Warn("network hash differs from local hash", zap.String("network_hash", hash))
			}
			return hash, nil
		case errors.Is(err, model.ErrAlreadyKnown):
			logger.Info("transaction already known to the network", zap.Int("attempt", attempt))
			return tx.Hash, nil
		case errors.Is(err, model.ErrNetworkTransient):
			lastErr = err
			if attempt == s.maxAttempts {
				break
			}
			delay := backoff.Next()
			logger.Warn("submit failed, retrying",
				zap.Error(err),
				zap.Int("attempt", attempt),
				zap.Duration("sleep", delay),
			)
			if sleepErr := s.sleep(ctx, delay); sleepErr != nil {
				return tx.Hash, fmt.Errorf("%w: %w: %w", model.ErrSubmissionUnknown, err, sleepErr)
			}
		case lastErr != nil:
			logger.Warn("transaction rejected after a transient failure, outcome unknown",
				zap.Error(err),
				zap.NamedError("transient", lastErr),
				zap.Int("attempt", attempt),
			)
			return tx.Hash, fmt.Errorf("%w: %w", model.ErrSubmissionUnknown, err)
		default:
			logger.Error("transaction rejected", zap.Error(err), zap.Int("attempt", attempt))
			return "", err
		}
	}
	return tx.Hash, fmt.Errorf("%w: submit gave up after %d attempts: %w", model.ErrSubmissionUnknown, s.maxAttempts, lastErr)
}

func (s *SubmitterService) attempt(ctx context.Context, raw []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.attemptTimeout)
	defer cancel()
	return s.transport.SubmitTransaction(ctx, raw)
}
