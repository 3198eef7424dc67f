package clickhouse

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
	"github.com/goodnatureofminers/utxopayroll-backend/pkg/batcher"
	"go.uber.org/zap"
)

// Journal queues run records and writes them to ClickHouse in batches.
type Journal struct {
	batcher *batcher.Batcher[model.RunRecord]
}

func NewJournal(writer RunWriter, cfg batcher.Config, logger *zap.Logger) (*Journal, error) {
	if writer == nil {
		return nil, errors.New("journal writer is required")
	}
	return &Journal{
		batcher: batcher.New(logger.Named("run_journal"), writer.InsertRuns, cfg),
	}, nil
}

// Start begins background flushing.
func (j *Journal) Start(ctx context.Context) {
	j.batcher.Start(ctx)
}

// Stop flushes queued records and waits for the writer.
func (j *Journal) Stop() {
	j.batcher.Stop()
}

// Record queues a run record.
func (j *Journal) Record(ctx context.Context, record model.RunRecord) error {
	return j.batcher.Add(ctx, record)
}
