package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
)

const insertRunsQuery = `
INSERT INTO payroll_runs (
	run_id,
	network,
	trigger,
	status,
	started_at,
	finished_at,
	tx_hash,
	fee,
	total,
	recipient_count,
	input_count,
	error
) VALUES`

// InsertRuns stores run journal rows in one batch.
func (r *Repository) InsertRuns(ctx context.Context, runs []model.RunRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_runs", err, start)
	}()

	if len(runs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertRunsQuery)
	if err != nil {
		err = fmt.Errorf("prepare runs batch: %w", err)
		return err
	}

	for _, run := range runs {
		if err = batch.Append(
			run.RunID,
			string(run.Network),
			string(run.Trigger),
			string(run.Status),
			run.StartedAt,
			run.FinishedAt,
			run.TxHash,
			run.FeeUnits,
			run.TotalUnits,
			run.RecipientCount,
			run.InputCount,
			run.Error,
		); err != nil {
			err = fmt.Errorf("append run %s: %w", run.RunID, err)
			return err
		}
	}

	if err = batch.Send(); err != nil {
		err = fmt.Errorf("insert runs: %w", err)
		return err
	}
	return nil
}
