package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
)

const defaultRunsLimit = 50

const runsQuery = `
SELECT
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
FROM payroll_runs FINAL
WHERE network = ?
ORDER BY started_at DESC
LIMIT ?`

// Runs returns the most recent journal rows of network, newest first.
func (r *Repository) Runs(ctx context.Context, network model.Network, limit int) ([]model.RunRecord, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("runs", err, start)
	}()

	if limit <= 0 {
		limit = defaultRunsLimit
	}

	rows, err := r.conn.Query(ctx, runsQuery, string(network), limit)
	if err != nil {
		err = fmt.Errorf("query runs: %w", err)
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	runs := make([]model.RunRecord, 0)
	for rows.Next() {
		var (
			run                       model.RunRecord
			networkName, trigger, sts string
		)
		if err = rows.Scan(
			&run.RunID,
			&networkName,
			&trigger,
			&sts,
			&run.StartedAt,
			&run.FinishedAt,
			&run.TxHash,
			&run.FeeUnits,
			&run.TotalUnits,
			&run.RecipientCount,
			&run.InputCount,
			&run.Error,
		); err != nil {
			err = fmt.Errorf("scan run: %w", err)
			return nil, err
		}
		run.Network = model.Network(networkName)
		run.Trigger = model.TriggerSource(trigger)
		run.Status = model.RunStatus(sts)
		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		err = fmt.Errorf("iterate runs: %w", err)
		return nil, err
	}
	return runs, nil
}
