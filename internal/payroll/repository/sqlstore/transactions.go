package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
)

const defaultTransactionsLimit = 100

// Transactions lists recorded hashes, newest first.
func (r *Repository) Transactions(ctx context.Context, limit int) ([]model.TransactionRecord, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transactions", err, start)
	}()

	if limit <= 0 {
		limit = defaultTransactionsLimit
	}

	const query = `
SELECT id, tx_hash, created_at
FROM payroll_transactions
ORDER BY id DESC
LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		err = fmt.Errorf("query transactions: %w", err)
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	records := make([]model.TransactionRecord, 0)
	for rows.Next() {
		var (
			rec     model.TransactionRecord
			created int64
		)
		if err = rows.Scan(&rec.ID, &rec.Hash, &created); err != nil {
			err = fmt.Errorf("scan transaction: %w", err)
			return nil, err
		}
		rec.RecordedAt = time.Unix(created, 0).UTC()
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		err = fmt.Errorf("iterate transactions: %w", err)
		return nil, err
	}
	return records, nil
}
