package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
)

// RecordTransactionHash stores hash once. A second insert of the same hash is
// reported as model.RecordAlreadyExists instead of an error.
func (r *Repository) RecordTransactionHash(ctx context.Context, hash string) (model.RecordStatus, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("record_transaction_hash", err, start)
	}()

	if hash == "" {
		err = errors.New("transaction hash is required")
		return "", err
	}

	query := r.insertIgnore() + ` INTO payroll_transactions (tx_hash, created_at) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, query, hash, r.now().Unix())
	if err != nil {
		err = fmt.Errorf("insert transaction hash: %w", err)
		return "", err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		err = fmt.Errorf("transaction hash rows affected: %w", err)
		return "", err
	}
	if affected == 0 {
		return model.RecordAlreadyExists, nil
	}
	return model.RecordInserted, nil
}
