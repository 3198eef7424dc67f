package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
)

const recipientColumns = `id, address, amount, active, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecipient(row scanner) (model.StoredRecipient, error) {
	var (
		rec     model.StoredRecipient
		created int64
	)
	if err := row.Scan(&rec.ID, &rec.Address, &rec.Amount, &rec.Active, &created); err != nil {
		return model.StoredRecipient{}, err
	}
	rec.CreatedAt = time.Unix(created, 0).UTC()
	return rec, nil
}

// ListRecipients returns every recipient ordered by id.
func (r *Repository) ListRecipients(ctx context.Context) ([]model.StoredRecipient, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("list_recipients", err, start)
	}()

	rows, err := r.db.QueryContext(ctx, `SELECT `+recipientColumns+` FROM payroll_recipients ORDER BY id`)
	if err != nil {
		err = fmt.Errorf("query recipients: %w", err)
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	recipients := make([]model.StoredRecipient, 0)
	for rows.Next() {
		rec, scanErr := scanRecipient(rows)
		if scanErr != nil {
			err = fmt.Errorf("scan recipient: %w", scanErr)
			return nil, err
		}
		recipients = append(recipients, rec)
	}
	if err = rows.Err(); err != nil {
		err = fmt.Errorf("iterate recipients: %w", err)
		return nil, err
	}
	return recipients, nil
}

// ActiveRecipients returns the payout list of a run, ordered by id so the
// transaction output order is stable between runs.
func (r *Repository) ActiveRecipients(ctx context.Context) ([]model.Recipient, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("active_recipients", err, start)
	}()

	const query = `
SELECT address, amount
FROM payroll_recipients
WHERE active = 1
ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err = fmt.Errorf("query active recipients: %w", err)
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var recipients []model.Recipient
	for rows.Next() {
		var rec model.Recipient
		if err = rows.Scan(&rec.Address, &rec.Amount); err != nil {
			err = fmt.Errorf("scan active recipient: %w", err)
			return nil, err
		}
		recipients = append(recipients, rec)
	}
	if err = rows.Err(); err != nil {
		err = fmt.Errorf("iterate active recipients: %w", err)
		return nil, err
	}
	return recipients, nil
}

// GetRecipient loads one recipient or returns model.ErrNotFound.
func (r *Repository) GetRecipient(ctx context.Context, id int64) (model.StoredRecipient, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("get_recipient", err, start)
	}()

	row := r.db.QueryRowContext(ctx, `SELECT `+recipientColumns+` FROM payroll_recipients WHERE id = ?`, id)
	rec, err := scanRecipient(row)
	if errors.Is(err, sql.ErrNoRows) {
		err = fmt.Errorf("recipient %d: %w", id, model.ErrNotFound)
		return model.StoredRecipient{}, err
	}
	if err != nil {
		err = fmt.Errorf("get recipient %d: %w", id, err)
		return model.StoredRecipient{}, err
	}
	return rec, nil
}

// CountRecipients returns the number of stored recipients.
func (r *Repository) CountRecipients(ctx context.Context) (int, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("count_recipients", err, start)
	}()

	var count int
	if err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM payroll_recipients`).Scan(&count); err != nil {
		err = fmt.Errorf("count recipients: %w", err)
		return 0, err
	}
	return count, nil
}

// CreateRecipient inserts an active recipient.
func (r *Repository) CreateRecipient(ctx context.Context, recipient model.Recipient) (model.StoredRecipient, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("create_recipient", err, start)
	}()

	created := r.now().UTC().Truncate(time.Second)
	const query = `INSERT INTO payroll_recipients (address, amount, active, created_at) VALUES (?, ?, 1, ?)`
	res, err := r.db.ExecContext(ctx, query, recipient.Address, recipient.Amount, created.Unix())
	if err != nil {
		err = fmt.Errorf("insert recipient: %w", err)
		return model.StoredRecipient{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		err = fmt.Errorf("recipient insert id: %w", err)
		return model.StoredRecipient{}, err
	}
	return model.StoredRecipient{
		ID:        id,
		Address:   recipient.Address,
		Amount:    recipient.Amount,
		Active:    true,
		CreatedAt: created,
	}, nil
}

// UpdateRecipient applies the non-nil fields of update and returns the stored row.
func (r *Repository) UpdateRecipient(ctx context.Context, id int64, update model.RecipientUpdate) (model.StoredRecipient, error) {
	if update.Empty() {
		return r.GetRecipient(ctx, id)
	}

	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("update_recipient", err, start)
	}()

	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)
	if update.Address != nil {
		sets = append(sets, "address = ?")
		args = append(args, *update.Address)
	}
	if update.Amount != nil {
		sets = append(sets, "amount = ?")
		args = append(args, *update.Amount)
	}
	if update.Active != nil {
		sets = append(sets, "active = ?")
		args = append(args, boolInt(*update.Active))
	}
	args = append(args, id)

	query := `UPDATE payroll_recipients SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		err = fmt.Errorf("update recipient %d: %w", id, err)
		return model.StoredRecipient{}, err
	}

	// MySQL reports zero affected rows for an unchanged row, so existence is
	// checked by reading it back.
	rec, getErr := r.GetRecipient(ctx, id)
	if getErr != nil {
		err = getErr
		return model.StoredRecipient{}, err
	}
	return rec, nil
}

// DeleteRecipient removes a recipient or returns model.ErrNotFound.
func (r *Repository) DeleteRecipient(ctx context.Context, id int64) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("delete_recipient", err, start)
	}()

	res, err := r.db.ExecContext(ctx, `DELETE FROM payroll_recipients WHERE id = ?`, id)
	if err != nil {
		err = fmt.Errorf("delete recipient %d: %w", id, err)
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		err = fmt.Errorf("delete recipient rows affected: %w", err)
		return err
	}
	if affected == 0 {
		err = fmt.Errorf("recipient %d: %w", id, model.ErrNotFound)
		return err
	}
	return nil
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
