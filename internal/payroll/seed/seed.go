// Package seed loads an initial recipient list from a TOML file.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/cardano"
	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Store interface {
		CountRecipients(ctx context.Context) (int, error)
		CreateRecipient(ctx context.Context, recipient model.Recipient) (model.StoredRecipient, error)
	}
)

type file struct {
	Recipients []entry `toml:"recipients"`
}

type entry struct {
	Address string `toml:"address"`
	Amount  uint64 `toml:"amount"`
}

// Load reads and validates a seed file.
func Load(path string, network model.Network) ([]model.Recipient, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Decode(f, network)
}

// Decode parses seed TOML. Every address must belong to network and every
// amount must be positive lovelace.
func Decode(r io.Reader, network model.Network) ([]model.Recipient, error) {
	var doc file
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: seed: %s", model.ErrInvalidInput, strict.String())
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	recipients := make([]model.Recipient, 0, len(doc.Recipients))
	for i, e := range doc.Recipients {
		if e.Amount == 0 {
			return nil, fmt.Errorf("%w: seed recipient %d has zero amount", model.ErrInvalidInput, i)
		}
		if _, err := cardano.ParseNetworkAddress(e.Address, network); err != nil {
			return nil, fmt.Errorf("%w: seed recipient %d: %v", model.ErrInvalidInput, i, err)
		}
		recipients = append(recipients, model.Recipient{Address: e.Address, Amount: e.Amount})
	}
	return recipients, nil
}

// Apply inserts recipients when the store holds none and returns how many
// were inserted. A populated store is left untouched.
func Apply(ctx context.Context, store Store, recipients []model.Recipient, logger *zap.Logger) (int, error) {
	count, err := store.CountRecipients(ctx)
	if err != nil {
		return 0, fmt.Errorf("count recipients: %w", err)
	}
	if count > 0 {
		logger.Info("recipients already present, seed skipped", zap.Int("count", count))
		return 0, nil
	}

	for i, r := range recipients {
		if _, err := store.CreateRecipient(ctx, r); err != nil {
			return i, fmt.Errorf("seed recipient %s: %w", r.Address, err)
		}
	}
	logger.Info("recipients seeded", zap.Int("count", len(recipients)))
	return len(recipients), nil
}
