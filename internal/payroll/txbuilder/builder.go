// Package txbuilder assembles balanced, size-bounded payroll transactions.
package txbuilder

import (
	"fmt"

	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/cardano"
	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
	"github.com/goodnatureofminers/utxopayroll-backend/pkg/safe"
)

// ChangeEntryOverhead is the per-entry byte overhead the ledger adds to an
// output's size when computing its minimum value.
const ChangeEntryOverhead = 160

// witnessCount is fixed: one funding key signs every payroll transaction.
const witnessCount = 1

// Builder turns a UTXO snapshot and recipient list into a TransactionDraft.
type Builder struct {
	changeAddress  cardano.Address
	networkID      byte
	validityWindow uint64
}

// New returns a builder paying change to changeAddress on network.
func New(network model.Network, changeAddress string, validityWindow uint64) (*Builder, error) {
	networkID, err := network.ID()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrInvalidInput, err)
	}
	addr, err := cardano.ParseAddress(changeAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: change address: %w", model.ErrInvalidInput, err)
	}
	if err := addr.CheckNetwork(networkID); err != nil {
		return nil, fmt.Errorf("%w: change address: %w", model.ErrInvalidInput, err)
	}
	if validityWindow == 0 {
		return nil, fmt.Errorf("%w: validity window must be positive", model.ErrInvalidInput)
	}
	return &Builder{
		changeAddress:  addr,
		networkID:      networkID,
		validityWindow: validityWindow,
	}, nil
}

// ChangeAddress returns the bech32 address that receives change.
func (b *Builder) ChangeAddress() string {
	return b.changeAddress.String()
}

// Build consumes every UTXO in utxos, pays recipients in order and returns a
// draft with sum(inputs) == sum(outputs) + fee.
func (b *Builder) Build(
	utxos []model.UnspentOutput,
	recipients []model.Recipient,
	params model.ProtocolParameters,
	tip uint64,
) (*model.TransactionDraft, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}
	outputs, err := b.recipientOutputs(recipients)
	if err != nil {
		return nil, err
	}
	if len(utxos) == 0 {
		return nil, fmt.Errorf("%w: no spendable outputs", model.ErrInsufficientFunds)
	}
	inputs, err := toInputs(utxos)
	if err != nil {
		return nil, err
	}

	totalIn, err := model.TotalValue(utxos)
	if err != nil {
		return nil, err
	}
	totalOut, err := model.TotalAmount(recipients)
	if err != nil {
		return nil, err
	}
	if totalIn < totalOut {
		return nil, fmt.Errorf("%w: available %d, required %d", model.ErrInsufficientFunds, totalIn, totalOut)
	}
	ttl, err := safe.Add(tip, b.validityWindow)
	if err != nil {
		return nil, fmt.Errorf("%w: ttl: %w", model.ErrInvalidInput, err)
	}

	p := plan{
		inputs:  inputs,
		outputs: outputs,
		change:  b.changeAddress,
		ttl:     ttl,
		params:  params,
	}
	s, err := p.settle(totalIn - totalOut)
	if err != nil {
		return nil, err
	}
	if err := p.checkLimits(s); err != nil {
		return nil, err
	}

	draft := &model.TransactionDraft{
		Inputs:      append([]model.UnspentOutput(nil), utxos...),
		Outputs:     make([]model.TransactionOutput, 0, len(outputs)+1),
		Fee:         s.fee,
		TTL:         ttl,
		ChangeIndex: -1,
	}
	for _, o := range outputs {
		draft.Outputs = append(draft.Outputs, model.TransactionOutput{Address: o.Address.String(), Amount: o.Coin})
	}
	if s.change > 0 {
		draft.ChangeIndex = len(draft.Outputs)
		draft.Outputs = append(draft.Outputs, model.TransactionOutput{Address: b.changeAddress.String(), Amount: s.change})
	}
	if err := draft.CheckBalance(); err != nil {
		return nil, err
	}
	return draft, nil
}

func (b *Builder) recipientOutputs(recipients []model.Recipient) ([]cardano.Output, error) {
	if len(recipients) == 0 {
		return nil, fmt.Errorf("%w: no recipients", model.ErrInvalidInput)
	}
	outputs := make([]cardano.Output, 0, len(recipients))
	for i, r := range recipients {
		if r.Amount == 0 {
			return nil, fmt.Errorf("%w: recipient %d has zero amount", model.ErrInvalidInput, i)
		}
		addr, err := cardano.ParseAddress(r.Address)
		if err != nil {
			return nil, fmt.Errorf("%w: recipient %d: %w", model.ErrInvalidInput, i, err)
		}
		if err := addr.CheckNetwork(b.networkID); err != nil {
			return nil, fmt.Errorf("%w: recipient %d: %w", model.ErrInvalidInput, i, err)
		}
		outputs = append(outputs, cardano.Output{Address: addr, Coin: r.Amount})
	}
	return outputs, nil
}

func toInputs(utxos []model.UnspentOutput) ([]cardano.Input, error) {
	inputs := make([]cardano.Input, 0, len(utxos))
	for _, u := range utxos {
		hash, err := cardano.ParseTxHash(u.TxID)
		if err != nil {
			return nil, fmt.Errorf("%w: utxo %s#%d: %w", model.ErrInvalidInput, u.TxID, u.Index, err)
		}
		inputs = append(inputs, cardano.Input{TxHash: hash, Index: u.Index})
	}
	return inputs, nil
}

func validateParams(p model.ProtocolParameters) error {
	if p.MaxTxSizeBytes == 0 {
		return fmt.Errorf("%w: max tx size is zero", model.ErrInvalidInput)
	}
	if p.MinUTXOValuePerByte == 0 {
		return fmt.Errorf("%w: min utxo value per byte is zero", model.ErrInvalidInput)
	}
	return nil
}
