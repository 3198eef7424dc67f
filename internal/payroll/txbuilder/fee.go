package txbuilder

import (
	"fmt"

	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/cardano"
	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
	"github.com/goodnatureofminers/utxopayroll-backend/pkg/safe"
)

// plan holds everything that stays fixed while fee and change are settled.
type plan struct {
	inputs  []cardano.Input
	outputs []cardano.Output
	change  cardano.Address
	ttl     uint64
	params  model.ProtocolParameters
}

// settlement is a resolved fee/change split and the signed size it produces.
// change == 0 means no change output.
type settlement struct {
	fee    uint64
	change uint64
	size   uint64
}

// settle splits available (inputs minus recipient total) into fee and change.
//
// Pass A sizes the draft with a change output whose value and the fee are both
// set to available, an upper bound on their encoded widths. If the remaining
// change reaches the minimum output value, pass B re-sizes with the real fee
// and change. Otherwise the change output is dropped and the whole remainder
// becomes the fee, which must still cover the smaller draft.
func (p plan) settle(available uint64) (settlement, error) {
	passA, err := p.measure(available, available, true)
	if err != nil {
		return settlement{}, err
	}
	if available > passA.fee {
		changeA := available - passA.fee
		minChange, err := p.minChange(changeA)
		if err != nil {
			return settlement{}, err
		}
		if changeA >= minChange {
			return p.keepChange(available, passA.fee)
		}
	}

	passC, err := p.measure(available, 0, false)
	if err != nil {
		return settlement{}, err
	}
	if available < passC.fee {
		return settlement{}, fmt.Errorf("%w: %d left for a fee of %d", model.ErrInsufficientFunds, available, passC.fee)
	}
	return settlement{fee: available, size: passC.size}, nil
}

// keepChange runs pass B. The pass A fee is always safe because pass B's
// encoded values are never wider than pass A's placeholders; the smaller pass B
// fee is used only when the draft it produces still satisfies both minimums.
func (p plan) keepChange(available, feeA uint64) (settlement, error) {
	safeDraft, err := p.measure(feeA, available-feeA, true)
	if err != nil {
		return settlement{}, err
	}
	fallback := settlement{fee: feeA, change: available - feeA, size: safeDraft.size}
	feeB := safeDraft.fee
	if feeB >= feeA {
		return fallback, nil
	}

	changeB := available - feeB
	final, err := p.measure(feeB, changeB, true)
	if err != nil {
		return settlement{}, err
	}
	minChange, err := p.minChange(changeB)
	if err != nil {
		return settlement{}, err
	}
	if final.fee > feeB || changeB < minChange {
		return fallback, nil
	}
	return settlement{fee: feeB, change: changeB, size: final.size}, nil
}

// measure encodes the draft for the given fee and change and returns the
// signed size with the minimum fee that size requires.
func (p plan) measure(fee, change uint64, withChange bool) (settlement, error) {
	body := p.body(fee, change, withChange)
	size, err := cardano.SignedSize(body, witnessCount)
	if err != nil {
		return settlement{}, err
	}
	minFee, err := MinFee(p.params, size)
	if err != nil {
		return settlement{}, err
	}
	return settlement{fee: minFee, change: change, size: size}, nil
}

func (p plan) body(fee, change uint64, withChange bool) cardano.Body {
	outputs := p.outputs
	if withChange {
		outputs = make([]cardano.Output, 0, len(p.outputs)+1)
		outputs = append(outputs, p.outputs...)
		outputs = append(outputs, cardano.Output{Address: p.change, Coin: change})
	}
	return cardano.Body{
		Inputs:  p.inputs,
		Outputs: outputs,
		Fee:     fee,
		TTL:     p.ttl,
	}
}

func (p plan) minChange(change uint64) (uint64, error) {
	size, err := cardano.OutputSize(cardano.Output{Address: p.change, Coin: change})
	if err != nil {
		return 0, err
	}
	return MinOutputValue(p.params, size)
}

// checkLimits rejects drafts the ledger would refuse to deserialize.
func (p plan) checkLimits(s settlement) error {
	if s.size > p.params.MaxTxSizeBytes {
		return fmt.Errorf("%w: transaction is %d bytes, limit %d", model.ErrSerializationLimitExceeded, s.size, p.params.MaxTxSizeBytes)
	}
	if p.params.MaxOutputValueSizeBytes == 0 {
		return nil
	}
	values := make([]uint64, 0, len(p.outputs)+1)
	for _, o := range p.outputs {
		values = append(values, o.Coin)
	}
	if s.change > 0 {
		values = append(values, s.change)
	}
	for i, v := range values {
		size, err := cardano.CoinSize(v)
		if err != nil {
			return err
		}
		if size > p.params.MaxOutputValueSizeBytes {
			return fmt.Errorf("%w: output %d value is %d bytes, limit %d", model.ErrSerializationLimitExceeded, i, size, p.params.MaxOutputValueSizeBytes)
		}
	}
	return nil
}

// MinFee returns feeCoefficientA * size + feeCoefficientB.
func MinFee(params model.ProtocolParameters, size uint64) (uint64, error) {
	variable, err := safe.Mul(params.FeeCoefficientA, size)
	if err != nil {
		return 0, fmt.Errorf("%w: fee: %w", model.ErrAmountOverflow, err)
	}
	fee, err := safe.Add(variable, params.FeeCoefficientB)
	if err != nil {
		return 0, fmt.Errorf("%w: fee: %w", model.ErrAmountOverflow, err)
	}
	return fee, nil
}

// MinOutputValue returns the smallest value an output of outputSize bytes may carry.
func MinOutputValue(params model.ProtocolParameters, outputSize uint64) (uint64, error) {
	v, err := safe.Mul(params.MinUTXOValuePerByte, ChangeEntryOverhead+outputSize)
	if err != nil {
		return 0, fmt.Errorf("%w: min output: %w", model.ErrAmountOverflow, err)
	}
	return v, nil
}
