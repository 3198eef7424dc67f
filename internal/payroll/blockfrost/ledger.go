package blockfrost

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
)

const lovelaceUnit = "lovelace"

// quantity decodes Blockfrost integers that arrive either as JSON numbers or strings.
type quantity uint64

func (q *quantity) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*q = 0
		return nil
	}
	v, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("quantity %q: %w", b, err)
	}
	*q = quantity(v)
	return nil
}

type amount struct {
	Unit     string   `json:"unit"`
	Quantity quantity `json:"quantity"`
}

type utxo struct {
	TxHash      string   `json:"tx_hash"`
	OutputIndex uint32   `json:"output_index"`
	Amount      []amount `json:"amount"`
}

type protocolParameters struct {
	MinFeeA          quantity `json:"min_fee_a"`
	MinFeeB          quantity `json:"min_fee_b"`
	MaxTxSize        quantity `json:"max_tx_size"`
	MaxValSize       quantity `json:"max_val_size"`
	CoinsPerUTXOSize quantity `json:"coins_per_utxo_size"`
}

type block struct {
	Hash   string    `json:"hash"`
	Height *quantity `json:"height"`
	Slot   *quantity `json:"slot"`
	Epoch  *quantity `json:"epoch"`
}

type transaction struct {
	Hash          string   `json:"hash"`
	Block         string   `json:"block"`
	BlockHeight   quantity `json:"block_height"`
	BlockTime     int64    `json:"block_time"`
	Slot          quantity `json:"slot"`
	OutputAmount  []amount `json:"output_amount"`
	Fees          quantity `json:"fees"`
	Size          quantity `json:"size"`
	ValidContract bool     `json:"valid_contract"`
}

type health struct {
	IsHealthy bool `json:"is_healthy"`
}

// UnspentOutputs returns the coin-only UTXOs of address. Outputs carrying
// native assets are skipped; an unknown address has no outputs.
func (c *Client) UnspentOutputs(ctx context.Context, address string) (result []model.UnspentOutput, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("unspent_outputs", err, started)
	}()

	path := "/addresses/" + url.PathEscape(address) + "/utxos"
	for page := 1; ; page++ {
		var batch []utxo
		query := url.Values{
			"page":  {strconv.Itoa(page)},
			"count": {strconv.Itoa(pageSize)},
		}
		if err := c.get(ctx, path, query, &batch); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return result, nil
			}
			return nil, err
		}
		for _, u := range batch {
			value, ok := coinOnly(u.Amount)
			if !ok {
				continue
			}
			if _, err := hex.DecodeString(u.TxHash); err != nil {
				return nil, fmt.Errorf("%w: utxo hash %q", ErrInvalidResponse, u.TxHash)
			}
			result = append(result, model.UnspentOutput{TxID: u.TxHash, Index: u.OutputIndex, Value: value})
		}
		if len(batch) < pageSize {
			return result, nil
		}
	}
}

// AddressBalance returns the coin-only balance and UTXOs of address.
func (c *Client) AddressBalance(ctx context.Context, address string) (model.AddressBalance, error) {
	utxos, err := c.UnspentOutputs(ctx, address)
	if err != nil {
		return model.AddressBalance{}, err
	}
	total, err := model.TotalValue(utxos)
	if err != nil {
		return model.AddressBalance{}, err
	}
	return model.AddressBalance{Address: address, Units: total, UTXOs: utxos}, nil
}

func coinOnly(amounts []amount) (uint64, bool) {
	var value uint64
	found := false
	for _, a := range amounts {
		if a.Unit != lovelaceUnit {
			return 0, false
		}
		value = uint64(a.Quantity)
		found = true
	}
	return value, found
}

// ProtocolParameters returns the fee and size parameters of the latest epoch.
func (c *Client) ProtocolParameters(ctx context.Context) (params model.ProtocolParameters, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("protocol_parameters", err, started)
	}()

	var p protocolParameters
	if err := c.get(ctx, "/epochs/latest/parameters", nil, &p); err != nil {
		return model.ProtocolParameters{}, err
	}
	params = model.ProtocolParameters{
		FeeCoefficientA:         uint64(p.MinFeeA),
		FeeCoefficientB:         uint64(p.MinFeeB),
		MaxTxSizeBytes:          uint64(p.MaxTxSize),
		MaxOutputValueSizeBytes: uint64(p.MaxValSize),
		MinUTXOValuePerByte:     uint64(p.CoinsPerUTXOSize),
	}
	if params.MaxTxSizeBytes == 0 || params.MinUTXOValuePerByte == 0 {
		return model.ProtocolParameters{}, fmt.Errorf("%w: incomplete protocol parameters", ErrInvalidResponse)
	}
	return params, nil
}

// TipSlot returns the slot of the latest block.
func (c *Client) TipSlot(ctx context.Context) (slot uint64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("tip_slot", err, started)
	}()

	var b block
	if err := c.get(ctx, "/blocks/latest", nil, &b); err != nil {
		return 0, err
	}
	if b.Slot == nil {
		return 0, fmt.Errorf("%w: latest block has no slot", ErrInvalidResponse)
	}
	return uint64(*b.Slot), nil
}

// NetworkInfo returns the latest block together with the provider health.
func (c *Client) NetworkInfo(ctx context.Context) (info model.NetworkInfo, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("network_info", err, started)
	}()

	var b block
	if err := c.get(ctx, "/blocks/latest", nil, &b); err != nil {
		return model.NetworkInfo{}, err
	}
	var h health
	if err := c.get(ctx, "/health", nil, &h); err != nil {
		return model.NetworkInfo{}, err
	}
	info = model.NetworkInfo{
		Network:   c.network,
		BlockHash: b.Hash,
		Healthy:   h.IsHealthy,
	}
	if b.Height != nil {
		info.BlockHeight = uint64(*b.Height)
	}
	if b.Slot != nil {
		info.Slot = uint64(*b.Slot)
	}
	if b.Epoch != nil {
		info.Epoch = uint64(*b.Epoch)
	}
	return info, nil
}

// Transaction looks up a transaction that made it into a block. A hash the
// ledger has not seen yields model.ErrNotFound.
func (c *Client) Transaction(ctx context.Context, hash string) (info model.TransactionInfo, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("transaction", err, started)
	}()

	if _, err := hex.DecodeString(hash); err != nil || len(hash) != 64 {
		return model.TransactionInfo{}, fmt.Errorf("%w: transaction hash %q", model.ErrInvalidInput, hash)
	}
	var tx transaction
	if err := c.get(ctx, "/txs/"+hash, nil, &tx); err != nil {
		return model.TransactionInfo{}, err
	}
	info = model.TransactionInfo{
		Hash:        tx.Hash,
		BlockHash:   tx.Block,
		BlockHeight: uint64(tx.BlockHeight),
		Slot:        uint64(tx.Slot),
		FeeUnits:    uint64(tx.Fees),
		SizeBytes:   uint64(tx.Size),
		Valid:       tx.ValidContract,
	}
	if tx.BlockTime > 0 {
		info.BlockTime = time.Unix(tx.BlockTime, 0).UTC()
	}
	for _, a := range tx.OutputAmount {
		if a.Unit == lovelaceUnit {
			info.OutputUnits = uint64(a.Quantity)
		}
	}
	return info, nil
}

// SubmitTransaction posts a signed transaction and returns the hash the network assigned.
func (c *Client) SubmitTransaction(ctx context.Context, tx []byte) (hash string, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("submit_transaction", err, started)
	}()

	if err := c.postCBOR(ctx, "/tx/submit", tx, &hash); err != nil {
		return "", err
	}
	return hash, nil
}
