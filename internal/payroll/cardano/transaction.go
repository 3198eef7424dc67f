package cardano

import (
	"encoding/hex"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
	"golang.org/x/crypto/blake2b"
)

const (
	// TxHashSize is the size of a transaction id.
	TxHashSize = 32
	// VKeySize is the size of an ed25519 verification key.
	VKeySize = 32
	// SignatureSize is the size of an ed25519 signature.
	SignatureSize = 64
)

// Input references an output being spent.
type Input struct {
	TxHash [TxHashSize]byte
	Index  uint32
}

// Output pays Coin lovelace to Address.
type Output struct {
	Address Address
	Coin    uint64
}

// Body is the signed part of a transaction.
type Body struct {
	Inputs  []Input
	Outputs []Output
	Fee     uint64
	TTL     uint64
}

// VKeyWitness is a verification key with its signature over the body hash.
type VKeyWitness struct {
	VKey      []byte
	Signature []byte
}

type wireInput struct {
	_      struct{} `cbor:",toarray"`
	TxHash []byte
	Index  uint32
}

type wireOutput struct {
	_       struct{} `cbor:",toarray"`
	Address []byte
	Coin    uint64
}

type wireBody struct {
	Inputs  []wireInput  `cbor:"0,keyasint"`
	Outputs []wireOutput `cbor:"1,keyasint"`
	Fee     uint64       `cbor:"2,keyasint"`
	TTL     uint64       `cbor:"3,keyasint,omitempty"`
}

type wireWitness struct {
	_         struct{} `cbor:",toarray"`
	VKey      []byte
	Signature []byte
}

type wireWitnessSet struct {
	VKeys []wireWitness `cbor:"0,keyasint,omitempty"`
}

type wireTransaction struct {
	_             struct{} `cbor:",toarray"`
	Body          cbor.RawMessage
	Witnesses     wireWitnessSet
	Valid         bool
	AuxiliaryData any
}

var encMode = mustEncMode()

func mustEncMode() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("cardano: cbor enc mode: %v", err))
	}
	return em
}

// ParseTxHash decodes a hex transaction id.
func ParseTxHash(s string) ([TxHashSize]byte, error) {
	var h [TxHashSize]byte
	raw, err := hex.DecodeString(s)
	if err != nil {
		return h, fmt.Errorf("%w: %w", ErrInvalidTxID, err)
	}
	if len(raw) != TxHashSize {
		return h, fmt.Errorf("%w: %d bytes", ErrInvalidTxID, len(raw))
	}
	copy(h[:], raw)
	return h, nil
}

// BodyFromDraft converts a draft into its ledger form.
func BodyFromDraft(d *model.TransactionDraft) (Body, error) {
	body := Body{
		Inputs:  make([]Input, 0, len(d.Inputs)),
		Outputs: make([]Output, 0, len(d.Outputs)),
		Fee:     d.Fee,
		TTL:     d.TTL,
	}
	for _, in := range d.Inputs {
		h, err := ParseTxHash(in.TxID)
		if err != nil {
			return Body{}, fmt.Errorf("input %s#%d: %w", in.TxID, in.Index, err)
		}
		body.Inputs = append(body.Inputs, Input{TxHash: h, Index: in.Index})
	}
	for i, out := range d.Outputs {
		addr, err := ParseAddress(out.Address)
		if err != nil {
			return Body{}, fmt.Errorf("output %d: %w", i, err)
		}
		body.Outputs = append(body.Outputs, Output{Address: addr, Coin: out.Amount})
	}
	return body, nil
}

// EncodeBody serializes the body.
func EncodeBody(b Body) ([]byte, error) {
	w := wireBody{
		Inputs:  make([]wireInput, 0, len(b.Inputs)),
		Outputs: make([]wireOutput, 0, len(b.Outputs)),
		Fee:     b.Fee,
		TTL:     b.TTL,
	}
	for _, in := range b.Inputs {
		hash := in.TxHash
		w.Inputs = append(w.Inputs, wireInput{TxHash: hash[:], Index: in.Index})
	}
	for _, out := range b.Outputs {
		w.Outputs = append(w.Outputs, toWireOutput(out))
	}
	raw, err := encMode.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("%w: body: %w", ErrEncode, err)
	}
	return raw, nil
}

// EncodeTransaction wraps an encoded body and its witnesses into a full transaction.
func EncodeTransaction(body []byte, witnesses []VKeyWitness) ([]byte, error) {
	tx := wireTransaction{
		Body:  cbor.RawMessage(body),
		Valid: true,
	}
	for _, w := range witnesses {
		tx.Witnesses.VKeys = append(tx.Witnesses.VKeys, wireWitness{VKey: w.VKey, Signature: w.Signature})
	}
	raw, err := encMode.Marshal(tx)
	if err != nil {
		return nil, fmt.Errorf("%w: transaction: %w", ErrEncode, err)
	}
	return raw, nil
}

// DecodeTransaction parses a full transaction.
func DecodeTransaction(raw []byte) (Body, []VKeyWitness, error) {
	var tx wireTransaction
	if err := cbor.Unmarshal(raw, &tx); err != nil {
		return Body{}, nil, fmt.Errorf("decode transaction: %w", err)
	}
	var w wireBody
	if err := cbor.Unmarshal(tx.Body, &w); err != nil {
		return Body{}, nil, fmt.Errorf("decode body: %w", err)
	}
	body := Body{Fee: w.Fee, TTL: w.TTL}
	for _, in := range w.Inputs {
		if len(in.TxHash) != TxHashSize {
			return Body{}, nil, fmt.Errorf("%w: %d bytes", ErrInvalidTxID, len(in.TxHash))
		}
		var h [TxHashSize]byte
		copy(h[:], in.TxHash)
		body.Inputs = append(body.Inputs, Input{TxHash: h, Index: in.Index})
	}
	for _, out := range w.Outputs {
		addr, err := AddressFromBytes(out.Address)
		if err != nil {
			return Body{}, nil, err
		}
		body.Outputs = append(body.Outputs, Output{Address: addr, Coin: out.Coin})
	}
	witnesses := make([]VKeyWitness, 0, len(tx.Witnesses.VKeys))
	for _, vk := range tx.Witnesses.VKeys {
		witnesses = append(witnesses, VKeyWitness{VKey: vk.VKey, Signature: vk.Signature})
	}
	return body, witnesses, nil
}

// BodyHash returns the transaction id: blake2b-256 of the encoded body.
func BodyHash(body []byte) [TxHashSize]byte {
	return blake2b.Sum256(body)
}

// PlaceholderWitness has the encoded size of a real ed25519 witness.
func PlaceholderWitness() VKeyWitness {
	return VKeyWitness{
		VKey:      make([]byte, VKeySize),
		Signature: make([]byte, SignatureSize),
	}
}

// SignedSize returns the serialized size of b once signed by witnessCount keys.
func SignedSize(b Body, witnessCount int) (uint64, error) {
	body, err := EncodeBody(b)
	if err != nil {
		return 0, err
	}
	witnesses := make([]VKeyWitness, witnessCount)
	for i := range witnesses {
		witnesses[i] = PlaceholderWitness()
	}
	raw, err := EncodeTransaction(body, witnesses)
	if err != nil {
		return 0, err
	}
	return uint64(len(raw)), nil
}

// OutputSize returns the serialized size of a single output.
func OutputSize(o Output) (uint64, error) {
	raw, err := encMode.Marshal(toWireOutput(o))
	if err != nil {
		return 0, fmt.Errorf("%w: output: %w", ErrEncode, err)
	}
	return uint64(len(raw)), nil
}

// CoinSize returns the serialized size of a coin value.
func CoinSize(coin uint64) (uint64, error) {
	raw, err := encMode.Marshal(coin)
	if err != nil {
		return 0, fmt.Errorf("%w: coin: %w", ErrEncode, err)
	}
	return uint64(len(raw)), nil
}

func toWireOutput(o Output) wireOutput {
	return wireOutput{Address: o.Address.Bytes(), Coin: o.Coin}
}
