// Package signer witnesses payroll transactions with the funding key.
package signer

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/cardano"
	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
)

// cborBytes32 is the CBOR header of a 32-byte string, as found in cardano-cli .skey cborHex.
const cborBytes32 = "5820"

// Signer holds the single funding key.
type Signer struct {
	key     ed25519.PrivateKey
	vkey    ed25519.PublicKey
	address cardano.Address
}

// New parses a hex ed25519 seed and checks it controls fundingAddress.
func New(seedHex, fundingAddress string) (*Signer, error) {
	seed, err := ParseSeed(seedHex)
	if err != nil {
		return nil, err
	}
	addr, err := cardano.ParseAddress(fundingAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: funding address: %w", model.ErrSigning, err)
	}
	return FromSeed(seed, addr)
}

// FromSeed builds a signer from a raw 32-byte seed.
func FromSeed(seed []byte, fundingAddress cardano.Address) (*Signer, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: seed is %d bytes", model.ErrSigning, len(seed))
	}
	key := ed25519.NewKeyFromSeed(seed)
	vkey := key.Public().(ed25519.PublicKey)

	hash, err := cardano.KeyHash(vkey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrSigning, err)
	}
	if !fundingAddress.IsKeyPayment() || !bytes.Equal(hash, fundingAddress.PaymentCredential()) {
		return nil, fmt.Errorf("%w: key does not match the payment credential of %s", model.ErrSigning, fundingAddress)
	}
	return &Signer{key: key, vkey: vkey, address: fundingAddress}, nil
}

// ParseSeed accepts a bare 64-char hex seed or a cardano-cli cborHex value.
func ParseSeed(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if len(s) == 2*(ed25519.SeedSize+2) && strings.HasPrefix(s, cborBytes32) {
		s = s[len(cborBytes32):]
	}
	seed, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: seed: %w", model.ErrSigning, err)
	}
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: seed is %d bytes", model.ErrSigning, len(seed))
	}
	return seed, nil
}

// GenerateSeed returns a fresh random seed read from r, or crypto/rand when r is nil.
func GenerateSeed(r io.Reader) ([]byte, error) {
	if r == nil {
		r = rand.Reader
	}
	seed := make([]byte, ed25519.SeedSize)
	if _, err := io.ReadFull(r, seed); err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	return seed, nil
}

// Address returns the funding address this signer controls.
func (s *Signer) Address() string {
	return s.address.String()
}

// VerificationKey returns a copy of the public key.
func (s *Signer) VerificationKey() []byte {
	return append([]byte(nil), s.vkey...)
}

// Sign hashes the encoded body and attaches the single witness.
func (s *Signer) Sign(draft *model.TransactionDraft) (*model.SignedTransaction, error) {
	if draft == nil {
		return nil, fmt.Errorf("%w: nil draft", model.ErrSigning)
	}
	body, err := cardano.BodyFromDraft(draft)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrSigning, err)
	}
	rawBody, err := cardano.EncodeBody(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrSigning, err)
	}
	hash := cardano.BodyHash(rawBody)
	witness := cardano.VKeyWitness{
		VKey:      s.VerificationKey(),
		Signature: ed25519.Sign(s.key, hash[:]),
	}
	raw, err := cardano.EncodeTransaction(rawBody, []cardano.VKeyWitness{witness})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrSigning, err)
	}
	return &model.SignedTransaction{
		Hash:  hex.EncodeToString(hash[:]),
		Bytes: raw,
		Witness: model.Witness{
			VKey:      witness.VKey,
			Signature: witness.Signature,
		},
		Draft: draft,
	}, nil
}

