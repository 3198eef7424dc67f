package cardano

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
	"golang.org/x/crypto/blake2b"
)

const (
	mainnetHRP = "addr"
	testnetHRP = "addr_test"

	// KeyHashSize is the size of a payment credential (blake2b-224).
	KeyHashSize = 28

	enterpriseKeyHeader byte = 0x60
)

// Address is a decoded Shelley payment address.
type Address struct {
	raw []byte
}

// ParseAddress decodes a bech32 payment address.
func ParseAddress(s string) (Address, error) {
	hrp, data, err := bech32.DecodeNoLimit(strings.TrimSpace(s))
	if err != nil {
		return Address{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	addr, err := AddressFromBytes(raw)
	if err != nil {
		return Address{}, err
	}
	if hrp != addr.hrp() {
		return Address{}, fmt.Errorf("%w: prefix %q does not match network id %d", ErrInvalidAddress, hrp, addr.NetworkID())
	}
	return addr, nil
}

// ParseAddressHex decodes a hex-encoded address as returned by CIP-30 wallets.
func ParseAddressHex(s string) (Address, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return Address{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	return AddressFromBytes(raw)
}

// AddressFromBytes validates raw address bytes.
func AddressFromBytes(raw []byte) (Address, error) {
	if len(raw) < 1+KeyHashSize {
		return Address{}, fmt.Errorf("%w: %d bytes", ErrInvalidAddress, len(raw))
	}
	// Types 0-7 are Shelley payment addresses; 8 is Byron, 14-15 are reward accounts.
	if kind := raw[0] >> 4; kind > 7 {
		return Address{}, fmt.Errorf("%w: header type %d is not a payment address", ErrInvalidAddress, kind)
	}
	if id := raw[0] & 0x0f; id > 1 {
		return Address{}, fmt.Errorf("%w: network id %d", ErrInvalidAddress, id)
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return Address{raw: cp}, nil
}

// EnterpriseAddress builds the key-hash enterprise address of a verification key.
func EnterpriseAddress(vkey []byte, networkID byte) (Address, error) {
	if networkID > 1 {
		return Address{}, fmt.Errorf("%w: network id %d", ErrInvalidAddress, networkID)
	}
	hash, err := KeyHash(vkey)
	if err != nil {
		return Address{}, err
	}
	raw := make([]byte, 0, 1+KeyHashSize)
	raw = append(raw, enterpriseKeyHeader|networkID)
	raw = append(raw, hash...)
	return Address{raw: raw}, nil
}

// KeyHash returns the blake2b-224 hash of a verification key.
func KeyHash(vkey []byte) ([]byte, error) {
	h, err := blake2b.New(KeyHashSize, nil)
	if err != nil {
		return nil, err
	}
	h.Write(vkey)
	return h.Sum(nil), nil
}

// NetworkID returns the low nibble of the header byte.
func (a Address) NetworkID() byte {
	if len(a.raw) == 0 {
		return 0
	}
	return a.raw[0] & 0x0f
}

// PaymentCredential returns the 28-byte payment key or script hash.
func (a Address) PaymentCredential() []byte {
	if len(a.raw) < 1+KeyHashSize {
		return nil
	}
	return a.raw[1 : 1+KeyHashSize]
}

// IsKeyPayment reports whether the payment part is a key hash rather than a script hash.
func (a Address) IsKeyPayment() bool {
	return len(a.raw) > 0 && a.raw[0]&0x10 == 0
}

// Bytes returns a copy of the raw address.
func (a Address) Bytes() []byte {
	cp := make([]byte, len(a.raw))
	copy(cp, a.raw)
	return cp
}

// IsZero reports whether the address is unset.
func (a Address) IsZero() bool {
	return len(a.raw) == 0
}

// String returns the bech32 form.
func (a Address) String() string {
	if a.IsZero() {
		return ""
	}
	conv, err := bech32.ConvertBits(a.raw, 8, 5, true)
	if err != nil {
		return ""
	}
	s, err := bech32.Encode(a.hrp(), conv)
	if err != nil {
		return ""
	}
	return s
}

// CheckNetwork fails when the address does not belong to networkID.
func (a Address) CheckNetwork(networkID byte) error {
	if a.NetworkID() != networkID {
		return fmt.Errorf("%w: address network %d, expected %d", ErrNetworkMismatch, a.NetworkID(), networkID)
	}
	return nil
}

func (a Address) hrp() string {
	if a.NetworkID() == 1 {
		return mainnetHRP
	}
	return testnetHRP
}

// ParseNetworkAddress parses s and checks it belongs to network.
func ParseNetworkAddress(s string, network model.Network) (Address, error) {
	networkID, err := network.ID()
	if err != nil {
		return Address{}, err
	}
	addr, err := ParseAddress(s)
	if err != nil {
		return Address{}, err
	}
	if err := addr.CheckNetwork(networkID); err != nil {
		return Address{}, err
	}
	return addr, nil
}
