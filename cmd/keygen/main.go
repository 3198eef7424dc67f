// Command keygen creates a funding key and prints its enterprise address.
package main

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/cardano"
	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/signer"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	Network model.Network `long:"network" env:"PAYROLL_NETWORK" default:"preprod" description:"cardano network (mainnet, preprod, preview)"`
	Seed    string        `long:"seed" env:"PAYROLL_FUNDING_SEED" description:"derive the address of an existing hex seed instead of generating one"`
}

func main() {
	cfg := config{}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	seed, addr, err := keygen(cfg)
	if err != nil {
		logger.Fatal("keygen failed", zap.Error(err))
	}

	fmt.Printf("PAYROLL_NETWORK=%s\n", cfg.Network)
	fmt.Printf("PAYROLL_FUNDING_SEED=%s\n", hex.EncodeToString(seed))
	fmt.Printf("PAYROLL_FUNDING_ADDRESS=%s\n", addr)
}

func keygen(cfg config) ([]byte, cardano.Address, error) {
	networkID, err := cfg.Network.ID()
	if err != nil {
		return nil, cardano.Address{}, err
	}

	var seed []byte
	if cfg.Seed != "" {
		seed, err = signer.ParseSeed(cfg.Seed)
	} else {
		seed, err = signer.GenerateSeed(nil)
	}
	if err != nil {
		return nil, cardano.Address{}, err
	}

	vkey := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)
	addr, err := cardano.EnterpriseAddress(vkey, networkID)
	if err != nil {
		return nil, cardano.Address{}, err
	}
	// the signer refuses a key that does not control the address
	if _, err := signer.FromSeed(seed, addr); err != nil {
		return nil, cardano.Address{}, err
	}
	return seed, addr, nil
}
