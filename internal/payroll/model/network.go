// Package model defines domain models for batch payroll.
package model

import "fmt"

// Network names a Cardano network the service pays on.
type Network string

var (
	Mainnet Network = "mainnet"
	Preprod Network = "preprod"
	Preview Network = "preview"
)

// ID returns the address network id (1 for mainnet, 0 for the test networks).
func (n Network) ID() (byte, error) {
	switch n {
	case Mainnet:
		return 1, nil
	case Preprod, Preview:
		return 0, nil
	default:
		return 0, fmt.Errorf("unknown network %q", string(n))
	}
}
