// Package metrics exposes application metrics collectors.
package metrics

import (
	"errors"

	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
)

const namespace = "utxopayroll"

func status(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, model.ErrSubmissionUnknown):
		return "unknown"
	case errors.Is(err, model.ErrNetworkTransient):
		return "transient"
	case errors.Is(err, model.ErrNetworkRejected):
		return "rejected"
	default:
		return "error"
	}
}

func networkLabel(network model.Network) string {
	if network == "" {
		return "unknown"
	}
	return string(network)
}
