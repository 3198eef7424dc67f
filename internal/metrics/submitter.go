package metrics

import (
	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var submitterAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "submitter",
	Name:      "attempts_total",
	Help:      "Count of transaction submission attempts by outcome.",
}, []string{"network", "status"})

// Submitter tracks submission attempts.
type Submitter struct {
	network string
}

// NewSubmitter constructs a Submitter metrics collector.
func NewSubmitter(network model.Network) *Submitter {
	return &Submitter{network: networkLabel(network)}
}

// ObserveAttempt records one submission attempt.
func (m Submitter) ObserveAttempt(err error) {
	submitterAttemptsTotal.WithLabelValues(m.network, status(err)).Inc()
}
