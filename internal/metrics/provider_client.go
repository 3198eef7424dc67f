package metrics

import (
	"time"

	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	providerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "provider_client",
		Name:      "operations_total",
		Help:      "Count of ledger data provider operations.",
	}, []string{"operation", "network", "status"})
	providerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "provider_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger data provider operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// ProviderClient tracks metrics for calls to the ledger data provider.
type ProviderClient struct {
	network string
}

// NewProviderClient constructs a metrics collector for provider calls.
func NewProviderClient(network model.Network) *ProviderClient {
	return &ProviderClient{network: networkLabel(network)}
}

// Observe records a single provider call outcome and duration.
func (m ProviderClient) Observe(operation string, err error, started time.Time) {
	s := status(err)
	providerRequestsTotal.WithLabelValues(operation, m.network, s).Inc()
	providerRequestDuration.WithLabelValues(operation, m.network, s).Observe(time.Since(started).Seconds())
}
