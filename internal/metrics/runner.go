package metrics

import (
	"time"

	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runnerRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "runner",
		Name:      "runs_total",
		Help:      "Count of payroll runs by outcome.",
	}, []string{"network", "status"})

	runnerRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "runner",
		Name:      "run_duration_seconds",
		Help:      "Duration of payroll runs.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"network", "status"})

	runnerStepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "runner",
		Name:      "step_duration_seconds",
		Help:      "Duration of individual payroll run steps.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "step", "status"})

	runnerPaidUnits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "runner",
		Name:      "paid_lovelace_total",
		Help:      "Lovelace paid to recipients by submitted transactions.",
	}, []string{"network"})

	runnerFeeUnits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "runner",
		Name:      "fee_lovelace_total",
		Help:      "Lovelace spent on fees by submitted transactions.",
	}, []string{"network"})

	runnerRecipients = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "runner",
		Name:      "recipients_per_run",
		Help:      "Number of recipients paid per transaction.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"network"})
)

// Runner tracks metrics for the payroll run pipeline.
type Runner struct {
	network string
}

// NewRunner constructs a Runner with defaults.
func NewRunner(network model.Network) *Runner {
	return &Runner{network: networkLabel(network)}
}

// ObserveRun records the outcome and duration of a whole run.
func (m Runner) ObserveRun(runStatus model.RunStatus, started time.Time) {
	runnerRunsTotal.WithLabelValues(m.network, string(runStatus)).Inc()
	runnerRunDuration.WithLabelValues(m.network, string(runStatus)).Observe(time.Since(started).Seconds())
}

// ObserveStep records one pipeline step.
func (m Runner) ObserveStep(step string, err error, started time.Time) {
	runnerStepDuration.WithLabelValues(m.network, step, status(err)).Observe(time.Since(started).Seconds())
}

// ObservePaid records the amounts of a submitted transaction.
func (m Runner) ObservePaid(result model.RunResult) {
	runnerPaidUnits.WithLabelValues(m.network).Add(float64(result.TotalUnits))
	runnerFeeUnits.WithLabelValues(m.network).Add(float64(result.FeeUnits))
	runnerRecipients.WithLabelValues(m.network).Observe(float64(result.RecipientCount))
}
