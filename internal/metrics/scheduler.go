package metrics

import (
	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	schedulerTriggersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scheduler",
		Name:      "triggers_total",
		Help:      "Count of payroll triggers by source and outcome.",
	}, []string{"network", "source", "outcome"})

	schedulerRunning = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "scheduler",
		Name:      "running",
		Help:      "1 while a payroll run is in flight.",
	}, []string{"network"})
)

// Trigger outcomes.
const (
	TriggerStarted = "started"
	TriggerDropped = "dropped"
)

// Scheduler tracks metrics for the single-flight scheduler.
type Scheduler struct {
	network string
}

// NewScheduler constructs a Scheduler metrics collector.
func NewScheduler(network model.Network) *Scheduler {
	return &Scheduler{network: networkLabel(network)}
}

// ObserveTrigger counts a trigger that either started a run or was dropped.
func (m Scheduler) ObserveTrigger(source model.TriggerSource, outcome string) {
	schedulerTriggersTotal.WithLabelValues(m.network, string(source), outcome).Inc()
}

// SetRunning reports the scheduler state.
func (m Scheduler) SetRunning(running bool) {
	v := 0.0
	if running {
		v = 1
	}
	schedulerRunning.WithLabelValues(m.network).Set(v)
}
