package devctl

import "github.com/prometheus/client_golang/prometheus"

var (
	sessionStateGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "devctl",
			Subsystem: "session",
			Name:      "state",
			Help:      "Current session state (1 for the active state, 0 otherwise)",
		},
		[]string{"state"},
	)

	spawnsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "devctl",
			Subsystem: "service",
			Name:      "spawns_total",
			Help:      "Child process spawn attempts by result",
		},
		[]string{"service", "result"},
	)

	terminationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "devctl",
			Subsystem: "service",
			Name:      "terminations_total",
			Help:      "Child process shutdowns by mode (graceful or forced)",
		},
		[]string{"service", "mode"},
	)
)

func init() {
	prometheus.MustRegister(sessionStateGauge, spawnsTotal, terminationsTotal)
}

func setStateMetric(cur State) {
	for _, st := range allStates {
		v := 0.0
		if st == cur {
			v = 1
		}
		sessionStateGauge.WithLabelValues(string(st)).Set(v)
	}
}
