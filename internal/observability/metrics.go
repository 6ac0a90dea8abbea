package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "signups_total",
		Help:      "Successful signups per activity.",
	}, []string{"activity"})
	unregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "unregistrations_total",
		Help:      "Successful unregistrations per activity.",
	}, []string{"activity"})
	rejectionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "rejected_requests_total",
		Help:      "Roster mutations rejected by validation, by operation and reason.",
	}, []string{"operation", "reason"})
	rosterSizeGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "roster_size",
		Help:      "Current number of participants per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter, rejectionCounter, rosterSizeGauge)
}

// RecordSignup updates the signup counter and the roster size gauge.
func RecordSignup(activity string, rosterSize int) {
	signupCounter.WithLabelValues(activity).Inc()
	rosterSizeGauge.WithLabelValues(activity).Set(float64(rosterSize))
}

// RecordUnregister updates the unregistration counter and the roster size gauge.
func RecordUnregister(activity string, rosterSize int) {
	unregisterCounter.WithLabelValues(activity).Inc()
	rosterSizeGauge.WithLabelValues(activity).Set(float64(rosterSize))
}

// RecordRejected counts a rejected roster mutation.
func RecordRejected(operation, reason string) {
	rejectionCounter.WithLabelValues(operation, reason).Inc()
}
