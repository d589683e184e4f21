package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Auth gate. The reason label stays internal; callers always see the
	// same generic 401.
	AuthFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_failures_total",
			Help: "Total rejected authentication attempts",
		},
		[]string{"reason"}, // missing_credentials|unknown_identity|bad_credential
	)

	RegistrationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "user_registrations_total",
			Help: "Total successful user registrations",
		},
	)

	CourseMutationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "course_mutations_total",
			Help: "Total successful course mutations",
		},
		[]string{"action"}, // create|update|delete
	)

	// Worker queue
	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)
)

// handler for the /metrics endpoint
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(AuthFailuresTotal)
	prometheus.MustRegister(RegistrationsTotal)
	prometheus.MustRegister(CourseMutationsTotal)
	prometheus.MustRegister(WorkerQueueDepth)
}
