package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ImperatorRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "imperator_request_duration_seconds",
		Help:    "Duration of Imperator API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint", "status"})

	ImperatorRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "imperator_requests_total",
		Help: "Total number of Imperator API requests",
	}, []string{"endpoint", "status"})

	CommandsExecuted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "imperator_bot_commands_total",
		Help: "Total number of slash commands executed by the bot",
	}, []string{"command", "status"})
)
