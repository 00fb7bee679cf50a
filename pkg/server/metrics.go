package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "browsergate_sessions_created_total",
		Help: "Sessions successfully created against the remote provisioner.",
	})

	actionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "browsergate_actions_total",
		Help: "Actions dispatched to the executor, by kind.",
	}, []string{"action"})

	actionFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "browsergate_action_failures_total",
		Help: "Actions whose execution failed, including fallback exhaustion.",
	})
)
