package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	VotesCast        prometheus.Counter
	VoteConflicts    prometheus.Counter
	ProcessesClosed  prometheus.Counter
	TabulationRuns   prometheus.Counter
	PhaseTransitions *prometheus.CounterVec

	bootstrapOnce sync.Once
)

// Bootstrap creates and registers the subsystem metrics with the default
// Prometheus registry. Safe to call more than once.
func Bootstrap() {
	bootstrapOnce.Do(func() {
		VotesCast = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "edusyn",
			Subsystem: "elections",
			Name:      "votes_cast_total",
			Help:      "Number of ballots accepted by the ballot box",
		})
		VoteConflicts = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "edusyn",
			Subsystem: "elections",
			Name:      "vote_conflicts_total",
			Help:      "Number of duplicate-vote submissions rejected",
		})
		ProcessesClosed = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "edusyn",
			Subsystem: "elections",
			Name:      "processes_closed_total",
			Help:      "Number of election processes closed",
		})
		TabulationRuns = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "edusyn",
			Subsystem: "elections",
			Name:      "tabulation_runs_total",
			Help:      "Number of per-election tabulations executed",
		})
		PhaseTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "edusyn",
			Subsystem: "elections",
			Name:      "phase_transitions_total",
			Help:      "Number of process phase transitions, labelled by target phase",
		}, []string{"phase"})

		prometheus.MustRegister(VotesCast, VoteConflicts, ProcessesClosed, TabulationRuns, PhaseTransitions)
	})
}
