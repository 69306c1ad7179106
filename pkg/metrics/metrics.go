// Package metrics exposes prometheus counters for conversation outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	turnsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "finchat",
		Subsystem: "assistant",
		Name:      "turns_total",
		Help:      "Conversation turns processed, by response kind.",
	}, []string{"kind"})

	intentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "finchat",
		Subsystem: "assistant",
		Name:      "intents_total",
		Help:      "Intent classifications, by detected intent name.",
	}, []string{"intent"})

	draftsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "finchat",
		Subsystem: "assistant",
		Name:      "drafts_total",
		Help:      "Draft confirmations, by draft kind and result.",
	}, []string{"draft", "result"})
)

// ObserveTurn counts one processed turn by response kind.
func ObserveTurn(kind string) {
	turnsTotal.WithLabelValues(kind).Inc()
}

// ObserveIntent counts one classification outcome.
func ObserveIntent(intent string) {
	intentsTotal.WithLabelValues(intent).Inc()
}

// ObserveDraft counts a confirmed or rejected draft handoff.
func ObserveDraft(draft, result string) {
	draftsTotal.WithLabelValues(draft, result).Inc()
}
