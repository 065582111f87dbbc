package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UtterancesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_utterances_total",
			Help: "Total number of utterances analyzed, by intent and language",
		},
		[]string{"intent", "language"},
	)

	AnalysisFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_analysis_failures_total",
			Help: "Total number of analyses that hit the error boundary",
		},
		[]string{"stage"},
	)

	AnalysisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "assistant_analysis_duration_seconds",
			Help: "Duration of utterance analysis in seconds",
		},
		[]string{"intent"},
	)

	SessionStoreOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_session_store_ops_total",
			Help: "Session store operations by kind and outcome",
		},
		[]string{"op", "outcome"},
	)
)
