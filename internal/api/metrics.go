package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	matchRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "qm_match_requests_total",
		Help: "Filter match requests served.",
	})
	pawnsEvaluated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "qm_pawns_evaluated_total",
		Help: "Pawns evaluated across all match requests.",
	})
	rankRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qm_rank_requests_total",
		Help: "Rank requests served, by role.",
	}, []string{"role"})
)
