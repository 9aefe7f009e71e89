package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var searchQueriesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "authordex",
		Name:      "search_queries_total",
		Help:      "Total number of executed name searches",
	},
	[]string{"autocomplete"},
)

// RegisterSearchMetrics registers search counters explicitly (no init()).
func RegisterSearchMetrics() {
	prometheus.MustRegister(searchQueriesTotal)
}

// SearchQueries counts one executed search, split by autocomplete mode.
func SearchQueries(autocomplete bool) {
	searchQueriesTotal.WithLabelValues(strconv.FormatBool(autocomplete)).Inc()
}
