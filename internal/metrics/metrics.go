// Package metrics defines the Prometheus metrics exposed at /metrics. It is
// the single source of truth for metric names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "boardhub"

// RequestsTotal counts handled HTTP requests.
// Labels:
//   - method: HTTP method
//   - route: Gin route pattern (e.g. "/u/:username/boards")
//   - status: response status code
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled.",
	},
	[]string{"method", "route", "status"},
)

// BoardsCreatedTotal counts successful board creations.
var BoardsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "boards_created_total",
		Help:      "Total number of boards created.",
	},
)

// BoardListCacheTotal counts board-listing cache decisions.
// Label:
//   - result: "hit" or "miss"
var BoardListCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "board_list_cache_total",
		Help:      "Total number of board-listing cache lookups, labelled by result.",
	},
	[]string{"result"},
)

// SignInsTotal counts successful sign-ins by provider ("github", "google",
// "credentials").
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sign_ins_total",
		Help:      "Total number of successful sign-ins, by provider.",
	},
	[]string{"provider"},
)
