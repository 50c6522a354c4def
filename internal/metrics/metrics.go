// Package metrics defines the custom Prometheus metrics for the storefront
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ResourceMutationsTotal counts committed create/update/delete operations.
// Labels:
//   - resource: "users", "products", "orders", "images"
//   - operation: "create", "update", "delete"
var ResourceMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resource_mutations_total",
		Help:      "Total number of committed resource mutations.",
	},
	[]string{"resource", "operation"},
)

// SearchRequestsTotal counts search queries.
// Label:
//   - result: "hit" (served from cache), "miss" (went to the index), "error"
var SearchRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "search_requests_total",
		Help:      "Total number of search requests, by cache result.",
	},
	[]string{"result"},
)
