// Package metrics defines and registers all custom Prometheus metrics for
// the sweet shop inventory API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto, before the HTTP server starts serving /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sweetshop"

// ── Stock ledger metrics ──────────────────────────────────────────────────────

// PurchasesTotal counts purchase attempts by outcome.
// Label:
//   - result: "success", "insufficient_stock", "not_found", "invalid_amount",
//     "duplicate", or "error"
var PurchasesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_total",
		Help:      "Total number of purchase attempts, by result.",
	},
	[]string{"result"},
)

// RestocksTotal counts restock attempts by outcome.
// Label:
//   - result: "success", "not_found", "invalid_amount", or "error"
var RestocksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "restocks_total",
		Help:      "Total number of restock attempts, by result.",
	},
	[]string{"result"},
)

// StockAdjustDuration measures how long one ledger operation takes,
// including the atomic conditional update round trip.
// Label:
//   - operation: "purchase" or "restock"
var StockAdjustDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "stock_adjust_duration_seconds",
		Help:      "Duration of stock ledger adjustment operations.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// MovementsQueueDepth tracks the number of audit movements waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var MovementsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "movements_queue_depth",
		Help:      "Current number of stock movements pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// MovementsDroppedTotal counts audit movements discarded because a worker
// channel was full. Recording is best-effort and never blocks the ledger.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var MovementsDroppedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "movements_dropped_total",
		Help:      "Total number of stock movements dropped due to a full dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ItemsCreatedTotal counts newly created catalog items.
// Label:
//   - category: the item category as supplied by the admin
var ItemsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_created_total",
		Help:      "Total number of catalog items created, by category.",
	},
	[]string{"category"},
)
