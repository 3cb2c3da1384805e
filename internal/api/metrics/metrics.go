// Package metrics defines and registers all custom Prometheus metrics for the
// storefront API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry at import time
// via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Identity metrics ─────────────────────────────────────────────────────────

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

// SessionReadsTotal counts identity checks.
// Label:
//   - result: "authenticated" or "anonymous"
var SessionReadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_reads_total",
		Help:      "Total number of session assertions derived, by result.",
	},
	[]string{"result"},
)

// ── Password-reset metrics ───────────────────────────────────────────────────

// ResetRequestsTotal counts reset requests. Deliberately unlabelled: a
// found/not-found label would let anyone with /metrics access confirm whether
// an identifier matched an account.
var ResetRequestsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_reset_requests_total",
		Help:      "Total number of password reset requests received.",
	},
)

// ResetRedemptionsTotal counts redemption attempts.
// Label:
//   - result: "success" or "failure"
var ResetRedemptionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_reset_redemptions_total",
		Help:      "Total number of password reset redemptions, by result.",
	},
	[]string{"result"},
)

// ── Storefront metrics ───────────────────────────────────────────────────────

// CartItemsAddedTotal counts items added to carts.
var CartItemsAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_items_added_total",
		Help:      "Total number of items added to shopping carts.",
	},
)
