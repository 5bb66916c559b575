// Package metrics defines and registers all custom Prometheus metrics of the
// legal assistant API. It is the single source of truth for metric names,
// labels, and help strings.
//
// All collectors are registered with the default registry on package init
// through promauto; the HTTP layer exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "legal"

// ── LLM metrics ───────────────────────────────────────────────────────────────

// LLMRequestsTotal counts completion requests sent to the provider.
// Labels:
//   - operation: "translate" or "memorandum"
//   - result: "ok", "error", "timeout", "empty" or "not_configured"
var LLMRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "llm_requests_total",
		Help:      "Total number of completion requests, by operation and result.",
	},
	[]string{"operation", "result"},
)

// LLMRequestDuration measures provider latency for completed calls.
var LLMRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "llm_request_duration_seconds",
		Help:      "Duration of completion requests to the language model provider.",
		Buckets:   []float64{.5, 1, 2.5, 5, 10, 20, 30, 45, 60, 90},
	},
	[]string{"operation"},
)

// ── Document metrics ──────────────────────────────────────────────────────────

// DocumentsCreatedTotal counts persisted translations and memorandums.
// Labels:
//   - kind: "translation" or "memorandum"
//   - language: target language of the document ("ar" or "en")
var DocumentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_created_total",
		Help:      "Total number of documents created, by kind and language.",
	},
	[]string{"kind", "language"},
)

// ── Auth & audit metrics ──────────────────────────────────────────────────────

// AuthAttemptsTotal counts register/login attempts.
// Labels:
//   - action: "register" or "login"
//   - result: "ok", "invalid", "conflict" or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by action and result.",
	},
	[]string{"action", "result"},
)

// AuditWriteFailuresTotal counts audit entries that could not be stored.
var AuditWriteFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_write_failures_total",
		Help:      "Total number of audit log entries dropped because the store failed.",
	},
	[]string{"action"},
)
