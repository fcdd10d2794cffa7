// Package metrics defines and registers all custom Prometheus metrics for the
// casting platform API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry at package init via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "casting"

// ── Account metrics ───────────────────────────────────────────────────────────

// UsersRegisteredTotal counts accounts created.
// Label:
//   - account_type: "performer", "casting-director", "agent", or "producer"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts created, by account type.",
	},
	[]string{"account_type"},
)

// OTPIssuedTotal counts one-time verification codes generated.
// Label:
//   - reason: the flow that issued the code ("register" or "resend")
var OTPIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_issued_total",
		Help:      "Total number of one-time verification codes issued.",
	},
	[]string{"reason"},
)

// OTPVerificationsTotal counts verification attempts.
// Label:
//   - result: "verified", "expired", "mismatch", or "error"
var OTPVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_verifications_total",
		Help:      "Total number of OTP verification attempts, labelled by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Labels:
//   - method: "password" or "google"
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by method and result.",
	},
	[]string{"method", "result"},
)

// ── Mail metrics ──────────────────────────────────────────────────────────────

// MailDeliveriesTotal counts terminal outcomes of queued mail.
// Label:
//   - result: "delivered", "failed" (retries exhausted), or "dropped" (queue full)
var MailDeliveriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mail_deliveries_total",
		Help:      "Total number of mail delivery outcomes, labelled by result.",
	},
	[]string{"result"},
)

// MailQueueDepth tracks the number of messages buffered in the dispatch queue.
var MailQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "mail_queue_depth",
		Help:      "Current number of messages pending in the mail dispatch queue.",
	},
)

// ── Audition metrics ──────────────────────────────────────────────────────────

// AuditionsCreatedTotal counts audition postings created.
// Label:
//   - category: "Acting", "Modeling", "Voice Acting", or "Music"
var AuditionsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auditions_created_total",
		Help:      "Total number of audition postings created, by category.",
	},
	[]string{"category"},
)
