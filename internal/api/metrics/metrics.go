// Package metrics defines and registers all custom Prometheus metrics for the
// GymFlow API. It is the single source of truth for metric names, labels, and
// help strings.
//
// All metrics use promauto, so importing the package registers them with the
// default Prometheus registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gymflow"

// ── Attendance metrics ────────────────────────────────────────────────────────

// CheckInsTotal counts successful member check-ins.
// Label:
//   - recorded_by: who initiated the check-in ("OWNER", "RECEPTIONIST", "SYSTEM")
var CheckInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "check_ins_total",
		Help:      "Total number of successful member check-ins, by recorder.",
	},
	[]string{"recorded_by"},
)

// CheckOutsTotal counts successful member check-outs.
var CheckOutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "check_outs_total",
		Help:      "Total number of successful member check-outs.",
	},
)

// AttendanceErrorsTotal counts attendance operations that were rejected.
// Label:
//   - reason: short description of the failure (e.g. "already_checked_in",
//     "no_open_session", "member_inactive", "duplicate_submission")
var AttendanceErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "attendance_errors_total",
		Help:      "Total number of rejected attendance operations, by reason.",
	},
	[]string{"reason"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsCreatedTotal counts notifications delivered to staff.
var NotificationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_created_total",
		Help:      "Total number of notifications created.",
	},
)

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// RequestsInFlight tracks the number of requests currently being served.
var RequestsInFlight = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "requests_in_flight",
		Help:      "Current number of in-flight HTTP requests.",
	},
)
