package lireddit

import (
	internalmetrics "github.com/VivianLin61/lireddit-backend/internal/metrics"
)

// MetricID identifies a specific counter in the in-process metrics system.
type MetricID = internalmetrics.MetricID

const (
	MetricRegisterSuccess             = internalmetrics.MetricRegisterSuccess
	MetricRegisterConflict            = internalmetrics.MetricRegisterConflict
	MetricRegisterInvalid             = internalmetrics.MetricRegisterInvalid
	MetricLoginSuccess                = internalmetrics.MetricLoginSuccess
	MetricLoginFailure                = internalmetrics.MetricLoginFailure
	MetricLogout                      = internalmetrics.MetricLogout
	MetricSessionCreated              = internalmetrics.MetricSessionCreated
	MetricSessionDestroyed            = internalmetrics.MetricSessionDestroyed
	MetricPasswordResetRequest        = internalmetrics.MetricPasswordResetRequest
	MetricPasswordResetConfirmSuccess = internalmetrics.MetricPasswordResetConfirmSuccess
	MetricPasswordResetConfirmFailure = internalmetrics.MetricPasswordResetConfirmFailure

	metricIDCount = internalmetrics.MetricIDCount
)

// Metrics holds atomic counters keyed by [MetricID].
type Metrics = internalmetrics.Metrics

// MetricsSnapshot is a point-in-time deep copy of all counters.
type MetricsSnapshot = internalmetrics.Snapshot

// NewMetrics creates a [Metrics] instance. When cfg.Enabled is false all
// operations are no-ops.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return internalmetrics.New(internalmetrics.Config{
		Enabled: cfg.Enabled,
	})
}
