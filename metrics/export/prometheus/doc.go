// Package prometheus exposes engine counters in Prometheus text
// exposition format.
//
// The exporter is a thin read-only view over [lireddit.Engine]
// snapshots; it registers nothing globally and carries no client
// library dependency. Mount Handler on whatever mux the host service
// uses.
package prometheus
