// Package internaldefs holds the shared metric definitions used by the
// exporter packages. It exists so the Prometheus and OpenTelemetry
// exporters render an identical series set without either depending on
// the other.
package internaldefs
