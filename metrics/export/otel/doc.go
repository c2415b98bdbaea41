// Package otel bridges engine counters into the OpenTelemetry metric
// API.
//
// It depends only on the API module, never on a specific SDK; the host
// service owns the MeterProvider and exporter pipeline and hands this
// package a Meter.
package otel
