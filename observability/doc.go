// Package observability wires OpenTelemetry tracing and metrics for the
// authorization service and provides an instrumented wrapper around the
// permission checker.
package observability
