// Package metrics exposes Prometheus collectors for probes and reconciliation
// runs. Metrics satisfies probe.Metrics so it can be plugged into the probe
// decorator chain, and Handler serves /metrics for the HTTP server.
package metrics
