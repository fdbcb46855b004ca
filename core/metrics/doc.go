// Package metrics exposes prometheus counters for the inventory pipeline
// (rows loaded and skipped per source, reports written and failed) and for
// the HTTP API (request totals and latency).
package metrics
