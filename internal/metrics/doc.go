// Package metrics records bench outcomes as Prometheus metrics and samples
// runtime memory statistics.
package metrics
