// Package metrics holds instrumentation settings shared across the service.
package metrics

// DefaultBuckets are latency histogram boundaries in seconds. Payload checks
// finish well under a millisecond, so the low end is finer than usual.
var DefaultBuckets = []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5} //nolint: gochecknoglobals
