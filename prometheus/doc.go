// Package prometheus provides a Prometheus-backed implementation of
// ipscope.Metrics.
//
// Typical usage wires the adapter into a resolver at startup:
//
//	resolver, err := ipscope.New(
//	    ipscopeprom.WithMetrics(),
//	)
//
// or, with an explicit registerer:
//
//	metrics, err := ipscopeprom.NewWithRegisterer(registry)
//	resolver, err := ipscope.New(ipscope.WithMetrics(metrics))
package prometheus
