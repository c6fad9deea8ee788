// Package metrics accumulates scalar samples taken from running simulations
// for the trace command.
package metrics

// Metric folds a stream of samples into one value.
type Metric interface {
	Name() string
	Observe(v float64)
	Value() float64
	Reset()
}
