package metrics

import "math"

// Drift is the largest relative departure from the first sample. A
// conserved quantity under a good integrator keeps it small.
type Drift struct {
	name     string
	initial  float64
	current  float64
	maxDrift float64
	samples  int
}

func NewDrift(name string) *Drift {
	return &Drift{name: name + "_drift"}
}

func (d *Drift) Name() string { return d.name }

func (d *Drift) Observe(v float64) {
	if d.samples == 0 {
		d.initial = v
	}
	d.current = v
	d.samples++

	if d.initial != 0 {
		drift := math.Abs(v-d.initial) / math.Abs(d.initial)
		d.maxDrift = math.Max(d.maxDrift, drift)
	}
}

func (d *Drift) Value() float64 { return d.maxDrift }

func (d *Drift) Reset() {
	d.initial = 0
	d.current = 0
	d.maxDrift = 0
	d.samples = 0
}
