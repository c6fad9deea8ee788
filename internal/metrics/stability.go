package metrics

// Stability is the fraction of samples inside [lo, hi].
type Stability struct {
	name       string
	lo, hi     float64
	violations int
	samples    int
}

func NewStability(lo, hi float64) *Stability {
	return &Stability{
		name: "stability",
		lo:   lo,
		hi:   hi,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(v float64) {
	s.samples++
	if v < s.lo || v > s.hi {
		s.violations++
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
