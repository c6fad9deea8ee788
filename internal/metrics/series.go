package metrics

import "math"

// Series keeps the most recent samples for plotting alongside running
// statistics over everything observed.
type Series struct {
	name     string
	buf      []float64
	start, n int
	count    int
	sum      float64
	min, max float64
}

func NewSeries(name string, capacity int) *Series {
	if capacity < 1 {
		capacity = 1
	}
	return &Series{name: name, buf: make([]float64, capacity)}
}

func (s *Series) Name() string { return s.name }

func (s *Series) Observe(v float64) {
	if math.IsNaN(v) {
		return
	}
	if s.n < len(s.buf) {
		s.buf[(s.start+s.n)%len(s.buf)] = v
		s.n++
	} else {
		s.buf[s.start] = v
		s.start = (s.start + 1) % len(s.buf)
	}
	if s.count == 0 || v < s.min {
		s.min = v
	}
	if s.count == 0 || v > s.max {
		s.max = v
	}
	s.sum += v
	s.count++
}

// Value is the mean of every sample observed.
func (s *Series) Value() float64 {
	if s.count == 0 {
		return 0
	}
	return s.sum / float64(s.count)
}

func (s *Series) Min() float64 { return s.min }
func (s *Series) Max() float64 { return s.max }
func (s *Series) Count() int   { return s.count }

// Last returns the newest sample, or 0 when empty.
func (s *Series) Last() float64 {
	if s.n == 0 {
		return 0
	}
	return s.buf[(s.start+s.n-1)%len(s.buf)]
}

// Values returns the retained window, oldest first.
func (s *Series) Values() []float64 {
	out := make([]float64, s.n)
	for i := range out {
		out[i] = s.buf[(s.start+i)%len(s.buf)]
	}
	return out
}

func (s *Series) Reset() {
	s.start, s.n, s.count = 0, 0, 0
	s.sum, s.min, s.max = 0, 0, 0
}
