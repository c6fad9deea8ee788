package savers

import (
	"github.com/san-kum/screensavers/internal/gfx"
	"github.com/san-kum/screensavers/internal/render"
	"github.com/san-kum/screensavers/internal/rng"
)

const (
	graphSamples = 100
	graphPeriod  = 40
	graphMaxStep = 10
	graphMax     = 100
	graphSize    = 300
)

type Graph struct{}

func NewGraph() *Graph { return &Graph{} }

func (Graph) Name() string { return "Random Graph" }

type graphSim struct {
	width, height float64
	rand          *rng.Rand
	samples       []float64
	low, high     gfx.Color
}

func (Graph) Setup(env Env) Simulation {
	s := &graphSim{
		width:   env.Width,
		height:  env.Height,
		rand:    env.Rand,
		samples: make([]float64, graphSamples),
		low:     env.Rand.Color(),
		high:    env.Rand.Color(),
	}
	for i := range s.samples {
		s.samples[i] = graphMax / 2
	}
	return s
}

// Update rolls the series every graphPeriod ticks: the oldest sample drops
// out and a bounded random step from the newest one is appended.
func (s *graphSim) Update(tick uint64) {
	if tick%graphPeriod != 0 {
		return
	}
	last := s.samples[len(s.samples)-1]
	next := gfx.Clamp(last+s.rand.Num(-graphMaxStep, graphMaxStep), 0, graphMax)
	copy(s.samples, s.samples[1:])
	s.samples[len(s.samples)-1] = next
}

func (s *graphSim) Draw(surf render.Surface) {
	left := s.width/2 - graphSize/2
	right := left + graphSize
	top := s.height/2 - graphSize/2
	bottom := top + graphSize

	surf.Clear(gfx.Black)
	last := s.samples[len(s.samples)-1]
	color := gfx.Blend(s.low, s.high, last/graphMax)

	n := float64(len(s.samples))
	points := make([]render.Point, 0, len(s.samples)+2)
	points = append(points, render.Point{X: left, Y: bottom})
	for i, v := range s.samples {
		points = append(points, render.Point{
			X: gfx.Lerp(left, right, float64(i)/n),
			Y: gfx.Lerp(bottom, top, v/graphMax),
		})
	}
	points = append(points, render.Point{X: right, Y: bottom})
	surf.FillPolygon(points, color)
}

func (s *graphSim) Probe() (string, float64) {
	return "latest sample", s.samples[len(s.samples)-1]
}
