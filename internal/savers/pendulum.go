package savers

import (
	"math"

	"github.com/san-kum/screensavers/internal/dynamo"
	"github.com/san-kum/screensavers/internal/gfx"
	"github.com/san-kum/screensavers/internal/integrators"
	"github.com/san-kum/screensavers/internal/physics"
	"github.com/san-kum/screensavers/internal/render"
	"go.uber.org/zap"
)

const (
	pendulumPeriod   = 10
	afterimageCount  = 10
	pendulumRodWidth = 3
	bobScale         = 5
)

type Pendulum struct{}

func NewPendulum() *Pendulum { return &Pendulum{} }

func (Pendulum) Name() string { return "Double Pendulum" }

type anglePair struct {
	theta1, theta2 float64
}

// afterimages is a fixed ring of the most recent angle pairs.
type afterimages struct {
	buf   [afterimageCount]anglePair
	start int
	n     int
}

func (r *afterimages) push(p anglePair) {
	if r.n < len(r.buf) {
		r.buf[(r.start+r.n)%len(r.buf)] = p
		r.n++
		return
	}
	r.buf[r.start] = p
	r.start = (r.start + 1) % len(r.buf)
}

// at returns the i-th pair, oldest first.
func (r *afterimages) at(i int) anglePair {
	return r.buf[(r.start+i)%len(r.buf)]
}

func (r *afterimages) len() int { return r.n }

type pendulumSim struct {
	width, height float64
	log           *zap.Logger
	model         *physics.DoublePendulum
	energy        dynamo.Hamiltonian
	integ         dynamo.Integrator
	state         dynamo.State
	color1        gfx.Color
	color2        gfx.Color
	history       afterimages
	trail         *render.Path
	trailed       bool
	trailing      bool
	stalled       bool
}

func (Pendulum) Setup(env Env) Simulation {
	r := env.Rand
	s := &pendulumSim{
		width:  env.Width,
		height: env.Height,
		log:    env.logger(),
		state:  dynamo.State{r.Num(0, 2*math.Pi), r.Num(0, 2*math.Pi), 0, 0},
		color1: r.Color(),
		color2: r.Color(),
		integ:  integrators.NewSymplecticEuler(),
		trail:  render.NewPath(),
	}
	l1, l2 := r.Num(50, 150), r.Num(50, 150)
	g := r.Num(1, 10)
	m1, m2 := r.Num(1, 10), r.Num(1, 10)
	s.model = physics.NewDoublePendulum(m1, m2, l1, l2, g)
	s.energy = s.model
	return s
}

// Update integrates one unit step every pendulumPeriod ticks.
func (s *pendulumSim) Update(tick uint64) {
	if tick%pendulumPeriod != 0 {
		return
	}
	next := s.integ.Step(s.model, s.state, nil, float64(tick), 1)
	if err := dynamo.Validate(s.model, next); err != nil {
		// the pendulum freezes on its last good state
		if !s.stalled {
			s.log.Warn("pendulum step rejected", zap.Uint64("tick", tick), zap.Error(err))
			s.stalled = true
		}
		return
	}
	s.state = next
	s.history.push(anglePair{theta1: s.state[0], theta2: s.state[1]})

	if !s.trailing {
		return
	}
	_, _, x2, y2 := s.model.Bobs(s.state[0], s.state[1])
	x, y := s.width/2+x2, s.height/2+y2
	if s.trailed {
		s.trail.LineTo(x, y)
	} else {
		s.trail.MoveTo(x, y)
		s.trailed = true
	}
}

func (s *pendulumSim) Draw(surf render.Surface) {
	cx, cy := s.width/2, s.height/2
	surf.Clear(gfx.Black)
	n := s.history.len()
	for i := 0; i < n; i++ {
		opacity := float64(i) / float64(n)
		p := s.history.at(i)
		c1, c2 := s.color1.Fade(opacity), s.color2.Fade(opacity)
		x1, y1, x2, y2 := s.model.Bobs(p.theta1, p.theta2)
		x1, y1, x2, y2 = cx+x1, cy+y1, cx+x2, cy+y2

		surf.StrokeLine(cx, cy, x1, y1, pendulumRodWidth, c1)
		surf.StrokeLine(x1, y1, x2, y2, pendulumRodWidth, c2)
		surf.FillCircle(x1, y1, s.model.M1*bobScale, c1)
		surf.FillCircle(x2, y2, s.model.M2*bobScale, c2)
	}
	if s.trailing {
		surf.StrokePath(s.trail, pendulumRodWidth, s.color2)
	}
}

// OnPointer: a right click toggles trail recording, a left click discards the
// recorded trail and stops recording.
func (s *pendulumSim) OnPointer(x, y float64, right bool) {
	if right {
		s.trailing = !s.trailing
		return
	}
	s.trail = render.NewPath()
	s.trailed = false
	s.trailing = false
}

func (s *pendulumSim) Probe() (string, float64) {
	return "energy", s.energy.Energy(s.state)
}
