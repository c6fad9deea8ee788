package savers

import (
	"math"

	"github.com/san-kum/screensavers/internal/gfx"
	"github.com/san-kum/screensavers/internal/render"
)

const (
	circleCount  = 20
	circleRadius = 10
	circleMaxVel = 3
)

type Circles struct{}

func NewCircles() *Circles { return &Circles{} }

func (Circles) Name() string { return "Random Circles" }

type circle struct {
	x, y   float64
	vx, vy float64
	color  gfx.Color
}

type circlesSim struct {
	width, height float64
	circles       []circle
}

func (Circles) Setup(env Env) Simulation {
	s := &circlesSim{width: env.Width, height: env.Height, circles: make([]circle, circleCount)}
	for i := range s.circles {
		s.circles[i] = circle{
			x:     env.Rand.Num(0, env.Width),
			y:     env.Rand.Num(0, env.Height),
			vx:    env.Rand.Num(-circleMaxVel, circleMaxVel),
			vy:    env.Rand.Num(-circleMaxVel, circleMaxVel),
			color: env.Rand.Color(),
		}
	}
	return s
}

// Update moves every circle and reflects the velocity component of each axis
// whose bounds it left.
func (s *circlesSim) Update(tick uint64) {
	for i := range s.circles {
		c := &s.circles[i]
		c.x += c.vx
		c.y += c.vy
		if c.x < 0 || c.x > s.width {
			c.vx = -c.vx
		}
		if c.y < 0 || c.y > s.height {
			c.vy = -c.vy
		}
	}
}

func (s *circlesSim) Draw(surf render.Surface) {
	surf.Clear(gfx.Black)
	for _, c := range s.circles {
		surf.FillCircle(c.x, c.y, circleRadius, c.color)
	}
}

func (s *circlesSim) Probe() (string, float64) {
	if len(s.circles) == 0 {
		return "mean speed", 0
	}
	sum := 0.0
	for _, c := range s.circles {
		sum += math.Hypot(c.vx, c.vy)
	}
	return "mean speed", sum / float64(len(s.circles))
}
