package physics

import (
	"math"

	"github.com/san-kum/screensavers/internal/dynamo"
)

// DoublePendulum is two rigid massless rods with point masses, hanging from a
// fixed pivot. Angles are measured from the downward vertical.
// State layout: [theta1, theta2, omega1, omega2].
type DoublePendulum struct {
	M1, M2  float64
	L1, L2  float64
	Gravity float64
}

func NewDoublePendulum(m1, m2, l1, l2, gravity float64) *DoublePendulum {
	return &DoublePendulum{M1: m1, M2: m2, L1: l1, L2: l2, Gravity: gravity}
}

func (d *DoublePendulum) StateDim() int   { return 4 }
func (d *DoublePendulum) ControlDim() int { return 0 }

func (d *DoublePendulum) Derive(x dynamo.State, u dynamo.Control, t float64) dynamo.State {
	alpha1, alpha2 := d.Accelerations(x[0], x[1], x[2], x[3])
	return dynamo.State{x[2], x[3], alpha1, alpha2}
}

// Accelerations evaluates the closed-form Lagrangian equations of motion.
func (d *DoublePendulum) Accelerations(theta1, theta2, omega1, omega2 float64) (float64, float64) {
	m1, m2, l1, l2, g := d.M1, d.M2, d.L1, d.L2, d.Gravity
	delta := theta1 - theta2
	sinD, cosD := math.Sin(delta), math.Cos(delta)
	common := 2*m1 + m2 - m2*math.Cos(2*delta)

	num1 := -g * (2*m1 + m2) * math.Sin(theta1)
	num2 := -m2 * g * math.Sin(theta1-2*theta2)
	num3 := -2 * sinD * m2
	num4 := omega2*omega2*l2 + omega1*omega1*l1*cosD
	alpha1 := (num1 + num2 + num3*num4) / (l1 * common)

	num5 := omega1 * omega1 * l1 * (m1 + m2)
	num6 := g * (m1 + m2) * math.Cos(theta1)
	num7 := omega2 * omega2 * l2 * m2 * cosD
	alpha2 := 2 * sinD * (num5 + num6 + num7) / (l2 * common)

	return alpha1, alpha2
}

// Energy is kinetic plus potential energy with the pivot as reference height.
func (d *DoublePendulum) Energy(x dynamo.State) float64 {
	theta1, theta2, omega1, omega2 := x[0], x[1], x[2], x[3]
	m1, m2, l1, l2, g := d.M1, d.M2, d.L1, d.L2, d.Gravity

	v1sq := l1 * l1 * omega1 * omega1
	v2sq := l1*l1*omega1*omega1 + l2*l2*omega2*omega2 +
		2*l1*l2*omega1*omega2*math.Cos(theta1-theta2)

	ke := 0.5*m1*v1sq + 0.5*m2*v2sq
	y1 := -l1 * math.Cos(theta1)
	y2 := y1 - l2*math.Cos(theta2)
	pe := m1*g*y1 + m2*g*y2

	return ke + pe
}

// Bobs returns the positions of both masses relative to the pivot on a
// y-down surface.
func (d *DoublePendulum) Bobs(theta1, theta2 float64) (x1, y1, x2, y2 float64) {
	x1 = d.L1 * math.Sin(theta1)
	y1 = d.L1 * math.Cos(theta1)
	x2 = x1 + d.L2*math.Sin(theta2)
	y2 = y1 + d.L2*math.Cos(theta2)
	return
}
