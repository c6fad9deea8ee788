package integrators

import "github.com/san-kum/screensavers/internal/dynamo"

// SymplecticEuler is the semi-implicit Euler method for second-order systems:
// velocities are advanced with the current acceleration and positions with
// the updated velocities. The state must be [positions..., velocities...].
type SymplecticEuler struct{}

func NewSymplecticEuler() *SymplecticEuler {
	return &SymplecticEuler{}
}

func (e *SymplecticEuler) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, t float64, dt float64) dynamo.State {
	n := len(x)
	half := n / 2
	dx := dyn.Derive(x, u, t)
	result := make(dynamo.State, n)
	for i := 0; i < half; i++ {
		result[half+i] = x[half+i] + dt*dx[half+i]
		result[i] = x[i] + dt*result[half+i]
	}
	return result
}
