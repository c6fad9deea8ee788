// Package dynamo provides the ODE primitives behind the physical screensavers.
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, u, t))
//   - [Integrator]: numerical stepper
//   - [Hamiltonian]: optional energy function
//
// # Example
//
//	dp := physics.NewDoublePendulum(1, 1, 100, 100, 9.8)
//	integ := integrators.NewSymplecticEuler()
//	x = integ.Step(dp, x, nil, 0, 1)
package dynamo
