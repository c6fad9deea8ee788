// Package physics provides the dynamical models behind the physical
// screensavers. Each model implements [dynamo.System]; models with a
// conserved quantity also implement [dynamo.Hamiltonian]:
//
//   - [DoublePendulum]: chaotic coupled pendulum
//
// # Energy Conservation
//
//	dp := physics.NewDoublePendulum(1, 1, 100, 100, 9.8)
//	energy := dp.Energy(state)
package physics
