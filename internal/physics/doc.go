// Package physics provides the double pendulum model.
//
// [DoublePendulum] implements [dynamo.System], giving the coupled
// equations of motion of two point masses on massless rigid links, and
// [dynamo.Hamiltonian] for energy monitoring:
//
//	dp := physics.NewDoublePendulum()
//	a1 := dp.AngularAcceleration1(theta1, theta2, omega1, omega2)
//	pos := dp.Positions(theta1, theta2)
//
// # Singularity
//
// The shared denominator L*(2*m1 + m2 - m2*cos(2*theta1 - 2*theta2)) tends
// to zero when m1 is small and the links are aligned. No guard is applied:
// callers see the huge or non-finite accelerations the model produces.
package physics
