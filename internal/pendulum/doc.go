// Package pendulum owns one double pendulum simulation: its physical
// parameters, its four-scalar state and the fixed-step update that turns
// the state into bob coordinates for rendering.
//
// An [Integrator] is driven by exactly one caller. [Integrator.Step] is
// never safe to call concurrently or reentrantly.
package pendulum
