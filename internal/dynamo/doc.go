// Package dynamo provides core simulation primitives for dynamical systems.
//
// The package defines the fundamental interfaces and types for numerical
// simulation of ordinary differential equations (ODEs):
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, u, t))
//   - [Integrator]: numerical stepping rule
//   - [Metric]: scalar observed over a run
//   - [Simulator]: orchestrates simulation runs
//
// # Example
//
//	dyn := physics.NewDoublePendulum()
//	integ := integrators.NewVerlet()
//	sim := dynamo.New(dyn, integ)
//	result, _ := sim.Run(ctx, x0, cfg)
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. Integrators keep scratch
// buffers between steps, so each goroutine needs its own. [RunEnsemble]
// runs independent jobs concurrently, one Simulator per job.
package dynamo
