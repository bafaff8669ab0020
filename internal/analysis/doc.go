// Package analysis characterizes pendulum trajectories.
//
//   - [LyapunovExponent]: largest Lyapunov exponent by repeated
//     renormalization of a nearby trajectory
//   - [PowerSpectrum]: one-sided spectrum of a sampled signal
//   - [PhasePortrait] and [PoincareSection]: 2D views of a recorded run
//
// # Chaos Detection
//
// A clearly positive largest exponent indicates chaos. From the default
// start the double pendulum gives roughly 0.25 per second over a minute;
// small oscillations stay near zero:
//
//	lambda := analysis.LyapunovExponent(dp, integ, x0, 0.01, 60, 1e-8)
package analysis
