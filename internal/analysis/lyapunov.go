package analysis

import (
	"math"

	"github.com/san-kum/pendulum/internal/dynamo"
)

// LyapunovExponent estimates the largest Lyapunov exponent of dyn from x0.
// A companion trajectory starts d0 away along the first state component.
// After every step the separation is logged and pulled back to d0 along
// its current direction, so the companion never leaves the linear regime.
//
// The result is NaN if either trajectory becomes non-finite.
func LyapunovExponent(
	dyn dynamo.System,
	integ dynamo.Integrator,
	x0 dynamo.State,
	dt, duration float64,
	d0 float64,
) float64 {
	steps := int(math.Round(duration / dt))
	if len(x0) == 0 || steps <= 0 || d0 <= 0 {
		return 0
	}

	x := x0.Clone()
	xp := x0.Clone()
	xp[0] += d0

	ctrl := make(dynamo.Control, dyn.ControlDim())
	t := 0.0
	sumLog := 0.0

	for i := 0; i < steps; i++ {
		x = integ.Step(dyn, x, ctrl, t, dt)
		xp = integ.Step(dyn, xp, ctrl, t, dt)
		t += dt

		sep := xp.Sub(x).Norm()
		if math.IsNaN(sep) || math.IsInf(sep, 0) {
			return math.NaN()
		}
		if sep == 0 {
			continue
		}

		sumLog += math.Log(sep / d0)

		scale := d0 / sep
		for j := range xp {
			xp[j] = x[j] + (xp[j]-x[j])*scale
		}
	}

	return sumLog / (float64(steps) * dt)
}
