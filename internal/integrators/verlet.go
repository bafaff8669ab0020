package integrators

import "github.com/san-kum/pendulum/internal/dynamo"

// Verlet advances a second-order system whose state is laid out as
// [positions..., velocities...]. Positions take a second-order Taylor step
// from the accelerations at the start of the step; velocities use the
// trapezoid of the old accelerations and the accelerations re-evaluated at
// the new positions with the old velocities.
//
// Every position is advanced from the same pre-step accelerations.
type Verlet struct {
	scratch dynamo.State
}

func NewVerlet() *Verlet {
	return &Verlet{}
}

func (v *Verlet) ensureScratch(n int) {
	if len(v.scratch) != n {
		v.scratch = make(dynamo.State, n)
	}
}

func (v *Verlet) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, t, dt float64) dynamo.State {
	n := len(x)
	half := n / 2
	v.ensureScratch(n)

	result := make(dynamo.State, n)
	dx := dyn.Derive(x, u, t)

	for i := 0; i < half; i++ {
		result[i] = x[i] + x[half+i]*dt + 0.5*dx[half+i]*dt*dt
	}

	for i := 0; i < half; i++ {
		v.scratch[i] = result[i]
		v.scratch[half+i] = x[half+i]
	}

	dxNew := dyn.Derive(v.scratch, u, t+dt)

	for i := 0; i < half; i++ {
		result[half+i] = x[half+i] + 0.5*(dx[half+i]+dxNew[half+i])*dt
	}

	return result
}
