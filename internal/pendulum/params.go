package pendulum

import (
	"math"

	"github.com/san-kum/pendulum/internal/physics"
)

// DefaultDt is the simulation time step in seconds. The animation ticks
// once per step, every DefaultDt*1000 milliseconds.
const DefaultDt = 0.01

// Params are the physical constants of one simulation. They are fixed at
// construction.
type Params struct {
	Gravity  float64
	L1, L2   float64
	M1, M2   float64
	Damping1 float64
	Damping2 float64
	Dt       float64
	Scale    float64
}

func DefaultParams() Params {
	return Params{
		Gravity: physics.DefaultGravity,
		L1:      physics.DefaultL1,
		L2:      physics.DefaultL2,
		M1:      physics.DefaultM1,
		M2:      physics.DefaultM2,
		Dt:      DefaultDt,
		Scale:   physics.DefaultScale,
	}
}

func (p Params) model() *physics.DoublePendulum {
	return &physics.DoublePendulum{
		M1: p.M1, M2: p.M2,
		L1: p.L1, L2: p.L2,
		Gravity:  p.Gravity,
		Damping1: p.Damping1,
		Damping2: p.Damping2,
		Scale:    p.Scale,
	}
}

// SimulationState is the full state of the pendulum.
type SimulationState struct {
	Theta1 float64 `json:"theta1"`
	Theta2 float64 `json:"theta2"`
	Omega1 float64 `json:"omega1"`
	Omega2 float64 `json:"omega2"`
}

// DefaultState starts the first arm horizontal and the second pointing
// straight up, at rest. The motion from here is chaotic.
func DefaultState() SimulationState {
	return SimulationState{Theta1: math.Pi / 2, Theta2: math.Pi}
}

// Rest is the stable equilibrium, both links hanging down.
func Rest() SimulationState {
	return SimulationState{}
}

func (s SimulationState) vector() []float64 {
	return []float64{s.Theta1, s.Theta2, s.Omega1, s.Omega2}
}

func stateOf(x []float64) SimulationState {
	return SimulationState{Theta1: x[0], Theta2: x[1], Omega1: x[2], Omega2: x[3]}
}
