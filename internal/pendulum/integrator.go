package pendulum

import (
	"github.com/san-kum/pendulum/internal/dynamo"
	"github.com/san-kum/pendulum/internal/integrators"
	"github.com/san-kum/pendulum/internal/physics"
)

// Integrator advances the pendulum by one fixed time step per call and
// reports where the bobs ended up. State is never normalized: angles grow
// without bound and non-finite values, once produced near the model's
// singularity, stay in the state.
type Integrator struct {
	params  Params
	model   *physics.DoublePendulum
	stepper dynamo.Integrator
	initial SimulationState
	state   dynamo.State
	steps   int
}

type Option func(*Integrator)

// WithState replaces the default initial state.
func WithState(s SimulationState) Option {
	return func(in *Integrator) { in.initial = s }
}

// WithStepper replaces the Verlet stepping rule. Only analysis code should
// need this; it changes the trajectory.
func WithStepper(s dynamo.Integrator) Option {
	return func(in *Integrator) { in.stepper = s }
}

func New(params Params, opts ...Option) *Integrator {
	in := &Integrator{
		params:  params,
		model:   params.model(),
		stepper: integrators.NewVerlet(),
		initial: DefaultState(),
	}
	for _, opt := range opts {
		opt(in)
	}
	in.state = dynamo.State(in.initial.vector())
	return in
}

// Step advances the state by Params.Dt and returns the new bob positions.
func (in *Integrator) Step() physics.BobPosition {
	in.state = in.stepper.Step(in.model, in.state, nil, in.Time(), in.params.Dt)
	in.steps++
	return in.Position()
}

// Position returns the bob positions for the current state without
// advancing it.
func (in *Integrator) Position() physics.BobPosition {
	return in.model.Positions(in.state[0], in.state[1])
}

func (in *Integrator) AngularAcceleration1(theta1, theta2, omega1, omega2 float64) float64 {
	return in.model.AngularAcceleration1(theta1, theta2, omega1, omega2)
}

func (in *Integrator) AngularAcceleration2(theta1, theta2, omega1, omega2 float64) float64 {
	return in.model.AngularAcceleration2(theta1, theta2, omega1, omega2)
}

func (in *Integrator) State() SimulationState { return stateOf(in.state) }
func (in *Integrator) Params() Params         { return in.params }
func (in *Integrator) Steps() int             { return in.steps }

// Time is the simulated time elapsed since construction or the last Reset.
func (in *Integrator) Time() float64 { return float64(in.steps) * in.params.Dt }

// Energy is the total mechanical energy of the current state.
func (in *Integrator) Energy() float64 { return in.model.Energy(in.state) }

// Model exposes the equations of motion for analysis runs.
func (in *Integrator) Model() *physics.DoublePendulum { return in.model }

// Reset returns to the initial state.
func (in *Integrator) Reset() {
	in.state = dynamo.State(in.initial.vector())
	in.steps = 0
}
