package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/pendulum/internal/dynamo"
)

const (
	DefaultGravity = 9.81
	DefaultL1      = 20.0
	DefaultL2      = 30.0
	DefaultM1      = 10.0
	DefaultM2      = 10.0
	DefaultScale   = 3.0
)

// DoublePendulum is two point masses on massless rigid links, the first
// pivoted at the origin and the second hung from the first bob.
// State: [theta1, theta2, omega1, omega2], angles measured from the
// downward vertical.
//
// Damping1 and Damping2 are carried as reserved parameters. The equations
// of motion do not read them.
type DoublePendulum struct {
	M1, M2             float64
	L1, L2             float64
	Gravity            float64
	Damping1, Damping2 float64
	Scale              float64
}

func NewDoublePendulum() *DoublePendulum {
	return &DoublePendulum{
		M1: DefaultM1, M2: DefaultM2,
		L1: DefaultL1, L2: DefaultL2,
		Gravity: DefaultGravity,
		Scale:   DefaultScale,
	}
}

func (d *DoublePendulum) StateDim() int   { return 4 }
func (d *DoublePendulum) ControlDim() int { return 0 }

// AngularAcceleration1 is the angular acceleration of the first link.
// The denominator vanishes as m1 -> 0 with 2*theta1 - 2*theta2 near a
// multiple of 2π; the result is then huge or non-finite and is returned
// as is.
func (d *DoublePendulum) AngularAcceleration1(theta1, theta2, omega1, omega2 float64) float64 {
	g, m1, m2, l1, l2 := d.Gravity, d.M1, d.M2, d.L1, d.L2

	num1 := -g * (2*m1 + m2) * math.Sin(theta1)
	num2 := -m2 * g * math.Sin(theta1-2*theta2)
	num3 := -2 * math.Sin(theta1-theta2) * m2
	num4 := omega2*omega2*l2 + omega1*omega1*l1*math.Cos(theta1-theta2)
	den := l1 * (2*m1 + m2 - m2*math.Cos(2*theta1-2*theta2))

	return (num1 + num2 + num3*num4) / den
}

// AngularAcceleration2 is the angular acceleration of the second link.
func (d *DoublePendulum) AngularAcceleration2(theta1, theta2, omega1, omega2 float64) float64 {
	g, m1, m2, l1, l2 := d.Gravity, d.M1, d.M2, d.L1, d.L2

	num1 := 2 * math.Sin(theta1-theta2)
	num2 := omega1 * omega1 * l1 * (m1 + m2)
	num3 := g * (m1 + m2) * math.Cos(theta1)
	num4 := omega2 * omega2 * l2 * m2 * math.Cos(theta1-theta2)
	den := l2 * (2*m1 + m2 - m2*math.Cos(2*theta1-2*theta2))

	return (num1 * (num2 + num3 + num4)) / den
}

func (d *DoublePendulum) Derive(x dynamo.State, u dynamo.Control, t float64) dynamo.State {
	theta1, theta2, omega1, omega2 := x[0], x[1], x[2], x[3]

	return dynamo.State{
		omega1,
		omega2,
		d.AngularAcceleration1(theta1, theta2, omega1, omega2),
		d.AngularAcceleration2(theta1, theta2, omega1, omega2),
	}
}

// Energy is kinetic plus potential energy with the pivot as the zero of
// height. It is conserved by the exact dynamics.
func (d *DoublePendulum) Energy(x dynamo.State) float64 {
	theta1, theta2, omega1, omega2 := x[0], x[1], x[2], x[3]
	m1, m2, l1, l2, g := d.M1, d.M2, d.L1, d.L2, d.Gravity

	v1sq := l1 * l1 * omega1 * omega1
	v2sq := l1*l1*omega1*omega1 + l2*l2*omega2*omega2 +
		2*l1*l2*omega1*omega2*math.Cos(theta1-theta2)

	ke := 0.5*m1*v1sq + 0.5*m2*v2sq
	y1 := -l1 * math.Cos(theta1)
	y2 := y1 - l2*math.Cos(theta2)
	pe := m1*g*y1 + m2*g*y2

	return ke + pe
}

// BobPosition holds the displayed coordinates of both bobs. The first bob
// is relative to the pivot; the second is the first plus the second arm.
// y grows downward, matching screen coordinates.
type BobPosition struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Positions maps the two angles to bob coordinates, with the arm lengths
// multiplied by Scale. Scale never enters the dynamics.
func (d *DoublePendulum) Positions(theta1, theta2 float64) BobPosition {
	l1, l2, scale := d.L1, d.L2, d.Scale

	x1 := l1 * scale * math.Sin(theta1)
	y1 := l1 * scale * math.Cos(theta1)
	x2 := x1 + l2*scale*math.Sin(theta2)
	y2 := y1 + l2*scale*math.Cos(theta2)

	return BobPosition{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

func (d *DoublePendulum) GetParams() map[string]float64 {
	return map[string]float64{
		"m1":       d.M1,
		"m2":       d.M2,
		"l1":       d.L1,
		"l2":       d.L2,
		"gravity":  d.Gravity,
		"damping1": d.Damping1,
		"damping2": d.Damping2,
		"scale":    d.Scale,
	}
}

func (d *DoublePendulum) SetParam(name string, value float64) error {
	switch name {
	case "m1":
		d.M1 = value
	case "m2":
		d.M2 = value
	case "l1":
		d.L1 = value
	case "l2":
		d.L2 = value
	case "gravity":
		d.Gravity = value
	case "damping1":
		d.Damping1 = value
	case "damping2":
		d.Damping2 = value
	case "scale":
		d.Scale = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
