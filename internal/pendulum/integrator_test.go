package pendulum_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pendulum/internal/integrators"
	"github.com/san-kum/pendulum/internal/pendulum"
	"github.com/san-kum/pendulum/internal/physics"
)

var _ = Describe("Integrator", func() {
	var in *pendulum.Integrator

	BeforeEach(func() {
		in = pendulum.New(pendulum.DefaultParams())
	})

	Describe("construction", func() {
		It("starts from the chaotic default state", func() {
			Expect(in.State()).To(Equal(pendulum.SimulationState{Theta1: math.Pi / 2, Theta2: math.Pi}))
			Expect(in.Steps()).To(BeZero())
			Expect(in.Time()).To(BeZero())
		})

		It("carries the reserved damping constants as zero", func() {
			p := in.Params()
			Expect(p.Damping1).To(BeZero())
			Expect(p.Damping2).To(BeZero())
			Expect(p.Dt).To(Equal(0.01))
			Expect(p.Scale).To(Equal(3.0))
		})

		It("reports the initial position without stepping", func() {
			pos := in.Position()
			Expect(pos.X1).To(BeNumerically("~", 60, 1e-12))
			Expect(pos.Y1).To(BeNumerically("~", 0, 1e-12))
			Expect(pos.X2).To(BeNumerically("~", 60, 1e-12))
			Expect(pos.Y2).To(BeNumerically("~", -90, 1e-12))
			Expect(in.Steps()).To(BeZero())
		})
	})

	Describe("Step", func() {
		It("advances time by dt per call", func() {
			for i := 0; i < 5; i++ {
				in.Step()
			}
			Expect(in.Steps()).To(Equal(5))
			Expect(in.Time()).To(BeNumerically("~", 0.05, 1e-15))
		})

		It("returns the positions of the updated angles", func() {
			pos := in.Step()
			s := in.State()
			Expect(pos).To(Equal(in.Position()))
			Expect(pos.X1).To(Equal(20 * 3 * math.Sin(s.Theta1)))
			Expect(pos.Y1).To(Equal(20 * 3 * math.Cos(s.Theta1)))
		})

		It("uses the Taylor step for angles and the trapezoid for velocities", func() {
			before := in.State()
			dt := in.Params().Dt
			k := in.AngularAcceleration1(before.Theta1, before.Theta2, before.Omega1, before.Omega2)
			l := in.AngularAcceleration2(before.Theta1, before.Theta2, before.Omega1, before.Omega2)

			in.Step()
			after := in.State()

			theta1 := before.Theta1 + before.Omega1*dt + 0.5*k*dt*dt
			theta2 := before.Theta2 + before.Omega2*dt + 0.5*l*dt*dt
			Expect(after.Theta1).To(BeNumerically("~", theta1, 1e-15))
			Expect(after.Theta2).To(BeNumerically("~", theta2, 1e-15))

			kNew := in.AngularAcceleration1(theta1, theta2, before.Omega1, before.Omega2)
			lNew := in.AngularAcceleration2(theta1, theta2, before.Omega1, before.Omega2)
			Expect(after.Omega1).To(BeNumerically("~", before.Omega1+0.5*(k+kNew)*dt, 1e-15))
			Expect(after.Omega2).To(BeNumerically("~", before.Omega2+0.5*(l+lNew)*dt, 1e-15))
		})

		It("never wraps angles", func() {
			far := pendulum.New(pendulum.DefaultParams(), pendulum.WithState(pendulum.SimulationState{Theta1: 4 * math.Pi, Theta2: -6 * math.Pi}))
			far.Step()
			s := far.State()
			Expect(s.Theta1).To(BeNumerically("~", 4*math.Pi, 1e-3))
			Expect(s.Theta2).To(BeNumerically("~", -6*math.Pi, 1e-3))
		})
	})

	Describe("Reset", func() {
		It("returns to the initial state", func() {
			for i := 0; i < 10; i++ {
				in.Step()
			}
			in.Reset()
			Expect(in.State()).To(Equal(pendulum.DefaultState()))
			Expect(in.Steps()).To(BeZero())
		})
	})
})

var _ = Describe("Integrator properties", func() {
	It("keeps energy nearly constant for a small step", func() {
		params := pendulum.DefaultParams()
		params.Dt = 0.0001
		in := pendulum.New(params)

		e0 := in.Energy()
		maxDrift := 0.0
		for i := 0; i < 1000; i++ {
			in.Step()
			maxDrift = math.Max(maxDrift, math.Abs(in.Energy()-e0)/math.Abs(e0))
		}
		Expect(maxDrift).To(BeNumerically("<", 1e-8))
	})

	It("holds the rest state fixed", func() {
		in := pendulum.New(pendulum.DefaultParams(), pendulum.WithState(pendulum.Rest()))

		Expect(in.AngularAcceleration1(0, 0, 0, 0)).To(BeZero())
		Expect(in.AngularAcceleration2(0, 0, 0, 0)).To(BeZero())

		for i := 0; i < 100; i++ {
			in.Step()
		}
		Expect(in.State()).To(Equal(pendulum.Rest()))
		Expect(in.Position()).To(Equal(physics.BobPosition{X1: 0, Y1: 60, X2: 0, Y2: 150}))
	})

	It("is deterministic", func() {
		a := pendulum.New(pendulum.DefaultParams())
		b := pendulum.New(pendulum.DefaultParams())

		for i := 0; i < 2000; i++ {
			Expect(a.Step()).To(Equal(b.Step()))
		}
		Expect(a.State()).To(Equal(b.State()))
	})

	It("places the bobs exactly from the angles", func() {
		params := pendulum.DefaultParams()
		params.L1, params.L2, params.Scale = 20, 30, 3
		in := pendulum.New(params, pendulum.WithState(pendulum.SimulationState{Theta1: math.Pi / 2}))

		pos := in.Position()
		x1 := params.L1 * params.Scale * math.Sin(math.Pi/2)
		y1 := params.L1 * params.Scale * math.Cos(math.Pi/2)
		Expect(pos.X1).To(Equal(x1))
		Expect(pos.Y1).To(Equal(y1))
		Expect(pos.X2).To(Equal(x1 + params.L2*params.Scale*math.Sin(0)))
		Expect(pos.Y2).To(Equal(y1 + params.L2*params.Scale*math.Cos(0)))
	})

	Context("at the singularity", func() {
		var in *pendulum.Integrator

		BeforeEach(func() {
			params := pendulum.DefaultParams()
			params.M1 = 0
			in = pendulum.New(params, pendulum.WithState(pendulum.SimulationState{Theta1: 0.3, Theta2: 0.3}))
		})

		It("reproduces the vanishing denominator", func() {
			Expect(math.IsNaN(in.AngularAcceleration1(0.3, 0.3, 0, 0))).To(BeTrue())
			Expect(math.Abs(in.AngularAcceleration1(0.3, 0.3+1e-6, 1, 1))).To(BeNumerically(">", 1e5))
		})

		It("lets non-finite values propagate through Step", func() {
			var pos physics.BobPosition
			Expect(func() { pos = in.Step() }).NotTo(Panic())
			Expect(math.IsNaN(pos.X1)).To(BeTrue())

			in.Step()
			s := in.State()
			Expect(math.IsNaN(s.Theta1)).To(BeTrue())
			Expect(math.IsNaN(s.Omega2)).To(BeTrue())
		})
	})

	It("matches the recorded trajectory after 100 steps", func() {
		in := pendulum.New(pendulum.DefaultParams())

		var pos physics.BobPosition
		for i := 0; i < 100; i++ {
			pos = in.Step()
		}

		s := in.State()
		Expect(s.Theta1).To(BeNumerically("~", 1.3247192781037571, 1e-9))
		Expect(s.Theta2).To(BeNumerically("~", 3.121769095182076, 1e-9))
		Expect(s.Omega1).To(BeNumerically("~", -0.4951898318950447, 1e-9))
		Expect(s.Omega2).To(BeNumerically("~", -0.07968539476397576, 1e-9))

		Expect(pos.X1).To(BeNumerically("~", 58.1925310412984, 1e-7))
		Expect(pos.Y1).To(BeNumerically("~", 14.6160641421527, 1e-7))
		Expect(pos.X2).To(BeNumerically("~", 59.9765344483015, 1e-7))
		Expect(pos.Y2).To(BeNumerically("~", -75.36625263088779, 1e-7))
	})

	It("diverges from the recorded trajectory under RK4", func() {
		in := pendulum.New(pendulum.DefaultParams(), pendulum.WithStepper(integrators.NewRK4()))
		for i := 0; i < 100; i++ {
			in.Step()
		}
		Expect(in.State().Omega1).NotTo(Equal(-0.4951898318950447))
	})
})
