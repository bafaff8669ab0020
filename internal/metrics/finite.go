package metrics

import (
	"github.com/san-kum/pendulum/internal/dynamo"
)

// Finite is the fraction of observed states with no NaN or infinite
// component. It drops below one once a run reaches the singularity.
type Finite struct {
	name    string
	bad     int
	samples int
	first   float64
}

func NewFinite() *Finite {
	return &Finite{name: "finite", first: -1}
}

func (f *Finite) Name() string { return f.name }

func (f *Finite) Observe(x dynamo.State, t float64) {
	f.samples++
	if !x.IsValid() {
		if f.bad == 0 {
			f.first = t
		}
		f.bad++
	}
}

func (f *Finite) Value() float64 {
	if f.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(f.bad)/float64(f.samples)
}

// FirstInvalid is the time of the first non-finite state, or -1.
func (f *Finite) FirstInvalid() float64 { return f.first }

func (f *Finite) Reset() {
	f.bad = 0
	f.samples = 0
	f.first = -1
}
