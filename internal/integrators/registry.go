package integrators

import (
	"fmt"
	"sort"

	"github.com/san-kum/pendulum/internal/dynamo"
)

// Default is the stepping rule the pendulum view runs with.
const Default = "verlet"

var registry = map[string]func() dynamo.Integrator{
	"verlet": func() dynamo.Integrator { return NewVerlet() },
	"rk4":    func() dynamo.Integrator { return NewRK4() },
	"euler":  func() dynamo.Integrator { return NewEuler() },
}

// New returns a fresh integrator by name. Integrators hold scratch
// buffers, so callers must not share one across goroutines.
func New(name string) (dynamo.Integrator, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s (available: %v)", name, Names())
	}
	return fn(), nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
