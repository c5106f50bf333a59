package strategy

import (
	"fmt"
	"sort"

	"lorcana/game"
)

type entry struct {
	factory  Factory
	defaults Weights
}

// Registry resolves strategies by name. Build one at startup and pass it to the runner.
type Registry struct {
	entries map[string]entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// NewDefaultRegistry returns a registry with the built-in strategies.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister("default", DefaultWeights(), NewDefault)
	r.MustRegister("aggressive", AggressiveWeights(), NewAggressive)
	r.MustRegister("ramp", RampWeights(), NewRamp)
	return r
}

func (r *Registry) Register(name string, defaults Weights, factory Factory) error {
	if name == "" {
		return fmt.Errorf("strategy name must not be empty")
	}
	if factory == nil {
		return fmt.Errorf("strategy %q has no factory", name)
	}
	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("strategy %q is already registered", name)
	}
	r.entries[name] = entry{factory: factory, defaults: defaults}
	return nil
}

// MustRegister registers a strategy, panicking on error.
func (r *Registry) MustRegister(name string, defaults Weights, factory Factory) {
	if err := r.Register(name, defaults, factory); err != nil {
		panic(err)
	}
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named strategy with its default weights, overlaid by the
// optional YAML overrides. Unknown names never fall back to another strategy.
func (r *Registry) New(name string, overrides []byte) (Strategy, error) {
	e, ok := r.entries[name]
	if !ok {
		return nil, &game.ConfigurationError{
			Field:   "strategy",
			Value:   name,
			Reason:  "unknown strategy",
			Options: r.Names(),
		}
	}
	weights, err := ApplyYAML(e.defaults, overrides)
	if err != nil {
		return nil, err
	}
	return e.factory(weights), nil
}
