package engine

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/abhisek/exgen/internal/algebra"
	"github.com/abhisek/exgen/internal/problemgen"
	"github.com/abhisek/exgen/internal/templates"
)

// Factory builds the generator for one topic.
type Factory func(cfg Config, log *zap.Logger) (problemgen.Generator, error)

// CatalogFactory returns a Factory that wraps the catalog built by build in a
// TemplateGenerator.
func CatalogFactory(build func() (*templates.Catalog, error)) Factory {
	return func(cfg Config, log *zap.Logger) (problemgen.Generator, error) {
		c, err := build()
		if err != nil {
			return nil, err
		}
		return NewTemplateGenerator(c, cfg, WithLogger(log)), nil
	}
}

// Registry maps topics, and their lesson-code aliases, to generator
// factories. It is populated once at startup.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	aliases   map[string]string
	log       *zap.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	o := buildOptions(opts)
	return &Registry{
		factories: make(map[string]Factory),
		aliases:   make(map[string]string),
		log:       o.log,
	}
}

// Register adds a factory under topic and any aliases. Registering a name
// twice is an error.
func (r *Registry) Register(topic string, f Factory, aliases ...string) error {
	if topic == "" || f == nil {
		return fmt.Errorf("register %q: topic and factory are required", topic)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, name := range append([]string{topic}, aliases...) {
		if _, ok := r.factories[name]; ok {
			return fmt.Errorf("register %q: name %q already registered", topic, name)
		}
		if _, ok := r.aliases[name]; ok {
			return fmt.Errorf("register %q: name %q already registered", topic, name)
		}
	}
	r.factories[topic] = f
	for _, a := range aliases {
		r.aliases[a] = topic
	}
	return nil
}

// Canonical maps a topic or alias to its topic.
func (r *Registry) Canonical(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.factories[name]; ok {
		return name, true
	}
	topic, ok := r.aliases[name]
	return topic, ok
}

// Topics returns the registered topics, sorted.
func (r *Registry) Topics() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	topics := make([]string, 0, len(r.factories))
	for t := range r.factories {
		topics = append(topics, t)
	}
	sort.Strings(topics)
	return topics
}

// Aliases returns the aliases registered for topic, sorted.
func (r *Registry) Aliases(topic string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []string
	for a, t := range r.aliases {
		if t == topic {
			out = append(out, a)
		}
	}
	sort.Strings(out)
	return out
}

// Only returns a registry restricted to the named topics. Aliases of kept
// topics are kept too.
func (r *Registry) Only(topics ...string) (*Registry, error) {
	out := &Registry{
		factories: make(map[string]Factory),
		aliases:   make(map[string]string),
		log:       r.log,
	}
	for _, name := range topics {
		topic, ok := r.Canonical(name)
		if !ok {
			return nil, &problemgen.ErrResolution{Topic: name, Kind: problemgen.ResolutionNotFound}
		}
		if _, dup := out.factories[topic]; dup {
			continue
		}
		r.mu.RLock()
		f := r.factories[topic]
		r.mu.RUnlock()
		if err := out.Register(topic, f, r.Aliases(topic)...); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Resolve instantiates the generator for name. Failures are reported as
// *problemgen.ErrResolution; a construction panic from the algebra package
// is not recovered.
func (r *Registry) Resolve(name string, cfg Config) (problemgen.Generator, error) {
	topic, ok := r.Canonical(name)
	if !ok {
		return nil, &problemgen.ErrResolution{Topic: name, Kind: problemgen.ResolutionNotFound}
	}
	r.mu.RLock()
	f := r.factories[topic]
	r.mu.RUnlock()

	gen, err := instantiate(f, cfg, r.log.With(zap.String("topic", topic)))
	if err != nil {
		kind := problemgen.ResolutionInstantiation
		if errors.Is(err, problemgen.ErrContractViolation) {
			kind = problemgen.ResolutionContract
		}
		return nil, &problemgen.ErrResolution{Topic: topic, Kind: kind, Err: err}
	}
	if err := checkContract(gen); err != nil {
		return nil, &problemgen.ErrResolution{Topic: topic, Kind: problemgen.ResolutionContract, Err: err}
	}

	r.log.Debug("resolved generator", zap.String("topic", topic), zap.Ints("difficulties", gen.Difficulties()))
	return gen, nil
}

// instantiate calls f, turning a panic into an error.
func instantiate(f Factory, cfg Config, log *zap.Logger) (gen problemgen.Generator, err error) {
	defer func() {
		if p := recover(); p != nil {
			var ce *algebra.ConstructionError
			if e, ok := p.(error); ok && errors.As(e, &ce) {
				panic(p)
			}
			gen, err = nil, fmt.Errorf("factory panicked: %v", p)
		}
	}()
	return f(cfg, log)
}

// checkContract verifies that gen is usable: non-nil with a non-empty set
// of distinct difficulties.
func checkContract(gen problemgen.Generator) error {
	if gen == nil {
		return fmt.Errorf("%w: factory returned no generator", problemgen.ErrContractViolation)
	}
	if v := reflect.ValueOf(gen); v.Kind() == reflect.Pointer && v.IsNil() {
		return fmt.Errorf("%w: factory returned a nil %T", problemgen.ErrContractViolation, gen)
	}
	keys := gen.Difficulties()
	if len(keys) == 0 {
		return fmt.Errorf("%w: generator has no difficulties", problemgen.ErrContractViolation)
	}
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	if len(slices.Compact(sorted)) != len(keys) {
		return fmt.Errorf("%w: generator repeats a difficulty in %v", problemgen.ErrContractViolation, keys)
	}
	return nil
}

// DefaultRegistry registers every built-in catalog with its lesson-code
// aliases.
func DefaultRegistry(opts ...Option) *Registry {
	r := NewRegistry(opts...)
	builtin := []struct {
		topic   string
		build   func() (*templates.Catalog, error)
		aliases []string
	}{
		{"radicals", templates.Radicals, []string{"001"}},
		{"radicals-intro", templates.RadicalsIntro, []string{"s1e1"}},
		{"fractions", templates.Fractions, []string{"002"}},
		{"mixed", templates.Mixed, []string{"s1e1-mixed"}},
		{"arithmetic", templates.Arithmetic, nil},
		{"equation", templates.Equation, nil},
	}
	for _, b := range builtin {
		if err := r.Register(b.topic, CatalogFactory(b.build), b.aliases...); err != nil {
			panic(err)
		}
	}
	return r
}
