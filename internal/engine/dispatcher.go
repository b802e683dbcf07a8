package engine

import (
	"hash/fnv"
	"sync"

	"go.uber.org/zap"

	"github.com/abhisek/exgen/internal/problemgen"
	"github.com/abhisek/exgen/internal/sampler"
)

// Dispatcher routes requests to the generator for a topic, resolving each
// topic once and reusing the instance afterwards.
type Dispatcher struct {
	registry *Registry
	config   Config
	log      *zap.Logger

	mu    sync.Mutex
	cache map[string]problemgen.Generator
	pick  *sampler.Sampler
}

// NewDispatcher creates a dispatcher over registry. Each topic's generator
// is seeded with cfg.Seed mixed with the topic name.
func NewDispatcher(registry *Registry, cfg Config, opts ...Option) *Dispatcher {
	o := buildOptions(opts)
	return &Dispatcher{
		registry: registry,
		config:   cfg,
		log:      o.log,
		cache:    make(map[string]problemgen.Generator),
		pick:     sampler.New(cfg.Seed),
	}
}

// TopicSeed derives the seed used for topic from base.
func TopicSeed(base uint64, topic string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(topic))
	return base ^ h.Sum64()
}

// Generate produces an exercise for topic (or a lesson-code alias) at the
// given difficulty. An unknown difficulty is *problemgen.ErrUnknownTemplate;
// a topic that cannot be resolved is *problemgen.ErrResolution.
func (d *Dispatcher) Generate(topic string, difficulty int) (*problemgen.ExerciseRecord, error) {
	gen, err := d.generator(topic)
	if err != nil {
		return nil, err
	}
	return d.run(topic, gen, difficulty)
}

// GenerateAny produces an exercise at a difficulty drawn uniformly from the
// topic's keys.
func (d *Dispatcher) GenerateAny(topic string) (*problemgen.ExerciseRecord, error) {
	gen, err := d.generator(topic)
	if err != nil {
		return nil, err
	}
	keys := gen.Difficulties()
	d.mu.Lock()
	difficulty := sampler.Pick(d.pick, keys)
	d.mu.Unlock()
	return d.run(topic, gen, difficulty)
}

// Difficulties lists the keys available for topic.
func (d *Dispatcher) Difficulties(topic string) ([]int, error) {
	gen, err := d.generator(topic)
	if err != nil {
		return nil, err
	}
	return gen.Difficulties(), nil
}

func (d *Dispatcher) run(topic string, gen problemgen.Generator, difficulty int) (*problemgen.ExerciseRecord, error) {
	r, err := gen.Generate(difficulty)
	if err == nil {
		return r, nil
	}
	if problemgen.IsTaxonomy(err) {
		return nil, err
	}
	d.log.Warn("generation failed",
		zap.String("topic", topic),
		zap.Int("difficulty", difficulty),
		zap.Error(err))
	return nil, &problemgen.ErrResolution{Topic: topic, Kind: problemgen.ResolutionExecution, Err: err}
}

// generator returns the cached generator for topic, resolving it on first
// use. Failed resolutions are not cached.
func (d *Dispatcher) generator(name string) (problemgen.Generator, error) {
	topic, ok := d.registry.Canonical(name)
	if !ok {
		return nil, &problemgen.ErrResolution{Topic: name, Kind: problemgen.ResolutionNotFound}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen, ok := d.cache[topic]; ok {
		return gen, nil
	}
	cfg := d.config
	cfg.Seed = TopicSeed(d.config.Seed, topic)
	gen, err := d.registry.Resolve(topic, cfg)
	if err != nil {
		d.log.Warn("resolution failed", zap.String("topic", topic), zap.Error(err))
		return nil, err
	}
	d.cache[topic] = gen
	return gen, nil
}
