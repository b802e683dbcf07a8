package engine

import (
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/abhisek/exgen/internal/present"
	"github.com/abhisek/exgen/internal/problemgen"
	"github.com/abhisek/exgen/internal/sampler"
	"github.com/abhisek/exgen/internal/templates"
)

// TemplateGenerator implements problemgen.Generator for one catalog. It owns
// its sampler; concurrent Generate calls are serialized.
type TemplateGenerator struct {
	catalog *templates.Catalog
	config  Config
	log     *zap.Logger

	mu  sync.Mutex
	rng *sampler.Sampler
}

var _ problemgen.Generator = (*TemplateGenerator)(nil)

// NewTemplateGenerator creates a generator over catalog seeded with
// cfg.Seed.
func NewTemplateGenerator(catalog *templates.Catalog, cfg Config, opts ...Option) *TemplateGenerator {
	o := buildOptions(opts)
	return &TemplateGenerator{
		catalog: catalog,
		config:  cfg,
		log:     o.log.With(zap.String("topic", catalog.Topic)),
		rng:     sampler.New(cfg.Seed),
	}
}

// Topic returns the catalog's topic.
func (g *TemplateGenerator) Topic() string { return g.catalog.Topic }

// Difficulties returns the catalog keys in ascending order.
func (g *TemplateGenerator) Difficulties() []int { return g.catalog.Keys() }

// Generate builds a fresh exercise from the template keyed by difficulty.
func (g *TemplateGenerator) Generate(difficulty int) (*problemgen.ExerciseRecord, error) {
	tmpl, ok := g.catalog.Lookup(difficulty)
	if !ok {
		return nil, &problemgen.ErrUnknownTemplate{Topic: g.catalog.Topic, Difficulty: difficulty}
	}

	res, attempts, err := g.draw(tmpl)
	if err != nil {
		g.log.Debug("sampling exhausted",
			zap.Int("difficulty", difficulty),
			zap.Int("attempts", attempts))
		return nil, err
	}

	r := &problemgen.ExerciseRecord{
		Type:          g.catalog.Type,
		Difficulty:    difficulty,
		Question:      res.Question,
		QuestionLaTeX: present.QuestionLaTeX(res.Question),
		Solution:      res.Solution.String(),
		SolutionLaTeX: present.SolutionLaTeX(res.Solution),
		Hints:         ComposeHints(g.catalog.Hints, res.Steps),
	}

	if verr := problemgen.RunValidators(g.config.Validators, r); verr != nil {
		return nil, fmt.Errorf("%s/%d %q: %w", g.catalog.Topic, difficulty, r.Question, verr)
	}

	g.log.Debug("generated",
		zap.Int("difficulty", difficulty),
		zap.String("template", tmpl.Name),
		zap.Int("attempts", attempts))
	return r, nil
}

// draw samples and builds tmpl. Constrained templates are redrawn until the
// answer is a whole number inside the target range.
func (g *TemplateGenerator) draw(tmpl *templates.Template) (templates.Result, int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !tmpl.Constrained {
		return tmpl.Generate(g.rng), 1, nil
	}
	return sampler.Until(tmpl.Name, g.config.MaxAttempts,
		func() templates.Result { return tmpl.Generate(g.rng) },
		func(res templates.Result) bool {
			n, ok := res.Solution.Int()
			return ok && g.config.TargetRange.Contains(n)
		})
}

// ComposeHints returns the general hints followed by the worked steps.
func ComposeHints(general, steps []string) []string {
	return slices.Concat(general, steps)
}
