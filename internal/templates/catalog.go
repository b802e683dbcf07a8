// Package templates holds the exercise catalogs. A template draws its
// parameters from a sampler and builds the question, the canonical solution
// and the worked steps from those parameters alone.
package templates

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/exgen/internal/algebra"
	"github.com/abhisek/exgen/internal/present"
	"github.com/abhisek/exgen/internal/problemgen"
	"github.com/abhisek/exgen/internal/sampler"
)

// Params are the sampled values a template is built from. Each template uses
// the subset it needs.
type Params struct {
	A, B, C, D int64
	R          int64 // radicand
	Variant    int
	F          []algebra.Rational
	Ops        []string
	Styles     []present.Style
}

// Result is a built exercise before presentation.
type Result struct {
	// Question is the unsimplified exercise, terms in authored order.
	Question string

	// Solution is the canonical value of Question.
	Solution algebra.Value

	// Steps narrate the simplification. The last step contains
	// Solution.String() verbatim.
	Steps []string
}

// Template is one keyed exercise shape.
type Template struct {
	Key   int
	Name  string
	Shape string

	// Constrained templates only accept draws whose solution is a whole
	// number inside the configured target range.
	Constrained bool

	Sample func(s *sampler.Sampler) Params
	Build  func(p Params) Result
}

// Generate draws parameters and builds the template once.
func (t *Template) Generate(s *sampler.Sampler) Result {
	return t.Build(t.Sample(s))
}

// Catalog is the immutable, keyed set of templates for one topic.
type Catalog struct {
	Topic string   // e.g. "radicals"
	Type  string   // record type tag, e.g. "radical_expression"
	Hints []string // general hints placed before the steps

	templates []Template
	byKey     map[int]*Template
}

// NewCatalog validates and indexes templates. Invalid catalogs return an
// error wrapping problemgen.ErrContractViolation.
func NewCatalog(topic, typ string, hints []string, templates ...Template) (*Catalog, error) {
	if err := validateTemplates(templates); err != nil {
		return nil, fmt.Errorf("catalog %q: %w: %w", topic, problemgen.ErrContractViolation, err)
	}
	c := &Catalog{
		Topic:     topic,
		Type:      typ,
		Hints:     slices.Clone(hints),
		templates: slices.Clone(templates),
		byKey:     make(map[int]*Template, len(templates)),
	}
	slices.SortFunc(c.templates, func(a, b Template) int { return a.Key - b.Key })
	for i := range c.templates {
		c.byKey[c.templates[i].Key] = &c.templates[i]
	}
	return c, nil
}

// validateTemplates collects every structural problem in templates.
func validateTemplates(templates []Template) error {
	if len(templates) == 0 {
		return errors.New("no templates")
	}
	var errs []string
	seen := make(map[int]bool, len(templates))
	for _, t := range templates {
		if t.Key < 1 {
			errs = append(errs, fmt.Sprintf("template %q has key %d, keys start at 1", t.Name, t.Key))
		}
		if seen[t.Key] {
			errs = append(errs, fmt.Sprintf("duplicate template key %d", t.Key))
		}
		seen[t.Key] = true
		if t.Sample == nil || t.Build == nil {
			errs = append(errs, fmt.Sprintf("template %d (%q) has no sampler or builder", t.Key, t.Name))
		}
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Lookup returns the template with the given key.
func (c *Catalog) Lookup(key int) (*Template, bool) {
	t, ok := c.byKey[key]
	return t, ok
}

// Keys returns the template keys in ascending order.
func (c *Catalog) Keys() []int {
	keys := make([]int, len(c.templates))
	for i, t := range c.templates {
		keys[i] = t.Key
	}
	return keys
}

// Templates returns the templates ordered by key.
func (c *Catalog) Templates() []Template {
	return slices.Clone(c.templates)
}
