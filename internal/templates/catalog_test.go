package templates

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/exgen/internal/present"
	"github.com/abhisek/exgen/internal/problemgen"
	"github.com/abhisek/exgen/internal/sampler"
)

func stubTemplate(key int) Template {
	return Template{
		Key:    key,
		Name:   "stub",
		Sample: func(*sampler.Sampler) Params { return Params{} },
		Build:  func(Params) Result { return Result{} },
	}
}

func TestNewCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		templates []Template
		want      string
	}{
		{"empty", nil, "no templates"},
		{"zero key", []Template{stubTemplate(0)}, "keys start at 1"},
		{"duplicate", []Template{stubTemplate(1), stubTemplate(1)}, "duplicate template key 1"},
		{"no builder", []Template{{Key: 1, Name: "half", Sample: stubTemplate(1).Sample}}, "no sampler or builder"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCatalog("stub", "stub", nil, tt.templates...)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, problemgen.ErrContractViolation))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNewCatalog_SortsKeys(t *testing.T) {
	c, err := NewCatalog("stub", "stub", nil, stubTemplate(3), stubTemplate(1), stubTemplate(2))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, c.Keys())

	_, ok := c.Lookup(2)
	assert.True(t, ok)
	_, ok = c.Lookup(999)
	assert.False(t, ok)
}

func allCatalogs(t *testing.T) []*Catalog {
	t.Helper()
	var out []*Catalog
	for _, build := range []func() (*Catalog, error){Radicals, RadicalsIntro, Fractions, Mixed, Arithmetic, Equation} {
		c, err := build()
		require.NoError(t, err)
		out = append(out, c)
	}
	return out
}

func TestCatalogs_Keys(t *testing.T) {
	want := map[string]int{
		"radicals":       13,
		"radicals-intro": 2,
		"fractions":      2,
		"mixed":          2,
		"arithmetic":     3,
		"equation":       3,
	}
	for _, c := range allCatalogs(t) {
		keys := c.Keys()
		assert.Len(t, keys, want[c.Topic], c.Topic)
		for i, k := range keys {
			assert.Equal(t, i+1, k, "%s keys are contiguous", c.Topic)
		}
	}
}

// record assembles what the engine would publish, without the engine.
func record(c *Catalog, key int, res Result) *problemgen.ExerciseRecord {
	return &problemgen.ExerciseRecord{
		Type:          c.Type,
		Difficulty:    key,
		Question:      res.Question,
		QuestionLaTeX: present.QuestionLaTeX(res.Question),
		Solution:      res.Solution.String(),
		SolutionLaTeX: present.SolutionLaTeX(res.Solution),
		Hints:         append(append([]string{}, c.Hints...), res.Steps...),
	}
}

func TestCatalogs_RecordsPassValidators(t *testing.T) {
	validators := problemgen.DefaultValidators()
	for _, c := range allCatalogs(t) {
		for _, tmpl := range c.Templates() {
			s := sampler.New(uint64(tmpl.Key) * 7919)
			for i := 0; i < 200; i++ {
				res := tmpl.Generate(s)
				r := record(c, tmpl.Key, res)
				if verr := problemgen.RunValidators(validators, r); verr != nil {
					t.Fatalf("%s/%d %q = %q: %v", c.Topic, tmpl.Key, r.Question, r.Solution, verr)
				}
				require.NoError(t, problemgen.ValidateRecord(r), "%s/%d %q", c.Topic, tmpl.Key, r.Question)
			}
		}
	}
}

func TestCatalogs_FinalStepStatesSolution(t *testing.T) {
	for _, c := range allCatalogs(t) {
		for _, tmpl := range c.Templates() {
			s := sampler.New(42)
			for i := 0; i < 50; i++ {
				res := tmpl.Generate(s)
				last := res.Steps[len(res.Steps)-1]
				assert.True(t, strings.HasSuffix(last, res.Solution.String()),
					"%s/%d: last step %q does not end with %q", c.Topic, tmpl.Key, last, res.Solution)
			}
		}
	}
}

func TestCatalogs_Deterministic(t *testing.T) {
	for _, c := range allCatalogs(t) {
		for _, tmpl := range c.Templates() {
			s1, s2 := sampler.New(2024), sampler.New(2024)
			for i := 0; i < 20; i++ {
				a, b := tmpl.Generate(s1), tmpl.Generate(s2)
				assert.Equal(t, a.Question, b.Question)
				assert.Equal(t, a.Solution.String(), b.Solution.String())
				assert.Equal(t, a.Steps, b.Steps)
			}
		}
	}
}

// a lone 1 multiplying a radical, a group or x
var unitFactorRe = regexp.MustCompile(`(^|[^\d/.])1(√|\(|x)`)

func TestCatalogs_NoUnitFactors(t *testing.T) {
	for _, c := range allCatalogs(t) {
		for _, tmpl := range c.Templates() {
			s := sampler.New(7)
			for i := 0; i < 100; i++ {
				q := tmpl.Generate(s).Question
				assert.False(t, unitFactorRe.MatchString(q), "%s/%d: %q", c.Topic, tmpl.Key, q)
			}
		}
	}
}
