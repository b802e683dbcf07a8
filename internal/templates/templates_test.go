package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/exgen/internal/algebra"
	"github.com/abhisek/exgen/internal/present"
	"github.com/abhisek/exgen/internal/sampler"
)

func lookup(t *testing.T, build func() (*Catalog, error), key int) *Template {
	t.Helper()
	c, err := build()
	require.NoError(t, err)
	tmpl, ok := c.Lookup(key)
	require.True(t, ok, "key %d", key)
	return tmpl
}

func TestBuild_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		catalog  func() (*Catalog, error)
		key      int
		params   Params
		question string
		solution string
	}{
		{"intro distribute", RadicalsIntro, 1, Params{R: 5, B: 3}, "√5(3 + √5) - √5", "2√5 + 5"},
		{"intro unit coefficient", RadicalsIntro, 1, Params{R: 3, B: 1}, "√3(1 + √3) - √3", "3"},
		{"difference of squares", Radicals, 3, Params{R: 3, B: 2}, "(√3 + 2)(√3 - 2)", "-1"},
		{"distribute cancel", Radicals, 1, Params{R: 7, B: 2}, "√7(2 + √7) - 2√7", "7"},
		{"scaled cancel unit", Radicals, 4, Params{A: 1, B: 6, C: 5}, "(6 + √5) - √5", "6"},
		{"square binomial", Radicals, 6, Params{A: 1, B: 3}, "(1 + √3)² - 2·√3", "4"},
		{"cross radicals", Radicals, 7, Params{A: 2, C: 3}, "√2(3 - √3) + √3(√2 - √6)", "0"},
		{"hidden square", Radicals, 9, Params{A: 2, B: 3, C: 2, D: 5}, "4·√3 + 2(5 - √12)", "10"},
		{"extract then difference", Radicals, 12, Params{A: 2, B: 3, C: 1}, "(√12 + 1)(2√3 - 1)", "11"},
		{"two squares", Radicals, 13, Params{A: 1, B: 2}, "(1 + √2)² + (1 - √2)²", "6"},
		{"fraction sum", Fractions, 1, Params{F: []algebra.Rational{
			algebra.NewRational(1, 2), algebra.NewRational(1, 4), algebra.Whole(4),
		}}, "(1/2 + 1/4) · 4", "3"},
		{"fraction difference", Fractions, 2, Params{F: []algebra.Rational{
			algebra.NewRational(7, 4), algebra.NewRational(1, 2), algebra.NewRational(1, 4),
		}}, "(7/4 - 1/2) : 1/4", "5"},
		{"arithmetic division", Arithmetic, 1, Params{A: 56, B: 8, Ops: []string{"÷"}}, "56 ÷ 8", "7"},
		{"arithmetic negative", Arithmetic, 1, Params{A: 3, B: 9, Ops: []string{"-"}}, "3 - 9", "-6"},
		{"equation zero", Equation, 1, Params{A: 2, B: 3}, "2x + 3 = 0", "-3/2"},
		{"equation unit", Equation, 1, Params{A: 1, B: 2}, "x + 2 = 0", "-2"},
		{"equation two sided", Equation, 2, Params{A: 4, B: 3, C: -1}, "4x - 3 = -1", "1/2"},
		{"equation grouped", Equation, 3, Params{A: 3, B: 2, C: 12}, "3(x + 2) = 12", "2"},
		{"mixed quotient", Mixed, 2, Params{
			Variant: mixedQuotient, A: 4,
			F:       []algebra.Rational{algebra.NewRational(1, 4), algebra.NewRational(1, 2)},
			Styles:  []present.Style{present.StyleFraction, present.StyleDecimal},
		}, "0.5 ÷ 1/4", "2"},
		{"mixed product", Mixed, 2, Params{
			Variant: mixedProduct, A: 4,
			F:       []algebra.Rational{algebra.NewRational(1, 2), algebra.NewRational(1, 4)},
			Styles:  []present.Style{present.StyleFraction, present.StyleFraction},
		}, "(1/2 + 0.25) · 4", "3"},
		{"mixed precedence", Mixed, 2, Params{
			Variant: mixedMultiTerm, A: 2, Ops: []string{"+", "·"},
			F:       []algebra.Rational{algebra.NewRational(1, 2), algebra.NewRational(1, 4)},
			Styles:  []present.Style{present.StyleFraction, present.StyleDecimal},
		}, "2 + 1/2 · 0.25", "17/8"},
		{"mixed sum", Mixed, 1, Params{
			F:      []algebra.Rational{algebra.NewRational(1, 3), algebra.NewRational(3, 4)},
			Ops:    []string{"-"},
			Styles: []present.Style{present.StyleDecimal, present.StyleDecimal},
		}, "1/3 - 0.75", "-5/12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := lookup(t, tt.catalog, tt.key).Build(tt.params)
			assert.Equal(t, tt.question, res.Question)
			assert.Equal(t, tt.solution, res.Solution.String())
			assert.Equal(t, finalStep(res.Solution), res.Steps[len(res.Steps)-1])
		})
	}
}

func TestCrossRadicals_AlwaysZero(t *testing.T) {
	tmpl := lookup(t, Radicals, 7)
	s := sampler.New(11)
	for i := 0; i < 200; i++ {
		p := tmpl.Sample(s)
		require.NotEqual(t, p.A, p.C)
		res := tmpl.Build(p)
		assert.Equal(t, "0", res.Solution.String(), res.Question)
		assert.Equal(t, 5, strings.Count(res.Question, "√"), res.Question)
	}
}

func TestFractions_HitTarget(t *testing.T) {
	targets := map[string]bool{}
	for _, n := range sampler.NiceResults() {
		targets[algebra.Whole(n).String()] = true
	}
	for _, f := range sampler.NiceFractions() {
		targets[f.String()] = true
	}
	for _, key := range []int{1, 2} {
		tmpl := lookup(t, Fractions, key)
		s := sampler.New(99)
		for i := 0; i < 200; i++ {
			res := tmpl.Generate(s)
			assert.True(t, targets[res.Solution.String()], "key %d: %q = %q", key, res.Question, res.Solution)
		}
	}
}

func TestArithmetic_DivisionIsExact(t *testing.T) {
	for key := 1; key <= 3; key++ {
		tmpl := lookup(t, Arithmetic, key)
		s := sampler.New(uint64(key))
		for i := 0; i < 300; i++ {
			p := tmpl.Sample(s)
			hi := int64(10*key - 1)
			assert.True(t, p.B >= 1 && p.B <= hi)
			if p.Ops[0] == "÷" {
				assert.Zero(t, p.A%p.B)
			} else {
				assert.True(t, p.A >= 1 && p.A <= hi)
			}
		}
	}
}

func TestMixed_DecimalsNeverRounded(t *testing.T) {
	tmpl := lookup(t, Mixed, 1)
	s := sampler.New(5)
	for i := 0; i < 300; i++ {
		q := tmpl.Generate(s).Question
		for _, field := range strings.Fields(q) {
			if i := strings.Index(field, "."); i >= 0 {
				assert.LessOrEqual(t, len(field)-i-1, 3, q)
			}
		}
	}
}
