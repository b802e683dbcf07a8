package templates

import (
	"fmt"

	"github.com/abhisek/exgen/internal/algebra"
	"github.com/abhisek/exgen/internal/sampler"
)

// EquationHints are the general tips for linear equations.
var EquationHints = []string{
	"Move the constant terms to the other side of the equals sign",
	"Divide both sides by the coefficient of x",
}

// Equation returns the linear equation catalog. Solutions are exact
// fractions.
func Equation() (*Catalog, error) {
	return NewCatalog("equation", "equation", EquationHints,
		Template{
			Key: 1, Name: "equals-zero", Shape: "ax + b = 0",
			Sample: func(s *sampler.Sampler) Params {
				return Params{A: s.Between(1, 4), B: s.Between(1, 4)}
			},
			Build: buildEqualsZero,
		},
		Template{
			Key: 2, Name: "two-sided", Shape: "ax - b = c",
			Sample: func(s *sampler.Sampler) Params {
				return Params{A: s.Between(1, 9), B: s.Between(1, 9), C: s.Between(-9, 9)}
			},
			Build: buildTwoSided,
		},
		Template{
			Key: 3, Name: "grouped", Shape: "a(x + b) = c",
			Sample: func(s *sampler.Sampler) Params {
				return Params{A: s.Between(2, 9), B: s.Between(1, 9), C: s.Between(1, 30)}
			},
			Build: buildGrouped,
		},
	)
}

// ax + b = 0
func buildEqualsZero(p Params) Result {
	a, b := p.A, p.B
	sol := algebra.NewRational(-b, a)
	return Result{
		Question: fmt.Sprintf("%sx + %d = 0", factor(a), b),
		Solution: sol,
		Steps: []string{
			fmt.Sprintf("Move %d to the other side: %sx = -%d", b, factor(a), b),
			fmt.Sprintf("Divide both sides by %d: x = -%d/%d", a, b, a),
			finalStep(sol),
		},
	}
}

// ax - b = c
func buildTwoSided(p Params) Result {
	a, b, c := p.A, p.B, p.C
	sol := algebra.NewRational(c+b, a)
	return Result{
		Question: fmt.Sprintf("%sx - %d = %d", factor(a), b, c),
		Solution: sol,
		Steps: []string{
			fmt.Sprintf("Add %d to both sides: %sx = %d%s", b, factor(a), c, signed(b)),
			fmt.Sprintf("Simplify: %sx = %d", factor(a), c+b),
			fmt.Sprintf("Divide both sides by %d: x = %d/%d", a, c+b, a),
			finalStep(sol),
		},
	}
}

// a(x + b) = c
func buildGrouped(p Params) Result {
	a, b, c := p.A, p.B, p.C
	inner := algebra.NewRational(c, a)
	sol := inner.Sub(algebra.Whole(b))
	return Result{
		Question: fmt.Sprintf("%d(x + %d) = %d", a, b, c),
		Solution: sol,
		Steps: []string{
			fmt.Sprintf("Divide both sides by %d: x + %d = %s", a, b, inner),
			fmt.Sprintf("Subtract %d from both sides: x = %s - %d", b, inner, b),
			finalStep(sol),
		},
	}
}
