package templates

import (
	"fmt"

	"github.com/abhisek/exgen/internal/algebra"
	"github.com/abhisek/exgen/internal/present"
	"github.com/abhisek/exgen/internal/sampler"
)

// FractionHints are the general tips for fraction arithmetic.
var FractionHints = []string{
	"Try to bring all numbers to the same representation",
	"Look for common factors or patterns between the fractions",
}

// Fractions returns the fraction arithmetic catalog. Both templates are built
// backwards from a nice target so the answer is always clean.
func Fractions() (*Catalog, error) {
	return NewCatalog("fractions", "fraction_arithmetic", FractionHints,
		Template{
			Key: 1, Name: "sum-times", Shape: "(f1 + f2) · m",
			Sample: func(s *sampler.Sampler) Params {
				target := s.Target()
				f1, f2 := s.Fraction(), s.Fraction()
				m := target.Div(f1.Add(f2))
				return Params{F: []algebra.Rational{f1, f2, m}}
			},
			Build: buildSumTimes,
		},
		Template{
			Key: 2, Name: "difference-divided", Shape: "(f1 - f2) : f3",
			Sample: func(s *sampler.Sampler) Params {
				target := s.Target()
				f2, f3 := s.Fraction(), s.Fraction()
				// (f1 - f2) : f3 = target
				f1 := target.Mul(f3).Add(f2)
				return Params{F: []algebra.Rational{f1, f2, f3}}
			},
			Build: buildDifferenceDivided,
		},
	)
}

func frac(r algebra.Rational) string {
	return present.FormatRational(r, present.StyleFraction)
}

// (f1 + f2) · m
func buildSumTimes(p Params) Result {
	f1, f2, m := p.F[0], p.F[1], p.F[2]
	sum := f1.Add(f2)
	sol := sum.Mul(m)
	return Result{
		Question: fmt.Sprintf("(%s + %s) · %s", frac(f1), frac(f2), frac(m)),
		Solution: sol,
		Steps: []string{
			fmt.Sprintf("First add the fractions: %s + %s", frac(f1), frac(f2)),
			fmt.Sprintf("The sum is: %s", frac(sum)),
			fmt.Sprintf("Multiply the sum by the factor: %s · %s", frac(sum), frac(m)),
			finalStep(sol),
		},
	}
}

// (f1 - f2) : f3
func buildDifferenceDivided(p Params) Result {
	f1, f2, f3 := p.F[0], p.F[1], p.F[2]
	diff := f1.Sub(f2)
	sol := diff.Div(f3)
	return Result{
		Question: fmt.Sprintf("(%s - %s) : %s", frac(f1), frac(f2), frac(f3)),
		Solution: sol,
		Steps: []string{
			fmt.Sprintf("First subtract the fractions: %s - %s", frac(f1), frac(f2)),
			fmt.Sprintf("The difference is: %s", frac(diff)),
			fmt.Sprintf("Dividing by %s is the same as multiplying by %s", frac(f3), frac(algebra.Whole(1).Div(f3))),
			fmt.Sprintf("Compute: %s · %s", frac(diff), frac(algebra.Whole(1).Div(f3))),
			finalStep(sol),
		},
	}
}
