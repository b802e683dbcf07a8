package templates

import (
	"fmt"

	"github.com/abhisek/exgen/internal/algebra"
	"github.com/abhisek/exgen/internal/present"
	"github.com/abhisek/exgen/internal/sampler"
)

// MixedHints are the general tips for exercises mixing decimals, fractions
// and mixed numbers.
var MixedHints = []string{
	"Consider which representation (decimal or fraction) might be easier to work with",
	"Remember that decimals and fractions are different ways of representing the same values",
	"Look for opportunities to simplify at each step",
}

// Variants of the second mixed template.
const (
	mixedMultiTerm = iota
	mixedProduct
	mixedQuotient
)

// operator pairs for the multi-term variant
var multiTermOps = [][]string{{"+", "-"}, {"-", "+"}, {"+", "·"}, {"·", "+"}}

// Mixed returns the mixed representation catalog. Every operand is drawn in a
// randomly weighted display style; solutions are computed exactly from the
// displayed values.
func Mixed() (*Catalog, error) {
	return NewCatalog("mixed", "mixed_representation", MixedHints,
		Template{
			Key: 1, Name: "mixed-sum", Shape: "x ± y",
			Sample: func(s *sampler.Sampler) Params {
				x, y := s.Fraction(), s.Decimal()
				if s.Chance(0.5) {
					x, y = s.Decimal(), s.Fraction()
				}
				return Params{
					F:      []algebra.Rational{x, y},
					Ops:    []string{sampler.Pick(s, []string{"+", "-"})},
					Styles: []present.Style{present.PickStyle(s), present.PickStyle(s)},
				}
			},
			Build: buildMixedSum,
		},
		Template{
			Key: 2, Name: "mixed-expression", Shape: "w ∘ f ∘ d | (f + d) · w | d ÷ f",
			Sample: func(s *sampler.Sampler) Params {
				p := Params{
					Variant: s.IntN(3),
					A:       s.Whole(),
					F:       []algebra.Rational{s.Fraction(), s.Decimal()},
					Styles:  []present.Style{present.PickStyle(s), present.PickStyle(s)},
				}
				if p.Variant == mixedMultiTerm {
					p.Ops = sampler.Pick(s, multiTermOps)
				}
				return p
			},
			Build: buildMixedExpression,
		},
	)
}

// show writes r in style, falling back to a fraction when the decimal would
// be rounded.
func show(r algebra.Rational, style present.Style) string {
	return present.FormatRational(r, present.ExactStyle(r, style))
}

func applyMixed(a algebra.Rational, op string, b algebra.Rational) algebra.Rational {
	switch op {
	case "+":
		return a.Add(b)
	case "-":
		return a.Sub(b)
	case "·":
		return a.Mul(b)
	default:
		return a.Div(b)
	}
}

// x ± y
func buildMixedSum(p Params) Result {
	x, y, op := p.F[0], p.F[1], p.Ops[0]
	sol := applyMixed(x, op, y)
	return Result{
		Question: fmt.Sprintf("%s %s %s", show(x, p.Styles[0]), op, show(y, p.Styles[1])),
		Solution: sol,
		Steps: []string{
			fmt.Sprintf("Convert both numbers to fractions: %s and %s", frac(x), frac(y)),
			fmt.Sprintf("Perform the operation: %s %s %s", frac(x), op, frac(y)),
			finalStep(sol),
		},
	}
}

func buildMixedExpression(p Params) Result {
	w := algebra.Whole(p.A)
	f, d := p.F[0], p.F[1]
	switch p.Variant {
	case mixedMultiTerm:
		return buildMultiTerm(w, f, d, p)
	case mixedProduct:
		return buildMixedProduct(w, f, d, p)
	default:
		return buildMixedQuotient(f, d, p)
	}
}

// w ∘ f ∘ d, multiplication before addition and subtraction
func buildMultiTerm(w, f, d algebra.Rational, p Params) Result {
	op1, op2 := p.Ops[0], p.Ops[1]
	var sol algebra.Rational
	var order string
	switch {
	case op2 == "·":
		prod := f.Mul(d)
		sol = applyMixed(w, op1, prod)
		order = fmt.Sprintf("Multiply first: %s · %s = %s", frac(f), frac(d), frac(prod))
	case op1 == "·":
		prod := w.Mul(f)
		sol = applyMixed(prod, op2, d)
		order = fmt.Sprintf("Multiply first: %s · %s = %s", frac(w), frac(f), frac(prod))
	default:
		left := applyMixed(w, op1, f)
		sol = applyMixed(left, op2, d)
		order = fmt.Sprintf("Work left to right: %s %s %s = %s", frac(w), op1, frac(f), frac(left))
	}
	return Result{
		Question: fmt.Sprintf("%s %s %s %s %s", frac(w), op1, show(f, p.Styles[0]), op2, show(d, p.Styles[1])),
		Solution: sol,
		Steps: []string{
			fmt.Sprintf("Convert all numbers to fractions: %s, %s and %s", frac(w), frac(f), frac(d)),
			"Follow the order of operations: multiplication and division before addition and subtraction",
			order,
			finalStep(sol),
		},
	}
}

// (f + d) · w
func buildMixedProduct(w, f, d algebra.Rational, p Params) Result {
	sum := f.Add(d)
	sol := sum.Mul(w)
	return Result{
		Question: fmt.Sprintf("(%s + %s) · %s", show(f, p.Styles[0]), present.FormatRational(d, present.StyleDecimal), frac(w)),
		Solution: sol,
		Steps: []string{
			fmt.Sprintf("First add the numbers in parentheses: %s + %s = %s", frac(f), frac(d), frac(sum)),
			fmt.Sprintf("Multiply the result by %s: %s · %s", frac(w), frac(sum), frac(w)),
			finalStep(sol),
		},
	}
}

// d ÷ f
func buildMixedQuotient(f, d algebra.Rational, p Params) Result {
	sol := d.Div(f)
	recip := algebra.Whole(1).Div(f)
	return Result{
		Question: fmt.Sprintf("%s ÷ %s", show(d, p.Styles[1]), show(f, p.Styles[0])),
		Solution: sol,
		Steps: []string{
			fmt.Sprintf("Convert both numbers to fractions: %s and %s", frac(d), frac(f)),
			fmt.Sprintf("Dividing by %s is the same as multiplying by %s", frac(f), frac(recip)),
			fmt.Sprintf("Multiply: %s · %s", frac(d), frac(recip)),
			finalStep(sol),
		},
	}
}
