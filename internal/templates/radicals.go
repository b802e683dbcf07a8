package templates

import (
	"fmt"

	"github.com/abhisek/exgen/internal/algebra"
	"github.com/abhisek/exgen/internal/sampler"
)

// RadicalHints are the general tips shown before the steps of every radical
// exercise.
var RadicalHints = []string{
	"Remember the properties of square roots: √a · √a = a",
	"When multiplying terms with radicals, multiply the coefficients separately",
	"Look for opportunities to combine like radical terms",
}

// Radicals returns the catalog of radical expressions, keys 1 through 13.
func Radicals() (*Catalog, error) {
	return NewCatalog("radicals", "radical_expression", RadicalHints,
		Template{
			Key: 1, Name: "distribute-cancel", Shape: "√a(b + √a) - b√a",
			Sample: sampleRootCoef, Build: buildDistributeCancel,
		},
		Template{
			Key: 2, Name: "distribute-cancel-swapped", Shape: "√a(√a + b) - b√a",
			Sample: sampleRootCoef, Build: buildDistributeCancelSwapped,
		},
		Template{
			Key: 3, Name: "difference-of-squares", Shape: "(√a + b)(√a - b)", Constrained: true,
			Sample: sampleRootCoef, Build: buildDifferenceOfSquares,
		},
		Template{
			Key: 4, Name: "scaled-cancel", Shape: "a(b + √c) - a√c",
			Sample: func(s *sampler.Sampler) Params {
				return Params{A: s.Coefficient(), B: s.Coefficient(), C: s.Root()}
			},
			Build: buildScaledCancel,
		},
		Template{
			Key: 5, Name: "distribute-remainder", Shape: "√a(b + c√a) - b√a + d", Constrained: true,
			Sample: func(s *sampler.Sampler) Params {
				return Params{A: s.Root(), B: s.Coefficient(), C: s.Coefficient(), D: s.Coefficient()}
			},
			Build: buildDistributeRemainder,
		},
		Template{
			Key: 6, Name: "square-binomial", Shape: "(a + √b)² - 2a·√b",
			Sample: func(s *sampler.Sampler) Params {
				return Params{A: s.Coefficient(), B: s.Root()}
			},
			Build: buildSquareBinomial,
		},
		Template{
			Key: 7, Name: "cross-radicals", Shape: "√a(c - √c) + √c(√a - √ac)",
			Sample: func(s *sampler.Sampler) Params {
				a := s.Root()
				return Params{A: a, C: sampler.PickOther(s, sampler.NiceRoots(), a)}
			},
			Build: buildCrossRadicals,
		},
		Template{
			Key: 8, Name: "scaled-difference", Shape: "ca√b + c(d - a√b)", Constrained: true,
			Sample: sampleScaled, Build: buildScaledDifference,
		},
		Template{
			Key: 9, Name: "hidden-square", Shape: "ca·√b + c(d - √(ba²))", Constrained: true,
			Sample: sampleScaled, Build: buildHiddenSquare,
		},
		Template{
			Key: 10, Name: "distribute-product", Shape: "√a(b + c√a) - b√a", Constrained: true,
			Sample: sampleRootTwoCoefs, Build: buildDistributeProduct,
		},
		Template{
			Key: 11, Name: "distribute-product-swapped", Shape: "√a(c√a + b) - b√a", Constrained: true,
			Sample: sampleRootTwoCoefs, Build: buildDistributeProductSwapped,
		},
		Template{
			Key: 12, Name: "extract-then-difference", Shape: "(√(a²b) + c)(a√b - c)", Constrained: true,
			Sample: func(s *sampler.Sampler) Params {
				return Params{A: s.Coefficient(), B: s.Root(), C: s.Coefficient()}
			},
			Build: buildExtractThenDifference,
		},
		Template{
			Key: 13, Name: "two-squares", Shape: "(a + √b)² + (1 - a√b)²", Constrained: true,
			Sample: func(s *sampler.Sampler) Params {
				return Params{A: s.Coefficient(), B: s.Root()}
			},
			Build: buildTwoSquares,
		},
	)
}

func sampleRootCoef(s *sampler.Sampler) Params {
	return Params{R: s.Root(), B: s.Coefficient()}
}

func sampleRootTwoCoefs(s *sampler.Sampler) Params {
	return Params{A: s.Root(), B: s.Coefficient(), C: s.Coefficient()}
}

func sampleScaled(s *sampler.Sampler) Params {
	return Params{A: s.Coefficient(), B: s.Root(), C: s.Coefficient(), D: s.Coefficient()}
}

// √r(b + √r) - b√r
func buildDistributeCancel(p Params) Result {
	r, b := p.R, p.B
	sol := algebra.NewSum().
		AddProduct([]algebra.Term{algebra.Root(r)}, []algebra.Term{algebra.Int(b), algebra.Root(r)}).
		Sub(algebra.NewTerm(b, r)).
		Simplify()
	return Result{
		Question: fmt.Sprintf("√%d(%d + √%d) - %s", r, b, r, root(b, r)),
		Solution: sol,
		Steps: []string{
			fmt.Sprintf("First distribute √%d: (√%d · %d) + (√%d · √%d) - %s", r, r, b, r, r, root(b, r)),
			fmt.Sprintf("Simplify √%d · √%d = %d", r, r, r),
			fmt.Sprintf("Now we have: %s + %d - %s", root(b, r), r, root(b, r)),
			fmt.Sprintf("The %s terms cancel", root(b, r)),
			finalStep(sol),
		},
	}
}

// √r(√r + b) - b√r
func buildDistributeCancelSwapped(p Params) Result {
	r, b := p.R, p.B
	sol := algebra.NewSum().
		AddProduct([]algebra.Term{algebra.Root(r)}, []algebra.Term{algebra.Root(r), algebra.Int(b)}).
		Sub(algebra.NewTerm(b, r)).
		Simplify()
	return Result{
		Question: fmt.Sprintf("√%d(√%d + %d) - %s", r, r, b, root(b, r)),
		Solution: sol,
		Steps: []string{
			fmt.Sprintf("First distribute √%d: (√%d · √%d) + (√%d · %d) - %s", r, r, r, r, b, root(b, r)),
			fmt.Sprintf("Simplify √%d · √%d = %d", r, r, r),
			fmt.Sprintf("Now we have: %d + %s - %s", r, root(b, r), root(b, r)),
			fmt.Sprintf("The %s terms cancel", root(b, r)),
			finalStep(sol),
		},
	}
}

// (√r + b)(√r - b)
func buildDifferenceOfSquares(p Params) Result {
	r, b := p.R, p.B
	sol := algebra.NewSum().
		AddProduct(
			[]algebra.Term{algebra.Root(r), algebra.Int(b)},
			[]algebra.Term{algebra.Root(r), algebra.Int(-b)},
		).
		Simplify()
	return Result{
		Question: fmt.Sprintf("(√%d + %d)(√%d - %d)", r, b, r, b),
		Solution: sol,
		Steps: []string{
			"Use the difference of squares formula: (x + y)(x - y) = x² - y²",
			fmt.Sprintf("Here x = √%d and y = %d", r, b),
			fmt.Sprintf("Substitute: (√%d)² - %d²", r, b),
			fmt.Sprintf("Simplify (√%d)² = %d, so we get %d - %d", r, r, r, b*b),
			finalStep(sol),
		},
	}
}

// a(b + √c) - a√c
func buildScaledCancel(p Params) Result {
	a, b, c := p.A, p.B, p.C
	sol := algebra.NewSum().
		AddProduct([]algebra.Term{algebra.Int(a)}, []algebra.Term{algebra.Int(b), algebra.Root(c)}).
		Sub(algebra.NewTerm(a, c)).
		Simplify()
	return Result{
		Question: fmt.Sprintf("%s(%d + √%d) - %s", factor(a), b, c, root(a, c)),
		Solution: sol,
		Steps: []string{
			fmt.Sprintf("First distribute %d: (%d · %d) + (%d · √%d) - %s", a, a, b, a, c, root(a, c)),
			fmt.Sprintf("Now we have: %d + %s - %s", a*b, root(a, c), root(a, c)),
			fmt.Sprintf("Group the like terms with √%d", c),
			fmt.Sprintf("The %s terms cancel", root(a, c)),
			finalStep(sol),
		},
	}
}

// √a(b + c√a) - b√a + d
func buildDistributeRemainder(p Params) Result {
	a, b, c, d := p.A, p.B, p.C, p.D
	sol := algebra.NewSum().
		AddProduct([]algebra.Term{algebra.Root(a)}, []algebra.Term{algebra.Int(b), algebra.NewTerm(c, a)}).
		Sub(algebra.NewTerm(b, a)).
		AddInt(d).
		Simplify()
	return Result{
		Question: fmt.Sprintf("√%d(%d + %s) - %s + %d", a, b, root(c, a), root(b, a), d),
		Solution: sol,
		Steps: []string{
			fmt.Sprintf("First distribute √%d: (√%d · %d) + (√%d · %s) - %s + %d", a, a, b, a, root(c, a), root(b, a), d),
			fmt.Sprintf("Simplify √%d · √%d = %d", a, a, a),
			fmt.Sprintf("Now we have: %s + %d·%d - %s + %d", root(b, a), c, a, root(b, a), d),
			fmt.Sprintf("The %s terms cancel", root(b, a)),
			fmt.Sprintf("What remains is %d + %d", c*a, d),
			finalStep(sol),
		},
	}
}

// (a + √b)² - 2a·√b
func buildSquareBinomial(p Params) Result {
	a, b := p.A, p.B
	sol := algebra.NewSum().
		AddSquare([]algebra.Term{algebra.Int(a), algebra.Root(b)}).
		Sub(algebra.NewTerm(2*a, b)).
		Simplify()
	return Result{
		Question: fmt.Sprintf("(%d + √%d)² - %s", a, b, dotRoot(2*a, b)),
		Solution: sol,
		Steps: []string{
			fmt.Sprintf("First expand (%d + √%d)²", a, b),
			fmt.Sprintf("(%d + √%d)² = %d² + 2·%d·√%d + (√%d)²", a, b, a, a, b, b),
			fmt.Sprintf("Simplify (√%d)² = %d", b, b),
			fmt.Sprintf("Now we have: %d + %s + %d - %s", a*a, dotRoot(2*a, b), b, dotRoot(2*a, b)),
			fmt.Sprintf("The %s terms cancel", dotRoot(2*a, b)),
			finalStep(sol),
		},
	}
}

// √a(c - √c) + √c(√a - √ac), a ≠ c
func buildCrossRadicals(p Params) Result {
	a, c := p.A, p.C
	sol := algebra.NewSum().
		AddProduct([]algebra.Term{algebra.Root(a)}, []algebra.Term{algebra.Int(c), algebra.NewTerm(-1, c)}).
		AddProduct([]algebra.Term{algebra.Root(c)}, []algebra.Term{algebra.Root(a), algebra.NewTerm(-1, a*c)}).
		Simplify()
	return Result{
		Question: fmt.Sprintf("√%d(%d - √%d) + √%d(√%d - √%d)", a, c, c, c, a, a*c),
		Solution: sol,
		Steps: []string{
			fmt.Sprintf("First distribute √%d in the first term: %s - √%d", a, root(c, a), a*c),
			fmt.Sprintf("Then distribute √%d in the second term: √%d - √%d", c, a*c, a*c*c),
			fmt.Sprintf("Simplify √%d = %s", a*c*c, root(c, a)),
			fmt.Sprintf("Combine all terms: %s - √%d + √%d - %s", root(c, a), a*c, a*c, root(c, a)),
			fmt.Sprintf("The √%d terms and the %s terms cancel", a*c, root(c, a)),
			finalStep(sol),
		},
	}
}

// ca√b + c(d - a√b)
func buildScaledDifference(p Params) Result {
	a, b, c, d := p.A, p.B, p.C, p.D
	sol := algebra.NewSum().
		Add(algebra.NewTerm(c*a, b)).
		AddProduct([]algebra.Term{algebra.Int(c)}, []algebra.Term{algebra.Int(d), algebra.NewTerm(-a, b)}).
		Simplify()
	return Result{
		Question: fmt.Sprintf("%s + %s(%d - %s)", root(c*a, b), factor(c), d, root(a, b)),
		Solution: sol,
		Steps: []string{
			fmt.Sprintf("First distribute %d in the second term: %s + %d·%d - %s", c, root(c*a, b), c, d, root(c*a, b)),
			fmt.Sprintf("Group the like terms %s", root(c*a, b)),
			fmt.Sprintf("The %s terms cancel", root(c*a, b)),
			fmt.Sprintf("What remains is %d·%d", c, d),
			finalStep(sol),
		},
	}
}

// ca·√b + c(d - √(ba²))
func buildHiddenSquare(p Params) Result {
	a, b, c, d := p.A, p.B, p.C, p.D
	sol := algebra.NewSum().
		Add(algebra.NewTerm(c*a, b)).
		AddProduct([]algebra.Term{algebra.Int(c)}, []algebra.Term{algebra.Int(d), algebra.NewTerm(-1, b*a*a)}).
		Simplify()
	return Result{
		Question: fmt.Sprintf("%s + %s(%d - √%d)", dotRoot(c*a, b), factor(c), d, b*a*a),
		Solution: sol,
		Steps: []string{
			fmt.Sprintf("First distribute %d in the second term: %s + %d·%d - %d·√%d", c, dotRoot(c*a, b), c, d, c, b*a*a),
			fmt.Sprintf("Simplify √%d = √(%d·%d²) = %s", b*a*a, b, a, root(a, b)),
			fmt.Sprintf("Now we have: %s + %d·%d - %s", root(c*a, b), c, d, root(c*a, b)),
			fmt.Sprintf("The %s terms cancel", root(c*a, b)),
			fmt.Sprintf("What remains is %d·%d", c, d),
			finalStep(sol),
		},
	}
}

// √a(b + c√a) - b√a
func buildDistributeProduct(p Params) Result {
	a, b, c := p.A, p.B, p.C
	sol := algebra.NewSum().
		AddProduct([]algebra.Term{algebra.Root(a)}, []algebra.Term{algebra.Int(b), algebra.NewTerm(c, a)}).
		Sub(algebra.NewTerm(b, a)).
		Simplify()
	return Result{
		Question: fmt.Sprintf("√%d(%d + %s) - %s", a, b, root(c, a), root(b, a)),
		Solution: sol,
		Steps: []string{
			fmt.Sprintf("First distribute √%d in the first term: %s + %d·%d - %s", a, root(b, a), c, a, root(b, a)),
			fmt.Sprintf("The %s terms cancel", root(b, a)),
			fmt.Sprintf("What remains is %d·%d", c, a),
			finalStep(sol),
		},
	}
}

// √a(c√a + b) - b√a
func buildDistributeProductSwapped(p Params) Result {
	a, b, c := p.A, p.B, p.C
	sol := algebra.NewSum().
		AddProduct([]algebra.Term{algebra.Root(a)}, []algebra.Term{algebra.NewTerm(c, a), algebra.Int(b)}).
		Sub(algebra.NewTerm(b, a)).
		Simplify()
	return Result{
		Question: fmt.Sprintf("√%d(%s + %d) - %s", a, root(c, a), b, root(b, a)),
		Solution: sol,
		Steps: []string{
			fmt.Sprintf("First distribute √%d in the first term: %d·%d + %s - %s", a, c, a, root(b, a), root(b, a)),
			fmt.Sprintf("The %s terms cancel", root(b, a)),
			fmt.Sprintf("What remains is %d·%d", c, a),
			finalStep(sol),
		},
	}
}

// (√(a²b) + c)(a√b - c)
func buildExtractThenDifference(p Params) Result {
	a, b, c := p.A, p.B, p.C
	sol := algebra.NewSum().
		AddProduct(
			[]algebra.Term{algebra.Root(a * a * b), algebra.Int(c)},
			[]algebra.Term{algebra.NewTerm(a, b), algebra.Int(-c)},
		).
		Simplify()
	return Result{
		Question: fmt.Sprintf("(√%d + %d)(%s - %d)", a*a*b, c, root(a, b), c),
		Solution: sol,
		Steps: []string{
			fmt.Sprintf("First simplify √%d = √(%d²·%d) = %s", a*a*b, a, b, root(a, b)),
			fmt.Sprintf("Now we have (%s + %d)(%s - %d)", root(a, b), c, root(a, b), c),
			"This is the difference of squares: (p + q)(p - q) = p² - q²",
			fmt.Sprintf("Here p = %s and q = %d", root(a, b), c),
			fmt.Sprintf("So we get (%s)² - %d² = %d²·%d - %d", root(a, b), c, a, b, c*c),
			finalStep(sol),
		},
	}
}

// (a + √b)² + (1 - a√b)²
func buildTwoSquares(p Params) Result {
	a, b := p.A, p.B
	sol := algebra.NewSum().
		AddSquare([]algebra.Term{algebra.Int(a), algebra.Root(b)}).
		AddSquare([]algebra.Term{algebra.Int(1), algebra.NewTerm(-a, b)}).
		Simplify()
	return Result{
		Question: fmt.Sprintf("(%d + √%d)² + (1 - %s)²", a, b, root(a, b)),
		Solution: sol,
		Steps: []string{
			"Expand both squares with (x + y)² = x² + 2xy + y²",
			fmt.Sprintf("First part: (%d + √%d)² = %d + %s + %d", a, b, a*a, root(2*a, b), b),
			fmt.Sprintf("Second part: (1 - %s)² = 1 - %s + %d", root(a, b), root(2*a, b), a*a*b),
			fmt.Sprintf("The %s terms cancel", root(2*a, b)),
			fmt.Sprintf("Add what remains: %d + %d + 1 + %d", a*a, b, a*a*b),
			finalStep(sol),
		},
	}
}
