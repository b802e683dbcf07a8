package templates

import (
	"fmt"

	"github.com/abhisek/exgen/internal/algebra"
	"github.com/abhisek/exgen/internal/sampler"
)

// RadicalsIntro returns the introductory radical lesson: smaller radicands
// and coefficients, and a first exercise whose answer keeps a radical.
func RadicalsIntro() (*Catalog, error) {
	sample := func(s *sampler.Sampler) Params {
		return Params{R: s.IntroRoot(), B: s.IntroCoefficient()}
	}
	return NewCatalog("radicals-intro", "radical_expression", RadicalHints,
		Template{
			Key: 1, Name: "distribute-and-cancel", Shape: "√r(b + √r) - √r",
			Sample: sample, Build: buildIntroDistribute,
		},
		Template{
			Key: 2, Name: "difference-of-squares", Shape: "(√r + b)(√r - b)",
			Sample: sample, Build: buildDifferenceOfSquares,
		},
	)
}

// √r(b + √r) - √r
func buildIntroDistribute(p Params) Result {
	r, b := p.R, p.B
	sol := algebra.NewSum().
		AddProduct([]algebra.Term{algebra.Root(r)}, []algebra.Term{algebra.Int(b), algebra.Root(r)}).
		Sub(algebra.Root(r)).
		Simplify()
	return Result{
		Question: fmt.Sprintf("√%d(%d + √%d) - √%d", r, b, r, r),
		Solution: sol,
		Steps: []string{
			fmt.Sprintf("First distribute √%d: (√%d · %d) + (√%d · √%d) - √%d", r, r, b, r, r, r),
			fmt.Sprintf("Simplify √%d · √%d = %d", r, r, r),
			fmt.Sprintf("Now we have: %s + %d - √%d", root(b, r), r, r),
			fmt.Sprintf("Combine the like terms with √%d: (%d - 1)√%d + %d", r, b, r, r),
			finalStep(sol),
		},
	}
}
