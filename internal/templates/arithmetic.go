package templates

import (
	"fmt"

	"github.com/abhisek/exgen/internal/algebra"
	"github.com/abhisek/exgen/internal/sampler"
)

// ArithmeticHints are the general tips for plain arithmetic.
var ArithmeticHints = []string{
	"Break numbers into smaller steps",
}

var arithmeticOps = []string{"+", "-", "·", "÷"}

var opNames = map[string]string{
	"+": "addition",
	"-": "subtraction",
	"·": "multiplication",
	"÷": "division",
}

// Arithmetic returns the two-operand arithmetic catalog. Key k draws operands
// from 1 to 10k-1; divisions always come out whole.
func Arithmetic() (*Catalog, error) {
	var ts []Template
	for key := 1; key <= 3; key++ {
		hi := int64(10*key - 1)
		ts = append(ts, Template{
			Key:   key,
			Name:  fmt.Sprintf("operands-up-to-%d", hi),
			Shape: "a ∘ b",
			Sample: func(s *sampler.Sampler) Params {
				a, b := s.Between(1, hi), s.Between(1, hi)
				op := sampler.Pick(s, arithmeticOps)
				if op == "÷" {
					a *= b
				}
				return Params{A: a, B: b, Ops: []string{op}}
			},
			Build: buildArithmetic,
		})
	}
	return NewCatalog("arithmetic", "arithmetic", ArithmeticHints, ts...)
}

func buildArithmetic(p Params) Result {
	a, b, op := p.A, p.B, p.Ops[0]
	var n int64
	var step string
	switch op {
	case "+":
		n = a + b
		step = fmt.Sprintf("Add the tens and the ones separately: %d + %d", a, b)
	case "-":
		n = a - b
		step = fmt.Sprintf("Subtract %d from %d", b, a)
	case "·":
		n = a * b
		step = fmt.Sprintf("Multiply %d by %d", a, b)
	default:
		n = a / b
		step = fmt.Sprintf("Find how many times %d fits into %d", b, a)
	}
	sol := algebra.Whole(n)
	return Result{
		Question: fmt.Sprintf("%d %s %d", a, op, b),
		Solution: sol,
		Steps: []string{
			fmt.Sprintf("Use the %s operation", opNames[op]),
			step,
			finalStep(sol),
		},
	}
}
