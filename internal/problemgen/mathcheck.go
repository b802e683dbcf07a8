package problemgen

import (
	"fmt"
	"regexp"

	"github.com/abhisek/exgen/internal/algebra"
)

// MathCheckValidator independently recomputes the solution from the question
// text for the plain arithmetic, linear equation and grouped fraction shapes.
// Radical and mixed-representation questions are not computable here and pass
// through silently.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(r *ExerciseRecord) *ValidationError {
	computed, err := computeAnswer(r.Question)
	if err != nil {
		return nil
	}
	if !sameValue(computed.String(), r.Solution) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %q but record claims %q", computed, r.Solution),
		}
	}
	return nil
}

// Patterns for the question shapes that can be recomputed. Each is anchored
// so that partial matches inside radical questions are never evaluated.
var (
	// "12 + 7", "56 ÷ 8", "6 · 9"
	intArithRe = regexp.MustCompile(`^(-?\d+) ([+\-·×÷]) (-?\d+)$`)

	// "3x + 6 = 0", "x - 4 = 5"
	equationRe = regexp.MustCompile(`^(\d*)x ([+-]) (\d+) = (-?\d+)$`)

	// "4(x + 2) = 20"
	equationGroupRe = regexp.MustCompile(`^(\d+)\(x ([+-]) (\d+)\) = (-?\d+)$`)

	// "(3/4 + 1/2) · 4", "(7/4 - 1/2) : 1/4"
	fractionGroupRe = regexp.MustCompile(`^\((-?\d+/\d+) ([+-]) (\d+/\d+)\) ([·:÷]) (\d+(?:/\d+)?)$`)
)

// computeAnswer extracts and evaluates the question. Returns an error when
// the question has none of the computable shapes.
func computeAnswer(text string) (algebra.Rational, error) {
	if m := intArithRe.FindStringSubmatch(text); m != nil {
		a, _ := parseNumber(m[1])
		b, _ := parseNumber(m[3])
		return applyOp(a, normalizeOp(m[2]), b)
	}

	if m := equationRe.FindStringSubmatch(text); m != nil {
		a := algebra.Whole(1)
		if m[1] != "" {
			a, _ = parseNumber(m[1])
		}
		b, _ := parseNumber(m[3])
		c, _ := parseNumber(m[4])
		// ax ± b = c  =>  x = (c ∓ b) / a
		rhs := c.Sub(b)
		if m[2] == "-" {
			rhs = c.Add(b)
		}
		return applyOp(rhs, "/", a)
	}

	if m := equationGroupRe.FindStringSubmatch(text); m != nil {
		a, _ := parseNumber(m[1])
		b, _ := parseNumber(m[3])
		c, _ := parseNumber(m[4])
		inner, err := applyOp(c, "/", a)
		if err != nil {
			return algebra.Rational{}, err
		}
		if m[2] == "-" {
			return inner.Add(b), nil
		}
		return inner.Sub(b), nil
	}

	if m := fractionGroupRe.FindStringSubmatch(text); m != nil {
		a, _ := parseNumber(m[1])
		b, _ := parseNumber(m[3])
		k, _ := parseNumber(m[5])
		inner, err := applyOp(a, m[2], b)
		if err != nil {
			return algebra.Rational{}, err
		}
		return applyOp(inner, normalizeOp(m[4]), k)
	}

	return algebra.Rational{}, fmt.Errorf("not computable")
}

// applyOp evaluates a binary operation exactly.
func applyOp(a algebra.Rational, op string, b algebra.Rational) (algebra.Rational, error) {
	switch op {
	case "+":
		return a.Add(b), nil
	case "-":
		return a.Sub(b), nil
	case "*":
		return a.Mul(b), nil
	case "/":
		if b.Sign() == 0 {
			return algebra.Rational{}, fmt.Errorf("division by zero")
		}
		return a.Div(b), nil
	default:
		return algebra.Rational{}, fmt.Errorf("unsupported operator: %s", op)
	}
}

// normalizeOp normalizes multiplication and division symbols.
func normalizeOp(op string) string {
	switch op {
	case "×", "·":
		return "*"
	case "÷", ":":
		return "/"
	default:
		return op
	}
}
