package present

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/exgen/internal/algebra"
)

// SolutionLaTeX renders a canonical solution from its structured form:
// radical terms by radicand ascending, then the rational part.
func SolutionLaTeX(v algebra.Value) string {
	switch s := v.(type) {
	case algebra.Expression:
		return expressionLaTeX(s)
	case algebra.Rational:
		return RationalLaTeX(s)
	default:
		return QuestionLaTeX(v.String())
	}
}

func expressionLaTeX(e algebra.Expression) string {
	var parts []string
	for _, t := range e.Terms() {
		parts = append(parts, termLaTeX(t))
	}
	if e.Rational != 0 || len(parts) == 0 {
		parts = append(parts, strconv.FormatInt(e.Rational, 10))
	}
	return strings.ReplaceAll(strings.Join(parts, " + "), "+ -", "- ")
}

func termLaTeX(t algebra.Term) string {
	root := fmt.Sprintf(`\sqrt{%d}`, t.Radicand)
	switch t.Coefficient {
	case 1:
		return root
	case -1:
		return "-" + root
	default:
		return strconv.FormatInt(t.Coefficient, 10) + root
	}
}

// RationalLaTeX renders r as an integer or a stacked fraction with the sign
// in front.
func RationalLaTeX(r algebra.Rational) string {
	if n, ok := r.Int(); ok {
		return strconv.FormatInt(n, 10)
	}
	num := r.Num()
	sign := ""
	if num < 0 {
		sign, num = "-", -num
	}
	return fmt.Sprintf(`%s\frac{%d}{%d}`, sign, num, r.Den())
}
