package templates

import (
	"fmt"
	"strconv"

	"github.com/abhisek/exgen/internal/algebra"
)

// root writes c√r, dropping a coefficient of 1.
func root(c, r int64) string {
	return algebra.NewTerm(c, r).String()
}

// factor writes a leading multiplier, dropping 1 so that "1(" never appears.
func factor(c int64) string {
	if c == 1 {
		return ""
	}
	return strconv.FormatInt(c, 10)
}

// dotRoot writes c·√r, or just √r when c is 1.
func dotRoot(c, r int64) string {
	if c == 1 {
		return fmt.Sprintf("√%d", r)
	}
	return fmt.Sprintf("%d·√%d", c, r)
}

// signed writes " + n" or " - |n|".
func signed(n int64) string {
	if n < 0 {
		return fmt.Sprintf(" - %d", -n)
	}
	return fmt.Sprintf(" + %d", n)
}

// finalStep is the last step of every template; it states the solution
// exactly as the record does.
func finalStep(v algebra.Value) string {
	return "Final answer: " + v.String()
}
