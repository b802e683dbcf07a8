package present

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/exgen/internal/algebra"
	"github.com/abhisek/exgen/internal/sampler"
)

// Style selects how a rational number is written.
type Style string

const (
	StyleFraction Style = "fraction"     // 3/2
	StyleDecimal  Style = "decimal"      // 1.5
	StyleMixed    Style = "mixed-number" // 1 1/2
)

// Weights used by PickStyle, in the order decimal, fraction, mixed.
var styleWeights = []int{40, 42, 18}

// PickStyle draws a display style: decimal 40%, fraction 42%, mixed 18%.
func PickStyle(s *sampler.Sampler) Style {
	return []Style{StyleDecimal, StyleFraction, StyleMixed}[s.Weighted(styleWeights)]
}

// Terminates reports whether r has an exact decimal form with at most three
// decimal places.
func Terminates(r algebra.Rational) bool {
	return 1000%r.Den() == 0
}

// ExactStyle returns style unless it would round r, in which case it falls
// back to StyleFraction.
func ExactStyle(r algebra.Rational, style Style) Style {
	if style == StyleDecimal && !Terminates(r) {
		return StyleFraction
	}
	return style
}

// FormatRational writes r in the given style. Whole numbers are always
// written as integers. Decimals are rounded half-up to three places with
// trailing zeros removed.
func FormatRational(r algebra.Rational, style Style) string {
	if n, ok := r.Int(); ok {
		return strconv.FormatInt(n, 10)
	}
	switch style {
	case StyleDecimal:
		return formatDecimal(r)
	case StyleMixed:
		return formatMixed(r)
	default:
		return r.String()
	}
}

// formatDecimal rounds |r| half-up to three decimal places in integer
// arithmetic.
func formatDecimal(r algebra.Rational) string {
	num, den := r.Num(), r.Den()
	sign := ""
	if num < 0 {
		sign, num = "-", -num
	}
	thousandths := (num*1000*2 + den) / (den * 2)
	whole, frac := thousandths/1000, thousandths%1000
	if frac == 0 {
		if whole == 0 {
			return "0"
		}
		return sign + strconv.FormatInt(whole, 10)
	}
	digits := strings.TrimRight(fmt.Sprintf("%03d", frac), "0")
	return fmt.Sprintf("%s%d.%s", sign, whole, digits)
}

// formatMixed writes an improper fraction as "w a/b" with the sign on the
// whole part; proper fractions stay "a/b".
func formatMixed(r algebra.Rational) string {
	num, den := r.Num(), r.Den()
	sign := ""
	if num < 0 {
		sign, num = "-", -num
	}
	whole, rem := num/den, num%den
	if whole == 0 {
		return fmt.Sprintf("%s%d/%d", sign, rem, den)
	}
	return fmt.Sprintf("%s%d %d/%d", sign, whole, rem, den)
}
