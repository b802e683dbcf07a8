package problemgen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/exgen/internal/algebra"
)

// maxOperand bounds every integer read from an answer, keeping the exact
// arithmetic that follows far from int64 overflow.
const maxOperand = 1_000_000

var (
	sqrtCallRe    = regexp.MustCompile(`sqrt\(\s*(\d+)\s*\)`)
	mixedNumberRe = regexp.MustCompile(`^(-?)(\d+)\s+(\d+)\s*/\s*(\d+)$`)
)

// CheckAnswer compares the learner's input against the exercise solution.
// Returns true if the answer is correct.
//
// Normalization rules:
// - Whitespace is trimmed
// - Equivalent fractions are accepted (e.g., "2/4" matches "1/2")
// - Terminating decimals are accepted (e.g., "0.75" matches "3/4")
// - Mixed numbers are accepted (e.g., "1 1/2" matches "3/2")
// - Radicals may be typed as √n or sqrt(n), in any term order
//   (e.g., "5 + 2sqrt(5)" matches "2√5 + 5")
// - A leading "x =" is ignored
func CheckAnswer(learnerAnswer string, record *ExerciseRecord) bool {
	learnerAnswer = strings.TrimSpace(learnerAnswer)
	if learnerAnswer == "" {
		return false
	}
	return sameValue(learnerAnswer, record.Solution)
}

// sameValue reports whether a and b parse to the same canonical value.
func sameValue(a, b string) bool {
	va, err := ParseValue(a)
	if err != nil {
		return false
	}
	vb, err := ParseValue(b)
	if err != nil {
		return false
	}
	return va.String() == vb.String()
}

// ParseValue parses an integer, fraction, decimal, mixed number or a sum of
// radical terms into its canonical value. Sums without radicals are returned
// as algebra.Rational, sums with a surviving radical as algebra.Expression.
func ParseValue(s string) (algebra.Value, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "−", "-")
	if lower := strings.ToLower(s); strings.HasPrefix(lower, "x") {
		rest := strings.TrimSpace(s[1:])
		if strings.HasPrefix(rest, "=") {
			s = strings.TrimSpace(rest[1:])
		}
	}
	if s == "" {
		return nil, fmt.Errorf("empty answer")
	}

	if m := mixedNumberRe.FindStringSubmatch(s); m != nil {
		return parseMixedNumber(m)
	}

	s = sqrtCallRe.ReplaceAllString(s, "√$1")
	s = strings.Join(strings.Fields(s), "")
	s = strings.NewReplacer("*√", "√", "·√", "√").Replace(s)

	var rational algebra.Rational
	var terms []algebra.Term
	for _, part := range splitSigned(s) {
		i := strings.Index(part, "√")
		if i < 0 {
			r, err := parseNumber(part)
			if err != nil {
				return nil, err
			}
			rational = rational.Add(r)
			continue
		}

		coef := int64(1)
		switch c := strings.TrimPrefix(part[:i], "+"); c {
		case "":
		case "-":
			coef = -1
		default:
			n, err := parseOperand(c)
			if err != nil {
				return nil, fmt.Errorf("invalid coefficient %q: %w", c, err)
			}
			coef = n
		}
		rad, err := parseOperand(part[i+len("√"):])
		if err != nil || rad < 0 {
			return nil, fmt.Errorf("invalid radicand in %q", part)
		}
		terms = append(terms, algebra.Term{Coefficient: coef, Radicand: rad})
	}

	if len(terms) == 0 {
		return rational, nil
	}
	whole, ok := rational.Int()
	if !ok {
		return nil, fmt.Errorf("radical answer %q needs a whole rational part", s)
	}
	e := algebra.Simplify(whole, terms)
	if e.IsRational() {
		return algebra.Whole(e.Rational), nil
	}
	return e, nil
}

// splitSigned splits s before every + or - that starts a new term.
func splitSigned(s string) []string {
	var parts []string
	start := 0
	for i := 1; i < len(s); i++ {
		if (s[i] == '+' || s[i] == '-') && s[i-1] != '/' {
			parts = append(parts, s[start:i])
			start = i
		}
	}
	return append(parts, s[start:])
}

// parseNumber parses an integer, "a/b" fraction or terminating decimal.
func parseNumber(s string) (algebra.Rational, error) {
	s = strings.TrimPrefix(s, "+")
	switch {
	case strings.Contains(s, "/"):
		num, den, err := parseFraction(s)
		if err != nil {
			return algebra.Rational{}, err
		}
		if den == 0 {
			return algebra.Rational{}, fmt.Errorf("zero denominator")
		}
		return algebra.NewRational(num, den), nil
	case strings.Contains(s, "."):
		return parseDecimal(s)
	default:
		n, err := parseOperand(s)
		if err != nil {
			return algebra.Rational{}, fmt.Errorf("invalid integer: %w", err)
		}
		return algebra.Whole(n), nil
	}
}

// parseDecimal parses a decimal such as "-2.75" exactly.
func parseDecimal(s string) (algebra.Rational, error) {
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	whole, frac, _ := strings.Cut(s, ".")
	if frac == "" || len(frac) > 9 || strings.ContainsAny(frac, "+-") {
		return algebra.Rational{}, fmt.Errorf("invalid decimal %q", s)
	}
	if whole == "" {
		whole = "0"
	}
	w, err := strconv.ParseUint(whole, 10, 31)
	if err != nil || w > maxOperand {
		return algebra.Rational{}, fmt.Errorf("invalid decimal %q", s)
	}
	f, err := strconv.ParseUint(frac, 10, 31)
	if err != nil {
		return algebra.Rational{}, fmt.Errorf("invalid decimal: %w", err)
	}
	den := int64(1)
	for range frac {
		den *= 10
	}
	num := int64(w)*den + int64(f)
	if neg {
		num = -num
	}
	return algebra.NewRational(num, den), nil
}

// parseMixedNumber turns the submatches of mixedNumberRe into a rational.
func parseMixedNumber(m []string) (algebra.Value, error) {
	w, err := parseOperand(m[2])
	if err != nil {
		return nil, fmt.Errorf("invalid whole part: %w", err)
	}
	num, den, err := parseFraction(m[3] + "/" + m[4])
	if err != nil {
		return nil, err
	}
	if den == 0 {
		return nil, fmt.Errorf("zero denominator")
	}
	r := algebra.Whole(w).Add(algebra.NewRational(num, den))
	if m[1] == "-" {
		r = algebra.Whole(0).Sub(r)
	}
	return r, nil
}

// parseFraction parses "a/b" into numerator and denominator.
func parseFraction(s string) (int64, int64, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid fraction format: %q", s)
	}
	num, err := parseOperand(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid numerator: %w", err)
	}
	den, err := parseOperand(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid denominator: %w", err)
	}
	return num, den, nil
}

// parseOperand parses a signed integer no larger than maxOperand in
// magnitude.
func parseOperand(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if abs(n) > maxOperand {
		return 0, fmt.Errorf("%d is out of range", n)
	}
	return n, nil
}

// gcd returns the greatest common divisor of a and b.
// Both a and b must be non-negative.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// abs returns the absolute value of n.
func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
