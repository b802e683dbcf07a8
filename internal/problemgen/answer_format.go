package problemgen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var fractionPattern = regexp.MustCompile(`^-?\d+/\d+$`)

// SolutionFormatValidator checks that the solution is written in canonical
// form: a plain integer, a fraction in lowest terms, or a radical sum with
// ascending radicands followed by the rational part.
type SolutionFormatValidator struct{}

func (v *SolutionFormatValidator) Name() string { return "solution-format" }

func (v *SolutionFormatValidator) Validate(r *ExerciseRecord) *ValidationError {
	if _, err := ClassifySolution(r.Solution); err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("invalid solution %q: %s", r.Solution, err),
		}
	}
	return nil
}

// ClassifySolution returns the answer type of a canonical solution string,
// or an error if s is not canonical.
func ClassifySolution(s string) (AnswerType, error) {
	switch {
	case strings.Contains(s, "√"):
		v, err := ParseValue(s)
		if err != nil {
			return "", err
		}
		if v.String() != s {
			return "", fmt.Errorf("not canonical (expected %q)", v.String())
		}
		return AnswerTypeRadical, nil
	case strings.Contains(s, "/"):
		if err := validateFraction(s); err != nil {
			return "", err
		}
		return AnswerTypeFraction, nil
	default:
		if err := validateInteger(s); err != nil {
			return "", err
		}
		return AnswerTypeInteger, nil
	}
}

// validateInteger checks that s is a valid integer string with no leading zeros.
func validateInteger(s string) error {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("not a valid integer")
	}
	// Check for leading zeros: formatted back should match.
	if strconv.FormatInt(n, 10) != s {
		return fmt.Errorf("has leading zeros")
	}
	return nil
}

// validateFraction checks that s matches a/b pattern, denominator > 1, and is in lowest terms.
func validateFraction(s string) error {
	if !fractionPattern.MatchString(s) {
		return fmt.Errorf("does not match fraction pattern a/b")
	}
	num, den, err := parseFraction(s)
	if err != nil {
		return err
	}
	if den <= 1 {
		return fmt.Errorf("denominator must be greater than 1")
	}
	if gcd(abs(num), den) != 1 {
		return fmt.Errorf("fraction is not in lowest terms")
	}
	return nil
}
