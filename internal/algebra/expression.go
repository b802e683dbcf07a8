package algebra

import (
	"maps"
	"slices"
	"strings"
)

// Value is a canonical solution: either an Expression or a Rational.
type Value interface {
	// String returns the canonical plain rendering, e.g. "2√5 + 5" or "3/4".
	String() string

	// Int returns the integer value when the solution is a whole number.
	Int() (int64, bool)
}

// Expression is the canonical form of a sum of radical terms: an integer
// rational part plus at most one coefficient per square-free radicand > 1.
// Zero coefficients are never stored. The zero value is the number 0.
type Expression struct {
	Rational int64
	terms    map[int64]int64
}

// Simplify canonicalizes rational + Σ terms. Terms are reduced to square-free
// radicands, grouped by radicand and summed; zero groups are dropped and
// radicand-1 terms fold into the rational part.
func Simplify(rational int64, terms []Term) Expression {
	e := Expression{Rational: rational}
	for _, raw := range terms {
		t := raw.reduce()
		if t.Radicand == 1 {
			e.Rational += t.Coefficient
			continue
		}
		if e.terms == nil {
			e.terms = make(map[int64]int64)
		}
		e.terms[t.Radicand] += t.Coefficient
		if e.terms[t.Radicand] == 0 {
			delete(e.terms, t.Radicand)
		}
	}
	return e
}

// Simplify re-canonicalizes e. For any canonical e it returns an equal value.
func (e Expression) Simplify() Expression {
	return Simplify(e.Rational, e.Terms())
}

// Terms returns the radical terms ordered by radicand ascending.
func (e Expression) Terms() []Term {
	radicands := slices.Sorted(maps.Keys(e.terms))
	out := make([]Term, 0, len(radicands))
	for _, r := range radicands {
		out = append(out, Term{Coefficient: e.terms[r], Radicand: r})
	}
	return out
}

// Coefficient returns the coefficient of √radicand (0 if absent).
func (e Expression) Coefficient(radicand int64) int64 {
	return e.terms[radicand]
}

// IsRational reports whether e has no radical terms.
func (e Expression) IsRational() bool {
	return len(e.terms) == 0
}

// Int returns the integer value of e when it has no radical terms.
func (e Expression) Int() (int64, bool) {
	if !e.IsRational() {
		return 0, false
	}
	return e.Rational, true
}

// Add returns the canonical sum e + o.
func (e Expression) Add(o Expression) Expression {
	return Simplify(e.Rational+o.Rational, append(e.Terms(), o.Terms()...))
}

// Neg returns -e.
func (e Expression) Neg() Expression {
	terms := e.Terms()
	for i := range terms {
		terms[i] = terms[i].Neg()
	}
	return Simplify(-e.Rational, terms)
}

// Equal compares rational part and terms structurally.
func (e Expression) Equal(o Expression) bool {
	return e.Rational == o.Rational && maps.Equal(e.terms, o.terms)
}

// String renders radical terms by radicand ascending, then the rational part:
// "2√5 + 5", "-√3 - 1", "0".
func (e Expression) String() string {
	var parts []string
	for _, t := range e.Terms() {
		parts = append(parts, t.String())
	}
	if e.Rational != 0 {
		parts = append(parts, Int(e.Rational).String())
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.ReplaceAll(strings.Join(parts, " + "), " + -", " - ")
}
