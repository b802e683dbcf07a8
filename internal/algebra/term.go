package algebra

import "fmt"

// Term is a radical term Coefficient·√Radicand. A radicand of 1 stands for a
// plain integer and a radicand of 0 for zero.
type Term struct {
	Coefficient int64
	Radicand    int64
}

// NewTerm returns coefficient·√radicand. It panics with *ConstructionError
// if radicand is negative.
func NewTerm(coefficient, radicand int64) Term {
	if radicand < 0 {
		invalid("NewTerm", "negative radicand %d", radicand)
	}
	return Term{Coefficient: coefficient, Radicand: radicand}
}

// Int returns the integer n as a term.
func Int(n int64) Term {
	return Term{Coefficient: n, Radicand: 1}
}

// Root returns √r.
func Root(r int64) Term {
	return NewTerm(1, r)
}

// CanCombine reports whether t and o are like terms.
func (t Term) CanCombine(o Term) bool {
	return t.Radicand == o.Radicand
}

// Add sums two like terms. ok is false when the radicands differ, in which
// case the caller keeps both terms.
func (t Term) Add(o Term) (sum Term, ok bool) {
	if !t.CanCombine(o) {
		return Term{}, false
	}
	return Term{Coefficient: t.Coefficient + o.Coefficient, Radicand: t.Radicand}, true
}

// Multiply returns t·o. Equal radicands collapse into an integer
// (√r·√r = r); otherwise the radicands multiply.
func (t Term) Multiply(o Term) Term {
	t.check("Multiply")
	o.check("Multiply")
	c := t.Coefficient * o.Coefficient
	if t.Radicand == o.Radicand {
		return Term{Coefficient: c * t.Radicand, Radicand: 1}
	}
	return Term{Coefficient: c, Radicand: t.Radicand * o.Radicand}
}

// Neg returns -t.
func (t Term) Neg() Term {
	return Term{Coefficient: -t.Coefficient, Radicand: t.Radicand}
}

// Equal compares coefficient and radicand.
func (t Term) Equal(o Term) bool {
	return t.Coefficient == o.Coefficient && t.Radicand == o.Radicand
}

// IsZero reports whether the term has value zero.
func (t Term) IsZero() bool {
	return t.Coefficient == 0 || t.Radicand == 0
}

// IsInteger reports whether the term has no radical part.
func (t Term) IsInteger() bool {
	return t.Radicand == 1 || t.IsZero()
}

func (t Term) String() string {
	switch {
	case t.IsZero():
		return "0"
	case t.Radicand == 1:
		return fmt.Sprintf("%d", t.Coefficient)
	case t.Coefficient == 1:
		return fmt.Sprintf("√%d", t.Radicand)
	case t.Coefficient == -1:
		return fmt.Sprintf("-√%d", t.Radicand)
	default:
		return fmt.Sprintf("%d√%d", t.Coefficient, t.Radicand)
	}
}

// reduce moves perfect-square factors out of the radicand: √(k²m) = k√m.
// Zero terms come back as Term{0, 1}.
func (t Term) reduce() Term {
	t.check("reduce")
	if t.IsZero() {
		return Term{Coefficient: 0, Radicand: 1}
	}
	c, r := t.Coefficient, t.Radicand
	for f := int64(2); f <= r/f; f++ {
		for r%(f*f) == 0 {
			r /= f * f
			c *= f
		}
	}
	return Term{Coefficient: c, Radicand: r}
}

func (t Term) check(op string) {
	if t.Radicand < 0 {
		invalid(op, "negative radicand %d", t.Radicand)
	}
}
