package algebra

import "fmt"

// Rational is an exact fraction kept in lowest terms with a positive
// denominator. The zero value is 0.
type Rational struct {
	num int64
	den int64 // 0 means 1 so the zero value is usable
}

// NewRational returns num/den reduced. It panics with *ConstructionError when
// den is zero.
func NewRational(num, den int64) Rational {
	if den == 0 {
		invalid("NewRational", "zero denominator in %d/%d", num, den)
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)
	if g > 1 {
		num /= g
		den /= g
	}
	return Rational{num: num, den: den}
}

// Whole returns n as a rational.
func Whole(n int64) Rational {
	return Rational{num: n, den: 1}
}

// Num returns the numerator.
func (r Rational) Num() int64 { return r.num }

// Den returns the (positive) denominator.
func (r Rational) Den() int64 {
	if r.den == 0 {
		return 1
	}
	return r.den
}

func (r Rational) Add(o Rational) Rational {
	return NewRational(r.num*o.Den()+o.num*r.Den(), r.Den()*o.Den())
}

func (r Rational) Sub(o Rational) Rational {
	return NewRational(r.num*o.Den()-o.num*r.Den(), r.Den()*o.Den())
}

func (r Rational) Mul(o Rational) Rational {
	return NewRational(r.num*o.num, r.Den()*o.Den())
}

// Div returns r/o. It panics with *ConstructionError when o is zero.
func (r Rational) Div(o Rational) Rational {
	if o.num == 0 {
		invalid("Rational.Div", "division of %s by zero", r)
	}
	return NewRational(r.num*o.Den(), r.Den()*o.num)
}

// Sign returns -1, 0 or 1.
func (r Rational) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	default:
		return 0
	}
}

// Cmp compares r and o, returning -1, 0 or 1.
func (r Rational) Cmp(o Rational) int {
	return r.Sub(o).Sign()
}

// IsInt reports whether r is a whole number.
func (r Rational) IsInt() bool {
	return r.Den() == 1
}

// Int returns r as an integer when it is whole.
func (r Rational) Int() (int64, bool) {
	if !r.IsInt() {
		return 0, false
	}
	return r.num, true
}

// Equal compares the reduced forms.
func (r Rational) Equal(o Rational) bool {
	return r.num == o.num && r.Den() == o.Den()
}

// String renders "n" for whole numbers and "n/d" otherwise.
func (r Rational) String() string {
	if r.IsInt() {
		return fmt.Sprintf("%d", r.num)
	}
	return fmt.Sprintf("%d/%d", r.num, r.Den())
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
