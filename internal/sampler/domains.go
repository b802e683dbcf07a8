package sampler

import (
	"slices"

	"github.com/abhisek/exgen/internal/algebra"
)

var (
	niceRoots         = []int64{2, 3, 5, 7, 11, 13}
	coefficients      = []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	introRoots        = []int64{2, 3, 5, 7}
	introCoefficients = []int64{1, 2, 3}
	niceResults       = []int64{0, 1, 2, 3, 4, 5, 6, 7, 10}
	niceWholes        = []int64{2, 3, 4, 5, 6, 8, 10, 12, 15, 20, 30}

	niceFractions = []algebra.Rational{
		algebra.NewRational(1, 2), algebra.NewRational(1, 3), algebra.NewRational(1, 4),
		algebra.NewRational(2, 3), algebra.NewRational(3, 4), algebra.NewRational(1, 5),
		algebra.NewRational(2, 5), algebra.NewRational(3, 5), algebra.NewRational(4, 5),
		algebra.NewRational(1, 6), algebra.NewRational(5, 6), algebra.NewRational(1, 8),
		algebra.NewRational(3, 8), algebra.NewRational(5, 8), algebra.NewRational(7, 8),
		algebra.NewRational(1, 10), algebra.NewRational(3, 10), algebra.NewRational(7, 10),
	}

	niceDecimals = []algebra.Rational{
		algebra.NewRational(1, 4), algebra.NewRational(1, 2), algebra.NewRational(3, 4),
		algebra.NewRational(1, 5), algebra.NewRational(2, 5), algebra.NewRational(3, 5),
		algebra.NewRational(4, 5), algebra.NewRational(1, 10), algebra.NewRational(3, 10),
		algebra.NewRational(7, 10), algebra.NewRational(9, 10),
	}
)

// NiceRoots returns the square-free radicands used by the radical templates.
func NiceRoots() []int64 { return slices.Clone(niceRoots) }

// Coefficients returns the integer coefficients 1 through 9.
func Coefficients() []int64 { return slices.Clone(coefficients) }

// IntroRoots returns the smaller radicand domain of the introductory lesson.
func IntroRoots() []int64 { return slices.Clone(introRoots) }

// IntroCoefficients returns the coefficient domain of the introductory lesson.
func IntroCoefficients() []int64 { return slices.Clone(introCoefficients) }

// NiceResults returns the whole-number targets of the fraction templates.
func NiceResults() []int64 { return slices.Clone(niceResults) }

// NiceWholes returns the whole numbers used as operands in mixed exercises.
func NiceWholes() []int64 { return slices.Clone(niceWholes) }

// NiceFractions returns the 18 proper fractions used as operands.
func NiceFractions() []algebra.Rational { return slices.Clone(niceFractions) }

// NiceDecimals returns the terminating decimals, as exact rationals.
func NiceDecimals() []algebra.Rational { return slices.Clone(niceDecimals) }

// Root draws a radicand from NiceRoots.
func (s *Sampler) Root() int64 { return Pick(s, niceRoots) }

// Coefficient draws from Coefficients.
func (s *Sampler) Coefficient() int64 { return Pick(s, coefficients) }

// IntroRoot draws from IntroRoots.
func (s *Sampler) IntroRoot() int64 { return Pick(s, introRoots) }

// IntroCoefficient draws from IntroCoefficients.
func (s *Sampler) IntroCoefficient() int64 { return Pick(s, introCoefficients) }

// Fraction draws from NiceFractions.
func (s *Sampler) Fraction() algebra.Rational { return Pick(s, niceFractions) }

// Decimal draws from NiceDecimals.
func (s *Sampler) Decimal() algebra.Rational { return Pick(s, niceDecimals) }

// Whole draws from NiceWholes.
func (s *Sampler) Whole() int64 { return Pick(s, niceWholes) }

// Target draws the result a fraction exercise is built around: a nice whole
// number 80% of the time, otherwise a nice fraction.
func (s *Sampler) Target() algebra.Rational {
	if s.Chance(0.8) {
		return algebra.Whole(Pick(s, niceResults))
	}
	return s.Fraction()
}
