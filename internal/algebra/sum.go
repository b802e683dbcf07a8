package algebra

// Sum collects the raw terms of an expanded construction before
// canonicalization. Builders append to it the way a student expands the
// expression by hand; Simplify then produces the canonical Expression.
type Sum struct {
	rational int64
	terms    []Term
}

// NewSum returns an empty sum.
func NewSum() *Sum {
	return &Sum{}
}

// AddInt adds an integer to the rational accumulator.
func (s *Sum) AddInt(n int64) *Sum {
	s.rational += n
	return s
}

// Add appends terms.
func (s *Sum) Add(terms ...Term) *Sum {
	for _, t := range terms {
		t.check("Sum.Add")
	}
	s.terms = append(s.terms, terms...)
	return s
}

// Sub appends the negation of terms.
func (s *Sum) Sub(terms ...Term) *Sum {
	for _, t := range terms {
		s.Add(t.Neg())
	}
	return s
}

// AddProduct distributes (Σa)(Σb) and appends every pairwise product.
func (s *Sum) AddProduct(a, b []Term) *Sum {
	for _, x := range a {
		for _, y := range b {
			s.Add(x.Multiply(y))
		}
	}
	return s
}

// AddSquare appends the expansion of (Σa)².
func (s *Sum) AddSquare(a []Term) *Sum {
	return s.AddProduct(a, a)
}

// Raw returns a copy of the collected terms, in insertion order.
func (s *Sum) Raw() []Term {
	out := make([]Term, len(s.terms))
	copy(out, s.terms)
	return out
}

// Simplify returns the canonical form of the sum.
func (s *Sum) Simplify() Expression {
	return Simplify(s.rational, s.terms)
}
