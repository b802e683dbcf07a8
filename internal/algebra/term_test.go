package algebra

import (
	"errors"
	"testing"
)

func TestTerm_String(t *testing.T) {
	tests := []struct {
		term Term
		want string
	}{
		{Term{2, 3}, "2√3"},
		{Term{1, 5}, "√5"},
		{Term{-1, 2}, "-√2"},
		{Term{3, 1}, "3"},
		{Term{0, 5}, "0"},
		{Term{4, 0}, "0"},
		{Term{-7, 11}, "-7√11"},
	}
	for _, tc := range tests {
		if got := tc.term.String(); got != tc.want {
			t.Errorf("%#v.String() = %q, want %q", tc.term, got, tc.want)
		}
	}
}

func TestTerm_MultiplySameRadicandCollapses(t *testing.T) {
	got := NewTerm(1, 3).Multiply(NewTerm(1, 3))
	if !got.Equal(Term{3, 1}) {
		t.Errorf("√3·√3 = %#v, want Term{3, 1}", got)
	}

	got = NewTerm(2, 3).Multiply(NewTerm(2, 3))
	if !got.Equal(Term{12, 1}) {
		t.Errorf("2√3·2√3 = %#v, want Term{12, 1}", got)
	}
}

func TestTerm_MultiplyDistinctRadicands(t *testing.T) {
	got := NewTerm(2, 3).Multiply(NewTerm(4, 5))
	if !got.Equal(Term{8, 15}) {
		t.Errorf("2√3·4√5 = %#v, want Term{8, 15}", got)
	}
	got = Int(3).Multiply(NewTerm(2, 7))
	if !got.Equal(Term{6, 7}) {
		t.Errorf("3·2√7 = %#v, want Term{6, 7}", got)
	}
}

func TestTerm_Add(t *testing.T) {
	sum, ok := NewTerm(2, 3).Add(NewTerm(5, 3))
	if !ok {
		t.Fatal("2√3 + 5√3 should combine")
	}
	if !sum.Equal(Term{7, 3}) {
		t.Errorf("2√3 + 5√3 = %v, want 7√3", sum)
	}

	if _, ok := NewTerm(2, 3).Add(NewTerm(2, 5)); ok {
		t.Error("2√3 + 2√5 should not combine")
	}
}

func TestTerm_EqualIsStructural(t *testing.T) {
	// √4 and 2 have the same value but are different terms.
	if NewTerm(1, 4).Equal(Int(2)) {
		t.Error("√4 must not equal 2 structurally")
	}
	if !NewTerm(2, 3).Equal(NewTerm(2, 3)) {
		t.Error("identical terms must be equal")
	}
}

func TestTerm_Reduce(t *testing.T) {
	tests := []struct {
		in, want Term
	}{
		{Term{1, 8}, Term{2, 2}},
		{Term{3, 12}, Term{6, 3}},
		{Term{1, 36}, Term{6, 1}},
		{Term{5, 7}, Term{5, 7}},
		{Term{2, 0}, Term{0, 1}},
		{Term{1, 75}, Term{5, 3}},
		{Term{1, 1_000_003}, Term{1, 1_000_003}},
		{Term{1, 4_000_012}, Term{2, 1_000_003}},
	}
	for _, tc := range tests {
		if got := tc.in.reduce(); !got.Equal(tc.want) {
			t.Errorf("reduce(%v) = %#v, want %#v", tc.in, got, tc.want)
		}
	}
}

func TestNewTerm_NegativeRadicandPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for negative radicand")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v is not an error", r)
		}
		var cerr *ConstructionError
		if !errors.As(err, &cerr) {
			t.Fatalf("expected *ConstructionError, got %T", err)
		}
		if cerr.Op != "NewTerm" {
			t.Errorf("got op %q, want NewTerm", cerr.Op)
		}
	}()
	NewTerm(1, -3)
}

func TestTerm_MultiplyRejectsNegativeRadicand(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when a literal term carries a negative radicand")
		}
	}()
	Term{Coefficient: 1, Radicand: -2}.Multiply(Root(2))
}
