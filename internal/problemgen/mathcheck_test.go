package problemgen

import "testing"

func TestMathCheck_Arithmetic(t *testing.T) {
	v := &MathCheckValidator{}

	tests := []struct {
		question string
		right    string
		wrong    string
	}{
		{"345 + 278", "623", "612"},
		{"567 - 289", "278", "288"},
		{"23 · 45", "1035", "1025"},
		{"144 ÷ 12", "12", "11"},
		{"7 - 19", "-12", "12"},
	}
	for _, tc := range tests {
		r := validRecord()
		r.Question = tc.question
		r.Solution = tc.right
		if err := v.Validate(r); err != nil {
			t.Errorf("%s = %s should pass: %v", tc.question, tc.right, err)
		}
		r.Solution = tc.wrong
		if err := v.Validate(r); err == nil {
			t.Errorf("%s = %s should fail", tc.question, tc.wrong)
		}
	}
}

func TestMathCheck_Equations(t *testing.T) {
	v := &MathCheckValidator{}

	tests := []struct {
		question string
		solution string
	}{
		{"3x + 6 = 0", "-2"},
		{"4x + 3 = 0", "-3/4"},
		{"x - 4 = 5", "9"},
		{"2x - 3 = 4", "7/2"},
		{"4(x + 2) = 20", "3"},
		{"3(x - 1) = 2", "5/3"},
	}
	for _, tc := range tests {
		r := validRecord()
		r.Question = tc.question
		r.Solution = tc.solution
		if err := v.Validate(r); err != nil {
			t.Errorf("%s => x = %s should pass: %v", tc.question, tc.solution, err)
		}
		r.Solution = "100"
		if err := v.Validate(r); err == nil {
			t.Errorf("%s => x = 100 should fail", tc.question)
		}
	}
}

func TestMathCheck_FractionGroups(t *testing.T) {
	v := &MathCheckValidator{}

	tests := []struct {
		question string
		solution string
	}{
		{"(3/4 + 1/4) · 5", "5"},
		{"(1/2 + 1/3) · 6/5", "1"},
		{"(7/4 - 1/2) : 1/4", "5"},
		{"(2/3 - 1/6) ÷ 3", "1/6"},
	}
	for _, tc := range tests {
		r := validRecord()
		r.Question = tc.question
		r.Solution = tc.solution
		if err := v.Validate(r); err != nil {
			t.Errorf("%s = %s should pass: %v", tc.question, tc.solution, err)
		}
	}
}

func TestMathCheck_NotComputablePassesThrough(t *testing.T) {
	v := &MathCheckValidator{}

	for _, q := range []string{
		"(√3 + 2)(√3 - 2)",
		"√5(3 + √5) - √5",
		"0.25 + 1 1/2",
		"What is the value of x?",
	} {
		r := validRecord()
		r.Question = q
		r.Solution = "12345"
		if err := v.Validate(r); err != nil {
			t.Errorf("%q should pass through, got: %v", q, err)
		}
	}
}
