package problemgen

import (
	"fmt"
	"strings"
)

// FinalStepValidator checks that the last hint states the solution verbatim.
type FinalStepValidator struct{}

func (v *FinalStepValidator) Name() string { return "final-step" }

func (v *FinalStepValidator) Validate(r *ExerciseRecord) *ValidationError {
	if len(r.Hints) == 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "no steps to check",
		}
	}
	last := r.Hints[len(r.Hints)-1]
	if !strings.Contains(last, r.Solution) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("final step %q does not state solution %q", last, r.Solution),
		}
	}
	return nil
}
