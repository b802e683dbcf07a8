package problemgen

import (
	"fmt"
	"strings"
)

// StructuralValidator checks that required fields are present and within
// length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(r *ExerciseRecord) *ValidationError {
	if r.Type == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "type is empty",
		}
	}
	if r.Difficulty < 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "difficulty must be at least 1",
		}
	}
	if strings.TrimSpace(r.Question) == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question is empty",
			Retryable: true,
		}
	}
	if len(r.Question) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question exceeds 500 characters",
			Retryable: true,
		}
	}
	if r.QuestionLaTeX == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "questionLatex is empty",
		}
	}
	if r.Solution == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "solution is empty",
		}
	}
	if r.SolutionLaTeX == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "solutionLatex is empty",
		}
	}
	if len(r.Hints) == 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "hints are empty",
		}
	}
	for i, h := range r.Hints {
		if strings.TrimSpace(h) == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("hint %d is blank", i+1),
			}
		}
	}
	return nil
}
