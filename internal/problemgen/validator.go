package problemgen

import "fmt"

// Validator checks a generated exercise for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error messages
	// and logging), e.g. "structural", "math-check", "solution-format".
	Name() string

	// Validate checks the record and returns nil if it passes.
	Validate(r *ExerciseRecord) *ValidationError
}

// ValidationError describes why an exercise failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// DefaultValidators returns the standard validator chain. They execute in
// order; the first failure stops the pipeline.
func DefaultValidators() []Validator {
	return []Validator{
		&StructuralValidator{},
		&SolutionFormatValidator{},
		&FinalStepValidator{},
		&MathCheckValidator{},
		&SchemaValidator{},
	}
}

// RunValidators runs vs in order and returns the first failure.
func RunValidators(vs []Validator, r *ExerciseRecord) *ValidationError {
	for _, v := range vs {
		if err := v.Validate(r); err != nil {
			return err
		}
	}
	return nil
}
