package algebra

import "fmt"

// ConstructionError reports a broken invariant while building an expression,
// such as a negative radicand or a zero denominator. Templates never produce
// one with valid parameters, so it is raised with panic rather than returned.
type ConstructionError struct {
	Op      string
	Message string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("invalid construction in %s: %s", e.Op, e.Message)
}

// invalid panics with a *ConstructionError.
func invalid(op, format string, args ...any) {
	panic(&ConstructionError{Op: op, Message: fmt.Sprintf(format, args...)})
}
