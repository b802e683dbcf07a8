package problemgen

import (
	"errors"
	"fmt"
)

// ErrContractViolation marks factory errors caused by a generator that does
// not satisfy the Generator contract (for example an invalid template
// catalog). Registries classify errors wrapping it as ResolutionContract.
var ErrContractViolation = errors.New("generator contract violation")

// ErrUnknownTemplate indicates that the topic has no template registered for
// the requested difficulty. Callers typically map it to "not found".
type ErrUnknownTemplate struct {
	Topic      string
	Difficulty int
}

func (e *ErrUnknownTemplate) Error() string {
	return fmt.Sprintf("unknown template: topic %q has no difficulty %d", e.Topic, e.Difficulty)
}

// ErrSamplingExhausted indicates that rejection sampling hit its attempt cap
// without meeting the template's target range. The whole request may be
// retried.
type ErrSamplingExhausted struct {
	Template string
	Attempts int
}

func (e *ErrSamplingExhausted) Error() string {
	return fmt.Sprintf("sampling exhausted: template %q found no valid parameters in %d attempts", e.Template, e.Attempts)
}

// Retryable reports that a fresh request may succeed.
func (e *ErrSamplingExhausted) Retryable() bool { return true }

// ResolutionKind distinguishes the ways resolving a topic can fail.
type ResolutionKind string

const (
	// ResolutionNotFound means no generator is registered for the topic.
	ResolutionNotFound ResolutionKind = "not-found"

	// ResolutionContract means the registered factory produced something
	// that does not satisfy the Generator contract.
	ResolutionContract ResolutionKind = "contract-violation"

	// ResolutionInstantiation means the factory failed or panicked.
	ResolutionInstantiation ResolutionKind = "instantiation"

	// ResolutionExecution means a resolved generator failed while generating
	// with an error outside this package's taxonomy.
	ResolutionExecution ResolutionKind = "execution"
)

// ErrResolution reports a failure to locate, build or run the generator for a
// topic.
type ErrResolution struct {
	Topic string
	Kind  ResolutionKind
	Err   error
}

func (e *ErrResolution) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generator resolution failed for topic %q (%s): %v", e.Topic, e.Kind, e.Err)
	}
	return fmt.Sprintf("generator resolution failed for topic %q (%s)", e.Topic, e.Kind)
}

func (e *ErrResolution) Unwrap() error { return e.Err }

// IsTaxonomy reports whether err already belongs to the engine's error
// taxonomy and should be passed to callers unchanged.
func IsTaxonomy(err error) bool {
	var unknown *ErrUnknownTemplate
	var exhausted *ErrSamplingExhausted
	var resolution *ErrResolution
	return errors.As(err, &unknown) || errors.As(err, &exhausted) || errors.As(err, &resolution)
}
