package problemgen

// Generator produces exercises for one topic.
type Generator interface {
	// Generate produces a fresh exercise for the template keyed by
	// difficulty. Returns *ErrUnknownTemplate when no template has that key
	// and *ErrSamplingExhausted when a range-constrained template could not
	// be satisfied within the attempt cap.
	Generate(difficulty int) (*ExerciseRecord, error)

	// Difficulties lists the supported template keys in ascending order.
	Difficulties() []int
}
