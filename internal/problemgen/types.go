package problemgen

// ExerciseRecord is a generated exercise ready for display. It is built once
// per request and never modified afterwards.
type ExerciseRecord struct {
	// Type is the subject tag of the generator, e.g. "radical_expression".
	Type string `json:"type"`

	// Difficulty is the template key the record was generated for.
	Difficulty int `json:"difficulty"`

	// Question is the exercise in its original, unsimplified form,
	// e.g. "(√3 + 2)(√3 - 2)". Term order is exactly as authored.
	Question string `json:"question"`

	// QuestionLaTeX is Question converted to LaTeX markup without reordering.
	QuestionLaTeX string `json:"questionLatex"`

	// Solution is the canonical solution, e.g. "-1", "3/4" or "2√5 + 5".
	Solution string `json:"solution"`

	// SolutionLaTeX renders the canonical solution.
	SolutionLaTeX string `json:"solutionLatex"`

	// Hints holds general subject tips followed by the worked steps.
	// Never empty for a successfully generated record.
	Hints []string `json:"hints"`
}

// AnswerType describes the shape of a canonical solution.
type AnswerType string

const (
	AnswerTypeInteger  AnswerType = "integer"  // e.g. "81", "-1"
	AnswerTypeFraction AnswerType = "fraction" // e.g. "3/4", "-7/2"
	AnswerTypeRadical  AnswerType = "radical"  // e.g. "2√5 + 5"
)
