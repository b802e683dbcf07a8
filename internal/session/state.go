// Package session tracks a learner's practice run: the current exercise,
// answers, streaks and per-difficulty results.
package session

import (
	"time"

	"github.com/abhisek/exgen/internal/problemgen"
)

// SessionPhase represents the current phase of the session.
type SessionPhase int

const (
	PhaseLoading  SessionPhase = iota // Waiting for the first exercise
	PhaseActive                       // Showing an exercise
	PhaseFeedback                     // Showing answer feedback
	PhaseEnding                       // Limit reached or quit confirmed
	PhaseSummary                      // Showing summary screen
)

// DefaultQuestionLimit is the session length when none is given.
const DefaultQuestionLimit = 10

// DifficultyResult tracks per-difficulty stats for the summary screen.
type DifficultyResult struct {
	Difficulty int
	Attempted  int
	Correct    int
	HintsUsed  int
}

// SessionState tracks the runtime state of a practice session.
type SessionState struct {
	SessionID string

	// Topic being practiced, as the learner chose it.
	Topic string

	// Difficulty is the requested template key. Zero draws one per exercise.
	Difficulty int

	// QuestionLimit ends the session after that many answers.
	QuestionLimit int

	// CurrentExercise is the active exercise (nil between exercises).
	CurrentExercise *problemgen.ExerciseRecord

	// HintsShown is how many of the current exercise's hints are revealed.
	HintsShown int

	TotalQuestions int
	TotalCorrect   int
	Streak         int
	BestStreak     int

	// PerDifficulty tracks stats keyed by template key.
	PerDifficulty map[int]*DifficultyResult

	// Recent holds recently served questions so they are not repeated.
	Recent *problemgen.RecentQuestions

	StartTime         time.Time
	Elapsed           time.Duration
	QuestionStartTime time.Time

	Phase SessionPhase

	// ShowingFeedback is true when the feedback overlay is displayed.
	ShowingFeedback bool

	// ShowingQuitConfirm is true when the quit confirmation dialog is displayed.
	ShowingQuitConfirm bool

	LastAnswer        string
	LastAnswerCorrect bool
}

// NewSessionState creates the state for a fresh session. A limit of zero or
// less uses DefaultQuestionLimit; window is the number of recent questions
// never repeated.
func NewSessionState(id, topic string, difficulty, limit, window int) *SessionState {
	if limit <= 0 {
		limit = DefaultQuestionLimit
	}
	return &SessionState{
		SessionID:     id,
		Topic:         topic,
		Difficulty:    difficulty,
		QuestionLimit: limit,
		PerDifficulty: make(map[int]*DifficultyResult),
		Recent:        problemgen.NewRecentQuestions(window),
		StartTime:     time.Now(),
		Phase:         PhaseLoading,
	}
}
