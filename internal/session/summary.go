package session

import (
	"sort"
	"time"
)

// SessionSummary holds the data displayed on the summary screen.
type SessionSummary struct {
	Topic          string
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	Accuracy       float64
	BestStreak     int
	Results        []DifficultyResult
}

// BuildSummary creates a SessionSummary from the current session state.
// Results are ordered by difficulty.
func BuildSummary(state *SessionState) *SessionSummary {
	results := make([]DifficultyResult, 0, len(state.PerDifficulty))
	for _, dr := range state.PerDifficulty {
		results = append(results, *dr)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Difficulty < results[j].Difficulty
	})

	var accuracy float64
	if state.TotalQuestions > 0 {
		accuracy = float64(state.TotalCorrect) / float64(state.TotalQuestions)
	}

	return &SessionSummary{
		Topic:          state.Topic,
		Duration:       state.Elapsed,
		TotalQuestions: state.TotalQuestions,
		TotalCorrect:   state.TotalCorrect,
		Accuracy:       accuracy,
		BestStreak:     state.BestStreak,
		Results:        results,
	}
}
