package session

import (
	"errors"
	"time"

	"github.com/abhisek/exgen/internal/problemgen"
)

// Source produces exercises by topic. *engine.Dispatcher satisfies it.
type Source interface {
	Generate(topic string, difficulty int) (*problemgen.ExerciseRecord, error)
	GenerateAny(topic string) (*problemgen.ExerciseRecord, error)
}

// maxDedupAttempts bounds how often NextExercise redraws a recently seen
// question before accepting it anyway.
const maxDedupAttempts = 5

// NextExercise draws the next exercise for the session, skipping questions
// served recently. Generation errors that are retryable are retried up to
// three times.
func NextExercise(state *SessionState, src Source) (*problemgen.ExerciseRecord, error) {
	var r *problemgen.ExerciseRecord
	for attempt := 0; attempt < maxDedupAttempts; attempt++ {
		var err error
		r, err = generate(state, src)
		if err != nil {
			return nil, err
		}
		if !state.Recent.Seen(r.Question) {
			break
		}
	}
	return r, nil
}

func generate(state *SessionState, src Source) (*problemgen.ExerciseRecord, error) {
	var r *problemgen.ExerciseRecord
	var err error
	for attempt := 0; attempt < 3; attempt++ {
		if state.Difficulty == 0 {
			r, err = src.GenerateAny(state.Topic)
		} else {
			r, err = src.Generate(state.Topic, state.Difficulty)
		}
		if err == nil || !retryable(err) {
			break
		}
	}
	return r, err
}

func retryable(err error) bool {
	var r interface{ Retryable() bool }
	if errors.As(err, &r) {
		return r.Retryable()
	}
	var valErr *problemgen.ValidationError
	return errors.As(err, &valErr) && valErr.Retryable
}

// Present makes r the current exercise.
func Present(state *SessionState, r *problemgen.ExerciseRecord) {
	state.CurrentExercise = r
	state.HintsShown = 0
	state.QuestionStartTime = time.Now()
	state.Phase = PhaseActive
	state.Recent.Add(r.Question)
}

// RevealHint shows one more hint of the current exercise. It returns false
// when every hint is already visible.
func RevealHint(state *SessionState) bool {
	r := state.CurrentExercise
	if r == nil || state.HintsShown >= len(r.Hints) {
		return false
	}
	state.HintsShown++
	return true
}

// VisibleHints returns the revealed hints of the current exercise.
func VisibleHints(state *SessionState) []string {
	if state.CurrentExercise == nil {
		return nil
	}
	return state.CurrentExercise.Hints[:state.HintsShown]
}

// HandleAnswer checks the learner's answer against the current exercise,
// updates the counters and switches to feedback. It reports whether the
// answer was correct.
func HandleAnswer(state *SessionState, learnerAnswer string) bool {
	r := state.CurrentExercise
	if r == nil {
		return false
	}

	correct := problemgen.CheckAnswer(learnerAnswer, r)
	state.LastAnswer = learnerAnswer
	state.LastAnswerCorrect = correct
	state.TotalQuestions++

	if correct {
		state.TotalCorrect++
		state.Streak++
		if state.Streak > state.BestStreak {
			state.BestStreak = state.Streak
		}
	} else {
		state.Streak = 0
	}

	dr := state.PerDifficulty[r.Difficulty]
	if dr == nil {
		dr = &DifficultyResult{Difficulty: r.Difficulty}
		state.PerDifficulty[r.Difficulty] = dr
	}
	dr.Attempted++
	dr.HintsUsed += state.HintsShown
	if correct {
		dr.Correct++
	}

	state.ShowingFeedback = true
	state.Phase = PhaseFeedback
	return correct
}

// Finished reports whether the session reached its question limit.
func Finished(state *SessionState) bool {
	return state.TotalQuestions >= state.QuestionLimit
}
