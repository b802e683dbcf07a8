package session

import (
	"time"

	"github.com/abhisek/exgen/internal/problemgen"
	sess "github.com/abhisek/exgen/internal/session"
)

// questionReadyMsg is sent when an exercise has been generated.
type questionReadyMsg struct {
	Exercise *problemgen.ExerciseRecord
	Err      error
}

// timerTickMsg is sent every second to update the elapsed time.
type timerTickMsg time.Time

// feedbackDoneMsg is sent when the learner dismisses the feedback.
type feedbackDoneMsg struct{}

// sessionInitMsg is sent when the session state is ready.
type sessionInitMsg struct {
	State *sess.SessionState
}

// sessionEndMsg is sent to trigger the session end flow.
type sessionEndMsg struct{}
