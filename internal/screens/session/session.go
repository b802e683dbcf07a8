package session

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/exgen/internal/router"
	"github.com/abhisek/exgen/internal/screen"
	"github.com/abhisek/exgen/internal/screens/summary"
	sess "github.com/abhisek/exgen/internal/session"
	"github.com/abhisek/exgen/internal/ui/components"
	"github.com/abhisek/exgen/internal/ui/layout"
)

const answerPlaceholder = "Type your answer..."

// Options configures a practice session.
type Options struct {
	Topic      string
	Difficulty int // zero picks a template per exercise
	Limit      int
	Window     int // recent questions never repeated
}

// SessionScreen implements screen.Screen for the active session.
type SessionScreen struct {
	state  *sess.SessionState
	source sess.Source
	opts   Options
	input  components.TextInput
	errMsg string
}

var (
	_ screen.Screen          = (*SessionScreen)(nil)
	_ screen.KeyHintProvider = (*SessionScreen)(nil)
	_ screen.ScoreProvider   = (*SessionScreen)(nil)
	_ screen.EscapeHandler   = (*SessionScreen)(nil)
)

// New creates a new SessionScreen drawing exercises from source.
func New(source sess.Source, opts Options) *SessionScreen {
	return &SessionScreen{
		source: source,
		opts:   opts,
		input:  components.NewTextInput(answerPlaceholder, components.AnswerChars, 32),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return tea.Batch(
		s.initSession(),
		s.input.Init(),
	)
}

func (s *SessionScreen) Title() string {
	return "Practice: " + s.opts.Topic
}

func (s *SessionScreen) Score() (int, int) {
	if s.state == nil {
		return 0, 0
	}
	return s.state.TotalCorrect, s.state.Streak
}

// HandlesEscape keeps Esc for the quit dialog while a session runs.
func (s *SessionScreen) HandlesEscape() bool {
	return s.state != nil && s.errMsg == ""
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.state == nil {
		return nil
	}
	if s.state.ShowingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.state.ShowingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "?", Description: "Hint"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.state == nil {
		return renderLoading(width, height)
	}
	if s.state.ShowingQuitConfirm {
		return renderQuitConfirm(width, height)
	}
	if s.state.ShowingFeedback {
		return s.renderFeedback(width, height)
	}
	return s.renderQuestionView(width, height)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionInitMsg:
		s.state = msg.State
		return s, tea.Batch(s.generateNextQuestion(), tickCmd())

	case questionReadyMsg:
		return s.handleQuestionReady(msg)

	case timerTickMsg:
		return s.handleTimerTick()

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case sessionEndMsg:
		return s.handleSessionEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward to input if active.
	if s.state != nil && s.state.Phase == sess.PhaseActive && !s.state.ShowingQuitConfirm {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *SessionScreen) initSession() tea.Cmd {
	opts := s.opts
	return func() tea.Msg {
		state := sess.NewSessionState(uuid.New().String(), opts.Topic, opts.Difficulty, opts.Limit, opts.Window)
		return sessionInitMsg{State: state}
	}
}

func (s *SessionScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	sess.Present(s.state, msg.Exercise)
	s.input = components.NewTextInput(answerPlaceholder, components.AnswerChars, 32)
	return s, s.input.Init()
}

func (s *SessionScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.state == nil || s.state.Phase == sess.PhaseEnding || s.state.Phase == sess.PhaseSummary {
		return s, nil
	}
	s.state.Elapsed = time.Since(s.state.StartTime)
	return s, tickCmd()
}

func (s *SessionScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	if s.state == nil {
		return s, nil
	}

	s.state.ShowingFeedback = false
	if sess.Finished(s.state) {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}

	s.state.CurrentExercise = nil
	s.state.Phase = sess.PhaseLoading
	return s, s.generateNextQuestion()
}

func (s *SessionScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	if s.state == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	s.state.Phase = sess.PhaseEnding
	s.state.Elapsed = time.Since(s.state.StartTime)
	result := sess.BuildSummary(s.state)
	s.state.Phase = sess.PhaseSummary

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(result)}
	}
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.state == nil {
		return s, nil
	}

	if s.state.ShowingQuitConfirm {
		switch key {
		case "y", "Y":
			s.state.ShowingQuitConfirm = false
			return s, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			s.state.ShowingQuitConfirm = false
		}
		return s, nil
	}

	// Feedback overlay: any key dismisses.
	if s.state.ShowingFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	switch key {
	case "esc":
		s.state.ShowingQuitConfirm = true
		return s, nil
	}

	if s.state.Phase != sess.PhaseActive {
		return s, nil
	}

	switch key {
	case "enter":
		return s.submitAnswer()
	case "?":
		sess.RevealHint(s.state)
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitAnswer checks the typed answer and shows feedback.
func (s *SessionScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	if s.state == nil || s.state.CurrentExercise == nil {
		return s, nil
	}

	answer := s.input.Value()
	if answer == "" {
		return s, nil
	}

	correct := sess.HandleAnswer(s.state, answer)
	s.input.Submit(correct)
	return s, nil
}

// generateNextQuestion generates the next exercise asynchronously.
func (s *SessionScreen) generateNextQuestion() tea.Cmd {
	state, source := s.state, s.source
	return func() tea.Msg {
		r, err := sess.NextExercise(state, source)
		return questionReadyMsg{Exercise: r, Err: err}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
