package session

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/exgen/internal/engine"
	"github.com/abhisek/exgen/internal/problemgen"
	"github.com/abhisek/exgen/internal/router"
	"github.com/abhisek/exgen/internal/screen"
	sess "github.com/abhisek/exgen/internal/session"
	"github.com/abhisek/exgen/internal/screens/summary"
)

// mockSource implements sess.Source for testing.
type mockSource struct {
	record *problemgen.ExerciseRecord
	err    error
}

func (m *mockSource) Generate(string, int) (*problemgen.ExerciseRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	r := *m.record
	return &r, nil
}

func (m *mockSource) GenerateAny(topic string) (*problemgen.ExerciseRecord, error) {
	return m.Generate(topic, 0)
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testRecord() *problemgen.ExerciseRecord {
	return &problemgen.ExerciseRecord{
		Type:       "fraction_arithmetic",
		Difficulty: 1,
		Question:   "(1/2 + 1/4) · 4",
		Solution:   "3",
		Hints:      []string{"Find a common denominator", "1/2 + 1/4 = 3/4", "Final answer: 3"},
	}
}

func testSessionScreen() *SessionScreen {
	return New(&mockSource{record: testRecord()}, Options{Topic: "fractions", Difficulty: 1, Limit: 2, Window: 4})
}

func setupActiveSession(s *SessionScreen) {
	s.state = sess.NewSessionState("test-session", "fractions", 1, 2, 4)
	sess.Present(s.state, testRecord())
}

func typeAnswer(scr screen.Screen, answer string) screen.Screen {
	for _, r := range answer {
		scr, _ = scr.Update(keyPress(r))
	}
	return scr
}

func TestSessionScreen_Title(t *testing.T) {
	s := testSessionScreen()
	if s.Title() != "Practice: fractions" {
		t.Errorf("Title = %q, want %q", s.Title(), "Practice: fractions")
	}
}

func TestSessionScreen_View_Loading(t *testing.T) {
	s := testSessionScreen()
	if !strings.Contains(s.View(80, 24), "Preparing your session") {
		t.Error("expected loading view")
	}
	if s.HandlesEscape() {
		t.Error("expected Esc to pop before the session starts")
	}
}

func TestSessionScreen_View_Error(t *testing.T) {
	s := testSessionScreen()
	s.errMsg = "test error"
	if !strings.Contains(s.View(80, 24), "test error") {
		t.Error("expected error view")
	}
}

func TestSessionScreen_InitFlow(t *testing.T) {
	s := testSessionScreen()
	var scr screen.Screen = s

	scr, cmd := scr.Update(s.initSession()())
	if cmd == nil {
		t.Fatal("expected generation command after init")
	}
	ss := scr.(*SessionScreen)
	if ss.state == nil || ss.state.QuestionLimit != 2 {
		t.Fatal("expected session state with limit 2")
	}

	scr, _ = scr.Update(ss.generateNextQuestion()())
	ss = scr.(*SessionScreen)
	if ss.state.Phase != sess.PhaseActive {
		t.Errorf("Phase = %v, want PhaseActive", ss.state.Phase)
	}
	if !strings.Contains(ss.View(80, 24), "(1/2 + 1/4) · 4") {
		t.Error("expected question in view")
	}
}

func TestSessionScreen_GenerationError(t *testing.T) {
	s := New(&mockSource{err: errors.New("no templates")}, Options{Topic: "fractions", Difficulty: 1})
	s.state = sess.NewSessionState("id", "fractions", 1, 2, 0)

	var scr screen.Screen = s
	scr, _ = scr.Update(s.generateNextQuestion()())
	ss := scr.(*SessionScreen)
	if ss.errMsg != "no templates" {
		t.Errorf("errMsg = %q", ss.errMsg)
	}

	_, cmd := ss.Update(keyPress('x'))
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected any key to pop on error")
	}
}

func TestSessionScreen_QuitConfirm(t *testing.T) {
	s := testSessionScreen()
	setupActiveSession(s)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*SessionScreen)
	if !ss.state.ShowingQuitConfirm {
		t.Error("expected quit confirmation dialog")
	}

	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*SessionScreen)
	if ss.state.ShowingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestSessionScreen_QuitConfirm_Yes(t *testing.T) {
	s := testSessionScreen()
	setupActiveSession(s)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	if _, ok := cmd().(sessionEndMsg); !ok {
		t.Error("expected sessionEndMsg")
	}
}

func TestSessionScreen_AnswerSubmit(t *testing.T) {
	s := testSessionScreen()
	setupActiveSession(s)

	var scr screen.Screen = s
	scr = typeAnswer(scr, "3")
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	if !ss.state.ShowingFeedback {
		t.Error("expected feedback to be shown after submit")
	}
	if !ss.state.LastAnswerCorrect {
		t.Error("expected answer to be correct")
	}
	correct, streak := ss.Score()
	if correct != 1 || streak != 1 {
		t.Errorf("Score = (%d, %d), want (1, 1)", correct, streak)
	}
	if !strings.Contains(ss.View(80, 40), "Final answer: 3") {
		t.Error("expected worked steps in feedback")
	}
}

func TestSessionScreen_WrongAnswerShowsSolution(t *testing.T) {
	s := testSessionScreen()
	setupActiveSession(s)

	var scr screen.Screen = s
	scr = typeAnswer(scr, "1/2")
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	if ss.state.LastAnswerCorrect {
		t.Error("expected answer to be wrong")
	}
	if !strings.Contains(ss.View(80, 40), "Correct answer: 3") {
		t.Error("expected solution in feedback")
	}
}

func TestSessionScreen_EmptyAnswerIgnored(t *testing.T) {
	s := testSessionScreen()
	setupActiveSession(s)

	_, _ = s.Update(specialKey(tea.KeyEnter))
	if s.state.ShowingFeedback || s.state.TotalQuestions != 0 {
		t.Error("expected empty answer to be ignored")
	}
}

func TestSessionScreen_InputFiltersLetters(t *testing.T) {
	s := testSessionScreen()
	setupActiveSession(s)

	var scr screen.Screen = s
	scr = typeAnswer(scr, "3a/b4")
	if got := scr.(*SessionScreen).input.Value(); got != "3/4" {
		t.Errorf("input = %q, want %q", got, "3/4")
	}
}

func TestSessionScreen_RevealHint(t *testing.T) {
	s := testSessionScreen()
	setupActiveSession(s)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('?'))
	ss := scr.(*SessionScreen)
	if ss.state.HintsShown != 1 {
		t.Errorf("HintsShown = %d, want 1", ss.state.HintsShown)
	}
	if !strings.Contains(ss.View(80, 40), "Find a common denominator") {
		t.Error("expected hint in view")
	}
	if ss.input.Value() != "" {
		t.Error("expected hint key not to reach the input")
	}
}

func TestSessionScreen_FeedbackDismiss(t *testing.T) {
	s := testSessionScreen()
	setupActiveSession(s)
	sess.HandleAnswer(s.state, "3")

	var scr screen.Screen = s
	_, cmd := scr.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a command after feedback dismiss")
	}
	if _, ok := cmd().(feedbackDoneMsg); !ok {
		t.Error("expected feedbackDoneMsg")
	}

	// One answer of two: the next exercise is generated.
	_, cmd = s.Update(feedbackDoneMsg{})
	if _, ok := cmd().(questionReadyMsg); !ok {
		t.Error("expected next exercise to be generated")
	}
}

func TestSessionScreen_EndsAtLimit(t *testing.T) {
	s := testSessionScreen()
	setupActiveSession(s)
	sess.HandleAnswer(s.state, "3")
	sess.Present(s.state, testRecord())
	sess.HandleAnswer(s.state, "4")

	_, cmd := s.Update(feedbackDoneMsg{})
	if _, ok := cmd().(sessionEndMsg); !ok {
		t.Fatal("expected session end at the question limit")
	}

	_, cmd = s.Update(sessionEndMsg{})
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if _, ok := msg.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected summary screen, got %T", msg.Screen)
	}
	if s.state.Phase != sess.PhaseSummary {
		t.Errorf("Phase = %v, want PhaseSummary", s.state.Phase)
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s := testSessionScreen()
	if s.KeyHints() != nil {
		t.Error("expected no hints while loading")
	}
	setupActiveSession(s)
	if len(s.KeyHints()) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(s.KeyHints()))
	}
	if !s.HandlesEscape() {
		t.Error("expected active session to handle Esc")
	}
}

func TestSessionScreen_WithDispatcher(t *testing.T) {
	d := engine.NewDispatcher(engine.DefaultRegistry(), engine.DefaultConfig())
	s := New(d, Options{Topic: "equation", Limit: 3})
	s.state = sess.NewSessionState("id", "equation", 0, 3, 4)

	var scr screen.Screen = s
	scr, _ = scr.Update(s.generateNextQuestion()())
	ss := scr.(*SessionScreen)
	if ss.errMsg != "" {
		t.Fatalf("unexpected error: %s", ss.errMsg)
	}

	scr = typeAnswer(scr, ss.state.CurrentExercise.Solution)
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	if !scr.(*SessionScreen).state.LastAnswerCorrect {
		t.Errorf("expected canonical solution %q to be accepted", ss.state.CurrentExercise.Solution)
	}
}
