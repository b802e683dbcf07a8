package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/exgen/internal/session"
	"github.com/abhisek/exgen/internal/ui/theme"
)

func centered(width int) lipgloss.Style {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
}

// renderQuestionView renders the active exercise.
func (s *SessionScreen) renderQuestionView(width, height int) string {
	state := s.state
	if state == nil || state.CurrentExercise == nil {
		return centered(width).
			Foreground(theme.TextDim).
			Render("\n\n  Generating exercise...")
	}
	r := state.CurrentExercise

	var b strings.Builder

	mins := int(state.Elapsed.Minutes())
	secs := int(state.Elapsed.Seconds()) % 60

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s  level %d", state.Topic, r.Difficulty))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d  %d:%02d",
			state.TotalQuestions+1,
			state.QuestionLimit,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			state.TotalCorrect,
			mins, secs,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(theme.Question.Width(width).Align(lipgloss.Center).Render(r.Question))
	b.WriteString("\n\n")
	b.WriteString(centered(width).Render("Answer: " + s.input.View()))
	b.WriteString("\n")

	if hints := sess.VisibleHints(state); len(hints) > 0 {
		b.WriteString("\n")
		b.WriteString(renderHints(hints, width))
	}

	return b.String()
}

func renderHints(hints []string, width int) string {
	var b strings.Builder
	for i, h := range hints {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%d. %s", i+1, h)))
		b.WriteString("\n")
	}
	block := lipgloss.NewStyle().Width(min(width-8, 70)).Render(b.String())
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// renderFeedback renders the feedback overlay with the worked solution.
func (s *SessionScreen) renderFeedback(width, height int) string {
	state := s.state
	r := state.CurrentExercise

	var b strings.Builder
	b.WriteString("\n\n")

	if state.LastAnswerCorrect {
		b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).Render("Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render("Not quite"))
		if r != nil {
			b.WriteString("\n")
			b.WriteString(centered(width).
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("Correct answer: %s", r.Solution)))
		}
	}
	b.WriteString("\n\n")

	if r != nil {
		b.WriteString(centered(width).Foreground(theme.Text).Render(r.Question))
		b.WriteString("\n\n")
		b.WriteString(renderHints(r.Hints, width))
		b.WriteString("\n")
	}

	b.WriteString(centered(width).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(centered(width).
		Foreground(theme.Text).
		Bold(true).
		Render("End session early?"))
	b.WriteString("\n")
	b.WriteString(centered(width).
		Foreground(theme.TextDim).
		Render("You will see a summary of this session."))
	b.WriteString("\n\n")

	b.WriteString(centered(width).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(centered(width).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width, height int) string {
	return centered(width).
		Foreground(theme.TextDim).
		Render("\n\n\n  Preparing your session...")
}

// renderError renders an error message.
func renderError(width, height int, errMsg string) string {
	return centered(width).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
