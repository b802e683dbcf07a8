package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/exgen/internal/router"
	"github.com/abhisek/exgen/internal/screen"
	"github.com/abhisek/exgen/internal/session"
	"github.com/abhisek/exgen/internal/ui/components"
	"github.com/abhisek/exgen/internal/ui/layout"
	"github.com/abhisek/exgen/internal/ui/theme"
)

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	summary *session.SessionSummary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.ScoreProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.SessionSummary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) Score() (int, int) {
	if s.summary == nil {
		return 0, 0
	}
	return s.summary.TotalCorrect, s.summary.BestStreak
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Topics"},
		{Key: "Esc", Description: "Topics"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	var b strings.Builder

	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Session complete!"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center.Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s   Duration: %d:%02d", sum.Topic, mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Best streak: %d",
		sum.TotalQuestions, sum.TotalCorrect, sum.BestStreak)
	b.WriteString(center.Foreground(theme.Text).Render(statsLine))
	b.WriteString("\n\n")

	barWidth := min(width-8, 60)
	bar := components.NewProgressBar("Accuracy", sum.Accuracy, true, barWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	if len(sum.Results) == 0 {
		return b.String()
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", barWidth))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Levels")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, dr := range sum.Results {
		line := fmt.Sprintf("  Level %-3d   %d/%d correct   %d hints",
			dr.Difficulty, dr.Correct, dr.Attempted, dr.HintsUsed)
		style := theme.Body
		if dr.Correct == dr.Attempted {
			style = theme.Correct
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
