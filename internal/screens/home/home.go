package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/exgen/internal/router"
	"github.com/abhisek/exgen/internal/screen"
	sessionscreen "github.com/abhisek/exgen/internal/screens/session"
	sess "github.com/abhisek/exgen/internal/session"
	"github.com/abhisek/exgen/internal/ui/components"
	"github.com/abhisek/exgen/internal/ui/layout"
	"github.com/abhisek/exgen/internal/ui/theme"
)

// Topic is a practice topic offered on the home screen.
type Topic struct {
	Name    string
	Aliases []string
	Keys    []int
}

// HomeScreen lists the topics and starts practice sessions.
type HomeScreen struct {
	menu   components.Menu
	topics []Topic
	// level is the index into the selected topic's Keys, or -1 for any.
	level  []int
	source sess.Source
	limit  int
	window int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. Sessions draw from source and end after limit
// answers; window is the number of recent questions never repeated.
func New(source sess.Source, topics []Topic, limit, window int) *HomeScreen {
	h := &HomeScreen{
		topics: topics,
		level:  make([]int, len(topics)),
		source: source,
		limit:  limit,
		window: window,
	}

	items := make([]components.MenuItem, 0, len(topics)+1)
	for i := range topics {
		h.level[i] = -1
		items = append(items, components.MenuItem{
			Label:  topics[i].Name,
			Action: func() tea.Cmd { return h.start(i) },
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Quit",
		Action: func() tea.Cmd { return tea.Quit },
	})
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Topics"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Topic"},
		{Key: "←→", Description: "Level"},
		{Key: "Enter", Description: "Practice"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Difficulty returns the template key chosen for topic i, zero for any.
func (h *HomeScreen) Difficulty(i int) int {
	if i < 0 || i >= len(h.topics) || h.level[i] < 0 {
		return 0
	}
	return h.topics[i].Keys[h.level[i]]
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		i := h.menu.Selected
		if i < len(h.topics) {
			n := len(h.topics[i].Keys)
			switch kmsg.String() {
			case "right", "l":
				// Cycle any -> first key -> ... -> last key -> any.
				h.level[i]++
				if h.level[i] >= n {
					h.level[i] = -1
				}
				return h, nil
			case "left", "h":
				h.level[i]--
				if h.level[i] < -1 {
					h.level[i] = n - 1
				}
				return h, nil
			}
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) start(i int) tea.Cmd {
	opts := sessionscreen.Options{
		Topic:      h.topics[i].Name,
		Difficulty: h.Difficulty(i),
		Limit:      h.limit,
		Window:     h.window,
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: sessionscreen.New(h.source, opts)}
	}
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Choose a topic"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Every exercise is generated fresh and checked before you see it."))
	b.WriteString("\n\n")

	var rows strings.Builder
	for i, item := range h.menu.Items {
		label := item.Label
		if i < len(h.topics) {
			label = fmt.Sprintf("%-16s %s", label, h.levelLabel(i))
			if aliases := h.topics[i].Aliases; len(aliases) > 0 {
				label += theme.Hint.Render("  aka " + strings.Join(aliases, ", "))
			}
		}
		if i == h.menu.Selected {
			rows.WriteString(theme.Selected.Render("  ▸ " + label))
		} else {
			rows.WriteString(theme.Unselected.Render("    " + label))
		}
		rows.WriteString("\n")
	}

	card := theme.Card.Width(min(width-4, 72)).Render(rows.String())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	return b.String()
}

func (h *HomeScreen) levelLabel(i int) string {
	if h.level[i] < 0 {
		return fmt.Sprintf("level any of %d", len(h.topics[i].Keys))
	}
	return fmt.Sprintf("level %d", h.Difficulty(i))
}
