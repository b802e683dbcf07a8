package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/exgen/internal/engine"
	"github.com/abhisek/exgen/internal/ui/theme"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List topics, lesson codes and template keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, reg, err := newDispatcher(1)
		if err != nil {
			return err
		}
		for _, line := range topicLines(d, reg) {
			fmt.Println(line)
		}
		return nil
	},
}

// topicLines describes every enabled topic, one line each.
func topicLines(d *engine.Dispatcher, reg *engine.Registry) []string {
	var lines []string
	for _, topic := range reg.Topics() {
		keys, err := d.Difficulties(topic)
		if err != nil {
			warn("topic %s unavailable: %v", topic, err)
			continue
		}
		line := theme.Label.Render(fmt.Sprintf("%-16s", topic)) +
			theme.Body.Render(fmt.Sprintf("keys %s", formatKeys(keys)))
		if aliases := reg.Aliases(topic); len(aliases) > 0 {
			line += theme.Hint.Render("  aka " + strings.Join(aliases, ", "))
		}
		lines = append(lines, line)
	}
	return lines
}

// formatKeys renders contiguous keys as a range, e.g. "1-13".
func formatKeys(keys []int) string {
	if len(keys) == 0 {
		return "none"
	}
	contiguous := true
	for i := 1; i < len(keys); i++ {
		if keys[i] != keys[i-1]+1 {
			contiguous = false
			break
		}
	}
	if contiguous && len(keys) > 1 {
		return fmt.Sprintf("%d-%d", keys[0], keys[len(keys)-1])
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprint(k)
	}
	return strings.Join(parts, ",")
}
