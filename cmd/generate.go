package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/exgen/internal/problemgen"
	"github.com/abhisek/exgen/internal/ui/theme"
)

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate exercises for a topic",
	Long: `Generate one or more exercises for a topic or lesson code.

Without --difficulty each exercise uses a randomly chosen template.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntP("difficulty", "d", 0, "Template key (0 picks one at random)")
	generateCmd.Flags().IntP("count", "n", 1, "Number of exercises")
	generateCmd.Flags().StringP("format", "f", "card", "Output format: card or json")
	generateCmd.Flags().Int("retries", 3, "Retries when sampling is exhausted")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	topic := args[0]
	difficulty, _ := cmd.Flags().GetInt("difficulty")
	count, _ := cmd.Flags().GetInt("count")
	format, _ := cmd.Flags().GetString("format")
	retries, _ := cmd.Flags().GetInt("retries")

	if format != "card" && format != "json" {
		return fmt.Errorf("invalid format %q: must be card or json", format)
	}
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}
	if retries < 0 {
		return fmt.Errorf("retries must not be negative, got %d", retries)
	}

	d, _, err := newDispatcher(runSeed())
	if err != nil {
		return err
	}

	records := make([]*problemgen.ExerciseRecord, 0, count)
	for i := 0; i < count; i++ {
		var r *problemgen.ExerciseRecord
		for attempt := 0; attempt <= retries; attempt++ {
			if difficulty == 0 {
				r, err = d.GenerateAny(topic)
			} else {
				r, err = d.Generate(topic, difficulty)
			}
			var exhausted *problemgen.ErrSamplingExhausted
			if !errors.As(err, &exhausted) {
				break
			}
			warn("%v (attempt %d)", err, attempt+1)
		}
		if err != nil {
			return err
		}
		records = append(records, r)
	}

	if format == "json" {
		return writeJSON(os.Stdout, records)
	}

	for i, r := range records {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(renderCard(r))
	}
	return nil
}

// writeJSON checks every record against the record schema, then writes a
// single record as an object and several as an array.
func writeJSON(w io.Writer, records []*problemgen.ExerciseRecord) error {
	for i, r := range records {
		if err := problemgen.ValidateRecord(r); err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if len(records) == 1 {
		return enc.Encode(records[0])
	}
	return enc.Encode(records)
}

// renderCard formats a record as a bordered card.
func renderCard(r *problemgen.ExerciseRecord) string {
	var b strings.Builder
	b.WriteString(theme.Label.Render(fmt.Sprintf("%s · level %d", r.Type, r.Difficulty)))
	b.WriteString("\n\n")
	b.WriteString(theme.Label.Render("Question  "))
	b.WriteString(theme.Question.Render(r.Question))
	b.WriteString("\n")
	b.WriteString(theme.Label.Render("Solution  "))
	b.WriteString(theme.Solution.Render(r.Solution))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("LaTeX  " + r.QuestionLaTeX + "  =  " + r.SolutionLaTeX))
	b.WriteString("\n\n")
	b.WriteString(theme.Label.Render("Hints"))
	for i, h := range r.Hints {
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("  %d. %s", i+1, h)))
	}
	return theme.Card.Render(b.String())
}

