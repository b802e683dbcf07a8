package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/exgen/internal/session"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <topic>",
	Short: "Answer exercises line by line in the terminal",
	Long: `Generate and interactively answer exercises for a topic without the
full-screen interface. Type "?" for the next hint or an empty line to skip.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuiz,
}

func init() {
	quizCmd.Flags().IntP("difficulty", "d", 0, "Template key (0 picks one per exercise)")
	quizCmd.Flags().IntP("count", "n", 5, "Number of exercises")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	difficulty, _ := cmd.Flags().GetInt("difficulty")
	count, _ := cmd.Flags().GetInt("count")

	d, reg, err := newDispatcher(runSeed())
	if err != nil {
		return err
	}
	topic, ok := reg.Canonical(args[0])
	if !ok {
		topic = args[0]
	}

	state := session.NewSessionState(uuid.New().String(), topic, difficulty, count, cfg.Practice.RecentWindow)
	return quiz(state, d, os.Stdin, os.Stdout)
}

// quiz runs a session reading answers from in until the limit is reached
// or input ends.
func quiz(state *session.SessionState, src session.Source, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintf(out, "Topic: %s\n", state.Topic)
	fmt.Fprintf(out, "Answering %d exercises...\n\n", state.QuestionLimit)

	asked := 0
	for asked < state.QuestionLimit {
		r, err := session.NextExercise(state, src)
		if err != nil {
			return err
		}
		session.Present(state, r)
		asked++

		fmt.Fprintf(out, "── Exercise %d/%d (level %d) ──\n", asked, state.QuestionLimit, r.Difficulty)
		fmt.Fprintln(out, r.Question)

		answered := false
		for !answered {
			fmt.Fprint(out, "\nYour answer: ")
			if !scanner.Scan() {
				fmt.Fprintln(out, "\n(input closed)")
				return printQuizSummary(state, out)
			}
			answer := strings.TrimSpace(scanner.Text())
			switch answer {
			case "?":
				if session.RevealHint(state) {
					hints := session.VisibleHints(state)
					fmt.Fprintf(out, "Hint %d: %s\n", len(hints), hints[len(hints)-1])
				} else {
					fmt.Fprintln(out, "(no more hints)")
				}
				continue
			case "":
				fmt.Fprintf(out, "(skipped) Answer: %s\n", r.Solution)
				answered = true
				continue
			}

			if session.HandleAnswer(state, answer) {
				fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m")
			} else {
				fmt.Fprintf(out, "\033[31m✗ Wrong.\033[0m Answer: %s\n", r.Solution)
			}
			state.ShowingFeedback = false
			answered = true
		}
		fmt.Fprintln(out)
	}

	return printQuizSummary(state, out)
}

func printQuizSummary(state *session.SessionState, out io.Writer) error {
	sum := session.BuildSummary(state)
	_, err := fmt.Fprintf(out, "── Summary: %d/%d correct, best streak %d ──\n",
		sum.TotalCorrect, sum.TotalQuestions, sum.BestStreak)
	return err
}
