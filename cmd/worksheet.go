package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/exgen/internal/worksheet"
)

var worksheetCmd = &cobra.Command{
	Use:   "worksheet <topic>",
	Short: "Build a worksheet of exercises with an answer key",
	Long: `Build a worksheet of exercises for a topic. Exercises are generated in
parallel; the same seed always yields the same worksheet.`,
	Args: cobra.ExactArgs(1),
	RunE: runWorksheet,
}

func init() {
	worksheetCmd.Flags().IntP("count", "n", 0, "Number of exercises (default from config)")
	worksheetCmd.Flags().IntP("difficulty", "d", 0, "Template key (0 picks one per exercise)")
	worksheetCmd.Flags().Int("workers", 0, "Parallel workers (default from config)")
	worksheetCmd.Flags().StringP("format", "f", string(worksheet.FormatText), "Output format: text, json or latex")
	worksheetCmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
}

func runWorksheet(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	difficulty, _ := cmd.Flags().GetInt("difficulty")
	workers, _ := cmd.Flags().GetInt("workers")
	formatVal, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	format := worksheet.Format(formatVal)
	if !slices.Contains(worksheet.Formats, format) {
		return fmt.Errorf("invalid format %q: must be one of %v", formatVal, worksheet.Formats)
	}
	if count == 0 {
		count = cfg.Worksheet.Count
	}
	if workers == 0 {
		workers = cfg.Worksheet.Workers
	}

	reg, err := cfg.Registry()
	if err != nil {
		return err
	}
	seed := runSeed()
	b := worksheet.NewBuilder(reg, cfg.Engine(seed), logger)
	ws, err := b.Build(cmd.Context(), worksheet.Request{
		Topic:      args[0],
		Difficulty: difficulty,
		Count:      count,
		Seed:       seed,
		Workers:    workers,
	})
	if err != nil {
		return err
	}

	out := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := worksheet.Write(out, ws, format); err != nil {
		return err
	}
	logger.Info("worksheet written",
		zap.String("id", ws.ID),
		zap.String("topic", ws.Topic),
		zap.Int("count", len(ws.Items)),
		zap.Uint64("seed", seed))
	return nil
}
