package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/exgen/internal/config"
	"github.com/abhisek/exgen/internal/engine"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "exgen",
	Short: "Procedural math exercise generator",
	Long: `exgen generates randomized algebra exercises (radicals, fractions, mixed
representations, arithmetic and linear equations) with canonical solutions,
LaTeX renderings and step-by-step hints.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			loaded.Seed, _ = cmd.Flags().GetUint64("seed")
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		cfg = loaded

		verbose, _ := cmd.Flags().GetBool("verbose")
		logger, err = newLogger(cfg.Logging.Level, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides EXGEN_CONFIG env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed (0 picks a fresh one)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(worksheetCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds a production logger writing to stderr. Verbose forces
// debug level.
func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

// runSeed returns the configured seed, or a fresh one when it is zero.
func runSeed() uint64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	seed := uint64(time.Now().UnixNano())
	logger.Debug("picked random seed", zap.Uint64("seed", seed))
	return seed
}

// newDispatcher builds a dispatcher over the enabled topics.
func newDispatcher(seed uint64) (*engine.Dispatcher, *engine.Registry, error) {
	reg, err := cfg.Registry(engine.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	d := engine.NewDispatcher(reg, cfg.Engine(seed), engine.WithLogger(logger))
	return d, reg, nil
}

// warn prints a user-facing warning.
func warn(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
