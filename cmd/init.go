package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultConfigPath = "exgen.yaml"

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the effective configuration to a YAML file",
	Long: `Write the configuration exgen is currently running with (defaults, config
file, environment overrides and --seed) to a YAML file for editing.

The path defaults to --config, or exgen.yaml in the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		path = defaultConfigPath
	}
	force, _ := cmd.Flags().GetBool("force")

	if err := writeConfig(path, force); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

// writeConfig saves cfg to path, refusing to replace an existing file
// unless force is set.
func writeConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := cfg.Save(path); err != nil {
		return err
	}
	logger.Debug("config written", zap.String("path", path))
	return nil
}
