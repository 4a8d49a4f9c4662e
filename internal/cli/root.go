package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	seedPath   string
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envConfig := os.Getenv("CONFIG_PATH")
	if envConfig == "" {
		envConfig = "config/config.yaml"
	}

	cmd := &cobra.Command{
		Use:   "quiz-console",
		Short: "Console quiz application for teachers and students",
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")
	cmd.PersistentFlags().StringVar(&seedPath, "seed", "", "path to YAML seed file (overrides config)")
	cmd.AddCommand(NewRunCmd(&configPath, &seedPath))
	cmd.AddCommand(NewCheckCmd(&configPath, &seedPath))
	return cmd
}
