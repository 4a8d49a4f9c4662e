package cli

import (
	"fmt"
	"log"

	"console-quiz-service/internal/config"
	"console-quiz-service/internal/infra/seed"
	"github.com/spf13/cobra"
)

// NewCheckCmd validates a seed file without starting the console.
func NewCheckCmd(configPath, seedPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate a seed file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(*configPath, *seedPath)
		},
	}
}

func runCheck(configPath, seedFlag string) error {
	seedFile := seedFlag
	if seedFile == "" {
		cfg, err := config.LoadOrDefault(configPath)
		if err != nil {
			return err
		}
		seedFile = cfg.Seed.Path
	}
	if seedFile == "" {
		return fmt.Errorf("no seed file given via --seed or config")
	}

	data, err := seed.Load(seedFile)
	if err != nil {
		return err
	}
	log.Printf("seed file ok: %d users, %d questions", len(data.Users), len(data.Questions))
	return nil
}
