package cli

import (
	"log"
	"os"

	"console-quiz-service/internal/app"
	"console-quiz-service/internal/config"
	"console-quiz-service/internal/infra/memory"
	"console-quiz-service/internal/infra/seed"
	"console-quiz-service/internal/transport/console"
	"github.com/spf13/cobra"
)

// NewRunCmd builds the CLI subcommand that starts the interactive
// console.
func NewRunCmd(configPath, seedPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive quiz console",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(*configPath, *seedPath)
		},
	}
}

func runConsole(configPath, seedFlag string) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	userStore := memory.NewUserStore()
	questionStore := memory.NewQuestionStore()

	userService := app.NewUserService(userStore)
	authService := app.NewAuthService(userService)
	teacherService := app.NewTeacherService(questionStore)
	quizService := app.NewQuizService(questionStore)

	seedFile := seedFlag
	if seedFile == "" {
		seedFile = cfg.Seed.Path
	}
	if seedFile != "" {
		if err := applySeed(seedFile, userService, teacherService); err != nil {
			return err
		}
	}

	console.NewMenu(os.Stdin, os.Stdout, authService, teacherService, quizService).Run()
	return nil
}

// applySeed pushes seed entries through the services so the usual
// validation and duplicate checks apply; rejected entries are logged
// and skipped.
func applySeed(path string, users *app.UserService, teacher *app.TeacherService) error {
	data, err := seed.Load(path)
	if err != nil {
		return err
	}
	loadedUsers, loadedQuestions := 0, 0
	for _, u := range data.Users {
		if err := users.Register(u.Role, u.Username, u.Password); err != nil {
			log.Printf("seed: skipping user %q: %v", u.Username, err)
			continue
		}
		loadedUsers++
	}
	for _, q := range data.Questions {
		if err := teacher.Add(q.Text, q.Answers); err != nil {
			log.Printf("seed: skipping question %q: %v", q.Text, err)
			continue
		}
		loadedQuestions++
	}
	log.Printf("seed: loaded %d users and %d questions from %s", loadedUsers, loadedQuestions, path)
	return nil
}
