package console

import (
	"fmt"
	"io"

	"console-quiz-service/internal/app"
	"console-quiz-service/internal/domain"
)

// StudentMenu runs quizzes for a logged-in student.
type StudentMenu struct {
	prompter *Prompter
	out      io.Writer
	quiz     *app.QuizService
	user     domain.User
}

func NewStudentMenu(prompter *Prompter, out io.Writer, quiz *app.QuizService, user domain.User) *StudentMenu {
	return &StudentMenu{prompter: prompter, out: out, quiz: quiz, user: user}
}

func (m *StudentMenu) Run() {
	for {
		fmt.Fprint(m.out, "\n==== STUDENT MENU ====\n1. Start quiz\n0. Exit\n")
		switch m.prompter.Int("Choose: ") {
		case 1:
			m.runQuiz()
		case 0:
			return
		default:
			fmt.Fprintln(m.out, "Invalid option.")
		}
		if m.prompter.Done() {
			return
		}
	}
}

// runQuiz walks the question snapshot once, collecting one 1-based
// choice per question, and renders the result.
func (m *StudentMenu) runQuiz() {
	questions := m.quiz.Questions()
	if len(questions) == 0 {
		fmt.Fprintln(m.out, "No questions yet.")
		return
	}
	chosen := make([]int, len(questions))
	fmt.Fprintf(m.out, "=== Test is started for %s ===\n", m.user.Username)
	for i, q := range questions {
		fmt.Fprintf(m.out, "\n%d. %s\n", i+1, q.Text)
		for j, a := range q.Answers {
			fmt.Fprintf(m.out, " %d. %s\n", j+1, a.Text)
		}
		chosen[i] = m.prompter.IntInRange("Choose option: ", 1, len(q.Answers))
		if m.prompter.Done() {
			return
		}
	}
	fmt.Fprintln(m.out, m.quiz.StartQuiz(m.user, chosen))
}
