// Package console is the interactive transport: menus that collect
// input and render output, talking to the services only.
package console

import (
	"fmt"
	"io"
	"strings"

	"console-quiz-service/internal/app"
	"console-quiz-service/internal/domain"
)

// Menu is the root console loop: registration, login, and role-based
// routing into the teacher or student menus.
type Menu struct {
	prompter *Prompter
	out      io.Writer
	auth     *app.AuthService
	teacher  *app.TeacherService
	quiz     *app.QuizService
}

func NewMenu(in io.Reader, out io.Writer, auth *app.AuthService, teacher *app.TeacherService, quiz *app.QuizService) *Menu {
	return &Menu{
		prompter: NewPrompter(in, out),
		out:      out,
		auth:     auth,
		teacher:  teacher,
		quiz:     quiz,
	}
}

// Run loops over the main menu until the user exits or input ends.
func (m *Menu) Run() {
	for {
		fmt.Fprint(m.out, "\n==== MAIN MENU ====\n1. Registration\n2. Login\n0. Exit\n")
		switch m.prompter.Int("Choose: ") {
		case 1:
			m.register()
		case 2:
			m.login()
		case 0:
			fmt.Fprintln(m.out, "Bye!")
			return
		default:
			fmt.Fprintln(m.out, "Invalid option. Try again.")
		}
		if m.prompter.Done() {
			return
		}
	}
}

func (m *Menu) register() {
	for {
		role, err := domain.ParseRole(m.prompter.Line("Role TEACHER/STUDENT: "))
		if err != nil {
			fmt.Fprintln(m.out, "Invalid role. It must be TEACHER or STUDENT")
			if m.prompter.Done() {
				return
			}
			continue
		}
		username := m.prompter.Line("Enter username: ")
		password := m.prompter.Line("Enter password: ")
		if err := m.auth.Register(role, username, password); err != nil {
			fmt.Fprintf(m.out, "Registration failed: %v\n", err)
			retry := m.prompter.Line("Try again? (Y/N): ")
			if m.prompter.Done() || !equalsIgnoreCase(retry, "y") {
				fmt.Fprintln(m.out, "Registration cancelled.")
				return
			}
			continue
		}
		fmt.Fprintf(m.out, "%s registered successfully.\n", role)
		m.postRegistration()
		return
	}
}

// postRegistration lets a freshly registered user log in right away.
func (m *Menu) postRegistration() {
	for {
		fmt.Fprint(m.out, "-----------------------------\n1. Login\n0. Back\n")
		switch m.prompter.Int("Choose: ") {
		case 1:
			m.login()
			return
		case 0:
			return
		default:
			fmt.Fprintln(m.out, "Invalid option!")
		}
		if m.prompter.Done() {
			return
		}
	}
}

func (m *Menu) login() {
	username := m.prompter.Line("Enter username: ")
	password := m.prompter.Line("Enter password: ")
	user, err := m.auth.Login(username, password)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid credentials. Try again.")
		return
	}
	fmt.Fprintf(m.out, "Welcome %s\nRole: %s\n", user.Username, user.Role)
	switch user.Role {
	case domain.RoleTeacher:
		NewTeacherMenu(m.prompter, m.out, m.teacher).Run()
	case domain.RoleStudent:
		NewStudentMenu(m.prompter, m.out, m.quiz, user).Run()
	}
}

func equalsIgnoreCase(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), b)
}
