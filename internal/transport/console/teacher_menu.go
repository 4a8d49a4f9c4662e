package console

import (
	"fmt"
	"io"

	"console-quiz-service/internal/app"
	"console-quiz-service/internal/domain"
)

// answersPerQuestion is the answer-set size a question is authored
// with at the console.
const answersPerQuestion = 4

// TeacherMenu drives question authoring for a logged-in teacher.
type TeacherMenu struct {
	prompter *Prompter
	out      io.Writer
	teacher  *app.TeacherService
}

func NewTeacherMenu(prompter *Prompter, out io.Writer, teacher *app.TeacherService) *TeacherMenu {
	return &TeacherMenu{prompter: prompter, out: out, teacher: teacher}
}

func (m *TeacherMenu) Run() {
	for {
		fmt.Fprint(m.out, "\n==== TEACHER MENU ====\n1. Add question\n2. Update question\n3. Delete question\n4. List questions\n0. Exit\n")
		switch m.prompter.Int("Choose: ") {
		case 1:
			m.add()
		case 2:
			m.update()
		case 3:
			m.delete()
		case 4:
			m.list()
		case 0:
			return
		default:
			fmt.Fprintln(m.out, "Invalid input. Try again.")
		}
		if m.prompter.Done() {
			return
		}
	}
}

func (m *TeacherMenu) list() {
	questions := m.teacher.List()
	if len(questions) == 0 {
		fmt.Fprintln(m.out, "No questions available")
		return
	}
	for i, q := range questions {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, q.Text)
		for j, a := range q.Answers {
			fmt.Fprintf(m.out, "  %d) %s[%t]\n", j+1, a.Text, a.Correct)
		}
	}
}

func (m *TeacherMenu) add() {
	text := m.prompter.Line("Enter a question: ")
	answers := m.inputAnswers()
	if err := m.teacher.Add(text, answers); err != nil {
		fmt.Fprintf(m.out, "Failed to add question: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "Question added successfully.")
}

func (m *TeacherMenu) update() {
	number := m.prompter.Int("Enter question number: ")
	text := m.prompter.Line("Enter new question: ")
	answers := m.inputAnswers()
	if err := m.teacher.Update(number, text, answers); err != nil {
		fmt.Fprintf(m.out, "Failed to update question: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "Question updated successfully.")
}

func (m *TeacherMenu) delete() {
	number := m.prompter.Int("Enter question number: ")
	question, err := m.teacher.Delete(number)
	if err != nil {
		fmt.Fprintf(m.out, "Failed to delete question: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Deleted question: %s\n", question.Text)
}

func (m *TeacherMenu) inputAnswers() []domain.Answer {
	answers := make([]domain.Answer, 0, answersPerQuestion)
	fmt.Fprintln(m.out, "Enter each answer and whether it is correct (true/false)")
	for i := 0; i < answersPerQuestion; i++ {
		text := m.prompter.Line(fmt.Sprintf("%d. Answer: ", i+1))
		correct := m.prompter.Bool("   Correct (true/false): ")
		if m.prompter.Done() {
			break
		}
		answers = append(answers, domain.Answer{Text: text, Correct: correct})
	}
	return answers
}
