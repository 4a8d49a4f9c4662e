package domain

import (
	"fmt"
	"strings"
)

// Role defines a user's access level within the quiz system.
type Role string

const (
	// RoleTeacher can author and manage quiz questions.
	RoleTeacher Role = "TEACHER"
	// RoleStudent can take quizzes.
	RoleStudent Role = "STUDENT"
)

// ParseRole maps console/seed input onto a Role, case-insensitively.
func ParseRole(raw string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(RoleTeacher):
		return RoleTeacher, nil
	case string(RoleStudent):
		return RoleStudent, nil
	default:
		return "", ErrUnknownRole
	}
}

// User is a registered account. Username is the identity; passwords are
// stored and compared as plain strings.
type User struct {
	Role     Role   `yaml:"role"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Answer is one option of a multiple-choice question.
type Answer struct {
	Text    string `yaml:"text"`
	Correct bool   `yaml:"correct"`
}

// Question models an MCQ question. Answers keep their insertion order;
// the 1-based position of an answer is what students choose by.
type Question struct {
	Text    string   `yaml:"text"`
	Answers []Answer `yaml:"answers"`
}

// Clone returns a copy whose answer slice does not alias the receiver's.
func (q Question) Clone() Question {
	clone := Question{Text: q.Text}
	if len(q.Answers) > 0 {
		clone.Answers = make([]Answer, len(q.Answers))
		copy(clone.Answers, q.Answers)
	}
	return clone
}

// QuizResult is the outcome of one quiz run for one user.
type QuizResult struct {
	User           User
	CorrectAnswers int
	TotalQuestions int
}

func (r QuizResult) String() string {
	return fmt.Sprintf(
		"\n=== Test results for %s ===\nCorrect answers: %d / %d\n=== Test finished ===",
		r.User.Username, r.CorrectAnswers, r.TotalQuestions,
	)
}
