// Package seed loads bootstrap users and questions from a YAML file so
// a fresh process does not have to start from an empty store. Nothing
// is ever written back.
package seed

import (
	"fmt"
	"os"
	"strings"

	"console-quiz-service/internal/domain"
	"gopkg.in/yaml.v3"
)

// Data is the top-level shape of a seed file:
//
//	users:
//	  - role: TEACHER
//	    username: alice
//	    password: chalkboard
//	questions:
//	  - text: What is 2 + 2?
//	    answers:
//	      - text: "3"
//	      - text: "4"
//	        correct: true
type Data struct {
	Users     []domain.User     `yaml:"users"`
	Questions []domain.Question `yaml:"questions"`
}

// Load reads and validates a seed file.
func Load(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, err
	}
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Data{}, fmt.Errorf("parse seed file: %w", err)
	}
	if err := Validate(data); err != nil {
		return Data{}, err
	}
	// Seed files may spell roles in any case; canonicalize so the
	// registration validator accepts them.
	for i := range data.Users {
		role, err := domain.ParseRole(string(data.Users[i].Role))
		if err != nil {
			return Data{}, fmt.Errorf("user %d (%s): %w", i+1, data.Users[i].Username, err)
		}
		data.Users[i].Role = role
	}
	return data, nil
}

// Validate checks that every seed entry can actually be served to a
// student: roles parse, questions have text, and each question carries
// at least one answer marked correct.
func Validate(data Data) error {
	for i, u := range data.Users {
		if _, err := domain.ParseRole(string(u.Role)); err != nil {
			return fmt.Errorf("user %d (%s): %w", i+1, u.Username, err)
		}
	}
	for i, q := range data.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return fmt.Errorf("question %d: %w", i+1, domain.ErrBlankQuestion)
		}
		if len(q.Answers) == 0 {
			return fmt.Errorf("question %d: %w", i+1, domain.ErrNoAnswers)
		}
		correct := false
		for _, a := range q.Answers {
			if a.Correct {
				correct = true
				break
			}
		}
		if !correct {
			return fmt.Errorf("question %d: no answer marked correct", i+1)
		}
	}
	return nil
}
