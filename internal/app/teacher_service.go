package app

import (
	"strings"

	"console-quiz-service/internal/domain"
)

// TeacherService is the question-authoring surface. Caller-facing
// question numbers are 1-based, matching how questions are numbered on
// screen; the repository itself is 0-based.
type TeacherService struct {
	questions QuestionRepository
}

func NewTeacherService(questions QuestionRepository) *TeacherService {
	return &TeacherService{questions: questions}
}

// List returns a snapshot of every stored question for rendering.
func (s *TeacherService) List() []domain.Question {
	return s.questions.ListAll()
}

// Add stores a new question. Duplicates are detected by normalized
// text: two questions whose texts differ only in case or surrounding
// whitespace count as the same question.
func (s *TeacherService) Add(text string, answers []domain.Answer) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ErrBlankQuestion
	}
	if len(answers) == 0 {
		return domain.ErrNoAnswers
	}
	normalized := normalizeText(text)
	for _, q := range s.questions.ListAll() {
		if normalizeText(q.Text) == normalized {
			return domain.ErrDuplicateQuestion
		}
	}
	s.questions.Add(domain.Question{Text: text, Answers: answers})
	return nil
}

// Update replaces the text and the whole answer set of the question at
// the given 1-based number.
func (s *TeacherService) Update(number int, text string, answers []domain.Answer) error {
	index := number - 1
	if _, err := s.questions.Get(index); err != nil {
		return err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ErrBlankQuestion
	}
	if len(answers) == 0 {
		return domain.ErrNoAnswers
	}
	return s.questions.Update(index, domain.Question{Text: text, Answers: answers})
}

// Delete removes the question at the given 1-based number and returns
// the removed question.
func (s *TeacherService) Delete(number int) (domain.Question, error) {
	index := number - 1
	question, err := s.questions.Get(index)
	if err != nil {
		return domain.Question{}, err
	}
	if err := s.questions.Remove(index); err != nil {
		return domain.Question{}, err
	}
	return question, nil
}

// normalizeText collapses case and inner/surrounding whitespace so
// near-identical phrasings collide.
func normalizeText(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}
