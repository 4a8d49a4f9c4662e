package app

import "console-quiz-service/internal/domain"

// QuizService scores one quiz run against the current question
// snapshot. It keeps no state between runs.
type QuizService struct {
	questions QuestionRepository
}

func NewQuizService(questions QuestionRepository) *QuizService {
	return &QuizService{questions: questions}
}

// Questions returns the snapshot a quiz run is rendered from. The
// caller must align its chosenAnswers with this order.
func (s *QuizService) Questions() []domain.Question {
	return s.questions.ListAll()
}

// StartQuiz scores one pass over all stored questions. chosenAnswers is
// aligned positionally with the question list; entry i is the 1-based
// answer slot picked for question i. Zero, out-of-range, or missing
// entries earn no credit.
func (s *QuizService) StartQuiz(user domain.User, chosenAnswers []int) domain.QuizResult {
	questions := s.questions.ListAll()
	result := domain.QuizResult{User: user, TotalQuestions: len(questions)}
	for i, q := range questions {
		if i >= len(chosenAnswers) {
			break
		}
		choice := chosenAnswers[i]
		if choice >= 1 && choice <= len(q.Answers) && q.Answers[choice-1].Correct {
			result.CorrectAnswers++
		}
	}
	return result
}
