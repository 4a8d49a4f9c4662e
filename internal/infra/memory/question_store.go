package memory

import (
	"sync"

	"console-quiz-service/internal/domain"
)

// QuestionStore is the in-memory, insertion-ordered store of questions.
// Indexes are 0-based and stay stable until a Remove shifts later
// entries left. Entities are copied on the way in and out, so the only
// way to change a stored question is Update.
type QuestionStore struct {
	mu        sync.RWMutex
	questions []domain.Question
}

func NewQuestionStore() *QuestionStore {
	return &QuestionStore{}
}

// Add appends a question to the end of the store.
func (s *QuestionStore) Add(question domain.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = append(s.questions, question.Clone())
}

// Remove deletes the question at index, shifting later questions left.
func (s *QuestionStore) Remove(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.questions) {
		return domain.ErrQuestionNotFound
	}
	s.questions = append(s.questions[:index], s.questions[index+1:]...)
	return nil
}

// Get returns a copy of the question at index.
func (s *QuestionStore) Get(index int) (domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.questions) {
		return domain.Question{}, domain.ErrQuestionNotFound
	}
	return s.questions[index].Clone(), nil
}

// Update replaces the question at index in place.
func (s *QuestionStore) Update(index int, question domain.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.questions) {
		return domain.ErrQuestionNotFound
	}
	s.questions[index] = question.Clone()
	return nil
}

// ListAll returns a snapshot of every stored question in index order.
func (s *QuestionStore) ListAll() []domain.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]domain.Question, len(s.questions))
	for i, q := range s.questions {
		snapshot[i] = q.Clone()
	}
	return snapshot
}

// Size reports the current number of stored questions.
func (s *QuestionStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.questions)
}
