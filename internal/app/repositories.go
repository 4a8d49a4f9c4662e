package app

import "console-quiz-service/internal/domain"

// QuestionRepository abstracts how questions are stored. Indexes are
// 0-based; insertion order defines the index space.
type QuestionRepository interface {
	Add(question domain.Question)
	Remove(index int) error
	Get(index int) (domain.Question, error)
	Update(index int, question domain.Question) error
	ListAll() []domain.Question
	Size() int
}

// UserRepository abstracts how registered users are stored.
type UserRepository interface {
	Exists(username, password string) bool
	Add(user domain.User) error
	Remove(username string) error
	FindByUsername(username string) (domain.User, error)
	GetAll() []domain.User
}
