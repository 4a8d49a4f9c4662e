package app

import (
	"fmt"
	"strings"

	"console-quiz-service/internal/domain"
	"github.com/go-playground/validator/v10"
)

// registerInput carries the fields checked before a user record is created.
type registerInput struct {
	Role     string `validate:"required,oneof=TEACHER STUDENT"`
	Username string `validate:"required"`
	Password string `validate:"required,min=6"`
}

// UserService handles registration and login on top of a UserRepository.
type UserService struct {
	users    UserRepository
	validate *validator.Validate
}

func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users, validate: validator.New()}
}

// Register validates and stores a new user. The username is trimmed
// before validation, the duplicate check, and storage; passwords must
// be at least 6 characters.
func (s *UserService) Register(role domain.Role, username, password string) error {
	username = strings.TrimSpace(username)
	input := registerInput{Role: string(role), Username: username, Password: password}
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	if s.users.Exists(username, password) {
		return domain.ErrDuplicateUser
	}
	return s.users.Add(domain.User{Role: role, Username: username, Password: password})
}

// Login returns the stored user whose username and password both match
// the supplied values, or ErrInvalidCredentials.
func (s *UserService) Login(username, password string) (domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	for _, u := range s.users.GetAll() {
		if u.Username == username && u.Password == password {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrInvalidCredentials
}
