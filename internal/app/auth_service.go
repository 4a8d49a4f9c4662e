package app

import "console-quiz-service/internal/domain"

// AuthService is the authentication facade the console transport talks
// to; it forwards to UserService.
type AuthService struct {
	users *UserService
}

func NewAuthService(users *UserService) *AuthService {
	return &AuthService{users: users}
}

func (a *AuthService) Register(role domain.Role, username, password string) error {
	return a.users.Register(role, username, password)
}

func (a *AuthService) Login(username, password string) (domain.User, error) {
	return a.users.Login(username, password)
}
