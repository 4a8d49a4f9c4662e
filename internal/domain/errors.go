package domain

import "errors"

var (
	// ErrQuestionNotFound indicates an index outside the stored question range.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrDuplicateQuestion indicates a question with the same normalized text already exists.
	ErrDuplicateQuestion = errors.New("question already exists")
	// ErrBlankQuestion indicates empty question text.
	ErrBlankQuestion = errors.New("question text is empty")
	// ErrNoAnswers indicates a question submitted without any answers.
	ErrNoAnswers = errors.New("question has no answers")
	// ErrUserNotFound indicates no stored user matches the given username.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser indicates a user with the same credentials already exists.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnknownRole indicates role input that is neither TEACHER nor STUDENT.
	ErrUnknownRole = errors.New("unknown role")
)
