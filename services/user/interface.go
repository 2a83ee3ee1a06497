package user

import (
	userRepo "neatspin/database/repository/user"
)

// UserService manages customer accounts.
type UserService interface {
	Register(email, name, password string) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	PromoteToAdmin(email string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID      string `json:"id"`
	Token   string `json:"token"`
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	IsAdmin bool   `json:"isAdmin,omitempty"`
}
