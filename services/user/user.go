package user

import (
	"context"
	"fmt"
	"time"

	"neatspin/models"
	"neatspin/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 24 * time.Hour

// Register creates a new account and returns an auth token.
func (s *DefaultUserService) Register(email, name, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	ctx := context.Background()
	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hashed),
	}
	id, err := s.Repo.Create(ctx, userObj)
	if err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	token, err := utils.GenerateToken(id, email, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResponse{ID: id, Token: token, Email: email, Name: name}, nil
}

// Authenticate verifies credentials and returns an auth token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	ctx := context.Background()

	userObj, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userObj == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userObj.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(userObj.ID, userObj.Email, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResponse{
		ID:      userObj.ID,
		Token:   token,
		Email:   userObj.Email,
		Name:    userObj.Name,
		IsAdmin: userObj.IsAdmin,
	}, nil
}

// PromoteToAdmin sets the is_admin flag on the account matching the email.
func (s *DefaultUserService) PromoteToAdmin(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}

	ctx := context.Background()
	userObj, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if userObj == nil {
		return fmt.Errorf("user not found with the provided email")
	}

	if err := s.Repo.SetAdmin(ctx, userObj.ID, true); err != nil {
		return fmt.Errorf("failed to update user profile: %w", err)
	}
	return nil
}
