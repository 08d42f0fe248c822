// Package auth implements registration and login over the credential store.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/travelpal/travelpal/internal/models"
	"github.com/travelpal/travelpal/internal/store"
)

// bcryptCost matches the hash cost the credential records were created with.
const bcryptCost = 10

// UserRepository is the slice of the store the auth service needs.
type UserRepository interface {
	Insert(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByPhone(ctx context.Context, phone string) (*models.User, error)
}

// Service handles registration and login.
type Service struct {
	users  UserRepository
	tokens *TokenIssuer
	logger *slog.Logger
}

// NewService creates an auth service.
func NewService(users UserRepository, tokens *TokenIssuer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{users: users, tokens: tokens, logger: logger}
}

// RegisterRequest carries the registration fields. All are required.
type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

// Register validates the request, checks username, email and phone number
// for conflicts in that order (short-circuiting on the first hit), hashes
// the password and persists the record.
func (s *Service) Register(ctx context.Context, req RegisterRequest) error {
	if req.Username == "" || req.Email == "" || req.PhoneNumber == "" || req.Password == "" {
		return ErrMissingFields
	}

	checks := []struct {
		find     func(context.Context, string) (*models.User, error)
		value    string
		conflict error
	}{
		{s.users.FindByUsername, req.Username, ErrUsernameTaken},
		{s.users.FindByEmail, req.Email, ErrEmailTaken},
		{s.users.FindByPhone, req.PhoneNumber, ErrPhoneTaken},
	}
	for _, c := range checks {
		_, err := c.find(ctx, c.value)
		if err == nil {
			return c.conflict
		}
		if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("check existing user: %w", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hash),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		// A concurrent registration can slip past the pre-checks; the
		// unique index is authoritative.
		if errors.Is(err, store.ErrDuplicate) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	s.logger.Info("user registered", "username", req.Username)
	return nil
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Login authenticates a username/password pair and issues a session token.
// Unknown usernames and wrong passwords both return ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID.Hex(), user.Username)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("user logged in", "username", username)
	return &LoginResult{Token: token, Username: user.Username}, nil
}
