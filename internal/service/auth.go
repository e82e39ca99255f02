package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nurseguard/backend/internal/repository"
	"github.com/nurseguard/backend/pkg/model"
)

// Declined signup/login results. These map to 4xx responses, not faults.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrMissingFields      = errors.New("name, email and password are required")
)

const minPasswordLength = 6

// SignupRequest carries the registration form fields.
type SignupRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Role            string `json:"role"`
	Department      string `json:"department"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// AuthService manages staff accounts and the single active session.
type AuthService struct {
	store  repository.AccountStore
	logger *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(store repository.AccountStore, logger *zap.Logger) *AuthService {
	return &AuthService{
		store:  store,
		logger: logger,
	}
}

// Signup registers a new staff account. Validation failures and duplicate
// emails are declined results, returned as sentinel errors.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*model.User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}
	if len(req.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	user := &model.User{
		ID:         uuid.New().String(),
		Name:       name,
		Email:      email,
		Role:       req.Role,
		Department: req.Department,
		Password:   req.Password,
		CreatedAt:  time.Now(),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			s.logger.Info("signup declined, email taken", zap.String("email", email))
			return nil, ErrEmailTaken
		}
		s.logger.Error("failed to create user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID),
		zap.String("role", user.Role),
	)

	return user, nil
}

// Login checks the email (case-insensitive) and password and opens a session,
// replacing any previously active one.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.Session, *model.User, error) {
	user, err := s.store.FindUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user", zap.Error(err))
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.Password != password {
		s.logger.Info("login declined, wrong password", zap.String("user_id", user.ID))
		return nil, nil, ErrInvalidCredentials
	}

	session := &model.Session{
		Token:     uuid.New().String(),
		UserID:    user.ID,
		CreatedAt: time.Now(),
	}
	if err := s.store.SaveSession(ctx, session); err != nil {
		s.logger.Error("failed to save session", zap.Error(err), zap.String("user_id", user.ID))
		return nil, nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID))

	return session, user, nil
}

// Logout clears the active session. Logging out with no session is a no-op.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.store.ClearSession(ctx); err != nil {
		s.logger.Error("failed to clear session", zap.Error(err))
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.logger.Info("session cleared")
	return nil
}
