package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/splitsphere/backend/internal/auth"
	"github.com/splitsphere/backend/internal/models"
	"github.com/splitsphere/backend/internal/util"
)

// AuthResult carries a freshly issued token and the user it belongs to.
type AuthResult struct {
	Token string
	User  *models.User
}

// AuthService handles registration and login.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
	}
}

// Register creates a new user account and issues a token for it.
func (s *AuthService) Register(ctx context.Context, userID, accountName, credential string) (*AuthResult, error) {
	if userID == "" || accountName == "" {
		return nil, fmt.Errorf("%w: userId and accountName are required", util.ErrInvalidInput)
	}

	user, err := s.authenticator.Register(ctx, userID, accountName, credential)
	if err != nil {
		slog.Warn("Registration failed", "user_id", userID, "error", err)
		return nil, err
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		slog.Error("Failed to generate token", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	slog.Info("User registered", "user_id", user.UserID)
	return &AuthResult{Token: token, User: user}, nil
}

// Login authenticates a user and issues a token.
func (s *AuthService) Login(ctx context.Context, userID, credential string) (*AuthResult, error) {
	if userID == "" || credential == "" {
		return nil, util.ErrInvalidCredentials
	}

	user, err := s.authenticator.Authenticate(ctx, userID, credential)
	if err != nil {
		slog.Warn("Login failed", "user_id", userID)
		return nil, util.ErrInvalidCredentials
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		slog.Error("Failed to generate token", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	slog.Info("User logged in", "user_id", user.UserID)
	return &AuthResult{Token: token, User: user}, nil
}
