// Package identity implements registration, authentication and the
// current-user lookup.
package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crm/backend/internal/domain/identity"
	"github.com/crm/backend/internal/domain/shared"
)

// IssuedToken is an access token with its revocation handle.
type IssuedToken struct {
	Token     string
	JTI       string
	ExpiresAt time.Time
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID uuid.UUID, role string) (*IssuedToken, error)
}

// TokenRevoker invalidates issued tokens until they expire on their
// own.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
}

// AuthService handles the authentication use cases.
type AuthService struct {
	users   identity.UserRepository
	tokens  TokenIssuer
	revoker TokenRevoker
	logger  *zap.Logger
}

// NewAuthService creates an auth service.
func NewAuthService(users identity.UserRepository, tokens TokenIssuer, revoker TokenRevoker, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:   users,
		tokens:  tokens,
		revoker: revoker,
		logger:  logger,
	}
}

// Register creates an account and signs the user in.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	user, err := identity.NewUser(input.Name, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	exists, err := s.users.ExistsByEmail(ctx, user.Email)
	if err != nil {
		s.logger.Error("failed to check email uniqueness", zap.Error(err))
		return nil, shared.NewInternalError(err)
	}
	if exists {
		return nil, shared.NewAlreadyExistsError("user already exists")
	}

	if err := s.users.Save(ctx, user); err != nil {
		s.logger.Error("failed to save user", zap.Error(err))
		return nil, shared.NewInternalError(err)
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	return s.authResult(user)
}

// Login authenticates by email and password. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrInvalidCredentials
		}
		s.logger.Error("failed to load user", zap.Error(err))
		return nil, shared.NewInternalError(err)
	}
	if user == nil || !user.CheckPassword(input.Password) {
		return nil, shared.ErrInvalidCredentials
	}

	s.logger.Info("user logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("ip", input.IP),
	)

	return s.authResult(user)
}

// Me returns the profile of the authenticated user.
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*UserDTO, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("user")
		}
		s.logger.Error("failed to load user", zap.Error(err))
		return nil, shared.NewInternalError(err)
	}
	if user == nil {
		return nil, shared.NewNotFoundError("user")
	}

	dto := toUserDTO(user)
	return &dto, nil
}

// Logout revokes the presented token.
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	if err := s.revoker.Revoke(ctx, input.TokenJTI, input.ExpiresAt); err != nil {
		s.logger.Error("failed to revoke token", zap.Error(err))
		return shared.NewInternalError(err)
	}
	return nil
}

func (s *AuthService) authResult(user *identity.User) (*AuthResult, error) {
	issued, err := s.tokens.Issue(user.ID, string(user.Role))
	if err != nil {
		s.logger.Error("failed to issue token", zap.Error(err))
		return nil, shared.NewInternalError(err)
	}

	return &AuthResult{
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
		User:      toUserDTO(user),
	}, nil
}
