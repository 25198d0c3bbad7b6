package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/crm/backend/internal/domain/identity"
	"github.com/crm/backend/internal/domain/shared"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(userID uuid.UUID, role string) (*IssuedToken, error) {
	args := m.Called(userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*IssuedToken), args.Error(1)
}

type MockTokenRevoker struct {
	mock.Mock
}

func (m *MockTokenRevoker) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	args := m.Called(ctx, jti, expiresAt)
	return args.Error(0)
}

func newAuthService(users *MockUserRepository, tokens *MockTokenIssuer, revoker *MockTokenRevoker) *AuthService {
	return NewAuthService(users, tokens, revoker, zap.NewNop())
}

func issuedToken() *IssuedToken {
	return &IssuedToken{
		Token:     "signed-token",
		JTI:       uuid.NewString(),
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
}

func TestAuthServiceRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account and signs in", func(t *testing.T) {
		users := new(MockUserRepository)
		tokens := new(MockTokenIssuer)
		users.On("ExistsByEmail", ctx, "alice@example.com").Return(false, nil)
		users.On("Save", ctx, mock.MatchedBy(func(u *identity.User) bool {
			return u.Email == "alice@example.com" && u.Role == identity.RoleUser
		})).Return(nil)
		tokens.On("Issue", mock.Anything, "user").Return(issuedToken(), nil)

		service := newAuthService(users, tokens, new(MockTokenRevoker))
		result, err := service.Register(ctx, RegisterInput{Name: "Alice", Email: "Alice@Example.com", Password: "secret123"})

		require.NoError(t, err)
		assert.Equal(t, "signed-token", result.Token)
		assert.Equal(t, "alice@example.com", result.User.Email)
		users.AssertExpectations(t)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("ExistsByEmail", ctx, "alice@example.com").Return(true, nil)

		service := newAuthService(users, new(MockTokenIssuer), new(MockTokenRevoker))
		_, err := service.Register(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret123"})

		assert.True(t, errors.Is(err, shared.ErrAlreadyExists))
		users.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("missing fields are rejected before any lookup", func(t *testing.T) {
		users := new(MockUserRepository)
		service := newAuthService(users, new(MockTokenIssuer), new(MockTokenRevoker))

		_, err := service.Register(ctx, RegisterInput{Name: "Alice"})

		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
		users.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
	})
}

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()

	registeredUser := func(t *testing.T) *identity.User {
		user, err := identity.NewUser("Alice", "alice@example.com", "secret123")
		require.NoError(t, err)
		user.ClearDomainEvents()
		return user
	}

	t.Run("valid credentials return a token", func(t *testing.T) {
		user := registeredUser(t)
		users := new(MockUserRepository)
		users.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
		tokens := new(MockTokenIssuer)
		tokens.On("Issue", user.ID, "user").Return(issuedToken(), nil)

		service := newAuthService(users, tokens, new(MockTokenRevoker))
		result, err := service.Login(ctx, LoginInput{Email: "alice@example.com", Password: "secret123"})

		require.NoError(t, err)
		assert.Equal(t, user.ID, result.User.ID)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByEmail", ctx, "nobody@example.com").Return(nil, shared.ErrNotFound)
		users.On("FindByEmail", ctx, "alice@example.com").Return(registeredUser(t), nil)

		service := newAuthService(users, new(MockTokenIssuer), new(MockTokenRevoker))

		_, errUnknown := service.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "secret123"})
		_, errWrong := service.Login(ctx, LoginInput{Email: "alice@example.com", Password: "wrong"})

		assert.True(t, errors.Is(errUnknown, shared.ErrInvalidCredentials))
		assert.True(t, errors.Is(errWrong, shared.ErrInvalidCredentials))
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
	})
}

func TestAuthServiceMe(t *testing.T) {
	ctx := context.Background()

	t.Run("returns profile without password hash", func(t *testing.T) {
		user, err := identity.NewUser("Alice", "alice@example.com", "secret123")
		require.NoError(t, err)

		users := new(MockUserRepository)
		users.On("FindByID", ctx, user.ID).Return(user, nil)

		service := newAuthService(users, new(MockTokenIssuer), new(MockTokenRevoker))
		dto, err := service.Me(ctx, user.ID)

		require.NoError(t, err)
		assert.Equal(t, "Alice", dto.Name)
		assert.Equal(t, "user", dto.Role)
	})

	t.Run("missing user is NOT_FOUND", func(t *testing.T) {
		id := uuid.New()
		users := new(MockUserRepository)
		users.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		service := newAuthService(users, new(MockTokenIssuer), new(MockTokenRevoker))
		_, err := service.Me(ctx, id)

		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})
}

func TestAuthServiceLogout(t *testing.T) {
	ctx := context.Background()
	expiresAt := time.Now().Add(time.Hour)

	revoker := new(MockTokenRevoker)
	revoker.On("Revoke", ctx, "jti-1", expiresAt).Return(nil)

	service := newAuthService(new(MockUserRepository), new(MockTokenIssuer), revoker)
	require.NoError(t, service.Logout(ctx, LogoutInput{TokenJTI: "jti-1", ExpiresAt: expiresAt}))
	revoker.AssertExpectations(t)
}
