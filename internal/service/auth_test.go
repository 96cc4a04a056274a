package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vietanh2810/franchise-api/internal/domain"
	"github.com/vietanh2810/franchise-api/internal/pkg/jwthelper"
	"github.com/vietanh2810/franchise-api/internal/pkg/jwthelper/jwttest"
	"github.com/vietanh2810/franchise-api/internal/repository"
)

const (
	testAccessTTL  = 15 * time.Minute
	testRefreshTTL = time.Hour
)

func newAuthService(t *testing.T) (*AuthService, *MockUserRepository, *MockSessionRepository, jwttest.KeyPair) {
	t.Helper()

	keys := jwttest.NewKeyPair(t)
	users := new(MockUserRepository)
	sessions := new(MockSessionRepository)

	return NewAuthService(users, sessions, keys.Private, testAccessTTL, testRefreshTTL), users, sessions, keys
}

func storedUser(t *testing.T, password string) domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return domain.User{ID: "U1", Email: "m@example.com", Password: string(hash), Role: domain.RoleManager, FranchiseID: ptr("F2")}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("issues tokens", func(t *testing.T) {
		s, users, sessions, keys := newAuthService(t)
		users.On("FindByEmail", ctx, "m@example.com").Return(storedUser(t, "secret123"), nil)
		sessions.On("Create", ctx, "U1", testRefreshTTL).Return("refresh-1", nil)

		session, err := s.Login(ctx, "m@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "refresh-1", session.RefreshToken)

		pub, err := jwthelper.ParsePublicKey(keys.EncodedPublic)
		require.NoError(t, err)
		claims, err := jwthelper.VerifyToken(pub, session.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "U1", claims.Subject)
		require.NotNil(t, claims.FranchiseID)
		assert.Equal(t, "F2", *claims.FranchiseID)
	})

	t.Run("wrong password", func(t *testing.T) {
		s, users, sessions, _ := newAuthService(t)
		users.On("FindByEmail", ctx, "m@example.com").Return(storedUser(t, "secret123"), nil)

		_, err := s.Login(ctx, "m@example.com", "nope12345")
		assert.ErrorIs(t, err, ErrWrongCredentials)
		sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown email", func(t *testing.T) {
		s, users, _, _ := newAuthService(t)
		users.On("FindByEmail", ctx, "x@example.com").Return(domain.User{}, repository.ErrNotFound)

		_, err := s.Login(ctx, "x@example.com", "secret123")
		assert.ErrorIs(t, err, ErrWrongCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates the refresh token", func(t *testing.T) {
		s, users, sessions, _ := newAuthService(t)
		sessions.On("Consume", ctx, "refresh-1").Return("U1", nil)
		users.On("FindByID", ctx, "U1").Return(storedUser(t, "secret123"), nil)
		sessions.On("Create", ctx, "U1", testRefreshTTL).Return("refresh-2", nil)

		session, err := s.Refresh(ctx, "refresh-1")
		require.NoError(t, err)
		assert.Equal(t, "refresh-2", session.RefreshToken)
		assert.NotEmpty(t, session.AccessToken)
	})

	t.Run("unknown token", func(t *testing.T) {
		s, _, sessions, _ := newAuthService(t)
		sessions.On("Consume", ctx, "stale").Return("", repository.ErrSessionNotFound)

		_, err := s.Refresh(ctx, "stale")
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("empty token", func(t *testing.T) {
		s, _, _, _ := newAuthService(t)

		_, err := s.Refresh(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("deleted user", func(t *testing.T) {
		s, users, sessions, _ := newAuthService(t)
		sessions.On("Consume", ctx, "refresh-1").Return("U1", nil)
		users.On("FindByID", ctx, "U1").Return(domain.User{}, repository.ErrNotFound)

		_, err := s.Refresh(ctx, "refresh-1")
		assert.ErrorIs(t, err, ErrInvalidSession)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	s, _, sessions, _ := newAuthService(t)
	sessions.On("Delete", ctx, "refresh-1").Return(errors.New("redis down"))

	assert.NoError(t, s.Logout(ctx, ""))
	assert.Error(t, s.Logout(ctx, "refresh-1"))
}

func TestAuthService_RegisterAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("only once", func(t *testing.T) {
		s, users, _, _ := newAuthService(t)
		users.On("AdminExists", ctx).Return(true, nil)

		_, err := s.RegisterAdmin(ctx, domain.User{Email: "a@example.com", Password: "secret123"})
		assert.ErrorIs(t, err, ErrAdminExists)
	})

	t.Run("first administrator", func(t *testing.T) {
		s, users, _, _ := newAuthService(t)
		users.On("AdminExists", ctx).Return(false, nil)
		users.On("Create", ctx, mock.MatchedBy(func(u domain.User) bool {
			return u.Role == domain.RoleAdmin && u.FranchiseID == nil && u.Password != "secret123"
		})).Return(domain.User{ID: "A1", Role: domain.RoleAdmin}, nil)

		got, err := s.RegisterAdmin(ctx, domain.User{Email: "a@example.com", Password: "secret123", FranchiseID: ptr("F1")})
		require.NoError(t, err)
		assert.Equal(t, "A1", got.ID)
	})
}
