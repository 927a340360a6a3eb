package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/jwt"
	"task-manager-service/internal/my_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthService(userRepo UserRepository) *AuthService {
	return NewAuthService(userRepo, testSecret, time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds with unused email", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		svc := newAuthService(userRepo)

		user, token, err := svc.Register(ctx, "Alice", "alice@example.com", "secret123", domain.RoleMember)
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, domain.RoleMember, user.Role)

		// Stored password is hashed, never the plaintext
		assert.NotEqual(t, "secret123", user.Password)
		assert.NotEmpty(t, user.Password)

		claims, err := jwt.ParseToken(token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, user.Email, claims.Email)
		assert.Equal(t, user.Role, claims.Role)
	})

	t.Run("fails with duplicate email", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		svc := newAuthService(userRepo)

		_, _, err := svc.Register(ctx, "Alice", "alice@example.com", "secret123", domain.RoleMember)
		require.NoError(t, err)

		_, _, err = svc.Register(ctx, "Impostor", "alice@example.com", "other456", domain.RoleAdmin)
		require.Error(t, err)
		assert.ErrorIs(t, err, my_errors.ErrEmailAlreadyExists)
		assert.Len(t, userRepo.users, 1)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*AuthService, *domain.User) {
		userRepo := newFakeUserRepo()
		svc := newAuthService(userRepo)
		user, _, err := svc.Register(ctx, "Bob", "bob@example.com", "hunter22", domain.RoleAdmin)
		require.NoError(t, err)
		return svc, user
	}

	t.Run("succeeds with correct credentials", func(t *testing.T) {
		svc, registered := setup(t)

		user, token, err := svc.Login(ctx, "bob@example.com", "hunter22")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)

		claims, err := jwt.ParseToken(token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, claims.UserID)
		assert.Equal(t, "bob@example.com", claims.Email)
		assert.Equal(t, domain.RoleAdmin, claims.Role)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		svc, _ := setup(t)

		_, _, wrongPassErr := svc.Login(ctx, "bob@example.com", "wrong")
		require.Error(t, wrongPassErr)
		assert.ErrorIs(t, wrongPassErr, my_errors.ErrInvalidCredentials)

		_, _, unknownErr := svc.Login(ctx, "nobody@example.com", "hunter22")
		require.Error(t, unknownErr)
		assert.ErrorIs(t, unknownErr, my_errors.ErrInvalidCredentials)

		// No detail distinguishes the two failures
		assert.Equal(t, wrongPassErr.Error(), unknownErr.Error())
	})

	t.Run("store failure is not reported as invalid credentials", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		svc := newAuthService(&brokenUserRepo{fakeUserRepo: newFakeUserRepo(), err: storeErr})

		_, _, err := svc.Login(ctx, "bob@example.com", "hunter22")
		require.Error(t, err)
		assert.ErrorIs(t, err, storeErr)
		assert.NotErrorIs(t, err, my_errors.ErrInvalidCredentials)
	})
}

type brokenUserRepo struct {
	*fakeUserRepo
	err error
}

func (r *brokenUserRepo) GetUserByEmail(context.Context, string) (*domain.User, error) {
	return nil, r.err
}

func TestAuthService_VerifyToken(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newAuthService(userRepo)

	user, token, err := svc.Register(context.Background(), "Carol", "carol@example.com", "pass123", domain.RoleMember)
	require.NoError(t, err)

	identity, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, user.Email, identity.Email)
	assert.Equal(t, user.Role, identity.Role)

	_, err = svc.VerifyToken("garbage")
	assert.ErrorIs(t, err, my_errors.ErrTokenInvalid)
}
