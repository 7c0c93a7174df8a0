package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domain "user-registration-api/internal/domain/user"
	"user-registration-api/internal/infrastructure/password"
)

func newTestAuthService(repo domain.Repository) *AuthService {
	svc := NewAuthService(repo, password.New(bcrypt.MinCost), newTestJWT(), newFakeMQ(), newTestCounter())
	return svc.(*AuthService)
}

func registeredUser(t *testing.T, repo domain.Repository) *domain.User {
	t.Helper()
	us := newTestUserService(repo)
	u, err := us.RegisterUser(context.Background(), registrationFixture(), "Secur3P@ss")
	require.NoError(t, err)
	return u
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newFakeRepo()
	created := registeredUser(t, repo)
	as := newTestAuthService(repo)

	u, err := as.Login(context.Background(), "ana@x.com", "Secur3P@ss")
	require.NoError(t, err)
	require.NotNil(t, u)

	assert.Equal(t, created.ID, u.ID)
	assert.NotEmpty(t, u.Token)

	claims, err := newTestJWT().ValidateToken(u.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims.UserID)
	assert.Equal(t, "ana@x.com", claims.Email)
}

// Login persists the fresh token and refreshes last_login on the record.
func TestAuthService_Login_UpdatesRecord(t *testing.T) {
	repo := newFakeRepo()
	created := registeredUser(t, repo)
	as := newTestAuthService(repo)

	time.Sleep(5 * time.Millisecond)

	u, err := as.Login(context.Background(), "ana@x.com", "Secur3P@ss")
	require.NoError(t, err)

	stored, err := repo.FetchUserByEmail(context.Background(), "ana@x.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, u.Token, stored.Token, "new token overwrites the stored one")
	assert.True(t, stored.LastLoginAt.After(created.LastLoginAt))
}

// Wrong password and unknown email must be indistinguishable to the caller.
func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	repo := newFakeRepo()
	registeredUser(t, repo)
	as := newTestAuthService(repo)

	_, errWrongPass := as.Login(context.Background(), "ana@x.com", "WrongP@ss1")
	_, errUnknown := as.Login(context.Background(), "ghost@x.com", "Secur3P@ss")

	require.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.Equal(t, errWrongPass.Error(), errUnknown.Error())
}

// A corrupted stored digest is an internal failure, not bad credentials.
func TestAuthService_Login_CorruptedDigest(t *testing.T) {
	repo := newFakeRepo()
	u := registeredUser(t, repo)
	as := newTestAuthService(repo)

	repo.mu.Lock()
	repo.users[u.Email].PasswordHash = "not-a-bcrypt-digest"
	repo.mu.Unlock()

	_, err := as.Login(context.Background(), "ana@x.com", "Secur3P@ss")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_FetchError(t *testing.T) {
	repo := newFakeRepo()
	registeredUser(t, repo)
	repo.fetchErr = assert.AnError
	as := newTestAuthService(repo)

	_, err := as.Login(context.Background(), "ana@x.com", "Secur3P@ss")
	require.ErrorIs(t, err, assert.AnError)
}
