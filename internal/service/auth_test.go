package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T, password string) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthService("test-secret", "admin", string(hash))
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestAuthService(t, "correct horse")

	token, err := svc.Login("admin", "correct horse")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Subject)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuthService(t, "correct horse")

	_, err := svc.Login("admin", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("root", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRejectsForgedToken(t *testing.T) {
	svc := newTestAuthService(t, "correct horse")
	other := NewAuthService("other-secret", "admin", svc.adminPasswordHash)

	token, err := other.Login("admin", "correct horse")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err, "tokens signed with a different secret must fail")
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestAuthService(t, "correct horse")

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
