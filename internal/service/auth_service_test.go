package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAuthService(secret string) *AuthService {
	return &AuthService{
		jwtSecret: []byte(secret),
		logger:    zap.NewNop(),
		now:       time.Now,
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	svc := newTestAuthService("test-secret")
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestParseTokenWrongSecret(t *testing.T) {
	svc := newTestAuthService("test-secret")

	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	other := newTestAuthService("another-secret")
	_, err = other.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenExpired(t *testing.T) {
	svc := newTestAuthService("test-secret")
	// Токен выдан двое суток назад и уже просрочен
	svc.now = func() time.Time {
		return time.Now().Add(-48 * time.Hour)
	}

	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenGarbage(t *testing.T) {
	svc := newTestAuthService("test-secret")

	_, err := svc.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
