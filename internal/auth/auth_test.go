package auth

import (
	"testing"

	"github.com/pacsflow/pacsflow/internal/config"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(secret string) Service {
	cfg := config.GetDefaultConfig()
	cfg.Auth.Secret = secret
	return NewService(cfg)
}

func TestGenerateAndValidateToken(t *testing.T) {
	s := newTestService("test-secret")

	token, err := s.GenerateToken("user-1", "clinic-one")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "clinic-one", claims.TenantSubdomain)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := newTestService("issuer-secret")
	verifier := newTestService("other-secret")

	token, err := issuer.GenerateToken("user-1", "clinic-one")
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Nil(t, claims)
	assert.Error(t, err)
	assert.True(t, ierr.IsPermissionDenied(err))
}

func TestValidateTokenGarbage(t *testing.T) {
	s := newTestService("test-secret")

	claims, err := s.ValidateToken("not.a.token")
	assert.Nil(t, claims)
	assert.Error(t, err)
	assert.True(t, ierr.IsPermissionDenied(err))
}
