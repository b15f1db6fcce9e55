package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	match, err := VerifyPassword(hash, "correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, match)

	match, err = VerifyPassword(hash, "wrong password")
	require.NoError(t, err)
	assert.False(t, match)
}

func TestHashPassword_Rejects(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)

	_, err = HashPassword(strings.Repeat("a", maxPasswordLen+1))
	assert.Error(t, err)
}

func TestVerifyPassword_MalformedHashIsFalse(t *testing.T) {
	match, err := VerifyPassword("not-a-hash", "whatever")
	require.NoError(t, err)
	assert.False(t, match)
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	key, err := LoadOrGenerateKey(t.TempDir())
	require.NoError(t, err)

	svc, err := NewTokenService(key, time.Hour)
	require.NoError(t, err)

	token, err := svc.Issue("user-1", "amina@eastlify.so")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "v4.local."))

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "amina@eastlify.so", claims.Email)
	assert.Equal(t, "eastlify-api", claims.Issuer)
	assert.Equal(t, "eastlify-shop", claims.Audience)
	assert.NotEmpty(t, claims.TokenID)
}

func TestTokenService_RejectsExpired(t *testing.T) {
	key, err := LoadOrGenerateKey(t.TempDir())
	require.NoError(t, err)

	svc, err := NewTokenService(key, -time.Minute)
	require.NoError(t, err)

	token, err := svc.Issue("user-1", "amina@eastlify.so")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestTokenService_RejectsForeignKey(t *testing.T) {
	keyA, err := LoadOrGenerateKey(t.TempDir())
	require.NoError(t, err)
	keyB, err := LoadOrGenerateKey(t.TempDir())
	require.NoError(t, err)
	require.NotEqual(t, keyA, keyB)

	svcA, err := NewTokenService(keyA, time.Hour)
	require.NoError(t, err)
	svcB, err := NewTokenService(keyB, time.Hour)
	require.NoError(t, err)

	token, err := svcA.Issue("user-1", "amina@eastlify.so")
	require.NoError(t, err)

	_, err = svcB.Verify(token)
	assert.Error(t, err)
}

func TestNewTokenService_RejectsBadKey(t *testing.T) {
	_, err := NewTokenService("short", time.Hour)
	assert.Error(t, err)

	_, err = NewTokenService(strings.Repeat("zz", 32), time.Hour)
	assert.Error(t, err)
}

func TestLoadOrGenerateKey_Stable(t *testing.T) {
	dir := t.TempDir()

	first, err := LoadOrGenerateKey(dir)
	require.NoError(t, err)
	assert.Len(t, first, 64)

	second, err := LoadOrGenerateKey(dir)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
