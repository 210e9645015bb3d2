package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testCredentials(t *testing.T, login, password string) Credentials {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return Credentials{Login: login, PasswordHash: string(hash)}
}

func TestCredentialsVerify(t *testing.T) {
	creds := testCredentials(t, "admin", "secret")

	assert.True(t, creds.Verify("admin", "secret"))
	assert.False(t, creds.Verify("admin", "wrong"))
	assert.False(t, creds.Verify("other", "secret"))
	assert.False(t, creds.Verify("", ""))
}

func TestCredentialsVerifyEmptyHash(t *testing.T) {
	creds := Credentials{Login: "admin"}
	assert.False(t, creds.Verify("admin", "anything"))
	assert.False(t, creds.Verify("admin", ""))
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	creds := Credentials{Login: "admin", PasswordHash: hash}
	assert.True(t, creds.Verify("admin", "secret"))
}
