package auth

import (
	"testing"

	"jobboard_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	config.AppConfig = &config.Config{}
	config.AppConfig.JWT.Secret = "test-secret-0123456789"
	config.AppConfig.JWT.TTL = 60
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("user-1", "jdoe", "jdoe@example.com", "Jobseeker", "John Doe")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "jdoe", claims.Username)
	assert.Equal(t, "jdoe@example.com", claims.Email)
	assert.Equal(t, "Jobseeker", claims.Role)
	assert.Equal(t, "John Doe", claims.Fullname)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("user-1", "jdoe", "jdoe@example.com", "Jobseeker", "John Doe")
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "a-different-secret-entirely"
	defer func() { config.AppConfig.JWT.Secret = "test-secret-0123456789" }()

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPasswordHash("password123", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("long-enough-password"))
}
