package jwt

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bekzodtm/shoppay/internal/pkg/models"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "shoppay",
		},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testConfig()
	userID := uuid.New()

	tokenString, expiresAt, err := GenerateToken(userID, "customer", cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	claims, err := ValidateToken(tokenString, cfg.JWT.Secret)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), fmt.Sprintf("%v", (*claims)["user_id"]))
	assert.Equal(t, "customer", (*claims)["role"])
	assert.Equal(t, "shoppay", (*claims)["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testConfig()

	tokenString, _, err := GenerateToken(uuid.New(), "customer", cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(tokenString, "another-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Garbage(t *testing.T) {
	claims, err := ValidateToken("not.a.token", "test-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
