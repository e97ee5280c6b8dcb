package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfig = models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "roundup"}

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()

	token, expiresAt, err := GenerateToken(userID, "user", testConfig)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(token, testConfig.Secret)
	require.NoError(t, err)
	assert.Equal(t, "user", claims["role"])

	got, err := UserIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateToken(uuid.New(), "user", testConfig)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testConfig
	cfg.Expiration = -1
	token, _, err := GenerateToken(uuid.New(), "user", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg.Secret)
	assert.Error(t, err)
}

func TestValidateToken_RejectsNoneAlgorithm(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": uuid.NewString()}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(token, testConfig.Secret)
	assert.Error(t, err)
}

func TestUserIDFromClaims_Missing(t *testing.T) {
	_, err := UserIDFromClaims(jwt.MapClaims{})
	assert.Error(t, err)

	_, err = UserIDFromClaims(jwt.MapClaims{"user_id": "not-a-uuid"})
	assert.Error(t, err)
}
