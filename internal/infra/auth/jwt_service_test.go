package auth

import (
	"testing"
	"time"

	"aroundtheblock/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func newTestService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestValidateToken(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub":   userID.String(),
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(15 * time.Minute).Unix(),
		"roles": []string{"user"},
	})

	claims, err := svc.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"user"}, claims.Roles)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestService(t)

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(-1 * time.Minute).Unix(),
	})

	_, err := svc.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestService(t)

	tokenString := signToken(t, "some-other-secret", jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(15 * time.Minute).Unix(),
	})

	_, err := svc.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateToken_NonUUIDSubject(t *testing.T) {
	svc := newTestService(t)

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub": "not-a-uuid",
		"exp": time.Now().Add(15 * time.Minute).Unix(),
	})

	_, err := svc.ValidateToken(tokenString)
	assert.Error(t, err)
}
