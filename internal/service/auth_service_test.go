package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ajs-hub/placement-api/internal/models"
	"github.com/ajs-hub/placement-api/internal/repository/memory"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	users, err := memory.NewUserDirectory(memory.DemoUsers(), memory.DemoPassword, bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthService(users, nil, nil, AuthConfig{AccessTokenSecret: "test-secret", AccessTokenExpiry: time.Hour, Issuer: "placement-api"})
}

func TestAuthServiceLoginIssuesToken(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.Login(context.Background(), models.LoginRequest{Email: "Student1@saas.com", Password: memory.DemoPassword})
	require.NoError(t, err)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, models.RoleStudent, resp.User.Role)
	assert.Equal(t, "1", resp.User.StudentID)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "4", claims.UserID)
	assert.Equal(t, "1", claims.StudentID)
	assert.Equal(t, "placement-api", claims.Issuer)

	me, err := svc.Me(context.Background(), claims)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", me.FullName)
}

func TestAuthServiceLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "admin@saas.com", Password: "wrong"})
	requireAppError(t, err, http.StatusUnauthorized)

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "ghost@saas.com", Password: memory.DemoPassword})
	requireAppError(t, err, http.StatusUnauthorized)

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "admin", Password: ""})
	requireAppError(t, err, http.StatusBadRequest)
}

func TestAuthServiceValidateTokenRejectsForeignTokens(t *testing.T) {
	svc := newAuthService(t)

	other := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.JWTClaims{
		UserID: "1",
		Role:   models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := other.SignedString([]byte("another-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	requireAppError(t, err, http.StatusUnauthorized)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.JWTClaims{
		UserID: "1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	signed, err = expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = svc.ValidateToken(signed)
	requireAppError(t, err, http.StatusUnauthorized)

	_, err = svc.Me(context.Background(), &models.JWTClaims{UserID: "99"})
	requireAppError(t, err, http.StatusUnauthorized)
}
