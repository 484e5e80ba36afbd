package jwt_test

import (
	"testing"
	"time"

	"todolist-be/internal/apperrors"
	"todolist-be/internal/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test_secret_key_for_jwt_1234567890"

func TestGenerateAndVerify(t *testing.T) {
	svc := jwt.NewJWTService(secret, 30*time.Minute)

	token, err := svc.GenerateToken("user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", subject)
}

func TestGenerateSetsExpiry(t *testing.T) {
	issued := time.Date(2025, 11, 24, 10, 0, 0, 0, time.UTC)
	svc := jwt.NewJWTService(secret, 30*time.Minute)
	svc.SetClock(func() time.Time { return issued })

	token, err := svc.GenerateToken("user@example.com")
	require.NoError(t, err)

	claims := &gojwt.RegisteredClaims{}
	_, _, err = gojwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Subject)
	assert.Equal(t, issued.Add(30*time.Minute).Unix(), claims.ExpiresAt.Unix())
}

func TestDefaultTTL(t *testing.T) {
	assert.Equal(t, jwt.DefaultTTL, jwt.NewJWTService(secret, 0).TTL())
}

func TestVerifyExpired(t *testing.T) {
	svc := jwt.NewJWTService(secret, 30*time.Minute)
	issued := time.Now()
	svc.SetClock(func() time.Time { return issued })

	token, err := svc.GenerateToken("user@example.com")
	require.NoError(t, err)

	svc.SetClock(func() time.Time { return issued.Add(31 * time.Minute) })
	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerifyRejects(t *testing.T) {
	svc := jwt.NewJWTService(secret, 30*time.Minute)
	exp := gojwt.NewNumericDate(time.Now().Add(time.Hour))

	sign := func(method gojwt.SigningMethod, claims gojwt.Claims, key any) string {
		s, err := gojwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}

	testCases := []struct {
		description string
		token       string
	}{
		{"garbage", "not.a.token"},
		{"empty", ""},
		{"wrong secret", sign(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{Subject: "a@b.co", ExpiresAt: exp}, []byte("other-secret"))},
		{"missing subject", sign(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{ExpiresAt: exp}, []byte(secret))},
		{"missing expiry", sign(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{Subject: "a@b.co"}, []byte(secret))},
		{"other hmac algorithm", sign(gojwt.SigningMethodHS512, gojwt.RegisteredClaims{Subject: "a@b.co", ExpiresAt: exp}, []byte(secret))},
		{"alg none", sign(gojwt.SigningMethodNone, gojwt.RegisteredClaims{Subject: "a@b.co", ExpiresAt: exp}, gojwt.UnsafeAllowNoneSignatureType)},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			subject, err := svc.VerifyToken(tc.token)
			assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
			assert.Empty(t, subject)
		})
	}
}
