package jwt

import (
	"errors"
	"fmt"
	"time"

	"todolist-be/internal/apperrors"

	gojwt "github.com/golang-jwt/jwt/v5"
)

const DefaultTTL = 30 * time.Minute

// JWTService issues and verifies HS256 access tokens whose subject is the
// user's email.
type JWTService struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewJWTService(secretKey string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &JWTService{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		now:       time.Now,
	}
}

// GenerateToken signs a token for subject that expires after the TTL.
func (s *JWTService) GenerateToken(subject string) (string, error) {
	now := s.now()
	claims := gojwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  gojwt.NewNumericDate(now),
		ExpiresAt: gojwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken returns the subject of a valid token. Every failure (bad
// signature, wrong algorithm, expired, missing subject) is ErrInvalidToken.
func (s *JWTService) VerifyToken(tokenString string) (string, error) {
	claims := &gojwt.RegisteredClaims{}
	token, err := gojwt.ParseWithClaims(tokenString, claims, func(token *gojwt.Token) (any, error) {
		if _, ok := token.Method.(*gojwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secretKey, nil
	},
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithExpirationRequired(),
		gojwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, gojwt.ErrTokenExpired) {
			return "", apperrors.ErrInvalidToken.WithMessage("Token has expired")
		}
		return "", apperrors.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", apperrors.ErrInvalidToken
	}
	return claims.Subject, nil
}
