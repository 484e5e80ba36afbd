package middleware

import (
	"context"
	"net/http"
	"strings"

	"todolist-be/internal/apperrors"
	"todolist-be/internal/entities"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const userContextKey = "user"

// TokenVerifier returns the subject (email) of a valid token
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// UserFinder resolves a token subject to a stored user
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}

// AuthMiddleware requires a bearer token, verifies it and loads the user it
// names. Any failure along the way aborts with 401.
func AuthMiddleware(tokens TokenVerifier, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthorized(c, "Not authenticated")
			return
		}

		email, err := tokens.VerifyToken(token)
		if err != nil {
			_, msg := apperrors.HTTPStatus(err)
			unauthorized(c, msg)
			return
		}

		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			log.Error().Err(err).Msg("Failed to resolve token subject")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if user == nil {
			unauthorized(c, apperrors.ErrInvalidToken.Message)
			return
		}

		// Store user info in the context for downstream handlers
		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user placed in the context by AuthMiddleware
func CurrentUser(c *gin.Context) (*entities.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*entities.User)
	return user, ok && user != nil
}

// bearerToken extracts the token from "Bearer <token>"; the scheme is case
// insensitive.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.Contains(token, " ") {
		return "", false
	}
	return token, true
}

func unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}
