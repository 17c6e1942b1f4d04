package middleware

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"art-auction-backend/internal/config"
	"art-auction-backend/internal/models"
)

const (
	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
)

// authFailure is a rejected Authorization header, already shaped for the response.
type authFailure struct {
	Error   string
	Message string
}

// AuthMiddleware requires a valid Supabase access token.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Access token required"})
			return
		}

		if fail := authenticate(c, cfg.SupabaseJWTSecret, authHeader); fail != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: fail.Error, Message: fail.Message})
			return
		}
		c.Next()
	}
}

// OptionalAuth identifies the caller when a token is present and lets anonymous
// requests through. A token that is present but invalid is still rejected.
func OptionalAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		if fail := authenticate(c, cfg.SupabaseJWTSecret, authHeader); fail != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: fail.Error, Message: fail.Message})
			return
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, secret, authHeader string) *authFailure {
	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return &authFailure{Error: "invalid authorization header format"}
	}

	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return &authFailure{Error: "Access token required"}
	}

	// Try URL decoding in case the token was URL-encoded
	if decoded, err := url.QueryUnescape(tokenString); err == nil {
		tokenString = decoded
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if secret == "" {
			return nil, jwt.ErrSignatureInvalid
		}
		// Supabase JWT secret is used directly as the signing key
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return &authFailure{Error: "invalid token", Message: tokenErrorMessage(err)}
	}
	if !token.Valid {
		return &authFailure{Error: "invalid token"}
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return &authFailure{Error: "missing user id in token"}
	}

	c.Set(UserIDKey, sub)
	if email, ok := claims["email"].(string); ok {
		c.Set(UserEmailKey, email)
	}
	return nil
}

func tokenErrorMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "token has expired"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
		return "token signature is invalid"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "token is malformed - ensure you're using a valid Supabase JWT token"
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return "token could not be verified"
	default:
		return err.Error()
	}
}
