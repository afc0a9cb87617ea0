package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var secret = []byte(getJWTSecret())

func getJWTSecret() string {
	if val := os.Getenv("JWT_SECRET"); val != "" {
		return val
	}
	return "supersecret" // fallback
}

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

// GenerateTokenPair mints the access/refresh pair handed out on login. The
// refresh token carries only the user id; identity claims are re-read from
// the store when it is redeemed.
func GenerateTokenPair(userID uint, username, email, role string) (access, refresh string, err error) {
	access, err = GenerateAccessToken(userID, username, email, role)
	if err != nil {
		return "", "", err
	}
	refresh, err = signToken(jwt.MapClaims{
		"user_id":    userID,
		"token_type": "refresh",
		"exp":        time.Now().Add(refreshTokenTTL).Unix(),
	})
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// GenerateAccessToken mints a short-lived token used on authenticated calls.
func GenerateAccessToken(userID uint, username, email, role string) (string, error) {
	return signToken(jwt.MapClaims{
		"user_id":    userID,
		"username":   username,
		"email":      email,
		"role":       role,
		"token_type": "access",
		"exp":        time.Now().Add(accessTokenTTL).Unix(),
	})
}

func signToken(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func parseToken(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("Invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("Invalid token claims")
	}
	return claims, nil
}

// ParseRefresh validates a refresh token and returns the user id it carries.
// Access tokens are rejected so they cannot be replayed for new credentials.
func ParseRefresh(tokenStr string) (uint, error) {
	claims, err := parseToken(tokenStr)
	if err != nil {
		return 0, err
	}
	if claims["token_type"] != "refresh" {
		return 0, errors.New("Token is not a refresh token")
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, errors.New("Invalid token claims")
	}
	return uint(id), nil
}

func claimsFromHeader(c *gin.Context) (jwt.MapClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, errors.New("Missing or invalid Authorization header")
	}
	claims, err := parseToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return nil, err
	}
	// Refresh tokens open no doors on their own.
	if claims["token_type"] != "access" {
		return nil, errors.New("Token is not an access token")
	}
	return claims, nil
}

// RequireAuth ensures a valid access token is present
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := claimsFromHeader(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})
			return
		}

		// Store claims in context for downstream handlers
		c.Set("user_id", claims["user_id"])
		c.Set("role", claims["role"])

		c.Next()
	}
}

// OptionalAuth attaches identity claims when a valid access token accompanies
// the request but lets anonymous callers through untouched.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := claimsFromHeader(c); err == nil {
			c.Set("user_id", claims["user_id"])
			c.Set("role", claims["role"])
		}
		c.Next()
	}
}

// RequireAuthWithRole ensures the token is valid and the user has a specific
// role. The role is checked before any downstream handler runs.
func RequireAuthWithRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := claimsFromHeader(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})
			return
		}

		// Check role
		if role, ok := claims["role"].(string); !ok || role != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "Insufficient permissions"})
			return
		}

		// Store claims in context for downstream handlers
		c.Set("user_id", claims["user_id"])
		c.Set("role", claims["role"])

		c.Next()
	}
}
