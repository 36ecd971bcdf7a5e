package middleware

import (
	"net/http"
	"strings"
	"time"

	"shuttle-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	userIDKey   = "userID"
	userRoleKey = "userRole"
)

// SignToken issues the HS256 bearer token the auth endpoints hand out.
func SignToken(secret []byte, userID int64, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// MustAuth rejects requests without a valid bearer token and stores the
// caller identity in the context.
func MustAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		bearer, raw, found := strings.Cut(header, " ")
		if !found || bearer != "Bearer" || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized request"})
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized request"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized request"})
			return
		}

		uid, ok := claims["user_id"].(float64)
		if !ok || uid <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized request"})
			return
		}
		role, _ := claims["role"].(string)
		if role == "" {
			role = domain.RoleUser
		}

		c.Set(userIDKey, int64(uid))
		c.Set(userRoleKey, role)
		c.Next()
	}
}

// GetIdentity returns the authenticated caller stored by MustAuth.
func GetIdentity(c *gin.Context) (domain.Identity, bool) {
	id := domain.Identity{}
	v, ok := c.Get(userIDKey)
	if !ok {
		return id, false
	}
	uid, ok := v.(int64)
	if !ok || uid <= 0 {
		return id, false
	}
	id.UserID = uid
	id.Role = c.GetString(userRoleKey)
	return id, true
}
