package handlers

import (
	"net/http"

	intconfig "shuttle-backend/internal/config"
	"shuttle-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

var (
	jwtSecret            = []byte("super-secret-key-change-me")
	walletInitialBalance int64
)

// Init wires env-derived settings into the handlers package. Call once
// before mounting routes.
func Init(env intconfig.Env) {
	if env.JWTSecret != "" {
		jwtSecret = []byte(env.JWTSecret)
	}
	walletInitialBalance = env.WalletInitialBalance
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"error":      message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["details"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
