package handlers

import (
	"net/http"
	"time"

	"shuttle-backend/internal/domain"
	"shuttle-backend/internal/http/middleware"
	"shuttle-backend/internal/services"

	"github.com/gin-gonic/gin"
)

const tokenTTL = 24 * time.Hour

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.AccountService{RequestID: middleware.GetRequestID(c)}
	user, err := svc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if domain.IsInternal(err) {
			RespondError(c, http.StatusInternalServerError, "Something went wrong", nil)
			return
		}
		// Credential failures surface as validation errors; keep them 401.
		RespondError(c, http.StatusUnauthorized, "invalid email or password", nil)
		return
	}

	token, err := middleware.SignToken(jwtSecret, user.ID, user.Role, tokenTTL)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "Something went wrong", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user.ToPublic(),
	})
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req services.RegisterInput
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.AccountService{
		RequestID:      middleware.GetRequestID(c),
		InitialBalance: walletInitialBalance,
	}
	user, err := svc.Register(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user.ToPublic()})
}
