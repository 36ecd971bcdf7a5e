package handlers

import (
	"net/http"

	"shuttle-backend/internal/http/middleware"
	"shuttle-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/wallet
func GetWallet(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "Unauthorized request", nil)
		return
	}

	svc := services.WalletService{}
	wallet, err := svc.GetWallet(c.Request.Context(), identity.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wallet": wallet})
}

// GET /api/transactions/get-transactions
func GetMyTransactions(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "Unauthorized request", nil)
		return
	}

	svc := services.WalletService{}
	entries, err := svc.ListTransactions(c.Request.Context(), identity.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": entries})
}

// GET /api/transactions (admin)
func GetAllTransactions(c *gin.Context) {
	svc := services.WalletService{}
	entries, err := svc.ListAllTransactions(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": entries})
}
