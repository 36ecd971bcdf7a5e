package handlers

import (
	"net/http"
	"strings"

	"shuttle-backend/internal/domain/models"
	"shuttle-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

type shuttleRequest struct {
	Number string `json:"number"`
}

// POST /api/shuttles (admin)
func CreateShuttle(c *gin.Context) {
	var req shuttleRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	req.Number = strings.TrimSpace(req.Number)
	if req.Number == "" {
		RespondError(c, http.StatusBadRequest, "shuttle number is required", nil)
		return
	}

	repo := repositories.ShuttleRepository{}
	id, err := repo.Create(c.Request.Context(), req.Number)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "Something went wrong", nil)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"shuttle": models.Shuttle{ID: id, Number: req.Number}})
}

// GET /api/shuttles
func GetShuttles(c *gin.Context) {
	repo := repositories.ShuttleRepository{}
	shuttles, err := repo.List(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "Something went wrong", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"shuttles": shuttles})
}
