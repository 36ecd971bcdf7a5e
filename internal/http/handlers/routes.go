package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"shuttle-backend/internal/domain/models"
	"shuttle-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

type routeRequest struct {
	StartLocation string `json:"start_location"`
	EndLocation   string `json:"end_location"`
	Fare          int64  `json:"fare"`
}

// POST /api/routes (admin)
func CreateRoute(c *gin.Context) {
	var req routeRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.StartLocation == "" || req.EndLocation == "" {
		RespondError(c, http.StatusBadRequest, "start and end location are required", nil)
		return
	}
	if req.Fare < 0 {
		RespondError(c, http.StatusBadRequest, "fare must be >= 0", nil)
		return
	}

	repo := repositories.RouteRepository{}
	id, err := repo.Create(c.Request.Context(), models.Route{
		StartLocation: req.StartLocation,
		EndLocation:   req.EndLocation,
		Fare:          req.Fare,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "Something went wrong", nil)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"route": models.Route{
		ID:            id,
		StartLocation: req.StartLocation,
		EndLocation:   req.EndLocation,
		Fare:          req.Fare,
	}})
}

// GET /api/routes
func GetRoutes(c *gin.Context) {
	repo := repositories.RouteRepository{}
	routes, err := repo.List(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "Something went wrong", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": routes})
}

// PUT /api/routes/:id (admin)
func UpdateRoute(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid route id", nil)
		return
	}

	var req routeRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Fare < 0 {
		RespondError(c, http.StatusBadRequest, "fare must be >= 0", nil)
		return
	}

	repo := repositories.RouteRepository{}
	if _, err := repo.GetByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondError(c, http.StatusNotFound, "Route not found", nil)
			return
		}
		RespondError(c, http.StatusInternalServerError, "Something went wrong", nil)
		return
	}

	route := models.Route{ID: id, StartLocation: req.StartLocation, EndLocation: req.EndLocation, Fare: req.Fare}
	if err := repo.Update(c.Request.Context(), route); err != nil {
		RespondError(c, http.StatusInternalServerError, "Something went wrong", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"route": route})
}

// DELETE /api/routes/:id (admin)
func DeleteRoute(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid route id", nil)
		return
	}

	repo := repositories.RouteRepository{}
	if err := repo.Delete(c.Request.Context(), id); err != nil {
		RespondError(c, http.StatusInternalServerError, "Something went wrong", nil)
		return
	}

	c.Status(http.StatusNoContent)
}
