package handlers

import (
	"net/http"
	"strconv"

	"shuttle-backend/internal/http/middleware"
	"shuttle-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/trips/create (admin)
func CreateTrip(c *gin.Context) {
	var req services.CreateTripsInput
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.TripService{RequestID: middleware.GetRequestID(c)}
	trips, err := svc.CreateTrips(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"trips": trips})
}

// GET /api/trips/trips-by-route?routeId=&date=
func GetTripsByRoute(c *gin.Context) {
	routeID, err := strconv.ParseInt(c.Query("routeId"), 10, 64)
	if err != nil || routeID <= 0 {
		RespondError(c, http.StatusBadRequest, "Invalid query parameters", nil)
		return
	}

	svc := services.TripService{RequestID: middleware.GetRequestID(c)}
	trips, svcErr := svc.ListByRoute(c.Request.Context(), routeID, c.Query("date"))
	if svcErr != nil {
		RespondDomainError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// GET /api/trips/trips-by-shuttle?shuttleId=&date=&time=
func GetTripsByShuttle(c *gin.Context) {
	shuttleID, err := strconv.ParseInt(c.Query("shuttleId"), 10, 64)
	if err != nil || shuttleID <= 0 {
		RespondError(c, http.StatusBadRequest, "Invalid query parameters", nil)
		return
	}

	svc := services.TripService{RequestID: middleware.GetRequestID(c)}
	trips, svcErr := svc.ListByShuttle(c.Request.Context(), shuttleID, c.Query("date"), c.Query("time"))
	if svcErr != nil {
		RespondDomainError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// GET /api/trips/:id
func GetTripByID(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "Unauthorized request", nil)
		return
	}

	tripID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || tripID <= 0 {
		RespondError(c, http.StatusBadRequest, "Invalid trip ID", nil)
		return
	}

	svc := services.TripService{RequestID: middleware.GetRequestID(c)}
	detail, svcErr := svc.GetDetail(c.Request.Context(), tripID, identity.UserID)
	if svcErr != nil {
		RespondDomainError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trip": detail})
}

// DELETE /api/trips/:id (admin)
func DeleteTrip(c *gin.Context) {
	tripID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || tripID <= 0 {
		RespondError(c, http.StatusBadRequest, "Invalid trip ID", nil)
		return
	}

	svc := services.TripService{RequestID: middleware.GetRequestID(c)}
	if err := svc.Delete(c.Request.Context(), tripID); err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}
