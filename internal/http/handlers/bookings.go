package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"shuttle-backend/internal/domain"
	"shuttle-backend/internal/http/middleware"
	"shuttle-backend/internal/repositories"
	"shuttle-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type createBookingRequest struct {
	TripID int64 `json:"tripId"`
}

// POST /api/bookings/create
func CreateBooking(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "Unauthorized request", nil)
		return
	}

	var req createBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	booking, err := svc.CreateBooking(c.Request.Context(), identity.UserID, req.TripID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// respondBookingError keeps the booking endpoint's wire contract: fixed
// messages per failure kind, 409 for retry-safe conflicts.
func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrTripNotFound):
		RespondError(c, http.StatusNotFound, "Trip not found", nil)
	case errors.Is(err, domain.ErrNoAvailableSeats):
		RespondError(c, http.StatusBadRequest, "No available seats", nil)
	case errors.Is(err, domain.ErrInsufficientFunds):
		RespondError(c, http.StatusBadRequest, "Insufficient funds", nil)
	case domain.IsConflict(err):
		RespondError(c, http.StatusConflict, "Booking conflict, please retry", nil)
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error(), nil)
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error(), nil)
	default:
		RespondError(c, http.StatusInternalServerError, "Something went wrong", nil)
	}
}

// GET /api/bookings
func ListMyBookings(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "Unauthorized request", nil)
		return
	}

	repo := repositories.BookingRepository{}
	bookings, err := repo.ListByUser(c.Request.Context(), identity.UserID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "Something went wrong", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GET /api/bookings/:id/receipt
func GetBookingReceipt(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "Unauthorized request", nil)
		return
	}

	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bookingID <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid booking id", nil)
		return
	}

	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateReceipt(c.Request.Context(), bookingID, identity.UserID, identity.Role)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
