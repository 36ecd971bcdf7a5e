package services

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"

	intconfig "shuttle-backend/internal/config"
	"shuttle-backend/internal/domain"
	"shuttle-backend/internal/domain/models"
	"shuttle-backend/internal/repositories"
	"shuttle-backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the PDF booking receipt.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	DB          *sql.DB
	RequestID   string
}

func (s DocsService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s DocsService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

// GenerateReceipt returns the PDF bytes and a suggested filename. Only the
// booking owner (or an admin) should be allowed to call this; the handler
// enforces that.
func (s DocsService) GenerateReceipt(ctx context.Context, bookingID, requesterID int64, requesterRole string) ([]byte, string, error) {
	if bookingID <= 0 {
		return nil, "", domain.ValidationError{Field: "booking_id", Msg: "invalid id"}
	}

	booking, err := s.bookings().GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", domain.NotFoundError{Resource: "booking"}
		}
		return nil, "", domain.InternalError{Err: err}
	}
	if booking.UserID != requesterID && requesterRole != domain.RoleAdmin {
		return nil, "", domain.NotFoundError{Resource: "booking"}
	}

	rec, err := s.bookings().GetReceipt(ctx, bookingID)
	if err != nil {
		return nil, "", domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "docs", "generate_receipt", fmt.Sprintf("booking_id=%d", bookingID))
	return buildReceiptPDF(rec)
}

func buildReceiptPDF(rec models.BookingReceipt) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "SHUTTLE BOOKING RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking code : %s", rec.Code),
		fmt.Sprintf("Passenger    : %s", rec.PassengerName),
		fmt.Sprintf("Student ID   : %d", rec.StudentID),
		fmt.Sprintf("Route        : %s -> %s", rec.StartLocation, rec.EndLocation),
		fmt.Sprintf("Date         : %s", rec.TripDate),
		fmt.Sprintf("Departure    : %s", rec.StartTime),
		fmt.Sprintf("Shuttle      : %s", rec.ShuttleNumber),
		fmt.Sprintf("Fare paid    : %s", utils.FormatAmount(rec.Fare)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This receipt covers one seat on the scheduled trip. Show it when boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Err: err}
	}

	filename := fmt.Sprintf("receipt-%d.pdf", rec.BookingID)
	return buf.Bytes(), filename, nil
}
