package repositories

import (
	"context"
	"database/sql"

	intconfig "shuttle-backend/internal/config"
	"shuttle-backend/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Create inserts the booking row. Only the booking transaction calls this,
// after its ledger entry exists in the same transaction.
func (r BookingRepository) Create(ctx context.Context, q Querier, b models.Booking) (int64, error) {
	res, err := q.ExecContext(ctx, `
		INSERT INTO bookings (code, user_id, trip_id, ledger_entry_id)
		VALUES (?, ?, ?, ?)
	`, b.Code, b.UserID, b.TripID, b.LedgerEntryID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r BookingRepository) GetByID(ctx context.Context, id int64) (models.Booking, error) {
	var b models.Booking
	err := r.db().QueryRowContext(ctx, `
		SELECT id, code, user_id, trip_id, ledger_entry_id, created_at
		FROM bookings WHERE id=?
	`, id).Scan(&b.ID, &b.Code, &b.UserID, &b.TripID, &b.LedgerEntryID, &b.CreatedAt)
	return b, err
}

func (r BookingRepository) ListByUser(ctx context.Context, userID int64) ([]models.Booking, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT id, code, user_id, trip_id, ledger_entry_id, created_at
		FROM bookings WHERE user_id=? ORDER BY id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.ID, &b.Code, &b.UserID, &b.TripID, &b.LedgerEntryID, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// GetReceipt loads everything the PDF receipt needs in one query.
func (r BookingRepository) GetReceipt(ctx context.Context, bookingID int64) (models.BookingReceipt, error) {
	var rec models.BookingReceipt
	err := r.db().QueryRowContext(ctx, `
		SELECT b.id, b.code,
		       CONCAT(u.first_name, ' ', u.last_name), u.student_id,
		       r.start_location, r.end_location, r.fare,
		       DATE_FORMAT(t.trip_date, '%Y-%m-%d'),
		       DATE_FORMAT(t.start_time, '%Y-%m-%d %H:%i:%s'),
		       s.number
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		JOIN trips t ON t.id = b.trip_id
		JOIN routes r ON r.id = t.route_id
		JOIN shuttles s ON s.id = t.shuttle_id
		WHERE b.id = ?
	`, bookingID).Scan(
		&rec.BookingID,
		&rec.Code,
		&rec.PassengerName,
		&rec.StudentID,
		&rec.StartLocation,
		&rec.EndLocation,
		&rec.Fare,
		&rec.TripDate,
		&rec.StartTime,
		&rec.ShuttleNumber,
	)
	return rec, err
}
