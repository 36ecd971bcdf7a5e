package repositories

import (
	"context"
	"database/sql"

	intconfig "shuttle-backend/internal/config"
	"shuttle-backend/internal/domain/models"
)

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// TripForBooking is the locked snapshot the booking coordinator works on.
type TripForBooking struct {
	ID             int64
	RouteID        int64
	AvailableSeats int
	Fare           int64
}

// LockForBooking reads the trip and its route fare under an exclusive row
// lock. Must run inside a transaction; the lock serializes concurrent
// bookings on the same trip.
func (r TripRepository) LockForBooking(ctx context.Context, q Querier, tripID int64) (TripForBooking, error) {
	var t TripForBooking
	err := q.QueryRowContext(ctx, `
		SELECT t.id, t.route_id, t.available_seats, r.fare
		FROM trips t
		JOIN routes r ON r.id = t.route_id
		WHERE t.id = ?
		FOR UPDATE
	`, tripID).Scan(&t.ID, &t.RouteID, &t.AvailableSeats, &t.Fare)
	return t, err
}

// DecrementSeats takes one seat, guarded so the count can never go below
// zero even if the row was not locked first. Returns the affected row count;
// 0 means another transaction took the last seat.
func (r TripRepository) DecrementSeats(ctx context.Context, q Querier, tripID int64) (int64, error) {
	res, err := q.ExecContext(ctx, `
		UPDATE trips SET available_seats = available_seats - 1
		WHERE id = ? AND available_seats > 0
	`, tripID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r TripRepository) InsertMany(ctx context.Context, trips []models.Trip) ([]int64, error) {
	ids := make([]int64, 0, len(trips))
	for _, t := range trips {
		res, err := r.db().ExecContext(ctx, `
			INSERT INTO trips (route_id, shuttle_id, trip_date, start_time, end_time, available_seats)
			VALUES (?, ?, ?, ?, ?, ?)
		`, t.RouteID, t.ShuttleID, t.TripDate, t.StartTime, t.EndTime, t.AvailableSeats)
		if err != nil {
			return ids, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

const tripColumns = `id, route_id, shuttle_id, DATE_FORMAT(trip_date, '%Y-%m-%d'), DATE_FORMAT(start_time, '%Y-%m-%d %H:%i:%s'), DATE_FORMAT(end_time, '%Y-%m-%d %H:%i:%s'), available_seats`

func scanTrips(rows *sql.Rows) ([]models.Trip, error) {
	out := []models.Trip{}
	for rows.Next() {
		var t models.Trip
		if err := rows.Scan(&t.ID, &t.RouteID, &t.ShuttleID, &t.TripDate, &t.StartTime, &t.EndTime, &t.AvailableSeats); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TripRepository) ListByRoute(ctx context.Context, routeID int64, date string) ([]models.Trip, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT `+tripColumns+` FROM trips
		WHERE route_id=? AND trip_date=?
		ORDER BY start_time ASC
	`, routeID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTrips(rows)
}

// ListByShuttle returns the shuttle's trips on a date that have not yet
// ended at the given time.
func (r TripRepository) ListByShuttle(ctx context.Context, shuttleID int64, date, notEndedBefore string) ([]models.Trip, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT `+tripColumns+` FROM trips
		WHERE shuttle_id=? AND trip_date=? AND end_time >= ?
		ORDER BY start_time ASC
	`, shuttleID, date, notEndedBefore)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTrips(rows)
}

// GetDetail builds the trip detail projection; the caller's booking id is
// joined in when that user already holds a booking on the trip.
func (r TripRepository) GetDetail(ctx context.Context, tripID, userID int64) (models.TripDetail, error) {
	var d models.TripDetail
	var bookingID sql.NullInt64
	err := r.db().QueryRowContext(ctx, `
		SELECT t.id, s.id, s.number,
		       r.start_location, r.end_location, r.fare,
		       DATE_FORMAT(t.trip_date, '%Y-%m-%d'),
		       DATE_FORMAT(t.start_time, '%Y-%m-%d %H:%i:%s'),
		       DATE_FORMAT(t.end_time, '%Y-%m-%d %H:%i:%s'),
		       t.available_seats,
		       b.id
		FROM trips t
		JOIN shuttles s ON s.id = t.shuttle_id
		JOIN routes r ON r.id = t.route_id
		LEFT JOIN bookings b ON b.trip_id = t.id AND b.user_id = ?
		WHERE t.id = ?
	`, userID, tripID).Scan(
		&d.ID,
		&d.ShuttleID,
		&d.ShuttleNumber,
		&d.StartLocation,
		&d.EndLocation,
		&d.Fare,
		&d.TripDate,
		&d.StartTime,
		&d.EndTime,
		&d.AvailableSeats,
		&bookingID,
	)
	if err != nil {
		return d, err
	}
	if bookingID.Valid {
		d.BookingID = &bookingID.Int64
	}
	return d, nil
}

func (r TripRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db().ExecContext(ctx, `DELETE FROM trips WHERE id=?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
