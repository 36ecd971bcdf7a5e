package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	intconfig "shuttle-backend/internal/config"
	"shuttle-backend/internal/domain"
	"shuttle-backend/internal/domain/models"
	"shuttle-backend/internal/repositories"
	"shuttle-backend/internal/utils"
)

type TripService struct {
	TripRepo  repositories.TripRepository
	DB        *sql.DB
	RequestID string
}

func (s TripService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s TripService) trips() repositories.TripRepository {
	if s.TripRepo.DB != nil {
		return s.TripRepo
	}
	return repositories.TripRepository{DB: s.db()}
}

// CreateTripsInput describes one scheduled trip; Duplicates > 1 repeats it
// weekly (same weekday, same times) for the following weeks.
type CreateTripsInput struct {
	RouteID        int64  `json:"route_id"`
	ShuttleID      int64  `json:"shuttle_id"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	AvailableSeats int    `json:"available_seats"`
	Duplicates     int    `json:"duplicates"`
}

func (s TripService) CreateTrips(ctx context.Context, in CreateTripsInput) ([]models.Trip, error) {
	rows, err := buildTripRows(in)
	if err != nil {
		return nil, err
	}

	ids, err := s.trips().InsertMany(ctx, rows)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	for i := range ids {
		rows[i].ID = ids[i]
	}

	utils.LogEvent(s.RequestID, "trip", "create", fmt.Sprintf("route_id=%d shuttle_id=%d count=%d", in.RouteID, in.ShuttleID, len(rows)))
	return rows, nil
}

// buildTripRows expands the input into one row per week.
func buildTripRows(in CreateTripsInput) ([]models.Trip, error) {
	if in.RouteID <= 0 {
		return nil, domain.ValidationError{Field: "route_id", Msg: "invalid id"}
	}
	if in.ShuttleID <= 0 {
		return nil, domain.ValidationError{Field: "shuttle_id", Msg: "invalid id"}
	}
	if in.AvailableSeats < 0 {
		return nil, domain.ValidationError{Field: "available_seats", Msg: "must be >= 0"}
	}

	date, err := utils.ParseDate(in.Date)
	if err != nil {
		return nil, domain.ValidationError{Field: "date", Msg: "expected YYYY-MM-DD", Err: err}
	}
	start, err := utils.ParseDateTime(in.StartTime)
	if err != nil {
		return nil, domain.ValidationError{Field: "start_time", Msg: "expected YYYY-MM-DD HH:MM:SS", Err: err}
	}
	end, err := utils.ParseDateTime(in.EndTime)
	if err != nil {
		return nil, domain.ValidationError{Field: "end_time", Msg: "expected YYYY-MM-DD HH:MM:SS", Err: err}
	}
	if end.Before(start) {
		return nil, domain.ValidationError{Field: "end_time", Msg: "before start_time"}
	}

	duplicates := in.Duplicates
	if duplicates < 1 {
		duplicates = 1
	}

	rows := make([]models.Trip, 0, duplicates)
	for i := 0; i < duplicates; i++ {
		days := 7 * i
		rows = append(rows, models.Trip{
			RouteID:        in.RouteID,
			ShuttleID:      in.ShuttleID,
			TripDate:       utils.FormatDate(date.AddDate(0, 0, days)),
			StartTime:      utils.FormatDateTime(start.AddDate(0, 0, days)),
			EndTime:        utils.FormatDateTime(end.AddDate(0, 0, days)),
			AvailableSeats: in.AvailableSeats,
		})
	}
	return rows, nil
}

func (s TripService) ListByRoute(ctx context.Context, routeID int64, date string) ([]models.Trip, error) {
	if routeID <= 0 {
		return nil, domain.ValidationError{Field: "route_id", Msg: "invalid id"}
	}
	if _, err := utils.ParseDate(date); err != nil {
		return nil, domain.ValidationError{Field: "date", Msg: "expected YYYY-MM-DD", Err: err}
	}

	trips, err := s.trips().ListByRoute(ctx, routeID, date)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	if len(trips) == 0 {
		return nil, domain.NotFoundError{Resource: "trips"}
	}
	return trips, nil
}

func (s TripService) ListByShuttle(ctx context.Context, shuttleID int64, date, atTime string) ([]models.Trip, error) {
	if shuttleID <= 0 {
		return nil, domain.ValidationError{Field: "shuttle_id", Msg: "invalid id"}
	}
	if _, err := utils.ParseDate(date); err != nil {
		return nil, domain.ValidationError{Field: "date", Msg: "expected YYYY-MM-DD", Err: err}
	}
	// No time given: start of the day, so every trip that day qualifies.
	if atTime == "" {
		atTime = date + " 00:00:00"
	}
	if _, err := utils.ParseDateTime(atTime); err != nil {
		return nil, domain.ValidationError{Field: "time", Msg: "expected YYYY-MM-DD HH:MM:SS", Err: err}
	}

	trips, err := s.trips().ListByShuttle(ctx, shuttleID, date, atTime)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return trips, nil
}

func (s TripService) GetDetail(ctx context.Context, tripID, userID int64) (models.TripDetail, error) {
	var d models.TripDetail
	if tripID <= 0 {
		return d, domain.ValidationError{Field: "trip_id", Msg: "invalid id"}
	}

	d, err := s.trips().GetDetail(ctx, tripID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return d, domain.ErrTripNotFound
		}
		return d, domain.InternalError{Err: err}
	}
	return d, nil
}

func (s TripService) Delete(ctx context.Context, tripID int64) error {
	if tripID <= 0 {
		return domain.ValidationError{Field: "trip_id", Msg: "invalid id"}
	}

	affected, err := s.trips().Delete(ctx, tripID)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if affected == 0 {
		return domain.ErrTripNotFound
	}
	return nil
}
