package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"shuttle-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func newBookingMock(t *testing.T) (BookingService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	return BookingService{DB: db}, mock, func() { db.Close() }
}

func expectTripLock(mock sqlmock.Sqlmock, tripID, routeID int64, seats int, fare int64) {
	mock.ExpectQuery("SELECT t.id, t.route_id, t.available_seats, r.fare").
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "route_id", "available_seats", "fare"}).
			AddRow(tripID, routeID, seats, fare))
}

func expectWalletLock(mock sqlmock.Sqlmock, userID, walletID, balance int64) {
	mock.ExpectQuery("SELECT id, user_id, balance, updated_at FROM wallets").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "balance", "updated_at"}).
			AddRow(walletID, userID, balance, time.Now()))
}

func TestCreateBooking_Success(t *testing.T) {
	svc, mock, closeDB := newBookingMock(t)
	defer closeDB()

	now := time.Now()

	mock.ExpectBegin()
	expectTripLock(mock, 7, 2, 1, 100)
	expectWalletLock(mock, 5, 9, 100)
	mock.ExpectExec("INSERT INTO ledger_entries").
		WithArgs(int64(9), "deduct", int64(100), int64(0), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(21, 1))
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(sqlmock.AnyArg(), int64(5), int64(7), int64(21)).
		WillReturnResult(sqlmock.NewResult(31, 1))
	mock.ExpectExec("UPDATE trips SET available_seats").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE wallets SET balance").
		WithArgs(int64(0), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT id, code, user_id, trip_id, ledger_entry_id, created_at").
		WithArgs(int64(31)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "user_id", "trip_id", "ledger_entry_id", "created_at"}).
			AddRow(31, "abc-123", 5, 7, 21, now))

	booking, err := svc.CreateBooking(context.Background(), 5, 7)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if booking.ID != 31 {
		t.Fatalf("booking id = %d, want 31", booking.ID)
	}
	if booking.LedgerEntryID != 21 {
		t.Fatalf("ledger entry id = %d, want 21", booking.LedgerEntryID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBooking_TripNotFound(t *testing.T) {
	svc, mock, closeDB := newBookingMock(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT t.id, t.route_id, t.available_seats, r.fare").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := svc.CreateBooking(context.Background(), 5, 404)
	if !errors.Is(err, domain.ErrTripNotFound) {
		t.Fatalf("expected ErrTripNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBooking_NoAvailableSeats(t *testing.T) {
	svc, mock, closeDB := newBookingMock(t)
	defer closeDB()

	mock.ExpectBegin()
	expectTripLock(mock, 7, 2, 0, 100)
	expectWalletLock(mock, 5, 9, 500)
	mock.ExpectRollback()

	_, err := svc.CreateBooking(context.Background(), 5, 7)
	if !errors.Is(err, domain.ErrNoAvailableSeats) {
		t.Fatalf("expected ErrNoAvailableSeats, got %v", err)
	}
	if !domain.IsValidation(err) {
		t.Fatalf("seat exhaustion should be a validation error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBooking_InsufficientFunds(t *testing.T) {
	svc, mock, closeDB := newBookingMock(t)
	defer closeDB()

	mock.ExpectBegin()
	expectTripLock(mock, 7, 2, 3, 100)
	expectWalletLock(mock, 5, 9, 50)
	mock.ExpectRollback()

	_, err := svc.CreateBooking(context.Background(), 5, 7)
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBooking_WalletMissing(t *testing.T) {
	svc, mock, closeDB := newBookingMock(t)
	defer closeDB()

	mock.ExpectBegin()
	expectTripLock(mock, 7, 2, 3, 100)
	mock.ExpectQuery("SELECT id, user_id, balance, updated_at FROM wallets").
		WithArgs(int64(5)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := svc.CreateBooking(context.Background(), 5, 7)
	if !errors.Is(err, domain.ErrWalletNotFound) {
		t.Fatalf("expected ErrWalletNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// The guarded decrement caught a concurrent booking taking the last seat
// after our snapshot; the whole transaction must abort as a conflict.
func TestCreateBooking_GuardedDecrementConflict(t *testing.T) {
	svc, mock, closeDB := newBookingMock(t)
	defer closeDB()

	mock.ExpectBegin()
	expectTripLock(mock, 7, 2, 1, 100)
	expectWalletLock(mock, 5, 9, 100)
	mock.ExpectExec("INSERT INTO ledger_entries").
		WillReturnResult(sqlmock.NewResult(21, 1))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(31, 1))
	mock.ExpectExec("UPDATE trips SET available_seats").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := svc.CreateBooking(context.Background(), 5, 7)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBooking_DeadlockIsConflict(t *testing.T) {
	svc, mock, closeDB := newBookingMock(t)
	defer closeDB()

	mock.ExpectBegin()
	expectTripLock(mock, 7, 2, 1, 100)
	mock.ExpectQuery("SELECT id, user_id, balance, updated_at FROM wallets").
		WithArgs(int64(5)).
		WillReturnError(&mysql.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock"})
	mock.ExpectRollback()

	_, err := svc.CreateBooking(context.Background(), 5, 7)
	if !domain.IsConflict(err) {
		t.Fatalf("deadlock should map to conflict, got %v", err)
	}
	if domain.IsInternal(err) {
		t.Fatalf("deadlock must not be reported as internal")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBooking_CommitFailureIsInternal(t *testing.T) {
	svc, mock, closeDB := newBookingMock(t)
	defer closeDB()

	mock.ExpectBegin()
	expectTripLock(mock, 7, 2, 2, 100)
	expectWalletLock(mock, 5, 9, 300)
	mock.ExpectExec("INSERT INTO ledger_entries").
		WillReturnResult(sqlmock.NewResult(21, 1))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(31, 1))
	mock.ExpectExec("UPDATE trips SET available_seats").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE wallets SET balance").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("connection lost"))

	_, err := svc.CreateBooking(context.Background(), 5, 7)
	if !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBooking_InvalidIDs(t *testing.T) {
	svc := BookingService{}

	if _, err := svc.CreateBooking(context.Background(), 0, 7); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for user id, got %v", err)
	}
	if _, err := svc.CreateBooking(context.Background(), 5, 0); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for trip id, got %v", err)
	}
}
