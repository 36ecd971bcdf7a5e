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

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

// BookingService coordinates the booking transaction: seat check, wallet
// debit, ledger append and booking insert commit together or not at all.
type BookingService struct {
	TripRepo    repositories.TripRepository
	WalletRepo  repositories.WalletRepository
	LedgerRepo  repositories.LedgerRepository
	BookingRepo repositories.BookingRepository
	DB          *sql.DB
	RequestID   string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) trips() repositories.TripRepository {
	if s.TripRepo.DB != nil {
		return s.TripRepo
	}
	return repositories.TripRepository{DB: s.db()}
}

func (s BookingService) wallets() repositories.WalletRepository {
	if s.WalletRepo.DB != nil {
		return s.WalletRepo
	}
	return repositories.WalletRepository{DB: s.db()}
}

func (s BookingService) ledger() repositories.LedgerRepository {
	if s.LedgerRepo.DB != nil {
		return s.LedgerRepo
	}
	return repositories.LedgerRepository{DB: s.db()}
}

func (s BookingService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

// CreateBooking books one seat on the trip for the caller, debiting the
// caller's wallet by the route fare.
//
// The whole workflow runs in one transaction. Trip and wallet rows are read
// under exclusive locks, so of two racing bookings one blocks until the
// other commits and then re-reads the post-commit state; the seat decrement
// is additionally guarded by available_seats > 0. No partial state survives
// any failure path: the deferred rollback aborts everything not committed.
func (s BookingService) CreateBooking(ctx context.Context, userID, tripID int64) (models.Booking, error) {
	var booking models.Booking

	if userID <= 0 {
		return booking, domain.ValidationError{Field: "user_id", Msg: "invalid id"}
	}
	if tripID <= 0 {
		return booking, domain.ValidationError{Field: "trip_id", Msg: "invalid id"}
	}

	db := s.db()
	if db == nil {
		return booking, domain.InternalError{Msg: "db not available"}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return booking, classifyTxError(err)
	}
	// Rollback after a successful commit is a no-op; this guarantees the
	// scope never stays open past the function boundary.
	defer func() { _ = tx.Rollback() }()

	trip, err := s.trips().LockForBooking(ctx, tx, tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return booking, domain.ErrTripNotFound
		}
		return booking, classifyTxError(err)
	}

	wallet, err := s.wallets().LockByUserID(ctx, tx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return booking, domain.ErrWalletNotFound
		}
		return booking, classifyTxError(err)
	}

	if trip.AvailableSeats == 0 {
		return booking, domain.ErrNoAvailableSeats
	}
	if wallet.Balance < trip.Fare {
		return booking, domain.ErrInsufficientFunds
	}

	newBalance := wallet.Balance - trip.Fare

	entryID, err := s.ledger().Append(ctx, tx, models.LedgerEntry{
		WalletID:     wallet.ID,
		EntryType:    domain.LedgerDeduct,
		Amount:       trip.Fare,
		BalanceAfter: newBalance,
		Reference:    uuid.NewString(),
	})
	if err != nil {
		return booking, classifyTxError(err)
	}

	booking = models.Booking{
		Code:          uuid.NewString(),
		UserID:        userID,
		TripID:        tripID,
		LedgerEntryID: entryID,
	}
	bookingID, err := s.bookings().Create(ctx, tx, booking)
	if err != nil {
		return models.Booking{}, classifyTxError(err)
	}
	booking.ID = bookingID

	affected, err := s.trips().DecrementSeats(ctx, tx, tripID)
	if err != nil {
		return models.Booking{}, classifyTxError(err)
	}
	if affected == 0 {
		return models.Booking{}, domain.ConflictError{Resource: "trip", Msg: "last seat taken by a concurrent booking"}
	}

	if err := s.wallets().SetBalance(ctx, tx, wallet.ID, newBalance); err != nil {
		return models.Booking{}, classifyTxError(err)
	}

	if err := tx.Commit(); err != nil {
		return models.Booking{}, classifyTxError(err)
	}

	utils.LogEvent(s.RequestID, "booking", "create",
		fmt.Sprintf("booking_id=%d trip_id=%d wallet_id=%d amount=%d balance_after=%d",
			booking.ID, tripID, wallet.ID, trip.Fare, newBalance))

	if committed, err := s.bookings().GetByID(ctx, booking.ID); err == nil {
		booking = committed
	}
	return booking, nil
}

// classifyTxError separates retry-safe commit conflicts from infrastructure
// failures. InnoDB reports the losing side of a lock conflict as deadlock
// (1213) or lock wait timeout (1205); both abort the transaction with no
// partial writes, so callers may retry immediately.
func classifyTxError(err error) error {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1213, 1205:
			return domain.ConflictError{Resource: "booking", Msg: "write conflict", Err: err}
		}
	}
	return domain.InternalError{Err: err}
}
