package services

import (
	"context"
	"database/sql"
	"errors"

	intconfig "shuttle-backend/internal/config"
	"shuttle-backend/internal/domain"
	"shuttle-backend/internal/domain/models"
	"shuttle-backend/internal/repositories"
)

// WalletService serves read-only wallet and ledger views. Balance mutation
// happens only inside BookingService.CreateBooking.
type WalletService struct {
	WalletRepo repositories.WalletRepository
	LedgerRepo repositories.LedgerRepository
	DB         *sql.DB
}

func (s WalletService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s WalletService) wallets() repositories.WalletRepository {
	if s.WalletRepo.DB != nil {
		return s.WalletRepo
	}
	return repositories.WalletRepository{DB: s.db()}
}

func (s WalletService) ledger() repositories.LedgerRepository {
	if s.LedgerRepo.DB != nil {
		return s.LedgerRepo
	}
	return repositories.LedgerRepository{DB: s.db()}
}

func (s WalletService) GetWallet(ctx context.Context, userID int64) (models.Wallet, error) {
	wallet, err := s.wallets().GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return wallet, domain.ErrWalletNotFound
		}
		return wallet, domain.InternalError{Err: err}
	}
	return wallet, nil
}

// ListTransactions returns the caller's ledger entries, newest first.
func (s WalletService) ListTransactions(ctx context.Context, userID int64) ([]models.LedgerEntry, error) {
	wallet, err := s.GetWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.ledger().ListByWallet(ctx, wallet.ID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return entries, nil
}

// ListAllTransactions is the admin view over every wallet's ledger.
func (s WalletService) ListAllTransactions(ctx context.Context) ([]models.LedgerEntry, error) {
	entries, err := s.ledger().ListAll(ctx)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return entries, nil
}
