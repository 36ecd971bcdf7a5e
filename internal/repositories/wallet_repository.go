package repositories

import (
	"context"
	"database/sql"

	intconfig "shuttle-backend/internal/config"
	"shuttle-backend/internal/domain/models"
)

type WalletRepository struct {
	DB *sql.DB
}

func (r WalletRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r WalletRepository) Create(ctx context.Context, q Querier, userID, initialBalance int64) (int64, error) {
	res, err := q.ExecContext(ctx, `
		INSERT INTO wallets (user_id, balance) VALUES (?, ?)
	`, userID, initialBalance)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r WalletRepository) GetByUserID(ctx context.Context, userID int64) (models.Wallet, error) {
	var w models.Wallet
	err := r.db().QueryRowContext(ctx, `
		SELECT id, user_id, balance, updated_at FROM wallets WHERE user_id=?
	`, userID).Scan(&w.ID, &w.UserID, &w.Balance, &w.UpdatedAt)
	return w, err
}

// LockByUserID reads the wallet row under an exclusive lock. Must run inside
// a transaction; the lock serializes concurrent debits on the same wallet.
func (r WalletRepository) LockByUserID(ctx context.Context, q Querier, userID int64) (models.Wallet, error) {
	var w models.Wallet
	err := q.QueryRowContext(ctx, `
		SELECT id, user_id, balance, updated_at FROM wallets WHERE user_id=? FOR UPDATE
	`, userID).Scan(&w.ID, &w.UserID, &w.Balance, &w.UpdatedAt)
	return w, err
}

// SetBalance writes the post-entry balance computed by the coordinator.
// Only the booking transaction calls this.
func (r WalletRepository) SetBalance(ctx context.Context, q Querier, walletID, balance int64) error {
	_, err := q.ExecContext(ctx, `
		UPDATE wallets SET balance=? WHERE id=?
	`, balance, walletID)
	return err
}
