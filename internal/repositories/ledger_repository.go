package repositories

import (
	"context"
	"database/sql"

	intconfig "shuttle-backend/internal/config"
	"shuttle-backend/internal/domain/models"
)

type LedgerRepository struct {
	DB *sql.DB
}

func (r LedgerRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Append inserts a ledger entry. Entries are never updated or deleted; the
// table is the audit trail for every balance change.
func (r LedgerRepository) Append(ctx context.Context, q Querier, e models.LedgerEntry) (int64, error) {
	res, err := q.ExecContext(ctx, `
		INSERT INTO ledger_entries (wallet_id, entry_type, amount, balance_after, reference)
		VALUES (?, ?, ?, ?, ?)
	`, e.WalletID, e.EntryType, e.Amount, e.BalanceAfter, e.Reference)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

const ledgerColumns = `id, wallet_id, entry_type, amount, balance_after, reference, created_at`

func scanLedgerEntries(rows *sql.Rows) ([]models.LedgerEntry, error) {
	out := []models.LedgerEntry{}
	for rows.Next() {
		var e models.LedgerEntry
		if err := rows.Scan(&e.ID, &e.WalletID, &e.EntryType, &e.Amount, &e.BalanceAfter, &e.Reference, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r LedgerRepository) ListByWallet(ctx context.Context, walletID int64) ([]models.LedgerEntry, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT `+ledgerColumns+` FROM ledger_entries
		WHERE wallet_id=? ORDER BY id DESC
	`, walletID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLedgerEntries(rows)
}

func (r LedgerRepository) ListAll(ctx context.Context) ([]models.LedgerEntry, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT `+ledgerColumns+` FROM ledger_entries ORDER BY id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLedgerEntries(rows)
}
