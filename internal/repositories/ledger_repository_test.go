package repositories

import (
	"context"
	"testing"
	"time"

	"shuttle-backend/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestLedgerAppend(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO ledger_entries").
		WithArgs(int64(9), "deduct", int64(150), int64(350), "ref-1").
		WillReturnResult(sqlmock.NewResult(42, 1))

	repo := LedgerRepository{DB: db}
	id, err := repo.Append(context.Background(), db, models.LedgerEntry{
		WalletID:     9,
		EntryType:    "deduct",
		Amount:       150,
		BalanceAfter: 350,
		Reference:    "ref-1",
	})
	if err != nil {
		t.Fatalf("append error: %v", err)
	}
	if id != 42 {
		t.Fatalf("entry id = %d, want 42", id)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLedgerListByWallet(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT id, wallet_id, entry_type, amount, balance_after, reference, created_at").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "wallet_id", "entry_type", "amount", "balance_after", "reference", "created_at"}).
			AddRow(2, 9, "deduct", 100, 300, "ref-2", now).
			AddRow(1, 9, "deduct", 100, 400, "ref-1", now))

	repo := LedgerRepository{DB: db}
	entries, err := repo.ListByWallet(context.Background(), 9)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != 2 || entries[1].ID != 1 {
		t.Fatalf("entries should come back newest first: %+v", entries)
	}
	if entries[0].BalanceAfter != 300 {
		t.Fatalf("balance_after = %d, want 300", entries[0].BalanceAfter)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
