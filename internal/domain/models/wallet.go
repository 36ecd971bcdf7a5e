package models

import "time"

// Wallet balances are mutated only by applying ledger entries inside the
// booking transaction; reads elsewhere are informational.
type Wallet struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Balance   int64     `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LedgerEntry is an append-only record of a balance-affecting event.
// BalanceAfter is the wallet balance immediately after applying the entry.
type LedgerEntry struct {
	ID           int64     `json:"id"`
	WalletID     int64     `json:"wallet_id"`
	EntryType    string    `json:"entry_type"`
	Amount       int64     `json:"amount"`
	BalanceAfter int64     `json:"balance_after"`
	Reference    string    `json:"reference"`
	CreatedAt    time.Time `json:"created_at"`
}
