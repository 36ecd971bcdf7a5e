package models

import "time"

// Booking exists only in pairs with its ledger entry; both are written in
// the same transaction that decrements the trip's seats.
type Booking struct {
	ID            int64     `json:"id"`
	Code          string    `json:"code"`
	UserID        int64     `json:"user_id"`
	TripID        int64     `json:"trip_id"`
	LedgerEntryID int64     `json:"ledger_entry_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// BookingReceipt carries the fields rendered on the PDF receipt.
type BookingReceipt struct {
	BookingID     int64
	Code          string
	PassengerName string
	StudentID     int64
	StartLocation string
	EndLocation   string
	TripDate      string
	StartTime     string
	ShuttleNumber string
	Fare          int64
}
