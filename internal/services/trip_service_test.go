package services

import (
	"testing"

	"shuttle-backend/internal/domain"
)

func validTripInput() CreateTripsInput {
	return CreateTripsInput{
		RouteID:        1,
		ShuttleID:      2,
		Date:           "2025-01-06",
		StartTime:      "2025-01-06 08:00:00",
		EndTime:        "2025-01-06 08:45:00",
		AvailableSeats: 12,
		Duplicates:     1,
	}
}

func TestBuildTripRows_SingleTrip(t *testing.T) {
	rows, err := buildTripRows(validTripInput())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].TripDate != "2025-01-06" {
		t.Fatalf("trip date = %s", rows[0].TripDate)
	}
	if rows[0].AvailableSeats != 12 {
		t.Fatalf("available seats = %d", rows[0].AvailableSeats)
	}
}

func TestBuildTripRows_WeeklyDuplicates(t *testing.T) {
	in := validTripInput()
	in.Duplicates = 3

	rows, err := buildTripRows(in)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	wantDates := []string{"2025-01-06", "2025-01-13", "2025-01-20"}
	wantStarts := []string{"2025-01-06 08:00:00", "2025-01-13 08:00:00", "2025-01-20 08:00:00"}
	for i := range rows {
		if rows[i].TripDate != wantDates[i] {
			t.Fatalf("row %d trip date = %s, want %s", i, rows[i].TripDate, wantDates[i])
		}
		if rows[i].StartTime != wantStarts[i] {
			t.Fatalf("row %d start time = %s, want %s", i, rows[i].StartTime, wantStarts[i])
		}
		if rows[i].AvailableSeats != 12 {
			t.Fatalf("row %d seats = %d", i, rows[i].AvailableSeats)
		}
	}
}

func TestBuildTripRows_DuplicatesDefaultsToOne(t *testing.T) {
	in := validTripInput()
	in.Duplicates = 0

	rows, err := buildTripRows(in)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
}

func TestBuildTripRows_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateTripsInput)
	}{
		{"missing route", func(in *CreateTripsInput) { in.RouteID = 0 }},
		{"missing shuttle", func(in *CreateTripsInput) { in.ShuttleID = 0 }},
		{"negative seats", func(in *CreateTripsInput) { in.AvailableSeats = -1 }},
		{"bad date", func(in *CreateTripsInput) { in.Date = "06-01-2025" }},
		{"bad start", func(in *CreateTripsInput) { in.StartTime = "08:00" }},
		{"end before start", func(in *CreateTripsInput) { in.EndTime = "2025-01-06 07:00:00" }},
	}

	for _, tc := range cases {
		in := validTripInput()
		tc.mutate(&in)
		if _, err := buildTripRows(in); !domain.IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestBuildTripRows_ZeroSeatsAllowed(t *testing.T) {
	in := validTripInput()
	in.AvailableSeats = 0

	rows, err := buildTripRows(in)
	if err != nil {
		t.Fatalf("zero seats should be accepted, got %v", err)
	}
	if rows[0].AvailableSeats != 0 {
		t.Fatalf("available seats = %d, want 0", rows[0].AvailableSeats)
	}
}
