package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	if !IsNotFound(ErrTripNotFound) {
		t.Fatalf("ErrTripNotFound should be a not-found error")
	}
	if !IsValidation(ErrNoAvailableSeats) {
		t.Fatalf("ErrNoAvailableSeats should be a validation error")
	}
	if !IsValidation(ErrInsufficientFunds) {
		t.Fatalf("ErrInsufficientFunds should be a validation error")
	}
	if !IsConflict(ConflictError{Resource: "booking"}) {
		t.Fatalf("ConflictError should be a conflict")
	}
	if !IsInternal(InternalError{Msg: "boom"}) {
		t.Fatalf("InternalError should be internal")
	}

	if IsConflict(ErrNoAvailableSeats) {
		t.Fatalf("validation must not be a conflict")
	}
	if IsInternal(ErrTripNotFound) {
		t.Fatalf("not-found must not be internal")
	}
}

func TestErrorKindsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("create booking: %w", ErrNoAvailableSeats)
	if !errors.Is(wrapped, ErrNoAvailableSeats) {
		t.Fatalf("wrapped error should still match the sentinel")
	}
	if !IsValidation(wrapped) {
		t.Fatalf("wrapped error should still be a validation error")
	}
}

func TestErrorMessages(t *testing.T) {
	if got := ErrTripNotFound.Error(); got != "trip not found" {
		t.Fatalf("ErrTripNotFound message = %q", got)
	}
	if got := (NotFoundError{}).Error(); got != "not found" {
		t.Fatalf("empty NotFoundError message = %q", got)
	}
	if got := (ConflictError{Resource: "trip", Msg: "seat taken"}).Error(); got != "trip conflict: seat taken" {
		t.Fatalf("conflict message = %q", got)
	}
	if got := (ValidationError{Field: "fare"}).Error(); got != "invalid fare" {
		t.Fatalf("validation message = %q", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("row locked")
	err := ConflictError{Resource: "booking", Err: cause}
	if !errors.Is(err, cause) {
		t.Fatalf("conflict should unwrap to its cause")
	}
}
