package services

import (
	"errors"
	"time"

	"hostel-backend/models"
)

// BookingFormState tracks the dates a user has picked for a stay and gates
// submission. The constraints it surfaces are advisory: the submitter
// re-checks only the nights >= 1 rule.
type BookingFormState struct {
	checkIn  *time.Time
	checkOut *time.Time

	now func() time.Time
}

func NewBookingFormState() *BookingFormState {
	return &BookingFormState{now: time.Now}
}

func (f *BookingFormState) SetCheckIn(t time.Time) {
	d := dateOnly(t)
	f.checkIn = &d
}

func (f *BookingFormState) SetCheckOut(t time.Time) {
	d := dateOnly(t)
	f.checkOut = &d
}

func (f *BookingFormState) ClearCheckIn()  { f.checkIn = nil }
func (f *BookingFormState) ClearCheckOut() { f.checkOut = nil }

func (f *BookingFormState) CheckIn() *time.Time  { return f.checkIn }
func (f *BookingFormState) CheckOut() *time.Time { return f.checkOut }

// Validate surfaces the date constraints shown in the booking UI: neither
// date may lie in the past, and check-out must fall strictly after check-in.
func (f *BookingFormState) Validate() error {
	today := dateOnly(f.now())

	if f.checkIn != nil && f.checkIn.Before(today) {
		return errors.New("check_in_in_past")
	}
	if f.checkOut != nil {
		if f.checkOut.Before(today) {
			return errors.New("check_out_in_past")
		}
		if f.checkIn != nil && !f.checkOut.After(*f.checkIn) {
			return errors.New("check_out_not_after_check_in")
		}
	}
	return nil
}

// QuoteFor prices the current selection for the given room. Recomputed on
// every call; the form never caches a quote.
func (f *BookingFormState) QuoteFor(room *models.Room) (Quote, bool) {
	return ComputeQuote(room, f.checkIn, f.checkOut)
}

// IsReadyToSubmit reports whether both dates are set and the selection spans
// at least one night.
func (f *BookingFormState) IsReadyToSubmit() bool {
	if f.checkIn == nil || f.checkOut == nil {
		return false
	}
	return NightsBetween(*f.checkIn, *f.checkOut) >= 1
}
