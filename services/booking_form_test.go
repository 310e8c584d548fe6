package services

import (
	"testing"
	"time"
)

func formAt(today time.Time) *BookingFormState {
	f := NewBookingFormState()
	f.now = func() time.Time { return today }
	return f
}

func TestBookingFormReadyToSubmit(t *testing.T) {
	today := date(2025, time.June, 1)

	t.Run("empty form is not ready", func(t *testing.T) {
		f := formAt(today)
		if f.IsReadyToSubmit() {
			t.Fatal("empty form must not be ready")
		}
	})

	t.Run("only check-in set", func(t *testing.T) {
		f := formAt(today)
		f.SetCheckIn(date(2025, time.June, 2))
		if f.IsReadyToSubmit() {
			t.Fatal("form with one date must not be ready")
		}
	})

	t.Run("same day is not ready", func(t *testing.T) {
		f := formAt(today)
		f.SetCheckIn(date(2025, time.June, 4))
		f.SetCheckOut(date(2025, time.June, 4))
		if f.IsReadyToSubmit() {
			t.Fatal("same-day selection must not be ready")
		}
	})

	t.Run("one night is ready", func(t *testing.T) {
		f := formAt(today)
		f.SetCheckIn(date(2025, time.June, 2))
		f.SetCheckOut(date(2025, time.June, 3))
		if !f.IsReadyToSubmit() {
			t.Fatal("one-night selection must be ready")
		}
	})

	t.Run("clearing a date revokes readiness", func(t *testing.T) {
		f := formAt(today)
		f.SetCheckIn(date(2025, time.June, 2))
		f.SetCheckOut(date(2025, time.June, 3))
		f.ClearCheckOut()
		if f.IsReadyToSubmit() {
			t.Fatal("cleared check-out must not leave the form ready")
		}
	})
}

func TestBookingFormValidate(t *testing.T) {
	today := date(2025, time.June, 10)

	tests := []struct {
		name     string
		checkIn  *time.Time
		checkOut *time.Time
		wantErr  string
	}{
		{name: "empty form is valid"},
		{
			name:    "check-in today is allowed",
			checkIn: ptrDate(2025, time.June, 10),
		},
		{
			name:    "check-in in the past",
			checkIn: ptrDate(2025, time.June, 9),
			wantErr: "check_in_in_past",
		},
		{
			name:     "check-out in the past without check-in",
			checkOut: ptrDate(2025, time.June, 1),
			wantErr:  "check_out_in_past",
		},
		{
			name:     "check-out equal to check-in",
			checkIn:  ptrDate(2025, time.June, 12),
			checkOut: ptrDate(2025, time.June, 12),
			wantErr:  "check_out_not_after_check_in",
		},
		{
			name:     "valid future range",
			checkIn:  ptrDate(2025, time.June, 12),
			checkOut: ptrDate(2025, time.June, 15),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := formAt(today)
			if tc.checkIn != nil {
				f.SetCheckIn(*tc.checkIn)
			}
			if tc.checkOut != nil {
				f.SetCheckOut(*tc.checkOut)
			}

			err := f.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tc.wantErr {
				t.Fatalf("error = %v, want %q", err, tc.wantErr)
			}
		})
	}
}

func TestBookingFormQuoteFor(t *testing.T) {
	today := date(2025, time.June, 1)
	room := roomWithRates("100.00", "25.00")

	f := formAt(today)
	if _, ok := f.QuoteFor(room); ok {
		t.Fatal("empty form must not yield a quote")
	}

	f.SetCheckIn(date(2025, time.June, 1))
	f.SetCheckOut(date(2025, time.June, 4))
	quote, ok := f.QuoteFor(room)
	if !ok {
		t.Fatal("complete selection must yield a quote")
	}
	if quote.Nights != 3 {
		t.Fatalf("nights = %d, want 3", quote.Nights)
	}
}

func ptrDate(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}
