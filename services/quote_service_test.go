package services

import (
	"testing"
	"time"

	"hostel-backend/models"

	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func roomWithRates(rate, fee string) *models.Room {
	return &models.Room{
		NightlyRate: decimal.RequireFromString(rate),
		CleaningFee: decimal.RequireFromString(fee),
	}
}

func TestComputeQuote(t *testing.T) {
	checkIn := date(2025, time.June, 1)
	checkOut := date(2025, time.June, 4)
	sameDay := date(2025, time.June, 4)

	tests := []struct {
		name       string
		room       *models.Room
		checkIn    *time.Time
		checkOut   *time.Time
		wantOK     bool
		wantNights int
		wantTotal  string
	}{
		{
			name:       "three nights with cleaning fee",
			room:       roomWithRates("100.00", "25.00"),
			checkIn:    &checkIn,
			checkOut:   &checkOut,
			wantOK:     true,
			wantNights: 3,
			wantTotal:  "325.00",
		},
		{
			name:     "same day is not a valid selection",
			room:     roomWithRates("100.00", "25.00"),
			checkIn:  &sameDay,
			checkOut: &sameDay,
			wantOK:   false,
		},
		{
			name:     "inverted range",
			room:     roomWithRates("100.00", "25.00"),
			checkIn:  &checkOut,
			checkOut: &checkIn,
			wantOK:   false,
		},
		{
			name:     "missing check-in",
			room:     roomWithRates("100.00", "25.00"),
			checkOut: &checkOut,
			wantOK:   false,
		},
		{
			name:    "missing check-out",
			room:    roomWithRates("100.00", "25.00"),
			checkIn: &checkIn,
			wantOK:  false,
		},
		{
			name:       "free stay stays distinguishable from no selection",
			room:       roomWithRates("0.00", "0.00"),
			checkIn:    &checkIn,
			checkOut:   &checkOut,
			wantOK:     true,
			wantNights: 3,
			wantTotal:  "0.00",
		},
		{
			name:       "fractional rate has no float drift",
			room:       roomWithRates("0.10", "0.20"),
			checkIn:    &checkIn,
			checkOut:   &checkOut,
			wantOK:     true,
			wantNights: 3,
			wantTotal:  "0.50",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			quote, ok := ComputeQuote(tc.room, tc.checkIn, tc.checkOut)

			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if !tc.wantOK {
				if quote.Nights != 0 || !quote.Total.IsZero() {
					t.Fatalf("invalid selection must produce the zero quote, got %+v", quote)
				}
				return
			}

			if quote.Nights != tc.wantNights {
				t.Errorf("nights = %d, want %d", quote.Nights, tc.wantNights)
			}
			want := decimal.RequireFromString(tc.wantTotal)
			if !quote.Total.Equal(want) {
				t.Errorf("total = %s, want %s", quote.Total, want)
			}
		})
	}
}

func TestComputeQuoteNilRoom(t *testing.T) {
	checkIn := date(2025, time.June, 1)
	checkOut := date(2025, time.June, 2)
	if _, ok := ComputeQuote(nil, &checkIn, &checkOut); ok {
		t.Fatal("nil room must not produce a quote")
	}
}

func TestNightsBetweenIgnoresTimeOfDay(t *testing.T) {
	checkIn := time.Date(2025, time.June, 1, 23, 30, 0, 0, time.UTC)
	checkOut := time.Date(2025, time.June, 2, 0, 15, 0, 0, time.UTC)
	if n := NightsBetween(checkIn, checkOut); n != 1 {
		t.Fatalf("nights = %d, want 1", n)
	}
}

// Dates arrive through the API as either plain YYYY-MM-DD (UTC) or RFC3339
// with an offset; mixing the two must still count calendar days, never let
// an offset eat or add a night.
func TestNightsBetweenMixedLocations(t *testing.T) {
	west := time.FixedZone("UTC-3", -3*60*60)
	east := time.FixedZone("UTC+3", 3*60*60)

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "negative offset check-in against UTC check-out",
			checkIn:  time.Date(2025, time.June, 1, 0, 0, 0, 0, west),
			checkOut: time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC),
			want:     3,
		},
		{
			name:     "positive offset check-in against UTC check-out",
			checkIn:  time.Date(2025, time.June, 1, 0, 0, 0, 0, east),
			checkOut: time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC),
			want:     3,
		},
		{
			name:     "UTC check-in against negative offset check-out",
			checkIn:  time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, time.June, 4, 0, 0, 0, 0, west),
			want:     3,
		},
		{
			name:     "offsets on both ends of one night",
			checkIn:  time.Date(2025, time.June, 1, 22, 0, 0, 0, west),
			checkOut: time.Date(2025, time.June, 2, 1, 0, 0, 0, east),
			want:     1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if n := NightsBetween(tc.checkIn, tc.checkOut); n != tc.want {
				t.Fatalf("nights = %d, want %d", n, tc.want)
			}
		})
	}
}

func TestComputeQuoteMixedLocationTotal(t *testing.T) {
	west := time.FixedZone("UTC-3", -3*60*60)
	checkIn := time.Date(2025, time.June, 1, 0, 0, 0, 0, west)
	checkOut := date(2025, time.June, 4)

	quote, ok := ComputeQuote(roomWithRates("100.00", "25.00"), &checkIn, &checkOut)
	if !ok {
		t.Fatal("selection must be valid")
	}
	if quote.Nights != 3 {
		t.Fatalf("nights = %d, want 3", quote.Nights)
	}
	if want := decimal.RequireFromString("325.00"); !quote.Total.Equal(want) {
		t.Fatalf("total = %s, want %s", quote.Total, want)
	}
}
