package services

import (
	"time"

	"hostel-backend/models"

	"github.com/shopspring/decimal"
)

// Quote is the derived price for a prospective stay. Never persisted; the
// reservation copies its values at submit time.
type Quote struct {
	Nights      int             `json:"nights"`
	NightlyRate decimal.Decimal `json:"nightlyRate"`
	CleaningFee decimal.Decimal `json:"cleaningFee"`
	Total       decimal.Decimal `json:"total"`
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NightsBetween counts whole days between two calendar dates. Time-of-day
// and location are ignored: both endpoints are rebuilt in UTC so dates
// carrying different zone offsets still subtract as plain calendar days.
// A same-day or inverted range yields 0.
func NightsBetween(checkIn, checkOut time.Time) int {
	n := int(calendarDate(checkOut).Sub(calendarDate(checkIn)).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

// ComputeQuote prices a stay in the given room. The second return value is
// false when the selection is incomplete (missing date, or checkOut not
// strictly after checkIn); callers must branch on it rather than on a zero
// total, which a legitimately free stay could also produce.
//
// Pure and allocation-cheap: safe to call on every date change.
func ComputeQuote(room *models.Room, checkIn, checkOut *time.Time) (Quote, bool) {
	if room == nil || checkIn == nil || checkOut == nil {
		return Quote{}, false
	}

	nights := NightsBetween(*checkIn, *checkOut)
	if nights < 1 {
		return Quote{}, false
	}

	total := room.NightlyRate.Mul(decimal.NewFromInt(int64(nights))).Add(room.CleaningFee)
	return Quote{
		Nights:      nights,
		NightlyRate: room.NightlyRate,
		CleaningFee: room.CleaningFee,
		Total:       total,
	}, true
}
