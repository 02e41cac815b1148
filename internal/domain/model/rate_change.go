package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateChange is one entry of a loan's interest rate history. Entries form a
// non-overlapping, chronologically ordered partition of the loan's life; at
// most one entry per loan has a nil EffectiveTill (the rate currently in
// force).
type RateChange struct {
	ID            string
	Rate          decimal.Decimal
	EffectiveFrom time.Time
	EffectiveTill *time.Time
	ChangedBy     string
	Reason        string
	CreatedAt     time.Time
}

// Covers reports whether this entry was in force on the given date.
func (rc RateChange) Covers(date time.Time) bool {
	if date.Before(rc.EffectiveFrom) {
		return false
	}
	return rc.EffectiveTill == nil || !rc.EffectiveTill.Before(date)
}

// IsOpen reports whether this entry is the currently active rate period.
func (rc RateChange) IsOpen() bool { return rc.EffectiveTill == nil }
