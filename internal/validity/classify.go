// Package validity computes coupon expiry classification from calendar dates.
//
// Validity dates are calendar dates with no meaningful time component, so both
// operands are normalized to midnight UTC before subtraction. Subtracting raw
// local-time instants shifts the apparent day near timezone boundaries and
// produces off-by-one countdowns, which is exactly the bug this package exists
// to avoid.
package validity

import (
	"fmt"
	"math"
	"time"
)

// Labels carried by a classification, in check order.
const (
	LabelExpired      = "expired"
	LabelExpiresToday = "expires today"
	LabelExpiresSoon  = "expires soon"
	LabelActive       = "active"
)

// soonWindowDays is the remaining-day threshold below which a coupon is
// flagged as expiring soon.
const soonWindowDays = 7

// Status is the expiry classification of a validity date relative to now.
type Status struct {
	Expired       bool
	DaysRemaining int
	Label         string
}

// Classify returns the expiry status of validity relative to now. A coupon
// that expires today is still usable, so it is not reported as expired.
// Both arguments may be in any location; only their UTC calendar day matters.
func Classify(validityDate, now time.Time) Status {
	days := daysBetween(now, validityDate)

	switch {
	case days < 0:
		return Status{Expired: true, DaysRemaining: days, Label: LabelExpired}
	case days == 0:
		return Status{DaysRemaining: 0, Label: LabelExpiresToday}
	case days <= soonWindowDays:
		return Status{DaysRemaining: days, Label: LabelExpiresSoon}
	default:
		return Status{DaysRemaining: days, Label: LabelActive}
	}
}

// Countdown renders the status as a short human-readable string.
func (s Status) Countdown() string {
	switch {
	case s.Expired:
		return LabelExpired
	case s.DaysRemaining == 0:
		return LabelExpiresToday
	case s.DaysRemaining == 1:
		return "expires in 1 day"
	default:
		return fmt.Sprintf("expires in %d days", s.DaysRemaining)
	}
}

// daysBetween counts whole calendar days from a to b after midnight-UTC
// normalization. Rounding absorbs any residual DST or leap-second drift.
func daysBetween(a, b time.Time) int {
	diff := midnightUTC(b).Sub(midnightUTC(a))
	return int(math.Round(diff.Hours() / 24))
}

func midnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
