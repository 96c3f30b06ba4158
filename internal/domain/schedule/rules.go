package schedule

import (
	"time"

	"github.com/hourbook/hourbook/internal/httperr"
)

// ===============================
// Booking rules
// ===============================

// CanBook validates a booking request against the schedule rules. The slot
// conflict check is the repository's concern, not handled here.
func CanBook(providerID, userID string, date time.Time, now time.Time) error {
	if providerID == userID {
		return httperr.ErrBusiness("self_booking")
	}

	hour := date.Hour()
	if hour < DayStartHour || hour > DayEndHour {
		return httperr.ErrBusiness("outside_working_hours")
	}

	if !date.After(now) {
		return httperr.ErrBusiness("past_date")
	}

	return nil
}
