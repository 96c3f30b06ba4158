package schedule

import "time"

// Bookable window of a provider's day. Every provider works the same hours;
// one appointment occupies one whole hour.
const (
	DayStartHour = 8
	DayEndHour   = 17
)

type AvailabilityInput struct {
	ProviderID string
	Year       int
	Month      int
	Day        int
}

type HourSlot struct {
	Hour      int  `json:"hour"`
	Available bool `json:"available"`
}

// ComposeDate builds the hour-precision timestamp a booking targets.
// Minutes and seconds are always zero.
func ComposeDate(year, month, day, hour int, loc *time.Location) time.Time {
	return time.Date(year, time.Month(month), day, hour, 0, 0, 0, loc)
}

// DayBounds returns the [start, end) interval covering the bookable hours of
// the given day.
func DayBounds(year, month, day int, loc *time.Location) (time.Time, time.Time) {
	start := ComposeDate(year, month, day, DayStartHour, loc)
	end := ComposeDate(year, month, day, DayEndHour+1, loc)
	return start, end
}
