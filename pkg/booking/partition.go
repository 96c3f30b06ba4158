package booking

import "fmt"

// DisplaySlot is an availability slot annotated for rendering. Derived state:
// recomputed on every availability change, never stored.
type DisplaySlot struct {
	Hour      int
	Available bool
	Label     string
}

// FormatHour renders a 24h two-digit label, "09:00", "14:00".
func FormatHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// Partition splits availability into morning (hour < 12) and afternoon
// (hour >= 12) buckets. Order within each bucket follows the source
// collection; the feed's order is the display order.
func Partition(slots []AvailabilitySlot) (morning, afternoon []DisplaySlot) {
	for _, s := range slots {
		ds := DisplaySlot{
			Hour:      s.Hour,
			Available: s.Available,
			Label:     FormatHour(s.Hour),
		}
		if s.Hour < 12 {
			morning = append(morning, ds)
		} else {
			afternoon = append(afternoon, ds)
		}
	}
	return morning, afternoon
}
