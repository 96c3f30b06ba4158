package booking

import "time"

// FetchState is the tri-state of a fetched collection, so "fetch failed" is
// distinguishable from "loaded empty". Stale data is kept on screen while a
// reload is in flight.
type FetchState int

const (
	FetchIdle FetchState = iota
	FetchLoading
	FetchLoaded
	FetchFailed
)

func (s FetchState) String() string {
	switch s {
	case FetchIdle:
		return "idle"
	case FetchLoading:
		return "loading"
	case FetchLoaded:
		return "loaded"
	case FetchFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of the booking screen. Exactly one provider
// and one date are always selected; Hour holds a concrete value even before
// the user taps one.
type State struct {
	ProviderID string
	Date       time.Time
	Hour       int

	Providers      []Provider
	ProvidersState FetchState

	Availability      []AvailabilitySlot
	AvailabilityState FetchState

	Submitting bool
	Submitted  bool
}

// Morning returns the morning display bucket derived from the snapshot.
func (s State) Morning() []DisplaySlot {
	m, _ := Partition(s.Availability)
	return m
}

// Afternoon returns the afternoon display bucket derived from the snapshot.
func (s State) Afternoon() []DisplaySlot {
	_, a := Partition(s.Availability)
	return a
}

func (s State) clone() State {
	out := s
	out.Providers = append([]Provider(nil), s.Providers...)
	out.Availability = append([]AvailabilitySlot(nil), s.Availability...)
	return out
}
