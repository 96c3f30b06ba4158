package booking

import "time"

// Provider is one bookable service provider as the feed reports it. The
// collection is replaced wholesale on every fetch, never merged.
type Provider struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url"`
}

// AvailabilitySlot is one hour of a provider's day. No ordering guarantee is
// assumed from the feed.
type AvailabilitySlot struct {
	Hour      int  `json:"hour"`
	Available bool `json:"available"`
}

// Appointment is the created booking as the backend returns it.
type Appointment struct {
	ID         string    `json:"id"`
	ProviderID string    `json:"provider_id"`
	UserID     string    `json:"user_id"`
	Date       time.Time `json:"date"`
}
