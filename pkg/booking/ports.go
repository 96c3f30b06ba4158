package booking

import (
	"context"
	"time"
)

// AvailabilityFeed reads the provider list and per-day availability. Both are
// fresh requests on every call; there is no caching at this boundary.
type AvailabilityFeed interface {
	ListProviders(ctx context.Context) ([]Provider, error)
	DayAvailability(ctx context.Context, providerID string, year, month, day int) ([]AvailabilitySlot, error)
}

// AppointmentSubmitter creates the appointment. Not idempotent: a retry after
// a timeout can double-book, there is no idempotency key on the wire.
type AppointmentSubmitter interface {
	CreateAppointment(ctx context.Context, providerID string, date time.Time) (*Appointment, error)
}

// Navigator is the external navigation collaborator.
type Navigator interface {
	GoBack()
	NavigateTo(screenID string, payload any)
}

// Notifier surfaces user-facing alerts. Only submission failures reach it.
type Notifier interface {
	Alert(title, message string)
}

// Session exposes the authenticated user's avatar for the header fallback.
type Session interface {
	AvatarURL() string
}

// AvatarPlaceholder is shown whenever a provider or the session has no avatar.
const AvatarPlaceholder = "https://attachments-hourbook.s3.us-east-2.amazonaws.com/avatar.png"

// ScreenAppointmentCreated is the confirmation screen the navigator receives
// after a successful submission.
const ScreenAppointmentCreated = "AppointmentCreated"

// ConfirmationPayload travels with the confirmation navigation. Date is the
// created appointment's epoch timestamp in milliseconds.
type ConfirmationPayload struct {
	Date int64 `json:"date"`
}
