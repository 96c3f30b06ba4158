package schedule

import (
	"context"
	"time"

	"github.com/hourbook/hourbook/internal/models"
)

type Repository interface {
	// -------- Providers --------
	ListProviders(
		ctx context.Context,
		excludeUserID string,
	) ([]models.User, error)

	GetUserByID(
		ctx context.Context,
		id string,
	) (*models.User, error)

	// -------- Availability --------
	ListAppointmentsForDay(
		ctx context.Context,
		providerID string,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Booking --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
