package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/hourbook/hourbook/internal/domain/schedule"
	"github.com/hourbook/hourbook/internal/httperr"
	"github.com/hourbook/hourbook/internal/models"
)

const pgUniqueViolation = "23505"

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

var _ domain.Repository = (*ScheduleGormRepository)(nil)

// --------------------------------------------------
// Providers
// --------------------------------------------------

func (r *ScheduleGormRepository) ListProviders(
	ctx context.Context,
	excludeUserID string,
) ([]models.User, error) {

	var providers []models.User
	q := r.db.WithContext(ctx).
		Where("role = ?", models.RoleProvider)

	if excludeUserID != "" {
		q = q.Where("id <> ?", excludeUserID)
	}

	if err := q.Order("name ASC").Find(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}

func (r *ScheduleGormRepository) GetUserByID(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *ScheduleGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	providerID string,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var appointments []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"provider_id = ? AND date >= ? AND date < ?",
			providerID,
			start,
			end,
		).
		Order("date ASC").
		Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

// CreateAppointment relies on the unique (provider_id, date) index instead of
// a separate conflict query, so two concurrent bookings of the same slot
// cannot both land.
func (r *ScheduleGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return httperr.ErrBusiness("slot_unavailable")
		}
		return err
	}
	return nil
}
