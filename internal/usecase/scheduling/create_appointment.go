package scheduling

import (
	"context"
	"time"

	"github.com/hourbook/hourbook/internal/audit"
	"github.com/hourbook/hourbook/internal/domain/schedule"
	"github.com/hourbook/hourbook/internal/httperr"
	"github.com/hourbook/hourbook/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ProviderID string
	UserID     string

	// Hour precision; minutes/seconds are truncated before any check.
	Date time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  schedule.Repository
	cache AvailabilityCache
	audit *audit.Dispatcher
	loc   *time.Location
	now   func() time.Time
}

func NewCreateAppointment(
	repo schedule.Repository,
	cache AvailabilityCache,
	dispatcher *audit.Dispatcher,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		cache: cache,
		audit: dispatcher,
		loc:   loc,
		now:   time.Now,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	provider, err := uc.repo.GetUserByID(ctx, in.ProviderID)
	if err != nil {
		return nil, httperr.ErrBusiness("provider_not_found")
	}
	if provider.Role != models.RoleProvider {
		return nil, httperr.ErrBusiness("provider_not_found")
	}

	date := in.Date.In(uc.loc).Truncate(time.Hour)

	if err := schedule.CanBook(in.ProviderID, in.UserID, date, uc.now()); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ProviderID: in.ProviderID,
		UserID:     in.UserID,
		Date:       date,
	}

	// The repository turns a unique (provider, date) violation into the
	// slot_unavailable business error.
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.InvalidateDay(
			ctx,
			in.ProviderID,
			date.Year(), int(date.Month()), date.Day(),
		)
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &in.UserID,
			Action:   "appointment_created",
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return ap, nil
}
