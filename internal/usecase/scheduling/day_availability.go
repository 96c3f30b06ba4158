package scheduling

import (
	"context"
	"time"

	"github.com/hourbook/hourbook/internal/domain/schedule"
)

// AvailabilityCache is the read-through cache port. A nil cache disables
// caching entirely.
type AvailabilityCache interface {
	GetDay(ctx context.Context, providerID string, year, month, day int) ([]schedule.HourSlot, bool)
	SetDay(ctx context.Context, providerID string, year, month, day int, slots []schedule.HourSlot)
	InvalidateDay(ctx context.Context, providerID string, year, month, day int)
}

type GetDayAvailability struct {
	repo  schedule.Repository
	cache AvailabilityCache
	loc   *time.Location
	now   func() time.Time
}

func NewGetDayAvailability(
	repo schedule.Repository,
	cache AvailabilityCache,
	loc *time.Location,
) *GetDayAvailability {
	return &GetDayAvailability{
		repo:  repo,
		cache: cache,
		loc:   loc,
		now:   time.Now,
	}
}

func (uc *GetDayAvailability) Execute(
	ctx context.Context,
	in schedule.AvailabilityInput,
) ([]schedule.HourSlot, error) {

	if uc.cache != nil {
		if slots, ok := uc.cache.GetDay(ctx, in.ProviderID, in.Year, in.Month, in.Day); ok {
			return slots, nil
		}
	}

	dayStart, dayEnd := schedule.DayBounds(in.Year, in.Month, in.Day, uc.loc)

	appointments, err := uc.repo.ListAppointmentsForDay(
		ctx,
		in.ProviderID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	booked := make(map[int]bool, len(appointments))
	for _, ap := range appointments {
		booked[ap.Date.In(uc.loc).Hour()] = true
	}

	now := uc.now()

	slots := make([]schedule.HourSlot, 0, schedule.DayEndHour-schedule.DayStartHour+1)
	for hour := schedule.DayStartHour; hour <= schedule.DayEndHour; hour++ {
		slotTime := schedule.ComposeDate(in.Year, in.Month, in.Day, hour, uc.loc)

		slots = append(slots, schedule.HourSlot{
			Hour:      hour,
			Available: !booked[hour] && slotTime.After(now),
		})
	}

	if uc.cache != nil {
		uc.cache.SetDay(ctx, in.ProviderID, in.Year, in.Month, in.Day, slots)
	}

	return slots, nil
}
