package booking

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Submission failure alert, fixed wording.
const (
	alertTitle   = "Erro ao criar agendamento"
	alertMessage = "Ocorreu um erro ao tentar criar o agendamento, tente novamente"
)

// SchedulerDeps are the collaborators a Scheduler drives.
type SchedulerDeps struct {
	Feed      AvailabilityFeed
	Submitter AppointmentSubmitter
	Navigator Navigator
	Notifier  Notifier

	// Optional.
	Logger   *zap.Logger
	OnChange func(State)

	// Optional clock override.
	Now func() time.Time
}

// Scheduler is the booking screen's state machine. It owns the selection
// (provider, date, hour) and the two fetched collections, refetches
// availability whenever the provider or date changes, and runs the
// submission flow.
//
// Every availability reload is fenced with a monotonic token: when two
// fetches overlap, only the response of the most recent reload is applied.
// A response arriving after Close never mutates state.
type Scheduler struct {
	deps SchedulerDeps

	mu         sync.Mutex
	state      State
	hourChosen bool
	fetchSeq   uint64
	closed     bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewScheduler mounts the booking flow seeded with the provider the caller
// navigated in with. It immediately fetches the provider list (once per
// lifetime) and the availability for (provider, today).
func NewScheduler(deps SchedulerDeps, providerID string) *Scheduler {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	ctx, cancel := context.WithCancel(context.Background())

	s := &Scheduler{
		deps:   deps,
		ctx:    ctx,
		cancel: cancel,
		state: State{
			ProviderID: providerID,
			Date:       deps.Now(),
			Hour:       0,
		},
	}

	s.mu.Lock()
	s.state.ProvidersState = FetchLoading
	s.mu.Unlock()
	go s.loadProviders()

	s.reloadAvailability()

	return s
}

// Snapshot returns a copy of the current screen state.
func (s *Scheduler) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// SelectProvider switches the selected provider and refetches availability.
func (s *Scheduler) SelectProvider(providerID string) {
	s.mu.Lock()
	if s.closed || providerID == s.state.ProviderID {
		s.mu.Unlock()
		return
	}
	s.state.ProviderID = providerID
	s.mu.Unlock()

	s.notifyChange()
	s.reloadAvailability()
}

// SelectDate switches the selected date and refetches availability. The date
// picker hands over a full timestamp; only the calendar day matters.
func (s *Scheduler) SelectDate(date time.Time) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.state.Date = date
	s.mu.Unlock()

	s.notifyChange()
	s.reloadAvailability()
}

// SelectHour records the tapped hour. Tapping an hour that is not currently
// available is a no-op: unavailable slots are disabled.
func (s *Scheduler) SelectHour(hour int) {
	s.mu.Lock()
	if s.closed || !s.hourAvailableLocked(hour) {
		s.mu.Unlock()
		return
	}
	s.state.Hour = hour
	s.hourChosen = true
	s.mu.Unlock()

	s.notifyChange()
}

func (s *Scheduler) hourAvailableLocked(hour int) bool {
	for _, slot := range s.state.Availability {
		if slot.Hour == hour {
			return slot.Available
		}
	}
	return false
}

// Submit composes the target timestamp from the selected date and hour and
// books it. A second Submit while one is in flight is ignored. On success the
// navigator takes over with the confirmation payload; on failure the user
// stays on the screen with the selection intact and may retry.
func (s *Scheduler) Submit() {
	s.mu.Lock()
	if s.closed || s.state.Submitting || s.state.Submitted || !s.hourChosen {
		s.mu.Unlock()
		return
	}
	s.state.Submitting = true

	d := s.state.Date
	date := time.Date(d.Year(), d.Month(), d.Day(), s.state.Hour, 0, 0, 0, d.Location())
	providerID := s.state.ProviderID
	s.mu.Unlock()

	s.notifyChange()

	go func() {
		ap, err := s.deps.Submitter.CreateAppointment(s.ctx, providerID, date)

		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return
		}
		s.state.Submitting = false

		if err != nil {
			s.mu.Unlock()

			s.deps.Logger.Warn("submission failed", zap.Error(err))
			if s.deps.Notifier != nil {
				s.deps.Notifier.Alert(alertTitle, alertMessage)
			}
			s.notifyChange()
			return
		}

		s.state.Submitted = true
		s.mu.Unlock()

		created := date
		if ap != nil && !ap.Date.IsZero() {
			created = ap.Date
		}

		s.notifyChange()
		if s.deps.Navigator != nil {
			s.deps.Navigator.NavigateTo(ScreenAppointmentCreated, ConfirmationPayload{
				Date: created.UnixMilli(),
			})
		}
	}()
}

// GoBack hands control back to the navigation collaborator.
func (s *Scheduler) GoBack() {
	if s.deps.Navigator != nil {
		s.deps.Navigator.GoBack()
	}
}

// Close unmounts the screen. In-flight responses arriving afterwards are
// discarded; no state mutation ever escapes a closed scheduler.
func (s *Scheduler) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.cancel()
}

// loadProviders fetches the provider list, once per screen lifetime. A
// failure leaves the collection empty and marks it failed; no alert.
func (s *Scheduler) loadProviders() {
	providers, err := s.deps.Feed.ListProviders(s.ctx)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if err != nil {
		s.state.ProvidersState = FetchFailed
		s.mu.Unlock()
		s.deps.Logger.Warn("provider list fetch failed", zap.Error(err))
		s.notifyChange()
		return
	}
	s.state.Providers = providers
	s.state.ProvidersState = FetchLoaded
	s.mu.Unlock()

	s.notifyChange()
}

// reloadAvailability starts a fenced fetch for the current (provider, date)
// pair. Stale data stays visible until the new response lands. A response
// whose fence token was superseded is dropped.
func (s *Scheduler) reloadAvailability() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.fetchSeq++
	seq := s.fetchSeq
	providerID := s.state.ProviderID
	d := s.state.Date
	s.state.AvailabilityState = FetchLoading
	s.mu.Unlock()

	s.notifyChange()

	go func() {
		slots, err := s.deps.Feed.DayAvailability(
			s.ctx,
			providerID,
			d.Year(), int(d.Month()), d.Day(),
		)

		s.mu.Lock()
		if s.closed || seq != s.fetchSeq {
			s.mu.Unlock()
			s.deps.Logger.Debug("dropping stale availability response",
				zap.String("provider_id", providerID),
				zap.Uint64("seq", seq),
			)
			return
		}

		if err != nil {
			s.state.AvailabilityState = FetchFailed
			s.mu.Unlock()
			s.deps.Logger.Warn("availability fetch failed",
				zap.String("provider_id", providerID),
				zap.Error(err),
			)
			s.notifyChange()
			return
		}

		s.state.Availability = slots
		s.state.AvailabilityState = FetchLoaded
		s.mu.Unlock()

		s.notifyChange()
	}()
}

func (s *Scheduler) notifyChange() {
	if s.deps.OnChange == nil {
		return
	}
	s.deps.OnChange(s.Snapshot())
}
