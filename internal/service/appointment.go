package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/carlosallexandre/gostack-gobarber/internal/domain"
	"github.com/carlosallexandre/gostack-gobarber/internal/service/ports"
	"github.com/carlosallexandre/gostack-gobarber/internal/timeslot"
)

const (
	cancelLeadTime = 2 * time.Hour
	reminderWindow = time.Hour
	pageSize       = 20
)

type AppointmentService struct {
	appointmentRepo ports.AppointmentRepo
	userRepo        ports.UserRepo
	notifier        ports.AppointmentNotifier
	dispatcher      ports.CancellationDispatcher
	logger          logger.Logger
}

func NewAppointmentService(
	appointmentRepo ports.AppointmentRepo,
	userRepo ports.UserRepo,
	notifier ports.AppointmentNotifier,
	dispatcher ports.CancellationDispatcher,
	logger logger.Logger,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		notifier:        notifier,
		dispatcher:      dispatcher,
		logger:          logger,
	}
}

// Book grants the (provider, hour) slot to the requester. Checks run
// in order and stop on the first violation; nothing is persisted
// before all of them pass.
func (s *AppointmentService) Book(ctx context.Context, requesterID, providerID string, startsAt time.Time) (*domain.Appointment, error) {
	provider, err := s.userRepo.GetByID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("check provider: %w", err)
	}
	if !provider.IsProvider {
		return nil, domain.ErrNotAProvider
	}

	if requesterID == providerID {
		return nil, domain.ErrSelfBooking
	}

	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("check requester: %w", err)
	}

	scheduledAt := timeslot.Normalize(startsAt)
	if timeslot.IsPast(scheduledAt, time.Now().UTC()) {
		return nil, domain.ErrPastDate
	}

	if _, err = s.appointmentRepo.FindActive(ctx, providerID, scheduledAt); err == nil {
		return nil, domain.ErrSlotTaken
	} else if !errors.Is(err, domain.ErrAppointmentNotFound) {
		return nil, fmt.Errorf("check slot: %w", err)
	}

	appointment := &domain.Appointment{
		ID:          uuid.New().String(),
		RequesterID: requesterID,
		ProviderID:  providerID,
		ScheduledAt: scheduledAt,
		CreatedAt:   time.Now().UTC(),
	}
	// the partial unique index in the store closes the race between
	// FindActive and Create: a concurrent loser also gets ErrSlotTaken
	if err = s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	s.logger.Info("appointment booked",
		logger.String("appointment_id", appointment.ID),
		logger.String("provider_id", providerID),
		logger.String("requester_id", requesterID),
		logger.String("scheduled_at", scheduledAt.Format(time.RFC3339)),
	)

	go s.notifier.NotifyAppointmentCreated(context.WithoutCancel(ctx), provider, requester, appointment)

	return appointment, nil
}

// Cancel marks the appointment canceled and enqueues the cancellation
// mail job. The cancellation is done once the record is persisted;
// dispatch happens in the background and never fails the call.
func (s *AppointmentService) Cancel(ctx context.Context, requesterID, appointmentID string) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}

	if !appointment.Active() {
		return nil, domain.ErrAlreadyCancelled
	}

	if appointment.RequesterID != requesterID {
		return nil, domain.ErrNotOwner
	}

	now := time.Now().UTC()
	if timeslot.WithinLeadTime(appointment.ScheduledAt, now, cancelLeadTime) {
		return nil, domain.ErrTooLateToCancel
	}

	if err = s.appointmentRepo.Cancel(ctx, appointment.ID, now); err != nil {
		return nil, fmt.Errorf("cancel appointment: %w", err)
	}
	appointment.CanceledAt = &now

	s.logger.Info("appointment canceled",
		logger.String("appointment_id", appointment.ID),
		logger.String("provider_id", appointment.ProviderID),
		logger.String("requester_id", requesterID),
	)

	go s.dispatchCancellation(context.WithoutCancel(ctx), appointment)

	return appointment, nil
}

func (s *AppointmentService) dispatchCancellation(ctx context.Context, a *domain.Appointment) {
	requester, err := s.userRepo.GetByID(ctx, a.RequesterID)
	if err != nil {
		s.logger.Error("failed to get requester for cancellation job",
			logger.String("user_id", a.RequesterID),
			logger.String("error", err.Error()),
		)
		return
	}

	provider, err := s.userRepo.GetByID(ctx, a.ProviderID)
	if err != nil {
		s.logger.Error("failed to get provider for cancellation job",
			logger.String("user_id", a.ProviderID),
			logger.String("error", err.Error()),
		)
		return
	}

	job := &domain.CancellationJob{
		Appointment:    *a,
		RequesterName:  requester.Name,
		RequesterEmail: requester.Email,
		ProviderName:   provider.Name,
		ProviderEmail:  provider.Email,
	}

	if err := s.dispatcher.EnqueueCancellation(ctx, job); err != nil {
		s.logger.Error("failed to enqueue cancellation job",
			logger.String("appointment_id", a.ID),
			logger.String("error", err.Error()),
		)
	}
}

// ListByRequester returns the requester's active appointments ordered
// by scheduled time, 20 per page.
func (s *AppointmentService) ListByRequester(ctx context.Context, requesterID string, page int) ([]*domain.Appointment, error) {
	if page < 1 {
		page = 1
	}
	return s.appointmentRepo.ListActive(ctx, requesterID, page, pageSize)
}

// ProviderSchedule returns all active appointments of a provider.
func (s *AppointmentService) ProviderSchedule(ctx context.Context, providerID string) ([]*domain.Appointment, error) {
	provider, err := s.userRepo.GetByID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("check provider: %w", err)
	}
	if !provider.IsProvider {
		return nil, domain.ErrNotAProvider
	}

	return s.appointmentRepo.ListByProvider(ctx, providerID)
}

// SendReminders notifies requesters about appointments starting within
// the next hour. Each appointment is reminded at most once.
func (s *AppointmentService) SendReminders(ctx context.Context) ([]*domain.Appointment, error) {
	now := time.Now().UTC()

	due, err := s.appointmentRepo.ListDueReminders(ctx, now, now.Add(reminderWindow))
	if err != nil {
		return nil, fmt.Errorf("list due reminders: %w", err)
	}

	reminded := make([]*domain.Appointment, 0, len(due))
	for _, a := range due {
		requester, err := s.userRepo.GetByID(ctx, a.RequesterID)
		if err != nil {
			s.logger.Error("failed to get requester for reminder",
				logger.String("user_id", a.RequesterID),
				logger.String("error", err.Error()),
			)
			continue
		}

		// mark first so a notifier failure cannot cause a duplicate
		if err = s.appointmentRepo.MarkReminded(ctx, a.ID, now); err != nil {
			s.logger.Error("failed to mark appointment reminded",
				logger.String("appointment_id", a.ID),
				logger.String("error", err.Error()),
			)
			continue
		}

		s.notifier.NotifyReminder(ctx, requester, a)
		reminded = append(reminded, a)
	}

	return reminded, nil
}
