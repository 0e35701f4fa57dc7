package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/carlosallexandre/gostack-gobarber/internal/domain"
)

type reminderSender interface {
	SendReminders(ctx context.Context) ([]*domain.Appointment, error)
}

type Scheduler struct {
	appointmentService reminderSender
	interval           time.Duration
	logger             logger.Logger
}

func New(
	appointmentService reminderSender,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		appointmentService: appointmentService,
		interval:           interval,
		logger:             logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	reminded, err := s.appointmentService.SendReminders(ctx)
	if err != nil {
		s.logger.Error("failed to send appointment reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, a := range reminded {
		s.logger.Info("reminder sent",
			logger.String("appointment_id", a.ID),
			logger.String("requester_id", a.RequesterID),
			logger.String("provider_id", a.ProviderID),
		)
	}
}
