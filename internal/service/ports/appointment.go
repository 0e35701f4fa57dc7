package ports

import (
	"context"
	"time"

	"github.com/carlosallexandre/gostack-gobarber/internal/domain"
)

type AppointmentRepo interface {
	Create(ctx context.Context, a *domain.Appointment) error
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	Cancel(ctx context.Context, id string, at time.Time) error
	FindActive(ctx context.Context, providerID string, scheduledAt time.Time) (*domain.Appointment, error)
	ListActive(ctx context.Context, requesterID string, page, pageSize int) ([]*domain.Appointment, error)
	ListByProvider(ctx context.Context, providerID string) ([]*domain.Appointment, error)
	ListDueReminders(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
	MarkReminded(ctx context.Context, id string, at time.Time) error
}
