package ports

import (
	"context"

	"github.com/carlosallexandre/gostack-gobarber/internal/domain"
)

type AppointmentNotifier interface {
	NotifyAppointmentCreated(ctx context.Context, provider, requester *domain.User, a *domain.Appointment)
	NotifyReminder(ctx context.Context, requester *domain.User, a *domain.Appointment)
}
