package domain

import "time"

// Appointment is a one-hour slot booked by a requester with a provider.
// ScheduledAt is always normalized to the start of an hour. A nil
// CanceledAt means the appointment is active; once set it never resets.
type Appointment struct {
	ID          string     `json:"id"`
	RequesterID string     `json:"requester_id"`
	ProviderID  string     `json:"provider_id"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	CanceledAt  *time.Time `json:"canceled_at"`
	RemindedAt  *time.Time `json:"reminded_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (a *Appointment) Active() bool {
	return a.CanceledAt == nil
}

// CancellationJob is the payload handed to the cancellation queue.
// Display data is denormalized so the worker does not go back to the
// database.
type CancellationJob struct {
	Appointment    Appointment `json:"appointment"`
	RequesterName  string      `json:"requester_name"`
	RequesterEmail string      `json:"requester_email"`
	ProviderName   string      `json:"provider_name"`
	ProviderEmail  string      `json:"provider_email"`
}
