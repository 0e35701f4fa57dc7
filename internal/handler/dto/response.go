package dto

import (
	"time"

	"github.com/carlosallexandre/gostack-gobarber/internal/domain"
)

type AppointmentResponse struct {
	ID          string  `json:"id"`
	RequesterID string  `json:"requester_id"`
	ProviderID  string  `json:"provider_id"`
	ScheduledAt string  `json:"scheduled_at"`
	CanceledAt  *string `json:"canceled_at"`
	CreatedAt   string  `json:"created_at"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	IsProvider     bool   `json:"is_provider"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToAppointmentResponse(a *domain.Appointment) AppointmentResponse {
	resp := AppointmentResponse{
		ID:          a.ID,
		RequesterID: a.RequesterID,
		ProviderID:  a.ProviderID,
		ScheduledAt: a.ScheduledAt.Format(time.RFC3339),
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}
	if a.CanceledAt != nil {
		canceled := a.CanceledAt.Format(time.RFC3339)
		resp.CanceledAt = &canceled
	}

	return resp
}

func ToAppointmentResponses(appointments []*domain.Appointment) []AppointmentResponse {
	res := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		res = append(res, ToAppointmentResponse(a))
	}

	return res
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		IsProvider:     u.IsProvider,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
