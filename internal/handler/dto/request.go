package dto

type BookAppointmentRequest struct {
	UserID   string `json:"user_id" binding:"required,uuid"`
	StartsAt string `json:"starts_at" binding:"required"`
}

type CancelAppointmentRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type CreateUserRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	IsProvider     bool   `json:"is_provider"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
