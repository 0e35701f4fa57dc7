package domain

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

var (
	ErrNotAProvider     = errors.New("target user is not a provider")
	ErrSelfBooking      = errors.New("cannot book an appointment with yourself")
	ErrPastDate         = errors.New("cannot book an appointment on a past date")
	ErrSlotTaken        = errors.New("this slot is already booked")
	ErrNotOwner         = errors.New("only the appointment owner can cancel it")
	ErrTooLateToCancel  = errors.New("appointments can only be canceled at least 2 hours in advance")
	ErrAlreadyCancelled = errors.New("appointment is already canceled")
)

var (
	ErrEmailTaken = errors.New("email is already registered")
)

var (
	ErrValidation = errors.New("validation error")
)
