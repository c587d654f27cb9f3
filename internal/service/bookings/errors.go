package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда запись не найдена
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrAlreadyCancelled возвращается при попытке отменить уже отмененную запись
	ErrAlreadyCancelled = errors.New("bookings.service: booking already cancelled")

	// ErrTooLateToCancel возвращается при отмене менее чем за час до начала
	ErrTooLateToCancel = errors.New("bookings.service: too late to cancel")

	// ErrInvalidStatus возвращается при недопустимом переходе статуса
	ErrInvalidStatus = errors.New("bookings.service: invalid status transition")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
