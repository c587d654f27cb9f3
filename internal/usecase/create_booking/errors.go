package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается при некорректной дате или дате в прошлом
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrInvalidTimeSlot возвращается при времени, не выровненном на 30-минутную границу
	ErrInvalidTimeSlot = errors.New("invalid time slot")

	// ErrSlotTaken возвращается, когда слот занят другой активной записью
	ErrSlotTaken = errors.New("slot already taken")

	// ErrDayOff возвращается, когда профессионал не работает в этот день
	ErrDayOff = errors.New("professional does not work on this day")

	// ErrDateTooFarInFuture возвращается, когда дата превышает max_antelacion_dias
	ErrDateTooFarInFuture = errors.New("date exceeds maximum advance booking days")

	// ErrLeadTimeViolation возвращается, когда запись на сегодня создается
	// менее чем за 2 часа до начала
	ErrLeadTimeViolation = errors.New("booking requires at least 2 hours lead time")

	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrProfessionalInactive возвращается, когда профессионал деактивирован
	ErrProfessionalInactive = errors.New("professional is inactive")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
