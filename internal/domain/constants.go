package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 30
	DefaultBufferMinutes       = 0
	DefaultAdvanceBookingDays  = 30
	DefaultDisplay24h          = false
)

// Scheduling policy constants
const (
	// LeadTimeMinutes минимальное время до начала слота при бронировании на сегодня
	LeadTimeMinutes = 120

	// CancelCutoffMinutes минимальное время до начала записи, пока клиент еще может её отменить
	CancelCutoffMinutes = 60
)

// Business validation constants
const (
	MinServiceDurationMinutes = 15
	ServiceDurationStep       = 15
	MaxServiceDurationMinutes = 480
	MinAdvanceBookingDays     = 1
	MaxAdvanceBookingDays     = 365
	MaxClientNameLength       = 100
	MaxBusinessNameLength     = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных записей
// Используется при фильтрации занятых интервалов
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов активных записей
var ActiveStatuses = []BookingStatus{
	StatusReserved,
	StatusConfirmed,
}
