package domain

import (
	"time"

	"github.com/turnosya/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking.
// The values are persisted as-is, matching the shared tenant data store.
type BookingStatus string

const (
	StatusReserved  BookingStatus = "Reservado"
	StatusConfirmed BookingStatus = "Confirmado"
	StatusCancelled BookingStatus = "Cancelado"
)

// IsValid returns true if the status is one of the known values
func (s BookingStatus) IsValid() bool {
	return s == StatusReserved || s == StatusConfirmed || s == StatusCancelled
}

// Booking represents a client reservation with a professional
type Booking struct {
	ID               int64
	TenantID         int64
	ClientName       string
	ClientWhatsApp   string
	ServiceName      string
	DurationMinutes  int
	ProfessionalID   int64
	ProfessionalName string
	BookingDate      time.Time
	StartTime        types.TimeString
	EndTime          types.TimeString
	Status           BookingStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its time interval.
// Cancellation is a state transition, never a deletion, so cancelled rows
// stay in the store but stop blocking slots.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking is in a cancellable state
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusReserved || b.Status == StatusConfirmed
}

// Interval returns the booking's occupied interval in minutes since midnight
func (b *Booking) Interval() (start, end int, err error) {
	start, err = b.StartTime.ToMinutes()
	if err != nil {
		return 0, 0, err
	}
	end, err = b.EndTime.ToMinutes()
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) conflict. Arguments are minutes since midnight.
// Touching endpoints do NOT conflict: a booking ending at 10:00 never
// blocks a slot starting at 10:00.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// ProfessionalDayFilter фильтр записей профессионала на конкретную дату
type ProfessionalDayFilter struct {
	TenantID        int64
	ProfessionalID  int64
	Date            time.Time
	IncludeInactive bool // Включать ли отмененные записи
}
