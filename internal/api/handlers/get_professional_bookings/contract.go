package get_professional_bookings

import (
	"context"
	"time"

	"github.com/turnosya/booking-service/internal/domain"
)

type BookingsService interface {
	GetProfessionalBookings(ctx context.Context, tenantID, professionalID int64, date time.Time, includeInactive bool) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
