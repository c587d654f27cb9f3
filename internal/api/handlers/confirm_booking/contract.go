package confirm_booking

import (
	"context"

	"github.com/turnosya/booking-service/internal/domain"
)

type BookingsService interface {
	Confirm(ctx context.Context, tenantID, id int64) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
