package bookings

import (
	"context"
	"time"

	"github.com/turnosya/booking-service/internal/domain"
)

// Repository интерфейс репозитория записей
type Repository interface {
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Booking, error)
	GetByProfessionalAndDate(ctx context.Context, filter domain.ProfessionalDayFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, tenantID, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, tenantID, id int64, reason string) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
