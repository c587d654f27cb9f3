package get_available_slots

import (
	"context"
	"time"

	"github.com/turnosya/booking-service/internal/domain"
	"github.com/turnosya/booking-service/internal/integrations/directory"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	// GetByProfessionalAndDate получает активные записи профессионала на дату
	GetByProfessionalAndDate(ctx context.Context, filter domain.ProfessionalDayFilter) ([]*domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория недельных расписаний
type ScheduleRepository interface {
	GetByProfessional(ctx context.Context, tenantID, professionalID int64) (*domain.WeeklySchedule, error)
}

// ConfigProvider интерфейс получения конфигурации тенанта (с кешем)
type ConfigProvider interface {
	GetConfig(ctx context.Context, tenantID int64) (*domain.TenantConfig, error)
}

// DirectoryClient интерфейс клиента каталога профессионалов и услуг
type DirectoryClient interface {
	GetProfessional(ctx context.Context, tenantID, professionalID int64) (*directory.Professional, error)
	GetService(ctx context.Context, tenantID, serviceID int64) (*directory.Service, error)
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
