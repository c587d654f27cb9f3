package create_booking

import (
	"context"
	"time"

	"github.com/turnosya/booking-service/internal/domain"
	"github.com/turnosya/booking-service/internal/integrations/directory"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetByProfessionalAndDate внутри транзакции блокирует выбранные строки (FOR UPDATE)
	GetByProfessionalAndDate(ctx context.Context, filter domain.ProfessionalDayFilter) ([]*domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория недельных расписаний
type ScheduleRepository interface {
	GetByProfessional(ctx context.Context, tenantID, professionalID int64) (*domain.WeeklySchedule, error)
}

// ConfigProvider интерфейс получения конфигурации тенанта
type ConfigProvider interface {
	GetConfig(ctx context.Context, tenantID int64) (*domain.TenantConfig, error)
}

// DirectoryClient интерфейс клиента каталога профессионалов и услуг
type DirectoryClient interface {
	GetProfessional(ctx context.Context, tenantID, professionalID int64) (*directory.Professional, error)
	GetService(ctx context.Context, tenantID, serviceID int64) (*directory.Service, error)
}

// Notifier интерфейс отправки уведомлений клиенту
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, booking *domain.Booking, businessName string, display24h bool)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
