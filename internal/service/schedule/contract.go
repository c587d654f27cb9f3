package schedule

import (
	"context"

	"github.com/turnosya/booking-service/internal/domain"
)

// Repository интерфейс репозитория недельных расписаний
type Repository interface {
	GetByProfessional(ctx context.Context, tenantID, professionalID int64) (*domain.WeeklySchedule, error)
	Save(ctx context.Context, tenantID int64, schedule *domain.WeeklySchedule) error
}

// Publisher интерфейс публикации уведомлений об изменениях
type Publisher interface {
	Publish(ctx context.Context, channel, message string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
