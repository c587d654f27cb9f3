package tenantconfig

import (
	"context"

	"github.com/turnosya/booking-service/internal/domain"
)

// Repository интерфейс репозитория конфигурации тенанта
type Repository interface {
	GetByTenant(ctx context.Context, tenantID int64) (*domain.TenantConfig, error)
	Save(ctx context.Context, config *domain.TenantConfig) (*domain.TenantConfig, error)
}

// CacheProvider интерфейс кеша чтения с уведомлениями об изменениях
type CacheProvider interface {
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, key string) error
	Publish(ctx context.Context, channel, message string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
