package update_tenant_config

import (
	"context"

	"github.com/turnosya/booking-service/internal/domain"
)

type ConfigService interface {
	Update(ctx context.Context, config *domain.TenantConfig) (*domain.TenantConfig, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
