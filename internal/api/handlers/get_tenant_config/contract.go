package get_tenant_config

import (
	"context"

	"github.com/turnosya/booking-service/internal/domain"
)

type ConfigService interface {
	GetConfig(ctx context.Context, tenantID int64) (*domain.TenantConfig, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
