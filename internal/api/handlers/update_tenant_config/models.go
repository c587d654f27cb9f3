package update_tenant_config

import (
	"github.com/turnosya/booking-service/internal/domain"
)

// UpdateTenantConfigRequest HTTP request model
// Конфигурация перезаписывается целиком
type UpdateTenantConfigRequest struct {
	BusinessName        string `json:"businessName"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	BufferMinutes       int    `json:"bufferMinutes"`
	Display24h          bool   `json:"display24h"`
	AdvanceBookingDays  int    `json:"advanceBookingDays"`
}

// TenantConfigResponse HTTP response model
type TenantConfigResponse struct {
	TenantID            int64  `json:"tenantId"`
	BusinessName        string `json:"businessName"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	BufferMinutes       int    `json:"bufferMinutes"`
	Display24h          bool   `json:"display24h"`
	AdvanceBookingDays  int    `json:"advanceBookingDays"`
}

// ToDomain конвертирует HTTP запрос в доменную модель
func (r *UpdateTenantConfigRequest) ToDomain(tenantID int64) *domain.TenantConfig {
	return &domain.TenantConfig{
		TenantID:            tenantID,
		BusinessName:        r.BusinessName,
		SlotDurationMinutes: r.SlotDurationMinutes,
		BufferMinutes:       r.BufferMinutes,
		Display24h:          r.Display24h,
		AdvanceBookingDays:  r.AdvanceBookingDays,
	}
}

// FromDomain конвертирует конфигурацию в HTTP response
func FromDomain(config *domain.TenantConfig) *TenantConfigResponse {
	return &TenantConfigResponse{
		TenantID:            config.TenantID,
		BusinessName:        config.BusinessName,
		SlotDurationMinutes: config.SlotDurationMinutes,
		BufferMinutes:       config.BufferMinutes,
		Display24h:          config.Display24h,
		AdvanceBookingDays:  config.AdvanceBookingDays,
	}
}
