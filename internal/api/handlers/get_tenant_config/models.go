package get_tenant_config

import (
	"github.com/turnosya/booking-service/internal/domain"
)

// TenantConfigResponse HTTP response model
type TenantConfigResponse struct {
	TenantID            int64  `json:"tenantId"`
	BusinessName        string `json:"businessName"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	BufferMinutes       int    `json:"bufferMinutes"`
	Display24h          bool   `json:"display24h"`
	AdvanceBookingDays  int    `json:"advanceBookingDays"`
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
