package domain

import "time"

// TenantConfig represents the booking configuration of one tenant
// (one salon/barbershop). One record per tenant, rewritten wholesale
// by the owner.
type TenantConfig struct {
	ID       int64
	TenantID int64

	BusinessName string

	// SlotDurationMinutes длительность услуги по умолчанию (duracion_turnos)
	SlotDurationMinutes int

	// BufferMinutes интервал между записями (intervalo_entre_turnos).
	// Хранится и отдается через API, но в фильтре доступности НЕ применяется:
	// в исходном продукте поле читается и не используется, семантика буфера
	// не подтверждена.
	BufferMinutes int

	// Display24h флаг отображения времени в 24-часовом формате (modo_24h).
	// Влияет только на форматирование, не на расчет слотов.
	Display24h bool

	// AdvanceBookingDays максимальное количество дней вперед, на которое
	// клиент может записаться (max_antelacion_dias)
	AdvanceBookingDays int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultTenantConfig returns the configuration used when a tenant has no
// stored record yet
func DefaultTenantConfig(tenantID int64) *TenantConfig {
	return &TenantConfig{
		TenantID:            tenantID,
		SlotDurationMinutes: DefaultSlotDurationMinutes,
		BufferMinutes:       DefaultBufferMinutes,
		Display24h:          DefaultDisplay24h,
		AdvanceBookingDays:  DefaultAdvanceBookingDays,
	}
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance bookings can be made
func (c *TenantConfig) HasAdvanceBookingLimit() bool {
	return c.AdvanceBookingDays > 0
}
