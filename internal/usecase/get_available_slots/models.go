package get_available_slots

import (
	"time"

	"github.com/turnosya/booking-service/pkg/types"
)

// Request запрос на получение доступных слотов
type Request struct {
	TenantID       int64     // ID тенанта
	ProfessionalID int64     // ID профессионала
	ServiceID      int64     // ID услуги
	Date           time.Time // Дата в локальном календаре
}

// Response ответ со списком доступных слотов
type Response struct {
	Date            string             `json:"date"`
	ProfessionalID  int64              `json:"professional_id"`
	ServiceID       int64              `json:"service_id"`
	DurationMinutes int                `json:"duration_minutes"`
	Slots           []types.TimeString `json:"slots"`
}
