package get_schedule

import (
	"time"

	"github.com/turnosya/booking-service/internal/domain"
)

// ScheduleResponse HTTP response model
// Карта days содержит все семь канонических дней; выходной день отдается
// пустым массивом, а не отсутствием ключа
type ScheduleResponse struct {
	ProfessionalID int64            `json:"professionalId"`
	Days           map[string][]int `json:"days"`
	IsDefault      bool             `json:"isDefault"`
	UpdatedAt      *time.Time       `json:"updatedAt,omitempty"`
}

// FromDomain конвертирует расписание в HTTP response
func FromDomain(schedule *domain.WeeklySchedule, isDefault bool) *ScheduleResponse {
	days := make(map[string][]int, len(domain.Weekdays))
	for _, day := range domain.Weekdays {
		slots := schedule.SlotsFor(day)
		indices := make([]int, len(slots))
		for i, slot := range slots {
			indices[i] = int(slot)
		}
		days[day] = indices
	}

	resp := &ScheduleResponse{
		ProfessionalID: schedule.ProfessionalID,
		Days:           days,
		IsDefault:      isDefault,
	}

	if !schedule.UpdatedAt.IsZero() {
		resp.UpdatedAt = &schedule.UpdatedAt
	}

	return resp
}
