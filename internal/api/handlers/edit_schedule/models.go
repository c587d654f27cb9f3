package edit_schedule

import (
	"time"

	"github.com/turnosya/booking-service/internal/domain"
	"github.com/turnosya/booking-service/internal/service/schedule/models"
)

// EditScheduleRequest HTTP request model
type EditScheduleRequest struct {
	Operations []models.Operation `json:"operations"`
}

// ScheduleResponse HTTP response model с результирующим расписанием
type ScheduleResponse struct {
	ProfessionalID int64            `json:"professionalId"`
	Days           map[string][]int `json:"days"`
	UpdatedAt      *time.Time       `json:"updatedAt,omitempty"`
}

// FromDomain конвертирует расписание в HTTP response
func FromDomain(schedule *domain.WeeklySchedule) *ScheduleResponse {
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
	}

	if !schedule.UpdatedAt.IsZero() {
		resp.UpdatedAt = &schedule.UpdatedAt
	}

	return resp
}
