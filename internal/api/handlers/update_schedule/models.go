package update_schedule

import (
	"github.com/turnosya/booking-service/internal/domain"
)

// UpdateScheduleRequest HTTP request model
// Расписание перезаписывается целиком: отсутствующий в карте день становится
// выходным
type UpdateScheduleRequest struct {
	Days map[string][]int `json:"days"`
}

// ToDomain конвертирует HTTP запрос в доменную модель
func (r *UpdateScheduleRequest) ToDomain(professionalID int64) *domain.WeeklySchedule {
	schedule := domain.NewWeeklySchedule(professionalID)
	for day, indices := range r.Days {
		slots := make([]domain.SlotIndex, len(indices))
		for i, index := range indices {
			slots[i] = domain.SlotIndex(index)
		}
		schedule.Days[day] = slots
	}
	return schedule
}
