package get_available_slots

import (
	"fmt"
	"sort"
	"time"

	"github.com/turnosya/booking-service/internal/domain"
	"github.com/turnosya/booking-service/pkg/types"
)

// occupiedInterval занятый интервал [start, end) в минутах от полуночи
type occupiedInterval struct {
	start int
	end   int
}

// collectIntervals собирает занятые интервалы из активных записей дня
func collectIntervals(bookings []*domain.Booking) ([]occupiedInterval, error) {
	intervals := make([]occupiedInterval, 0, len(bookings))

	for _, b := range bookings {
		// Отмененные записи не блокируют слоты
		if !b.IsActive() {
			continue
		}

		start, end, err := b.Interval()
		if err != nil {
			return nil, fmt.Errorf("booking id=%d has invalid interval: %v", b.ID, err)
		}

		intervals = append(intervals, occupiedInterval{start: start, end: end})
	}

	return intervals, nil
}

// filterSlots применяет фильтры доступности к настроенным слотам дня:
//  1. Lead time: в день запроса слот должен начинаться не раньше,
//     чем через domain.LeadTimeMinutes от текущего момента
//  2. Конфликты: интервал [слот, слот+длительность) не пересекается
//     ни с одним активным интервалом записей (полуоткрытые интервалы,
//     касание границ конфликтом не считается)
func filterSlots(
	slots []domain.SlotIndex,
	durationMinutes int,
	requestDate time.Time,
	now time.Time,
	intervals []occupiedInterval,
) ([]types.TimeString, error) {
	sameDay := types.SameDay(requestDate, now)
	leadCutoff := now.Hour()*60 + now.Minute() + domain.LeadTimeMinutes

	available := make([]types.TimeString, 0, len(slots))

	for _, slot := range slots {
		slotStart, err := slot.Minutes()
		if err != nil {
			return nil, err
		}

		if sameDay && slotStart < leadCutoff {
			continue
		}

		slotEnd := slotStart + durationMinutes
		if slotEnd > types.MinutesPerDay {
			// Услуга не помещается до конца дня
			continue
		}

		if conflicts(slotStart, slotEnd, intervals) {
			continue
		}

		t, err := slot.Time()
		if err != nil {
			return nil, err
		}
		available = append(available, t)
	}

	sort.Slice(available, func(i, j int) bool {
		return available[i] < available[j]
	})

	return available, nil
}

func conflicts(slotStart, slotEnd int, intervals []occupiedInterval) bool {
	for _, iv := range intervals {
		if domain.Overlaps(slotStart, slotEnd, iv.start, iv.end) {
			return true
		}
	}
	return false
}
