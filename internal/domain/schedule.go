package domain

import (
	"fmt"
	"sort"
	"time"
)

// Default working block for professionals without a configured schedule:
// slots 18..39 cover start times 09:00 through 19:30.
const (
	defaultFirstSlot = 18
	defaultLastSlot  = 39
)

// WeeklySchedule is the recurring weekly availability of one professional:
// a mapping from canonical weekday name to the ascending set of slot indices
// at which the professional is bookable. A missing or empty day means the
// professional does not work that day. The whole seven-day map is persisted
// wholesale on save, one record per professional.
type WeeklySchedule struct {
	ProfessionalID int64
	Days           map[string][]SlotIndex
	UpdatedAt      time.Time
}

// NewWeeklySchedule создает пустое расписание (профессионал нигде не доступен)
func NewWeeklySchedule(professionalID int64) *WeeklySchedule {
	return &WeeklySchedule{
		ProfessionalID: professionalID,
		Days:           make(map[string][]SlotIndex),
	}
}

// DefaultWeeklySchedule возвращает расписание по умолчанию для профессионала
// без сохраненной конфигурации: рабочий блок 09:00-19:30 каждый день, кроме
// воскресенья. Применяется при чтении и никогда не сохраняется неявно.
func DefaultWeeklySchedule(professionalID int64) *WeeklySchedule {
	s := NewWeeklySchedule(professionalID)
	block := make([]SlotIndex, 0, defaultLastSlot-defaultFirstSlot+1)
	for i := defaultFirstSlot; i <= defaultLastSlot; i++ {
		block = append(block, SlotIndex(i))
	}
	for _, day := range Weekdays {
		if day == Weekdays[0] { // Domingo
			continue
		}
		s.Days[day] = append([]SlotIndex(nil), block...)
	}
	return s
}

// Validate проверяет инварианты расписания: только канонические дни недели,
// индексы в диапазоне 0..47, множества отсортированы по возрастанию без дублей
func (s *WeeklySchedule) Validate() error {
	for day, slots := range s.Days {
		if !IsWeekdayName(day) {
			return fmt.Errorf("unknown weekday %q", day)
		}
		for i, slot := range slots {
			if !slot.IsValid() {
				return fmt.Errorf("day %s: slot index out of range: %d", day, slot)
			}
			if i > 0 && slots[i-1] >= slot {
				return fmt.Errorf("day %s: slot indices must be strictly ascending", day)
			}
		}
	}
	return nil
}

// SlotsFor возвращает множество слотов на день (nil, если день выходной)
func (s *WeeklySchedule) SlotsFor(day string) []SlotIndex {
	return s.Days[day]
}

// HasSlot проверяет членство индекса в множестве дня
func (s *WeeklySchedule) HasSlot(day string, index SlotIndex) bool {
	for _, slot := range s.Days[day] {
		if slot == index {
			return true
		}
	}
	return false
}

// ToggleSlot переключает членство индекса в множестве дня, сохраняя
// сортировку по возрастанию. Операция обратна сама себе.
func (s *WeeklySchedule) ToggleSlot(day string, index SlotIndex) error {
	if !IsWeekdayName(day) {
		return fmt.Errorf("unknown weekday %q", day)
	}
	if !index.IsValid() {
		return fmt.Errorf("slot index out of range: %d", index)
	}

	slots := s.Days[day]
	for i, slot := range slots {
		if slot == index {
			s.Days[day] = append(slots[:i], slots[i+1:]...)
			return nil
		}
	}

	slots = append(slots, index)
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
	s.Days[day] = slots
	return nil
}

// ToggleAllSlots переключает день между "полностью занят" и "пусто":
// если множество уже содержит все 48 индексов - очищает его, иначе
// заполняет всеми 48. Это не заполнение пропусков: частичное множество
// всегда становится полным.
func (s *WeeklySchedule) ToggleAllSlots(day string) error {
	if !IsWeekdayName(day) {
		return fmt.Errorf("unknown weekday %q", day)
	}

	if len(s.Days[day]) == SlotsPerDay {
		s.Days[day] = []SlotIndex{}
		return nil
	}

	full := make([]SlotIndex, SlotsPerDay)
	for i := range full {
		full[i] = SlotIndex(i)
	}
	s.Days[day] = full
	return nil
}

// CopyDay перезаписывает множество дня toDay копией ТЕКУЩЕГО (возможно,
// еще не сохраненного) множества дня fromDay
func (s *WeeklySchedule) CopyDay(fromDay, toDay string) error {
	if !IsWeekdayName(fromDay) {
		return fmt.Errorf("unknown weekday %q", fromDay)
	}
	if !IsWeekdayName(toDay) {
		return fmt.Errorf("unknown weekday %q", toDay)
	}
	s.Days[toDay] = append([]SlotIndex(nil), s.Days[fromDay]...)
	return nil
}

// ClearDay очищает множество слотов дня (день становится выходным)
func (s *WeeklySchedule) ClearDay(day string) error {
	if !IsWeekdayName(day) {
		return fmt.Errorf("unknown weekday %q", day)
	}
	s.Days[day] = []SlotIndex{}
	return nil
}

// Clone возвращает глубокую копию расписания
func (s *WeeklySchedule) Clone() *WeeklySchedule {
	clone := &WeeklySchedule{
		ProfessionalID: s.ProfessionalID,
		Days:           make(map[string][]SlotIndex, len(s.Days)),
		UpdatedAt:      s.UpdatedAt,
	}
	for day, slots := range s.Days {
		clone.Days[day] = append([]SlotIndex(nil), slots...)
	}
	return clone
}
