package types

import (
	"fmt"
	"time"
)

// DateLayout формат календарной даты
const DateLayout = "2006-01-02"

// ParseLocalDate парсит дату "YYYY-MM-DD" как локальную календарную дату.
// Строка разбирается на компоненты год/месяц/день и собирается через time.Date
// с локальной таймзоной - НЕ через таймзонно-зависимый парсер. Это исключает
// сдвиг на день при UTC-интерпретации.
func ParseLocalDate(s string) (time.Time, error) {
	var year, month, day int
	if _, err := fmt.Sscanf(s, "%4d-%2d-%2d", &year, &month, &day); err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %v", s, err)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}

// FormatLocalDate форматирует дату как "YYYY-MM-DD" из локальных компонентов
// года/месяца/дня, без ISO/UTC-сериализации
func FormatLocalDate(t time.Time) string {
	year, month, day := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// SameDay проверяет, что две даты относятся к одному и тому же календарному дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DiffDays возвращает количество календарных дней между сегодня и date
// (обе даты приводятся к локальной полуночи). Положительное значение -
// дата в будущем, отрицательное - в прошлом.
func DiffDays(date, now time.Time) int {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// Округление до ближайшего дня сглаживает часовые сдвиги перехода на летнее время
	return int(dateOnly.Sub(nowOnly).Round(24*time.Hour) / (24 * time.Hour))
}

// NextSlotBoundary округляет минуты с начала суток вверх до ближайшей
// 30-минутной границы. Используется для отображения "ближайшего доступного"
// времени; сам фильтр слотов сравнивает неокругленные значения.
func NextSlotBoundary(minutes int) int {
	const step = 30
	if minutes%step == 0 {
		return minutes
	}
	return (minutes/step + 1) * step
}
