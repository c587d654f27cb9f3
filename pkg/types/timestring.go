package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimeString represents a time of day in zero-padded 24-hour "HH:MM" format.
// The zero-padded representation compares lexicographically in chronological
// order, so TimeString values can be sorted as plain strings.
type TimeString string

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

// NewTimeString создает TimeString из time.Time (часы и минуты локального времени)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// MinutesToTime конвертирует минуты с начала суток в TimeString
// Значения вне диапазона [0, 1440) являются ошибкой: время окончания
// бронирования не может выходить за пределы суток
func MinutesToTime(m int) (TimeString, error) {
	if m < 0 || m >= MinutesPerDay {
		return "", fmt.Errorf("minutes out of day range: %d", m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение соответствует формату "HH:MM"
func (t TimeString) Validate() error {
	s := string(t)
	if len(s) != 5 || s[2] != ':' {
		return fmt.Errorf("invalid time format %q, expected HH:MM", s)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return fmt.Errorf("invalid time format %q, expected HH:MM", s)
		}
	}
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')
	if hours > 23 {
		return fmt.Errorf("invalid hours in %q", s)
	}
	if minutes > 59 {
		return fmt.Errorf("invalid minutes in %q", s)
	}
	return nil
}

// ToMinutes конвертирует время в минуты с начала суток
func (t TimeString) ToMinutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	s := string(t)
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')
	return hours*60 + minutes, nil
}

// AddMinutes возвращает время, сдвинутое на m минут вперед
// Выход за пределы суток является ошибкой
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.ToMinutes()
	if err != nil {
		return "", err
	}
	return MinutesToTime(total + m)
}

// IsBefore возвращает true, если t строго раньше other
// Для zero-padded формата лексикографическое сравнение эквивалентно хронологическому
func (t TimeString) IsBefore(other TimeString) bool {
	return t < other
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t > other
}

// Format12Hour возвращает время в 12-часовом формате "H:MM AM|PM"
// Полночь отображается как 12 AM, полдень - как 12 PM
func (t TimeString) Format12Hour() (string, error) {
	total, err := t.ToMinutes()
	if err != nil {
		return "", err
	}
	hours := total / 60
	minutes := total % 60

	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	display := hours % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minutes, period), nil
}

// Scan реализует sql.Scanner для чтения из БД
func (t *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		*t = NewTimeString(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeString", value)
	}
	// Колонки времени в БД могут содержать секунды ("10:00:00") - обрезаем
	if len(*t) > 5 {
		*t = (*t)[:5]
	}
	return nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}
