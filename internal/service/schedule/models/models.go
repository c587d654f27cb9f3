package models

// Operation types supported by the schedule editor
const (
	OpToggle    = "toggle"     // Переключить один слот дня
	OpToggleAll = "toggle_all" // Полный день <-> пустой день
	OpCopy      = "copy"       // Скопировать слоты одного дня в другой
	OpClear     = "clear"      // Очистить день (сделать выходным)
)

// Operation одна операция редактирования недельного расписания
// Операции применяются последовательно к текущему состоянию в памяти,
// результат сохраняется целиком одним запросом
type Operation struct {
	Type    string `json:"type"`
	Day     string `json:"day,omitempty"`      // toggle, toggle_all, clear
	Slot    int    `json:"slot,omitempty"`     // toggle
	FromDay string `json:"from_day,omitempty"` // copy
	ToDay   string `json:"to_day,omitempty"`   // copy
}
