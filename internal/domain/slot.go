package domain

import (
	"fmt"
	"time"

	"github.com/turnosya/booking-service/pkg/types"
)

// Slot index constants
const (
	SlotsPerDay     = 48
	SlotStepMinutes = 30
)

// SlotIndex identifies a 30-minute boundary within a day: index 0 is 00:00,
// index 1 is 00:30, ..., index 47 is 23:30.
type SlotIndex int

// IsValid returns true if the index is within 0..47
func (i SlotIndex) IsValid() bool {
	return i >= 0 && i < SlotsPerDay
}

// Time returns the "HH:MM" start time for the slot index
func (i SlotIndex) Time() (types.TimeString, error) {
	if !i.IsValid() {
		return "", fmt.Errorf("slot index out of range: %d", i)
	}
	return types.MinutesToTime(int(i) * SlotStepMinutes)
}

// Minutes returns the slot start as minutes since midnight
func (i SlotIndex) Minutes() (int, error) {
	if !i.IsValid() {
		return 0, fmt.Errorf("slot index out of range: %d", i)
	}
	return int(i) * SlotStepMinutes, nil
}

// TimeToSlotIndex converts a 30-minute-aligned "HH:MM" time into its slot
// index. Non-aligned times are an error: the weekly schedule encoding only
// addresses 30-minute boundaries.
func TimeToSlotIndex(t types.TimeString) (SlotIndex, error) {
	minutes, err := t.ToMinutes()
	if err != nil {
		return 0, err
	}
	if minutes%SlotStepMinutes != 0 {
		return 0, fmt.Errorf("time %s is not aligned to a %d-minute boundary", t, SlotStepMinutes)
	}
	return SlotIndex(minutes / SlotStepMinutes), nil
}

// Weekdays canonical weekday identifiers, Sunday-indexed to match
// time.Weekday. These exact names are the keys of the persisted weekly
// schedule map.
var Weekdays = [7]string{
	"Domingo",
	"Lunes",
	"Martes",
	"Miercoles",
	"Jueves",
	"Viernes",
	"Sabado",
}

// WeekdayName returns the canonical weekday identifier for a local date
func WeekdayName(date time.Time) string {
	return Weekdays[int(date.Weekday())]
}

// IsWeekdayName returns true if name is one of the seven canonical identifiers
func IsWeekdayName(name string) bool {
	for _, d := range Weekdays {
		if d == name {
			return true
		}
	}
	return false
}
