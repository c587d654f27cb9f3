package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeeklySchedule(t *testing.T) {
	s := DefaultWeeklySchedule(1)

	// Воскресенье - выходной
	assert.Empty(t, s.SlotsFor("Domingo"))

	// Остальные дни - блок 09:00-19:30 (индексы 18..39)
	for _, day := range Weekdays[1:] {
		slots := s.SlotsFor(day)
		require.Len(t, slots, 22, day)
		assert.Equal(t, SlotIndex(18), slots[0])
		assert.Equal(t, SlotIndex(39), slots[len(slots)-1])
	}

	assert.NoError(t, s.Validate())
}

func TestWeeklySchedule_Validate(t *testing.T) {
	s := NewWeeklySchedule(1)
	s.Days["Lunes"] = []SlotIndex{5, 10, 20}
	assert.NoError(t, s.Validate())

	s.Days["Lunes"] = []SlotIndex{5, 48}
	assert.Error(t, s.Validate(), "index out of range")

	s.Days["Lunes"] = []SlotIndex{10, 5}
	assert.Error(t, s.Validate(), "not ascending")

	s.Days["Lunes"] = []SlotIndex{5, 5}
	assert.Error(t, s.Validate(), "duplicate")

	s.Days = map[string][]SlotIndex{"Monday": {5}}
	assert.Error(t, s.Validate(), "unknown weekday")
}

func TestWeeklySchedule_ToggleSlot(t *testing.T) {
	s := NewWeeklySchedule(1)

	require.NoError(t, s.ToggleSlot("Lunes", 20))
	assert.True(t, s.HasSlot("Lunes", 20))

	// Повторный toggle убирает слот: операция обратна сама себе
	require.NoError(t, s.ToggleSlot("Lunes", 20))
	assert.False(t, s.HasSlot("Lunes", 20))

	// Вставка сохраняет порядок по возрастанию
	require.NoError(t, s.ToggleSlot("Lunes", 30))
	require.NoError(t, s.ToggleSlot("Lunes", 10))
	require.NoError(t, s.ToggleSlot("Lunes", 20))
	assert.Equal(t, []SlotIndex{10, 20, 30}, s.SlotsFor("Lunes"))

	assert.Error(t, s.ToggleSlot("Lunes", 48))
	assert.Error(t, s.ToggleSlot("Monday", 10))
}

func TestWeeklySchedule_ToggleAllSlots(t *testing.T) {
	s := NewWeeklySchedule(1)

	// Пустой день становится полным
	require.NoError(t, s.ToggleAllSlots("Martes"))
	assert.Len(t, s.SlotsFor("Martes"), SlotsPerDay)

	// Полный день очищается
	require.NoError(t, s.ToggleAllSlots("Martes"))
	assert.Empty(t, s.SlotsFor("Martes"))

	// Частично заполненный день становится полным, а не очищается
	require.NoError(t, s.ToggleSlot("Martes", 10))
	require.NoError(t, s.ToggleAllSlots("Martes"))
	assert.Len(t, s.SlotsFor("Martes"), SlotsPerDay)
}

func TestWeeklySchedule_CopyDay(t *testing.T) {
	s := NewWeeklySchedule(1)
	require.NoError(t, s.ToggleSlot("Lunes", 18))
	require.NoError(t, s.ToggleSlot("Lunes", 19))

	require.NoError(t, s.CopyDay("Lunes", "Viernes"))
	assert.Equal(t, []SlotIndex{18, 19}, s.SlotsFor("Viernes"))

	// Копия независима от источника
	require.NoError(t, s.ToggleSlot("Lunes", 20))
	assert.Equal(t, []SlotIndex{18, 19}, s.SlotsFor("Viernes"))
}

func TestWeeklySchedule_CopyDay_SeesPendingEdits(t *testing.T) {
	// copy копирует ТЕКУЩЕЕ состояние в памяти, включая еще не сохраненные
	// изменения предыдущих операций
	s := NewWeeklySchedule(1)
	require.NoError(t, s.ToggleSlot("Lunes", 18))
	require.NoError(t, s.ToggleSlot("Lunes", 25))
	require.NoError(t, s.CopyDay("Lunes", "Martes"))

	assert.Equal(t, []SlotIndex{18, 25}, s.SlotsFor("Martes"))
}

func TestWeeklySchedule_ClearDay(t *testing.T) {
	s := DefaultWeeklySchedule(1)
	require.NoError(t, s.ClearDay("Lunes"))
	assert.Empty(t, s.SlotsFor("Lunes"))

	assert.Error(t, s.ClearDay("Monday"))
}

func TestWeeklySchedule_Clone(t *testing.T) {
	s := DefaultWeeklySchedule(1)
	clone := s.Clone()

	require.NoError(t, clone.ToggleSlot("Lunes", 18))
	assert.True(t, s.HasSlot("Lunes", 18), "original unchanged")
	assert.False(t, clone.HasSlot("Lunes", 18))
}
