package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turnosya/booking-service/pkg/types"
)

func TestSlotIndex_Time(t *testing.T) {
	cases := map[SlotIndex]types.TimeString{
		0:  "00:00",
		1:  "00:30",
		18: "09:00",
		39: "19:30",
		47: "23:30",
	}
	for index, want := range cases {
		got, err := index.Time()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := SlotIndex(48).Time()
	assert.Error(t, err)

	_, err = SlotIndex(-1).Time()
	assert.Error(t, err)
}

func TestTimeToSlotIndex_RoundTrip(t *testing.T) {
	for i := 0; i < SlotsPerDay; i++ {
		ts, err := SlotIndex(i).Time()
		require.NoError(t, err)

		back, err := TimeToSlotIndex(ts)
		require.NoError(t, err)
		assert.Equal(t, SlotIndex(i), back)
	}
}

func TestTimeToSlotIndex_RejectsUnaligned(t *testing.T) {
	_, err := TimeToSlotIndex("09:15")
	assert.Error(t, err)

	_, err = TimeToSlotIndex("09:01")
	assert.Error(t, err)
}

func TestWeekdayName(t *testing.T) {
	// 2026-09-13 - воскресенье
	sunday := time.Date(2026, 9, 13, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "Domingo", WeekdayName(sunday))
	assert.Equal(t, "Lunes", WeekdayName(sunday.AddDate(0, 0, 1)))
	assert.Equal(t, "Sabado", WeekdayName(sunday.AddDate(0, 0, 6)))
}

func TestIsWeekdayName(t *testing.T) {
	for _, day := range Weekdays {
		assert.True(t, IsWeekdayName(day))
	}
	assert.False(t, IsWeekdayName("Monday"))
	assert.False(t, IsWeekdayName("domingo"))
}
