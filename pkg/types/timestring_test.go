package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	valid := []string{"00:00", "09:30", "12:00", "23:59"}
	for _, s := range valid {
		assert.NoError(t, TimeString(s).Validate(), s)
	}

	invalid := []string{"", "9:30", "24:00", "12:60", "12-30", "12:3", "ab:cd", "12:30:00"}
	for _, s := range invalid {
		assert.Error(t, TimeString(s).Validate(), s)
	}
}

func TestTimeString_ToMinutes(t *testing.T) {
	m, err := TimeString("00:00").ToMinutes()
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	m, err = TimeString("09:30").ToMinutes()
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	m, err = TimeString("23:59").ToMinutes()
	require.NoError(t, err)
	assert.Equal(t, 1439, m)

	_, err = TimeString("25:00").ToMinutes()
	assert.Error(t, err)
}

func TestMinutesToTime(t *testing.T) {
	ts, err := MinutesToTime(570)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	ts, err = MinutesToTime(0)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:00"), ts)

	// Значения вне суток - ошибка, а не переполнение на следующий день
	_, err = MinutesToTime(MinutesPerDay)
	assert.Error(t, err)

	_, err = MinutesToTime(-30)
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("09:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), ts)

	// Выход за пределы суток
	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err)
}

func TestTimeString_LexicographicOrder(t *testing.T) {
	// Zero-padded формат сравнивается как строки в хронологическом порядке
	assert.True(t, TimeString("09:00").IsBefore("10:30"))
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.True(t, TimeString("13:00").IsAfter("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:30"))
}

func TestTimeString_Format12Hour(t *testing.T) {
	cases := map[TimeString]string{
		"00:00": "12:00 AM",
		"00:30": "12:30 AM",
		"09:05": "9:05 AM",
		"12:00": "12:00 PM",
		"13:30": "1:30 PM",
		"23:59": "11:59 PM",
	}
	for in, want := range cases {
		got, err := in.Format12Hour()
		require.NoError(t, err)
		assert.Equal(t, want, got, string(in))
	}
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("09:30")))
	assert.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 9, 1, 14, 45, 0, 0, time.Local)))
	assert.Equal(t, TimeString("14:45"), ts)

	assert.Error(t, ts.Scan(42))
}
