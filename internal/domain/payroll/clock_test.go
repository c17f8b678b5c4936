package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := map[string]int{
		"00:00": 0,
		"09:05": 545,
		"9:05":  545,
		"23:59": 1439,
	}
	for in, want := range cases {
		got, err := ParseClock(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "0900", "24:00", "12:60", "ab:cd", "12:5", "123:00"} {
		_, err := ParseClock(bad)
		assert.ErrorIs(t, err, ErrInvalidClock, bad)
	}
}

func TestWorkMinutes(t *testing.T) {
	got, err := WorkMinutes("09:30", "18:00")
	require.NoError(t, err)
	assert.Equal(t, 510, got)

	_, err = WorkMinutes("18:00", "09:30")
	assert.ErrorIs(t, err, ErrInvalidShift)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "8시간 30분", FormatDuration(510))
	assert.Equal(t, "0시간 0분", FormatDuration(0))
}
