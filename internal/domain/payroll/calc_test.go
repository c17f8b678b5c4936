package payroll

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeEightHoursAtTenThousand(t *testing.T) {
	got, err := Compute([]Shift{{Date: "2025-03-03", ClockIn: "09:00", ClockOut: "17:00"}}, 10000)
	require.NoError(t, err)

	assert.Equal(t, Breakdown{
		BaseSalary:       80000,
		WeeklyHolidayPay: 16000,
		Overtime:         0,
		Insurance:        8544,
		Tax:              3168,
		Deduction:        11712,
		NetSalary:        84288,
		TotalHours:       8,
		TotalMinutes:     480,
		HourlyWage:       10000,
		WorkDays:         1,
	}, got)
}

func TestComputeSumsAcrossRecords(t *testing.T) {
	shifts := []Shift{
		{Date: "2025-03-03", ClockIn: "09:00", ClockOut: "13:00"},
		{Date: "2025-03-04", ClockIn: "14:00", ClockOut: "18:00"},
	}
	got, err := Compute(shifts, 10000)
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.TotalHours)
	assert.Equal(t, int64(84288), got.NetSalary)
	assert.Equal(t, 2, got.WorkDays)
}

func TestComputeTruncatesPartialHours(t *testing.T) {
	// 539 分鐘 = 8 小時 59 分
	got, err := Compute([]Shift{{Date: "2025-03-03", ClockIn: "09:00", ClockOut: "17:59"}}, 10000)
	require.NoError(t, err)
	assert.Equal(t, int64(539), got.TotalMinutes)
	assert.Equal(t, int64(8), got.TotalHours)
	assert.Equal(t, int64(80000), got.BaseSalary)
}

func TestComputeIsIdempotent(t *testing.T) {
	shifts := []Shift{
		{Date: "2025-03-03", ClockIn: "10:15", ClockOut: "19:40"},
		{Date: "2025-03-04", ClockIn: "08:05", ClockOut: "12:00"},
	}
	first, err := Compute(shifts, 9860)
	require.NoError(t, err)
	second, err := Compute(shifts, 9860)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeIsMonotonicInWorkedMinutes(t *testing.T) {
	fixed := Shift{Date: "2025-03-04", ClockIn: "10:00", ClockOut: "12:30"}
	prev, err := Compute([]Shift{{Date: "2025-03-03", ClockIn: "09:00", ClockOut: "09:00"}, fixed}, 9860)
	require.NoError(t, err)

	for end := 9*60 + 1; end < 24*60; end += 7 {
		clockOut := fmt.Sprintf("%02d:%02d", end/60, end%60)
		got, err := Compute([]Shift{{Date: "2025-03-03", ClockIn: "09:00", ClockOut: clockOut}, fixed}, 9860)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, got.BaseSalary, prev.BaseSalary, clockOut)
		assert.GreaterOrEqual(t, got.NetSalary, prev.NetSalary, clockOut)
		prev = got
	}
}

func TestComputeEmptyInput(t *testing.T) {
	got, err := Compute(nil, 10000)
	require.NoError(t, err)
	assert.True(t, got.Empty())
	assert.Equal(t, int64(0), got.NetSalary)
	assert.Equal(t, int64(0), got.BaseSalary)
	assert.Equal(t, int64(10000), got.HourlyWage)
}

func TestComputeSkipsOpenRecords(t *testing.T) {
	got, err := Compute([]Shift{
		{Date: "2025-03-03", ClockIn: "09:00"},
		{Date: "2025-03-04", ClockIn: "09:00", ClockOut: "17:00"},
	}, 10000)
	require.NoError(t, err)
	assert.Equal(t, 1, got.WorkDays)
	assert.Equal(t, int64(8), got.TotalHours)
}

func TestComputeRejectsInvalidRecords(t *testing.T) {
	cases := []struct {
		name   string
		shifts []Shift
		wage   int64
		want   error
	}{
		{"inverted", []Shift{{Date: "2025-03-03", ClockIn: "18:00", ClockOut: "09:00"}}, 10000, ErrInvalidShift},
		{"malformed", []Shift{{Date: "2025-03-03", ClockIn: "9h", ClockOut: "17:00"}}, 10000, ErrInvalidClock},
		{"out of range", []Shift{{Date: "2025-03-03", ClockIn: "09:00", ClockOut: "24:10"}}, 10000, ErrInvalidClock},
		{"negative wage", nil, -1, ErrNegativeWage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compute(tc.shifts, tc.wage)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestComputeZeroLengthShiftCountsAsWorkDay(t *testing.T) {
	got, err := Compute([]Shift{{Date: "2025-03-03", ClockIn: "09:00", ClockOut: "09:00"}}, 10000)
	require.NoError(t, err)
	assert.Equal(t, 1, got.WorkDays)
	assert.Equal(t, int64(0), got.NetSalary)
}
