package payroll

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock 將 "HH:MM" 轉成當日分鐘數
func ParseClock(value string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(value), ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}
	return hour*minutesPerHour + minute, nil
}

// WorkMinutes 回傳 clockOut - clockIn；跨日班不支援，clockOut 早於 clockIn 視為錯誤
func WorkMinutes(clockIn, clockOut string) (int, error) {
	start, err := ParseClock(clockIn)
	if err != nil {
		return 0, err
	}
	end, err := ParseClock(clockOut)
	if err != nil {
		return 0, err
	}
	if end < start {
		return 0, fmt.Errorf("%w: %s-%s", ErrInvalidShift, clockIn, clockOut)
	}
	return end - start, nil
}

// FormatDuration 例：510 → "8시간 30분"
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%d시간 %d분", minutes/minutesPerHour, minutes%minutesPerHour)
}
