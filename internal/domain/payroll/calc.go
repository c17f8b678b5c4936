package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Shift 一筆出勤；ClockOut 為空代表尚未下班，不列入計算
type Shift struct {
	Date     string
	ClockIn  string
	ClockOut string
}

func (s Shift) completed() bool {
	return s.ClockIn != "" && s.ClockOut != ""
}

// Breakdown 單一員工單一期間的薪資明細，金額單位為韓元
type Breakdown struct {
	BaseSalary       int64 `json:"baseSalary"`
	WeeklyHolidayPay int64 `json:"weeklyHolidayPay"`
	Overtime         int64 `json:"overtime"`
	Insurance        int64 `json:"insurance"`
	Tax              int64 `json:"tax"`
	Deduction        int64 `json:"deduction"`
	NetSalary        int64 `json:"netSalary"`
	TotalHours       int64 `json:"totalHours"`
	TotalMinutes     int64 `json:"totalMinutes"`
	HourlyWage       int64 `json:"hourlyWage"`
	WorkDays         int   `json:"workDays"`
}

// Empty 沒有任何完成的出勤紀錄；呼叫端應顯示「無紀錄」而不是 ₩0
func (b Breakdown) Empty() bool {
	return b.WorkDays == 0
}

// Compute 計算薪資：
//
//	totalHours = floor(Σminutes / 60)
//	base       = totalHours × hourlyWage
//	weekly     = floor(base × 0.2)
//	insurance  = floor((base+weekly) × 0.089)
//	tax        = floor((base+weekly) × 0.033)
//	net        = base + weekly + overtime(0) - insurance - tax
//
// 未下班的紀錄略過；時間格式錯誤或 clockOut 早於 clockIn 直接回傳錯誤。
func Compute(shifts []Shift, hourlyWage int64) (Breakdown, error) {
	if hourlyWage < 0 {
		return Breakdown{}, ErrNegativeWage
	}

	var totalMinutes int64
	workDays := 0
	for _, s := range shifts {
		if !s.completed() {
			continue
		}
		minutes, err := WorkMinutes(s.ClockIn, s.ClockOut)
		if err != nil {
			return Breakdown{}, fmt.Errorf("record %s: %w", s.Date, err)
		}
		totalMinutes += int64(minutes)
		workDays++
	}

	totalHours := totalMinutes / minutesPerHour
	base := decimal.NewFromInt(totalHours).Mul(decimal.NewFromInt(hourlyWage))
	weekly := base.Mul(WeeklyHolidayRate).Floor()
	gross := base.Add(weekly)
	insurance := gross.Mul(InsuranceRate).Floor()
	tax := gross.Mul(TaxRate).Floor()
	deduction := insurance.Add(tax)
	overtime := decimal.Zero

	return Breakdown{
		BaseSalary:       base.IntPart(),
		WeeklyHolidayPay: weekly.IntPart(),
		Overtime:         overtime.IntPart(),
		Insurance:        insurance.IntPart(),
		Tax:              tax.IntPart(),
		Deduction:        deduction.IntPart(),
		NetSalary:        gross.Add(overtime).Sub(deduction).IntPart(),
		TotalHours:       totalHours,
		TotalMinutes:     totalMinutes,
		HourlyWage:       hourlyWage,
		WorkDays:         workDays,
	}, nil
}
