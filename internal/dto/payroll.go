package dto

type SalaryQueryDto struct {
	Year  int    `form:"year" json:"year" binding:"required,gte=2000,lte=2100"`
	Month int    `form:"month" json:"month" binding:"required,gte=1,lte=12"`
	Store string `form:"store" json:"storeName,omitempty"`
	Name  string `form:"name" json:"employeeName,omitempty"`
}

// SalaryResponseDto 一位員工一個月的薪資明細
type SalaryResponseDto struct {
	UID              string `json:"employeeId"`
	Name             string `json:"employeeName"`
	Store            string `json:"store"`
	Year             int    `json:"year"`
	Month            int    `json:"month"`
	HourlyWage       int64  `json:"hourlyWage"`
	WorkDays         int    `json:"workDays"`
	TotalHours       int64  `json:"totalHours"`
	TotalWorkTime    string `json:"totalWorkTime"`
	BaseSalary       int64  `json:"baseSalary"`
	WeeklyHolidayPay int64  `json:"weeklyHolidayPay"`
	Overtime         int64  `json:"overtime"`
	Insurance        int64  `json:"insurance"`
	Tax              int64  `json:"tax"`
	Deduction        int64  `json:"deduction"`
	NetSalary        int64  `json:"netSalary"`
	NoRecords        bool   `json:"noRecords"`
	MinWeeklyHours   int    `json:"minWeeklyHours,omitempty"`
	WeeklyHours      int    `json:"weeklyHours,omitempty"`
	// InvalidRecord 該員工當月有無法計算的紀錄，金額欄位不可採用
	InvalidRecord bool   `json:"invalidRecord,omitempty"`
	Error         string `json:"error,omitempty"`
}
