package payroll

import "github.com/shopspring/decimal"

var (
	WeeklyHolidayRate = decimal.RequireFromString("0.2")
	InsuranceRate     = decimal.RequireFromString("0.089")
	TaxRate           = decimal.RequireFromString("0.033")
)

const minutesPerHour = 60
