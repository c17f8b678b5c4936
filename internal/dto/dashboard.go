package dto

type DashboardStatsDto struct {
	Year              int   `json:"year"`
	Month             int   `json:"month"`
	ActiveEmployees   int64 `json:"activeEmployees"`
	AttendanceRecords int   `json:"attendanceRecords"`
	ClockedInNow      int64 `json:"clockedInNow"`
	SignedContracts   int64 `json:"signedContracts"`
	DraftedContracts  int64 `json:"draftedContracts"`
	TotalPayroll      int64 `json:"totalPayroll"`
	TotalHours        int64 `json:"totalHours"`
}

type DashboardQueryDto struct {
	Year  int `form:"year" json:"year" binding:"omitempty,gte=2000,lte=2100"`
	Month int `form:"month" json:"month" binding:"omitempty,gte=1,lte=12"`
}
