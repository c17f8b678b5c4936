package dto

import "mannamsalon/internal/core"

type WorkRecordQueryDto struct {
	UID   string `form:"uid" json:"employeeId,omitempty"`
	Name  string `form:"name" json:"employeeName,omitempty"`
	Store string `form:"store" json:"storeName,omitempty"`
	From  string `form:"from" json:"startDate,omitempty" binding:"omitempty,ymd"`
	To    string `form:"to" json:"endDate,omitempty" binding:"omitempty,ymd"`
}

// 管理者手動補登
type AddWorkRecordDto struct {
	UID      string                `json:"employeeId" binding:"required"`
	Date     string                `json:"date" binding:"required,ymd"`
	ClockIn  string                `json:"clockIn" binding:"required,hhmm"`
	ClockOut *string               `json:"clockOut,omitempty" binding:"omitempty,hhmm"`
	WorkType core.WorkType         `json:"workType,omitempty" binding:"omitempty,oneof=regular overtime substitute"`
	Status   core.AttendanceStatus `json:"status,omitempty" binding:"omitempty,oneof=normal late early absent"`
}

type UpdateWorkRecordDto struct {
	Date     *string                `json:"date,omitempty" binding:"omitempty,ymd"`
	ClockIn  *string                `json:"clockIn,omitempty" binding:"omitempty,hhmm"`
	ClockOut *string                `json:"clockOut,omitempty" binding:"omitempty,hhmm"`
	WorkType *core.WorkType         `json:"workType,omitempty" binding:"omitempty,oneof=regular overtime substitute"`
	Status   *core.AttendanceStatus `json:"status,omitempty" binding:"omitempty,oneof=normal late early absent"`
}

type ConfirmRecordsDto struct {
	RecordIDs []string `json:"recordIds" binding:"required,min=1,dive,required"`
}

type ConfirmResultDto struct {
	Requested int   `json:"requested"`
	Confirmed int64 `json:"confirmed"`
}
