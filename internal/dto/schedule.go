package dto

import "mannamsalon/internal/core"

type ScheduleDto struct {
	UID       string        `json:"employeeId" binding:"required"`
	Date      string        `json:"date" binding:"required,ymd"`
	StartTime string        `json:"startTime" binding:"required,hhmm"`
	EndTime   string        `json:"endTime" binding:"required,hhmm"`
	WorkType  core.WorkType `json:"workType,omitempty" binding:"omitempty,oneof=regular overtime substitute"`
	Memo      string        `json:"memo,omitempty"`
}

type BulkScheduleDto struct {
	Schedules []ScheduleDto `json:"schedules" binding:"required,min=1,dive"`
}

type ScheduleQueryDto struct {
	From  string `form:"from" json:"startDate,omitempty" binding:"omitempty,ymd"`
	To    string `form:"to" json:"endDate,omitempty" binding:"omitempty,ymd"`
	Store string `form:"store" json:"storeName,omitempty"`
	Name  string `form:"name" json:"employeeName,omitempty"`
	UID   string `form:"uid" json:"employeeId,omitempty"`
}
