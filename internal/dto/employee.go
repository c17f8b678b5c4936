package dto

import "mannamsalon/internal/core"

// 新增員工；身份服務啟用時以 Email/Password 建立帳號
type CreateEmployeeDto struct {
	Name           string        `json:"name" binding:"required"`
	Email          string        `json:"email,omitempty" binding:"omitempty,email"`
	Password       string        `json:"password,omitempty" binding:"omitempty,min=6"`
	Phone          string        `json:"phone,omitempty"`
	Birth          string        `json:"birth,omitempty" binding:"omitempty,ymd"`
	Address        string        `json:"address,omitempty"`
	Store          string        `json:"store" binding:"required,store"`
	Position       string        `json:"position,omitempty"`
	EmploymentType core.WageType `json:"employmentType,omitempty" binding:"omitempty,oneof=hourly monthly"`
	HourlyWage     int64         `json:"hourlyWage" binding:"gte=0"`
}

type UpdateEmployeeDto struct {
	Name           *string        `json:"name,omitempty" binding:"omitempty,min=1"`
	Email          *string        `json:"email,omitempty" binding:"omitempty,email"`
	Phone          *string        `json:"phone,omitempty"`
	Birth          *string        `json:"birth,omitempty" binding:"omitempty,ymd"`
	Address        *string        `json:"address,omitempty"`
	Store          *string        `json:"store,omitempty" binding:"omitempty,store"`
	Position       *string        `json:"position,omitempty"`
	EmploymentType *core.WageType `json:"employmentType,omitempty" binding:"omitempty,oneof=hourly monthly"`
	HourlyWage     *int64         `json:"hourlyWage,omitempty" binding:"omitempty,gte=0"`
}

type ResignEmployeeDto struct {
	ResignDate string `json:"resignDate" binding:"required,ymd"`
	Reason     string `json:"reason,omitempty"`
}

type EmployeeQueryDto struct {
	Store  string      `form:"store" json:"storeName,omitempty"`
	Status core.Status `form:"status" json:"status,omitempty"`
	Name   string      `form:"name" json:"employeeName,omitempty"`
}
