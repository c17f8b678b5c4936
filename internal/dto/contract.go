package dto

import (
	"mannamsalon/internal/core"
	"mannamsalon/internal/database/mongodb/model"
	"time"
)

// ContractFormDto 合約表單；草稿不檢查必填
type ContractFormDto struct {
	EmployeeName          string            `json:"employeeName"`
	EmployeeBirth         string            `json:"employeeBirth"`
	EmployeeAddress       string            `json:"employeeAddress"`
	EmployeePhone         string            `json:"employeePhone"`
	CompanyID             string            `json:"companyId,omitempty"`
	CompanyName           string            `json:"companyName"`
	CompanyCEO            string            `json:"companyCEO,omitempty"`
	CompanyBusinessNumber string            `json:"companyBusinessNumber,omitempty"`
	ContractType          core.ContractType `json:"contractType"`
	WorkStore             string            `json:"workStore"`
	StartDate             string            `json:"startDate"`
	EndDate               string            `json:"endDate,omitempty"`
	Position              string            `json:"position"`
	WorkDays              string            `json:"workDays"`
	WorkTime              string            `json:"workTime"`
	BreakTime             string            `json:"breakTime,omitempty"`
	WageType              core.WageType     `json:"wageType"`
	WageAmount            int64             `json:"wageAmount"`
	PaymentDay            string            `json:"paymentDay"`
	PaymentMethod         string            `json:"paymentMethod"`
	ContractContent       string            `json:"contractContent,omitempty"`
}

func (f ContractFormDto) Terms() model.ContractTerms {
	return model.ContractTerms{
		EmployeeName:          f.EmployeeName,
		EmployeeBirth:         f.EmployeeBirth,
		EmployeeAddress:       f.EmployeeAddress,
		EmployeePhone:         f.EmployeePhone,
		CompanyID:             f.CompanyID,
		CompanyName:           f.CompanyName,
		CompanyCEO:            f.CompanyCEO,
		CompanyBusinessNumber: f.CompanyBusinessNumber,
		ContractType:          f.ContractType,
		WorkStore:             f.WorkStore,
		StartDate:             f.StartDate,
		EndDate:               f.EndDate,
		Position:              f.Position,
		WorkDays:              f.WorkDays,
		WorkTime:              f.WorkTime,
		BreakTime:             f.BreakTime,
		WageType:              f.WageType,
		WageAmount:            f.WageAmount,
		PaymentDay:            f.PaymentDay,
		PaymentMethod:         f.PaymentMethod,
		ContractContent:       f.ContractContent,
	}
}

type ContractCreatedDto struct {
	ContractID string `json:"contractId"`
	Link       string `json:"link"`
}

type ContractQueryDto struct {
	Status core.ContractStatus `form:"status" json:"status,omitempty"`
	Name   string              `form:"name" json:"employeeName,omitempty"`
	Store  string              `form:"store" json:"storeName,omitempty"`
}

// SignContractDto signature 為 data URL（data:image/png;base64,...）
type SignContractDto struct {
	Agree     bool   `json:"agree"`
	Signature string `json:"signature"`
}

// ContractForSigningDto 簽署頁面讀取的內容
type ContractForSigningDto struct {
	Contract *model.Contract `json:"contract"`
	Signed   bool            `json:"signed"`
	SignedAt *time.Time      `json:"signedAt,omitempty"`
}

type SaveDraftDto struct {
	DraftID string `json:"id,omitempty"`
	ContractFormDto
}
