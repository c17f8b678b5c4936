package model

import (
	"mannamsalon/internal/core"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ContractTerms 是合約表單的全部欄位，草稿與正式合約共用
type ContractTerms struct {
	EmployeeName          string            `json:"employeeName" bson:"employeeName"`
	EmployeeBirth         string            `json:"employeeBirth" bson:"employeeBirth"`
	EmployeeAddress       string            `json:"employeeAddress" bson:"employeeAddress"`
	EmployeePhone         string            `json:"employeePhone" bson:"employeePhone"`
	CompanyID             string            `json:"companyId,omitempty" bson:"companyId,omitempty"`
	CompanyName           string            `json:"companyName" bson:"companyName"`
	CompanyCEO            string            `json:"companyCEO" bson:"companyCEO"`
	CompanyBusinessNumber string            `json:"companyBusinessNumber" bson:"companyBusinessNumber"`
	ContractType          core.ContractType `json:"contractType" bson:"contractType"`
	WorkStore             string            `json:"workStore" bson:"workStore"`
	StartDate             string            `json:"startDate" bson:"startDate"`
	EndDate               string            `json:"endDate" bson:"endDate"`
	Position              string            `json:"position" bson:"position"`
	WorkDays              string            `json:"workDays" bson:"workDays"`
	WorkTime              string            `json:"workTime" bson:"workTime"`
	BreakTime             string            `json:"breakTime,omitempty" bson:"breakTime,omitempty"`
	WageType              core.WageType     `json:"wageType" bson:"wageType"`
	WageAmount            int64             `json:"wageAmount" bson:"wageAmount"`
	PaymentDay            string            `json:"paymentDay" bson:"paymentDay"`
	PaymentMethod         string            `json:"paymentMethod" bson:"paymentMethod"`
	ContractContent       string            `json:"contractContent,omitempty" bson:"contractContent,omitempty"`
}

// Contract 由管理者建立；簽署後狀態不可再變更
type Contract struct {
	ID            primitive.ObjectID `json:"-" bson:"_id"`
	ContractID    string             `json:"id" bson:"contractId"` // "C" + unix millis
	ContractTerms `bson:",inline"`
	Status        core.ContractStatus `json:"status" bson:"status"`
	SignedAt      *time.Time          `json:"signedAt,omitempty" bson:"signedAt,omitempty"`
	CreatedAt     time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt" bson:"updatedAt"`
}

type ContractFilter struct {
	Status       core.ContractStatus
	EmployeeName string
	WorkStore    string
}

var ContractIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "contractId", Value: 1}},
		Options: options.Index().SetName("uniq_contractId").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("idx_status_createdAt_desc"),
	},
	{
		Keys:    bson.D{{Key: "employeeName", Value: 1}},
		Options: options.Index().SetName("idx_employeeName"),
	},
}

// SignedContract 簽署當下的合約快照，只新增不修改
type SignedContract struct {
	ID         primitive.ObjectID  `json:"-" bson:"_id"`
	ContractID string              `json:"contractId" bson:"contractId"`
	Contract   Contract            `json:"contract" bson:"contract"`
	Signature  string              `json:"signature" bson:"signature"` // data:image/png;base64,...
	SignedAt   time.Time           `json:"signedAt" bson:"signedAt"`
	Status     core.ContractStatus `json:"status" bson:"status"`
}

var SignedContractIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "contractId", Value: 1}},
		Options: options.Index().SetName("uniq_contractId").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "signedAt", Value: -1}},
		Options: options.Index().SetName("idx_signedAt_desc"),
	},
}

// ContractDraft 暫存中的合約表單
type ContractDraft struct {
	ID            primitive.ObjectID `json:"-" bson:"_id"`
	DraftID       string             `json:"id" bson:"draftId"`
	ContractTerms `bson:",inline"`
	SavedAt       time.Time `json:"savedAt" bson:"savedAt"`
}

var ContractDraftIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "draftId", Value: 1}},
		Options: options.Index().SetName("uniq_draftId").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "savedAt", Value: -1}},
		Options: options.Index().SetName("idx_savedAt_desc"),
	},
}
