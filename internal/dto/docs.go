package dto

import "time"

type BankAccountDto struct {
	BankName      string `json:"bankName" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required"`
	AccountHolder string `json:"accountHolder" binding:"required"`
}

// HealthCertDto imageData 可為 data URL 或純 base64；更新時可省略沿用舊圖
type HealthCertDto struct {
	ExpiryDate string `json:"expiryDate" binding:"required,ymd"`
	ImageData  string `json:"imageData,omitempty"`
}

type HealthCertResponseDto struct {
	ExpiryDate  string    `json:"expiryDate"`
	ContentType string    `json:"contentType,omitempty"`
	ImageData   string    `json:"imageData,omitempty"` // data URL
	UploadedAt  time.Time `json:"uploadedAt"`
	Expired     bool      `json:"expired"`
}

type EmployeeDocsResponseDto struct {
	UID         string                 `json:"uid"`
	BankAccount *BankAccountDto        `json:"bankAccount,omitempty"`
	HealthCert  *HealthCertResponseDto `json:"healthCert,omitempty"`
}
