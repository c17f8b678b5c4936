package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BankAccount struct {
	BankName      string `json:"bankName" bson:"bankName"`
	AccountNumber string `json:"accountNumber" bson:"accountNumber"`
	AccountHolder string `json:"accountHolder" bson:"accountHolder"`
}

// HealthCert 보건증；ImageData 為壓縮後的 JPEG
type HealthCert struct {
	ImageData   []byte    `json:"imageData,omitempty" bson:"imageData,omitempty"`
	ContentType string    `json:"contentType,omitempty" bson:"contentType,omitempty"`
	ExpiryDate  string    `json:"expiryDate" bson:"expiryDate"` // YYYY-MM-DD
	UploadedAt  time.Time `json:"uploadedAt" bson:"uploadedAt"`
}

// EmployeeDocs 個資文件；離職時整筆刪除，合約與出勤保留
type EmployeeDocs struct {
	ID          primitive.ObjectID `json:"-" bson:"_id"`
	UID         string             `json:"uid" bson:"uid"`
	BankAccount *BankAccount       `json:"bankAccount,omitempty" bson:"bankAccount,omitempty"`
	HealthCert  *HealthCert        `json:"healthCert,omitempty" bson:"healthCert,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

var EmployeeDocsIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "uid", Value: 1}},
		Options: options.Index().SetName("uniq_uid").SetUnique(true),
	},
}
