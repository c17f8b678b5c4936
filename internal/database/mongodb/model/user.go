package model

import (
	"mannamsalon/internal/core"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// User 員工資料；_id 即身份服務 uid
type User struct {
	UID            string        `json:"uid" bson:"_id"`                                           // 身份服務 uid
	Name           string        `json:"name" bson:"name"`                                         // 姓名
	Email          string        `json:"email,omitempty" bson:"email,omitempty"`                   // 信箱
	Phone          string        `json:"phone,omitempty" bson:"phone,omitempty"`                   // 電話
	Birth          string        `json:"birth,omitempty" bson:"birth,omitempty"`                   // 生日 YYYY-MM-DD
	Address        string        `json:"address,omitempty" bson:"address,omitempty"`               // 地址
	Store          string        `json:"store" bson:"store"`                                       // 所屬門市
	Position       string        `json:"position,omitempty" bson:"position,omitempty"`             // 職位
	EmploymentType core.WageType `json:"employmentType,omitempty" bson:"employmentType,omitempty"` // 時薪制 / 月薪制
	HourlyWage     int64         `json:"hourlyWage" bson:"hourlyWage"`                             // 時薪（韓元）
	Status         core.Status   `json:"status" bson:"status"`                                     // 在職狀態
	ResignDate     string        `json:"resignDate,omitempty" bson:"resignDate,omitempty"`
	ResignReason   string        `json:"resignReason,omitempty" bson:"resignReason,omitempty"`
	CreatedAt      time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt" bson:"updatedAt"`
}

type UserFilter struct {
	Store  string
	Status core.Status
	Name   string
}

var UserIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetName("idx_name"),
	},
	{
		Keys:    bson.D{{Key: "store", Value: 1}, {Key: "status", Value: 1}},
		Options: options.Index().SetName("idx_store_status"),
	},
}
