package model

import (
	"mannamsalon/internal/core"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AttendanceRecord 每位員工每天最多一筆
type AttendanceRecord struct {
	ID          primitive.ObjectID    `json:"id" bson:"_id"`
	UID         string                `json:"uid" bson:"uid"`
	Name        string                `json:"name" bson:"name"`
	Store       string                `json:"store" bson:"store"`
	Date        string                `json:"date" bson:"date"`         // YYYY-MM-DD
	ClockIn     string                `json:"clockIn" bson:"clockIn"`   // HH:MM
	ClockOut    *string               `json:"clockOut" bson:"clockOut"` // HH:MM，未下班為 null
	WorkType    core.WorkType         `json:"workType" bson:"workType"`
	Status      core.AttendanceStatus `json:"status" bson:"status"`
	Confirmed   bool                  `json:"confirmed" bson:"confirmed"` // 管理者確認
	ConfirmedAt *time.Time            `json:"confirmedAt,omitempty" bson:"confirmedAt,omitempty"`
	CreatedAt   time.Time             `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt" bson:"updatedAt"`
}

type AttendanceFilter struct {
	UID   string
	Name  string
	Store string
	From  string // YYYY-MM-DD，含
	To    string // YYYY-MM-DD，含
}

var AttendanceIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "uid", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetName("uniq_uid_date").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "store", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetName("idx_store_date"),
	},
	{
		Keys:    bson.D{{Key: "date", Value: 1}},
		Options: options.Index().SetName("idx_date"),
	},
}
