package model

import (
	"mannamsalon/internal/core"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Schedule struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	UID       string             `json:"uid" bson:"uid"`
	Name      string             `json:"name" bson:"name"`
	Store     string             `json:"store" bson:"store"`
	Date      string             `json:"date" bson:"date"`           // YYYY-MM-DD
	StartTime string             `json:"startTime" bson:"startTime"` // HH:MM
	EndTime   string             `json:"endTime" bson:"endTime"`     // HH:MM
	WorkType  core.WorkType      `json:"workType" bson:"workType"`
	Memo      string             `json:"memo,omitempty" bson:"memo,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type ScheduleFilter struct {
	From  string
	To    string
	Store string
	Name  string
	UID   string
}

var ScheduleIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "store", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetName("idx_store_date"),
	},
	{
		Keys:    bson.D{{Key: "uid", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetName("idx_uid_date"),
	},
}
