package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Company struct {
	ID             primitive.ObjectID `json:"-" bson:"_id"`
	CompanyID      string             `json:"id" bson:"companyId"`
	Name           string             `json:"name" bson:"name"`
	CEO            string             `json:"ceo" bson:"ceo"`
	BusinessNumber string             `json:"businessNumber" bson:"businessNumber"`
	Phone          string             `json:"phone" bson:"phone"`
	Address        string             `json:"address" bson:"address"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

var CompanyIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "companyId", Value: 1}},
		Options: options.Index().SetName("uniq_companyId").SetUnique(true),
	},
}
