package repository

import (
	"context"
	"time"

	"mannamsalon/internal/core"
	client "mannamsalon/internal/database/client"
	"mannamsalon/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AttendanceRepository struct {
	collection *mongo.Collection
}

// NewAttendanceRepository 唯一索引建立失敗即回傳錯誤
func NewAttendanceRepository(mongoClient *client.MongoClient) (*AttendanceRepository, error) {
	repository := &AttendanceRepository{
		collection: mongoClient.Collection(core.MongoCollectionAttendance),
	}
	if err := repository.ensureIndexes(context.Background()); err != nil {
		return nil, err
	}
	return repository, nil
}

func (repository *AttendanceRepository) ensureIndexes(contextValue context.Context) error {
	return createIndexes(contextValue, repository.collection, model.AttendanceIndexes)
}

// Insert 依 (uid, date) 唯一索引寫入；當日已有紀錄回傳 ErrDuplicate 且不覆寫
func (repository *AttendanceRepository) Insert(
	contextValue context.Context,
	record *model.AttendanceRecord,
) (returnedError error) {
	nowUTC := time.Now().UTC()
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	record.CreatedAt = nowUTC
	record.UpdatedAt = nowUTC

	_, insertError := repository.collection.InsertOne(contextValue, record)
	return translateWriteError(insertError)
}

func (repository *AttendanceRepository) GetByUIDAndDate(
	contextValue context.Context,
	uid string,
	date string,
) (_ *model.AttendanceRecord, returnedError error) {
	var record model.AttendanceRecord
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"uid": uid, "date": date}).Decode(&record); returnedError != nil {
		return nil, returnedError
	}
	return &record, nil
}

func (repository *AttendanceRepository) GetByID(
	contextValue context.Context,
	recordIdentifier primitive.ObjectID,
) (_ *model.AttendanceRecord, returnedError error) {
	var record model.AttendanceRecord
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": recordIdentifier}).Decode(&record); returnedError != nil {
		return nil, returnedError
	}
	return &record, nil
}

// CloseShift 只在 clockIn 已存在且 clockOut 為 null 時寫入下班時間（單一條件更新）
// 回傳 false 代表條件不成立，呼叫端需再讀取判斷原因
func (repository *AttendanceRepository) CloseShift(
	contextValue context.Context,
	uid string,
	date string,
	clockOut string,
	status core.AttendanceStatus,
) (closed bool, returnedError error) {
	filter := bson.M{
		"uid":      uid,
		"date":     date,
		"clockIn":  bson.M{"$nin": bson.A{nil, ""}},
		"clockOut": nil,
	}
	set := bson.M{"clockOut": clockOut}
	if status != "" {
		set["status"] = status
	}
	result, updateError := repository.collection.UpdateOne(contextValue, filter, withUpdatedAt(bson.M{"$set": set}))
	if updateError != nil {
		return false, updateError
	}
	return result.ModifiedCount == 1, nil
}

func (repository *AttendanceRepository) List(
	contextValue context.Context,
	filter model.AttendanceFilter,
) (_ []*model.AttendanceRecord, returnedError error) {
	query := bson.M{}
	if filter.UID != "" {
		query["uid"] = filter.UID
	}
	if filter.Name != "" {
		query["name"] = filter.Name
	}
	if filter.Store != "" {
		query["store"] = filter.Store
	}
	if r := dateRange(filter.From, filter.To); len(r) > 0 {
		query["date"] = r
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "clockIn", Value: -1}})
	cursor, findError := repository.collection.Find(contextValue, query, findOptions)
	if findError != nil {
		return nil, findError
	}
	return decodeAll[model.AttendanceRecord](contextValue, cursor)
}

// Update 管理者修正紀錄；(uid, date) 與其他紀錄衝突時回傳 ErrDuplicate
func (repository *AttendanceRepository) Update(
	contextValue context.Context,
	record *model.AttendanceRecord,
) (returnedError error) {
	record.UpdatedAt = time.Now().UTC()
	result, updateError := repository.collection.ReplaceOne(contextValue, bson.M{"_id": record.ID}, record)
	if updateError != nil {
		return translateWriteError(updateError)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repository *AttendanceRepository) DeleteByID(
	contextValue context.Context,
	recordIdentifier primitive.ObjectID,
) (returnedError error) {
	result, deleteError := repository.collection.DeleteOne(contextValue, bson.M{"_id": recordIdentifier})
	if deleteError != nil {
		return deleteError
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Confirm 批次確認，回傳實際更新筆數
func (repository *AttendanceRepository) Confirm(
	contextValue context.Context,
	recordIdentifiers []primitive.ObjectID,
) (modified int64, returnedError error) {
	if len(recordIdentifiers) == 0 {
		return 0, nil
	}
	now := time.Now().UTC()
	update := withUpdatedAt(bson.M{"$set": bson.M{"confirmed": true, "confirmedAt": now}})
	result, updateError := repository.collection.UpdateMany(contextValue,
		bson.M{"_id": bson.M{"$in": recordIdentifiers}, "confirmed": bson.M{"$ne": true}}, update)
	if updateError != nil {
		return 0, updateError
	}
	return result.ModifiedCount, nil
}

// CountOpen 指定日期尚未下班的人數
func (repository *AttendanceRepository) CountOpen(
	contextValue context.Context,
	date string,
) (_ int64, returnedError error) {
	return repository.collection.CountDocuments(contextValue, bson.M{"date": date, "clockOut": nil})
}
