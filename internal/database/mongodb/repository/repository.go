package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicate 違反唯一索引（同日重複打卡、重複簽署等）
var ErrDuplicate = errors.New("duplicate document")

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewUserRepository,
	NewAttendanceRepository,
	NewContractRepository,
	NewSignedContractRepository,
	NewContractDraftRepository,
	NewCompanyRepository,
	NewNoticeRepository,
	NewEmployeeDocsRepository,
	NewScheduleRepository,
	NewUserWatcher,
)

const indexTimeout = 10 * time.Second

// createIndexes 建立索引；唯一索引承擔業務約束的集合必須在啟動時成功
func createIndexes(contextValue context.Context, collection *mongo.Collection, models []mongo.IndexModel) error {
	contextValue, cancel := context.WithTimeout(contextValue, indexTimeout)
	defer cancel()
	if _, err := collection.Indexes().CreateMany(contextValue, models); err != nil {
		return fmt.Errorf("create indexes on %s: %w", collection.Name(), err)
	}
	return nil
}

func withUpdatedAt(update bson.M) bson.M {
	// 確保 $currentDate 存在
	currentDate, ok := update["$currentDate"].(bson.M)
	if !ok || currentDate == nil {
		currentDate = bson.M{}
	}
	currentDate["updatedAt"] = true
	update["$currentDate"] = currentDate
	return update
}

// translateWriteError 將唯一索引衝突轉成 ErrDuplicate
func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func decodeAll[T any](contextValue context.Context, cursor *mongo.Cursor) ([]*T, error) {
	defer cursor.Close(contextValue)

	var results []*T
	for cursor.Next(contextValue) {
		var item T
		if decodeError := cursor.Decode(&item); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &item)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return results, nil
}

// dateRange 組出 YYYY-MM-DD 字串區間條件
func dateRange(from, to string) bson.M {
	r := bson.M{}
	if from != "" {
		r["$gte"] = from
	}
	if to != "" {
		r["$lte"] = to
	}
	return r
}
