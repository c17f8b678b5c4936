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

type NoticeRepository struct {
	collection *mongo.Collection
}

func NewNoticeRepository(mongoClient *client.MongoClient) *NoticeRepository {
	repository := &NoticeRepository{
		collection: mongoClient.Collection(core.MongoCollectionNotices),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *NoticeRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.NoticeIndexes)
	return nil
}

func (repository *NoticeRepository) Create(
	contextValue context.Context,
	notice *model.Notice,
) (returnedError error) {
	nowUTC := time.Now().UTC()
	if notice.ID.IsZero() {
		notice.ID = primitive.NewObjectID()
	}
	notice.CreatedAt = nowUTC
	notice.UpdatedAt = nowUTC
	_, returnedError = repository.collection.InsertOne(contextValue, notice)
	return returnedError
}

func (repository *NoticeRepository) GetByID(
	contextValue context.Context,
	noticeIdentifier primitive.ObjectID,
) (_ *model.Notice, returnedError error) {
	var notice model.Notice
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": noticeIdentifier}).Decode(&notice); returnedError != nil {
		return nil, returnedError
	}
	return &notice, nil
}

// List 最新在前；limit <= 0 表示不限制
func (repository *NoticeRepository) List(
	contextValue context.Context,
	limit int64,
) (_ []*model.Notice, returnedError error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	if limit > 0 {
		findOptions.SetLimit(limit)
	}
	cursor, findError := repository.collection.Find(contextValue, bson.M{}, findOptions)
	if findError != nil {
		return nil, findError
	}
	return decodeAll[model.Notice](contextValue, cursor)
}

func (repository *NoticeRepository) Update(
	contextValue context.Context,
	notice *model.Notice,
) (returnedError error) {
	notice.UpdatedAt = time.Now().UTC()
	result, updateError := repository.collection.ReplaceOne(contextValue, bson.M{"_id": notice.ID}, notice)
	if updateError != nil {
		return updateError
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repository *NoticeRepository) DeleteByID(
	contextValue context.Context,
	noticeIdentifier primitive.ObjectID,
) (returnedError error) {
	result, deleteError := repository.collection.DeleteOne(contextValue, bson.M{"_id": noticeIdentifier})
	if deleteError != nil {
		return deleteError
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
