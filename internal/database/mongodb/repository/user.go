package repository

import (
	"context"
	"time"

	"mannamsalon/internal/core"
	client "mannamsalon/internal/database/client"
	"mannamsalon/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(mongoClient *client.MongoClient) *UserRepository {
	repository := &UserRepository{
		collection: mongoClient.Collection(core.MongoCollectionUsers),
	}
	// 啟動時建立常用索引（冪等、存在即跳過）
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *UserRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.UserIndexes)
	return nil
}

// Create：單文件插入，uid 重複回傳 ErrDuplicate
func (repository *UserRepository) Create(
	contextValue context.Context,
	user *model.User,
) (_ *model.User, returnedError error) {

	nowUTC := time.Now().UTC()
	user.CreatedAt = nowUTC
	user.UpdatedAt = nowUTC

	if _, insertError := repository.collection.InsertOne(contextValue, user); insertError != nil {
		return nil, translateWriteError(insertError)
	}
	return user, nil
}

func (repository *UserRepository) GetByUID(
	contextValue context.Context,
	uid string,
) (_ *model.User, returnedError error) {
	var user model.User
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": uid}).Decode(&user); returnedError != nil {
		return nil, returnedError
	}
	return &user, nil
}

// FindActiveByName 以姓名找在職員工（verifyEmployee 使用）
func (repository *UserRepository) FindActiveByName(
	contextValue context.Context,
	name string,
) (_ *model.User, returnedError error) {
	var user model.User
	filter := bson.M{"name": name, "status": core.StatusActive}
	if returnedError = repository.collection.FindOne(contextValue, filter).Decode(&user); returnedError != nil {
		return nil, returnedError
	}
	return &user, nil
}

func (repository *UserRepository) List(
	contextValue context.Context,
	filter model.UserFilter,
) (_ []*model.User, returnedError error) {
	query := bson.M{}
	if filter.Store != "" {
		query["store"] = filter.Store
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Name != "" {
		query["name"] = filter.Name
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, findError := repository.collection.Find(contextValue, query, findOptions)
	if findError != nil {
		return nil, findError
	}
	return decodeAll[model.User](contextValue, cursor)
}

// ListUIDs 只取 uid 欄位，供孤兒帳號比對
func (repository *UserRepository) ListUIDs(contextValue context.Context) (_ []string, returnedError error) {
	findOptions := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, findError := repository.collection.Find(contextValue, bson.M{}, findOptions)
	if findError != nil {
		return nil, findError
	}
	users, decodeError := decodeAll[model.User](contextValue, cursor)
	if decodeError != nil {
		return nil, decodeError
	}
	uids := make([]string, 0, len(users))
	for _, u := range users {
		uids = append(uids, u.UID)
	}
	return uids, nil
}

// Update 以 uid 覆寫整份文件（createdAt 保留）
func (repository *UserRepository) Update(
	contextValue context.Context,
	user *model.User,
) (returnedError error) {
	user.UpdatedAt = time.Now().UTC()
	result, updateError := repository.collection.ReplaceOne(contextValue, bson.M{"_id": user.UID}, user)
	if updateError != nil {
		return translateWriteError(updateError)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repository *UserRepository) DeleteByUID(
	contextValue context.Context,
	uid string,
) (returnedError error) {
	result, deleteError := repository.collection.DeleteOne(contextValue, bson.M{"_id": uid})
	if deleteError != nil {
		return deleteError
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repository *UserRepository) Count(
	contextValue context.Context,
	filter model.UserFilter,
) (_ int64, returnedError error) {
	query := bson.M{}
	if filter.Store != "" {
		query["store"] = filter.Store
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	return repository.collection.CountDocuments(contextValue, query)
}
