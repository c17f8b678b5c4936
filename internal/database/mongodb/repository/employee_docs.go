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

type EmployeeDocsRepository struct {
	collection *mongo.Collection
}

func NewEmployeeDocsRepository(mongoClient *client.MongoClient) *EmployeeDocsRepository {
	repository := &EmployeeDocsRepository{
		collection: mongoClient.Collection(core.MongoCollectionEmployeeDocs),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *EmployeeDocsRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.EmployeeDocsIndexes)
	return nil
}

func (repository *EmployeeDocsRepository) GetByUID(
	contextValue context.Context,
	uid string,
) (_ *model.EmployeeDocs, returnedError error) {
	var docs model.EmployeeDocs
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"uid": uid}).Decode(&docs); returnedError != nil {
		return nil, returnedError
	}
	return &docs, nil
}

func (repository *EmployeeDocsRepository) SaveBankAccount(
	contextValue context.Context,
	uid string,
	account model.BankAccount,
) (returnedError error) {
	return repository.upsertField(contextValue, uid, "bankAccount", account)
}

func (repository *EmployeeDocsRepository) SaveHealthCert(
	contextValue context.Context,
	uid string,
	cert model.HealthCert,
) (returnedError error) {
	return repository.upsertField(contextValue, uid, "healthCert", cert)
}

// DeleteByUID 離職時清除；文件不存在不視為錯誤
func (repository *EmployeeDocsRepository) DeleteByUID(
	contextValue context.Context,
	uid string,
) (deleted bool, returnedError error) {
	result, deleteError := repository.collection.DeleteOne(contextValue, bson.M{"uid": uid})
	if deleteError != nil {
		return false, deleteError
	}
	return result.DeletedCount == 1, nil
}

func (repository *EmployeeDocsRepository) upsertField(contextValue context.Context, uid string, field string, value any) error {
	update := withUpdatedAt(bson.M{
		"$set": bson.M{field: value},
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID(),
			"createdAt": time.Now().UTC(),
		},
	})
	_, updateError := repository.collection.UpdateOne(contextValue, bson.M{"uid": uid}, update, options.Update().SetUpsert(true))
	return translateWriteError(updateError)
}
