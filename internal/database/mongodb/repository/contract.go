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

type ContractRepository struct {
	collection *mongo.Collection
}

func NewContractRepository(mongoClient *client.MongoClient) *ContractRepository {
	repository := &ContractRepository{
		collection: mongoClient.Collection(core.MongoCollectionContracts),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *ContractRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.ContractIndexes)
	return nil
}

func (repository *ContractRepository) Create(
	contextValue context.Context,
	contract *model.Contract,
) (returnedError error) {
	nowUTC := time.Now().UTC()
	if contract.ID.IsZero() {
		contract.ID = primitive.NewObjectID()
	}
	contract.CreatedAt = nowUTC
	contract.UpdatedAt = nowUTC

	_, insertError := repository.collection.InsertOne(contextValue, contract)
	return translateWriteError(insertError)
}

func (repository *ContractRepository) GetByContractID(
	contextValue context.Context,
	contractID string,
) (_ *model.Contract, returnedError error) {
	var contract model.Contract
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"contractId": contractID}).Decode(&contract); returnedError != nil {
		return nil, returnedError
	}
	return &contract, nil
}

func (repository *ContractRepository) List(
	contextValue context.Context,
	filter model.ContractFilter,
) (_ []*model.Contract, returnedError error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.EmployeeName != "" {
		query["employeeName"] = filter.EmployeeName
	}
	if filter.WorkStore != "" {
		query["workStore"] = filter.WorkStore
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, findError := repository.collection.Find(contextValue, query, findOptions)
	if findError != nil {
		return nil, findError
	}
	return decodeAll[model.Contract](contextValue, cursor)
}

// MarkSigned drafted → signed，只會成功一次
func (repository *ContractRepository) MarkSigned(
	contextValue context.Context,
	contractID string,
	signedAt time.Time,
) (changed bool, returnedError error) {
	filter := bson.M{"contractId": contractID, "status": bson.M{"$ne": core.ContractSigned}}
	update := withUpdatedAt(bson.M{"$set": bson.M{"status": core.ContractSigned, "signedAt": signedAt}})
	result, updateError := repository.collection.UpdateOne(contextValue, filter, update)
	if updateError != nil {
		return false, updateError
	}
	return result.ModifiedCount == 1, nil
}

// DeleteDrafted 只刪除尚未簽署的合約；回傳 false 代表不存在或已簽署
func (repository *ContractRepository) DeleteDrafted(
	contextValue context.Context,
	contractID string,
) (deleted bool, returnedError error) {
	result, deleteError := repository.collection.DeleteOne(contextValue,
		bson.M{"contractId": contractID, "status": core.ContractDrafted})
	if deleteError != nil {
		return false, deleteError
	}
	return result.DeletedCount == 1, nil
}

func (repository *ContractRepository) CountByStatus(
	contextValue context.Context,
	status core.ContractStatus,
) (_ int64, returnedError error) {
	return repository.collection.CountDocuments(contextValue, bson.M{"status": status})
}
