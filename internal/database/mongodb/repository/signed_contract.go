package repository

import (
	"context"

	"mannamsalon/internal/core"
	client "mannamsalon/internal/database/client"
	"mannamsalon/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SignedContractRepository 只提供新增與查詢
type SignedContractRepository struct {
	collection *mongo.Collection
}

// NewSignedContractRepository 唯一索引建立失敗即回傳錯誤
func NewSignedContractRepository(mongoClient *client.MongoClient) (*SignedContractRepository, error) {
	repository := &SignedContractRepository{
		collection: mongoClient.Collection(core.MongoCollectionSignedContracts),
	}
	if err := repository.ensureIndexes(context.Background()); err != nil {
		return nil, err
	}
	return repository, nil
}

func (repository *SignedContractRepository) ensureIndexes(contextValue context.Context) error {
	return createIndexes(contextValue, repository.collection, model.SignedContractIndexes)
}

// Insert 同一份合約第二次寫入回傳 ErrDuplicate
func (repository *SignedContractRepository) Insert(
	contextValue context.Context,
	signed *model.SignedContract,
) (returnedError error) {
	if signed.ID.IsZero() {
		signed.ID = primitive.NewObjectID()
	}
	_, insertError := repository.collection.InsertOne(contextValue, signed)
	return translateWriteError(insertError)
}

func (repository *SignedContractRepository) GetByContractID(
	contextValue context.Context,
	contractID string,
) (_ *model.SignedContract, returnedError error) {
	var signed model.SignedContract
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"contractId": contractID}).Decode(&signed); returnedError != nil {
		return nil, returnedError
	}
	return &signed, nil
}

func (repository *SignedContractRepository) List(
	contextValue context.Context,
	employeeName string,
) (_ []*model.SignedContract, returnedError error) {
	query := bson.M{}
	if employeeName != "" {
		query["contract.employeeName"] = employeeName
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "signedAt", Value: -1}})
	cursor, findError := repository.collection.Find(contextValue, query, findOptions)
	if findError != nil {
		return nil, findError
	}
	return decodeAll[model.SignedContract](contextValue, cursor)
}
