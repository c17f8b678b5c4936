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

type CompanyRepository struct {
	collection *mongo.Collection
}

func NewCompanyRepository(mongoClient *client.MongoClient) *CompanyRepository {
	repository := &CompanyRepository{
		collection: mongoClient.Collection(core.MongoCollectionCompanies),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *CompanyRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.CompanyIndexes)
	return nil
}

func (repository *CompanyRepository) Create(
	contextValue context.Context,
	company *model.Company,
) (returnedError error) {
	nowUTC := time.Now().UTC()
	if company.ID.IsZero() {
		company.ID = primitive.NewObjectID()
	}
	company.CreatedAt = nowUTC
	company.UpdatedAt = nowUTC
	_, insertError := repository.collection.InsertOne(contextValue, company)
	return translateWriteError(insertError)
}

func (repository *CompanyRepository) GetByCompanyID(
	contextValue context.Context,
	companyID string,
) (_ *model.Company, returnedError error) {
	var company model.Company
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"companyId": companyID}).Decode(&company); returnedError != nil {
		return nil, returnedError
	}
	return &company, nil
}

func (repository *CompanyRepository) List(contextValue context.Context) (_ []*model.Company, returnedError error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, findError := repository.collection.Find(contextValue, bson.M{}, findOptions)
	if findError != nil {
		return nil, findError
	}
	return decodeAll[model.Company](contextValue, cursor)
}

func (repository *CompanyRepository) Update(
	contextValue context.Context,
	company *model.Company,
) (returnedError error) {
	company.UpdatedAt = time.Now().UTC()
	result, updateError := repository.collection.ReplaceOne(contextValue, bson.M{"companyId": company.CompanyID}, company)
	if updateError != nil {
		return translateWriteError(updateError)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repository *CompanyRepository) DeleteByCompanyID(
	contextValue context.Context,
	companyID string,
) (returnedError error) {
	result, deleteError := repository.collection.DeleteOne(contextValue, bson.M{"companyId": companyID})
	if deleteError != nil {
		return deleteError
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
