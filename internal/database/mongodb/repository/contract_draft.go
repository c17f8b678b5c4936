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

type ContractDraftRepository struct {
	collection *mongo.Collection
}

func NewContractDraftRepository(mongoClient *client.MongoClient) *ContractDraftRepository {
	repository := &ContractDraftRepository{
		collection: mongoClient.Collection(core.MongoCollectionContractDrafts),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *ContractDraftRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.ContractDraftIndexes)
	return nil
}

// Save 以 draftId upsert；已存在的草稿沿用原本的 _id
func (repository *ContractDraftRepository) Save(
	contextValue context.Context,
	draft *model.ContractDraft,
) (returnedError error) {
	draft.SavedAt = time.Now().UTC()
	if existing, findError := repository.GetByDraftID(contextValue, draft.DraftID); findError == nil {
		draft.ID = existing.ID
	} else if findError != mongo.ErrNoDocuments {
		return findError
	}
	if draft.ID.IsZero() {
		draft.ID = primitive.NewObjectID()
	}
	_, updateError := repository.collection.ReplaceOne(contextValue,
		bson.M{"draftId": draft.DraftID}, draft, options.Replace().SetUpsert(true))
	return translateWriteError(updateError)
}

func (repository *ContractDraftRepository) List(contextValue context.Context) (_ []*model.ContractDraft, returnedError error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "savedAt", Value: -1}})
	cursor, findError := repository.collection.Find(contextValue, bson.M{}, findOptions)
	if findError != nil {
		return nil, findError
	}
	return decodeAll[model.ContractDraft](contextValue, cursor)
}

func (repository *ContractDraftRepository) GetByDraftID(
	contextValue context.Context,
	draftID string,
) (_ *model.ContractDraft, returnedError error) {
	var draft model.ContractDraft
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"draftId": draftID}).Decode(&draft); returnedError != nil {
		return nil, returnedError
	}
	return &draft, nil
}

func (repository *ContractDraftRepository) DeleteByDraftID(
	contextValue context.Context,
	draftID string,
) (returnedError error) {
	result, deleteError := repository.collection.DeleteOne(contextValue, bson.M{"draftId": draftID})
	if deleteError != nil {
		return deleteError
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
