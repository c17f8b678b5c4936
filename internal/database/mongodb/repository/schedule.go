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

type ScheduleRepository struct {
	collection *mongo.Collection
}

func NewScheduleRepository(mongoClient *client.MongoClient) *ScheduleRepository {
	repository := &ScheduleRepository{
		collection: mongoClient.Collection(core.MongoCollectionSchedules),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *ScheduleRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.ScheduleIndexes)
	return nil
}

// CreateMany 批次新增；單筆時等同 InsertOne
func (repository *ScheduleRepository) CreateMany(
	contextValue context.Context,
	schedules []*model.Schedule,
) (returnedError error) {
	if len(schedules) == 0 {
		return nil
	}
	nowUTC := time.Now().UTC()
	documents := make([]any, 0, len(schedules))
	for _, schedule := range schedules {
		if schedule.ID.IsZero() {
			schedule.ID = primitive.NewObjectID()
		}
		schedule.CreatedAt = nowUTC
		schedule.UpdatedAt = nowUTC
		documents = append(documents, schedule)
	}
	_, returnedError = repository.collection.InsertMany(contextValue, documents)
	return returnedError
}

func (repository *ScheduleRepository) GetByID(
	contextValue context.Context,
	scheduleIdentifier primitive.ObjectID,
) (_ *model.Schedule, returnedError error) {
	var schedule model.Schedule
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": scheduleIdentifier}).Decode(&schedule); returnedError != nil {
		return nil, returnedError
	}
	return &schedule, nil
}

func (repository *ScheduleRepository) List(
	contextValue context.Context,
	filter model.ScheduleFilter,
) (_ []*model.Schedule, returnedError error) {
	query := bson.M{}
	if filter.Store != "" {
		query["store"] = filter.Store
	}
	if filter.Name != "" {
		query["name"] = filter.Name
	}
	if filter.UID != "" {
		query["uid"] = filter.UID
	}
	if r := dateRange(filter.From, filter.To); len(r) > 0 {
		query["date"] = r
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}})
	cursor, findError := repository.collection.Find(contextValue, query, findOptions)
	if findError != nil {
		return nil, findError
	}
	return decodeAll[model.Schedule](contextValue, cursor)
}

func (repository *ScheduleRepository) Update(
	contextValue context.Context,
	schedule *model.Schedule,
) (returnedError error) {
	schedule.UpdatedAt = time.Now().UTC()
	result, updateError := repository.collection.ReplaceOne(contextValue, bson.M{"_id": schedule.ID}, schedule)
	if updateError != nil {
		return updateError
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repository *ScheduleRepository) DeleteByID(
	contextValue context.Context,
	scheduleIdentifier primitive.ObjectID,
) (returnedError error) {
	result, deleteError := repository.collection.DeleteOne(contextValue, bson.M{"_id": scheduleIdentifier})
	if deleteError != nil {
		return deleteError
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
