package repository

import (
	"context"
	"testing"

	"mannamsalon/internal/database/mongodb/model"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestCreateIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("attendance unique index created", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		assert.NoError(mt, createIndexes(context.Background(), mt.Coll, model.AttendanceIndexes))
	})

	mt.Run("attendance index failure is returned", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    85,
			Name:    "IndexOptionsConflict",
			Message: "index uniq_uid_date already exists with different options",
		}))
		err := createIndexes(context.Background(), mt.Coll, model.AttendanceIndexes)
		assert.Error(mt, err)
		assert.Contains(mt, err.Error(), mt.Coll.Name())
	})

	mt.Run("signed contract index failure is returned", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized to create index",
		}))
		repository := &SignedContractRepository{collection: mt.Coll}
		assert.Error(mt, repository.ensureIndexes(context.Background()))
	})
}
