package linkTransactions

import (
	"abdm-link-service/internal/app/models"
	"abdm-link-service/internal/pkg/constvars"
	"abdm-link-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestLinkTransactionMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewLinkTransactionMongoRepository(mt.DB)

		err := repo.InsertLinkTransaction(context.Background(), &models.LinkTransaction{
			TransactionID: "tx-1",
			Stage:         "CARE_CONTEXT_LINKED",
			Reason:        constvars.LinkReasonLinked,
			StartedAt:     time.Now(),
		})

		assert.NoError(mt, err)
	})

	mt.Run("insert duplicate", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))
		repo := NewLinkTransactionMongoRepository(mt.DB)

		err := repo.InsertLinkTransaction(context.Background(), &models.LinkTransaction{TransactionID: "tx-1"})

		require.Error(mt, err)
		assert.Equal(mt, exceptions.KindInternal, exceptions.KindOf(err))
	})

	mt.Run("find by id", func(mt *mtest.T) {
		namespace := mt.DB.Name() + "." + constvars.MongoCollectionLinkTransactions
		mt.AddMockResponses(mtest.CreateCursorResponse(1, namespace, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "tx-1"},
			{Key: "care_context_created", Value: true},
			{Key: "stage", Value: "SKIPPED"},
			{Key: "reason", Value: constvars.LinkReasonNoHealthRecords},
		}))
		repo := NewLinkTransactionMongoRepository(mt.DB)

		transaction, err := repo.FindLinkTransactionByID(context.Background(), "tx-1")

		require.NoError(mt, err)
		assert.Equal(mt, "tx-1", transaction.TransactionID)
		assert.True(mt, transaction.CareContextCreated)
		assert.Equal(mt, constvars.LinkReasonNoHealthRecords, transaction.Reason)
	})

	mt.Run("find missing", func(mt *mtest.T) {
		namespace := mt.DB.Name() + "." + constvars.MongoCollectionLinkTransactions
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace, mtest.FirstBatch))
		repo := NewLinkTransactionMongoRepository(mt.DB)

		transaction, err := repo.FindLinkTransactionByID(context.Background(), "tx-missing")

		assert.Nil(mt, transaction)
		var customErr *exceptions.CustomError
		require.True(mt, errors.As(err, &customErr))
		assert.Equal(mt, constvars.StatusNotFound, customErr.StatusCode)
	})
}
