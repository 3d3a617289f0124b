package linkTransactions

import (
	"abdm-link-service/internal/app/contracts"
	"abdm-link-service/internal/app/models"
	"abdm-link-service/internal/pkg/constvars"
	"abdm-link-service/internal/pkg/exceptions"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type linkTransactionMongoRepository struct {
	Collection *mongo.Collection
}

func NewLinkTransactionMongoRepository(db *mongo.Database) contracts.LinkTransactionRepository {
	return &linkTransactionMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionLinkTransactions),
	}
}

func (repo *linkTransactionMongoRepository) InsertLinkTransaction(ctx context.Context, transaction *models.LinkTransaction) error {
	_, err := repo.Collection.InsertOne(ctx, transaction)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *linkTransactionMongoRepository) FindLinkTransactionByID(ctx context.Context, transactionID string) (*models.LinkTransaction, error) {
	transaction := new(models.LinkTransaction)
	err := repo.Collection.FindOne(ctx, bson.M{"_id": transactionID}).Decode(transaction)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, exceptions.ErrLinkTransactionNotFound(err, transactionID)
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return transaction, nil
}
