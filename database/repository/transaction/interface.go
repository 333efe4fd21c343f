// File: database/repository/transaction/interface.go
package transactionRepo

import (
	"context"

	"barberpro/database"
	"barberpro/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type TransactionRepository interface {
	Create(ctx context.Context, tx models.Transaction) (string, error)
	GetAll(ctx context.Context) ([]models.Transaction, error)
}

type mongoTransactionRepo struct {
	coll *mongo.Collection
}

// NewMongoTransactionRepo constructs a new MongoDB TransactionRepository.
func NewMongoTransactionRepo() TransactionRepository {
	return &mongoTransactionRepo{
		coll: database.Collection("transactions"),
	}
}
