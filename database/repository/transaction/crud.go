// File: database/repository/transaction/crud.go
package transactionRepo

import (
	"context"
	"time"

	"barberpro/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a ledger entry and returns its ID.
func (r *mongoTransactionRepo) Create(ctx context.Context, tx models.Transaction) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, tx); err != nil {
		return "", err
	}
	return tx.ID, nil
}

// GetAll returns the ledger, newest first.
func (r *mongoTransactionRepo) GetAll(ctx context.Context) ([]models.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var txs []models.Transaction
	if err := cursor.All(ctx, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}
