// File: database/repository/client/interface.go
package clientRepo

import (
	"context"

	"barberpro/database"
	"barberpro/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ClientRepository interface {
	Create(ctx context.Context, client models.Client) (string, error)
	GetByID(ctx context.Context, id string) (*models.Client, error)
	GetAll(ctx context.Context) ([]models.Client, error)
	RecordVisit(ctx context.Context, id, date string) error
}

type mongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo constructs a new MongoDB ClientRepository.
func NewMongoClientRepo() ClientRepository {
	return &mongoClientRepo{
		coll: database.Collection("clients"),
	}
}
