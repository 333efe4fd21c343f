// File: database/repository/catalog/crud.go
package catalogRepo

import (
	"context"
	"time"

	"barberpro/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new catalog entry and returns its ID.
func (r *mongoCatalogRepo) Create(ctx context.Context, svc models.ServiceItem) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, svc); err != nil {
		return "", err
	}
	return svc.ID, nil
}

// GetAll returns the full service catalog.
func (r *mongoCatalogRepo) GetAll(ctx context.Context) ([]models.ServiceItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.ServiceItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteByID removes a catalog entry.
func (r *mongoCatalogRepo) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
